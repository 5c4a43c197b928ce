// Package bruteforce recovers S-DES keys from known plaintext/ciphertext pairs by
// trying every key.
package bruteforce

import (
	"context"
	"runtime"
	"sort"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"sdes/interfaces"
	"sdes/permutations"
	"sdes/sdes"
)

var ErrNoPairs = errors.New("at least one known pair is required")

// Pair is a known plaintext block and the ciphertext it encrypts to.
type Pair struct {
	Plaintext  string
	Ciphertext string
}

type Options struct {
	// Parallel splits the key space across Workers goroutines. When false the
	// whole space is scanned by one worker.
	Parallel bool
	// Workers <= 0 means runtime.GOMAXPROCS(0).
	Workers int
	// Cipher defaults to the package-level S-DES engine.
	Cipher interfaces.BlockCipher
}

type Result struct {
	// Keys are the candidate keys in ascending numeric order.
	Keys []string
	// Elapsed covers the key scan only.
	Elapsed time.Duration
	// Tried is the number of keys tested.
	Tried int
}

func (r Result) Contains(key string) bool {
	i := sort.SearchStrings(r.Keys, key)
	return i < len(r.Keys) && r.Keys[i] == key
}

type block struct {
	plaintext  permutations.Bits
	ciphertext permutations.Bits
}

// Search returns every key k with Encrypt(p, k) == c for all pairs (p, c).
// Workers check ctx between key trials.
func Search(ctx context.Context, pairs []Pair, opts Options) (Result, error) {
	if len(pairs) == 0 {
		return Result{}, ErrNoPairs
	}

	cipher := opts.Cipher
	if cipher == nil {
		cipher = sdes.Default()
	}

	known := make([]block, len(pairs))
	for i, p := range pairs {
		pt, err := permutations.Parse(p.Plaintext, cipher.BlockSize())
		if err != nil {
			return Result{}, errors.Wrapf(err, "pair %d plaintext", i+1)
		}
		ct, err := permutations.Parse(p.Ciphertext, cipher.BlockSize())
		if err != nil {
			return Result{}, errors.Wrapf(err, "pair %d ciphertext", i+1)
		}
		known[i] = block{plaintext: pt, ciphertext: ct}
	}

	keySize := cipher.KeySize()
	keySpace := interfaces.KeySpace(cipher)
	workers := workerCount(opts, keySpace)

	start := time.Now()

	// Each worker owns a contiguous shard and its own result slot.
	local := make([][]uint, workers)
	g, gctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		lo := w * keySpace / workers
		hi := (w + 1) * keySpace / workers
		w := w // per-iteration copy (go 1.21 loop semantics)
		g.Go(func() error {
			for k := lo; k < hi; k++ {
				if err := gctx.Err(); err != nil {
					return err
				}

				key := permutations.FromUint(uint(k), keySize)
				ok, err := matchesAll(cipher, key, known)
				if err != nil {
					return errors.Wrapf(err, "key %s", key)
				}
				if ok {
					local[w] = append(local[w], uint(k))
				}
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	// Shards are contiguous and ascending, so concatenation keeps key order.
	var keys []string
	for _, shard := range local {
		for _, k := range shard {
			keys = append(keys, permutations.FromUint(k, keySize).String())
		}
	}

	return Result{
		Keys:    keys,
		Elapsed: time.Since(start),
		Tried:   keySpace,
	}, nil
}

func matchesAll(cipher interfaces.BlockCipher, key permutations.Bits, known []block) (bool, error) {
	for _, b := range known {
		ct, err := cipher.Encrypt(b.plaintext, key)
		if err != nil {
			return false, err
		}
		if !ct.Equal(b.ciphertext) {
			return false, nil
		}
	}
	return true, nil
}

func workerCount(opts Options, keySpace int) int {
	if !opts.Parallel {
		return 1
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > keySpace {
		workers = keySpace
	}
	return workers
}

// SearchSinglePair finds every key that encrypts plaintext to ciphertext.
func SearchSinglePair(plaintext, ciphertext string, parallel bool, workers int) ([]string, time.Duration, error) {
	res, err := Search(context.Background(), []Pair{{Plaintext: plaintext, Ciphertext: ciphertext}}, Options{
		Parallel: parallel,
		Workers:  workers,
	})
	if err != nil {
		return nil, 0, err
	}
	return res.Keys, res.Elapsed, nil
}

// SearchMultiplePairs finds every key consistent with all pairs.
func SearchMultiplePairs(pairs []Pair, parallel bool, workers int) ([]string, time.Duration, error) {
	res, err := Search(context.Background(), pairs, Options{
		Parallel: parallel,
		Workers:  workers,
	})
	if err != nil {
		return nil, 0, err
	}
	return res.Keys, res.Elapsed, nil
}
