package main

import (
	"io"
	"strconv"
	"strings"
	"time"

	"sdes/bruteforce"
	"sdes/codec"
	"sdes/collision"
	"sdes/report"
	"sdes/sdes"
)

const (
	shownCandidates = 20
	shownCollisions = 10
	shownKeys       = 10
)

func (a *app) basicDemo() {
	a.printf("\n-- Basic encryption / decryption --\n")
	plaintext := a.prompt("8-bit plaintext", a.cfg.Defaults.Plaintext)
	key := a.prompt("10-bit key", a.cfg.Defaults.Key)

	start := time.Now()
	ciphertext, err := a.cipher.Encrypt(plaintext, key)
	if err != nil {
		a.fail("encryption failed", err)
		return
	}
	a.printf("Encrypted in %s, ciphertext = %s\n", time.Since(start), ciphertext)
	a.printf("Encryption trace:\n%s", a.cipher.Log())

	start = time.Now()
	recovered, err := a.cipher.Decrypt(ciphertext, key)
	if err != nil {
		a.fail("decryption failed", err)
		return
	}
	a.printf("Decrypted in %s, plaintext = %s\n", time.Since(start), recovered)
	a.printf("Decryption trace:\n%s", a.cipher.Log())
	a.printf("Plaintext recovered: %t\n", recovered == plaintext)
}

func (a *app) crossDemo() {
	a.printf("\n-- Cross-check --\n")
	a.printf("Parties A and B run the same algorithm with the same key K.\n")
	plaintext := a.prompt("Sample plaintext (8-bit)", a.cfg.Defaults.Plaintext)
	key := a.prompt("Sample key (10-bit)", a.cfg.Defaults.Key)

	ciphertext, err := sdes.Encrypt(plaintext, key)
	if err != nil {
		a.fail("encryption failed", err)
		return
	}
	a.printf("A encrypts: C = %s\n", ciphertext)

	recovered, err := sdes.Decrypt(ciphertext, key)
	if err != nil {
		a.fail("decryption failed", err)
		return
	}
	a.printf("B decrypts: P = %s\n", recovered)
	a.printf("Match: %t\n", recovered == plaintext)
}

func (a *app) asciiDemo() {
	a.printf("\n-- ASCII mode --\n")
	text := a.prompt("ASCII plaintext", a.cfg.Defaults.Text)
	key := a.prompt("10-bit key", a.cfg.Defaults.Key)

	start := time.Now()
	blocks, err := codec.EncryptASCIIToBlocks(text, key)
	if err != nil {
		a.fail("encryption failed", err)
		return
	}
	a.printf("Encrypted in %s\n", time.Since(start))
	a.printf("Cipher blocks: %s\n", strings.Join(blocks, ", "))

	recovered, err := codec.DecryptBlocksToASCII(blocks, key)
	if err != nil {
		a.fail("decryption failed", err)
		return
	}
	a.printf("Decrypted text: %s\n", recovered)
	a.printf("Match: %t\n", recovered == text)
}

func (a *app) bruteForceDemo() {
	a.printf("\n-- Brute-force key search --\n")
	n, err := strconv.Atoi(a.prompt("Number of known pairs", "1"))
	if err != nil || n < 1 {
		a.printf("Number of pairs must be a positive integer.\n")
		return
	}

	pairs := make([]bruteforce.Pair, 0, n)
	for i := 1; i <= n; i++ {
		p := a.prompt("Pair "+strconv.Itoa(i)+" plaintext (8-bit)", a.cfg.Defaults.Plaintext)
		c := a.prompt("Pair "+strconv.Itoa(i)+" ciphertext (8-bit, empty to generate)", "")
		if c == "" {
			key := a.prompt("Key used to generate the ciphertext (10-bit)", a.cfg.Defaults.Key)
			c, err = sdes.Encrypt(p, key)
			if err != nil {
				a.fail("could not generate ciphertext", err)
				return
			}
			a.printf("Generated ciphertext: %s (key %s)\n", c, key)
		}
		pairs = append(pairs, bruteforce.Pair{Plaintext: p, Ciphertext: c})
	}

	parallel := a.confirm("Use parallel workers?", a.cfg.Search.Parallel)
	workers := a.cfg.Search.Workers
	if parallel {
		workers, err = strconv.Atoi(a.prompt("Worker count", strconv.Itoa(a.cfg.Search.Workers)))
		if err != nil {
			a.printf("Worker count must be an integer.\n")
			return
		}
	}

	a.printf("Searching all 1024 keys...\n")
	start := time.Now()
	var keys []string
	var elapsed time.Duration
	if len(pairs) == 1 {
		keys, elapsed, err = bruteforce.SearchSinglePair(pairs[0].Plaintext, pairs[0].Ciphertext, parallel, workers)
	} else {
		keys, elapsed, err = bruteforce.SearchMultiplePairs(pairs, parallel, workers)
	}
	if err != nil {
		a.fail("search failed", err)
		return
	}
	a.log.Debug("search finished", len(pairs), parallel, workers, elapsed)

	a.printf("Search finished (wall %s, scan %s)\n", time.Since(start), elapsed)
	a.printf("Matching keys: %d\n", len(keys))
	if len(keys) == 0 {
		return
	}

	a.printf("First %d candidates:\n", min(len(keys), shownCandidates))
	for _, k := range keys[:min(len(keys), shownCandidates)] {
		a.printf("%s\n", k)
	}

	if a.confirm("Export candidates to CSV?", false) {
		name := a.prompt("File name", "bruteforce_candidates.csv")
		a.export(name, func(w io.Writer) error {
			return report.WriteCandidates(w, keys)
		})
	}
}

func (a *app) collisionDemo() {
	a.printf("\n-- Collision analysis --\n")
	plaintext := a.prompt("Plaintext to analyse (8-bit)", a.cfg.Defaults.Plaintext)

	start := time.Now()
	m, err := collision.AnalyzeCollisions(plaintext)
	if err != nil {
		a.fail("analysis failed", err)
		return
	}
	collisions := m.Collisions()
	a.printf("Done in %s. %d of %d ciphertexts are produced by more than one key.\n",
		time.Since(start), len(collisions), m.Len())

	for _, b := range collisions[:min(len(collisions), shownCollisions)] {
		a.printf("%s -> %d keys, e.g. %s\n", b.Ciphertext, len(b.Keys), strings.Join(b.Keys[:min(len(b.Keys), shownKeys)], " "))
	}

	if a.confirm("Export full collision table to CSV?", false) {
		name := a.prompt("File name", "collision_results.csv")
		a.export(name, func(w io.Writer) error {
			return report.WriteCollisions(w, m)
		})
	}
}

func (a *app) export(name string, write func(io.Writer) error) {
	path, err := report.ExportFile(a.cfg.Output.Dir, name, write)
	if err != nil {
		a.fail("export failed", err)
		return
	}
	a.log.Info("exported", path)
	a.printf("Saved to %s\n", path)
}

func (a *app) fail(msg string, err error) {
	a.log.Error(msg, err)
	a.printf("Error: %s: %v\n", msg, err)
}
