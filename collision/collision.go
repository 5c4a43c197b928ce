// Package collision maps every key to the ciphertext it produces for one fixed
// plaintext and groups keys that collide.
package collision

import (
	"github.com/pkg/errors"

	"sdes/interfaces"
	"sdes/permutations"
	"sdes/sdes"
)

// Map groups keys by ciphertext. Ciphertexts are kept in the order they were
// first produced, and keys within a bucket in ascending order.
type Map struct {
	order   []string
	buckets map[string][]string
}

func newMap() *Map {
	return &Map{buckets: make(map[string][]string)}
}

func (m *Map) add(ciphertext, key string) {
	if _, ok := m.buckets[ciphertext]; !ok {
		m.order = append(m.order, ciphertext)
	}
	m.buckets[ciphertext] = append(m.buckets[ciphertext], key)
}

// Ciphertexts returns the distinct ciphertexts in insertion order.
func (m *Map) Ciphertexts() []string {
	out := make([]string, len(m.order))
	copy(out, m.order)
	return out
}

func (m *Map) Keys(ciphertext string) []string {
	keys := m.buckets[ciphertext]
	out := make([]string, len(keys))
	copy(out, keys)
	return out
}

// Len is the number of distinct ciphertexts.
func (m *Map) Len() int {
	return len(m.order)
}

// Total is the number of keys across all buckets.
func (m *Map) Total() int {
	n := 0
	for _, keys := range m.buckets {
		n += len(keys)
	}
	return n
}

type Bucket struct {
	Ciphertext string
	Keys       []string
}

// Buckets returns every bucket in insertion order.
func (m *Map) Buckets() []Bucket {
	out := make([]Bucket, 0, len(m.order))
	for _, ct := range m.order {
		out = append(out, Bucket{Ciphertext: ct, Keys: m.Keys(ct)})
	}
	return out
}

// Collisions returns only the buckets holding more than one key.
func (m *Map) Collisions() []Bucket {
	var out []Bucket
	for _, ct := range m.order {
		if len(m.buckets[ct]) > 1 {
			out = append(out, Bucket{Ciphertext: ct, Keys: m.Keys(ct)})
		}
	}
	return out
}

// Analyzer runs the exhaustive key sweep with a given cipher.
type Analyzer struct {
	cipher interfaces.BlockCipher
}

func NewAnalyzer(cipher interfaces.BlockCipher) (*Analyzer, error) {
	if cipher == nil {
		return nil, errors.New("cipher cannot be nil")
	}
	return &Analyzer{cipher: cipher}, nil
}

// Analyze encrypts plaintext under every key in increasing order.
func (a *Analyzer) Analyze(plaintext string) (*Map, error) {
	pt, err := permutations.Parse(plaintext, a.cipher.BlockSize())
	if err != nil {
		return nil, errors.Wrap(err, "plaintext")
	}

	m := newMap()
	keySize := a.cipher.KeySize()
	for k := 0; k < interfaces.KeySpace(a.cipher); k++ {
		key := permutations.FromUint(uint(k), keySize)
		ct, err := a.cipher.Encrypt(pt, key)
		if err != nil {
			return nil, errors.Wrapf(err, "key %s", key)
		}
		m.add(ct.String(), key.String())
	}
	return m, nil
}

var std = &Analyzer{cipher: sdes.Default()}

func AnalyzeCollisions(plaintext string) (*Map, error) {
	return std.Analyze(plaintext)
}
