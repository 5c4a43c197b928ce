// Package report writes search and collision results as CSV.
package report

import (
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"sdes/collision"
)

const (
	CandidatesHeader = "candidate_key_10bit"
	// MaxExampleKeys bounds the example_keys column of a collision report.
	MaxExampleKeys = 20
)

var CollisionsHeader = []string{"ciphertext_8bit", "num_keys", "example_keys"}

// WriteCandidates writes one candidate key per row under a single header.
func WriteCandidates(w io.Writer, keys []string) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{CandidatesHeader}); err != nil {
		return errors.Wrap(err, "write header")
	}
	for _, k := range keys {
		if err := cw.Write([]string{k}); err != nil {
			return errors.Wrapf(err, "write key %s", k)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteCollisions writes every bucket of m in insertion order. Example keys
// are joined with ';' and truncated to MaxExampleKeys.
func WriteCollisions(w io.Writer, m *collision.Map) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(CollisionsHeader); err != nil {
		return errors.Wrap(err, "write header")
	}
	for _, b := range m.Buckets() {
		examples := b.Keys
		if len(examples) > MaxExampleKeys {
			examples = examples[:MaxExampleKeys]
		}
		row := []string{b.Ciphertext, strconv.Itoa(len(b.Keys)), strings.Join(examples, ";")}
		if err := cw.Write(row); err != nil {
			return errors.Wrapf(err, "write ciphertext %s", b.Ciphertext)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ExportFile creates dir/name and fills it with write. It returns the path.
func ExportFile(dir, name string, write func(io.Writer) error) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", errors.Wrap(err, "failed to create output directory")
	}

	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		return "", errors.Wrap(err, "failed to create output file")
	}

	if err := write(f); err != nil {
		f.Close()
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", errors.Wrap(err, "failed to close output file")
	}
	return path, nil
}
