package report

import (
	"bytes"
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sdes/collision"
)

func TestWriteCandidates(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCandidates(&buf, []string{"1010000010", "0000111011"}))
	assert.Equal(t, "candidate_key_10bit\n1010000010\n0000111011\n", buf.String())

	buf.Reset()
	require.NoError(t, WriteCandidates(&buf, nil))
	assert.Equal(t, "candidate_key_10bit\n", buf.String())
}

func TestWriteCollisions(t *testing.T) {
	m, err := collision.AnalyzeCollisions("10110101")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteCollisions(&buf, m))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, m.Len()+1)
	assert.Equal(t, CollisionsHeader, rows[0])

	total := 0
	for i, row := range rows[1:] {
		require.Len(t, row, 3)
		assert.Equal(t, m.Ciphertexts()[i], row[0])

		n, err := strconv.Atoi(row[1])
		require.NoError(t, err)
		total += n

		examples := strings.Split(row[2], ";")
		if n > MaxExampleKeys {
			assert.Len(t, examples, MaxExampleKeys)
		} else {
			assert.Len(t, examples, n)
		}
		assert.Equal(t, m.Keys(row[0])[0], examples[0])
	}
	assert.Equal(t, 1024, total)
}

func TestExportFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")

	path, err := ExportFile(dir, "bruteforce_candidates.csv", func(w io.Writer) error {
		return WriteCandidates(w, []string{"1010000010"})
	})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "bruteforce_candidates.csv"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "candidate_key_10bit\n1010000010\n", string(data))
}
