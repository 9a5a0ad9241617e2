package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/homier/primemap"
)

func TestHashFunc(t *testing.T) {
	for _, name := range []string{"sum", "weighted", "xx", "maphash"} {
		t.Run(name, func(t *testing.T) {
			hf, err := hashFunc(name)
			require.NoError(t, err)
			require.NotNil(t, hf)
		})
	}

	_, err := hashFunc("crc")
	require.Error(t, err)
}

func TestScanWords(t *testing.T) {
	words, err := scanWords(strings.NewReader("apple apple\n grape\tmelon  peach\n"), nil)
	require.NoError(t, err)
	require.Equal(t, []string{"apple", "apple", "grape", "melon", "peach"}, words)
}

func TestReadWords(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.txt")
	b := filepath.Join(dir, "b.txt")
	require.NoError(t, os.WriteFile(a, []byte("one two"), 0o644))
	require.NoError(t, os.WriteFile(b, []byte("two"), 0o644))

	words, err := readWords([]string{a, b}, nil)
	require.NoError(t, err)
	require.Equal(t, []string{"one", "two", "two"}, words)

	_, err = readWords([]string{a, filepath.Join(dir, "missing.txt")}, nil)
	require.Error(t, err)
}

func TestRun(t *testing.T) {
	var out bytes.Buffer

	err := run([]string{"-hash", "sum"}, strings.NewReader("apple apple grape melon peach"), &out)
	require.NoError(t, err)
	require.Equal(t, "mode: [apple], frequency: 2\n", out.String())
}

func TestRun_Capacity(t *testing.T) {
	var out bytes.Buffer

	err := run([]string{"-capacity", "5", "-metrics"}, strings.NewReader("a a b"), &out)
	require.NoError(t, err)
	require.Contains(t, out.String(), "mode: [a], frequency: 2\n")
	require.Contains(t, out.String(), `primemap_capacity{table="frequency"} 5`)

	// Rounded up to the next prime.
	out.Reset()
	err = run([]string{"-capacity", "20", "-metrics"}, strings.NewReader("a"), &out)
	require.NoError(t, err)
	require.Contains(t, out.String(), `primemap_capacity{table="frequency"} 23`)
}

func TestRun_Errors(t *testing.T) {
	var out bytes.Buffer

	require.Error(t, run([]string{"-hash", "crc"}, strings.NewReader("a"), &out))
	require.Error(t, run(nil, strings.NewReader("  \n"), &out))
	require.Error(t, run([]string{"-nope"}, strings.NewReader("a"), &out))
}

func TestPrintMetrics(t *testing.T) {
	freq := primemap.Frequencies([]string{"a", "a", "b"}, 11, primemap.WithHashFunc(primemap.HashSum))

	var out bytes.Buffer
	require.NoError(t, printMetrics(&out, freq))

	text := out.String()
	require.Contains(t, text, "# HELP primemap_size Number of live entries\n")
	require.Contains(t, text, "# TYPE primemap_size gauge\n")
	require.Contains(t, text, `primemap_size{table="frequency"} 2`+"\n")
	require.Contains(t, text, `primemap_capacity{table="frequency"} 11`+"\n")
	require.Contains(t, text, `primemap_empty_buckets{table="frequency"} 9`+"\n")
	require.Contains(t, text, `primemap_tombstones{table="frequency"} 0`+"\n")
}
