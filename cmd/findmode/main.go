// Command findmode prints the most frequent word(s) of its input.
//
//	findmode [-hash sum|weighted|xx|maphash] [-capacity n] [-metrics] [file ...]
//
// Words are read from the given files, or from stdin when none are given.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	"github.com/homier/primemap"
	"github.com/homier/primemap/promstats"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("findmode: ")

	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	fs := flag.NewFlagSet("findmode", flag.ContinueOnError)

	var (
		hashName = fs.String("hash", "maphash", "hash function: sum, weighted, xx or maphash")
		capacity = fs.Int("capacity", 11, "initial capacity of the frequency table")
		metrics  = fs.Bool("metrics", false, "print frequency table metrics after the result")
	)

	if err := fs.Parse(args); err != nil {
		return err
	}

	hf, err := hashFunc(*hashName)
	if err != nil {
		return err
	}

	words, err := readWords(fs.Args(), stdin)
	if err != nil {
		return err
	}

	if len(words) == 0 {
		return errors.New("no input words")
	}

	freq := primemap.Frequencies(words, *capacity, primemap.WithHashFunc(hf))
	modes, n := primemap.Modes(freq)
	fmt.Fprintf(stdout, "mode: [%s], frequency: %d\n", strings.Join(modes, ", "), n)

	if *metrics {
		return printMetrics(stdout, freq)
	}

	return nil
}

func hashFunc(name string) (primemap.HashFunc, error) {
	switch name {
	case "sum":
		return primemap.HashSum, nil
	case "weighted":
		return primemap.HashWeighted, nil
	case "xx":
		return primemap.HashXX, nil
	case "maphash":
		return primemap.MakeDefaultHashFunc(), nil
	default:
		return nil, fmt.Errorf("unknown hash function %q", name)
	}
}

func readWords(paths []string, stdin io.Reader) ([]string, error) {
	if len(paths) == 0 {
		return scanWords(stdin, nil)
	}

	var (
		words []string
		err   error
	)

	for _, p := range paths {
		if words, err = readFile(p, words); err != nil {
			return nil, err
		}
	}

	return words, nil
}

func readFile(path string, words []string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer f.Close()

	words, err = scanWords(f, words)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	return words, nil
}

func scanWords(r io.Reader, words []string) ([]string, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	for sc.Scan() {
		words = append(words, sc.Text())
	}

	return words, sc.Err()
}

// Writes the frequency table gauges in the Prometheus text format.
func printMetrics(w io.Writer, freq promstats.StatsSource) error {
	reg := prometheus.NewRegistry()
	if err := reg.Register(promstats.NewCollector("frequency", freq)); err != nil {
		return fmt.Errorf("register collector: %w", err)
	}

	mfs, err := reg.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}

	for _, mf := range mfs {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("encode metrics: %w", err)
		}
	}

	return nil
}
