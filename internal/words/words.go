// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package words aggregates word-frequency CSV files and produces a ranked
// report. Each input file holds word,count records; counts for the same
// word sum across files.
package words

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/pdiddy/story-engine/internal/chart"
)

// WordCount is one ranked word.
type WordCount struct {
	Word  string
	Count int
}

// Summary holds counts from an aggregation run.
type Summary struct {
	Files   int
	Rows    int
	Skipped int
}

// Aggregate reads every .csv file in dir and sums per-word counts across
// files. Records that are not word,count pairs with an integer count are
// skipped with a warning on warn. A missing or unreadable directory is a
// fatal error.
func Aggregate(dir string, warn io.Writer) (map[string]int, Summary, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, Summary{}, fmt.Errorf("reading words directory %s: %w", dir, err)
	}

	counts := make(map[string]int)
	var summary Summary

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".csv") {
			continue
		}
		summary.Files++

		path := filepath.Join(dir, entry.Name())
		if err := aggregateFile(path, counts, &summary, warn); err != nil {
			return nil, summary, err
		}
	}

	return counts, summary, nil
}

func aggregateFile(path string, counts map[string]int, summary *Summary, warn io.Writer) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	for {
		record, err := r.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		if len(record) != 2 {
			continue
		}

		word := strings.TrimSpace(record[0])
		count, err := strconv.Atoi(strings.TrimSpace(record[1]))
		if err != nil || word == "" {
			fmt.Fprintf(warn, "warning: skipping invalid count for %q in %s\n", record[0], filepath.Base(path))
			summary.Skipped++
			continue
		}

		counts[word] += count
		summary.Rows++
	}
}

// Rank sorts words by count descending; ties order alphabetically so the
// ranking is deterministic.
func Rank(counts map[string]int) []WordCount {
	ranked := make([]WordCount, 0, len(counts))
	for w, c := range counts {
		ranked = append(ranked, WordCount{Word: w, Count: c})
	}
	sort.Slice(ranked, func(a, b int) bool {
		if ranked[a].Count != ranked[b].Count {
			return ranked[a].Count > ranked[b].Count
		}
		return ranked[a].Word < ranked[b].Word
	})
	return ranked
}

// WriteTable prints the top n ranked words as an aligned table.
func WriteTable(ranked []WordCount, n int, w io.Writer) {
	fmt.Fprintf(w, "%-5s %-20s %s\n", "Rank", "Word", "Count")
	fmt.Fprintln(w, strings.Repeat("-", 32))
	for i, wc := range top(ranked, n) {
		fmt.Fprintf(w, "%-5d %-20s %d\n", i+1, wc.Word, wc.Count)
	}
}

// ChartValues converts the top n ranked words into chart bars.
func ChartValues(ranked []WordCount, n int) []chart.Value {
	t := top(ranked, n)
	values := make([]chart.Value, len(t))
	for i, wc := range t {
		values[i] = chart.Value{Label: wc.Word, Count: float64(wc.Count)}
	}
	return values
}

func top(ranked []WordCount, n int) []WordCount {
	if n <= 0 || n > len(ranked) {
		return ranked
	}
	return ranked[:n]
}
