// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package tracker

import (
	"context"
	"fmt"
	"io"
	"math"
	"sort"
	"strings"

	"github.com/pdiddy/story-engine/pkg/types"
)

// Report builds the word-count dashboard from the recorded counts.
func (s *Store) Report(ctx context.Context) (types.Report, error) {
	counts, err := s.Counts(ctx)
	if err != nil {
		return types.Report{}, err
	}
	return BuildReport(counts), nil
}

// BuildReport computes per-chapter statistics and manuscript totals from
// counts ordered by chapter then scene.
func BuildReport(counts []types.SceneWordCount) types.Report {
	var r types.Report

	byChapter := make(map[string][]int)
	var order []string
	running := 0
	for _, c := range counts {
		if _, ok := byChapter[c.Chapter]; !ok {
			order = append(order, c.Chapter)
		}
		byChapter[c.Chapter] = append(byChapter[c.Chapter], c.Words)
		running += c.Words
		r.Cumulative = append(r.Cumulative, running)
	}

	chapterTotal := 0
	for _, name := range order {
		words := byChapter[name]
		total := 0
		for _, w := range words {
			total += w
		}
		r.Chapters = append(r.Chapters, types.ChapterStats{
			Chapter: name,
			Scenes:  len(words),
			Words:   total,
			Average: mean(words),
			Median:  median(words),
			StdDev:  stdDev(words),
		})
		r.TotalWords += total
		r.TotalScenes += len(words)
		chapterTotal++
	}

	if r.TotalScenes > 0 {
		r.SceneAverage = float64(r.TotalWords) / float64(r.TotalScenes)
	}
	if chapterTotal > 0 {
		r.ChapterAverage = float64(r.TotalWords) / float64(chapterTotal)
	}

	return r
}

// WriteReport prints the dashboard as a text table.
func WriteReport(r types.Report, w io.Writer) {
	if len(r.Chapters) == 0 {
		fmt.Fprintln(w, "No scene counts recorded.")
		return
	}

	fmt.Fprintf(w, "%-20s %7s %8s %9s %9s %9s\n",
		"Chapter", "Scenes", "Words", "Avg", "Median", "StdDev")
	fmt.Fprintln(w, strings.Repeat("-", 68))
	for _, c := range r.Chapters {
		fmt.Fprintf(w, "%-20s %7d %8d %9.1f %9.1f %9.1f\n",
			c.Chapter, c.Scenes, c.Words, c.Average, c.Median, c.StdDev)
	}
	fmt.Fprintf(w, "\nTotal: %d words across %d scenes in %d chapters\n",
		r.TotalWords, r.TotalScenes, len(r.Chapters))
	fmt.Fprintf(w, "Average per scene: %.1f, per chapter: %.1f\n",
		r.SceneAverage, r.ChapterAverage)
}

func mean(xs []int) float64 {
	if len(xs) == 0 {
		return 0
	}
	sum := 0
	for _, x := range xs {
		sum += x
	}
	return float64(sum) / float64(len(xs))
}

func median(xs []int) float64 {
	if len(xs) == 0 {
		return 0
	}
	sorted := append([]int(nil), xs...)
	sort.Ints(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return float64(sorted[mid-1]+sorted[mid]) / 2
	}
	return float64(sorted[mid])
}

// stdDev is the population standard deviation.
func stdDev(xs []int) float64 {
	if len(xs) == 0 {
		return 0
	}
	m := mean(xs)
	var ss float64
	for _, x := range xs {
		d := float64(x) - m
		ss += d * d
	}
	return math.Sqrt(ss / float64(len(xs)))
}
