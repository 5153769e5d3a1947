// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package plan

import (
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/pdiddy/story-engine/pkg/types"
)

// ParseSummary holds counts from a parse run.
type ParseSummary struct {
	Scenes  int
	Skipped int
	Blank   int
}

// Total returns the number of data rows examined.
func (s ParseSummary) Total() int {
	return s.Scenes + s.Skipped + s.Blank
}

// chapterGroup accumulates scenes for one chapter while parsing.
type chapterGroup struct {
	key       string
	firstSeen int
	orderKey  float64
	hasOrder  bool
	scenes    []types.SceneRow
}

// Parse walks the data rows once, groups scenes by chapter, and orders them.
// Fully blank rows are skipped silently. Rows with a blank chapter or an
// unparsable scene order are skipped with exactly one warning on warn.
// Chapters keep first-appearance order unless the schema has a chapter-order
// column, in which case they sort by that column ascending (chapters without
// a parsable order value sort last, keeping first-appearance order among
// themselves). Scenes within a chapter sort by scene order ascending, ties
// broken by original row order.
func Parse(sheet *Sheet, schema Schema, warn io.Writer) (types.Plan, ParseSummary) {
	var summary ParseSummary
	groups := make(map[string]*chapterGroup)
	var order []*chapterGroup

	for i, row := range sheet.Rows {
		rowNum := i + 2 // 1-based, after the header row

		if blankRow(row) {
			summary.Blank++
			continue
		}

		chapterKey := strings.TrimSpace(cell(row, schema.Chapter))
		if chapterKey == "" {
			fmt.Fprintf(warn, "warning: row %d skipped: blank chapter\n", rowNum)
			summary.Skipped++
			continue
		}

		sceneCell := strings.TrimSpace(cell(row, schema.Scene))
		sceneOrder, err := parseOrder(sceneCell)
		if err != nil {
			fmt.Fprintf(warn, "warning: row %d skipped: bad scene order %q\n", rowNum, sceneCell)
			summary.Skipped++
			continue
		}

		g, ok := groups[chapterKey]
		if !ok {
			g = &chapterGroup{key: chapterKey, firstSeen: len(order)}
			groups[chapterKey] = g
			order = append(order, g)
		}

		if schema.ChapterOrder >= 0 && !g.hasOrder {
			if v, err := strconv.ParseFloat(strings.TrimSpace(cell(row, schema.ChapterOrder)), 64); err == nil {
				g.orderKey = v
				g.hasOrder = true
			}
		}

		scene := types.SceneRow{
			Chapter:   chapterKey,
			Order:     sceneOrder,
			Title:     strings.TrimSpace(cell(row, schema.Title)),
			Notes:     strings.TrimSpace(cell(row, schema.Notes)),
			SourceRow: rowNum,
		}
		for _, d := range schema.Details {
			if v := strings.TrimSpace(cell(row, d.Index)); v != "" {
				scene.Details = append(scene.Details, types.Detail{Label: d.Label, Value: v})
			}
		}

		g.scenes = append(g.scenes, scene)
		summary.Scenes++
	}

	if schema.ChapterOrder >= 0 {
		sort.SliceStable(order, func(a, b int) bool {
			return chapterSortKey(order[a]) < chapterSortKey(order[b])
		})
	}

	var plan types.Plan
	for _, g := range order {
		sort.SliceStable(g.scenes, func(a, b int) bool {
			return g.scenes[a].Order < g.scenes[b].Order
		})
		plan.Chapters = append(plan.Chapters, types.Chapter{Key: g.key, Scenes: g.scenes})
	}

	return plan, summary
}

func chapterSortKey(g *chapterGroup) float64 {
	if g.hasOrder {
		return g.orderKey
	}
	return math.Inf(1)
}

// cell returns the trimmed-index cell value, tolerating ragged rows and
// unconfigured (-1) columns.
func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}

// blankRow reports whether every cell in the row is empty or whitespace.
func blankRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// parseOrder reads a scene-order value. Spreadsheet cells often surface
// integers as floats ("2" vs "2.0"), so both forms are accepted.
func parseOrder(s string) (int, error) {
	if s == "" {
		return 0, fmt.Errorf("empty")
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f != math.Trunc(f) {
		return 0, fmt.Errorf("not an integer: %q", s)
	}
	return int(f), nil
}
