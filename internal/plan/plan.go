// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package plan implements the scene-plan converter: it reads a tabulated
// scene-by-scene spreadsheet, groups the rows into chapters, and renders a
// chapter-by-chapter markdown plan.
package plan

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/pdiddy/story-engine/pkg/types"
)

// ErrInputNotFound reports that the input spreadsheet does not exist.
var ErrInputNotFound = errors.New("input file not found")

// ErrSchemaMissing reports that required columns are absent from the
// header row.
var ErrSchemaMissing = errors.New("required columns missing")

// Sheet is one worksheet split into a header row and data rows.
type Sheet struct {
	Name   string
	Header []string

	// Rows holds the data rows below the header. Rows may be ragged;
	// cells past a row's end read as empty.
	Rows [][]string
}

// Empty reports whether the sheet has neither a header nor data rows.
func (s *Sheet) Empty() bool {
	return len(s.Header) == 0 && len(s.Rows) == 0
}

// LoadSheet opens the workbook at path and returns the selected worksheet.
// sheet may be a sheet name or a zero-based numeric index; empty selects
// the first sheet. A missing file returns an error wrapping
// ErrInputNotFound.
func LoadSheet(path, sheet string) (*Sheet, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrInputNotFound, path)
		}
		return nil, fmt.Errorf("checking input file: %w", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening workbook %s: %w", path, err)
	}
	defer f.Close()

	name, err := resolveSheet(f, sheet)
	if err != nil {
		return nil, err
	}

	rows, err := f.GetRows(name)
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q: %w", name, err)
	}

	s := &Sheet{Name: name}
	if len(rows) > 0 {
		s.Header = rows[0]
		s.Rows = rows[1:]
	}
	return s, nil
}

// resolveSheet maps a name or numeric index onto an existing sheet name.
func resolveSheet(f *excelize.File, sheet string) (string, error) {
	list := f.GetSheetList()
	if len(list) == 0 {
		return "", fmt.Errorf("workbook contains no sheets")
	}

	if sheet == "" {
		return list[0], nil
	}

	for _, name := range list {
		if name == sheet {
			return name, nil
		}
	}

	if idx, err := strconv.Atoi(sheet); err == nil {
		if idx < 0 || idx >= len(list) {
			return "", fmt.Errorf("sheet index %d out of range (workbook has %d sheets)", idx, len(list))
		}
		return list[idx], nil
	}

	return "", fmt.Errorf("sheet %q not found (sheets: %s)", sheet, strings.Join(list, ", "))
}

// Schema maps the documented columns onto header indices. Optional columns
// that are not configured or not present hold -1.
type Schema struct {
	Chapter      int
	Scene        int
	Title        int
	Notes        int
	ChapterOrder int
	Details      []DetailColumn
}

// DetailColumn is one extra configured column carried into the output.
type DetailColumn struct {
	Label string
	Index int
}

// ResolveSchema locates the configured columns in the header row. Matching
// is case-insensitive and trims whitespace. Missing required columns
// (chapter, scene, title) return an error wrapping ErrSchemaMissing.
// Missing optional columns are dropped silently.
func ResolveSchema(header []string, cols types.ColumnsConfig) (Schema, error) {
	index := make(map[string]int, len(header))
	for i, h := range header {
		key := normalizeHeader(h)
		if key == "" {
			continue
		}
		if _, seen := index[key]; !seen {
			index[key] = i
		}
	}

	find := func(name string) int {
		if name == "" {
			return -1
		}
		if i, ok := index[normalizeHeader(name)]; ok {
			return i
		}
		return -1
	}

	s := Schema{
		Chapter:      find(cols.Chapter),
		Scene:        find(cols.Scene),
		Title:        find(cols.Title),
		Notes:        find(cols.Notes),
		ChapterOrder: find(cols.ChapterOrder),
	}

	var missing []string
	if s.Chapter < 0 {
		missing = append(missing, cols.Chapter)
	}
	if s.Scene < 0 {
		missing = append(missing, cols.Scene)
	}
	if s.Title < 0 {
		missing = append(missing, cols.Title)
	}
	if len(missing) > 0 {
		return Schema{}, fmt.Errorf("%w: %s", ErrSchemaMissing, strings.Join(missing, ", "))
	}

	for _, d := range cols.Details {
		if i := find(d); i >= 0 {
			s.Details = append(s.Details, DetailColumn{Label: d, Index: i})
		}
	}

	return s, nil
}

func normalizeHeader(h string) string {
	return strings.ToLower(strings.TrimSpace(h))
}
