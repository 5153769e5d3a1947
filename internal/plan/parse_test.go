// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package plan

import (
	"bytes"
	"strings"
	"testing"

	"github.com/pdiddy/story-engine/pkg/types"
)

// defaultSchema resolves the default columns against a standard header.
func defaultSchema(t *testing.T, header []string) Schema {
	t.Helper()
	s, err := ResolveSchema(header, types.DefaultColumns())
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestParse_GroupsAndOrders(t *testing.T) {
	sheet := &Sheet{
		Header: []string{"Chapter", "Scene", "Title"},
		Rows: [][]string{
			{"Ch1", "1", "Opening"},
			{"Ch1", "2", "Conflict"},
			{"Ch2", "1", "Resolution"},
		},
	}

	var warn bytes.Buffer
	p, summary := Parse(sheet, defaultSchema(t, sheet.Header), &warn)

	if summary.Scenes != 3 || summary.Skipped != 0 || summary.Blank != 0 {
		t.Fatalf("summary = %+v", summary)
	}
	if warn.Len() != 0 {
		t.Errorf("unexpected warnings: %q", warn.String())
	}
	if len(p.Chapters) != 2 {
		t.Fatalf("got %d chapters, want 2", len(p.Chapters))
	}
	if p.Chapters[0].Key != "Ch1" || p.Chapters[1].Key != "Ch2" {
		t.Errorf("chapter order = %q, %q", p.Chapters[0].Key, p.Chapters[1].Key)
	}
	titles := []string{}
	for _, sc := range p.Chapters[0].Scenes {
		titles = append(titles, sc.Title)
	}
	if strings.Join(titles, ",") != "Opening,Conflict" {
		t.Errorf("Ch1 scenes = %v", titles)
	}
}

func TestParse_SortsScenesByOrder(t *testing.T) {
	sheet := &Sheet{
		Header: []string{"Chapter", "Scene", "Title"},
		Rows: [][]string{
			{"Ch1", "3", "Third"},
			{"Ch1", "1", "First"},
			{"Ch1", "2.0", "Second"}, // float-form order from a spreadsheet cell
		},
	}

	var warn bytes.Buffer
	p, _ := Parse(sheet, defaultSchema(t, sheet.Header), &warn)

	got := []string{}
	for _, sc := range p.Chapters[0].Scenes {
		got = append(got, sc.Title)
	}
	want := "First,Second,Third"
	if strings.Join(got, ",") != want {
		t.Errorf("scene order = %v, want %s", got, want)
	}
}

func TestParse_DuplicateOrderKeepsRowOrder(t *testing.T) {
	sheet := &Sheet{
		Header: []string{"Chapter", "Scene", "Title"},
		Rows: [][]string{
			{"Ch1", "1", "A"},
			{"Ch1", "1", "B"},
			{"Ch1", "1", "C"},
		},
	}

	var warn bytes.Buffer
	p, _ := Parse(sheet, defaultSchema(t, sheet.Header), &warn)

	got := []string{}
	for _, sc := range p.Chapters[0].Scenes {
		got = append(got, sc.Title)
	}
	if strings.Join(got, ",") != "A,B,C" {
		t.Errorf("tie order = %v, want A,B,C", got)
	}
}

func TestParse_SkipsMalformedRows(t *testing.T) {
	tests := []struct {
		name        string
		row         []string
		wantWarning string
	}{
		{
			name:        "blank chapter",
			row:         []string{"", "2", "Untitled"},
			wantWarning: "blank chapter",
		},
		{
			name:        "bad scene order",
			row:         []string{"Ch1", "two", "Untitled"},
			wantWarning: "bad scene order",
		},
		{
			name:        "empty scene order",
			row:         []string{"Ch1", "", "Untitled"},
			wantWarning: "bad scene order",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sheet := &Sheet{
				Header: []string{"Chapter", "Scene", "Title"},
				Rows: [][]string{
					{"Ch1", "1", "Opening"},
					tt.row,
				},
			}

			var warn bytes.Buffer
			p, summary := Parse(sheet, defaultSchema(t, sheet.Header), &warn)

			if summary.Skipped != 1 {
				t.Errorf("Skipped = %d, want 1", summary.Skipped)
			}
			if n := strings.Count(warn.String(), "warning:"); n != 1 {
				t.Errorf("got %d warnings, want exactly 1: %q", n, warn.String())
			}
			if !strings.Contains(warn.String(), tt.wantWarning) {
				t.Errorf("warning %q does not mention %q", warn.String(), tt.wantWarning)
			}
			if got := p.SceneCount(); got != 1 {
				t.Errorf("parsed scenes = %d, want 1", got)
			}
		})
	}
}

func TestParse_BlankRowsSilent(t *testing.T) {
	sheet := &Sheet{
		Header: []string{"Chapter", "Scene", "Title"},
		Rows: [][]string{
			{"Ch1", "1", "Opening"},
			{"", "", ""},
			{"  ", "", "   "},
		},
	}

	var warn bytes.Buffer
	_, summary := Parse(sheet, defaultSchema(t, sheet.Header), &warn)

	if summary.Blank != 2 {
		t.Errorf("Blank = %d, want 2", summary.Blank)
	}
	if warn.Len() != 0 {
		t.Errorf("blank rows must not warn, got %q", warn.String())
	}
}

func TestParse_EmptySheet(t *testing.T) {
	sheet := &Sheet{Header: []string{"Chapter", "Scene", "Title"}}

	var warn bytes.Buffer
	p, summary := Parse(sheet, defaultSchema(t, sheet.Header), &warn)

	if len(p.Chapters) != 0 {
		t.Errorf("got %d chapters, want 0", len(p.Chapters))
	}
	if summary.Total() != 0 {
		t.Errorf("summary = %+v, want all zero", summary)
	}
}

func TestParse_ChapterOrderColumn(t *testing.T) {
	cols := types.DefaultColumns()
	cols.ChapterOrder = "Arc"
	header := []string{"Chapter", "Scene", "Title", "Arc"}
	schema, err := ResolveSchema(header, cols)
	if err != nil {
		t.Fatal(err)
	}

	sheet := &Sheet{
		Header: header,
		Rows: [][]string{
			{"Finale", "1", "End", "3"},
			{"Opening", "1", "Start", "1"},
			{"Middle", "1", "Turn", "2"},
			{"Unordered", "1", "Extra", ""}, // no order value sorts last
		},
	}

	var warn bytes.Buffer
	p, _ := Parse(sheet, schema, &warn)

	got := []string{}
	for _, ch := range p.Chapters {
		got = append(got, ch.Key)
	}
	want := "Opening,Middle,Finale,Unordered"
	if strings.Join(got, ",") != want {
		t.Errorf("chapter order = %v, want %s", got, want)
	}
}

func TestParse_DetailsAndNotes(t *testing.T) {
	cols := types.DefaultColumns()
	cols.Details = []string{"POV", "Day"}
	header := []string{"Chapter", "Scene", "Title", "Notes", "POV", "Day"}
	schema, err := ResolveSchema(header, cols)
	if err != nil {
		t.Fatal(err)
	}

	sheet := &Sheet{
		Header: header,
		Rows: [][]string{
			{"Ch1", "1", "Opening", "slow burn", "Maya", "Monday"},
			{"Ch1", "2", "Conflict", "", "", "Tuesday"}, // empty details dropped
		},
	}

	var warn bytes.Buffer
	p, _ := Parse(sheet, schema, &warn)

	first := p.Chapters[0].Scenes[0]
	if first.Notes != "slow burn" {
		t.Errorf("Notes = %q", first.Notes)
	}
	if len(first.Details) != 2 || first.Details[0].Label != "POV" || first.Details[0].Value != "Maya" {
		t.Errorf("Details = %+v", first.Details)
	}

	second := p.Chapters[0].Scenes[1]
	if len(second.Details) != 1 || second.Details[0].Label != "Day" {
		t.Errorf("empty detail not dropped: %+v", second.Details)
	}
}

func TestParse_RaggedRows(t *testing.T) {
	sheet := &Sheet{
		Header: []string{"Chapter", "Scene", "Title", "Notes"},
		Rows: [][]string{
			{"Ch1", "1"}, // short row: title and notes read as empty
		},
	}

	var warn bytes.Buffer
	p, summary := Parse(sheet, defaultSchema(t, sheet.Header), &warn)

	if summary.Scenes != 1 {
		t.Fatalf("summary = %+v", summary)
	}
	if got := p.Chapters[0].Scenes[0].Title; got != "" {
		t.Errorf("Title = %q, want empty", got)
	}
}
