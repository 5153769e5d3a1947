// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package plan

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/pdiddy/story-engine/pkg/types"
)

// writeWorkbook creates an xlsx file whose first sheet holds rows.
func writeWorkbook(t *testing.T, path string, rows [][]any) {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	for i, row := range rows {
		cellRef, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cellRef, &row))
	}
	require.NoError(t, f.SaveAs(path))
}

func TestLoadSheet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.xlsx")
	writeWorkbook(t, path, [][]any{
		{"Chapter", "Scene", "Title"},
		{"Ch1", 1, "Opening"},
		{"Ch2", 1, "Resolution"},
	})

	sheet, err := LoadSheet(path, "")
	require.NoError(t, err)
	assert.Equal(t, "Sheet1", sheet.Name)
	assert.Equal(t, []string{"Chapter", "Scene", "Title"}, sheet.Header)
	assert.Len(t, sheet.Rows, 2)
}

func TestLoadSheet_SheetSelection(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.xlsx")
	writeWorkbook(t, path, [][]any{{"Chapter", "Scene", "Title"}})

	tests := []struct {
		name    string
		sheet   string
		wantErr bool
	}{
		{name: "by name", sheet: "Sheet1"},
		{name: "by index", sheet: "0"},
		{name: "index out of range", sheet: "3", wantErr: true},
		{name: "unknown name", sheet: "Outline", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadSheet(path, tt.sheet)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoadSheet_MissingFile(t *testing.T) {
	_, err := LoadSheet(filepath.Join(t.TempDir(), "nope.xlsx"), "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInputNotFound), "want ErrInputNotFound, got %v", err)
}

func TestLoadSheet_EmptyWorkbook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.xlsx")
	f := excelize.NewFile()
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	sheet, err := LoadSheet(path, "")
	require.NoError(t, err)
	assert.True(t, sheet.Empty())
}

func TestResolveSchema(t *testing.T) {
	cols := types.DefaultColumns()
	cols.Details = []string{"POV", "Day"}

	tests := []struct {
		name    string
		header  []string
		cols    types.ColumnsConfig
		want    Schema
		wantErr bool
	}{
		{
			name:   "default columns",
			header: []string{"Chapter", "Scene", "Title", "Notes"},
			cols:   types.DefaultColumns(),
			want:   Schema{Chapter: 0, Scene: 1, Title: 2, Notes: 3, ChapterOrder: -1},
		},
		{
			name:   "case and whitespace insensitive",
			header: []string{" chapter ", "SCENE", "title"},
			cols:   types.DefaultColumns(),
			want:   Schema{Chapter: 0, Scene: 1, Title: 2, Notes: -1, ChapterOrder: -1},
		},
		{
			name:   "details resolved in config order",
			header: []string{"Day", "Chapter", "Scene", "Title", "POV"},
			cols:   cols,
			want: Schema{
				Chapter: 1, Scene: 2, Title: 3, Notes: -1, ChapterOrder: -1,
				Details: []DetailColumn{{Label: "POV", Index: 4}, {Label: "Day", Index: 0}},
			},
		},
		{
			name:    "missing required column",
			header:  []string{"Chapter", "Title"},
			cols:    types.DefaultColumns(),
			wantErr: true,
		},
		{
			name:    "empty header",
			header:  nil,
			cols:    types.DefaultColumns(),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveSchema(tt.header, tt.cols)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrSchemaMissing), "want ErrSchemaMissing, got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveSchema_ReportsAllMissingColumns(t *testing.T) {
	_, err := ResolveSchema([]string{"Title"}, types.DefaultColumns())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Chapter")
	assert.Contains(t, err.Error(), "Scene")
}
