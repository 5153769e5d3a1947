// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package plan

import (
	"bytes"
	"strings"
	"testing"

	"github.com/pdiddy/story-engine/pkg/types"
)

func metricsPlan() types.Plan {
	day := func(v string) []types.Detail { return []types.Detail{{Label: "Day", Value: v}} }
	return types.Plan{
		Chapters: []types.Chapter{
			{Key: "1", Scenes: []types.SceneRow{
				{Title: "A", Details: day("Monday")},
				{Title: "B", Details: day("Tuesday")},
				{Title: "C", Details: day("Monday")},
			}},
			{Key: "2", Scenes: []types.SceneRow{
				{Title: "D", Details: day("Monday")},
			}},
		},
	}
}

func TestCollect(t *testing.T) {
	m := Collect(metricsPlan(), "Day")

	if m.Chapters != 2 || m.Scenes != 4 {
		t.Fatalf("Chapters=%d Scenes=%d", m.Chapters, m.Scenes)
	}

	if len(m.ScenesPerChapter) != 2 || m.ScenesPerChapter[0].Count != 3 || m.ScenesPerChapter[1].Count != 1 {
		t.Errorf("ScenesPerChapter = %+v", m.ScenesPerChapter)
	}

	// First-appearance order, summed counts.
	want := []LabelCount{{Label: "Monday", Count: 3}, {Label: "Tuesday", Count: 1}}
	if len(m.DetailCounts) != len(want) {
		t.Fatalf("DetailCounts = %+v", m.DetailCounts)
	}
	for i := range want {
		if m.DetailCounts[i] != want[i] {
			t.Errorf("DetailCounts[%d] = %+v, want %+v", i, m.DetailCounts[i], want[i])
		}
	}
}

func TestCollect_MissingDetail(t *testing.T) {
	m := Collect(metricsPlan(), "Weather")
	if len(m.DetailCounts) != 0 {
		t.Errorf("DetailCounts = %+v, want none", m.DetailCounts)
	}
}

func TestMetricsWrite(t *testing.T) {
	var buf bytes.Buffer
	Collect(metricsPlan(), "Day").Write(&buf)

	out := buf.String()
	for _, want := range []string{"2 chapters, 4 scenes", "Day distribution", "Monday", "Chapter 1"} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q:\n%s", want, out)
		}
	}
}

func TestWriteDetailChart_NoValues(t *testing.T) {
	m := Collect(types.Plan{}, "Day")
	if err := m.WriteDetailChart("unused.png"); err == nil {
		t.Error("expected error for empty distribution")
	}
}
