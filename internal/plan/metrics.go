// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package plan

import (
	"fmt"
	"io"

	"github.com/pdiddy/story-engine/internal/chart"
	"github.com/pdiddy/story-engine/pkg/types"
)

// LabelCount is one tallied label, in first-appearance order.
type LabelCount struct {
	Label string
	Count int
}

// Metrics holds descriptive statistics over a parsed plan.
type Metrics struct {
	Chapters         int
	Scenes           int
	ScenesPerChapter []LabelCount

	// DetailLabel is the detail field tallied into DetailCounts
	// (e.g. "Day" for a day-of-week distribution).
	DetailLabel  string
	DetailCounts []LabelCount
}

// Collect computes plan metrics. detailLabel selects which detail field to
// tally; scenes without that field are ignored in the tally.
func Collect(p types.Plan, detailLabel string) Metrics {
	m := Metrics{
		Chapters:    len(p.Chapters),
		Scenes:      p.SceneCount(),
		DetailLabel: detailLabel,
	}

	seen := make(map[string]int)
	for _, ch := range p.Chapters {
		m.ScenesPerChapter = append(m.ScenesPerChapter, LabelCount{
			Label: ChapterTitle(ch.Key),
			Count: len(ch.Scenes),
		})
		for _, sc := range ch.Scenes {
			for _, d := range sc.Details {
				if d.Label != detailLabel {
					continue
				}
				if i, ok := seen[d.Value]; ok {
					m.DetailCounts[i].Count++
				} else {
					seen[d.Value] = len(m.DetailCounts)
					m.DetailCounts = append(m.DetailCounts, LabelCount{Label: d.Value, Count: 1})
				}
			}
		}
	}

	return m
}

// Write prints the metrics as a short text report.
func (m Metrics) Write(w io.Writer) {
	fmt.Fprintf(w, "%d chapters, %d scenes\n", m.Chapters, m.Scenes)
	for _, c := range m.ScenesPerChapter {
		fmt.Fprintf(w, "  %-30s %d\n", c.Label, c.Count)
	}
	if len(m.DetailCounts) > 0 {
		fmt.Fprintf(w, "\n%s distribution:\n", m.DetailLabel)
		for _, c := range m.DetailCounts {
			fmt.Fprintf(w, "  %-30s %d\n", c.Label, c.Count)
		}
	}
}

// WriteDetailChart renders the detail distribution as a bar-chart PNG.
func (m Metrics) WriteDetailChart(path string) error {
	if len(m.DetailCounts) == 0 {
		return fmt.Errorf("no %q values to chart", m.DetailLabel)
	}
	values := make([]chart.Value, len(m.DetailCounts))
	for i, c := range m.DetailCounts {
		values[i] = chart.Value{Label: c.Label, Count: float64(c.Count)}
	}
	return chart.WriteBarPNG(m.DetailLabel+" distribution", path, values)
}
