// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package tracker

import (
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/story-engine/pkg/types"
)

// Project forecasts manuscript totals at each milestone scene count, using
// two estimates: the mean scene word count, and the mean chapter word count
// scaled by the observed scenes-per-chapter ratio.
func Project(r types.Report, milestones []int) []types.Projection {
	if r.TotalScenes == 0 || len(r.Chapters) == 0 {
		return nil
	}

	scenesPerChapter := float64(r.TotalScenes) / float64(len(r.Chapters))

	projections := make([]types.Projection, 0, len(milestones))
	for _, m := range milestones {
		if m <= 0 {
			continue
		}
		projections = append(projections, types.Projection{
			Milestone:        m,
			BySceneAverage:   r.SceneAverage * float64(m),
			ByChapterAverage: r.ChapterAverage * float64(m) / scenesPerChapter,
		})
	}
	return projections
}

// WriteProjections prints the forecasts as a text table.
func WriteProjections(projections []types.Projection, w io.Writer) {
	if len(projections) == 0 {
		fmt.Fprintln(w, "Not enough recorded scenes to project.")
		return
	}

	fmt.Fprintf(w, "%-10s %18s %20s\n", "Scenes", "By scene average", "By chapter average")
	fmt.Fprintln(w, strings.Repeat("-", 50))
	for _, p := range projections {
		fmt.Fprintf(w, "%-10d %18.0f %20.0f\n", p.Milestone, p.BySceneAverage, p.ByChapterAverage)
	}
}
