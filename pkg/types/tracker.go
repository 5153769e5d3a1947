// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// SceneWordCount is one recorded word count for a scene in a chapter.
type SceneWordCount struct {
	Chapter    string    `json:"chapter" yaml:"chapter"`
	Scene      int       `json:"scene" yaml:"scene"`
	Words      int       `json:"words" yaml:"words"`
	RecordedAt time.Time `json:"recorded_at" yaml:"recorded_at"`
}

// ChapterStats summarizes the recorded scenes of one chapter.
type ChapterStats struct {
	// Chapter is the chapter name as recorded.
	Chapter string `json:"chapter" yaml:"chapter"`

	// Scenes is the number of recorded scenes.
	Scenes int `json:"scenes" yaml:"scenes"`

	// Words is the chapter word-count total.
	Words int `json:"words" yaml:"words"`

	// Average, Median, and StdDev are computed over the chapter's
	// per-scene word counts (population standard deviation).
	Average float64 `json:"average" yaml:"average"`
	Median  float64 `json:"median" yaml:"median"`
	StdDev  float64 `json:"std_dev" yaml:"std_dev"`
}

// Report is the word-count dashboard: per-chapter statistics in recording
// order plus manuscript-wide totals and the cumulative word-count series.
type Report struct {
	Chapters    []ChapterStats `json:"chapters" yaml:"chapters"`
	TotalWords  int            `json:"total_words" yaml:"total_words"`
	TotalScenes int            `json:"total_scenes" yaml:"total_scenes"`

	// SceneAverage is the mean word count across all recorded scenes.
	SceneAverage float64 `json:"scene_average" yaml:"scene_average"`

	// ChapterAverage is the mean chapter total across all chapters.
	ChapterAverage float64 `json:"chapter_average" yaml:"chapter_average"`

	// Cumulative holds the running word-count total after each scene,
	// walked in chapter order then scene order.
	Cumulative []int `json:"cumulative" yaml:"cumulative"`
}

// Projection forecasts the manuscript total at a milestone scene count.
type Projection struct {
	// Milestone is the projected total number of scenes.
	Milestone int `json:"milestone" yaml:"milestone"`

	// BySceneAverage projects from the mean scene word count.
	BySceneAverage float64 `json:"by_scene_average" yaml:"by_scene_average"`

	// ByChapterAverage projects from the mean chapter word count scaled
	// by the observed scenes-per-chapter ratio.
	ByChapterAverage float64 `json:"by_chapter_average" yaml:"by_chapter_average"`
}
