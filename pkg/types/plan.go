// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the shared data model for story-engine: scene plans,
// word-count tracking records, and per-stage configuration.
package types

// Detail is one labelled free-form field carried from a spreadsheet column
// into the rendered plan (e.g. POV, Day, Location).
type Detail struct {
	Label string `json:"label" yaml:"label"`
	Value string `json:"value" yaml:"value"`
}

// SceneRow is one parsed record from the scene-by-scene plan.
type SceneRow struct {
	// Chapter is the grouping key this scene belongs to.
	Chapter string `json:"chapter" yaml:"chapter"`

	// Order is the sort key within the chapter.
	Order int `json:"order" yaml:"order"`

	// Title is the scene title or summary text. May be empty.
	Title string `json:"title,omitempty" yaml:"title,omitempty"`

	// Notes is optional free-form text rendered after the scene details.
	Notes string `json:"notes,omitempty" yaml:"notes,omitempty"`

	// Details holds extra configured columns in configuration order.
	Details []Detail `json:"details,omitempty" yaml:"details,omitempty"`

	// SourceRow is the 1-based spreadsheet row the scene came from.
	SourceRow int `json:"source_row" yaml:"source_row"`
}

// Chapter groups the scenes sharing one chapter identifier, in ascending
// scene order.
type Chapter struct {
	Key    string     `json:"key" yaml:"key"`
	Scenes []SceneRow `json:"scenes" yaml:"scenes"`
}

// Plan is the in-memory form of a converted scene plan: an ordered sequence
// of chapters. Built fresh on every run; nothing persists between runs.
type Plan struct {
	Chapters []Chapter `json:"chapters" yaml:"chapters"`
}

// SceneCount returns the total number of scenes across all chapters.
func (p Plan) SceneCount() int {
	n := 0
	for _, c := range p.Chapters {
		n += len(c.Scenes)
	}
	return n
}
