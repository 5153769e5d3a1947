package types

// ColumnsConfig names the spreadsheet columns the converter reads. Column
// matching against the header row is case-insensitive and ignores
// surrounding whitespace.
type ColumnsConfig struct {
	// Chapter is the required grouping column.
	Chapter string `json:"chapter" yaml:"chapter"`

	// Scene is the required scene-order column.
	Scene string `json:"scene" yaml:"scene"`

	// Title is the required scene title/summary column.
	Title string `json:"title" yaml:"title"`

	// Notes is an optional free-form notes column.
	Notes string `json:"notes,omitempty" yaml:"notes,omitempty"`

	// ChapterOrder optionally names a numeric column that orders chapters.
	// When absent or unmatched, chapters keep first-appearance order.
	ChapterOrder string `json:"chapter_order,omitempty" yaml:"chapter_order,omitempty"`

	// Details lists extra columns carried through to the output as
	// labelled bullets, in this order (e.g. POV, Day, Location).
	Details []string `json:"details,omitempty" yaml:"details,omitempty"`
}

// DefaultColumns returns the column names assumed when no configuration
// overrides them.
func DefaultColumns() ColumnsConfig {
	return ColumnsConfig{
		Chapter: "Chapter",
		Scene:   "Scene",
		Title:   "Title",
		Notes:   "Notes",
	}
}

// PlanConfig holds settings for the convert stage.
type PlanConfig struct {
	// Sheet is the worksheet to read: a sheet name, or a numeric index
	// ("0" is the first sheet). Empty means the first sheet.
	Sheet string `json:"sheet" yaml:"sheet"`

	// Columns maps the documented schema onto this spreadsheet's headers.
	Columns ColumnsConfig `json:"columns" yaml:"columns"`

	// Tags are written into frontmatter when AddMetadata is set.
	Tags []string `json:"tags,omitempty" yaml:"tags,omitempty"`

	// AddMetadata prepends YAML frontmatter to each chapter file in
	// split mode.
	AddMetadata bool `json:"add_metadata" yaml:"add_metadata"`

	// MetricsDetail is the detail label tallied by the metrics chart
	// (default "Day").
	MetricsDetail string `json:"metrics_detail" yaml:"metrics_detail"`
}

// WordsConfig holds settings for the word-frequency stage.
type WordsConfig struct {
	// TopN is the number of ranked words shown (default 20).
	TopN int `json:"top_n" yaml:"top_n"`
}

// TrackerConfig holds settings for the word-count tracker stage.
type TrackerConfig struct {
	// DataDir is the base directory for tracker state (contains index/).
	DataDir string `json:"data_dir" yaml:"data_dir"`

	// Milestones are the default scene-count milestones for projections.
	Milestones []int `json:"milestones,omitempty" yaml:"milestones,omitempty"`
}
