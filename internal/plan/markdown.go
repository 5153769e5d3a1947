// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package plan

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pdiddy/story-engine/pkg/types"
)

// RenderOptions control markdown output.
type RenderOptions struct {
	// Tags go into frontmatter when AddMetadata is set.
	Tags []string

	// AddMetadata prepends YAML frontmatter to each chapter file in
	// split mode. Ignored by RenderDocument, which must stay
	// byte-identical across runs.
	AddMetadata bool
}

// RenderDocument renders the whole plan as one markdown document: a level-1
// heading per chapter in chapter order, a level-2 heading per scene in scene
// order. Output is deterministic for a given plan.
func RenderDocument(plan types.Plan) string {
	var b strings.Builder
	for i, ch := range plan.Chapters {
		if i > 0 {
			b.WriteString("\n")
		}
		renderChapter(&b, ch)
	}
	return b.String()
}

// RenderChapterFile renders one chapter as a standalone document, with
// optional frontmatter.
func RenderChapterFile(ch types.Chapter, opts RenderOptions) string {
	var b strings.Builder
	if opts.AddMetadata {
		writeFrontmatter(&b, ch, opts.Tags)
	}
	renderChapter(&b, ch)
	return b.String()
}

func renderChapter(b *strings.Builder, ch types.Chapter) {
	fmt.Fprintf(b, "# %s\n", ChapterTitle(ch.Key))
	for i, sc := range ch.Scenes {
		b.WriteString("\n")
		if sc.Title != "" {
			fmt.Fprintf(b, "## Scene %d: %s\n", i+1, sc.Title)
		} else {
			fmt.Fprintf(b, "## Scene %d\n", i+1)
		}
		if len(sc.Details) > 0 {
			b.WriteString("\n")
			for _, d := range sc.Details {
				fmt.Fprintf(b, "- %s: %s\n", d.Label, d.Value)
			}
		}
		if sc.Notes != "" {
			fmt.Fprintf(b, "\n%s\n", sc.Notes)
		}
	}
}

// writeFrontmatter prepends YAML frontmatter carrying only stable values;
// no timestamps, so re-runs stay byte-identical.
func writeFrontmatter(b *strings.Builder, ch types.Chapter, tags []string) {
	b.WriteString("---\n")
	fmt.Fprintf(b, "chapter: %q\n", ch.Key)
	if len(tags) > 0 {
		fmt.Fprintf(b, "tags: %s\n", strings.Join(tags, ", "))
	}
	if len(ch.Scenes) > 0 {
		for _, d := range ch.Scenes[0].Details {
			fmt.Fprintf(b, "%s: %q\n", strings.ToLower(d.Label), d.Value)
		}
	}
	b.WriteString("---\n\n")
}

// ChapterTitle renders a chapter key as a heading. Bare numbers become
// "Chapter N" (the plan sheets usually number chapters); anything else is
// used verbatim.
func ChapterTitle(key string) string {
	if _, err := strconv.Atoi(key); err == nil {
		return "Chapter " + key
	}
	if f, err := strconv.ParseFloat(key, 64); err == nil {
		return "Chapter " + strconv.FormatFloat(f, 'f', -1, 64)
	}
	return key
}

// WriteDocument writes the single-document rendering to path, creating
// parent directories as needed.
func WriteDocument(plan types.Plan, path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(RenderDocument(plan)), 0o644); err != nil {
		return fmt.Errorf("writing document: %w", err)
	}
	return nil
}

// WriteChapterFiles writes one markdown file per chapter into dir, printing
// a progress line per file. File names derive from the chapter title.
func WriteChapterFiles(plan types.Plan, opts RenderOptions, dir string, progress io.Writer) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	for _, ch := range plan.Chapters {
		path := filepath.Join(dir, fileName(ch.Key))
		if err := os.WriteFile(path, []byte(RenderChapterFile(ch, opts)), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
		fmt.Fprintf(progress, "wrote: %s (%d scenes)\n", path, len(ch.Scenes))
	}
	return nil
}

// fileName sanitizes a chapter title into a markdown file name.
func fileName(key string) string {
	name := ChapterTitle(key)
	name = strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|':
			return '-'
		}
		return r
	}, name)
	return name + ".md"
}
