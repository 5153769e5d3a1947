// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/story-engine/internal/plan"
	"github.com/pdiddy/story-engine/pkg/types"
)

var convertCmd = &cobra.Command{
	Use:   "convert <input.xlsx>",
	Short: "Convert a scene-by-scene plan into a chapter-by-chapter markdown plan",
	Long: `Convert reads a tabulated scene-by-scene spreadsheet plan and writes a
markdown document organized by chapter, each chapter containing its scenes
in order.

Column names come from plan.columns in the config file; by default the
sheet needs Chapter, Scene, and Title columns, with Notes optional. Rows
with a blank chapter or an unparsable scene order are skipped with a
warning; fully blank rows are skipped silently.

By default the whole plan becomes one document. With --split, each chapter
becomes its own file in the output directory (optionally with YAML
frontmatter via --add-metadata).`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().StringP("output", "o", "", "output file, or directory with --split (default: derived from the input name)")
	convertCmd.Flags().StringP("sheet", "s", "", "sheet name or zero-based index to read (default: first sheet)")
	convertCmd.Flags().Bool("split", false, "write one markdown file per chapter instead of a single document")
	convertCmd.Flags().StringSliceP("tags", "t", nil, "frontmatter tags for --add-metadata")
	convertCmd.Flags().Bool("add-metadata", false, "prepend YAML frontmatter to chapter files (split mode)")
	convertCmd.Flags().BoolP("metrics", "g", false, "print plan metrics (scenes per chapter, detail distribution)")
	convertCmd.Flags().String("save-metrics", "", "write the detail-distribution chart to this PNG path")

	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	input := args[0]
	cfg := planConfig(cmd)

	sheet, err := plan.LoadSheet(input, cfg.Sheet)
	if err != nil {
		return err
	}

	var p types.Plan
	var summary plan.ParseSummary
	if !sheet.Empty() {
		schema, err := plan.ResolveSchema(sheet.Header, cfg.Columns)
		if err != nil {
			return err
		}
		p, summary = plan.Parse(sheet, schema, os.Stderr)
	}

	split, _ := cmd.Flags().GetBool("split")
	output, _ := cmd.Flags().GetString("output")

	if split {
		if output == "" {
			output = strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
		}
		opts := plan.RenderOptions{Tags: cfg.Tags, AddMetadata: cfg.AddMetadata}
		if err := plan.WriteChapterFiles(p, opts, output, os.Stdout); err != nil {
			return err
		}
	} else {
		if output == "" {
			output = strings.TrimSuffix(input, filepath.Ext(input)) + ".md"
		}
		if err := plan.WriteDocument(p, output); err != nil {
			return err
		}
		fmt.Printf("wrote: %s\n", output)
	}

	fmt.Printf("%d chapters, %d scenes (%d rows skipped, %d blank)\n",
		len(p.Chapters), summary.Scenes, summary.Skipped, summary.Blank)

	showMetrics, _ := cmd.Flags().GetBool("metrics")
	chartPath, _ := cmd.Flags().GetString("save-metrics")
	if showMetrics || chartPath != "" {
		m := plan.Collect(p, cfg.MetricsDetail)
		if showMetrics {
			fmt.Println()
			m.Write(os.Stdout)
		}
		if chartPath != "" {
			if err := m.WriteDetailChart(chartPath); err != nil {
				return err
			}
			fmt.Printf("wrote: %s\n", chartPath)
		}
	}

	return nil
}

// planConfig resolves convert settings from the config file with flag
// overrides.
func planConfig(cmd *cobra.Command) types.PlanConfig {
	cfg := types.PlanConfig{
		Sheet: viper.GetString("plan.sheet"),
		Columns: types.ColumnsConfig{
			Chapter:      viper.GetString("plan.columns.chapter"),
			Scene:        viper.GetString("plan.columns.scene"),
			Title:        viper.GetString("plan.columns.title"),
			Notes:        viper.GetString("plan.columns.notes"),
			ChapterOrder: viper.GetString("plan.columns.chapter_order"),
			Details:      viper.GetStringSlice("plan.columns.details"),
		},
		Tags:          viper.GetStringSlice("plan.tags"),
		MetricsDetail: viper.GetString("plan.metrics_detail"),
	}

	if cmd.Flags().Changed("sheet") {
		cfg.Sheet, _ = cmd.Flags().GetString("sheet")
	}
	if cmd.Flags().Changed("tags") {
		cfg.Tags, _ = cmd.Flags().GetStringSlice("tags")
	}
	cfg.AddMetadata, _ = cmd.Flags().GetBool("add-metadata")

	return cfg
}
