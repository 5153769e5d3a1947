// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/story-engine/internal/chart"
	"github.com/pdiddy/story-engine/internal/tracker"
	"github.com/pdiddy/story-engine/pkg/types"
)

var countCmd = &cobra.Command{
	Use:   "count",
	Short: "Track per-scene word counts (add, report, project, chart, export)",
	Long: `Count maintains a local database of per-scene word counts and reports
running totals, per-chapter statistics, and milestone projections. Every
mutating command also refreshes a flat YAML export next to the database.`,
}

// --- add subcommand ---

var countAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Record (or overwrite) the word count for one scene",
	RunE:  runCountAdd,
}

func runCountAdd(cmd *cobra.Command, args []string) error {
	chapter, _ := cmd.Flags().GetString("chapter")
	scene, _ := cmd.Flags().GetInt("scene")
	wordCount, _ := cmd.Flags().GetInt("words")

	store, err := tracker.NewStore(trackerConfig(cmd))
	if err != nil {
		return err
	}
	defer store.Close()

	ctx := context.Background()
	if err := store.Record(ctx, chapter, scene, wordCount); err != nil {
		return err
	}
	if err := store.ExportYAML(ctx, ""); err != nil {
		return err
	}

	fmt.Printf("recorded: %s scene %d (%d words)\n", chapter, scene, wordCount)
	return nil
}

// --- report subcommand ---

var countReportCmd = &cobra.Command{
	Use:   "report",
	Short: "Show running totals and per-chapter statistics",
	RunE:  runCountReport,
}

func runCountReport(cmd *cobra.Command, args []string) error {
	store, err := tracker.NewStore(trackerConfig(cmd))
	if err != nil {
		return err
	}
	defer store.Close()

	report, err := store.Report(context.Background())
	if err != nil {
		return err
	}
	tracker.WriteReport(report, os.Stdout)
	return nil
}

// --- project subcommand ---

var countProjectCmd = &cobra.Command{
	Use:   "project",
	Short: "Forecast manuscript totals at milestone scene counts",
	RunE:  runCountProject,
}

func runCountProject(cmd *cobra.Command, args []string) error {
	milestones := viper.GetIntSlice("count.milestones")
	if cmd.Flags().Changed("milestones") {
		milestones, _ = cmd.Flags().GetIntSlice("milestones")
	}

	store, err := tracker.NewStore(trackerConfig(cmd))
	if err != nil {
		return err
	}
	defer store.Close()

	report, err := store.Report(context.Background())
	if err != nil {
		return err
	}
	tracker.WriteProjections(tracker.Project(report, milestones), os.Stdout)
	return nil
}

// --- chart subcommand ---

var countChartCmd = &cobra.Command{
	Use:   "chart",
	Short: "Render per-chapter word-count totals as a bar-chart PNG",
	RunE:  runCountChart,
}

func runCountChart(cmd *cobra.Command, args []string) error {
	output, _ := cmd.Flags().GetString("output")

	store, err := tracker.NewStore(trackerConfig(cmd))
	if err != nil {
		return err
	}
	defer store.Close()

	report, err := store.Report(context.Background())
	if err != nil {
		return err
	}
	if len(report.Chapters) == 0 {
		return fmt.Errorf("no scene counts recorded")
	}

	values := make([]chart.Value, len(report.Chapters))
	for i, c := range report.Chapters {
		values[i] = chart.Value{Label: c.Chapter, Count: float64(c.Words)}
	}
	if err := chart.WriteBarPNG("Word Count per Chapter", output, values); err != nil {
		return err
	}
	fmt.Printf("wrote: %s\n", output)
	return nil
}

// --- export subcommand ---

var countExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the tracker snapshot to a YAML file",
	RunE:  runCountExport,
}

func runCountExport(cmd *cobra.Command, args []string) error {
	output, _ := cmd.Flags().GetString("output")

	store, err := tracker.NewStore(trackerConfig(cmd))
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.ExportYAML(context.Background(), output); err != nil {
		return err
	}
	if output == "" {
		output = store.ExportPath()
	}
	fmt.Printf("exported: %s\n", output)
	return nil
}

// --- shared helpers ---

func trackerConfig(cmd *cobra.Command) types.TrackerConfig {
	dataDir := viper.GetString("count.data_dir")
	if cmd.Flags().Changed("data-dir") {
		dataDir, _ = cmd.Flags().GetString("data-dir")
	}
	return types.TrackerConfig{DataDir: dataDir}
}

func init() {
	countCmd.PersistentFlags().String("data-dir", "", "base directory for tracker state (default from config, \"counts\")")

	countAddCmd.Flags().StringP("chapter", "c", "", "chapter name")
	countAddCmd.Flags().IntP("scene", "s", 0, "scene number within the chapter")
	countAddCmd.Flags().IntP("words", "w", -1, "word count for the scene")
	countAddCmd.MarkFlagRequired("chapter")
	countAddCmd.MarkFlagRequired("scene")
	countAddCmd.MarkFlagRequired("words")

	countProjectCmd.Flags().IntSlice("milestones", nil, "scene-count milestones to forecast (default from config)")

	countChartCmd.Flags().StringP("output", "o", "counts.png", "output PNG path")

	countExportCmd.Flags().StringP("output", "o", "", "output YAML path (default: <data-dir>/index/counts.yaml)")

	countCmd.AddCommand(countAddCmd)
	countCmd.AddCommand(countReportCmd)
	countCmd.AddCommand(countProjectCmd)
	countCmd.AddCommand(countChartCmd)
	countCmd.AddCommand(countExportCmd)
	rootCmd.AddCommand(countCmd)
}
