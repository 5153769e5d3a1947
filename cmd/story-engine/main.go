// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the story-engine CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the story-engine CLI.
var rootCmd = &cobra.Command{
	Use:   "story-engine",
	Short: "Writing-assistance tooling for scene-planned fiction",
	Long: `story-engine converts a tabulated scene-by-scene plan into a
chapter-by-chapter markdown plan, aggregates word-frequency CSV summaries,
and tracks per-scene word counts with running totals and milestone
projections.

Each tool is a subcommand: convert, words, and count. Column names,
working directories, and defaults come from story-engine.yaml or
STORY_ENGINE_* environment variables; flags override both.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./story-engine.yaml or ~/.config/story-engine/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("story-engine")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "story-engine"))
		}
	}

	viper.SetEnvPrefix("STORY_ENGINE")
	viper.AutomaticEnv()

	viper.SetDefault("plan.columns.chapter", "Chapter")
	viper.SetDefault("plan.columns.scene", "Scene")
	viper.SetDefault("plan.columns.title", "Title")
	viper.SetDefault("plan.columns.notes", "Notes")
	viper.SetDefault("plan.metrics_detail", "Day")
	viper.SetDefault("words.top_n", 20)
	viper.SetDefault("count.data_dir", "counts")
	viper.SetDefault("count.milestones", []int{10, 15, 20, 25, 30})

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
