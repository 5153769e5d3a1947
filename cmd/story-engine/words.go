// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/story-engine/internal/chart"
	"github.com/pdiddy/story-engine/internal/words"
)

var wordsCmd = &cobra.Command{
	Use:   "words <dir>",
	Short: "Rank word frequencies from a folder of word,count CSV files",
	Long: `Words reads every .csv file in a directory, sums per-word counts across
files, and prints a ranked table of the most frequent words. Records with a
non-integer count are skipped with a warning.

With --chart, the top words are also rendered as a bar-chart PNG.`,
	Args: cobra.ExactArgs(1),
	RunE: runWords,
}

func init() {
	wordsCmd.Flags().IntP("top", "n", 0, "number of ranked words to show (default from config, 20)")
	wordsCmd.Flags().String("chart", "", "write a bar chart of the top words to this PNG path")

	rootCmd.AddCommand(wordsCmd)
}

func runWords(cmd *cobra.Command, args []string) error {
	topN := viper.GetInt("words.top_n")
	if cmd.Flags().Changed("top") {
		topN, _ = cmd.Flags().GetInt("top")
	}

	counts, summary, err := words.Aggregate(args[0], os.Stderr)
	if err != nil {
		return err
	}
	if summary.Files == 0 {
		return fmt.Errorf("no .csv files found in %s", args[0])
	}

	ranked := words.Rank(counts)
	words.WriteTable(ranked, topN, os.Stdout)
	fmt.Printf("\n%d words from %d files (%d rows, %d skipped)\n",
		len(ranked), summary.Files, summary.Rows, summary.Skipped)

	chartPath, _ := cmd.Flags().GetString("chart")
	if chartPath != "" {
		if err := chart.WriteBarPNG("Top Words by Occurrence", chartPath, words.ChartValues(ranked, topN)); err != nil {
			return err
		}
		fmt.Printf("wrote: %s\n", chartPath)
	}

	return nil
}
