// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package chart renders bar-chart PNGs shared by the words, convert, and
// count stages.
package chart

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	gochart "github.com/wcharczuk/go-chart/v2"
)

// Value is one labelled bar.
type Value struct {
	Label string
	Count float64
}

// Bar renders values as a PNG bar chart to w.
func Bar(title string, values []Value, w io.Writer) error {
	if len(values) == 0 {
		return fmt.Errorf("no values to chart")
	}

	bars := make([]gochart.Value, len(values))
	for i, v := range values {
		bars[i] = gochart.Value{Label: v.Label, Value: v.Count}
	}

	c := gochart.BarChart{
		Title:    title,
		Width:    1024,
		Height:   512,
		BarWidth: 40,
		Background: gochart.Style{
			Padding: gochart.Box{Top: 40},
		},
		XAxis: gochart.Style{TextRotationDegrees: 45},
		Bars:  bars,
	}

	if err := c.Render(gochart.PNG, w); err != nil {
		return fmt.Errorf("rendering chart: %w", err)
	}
	return nil
}

// WriteBarPNG renders values to a PNG file at path, creating parent
// directories as needed.
func WriteBarPNG(title, path string, values []Value) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating chart directory: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating chart file: %w", err)
	}
	if err := Bar(title, values, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
