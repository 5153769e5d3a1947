// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package chart

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

func TestBar(t *testing.T) {
	values := []Value{
		{Label: "Monday", Count: 3},
		{Label: "Tuesday", Count: 1},
	}

	var buf bytes.Buffer
	if err := Bar("Days of the Week", values, &buf); err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(buf.Bytes(), pngMagic) {
		t.Error("output is not a PNG")
	}
}

func TestBar_NoValues(t *testing.T) {
	var buf bytes.Buffer
	if err := Bar("empty", nil, &buf); err == nil {
		t.Error("expected error for empty values")
	}
}

func TestWriteBarPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "images", "days.png")

	if err := WriteBarPNG("Days", path, []Value{{Label: "Mon", Count: 2}}); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, pngMagic) {
		t.Error("file is not a PNG")
	}
}
