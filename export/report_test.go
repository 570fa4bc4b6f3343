// Copyright 2025 The go-appledict Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package export_test

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lexfell/go-appledict"
	"github.com/lexfell/go-appledict/export"
	"github.com/lexfell/go-appledict/internal/testutil"
)

func reportDict() *appledict.Dictionary {
	return appledict.New([]*appledict.Entry{
		appledict.NewEntry("vital", testutil.EntryXML("vital", `<span class="sense">absolutely necessary</span>`)),
		appledict.NewEntry("house", testutil.EntryXML("house", "a building for living in")),
	})
}

// TestWriteReport tests HTML report rendering.
func TestWriteReport(t *testing.T) {
	t.Parallel()

	t.Run("renders entries in order", func(t *testing.T) {
		t.Parallel()

		var b strings.Builder
		if err := export.WriteReport(&b, reportDict(), []string{"vital", "house"}); err != nil {
			t.Fatalf("WriteReport: %v", err)
		}
		got := b.String()

		for _, want := range []string{
			`<link rel="stylesheet" href="CustomStyle.css">`,
			`<div class="div-entry">`,
			"absolutely necessary",
			"a building for living in",
			"</body>",
		} {
			if !strings.Contains(got, want) {
				t.Fatalf("report missing %q:\n%s", want, got)
			}
		}
		if strings.Index(got, "absolutely necessary") > strings.Index(got, "a building for living in") {
			t.Fatalf("entries out of order:\n%s", got)
		}
	})

	t.Run("unresolvable word aborts", func(t *testing.T) {
		t.Parallel()

		err := export.WriteReport(io.Discard, reportDict(), []string{"vital", "ghost"})
		if !errors.Is(err, appledict.ErrWordNotFound) {
			t.Fatalf("WriteReport: want ErrWordNotFound, got %v", err)
		}
	})
}

// TestWriteReportFile tests report output with style sheets.
func TestWriteReportFile(t *testing.T) {
	t.Parallel()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	// Fabricate a dictionary directory with a style sheet next to
	// Body.data.
	dictDir := t.TempDir()
	dictPath := filepath.Join(dictDir, "Body.data")
	if err := os.WriteFile(filepath.Join(dictDir, "DefaultStyle.css"), []byte("body {}\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	outDir := filepath.Join(t.TempDir(), "report")
	outputPath := filepath.Join(outDir, "lookup.html")
	if err := export.WriteReportFile(outputPath, dictPath, reportDict(), []string{"vital"}, logger); err != nil {
		t.Fatalf("WriteReportFile: %v", err)
	}

	for _, name := range []string{"lookup.html", "DefaultStyle.css", "CustomStyle.css"} {
		if _, err := os.Stat(filepath.Join(outDir, name)); err != nil {
			t.Fatalf("missing output %s: %v", name, err)
		}
	}
}

// TestText tests plain text rendering.
func TestText(t *testing.T) {
	t.Parallel()

	e := appledict.NewEntry("vital", testutil.EntryXML("vital", "absolutely <b>necessary</b>"))
	got := export.Text(e)
	if !strings.Contains(got, "absolutely necessary") {
		t.Fatalf("Text: want substring %q, got %q", "absolutely necessary", got)
	}
}
