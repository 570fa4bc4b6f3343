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

// Package export writes and reads vocabulary archives and lookup reports.
//
// A vocabulary archive is a zip file holding master.json, a document with
// definitions, links and scores for a filtered dictionary, plus
// fulltext.txt, the processed source text the vocabulary was extracted
// from.
package export

import (
	"archive/zip"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/lexfell/go-appledict"
)

const (
	masterName   = "master.json"
	fulltextName = "fulltext.txt"
)

// Archive is the master document of a vocabulary archive.
type Archive struct {
	// Definitions maps words to their raw entry markup.
	Definitions map[string]string `json:"definitions"`

	// Links maps words to the canonical words whose entries define them.
	Links map[string]string `json:"links"`

	// Scores maps words to rarity scores; lower is rarer.
	Scores map[string]float64 `json:"scores"`
}

// FromDictionary builds an Archive from a filtered dictionary and its
// scores.
func FromDictionary(d *appledict.Dictionary, scores map[string]float64) (*Archive, error) {
	defs := make(map[string]string, d.Len())
	for _, w := range d.Keys() {
		e, err := d.Lookup(w)
		if err != nil {
			return nil, err
		}
		defs[w] = e.Content()
	}
	return &Archive{
		Definitions: defs,
		Links:       d.Links(),
		Scores:      scores,
	}, nil
}

// Write writes the archive and the processed full text to w as a zip.
func Write(w io.Writer, a *Archive, fulltext string) error {
	zw := zip.NewWriter(w)

	f, err := zw.Create(masterName)
	if err != nil {
		return fmt.Errorf("creating %s: %w", masterName, err)
	}
	enc := json.NewEncoder(f)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(a); err != nil {
		return fmt.Errorf("encoding %s: %w", masterName, err)
	}

	f, err = zw.Create(fulltextName)
	if err != nil {
		return fmt.Errorf("creating %s: %w", fulltextName, err)
	}
	if _, err := io.WriteString(f, fulltext); err != nil {
		return fmt.Errorf("writing %s: %w", fulltextName, err)
	}

	if err := zw.Close(); err != nil {
		return fmt.Errorf("closing archive: %w", err)
	}
	return nil
}

// WriteFile writes the archive to path, creating parent directories.
func WriteFile(path string, a *Archive, fulltext string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating %q: %w", dir, err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %q: %w", path, err)
	}
	defer f.Close()
	if err := Write(f, a, fulltext); err != nil {
		return fmt.Errorf("writing %q: %w", path, err)
	}
	return nil
}

// Read reads an archive and its full text from r.
func Read(r io.ReaderAt, size int64) (*Archive, string, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return nil, "", fmt.Errorf("opening archive: %w", err)
	}

	var a Archive
	mf, err := zr.Open(masterName)
	if err != nil {
		return nil, "", fmt.Errorf("opening %s: %w", masterName, err)
	}
	defer mf.Close()
	if err := json.NewDecoder(mf).Decode(&a); err != nil {
		return nil, "", fmt.Errorf("decoding %s: %w", masterName, err)
	}

	tf, err := zr.Open(fulltextName)
	if err != nil {
		return nil, "", fmt.Errorf("opening %s: %w", fulltextName, err)
	}
	defer tf.Close()
	fulltext, err := io.ReadAll(tf)
	if err != nil {
		return nil, "", fmt.Errorf("reading %s: %w", fulltextName, err)
	}

	return &a, string(fulltext), nil
}

// ReadFile reads an archive written by WriteFile.
func ReadFile(path string) (*Archive, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("opening %q: %w", path, err)
	}
	defer f.Close()
	fi, err := f.Stat()
	if err != nil {
		return nil, "", fmt.Errorf("stat %q: %w", path, err)
	}
	return Read(f, fi.Size())
}
