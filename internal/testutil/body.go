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

// Package testutil fabricates Body.data containers for tests.
package testutil

import (
	"bytes"
	"compress/zlib"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/lexfell/go-appledict/body"
)

// NS is the entry namespace used by fabricated entries.
const NS = "http://www.apple.com/DTDs/DictionaryService-1.0.rng"

// Sentinel is an entry line that marks the administrative trailer.
const Sentinel = `<d:entry xmlns:d="` + NS + `" d:title="front_back_matter" class="fbm_AdvisoryBoard">advisory board</d:entry>`

// junk is a padding byte that can never start a zlib stream.
const junk = 0xff

// EntryXML returns a minimal entry fragment for the given headword.
func EntryXML(key, inner string) string {
	return fmt.Sprintf(`<d:entry xmlns:d=%q d:title=%q>%s</d:entry>`, NS, key, inner)
}

// MakeSegment compresses entry lines into one segment: the fixed payload
// prefix, then each line followed by a newline and the inter-entry gap.
func MakeSegment(t *testing.T, lines []string) []byte {
	t.Helper()

	var payload bytes.Buffer
	payload.Write(bytes.Repeat([]byte{junk}, body.PayloadPrefix))
	for _, line := range lines {
		payload.WriteString(line)
		payload.WriteByte('\n')
		payload.Write(bytes.Repeat([]byte{junk}, body.EntryGap))
	}

	var out bytes.Buffer
	zw := zlib.NewWriter(&out)
	if _, err := zw.Write(payload.Bytes()); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	return out.Bytes()
}

// MakeContainer assembles a container image: the fixed header, then each
// compressed segment preceded by pad bytes of padding.
func MakeContainer(t *testing.T, segments [][]byte, pad int) []byte {
	t.Helper()

	var out bytes.Buffer
	out.Write(bytes.Repeat([]byte{junk}, body.HeaderSize))
	for i, seg := range segments {
		if i > 0 || pad > 0 {
			out.Write(bytes.Repeat([]byte{junk}, pad))
		}
		out.Write(seg)
	}
	return out.Bytes()
}

// MakeTempBody writes a container of the given entry lines to a Body.data
// file in a temp dir and returns its path.
func MakeTempBody(t *testing.T, lines []string) string {
	t.Helper()

	segment := MakeSegment(t, lines)
	raw := MakeContainer(t, [][]byte{segment}, 4)

	path := filepath.Join(t.TempDir(), "Body.data")
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}
