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

package body_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lexfell/go-appledict/body"
	"github.com/lexfell/go-appledict/internal/testutil"
)

// payload builds a decompressed segment payload from entry lines.
func payload(lines []string) []byte {
	var b bytes.Buffer
	b.Write(bytes.Repeat([]byte{0xff}, body.PayloadPrefix))
	for _, line := range lines {
		b.WriteString(line)
		b.WriteByte('\n')
		b.Write(bytes.Repeat([]byte{0xff}, body.EntryGap))
	}
	return b.Bytes()
}

// TestSplit tests Split.
func TestSplit(t *testing.T) {
	t.Parallel()

	houseXML := testutil.EntryXML("house", "a building for living in")
	vitalXML := testutil.EntryXML("vital", "absolutely necessary")

	tests := []struct {
		name    string
		payload []byte

		expected     []body.RawEntry
		expectedStop bool
	}{
		{
			name:    "empty payload",
			payload: nil,

			expected: nil,
		},
		{
			name:    "prefix only",
			payload: payload(nil),

			expected: nil,
		},
		{
			name:    "single entry",
			payload: payload([]string{houseXML}),

			expected: []body.RawEntry{
				{Key: "house", Content: houseXML},
			},
		},
		{
			name:    "multiple entries",
			payload: payload([]string{houseXML, vitalXML}),

			expected: []body.RawEntry{
				{Key: "house", Content: houseXML},
				{Key: "vital", Content: vitalXML},
			},
		},
		{
			name:    "sentinel stops parsing",
			payload: payload([]string{houseXML, testutil.Sentinel, vitalXML}),

			expected: []body.RawEntry{
				{Key: "house", Content: houseXML},
			},
			expectedStop: true,
		},
		{
			name: "tail without newline ignored",
			payload: append(
				payload([]string{houseXML}),
				[]byte("trailer data without newline")...,
			),

			expected: []body.RawEntry{
				{Key: "house", Content: houseXML},
			},
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			entries, stop, err := body.Split(test.payload)
			if err != nil {
				t.Fatalf("Split: %v", err)
			}
			if stop != test.expectedStop {
				t.Fatalf("Split stop: want %v, got %v", test.expectedStop, stop)
			}
			if diff := cmp.Diff(test.expected, entries); diff != "" {
				t.Fatalf("Split (-want, +got):\n%s", diff)
			}
		})
	}
}

// TestSplit_corrupt tests that malformed entries abort the parse.
func TestSplit_corrupt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		line string
	}{
		{
			name: "not an entry tag",
			line: "<html>not an entry</html>",
		},
		{
			name: "unterminated entry",
			line: `<d:entry xmlns:d="ns" d:title="x">partial`,
		},
		{
			name: "missing namespace declaration",
			line: `<d:entry d:title="x">no namespace</d:entry>`,
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			_, _, err := body.Split(payload([]string{test.line}))
			if !errors.Is(err, body.ErrCorruptEntry) {
				t.Fatalf("Split: want ErrCorruptEntry, got %v", err)
			}
		})
	}
}
