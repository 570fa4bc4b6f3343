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
	"compress/zlib"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lexfell/go-appledict/body"
)

// compress deflates payload into a single zlib stream.
func compress(t *testing.T, payload []byte) []byte {
	t.Helper()

	var out bytes.Buffer
	zw := zlib.NewWriter(&out)
	if _, err := zw.Write(payload); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	return out.Bytes()
}

// container builds a raw container image from alternating padding lengths
// and compressed segments: pad[0] bytes, segment[0], pad[1] bytes, ...
func container(pads []int, segments [][]byte) []byte {
	var out bytes.Buffer
	out.Write(bytes.Repeat([]byte{0xff}, body.HeaderSize))
	for i, seg := range segments {
		out.Write(bytes.Repeat([]byte{0xff}, pads[i]))
		out.Write(seg)
	}
	return out.Bytes()
}

// TestScanner_Scan tests Scanner.Scan.
func TestScanner_Scan(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		pads     []int
		payloads []string

		expected []*body.Segment
	}{
		{
			name:     "empty input",
			pads:     nil,
			payloads: nil,

			expected: nil,
		},
		{
			name:     "single segment no padding",
			pads:     []int{0},
			payloads: []string{"hello segment"},

			expected: []*body.Segment{
				{
					Offset: int64(body.HeaderSize),
					Data:   []byte("hello segment"),
				},
			},
		},
		{
			name:     "padding before first segment",
			pads:     []int{6},
			payloads: []string{"after resync"},

			expected: []*body.Segment{
				{
					Offset: int64(body.HeaderSize + 6),
					Data:   []byte("after resync"),
				},
			},
		},
		{
			name:     "multiple segments with gaps",
			pads:     []int{0, 4, 4},
			payloads: []string{"first", "second", "third"},

			expected: []*body.Segment{
				{Data: []byte("first")},
				{Data: []byte("second")},
				{Data: []byte("third")},
			},
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			var segments [][]byte
			for _, p := range test.payloads {
				segments = append(segments, compress(t, []byte(p)))
			}
			raw := container(test.pads, segments)

			var got []*body.Segment
			s := body.NewScanner(raw)
			for s.Scan() {
				got = append(got, s.Segment())
			}

			// Offsets for multi-segment cases depend on compressed sizes;
			// compare payloads, then verify each offset independently.
			var gotData, wantData [][]byte
			for _, seg := range got {
				gotData = append(gotData, seg.Data)
			}
			for _, seg := range test.expected {
				wantData = append(wantData, seg.Data)
			}
			if diff := cmp.Diff(wantData, gotData); diff != "" {
				t.Fatalf("Scanner payloads (-want, +got):\n%s", diff)
			}

			for i, seg := range test.expected {
				if seg.Offset != 0 && got[i].Offset != seg.Offset {
					t.Fatalf("segment %d offset: want %d, got %d", i, seg.Offset, got[i].Offset)
				}
			}
		})
	}
}

// TestScanner_offsets tests that reported segment offsets are exact: a
// fresh decompression at each offset reproduces the segment payload.
func TestScanner_offsets(t *testing.T) {
	t.Parallel()

	segments := [][]byte{
		compress(t, []byte("alpha")),
		compress(t, []byte("beta")),
		compress(t, []byte("gamma")),
	}
	raw := container([]int{3, 7, 1}, segments)

	s := body.NewScanner(raw)
	for s.Scan() {
		seg := s.Segment()

		// Re-running the decompressor at the reported offset must succeed
		// and reproduce the payload.
		rerun := append(bytes.Repeat([]byte{0xff}, body.HeaderSize), raw[seg.Offset:]...)
		s2 := body.NewScanner(rerun)
		if !s2.Scan() {
			t.Fatalf("no segment found at reported offset %d", seg.Offset)
		}
		if diff := cmp.Diff(seg.Data, s2.Segment().Data); diff != "" {
			t.Fatalf("segment at offset %d (-want, +got):\n%s", seg.Offset, diff)
		}
	}
}

// TestScanner_Stop tests that Stop ends scanning.
func TestScanner_Stop(t *testing.T) {
	t.Parallel()

	segments := [][]byte{
		compress(t, []byte("first")),
		compress(t, []byte("second")),
	}
	raw := container([]int{0, 4}, segments)

	s := body.NewScanner(raw)
	if !s.Scan() {
		t.Fatal("expected first segment")
	}
	s.Stop()
	if s.Scan() {
		t.Fatal("expected scan to stop")
	}
}

// TestScanner_truncated tests that truncated trailing data is a soft stop.
func TestScanner_truncated(t *testing.T) {
	t.Parallel()

	seg := compress(t, []byte("whole"))
	raw := container([]int{0}, [][]byte{seg})
	// Append half of another compressed stream.
	raw = append(raw, compress(t, []byte("partial"))[:4]...)

	s := body.NewScanner(raw)
	if !s.Scan() {
		t.Fatal("expected first segment")
	}
	if diff := cmp.Diff([]byte("whole"), s.Segment().Data); diff != "" {
		t.Fatalf("segment payload (-want, +got):\n%s", diff)
	}
	if s.Scan() {
		t.Fatal("expected no segment in truncated tail")
	}
}

// TestScanner_shortInput tests containers smaller than the header.
func TestScanner_shortInput(t *testing.T) {
	t.Parallel()

	s := body.NewScanner([]byte{0x01, 0x02})
	if s.Scan() {
		t.Fatal("expected no segments")
	}
}
