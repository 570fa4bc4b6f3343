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

package body

import (
	"bytes"
	"compress/zlib"
	"io"
)

// Format constants for the Body.data container. These are observed values
// for the New Oxford American Dictionary and are not self-describing; a
// structurally similar format with different padding would change only this
// block.
const (
	// HeaderSize is the length of the fixed container header preceding the
	// first compressed segment.
	HeaderSize = 100

	// PayloadPrefix is the number of filler bytes at the start of each
	// decompressed segment payload.
	PayloadPrefix = 4

	// EntryGap is the number of filler bytes between consecutive entries
	// within a decompressed segment payload.
	EntryGap = 4
)

// Segment is one independently compressed run of bytes in the container.
type Segment struct {
	// Offset is the byte offset in the container where the compressed
	// segment begins.
	Offset int64

	// Data is the decompressed segment payload.
	Data []byte
}

// Scanner scans a Body.data container from start to end, yielding
// decompressed segments. Bytes that do not begin a valid compressed stream
// are treated as padding and skipped one at a time; the Scanner never fails
// on malformed input.
type Scanner struct {
	data    []byte
	pos     int
	seg     *Segment
	stopped bool
}

// NewScanner returns a Scanner positioned past the container header.
func NewScanner(data []byte) *Scanner {
	pos := HeaderSize
	if pos > len(data) {
		pos = len(data)
	}
	return &Scanner{
		data: data,
		pos:  pos,
	}
}

// Scan advances the Scanner to the next segment. It returns false when the
// remaining input is exhausted or Stop has been called.
func (s *Scanner) Scan() bool {
	if s.stopped {
		return false
	}
	for s.pos < len(s.data) {
		payload, consumed, err := inflate(s.data[s.pos:])
		if err != nil {
			// Not a segment start. Resynchronize one byte forward.
			s.pos++
			continue
		}
		s.seg = &Segment{
			Offset: int64(s.pos),
			Data:   payload,
		}
		// Consumed bytes are never revisited; the unconsumed remainder is
		// the search origin for the next segment.
		s.pos += consumed
		return true
	}
	return false
}

// Segment returns the segment found by the last call to Scan.
func (s *Scanner) Segment() *Segment {
	return s.seg
}

// Stop ends scanning. Subsequent calls to Scan return false. Callers use
// this once the terminal sentinel entry has been seen so trailing segments
// are not decompressed.
func (s *Scanner) Stop() {
	s.stopped = true
}

// inflate decompresses a single zlib stream at the start of b. It reports
// the number of compressed bytes consumed, including the stream header and
// checksum.
func inflate(b []byte) ([]byte, int, error) {
	br := bytes.NewReader(b)
	zr, err := zlib.NewReader(br)
	if err != nil {
		return nil, 0, err
	}
	defer zr.Close()

	payload, err := io.ReadAll(zr)
	if err != nil {
		return nil, 0, err
	}

	// bytes.Reader is an io.ByteReader, so the flate decoder reads from it
	// directly without buffering and br.Len() is exact.
	return payload, len(b) - br.Len(), nil
}
