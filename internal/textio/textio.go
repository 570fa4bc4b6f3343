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

// Package textio reads text files of unknown encoding by trying a
// prioritized list of candidate encodings.
package textio

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// ErrUnknownEncoding indicates that no candidate encoding decoded the
// input without error.
var ErrUnknownEncoding = errors.New("unknown encoding")

// DefaultEncodings is the candidate list used when none is configured.
var DefaultEncodings = []string{"utf-8", "iso-8859-1", "ascii"}

// ReadFile reads the file at path, trying each candidate encoding in order
// until one decodes without error. It returns the decoded text and the name
// of the encoding that succeeded. If encodings is empty, DefaultEncodings
// is used.
func ReadFile(path string, encodings []string) (string, string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", "", fmt.Errorf("reading %q: %w", path, err)
	}
	if len(encodings) == 0 {
		encodings = DefaultEncodings
	}
	for _, name := range encodings {
		text, err := decode(raw, name)
		if err != nil {
			continue
		}
		return text, name, nil
	}
	return "", "", fmt.Errorf("%w: %q: tried %v", ErrUnknownEncoding, path, encodings)
}

func decode(raw []byte, name string) (string, error) {
	switch strings.ToLower(name) {
	case "utf-8", "utf8":
		if !utf8.Valid(raw) {
			return "", fmt.Errorf("invalid utf-8")
		}
		return string(raw), nil
	case "iso-8859-1", "latin-1", "latin1":
		text, err := charmap.ISO8859_1.NewDecoder().Bytes(raw)
		if err != nil {
			return "", fmt.Errorf("decoding iso-8859-1: %w", err)
		}
		return string(text), nil
	case "ascii", "us-ascii":
		for _, b := range raw {
			if b > 0x7f {
				return "", fmt.Errorf("non-ascii byte 0x%02x", b)
			}
		}
		return string(raw), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownEncoding, name)
	}
}
