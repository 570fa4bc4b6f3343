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
	"errors"
	"fmt"
	"strings"

	"github.com/lexfell/go-appledict/internal/markup"
)

// ErrCorruptEntry indicates an entry fragment that does not match the
// expected entry envelope. Unlike byte-level resynchronization there is no
// safe retry at entry granularity, so this aborts the whole parse.
var ErrCorruptEntry = errors.New("corrupt entry")

const (
	entryOpen  = "<d:entry"
	entryClose = "</d:entry>"

	// sentinel marks the administrative trailer section of the dictionary.
	// Entries at and beyond the sentinel are not headwords.
	sentinel = "fbm_AdvisoryBoard"

	// sentinelWindow is how far into an entry's text the sentinel is
	// searched for.
	sentinelWindow = 1000
)

// RawEntry is a single undigested dictionary entry.
type RawEntry struct {
	// Key is the canonical headword.
	Key string

	// Content is the entry's complete markup fragment.
	Content string
}

// Split splits a decompressed segment payload into its entries. The second
// return value is true when the terminal sentinel was reached, meaning no
// further segments hold meaningful entries.
//
// A payload tail without a trailing newline is non-entry trailer data and is
// silently ignored.
func Split(payload []byte) ([]RawEntry, bool, error) {
	if len(payload) <= PayloadPrefix {
		return nil, false, nil
	}
	payload = payload[PayloadPrefix:]

	var entries []RawEntry
	for {
		i := bytes.IndexByte(payload, '\n')
		if i < 0 {
			return entries, false, nil
		}
		text := string(payload[:i])

		window := text
		if len(window) > sentinelWindow {
			window = window[:sentinelWindow]
		}
		if strings.Contains(window, sentinel) {
			return entries, true, nil
		}

		if !strings.HasPrefix(text, entryOpen) || !strings.HasSuffix(text, entryClose) {
			return nil, false, fmt.Errorf("%w: %q", ErrCorruptEntry, text)
		}

		key, err := markup.Title(text)
		if err != nil {
			return nil, false, fmt.Errorf("%w: %q: %v", ErrCorruptEntry, text, err)
		}
		entries = append(entries, RawEntry{
			Key:     key,
			Content: text,
		})

		// Skip the newline and the fixed filler before the next entry.
		next := i + 1 + EntryGap
		if next > len(payload) {
			next = len(payload)
		}
		payload = payload[next:]
	}
}
