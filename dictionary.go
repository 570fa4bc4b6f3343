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

package appledict

import (
	"errors"
	"fmt"
)

// ErrWordNotFound indicates a word absent from both the headword index and
// the link table.
var ErrWordNotFound = errors.New("word not found")

// Dictionary is an in-memory dictionary: a headword index plus a link table
// mapping non-headword word forms to the headwords that define them.
//
// Invariant for dictionaries built by New: every link target is a headword,
// and no link is itself a headword.
type Dictionary struct {
	entries map[string]*Entry

	// keys holds headwords in first-insertion order so link resolution and
	// exports are deterministic.
	keys []string

	links map[string]string
}

// New folds the ordered entry list into a Dictionary. When a headword
// recurs the later entry wins. The link table is then built from every
// entry's related words in entry order: the first entry claiming an
// unclaimed word wins, and words that are already headwords or links are
// skipped.
func New(entries []*Entry) *Dictionary {
	d := &Dictionary{
		entries: make(map[string]*Entry, len(entries)),
		links:   make(map[string]string),
	}
	for _, e := range entries {
		if _, ok := d.entries[e.Key()]; !ok {
			d.keys = append(d.keys, e.Key())
		}
		d.entries[e.Key()] = e
	}
	for _, key := range d.keys {
		for _, w := range d.entries[key].RelatedWords() {
			if _, ok := d.entries[w]; ok {
				continue
			}
			if _, ok := d.links[w]; ok {
				continue
			}
			d.links[w] = key
		}
	}
	return d
}

// Len returns the number of headwords.
func (d *Dictionary) Len() int {
	return len(d.entries)
}

// LinkCount returns the number of links.
func (d *Dictionary) LinkCount() int {
	return len(d.links)
}

// Keys returns the headwords in first-insertion order.
func (d *Dictionary) Keys() []string {
	keys := make([]string, len(d.keys))
	copy(keys, d.keys)
	return keys
}

// Links returns a copy of the link table.
func (d *Dictionary) Links() map[string]string {
	links := make(map[string]string, len(d.links))
	for w, key := range d.links {
		links[w] = key
	}
	return links
}

// Lookup returns the entry for w: directly if w is a headword, via the
// link table otherwise. Words in neither mapping return ErrWordNotFound.
func (d *Dictionary) Lookup(w string) (*Entry, error) {
	if e, ok := d.entries[w]; ok {
		return e, nil
	}
	if key, ok := d.links[w]; ok {
		return d.entries[key], nil
	}
	return nil, fmt.Errorf("%w: %q", ErrWordNotFound, w)
}

// Contains reports whether w is a headword or a link.
func (d *Dictionary) Contains(w string) bool {
	if _, ok := d.entries[w]; ok {
		return true
	}
	_, ok := d.links[w]
	return ok
}

// AddLinks merges extra links into the link table, such as those produced
// by vocabulary extraction. Words that are already headwords or links are
// skipped. A target that is itself a link is resolved to its headword so
// links never chain.
func (d *Dictionary) AddLinks(links map[string]string) {
	for w, target := range links {
		if _, ok := d.entries[w]; ok {
			continue
		}
		if _, ok := d.links[w]; ok {
			continue
		}
		if key, ok := d.links[target]; ok {
			target = key
		}
		if _, ok := d.entries[target]; !ok {
			continue
		}
		d.links[w] = target
	}
}

// Filtered returns a new Dictionary restricted to words. Entries are keyed
// by the requested word even when it resolves via a link, and the link
// table is restricted to the requested words. Any word that resolves to
// neither mapping aborts with ErrWordNotFound; there is no partial result.
func (d *Dictionary) Filtered(words []string) (*Dictionary, error) {
	f := &Dictionary{
		entries: make(map[string]*Entry, len(words)),
		links:   make(map[string]string),
	}
	for _, w := range words {
		e, err := d.Lookup(w)
		if err != nil {
			return nil, err
		}
		if _, ok := f.entries[w]; !ok {
			f.keys = append(f.keys, w)
		}
		f.entries[w] = e
		if key, ok := d.links[w]; ok {
			f.links[w] = key
		}
	}
	return f, nil
}
