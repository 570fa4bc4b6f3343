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
	"sort"
	"strings"

	"golang.org/x/net/html"

	"github.com/lexfell/go-appledict/internal/markup"
)

// Entry is a single headword's dictionary entry. Entries are immutable;
// derived attributes are computed on first access and cached for the life
// of the Entry.
type Entry struct {
	key     string
	content string

	docDone bool
	doc     *html.Node

	infoDone bool
	info     []string

	relatedDone bool
	related     []string
}

// NewEntry returns an Entry for the given headword and markup fragment.
func NewEntry(key, content string) *Entry {
	return &Entry{
		key:     key,
		content: content,
	}
}

// Key returns the canonical headword.
func (e *Entry) Key() string {
	return e.key
}

// Content returns the entry's raw markup.
func (e *Entry) Content() string {
	return e.content
}

// String returns a string representation of the Entry.
func (e *Entry) String() string {
	return "Entry(" + e.key + ")"
}

// Info returns the entry's register annotations, e.g. "literary" or
// "informal", sorted.
func (e *Entry) Info() []string {
	if !e.infoDone {
		var labels []string
		for _, lg := range markup.FindAll(e.parsed(), markup.SpanWithClass("lg")) {
			for _, reg := range markup.Children(lg, markup.SpanWithClass("reg")) {
				if t := strings.TrimSpace(markup.LeadingText(reg)); t != "" {
					labels = append(labels, t)
				}
			}
		}
		e.info = dedupSorted(labels)
		e.infoDone = true
	}
	return e.info
}

// HasInfo reports whether label is among the entry's register annotations.
func (e *Entry) HasInfo(label string) bool {
	for _, l := range e.Info() {
		if l == label {
			return true
		}
	}
	return false
}

// RelatedWords returns derivative and cross-referenced word forms found in
// the entry's markup, excluding the headword itself, sorted.
//
// Two markup regions contribute: the derivatives block at the end of a
// definition, and bolded alternate forms such as the "(vitals)" in the
// entry for "vital". Cross-reference text has the literal substring "the"
// stripped as a normalization step.
func (e *Entry) RelatedWords() []string {
	if !e.relatedDone {
		doc := e.parsed()
		var words []string

		for _, deriv := range markup.FindAll(doc, markup.SpanClassContains("t_derivatives")) {
			for _, xoh := range markup.FindAll(deriv, markup.SpanClassContains("x_xoh")) {
				for _, txt := range markup.Children(xoh, markup.SpanWithRole("text")) {
					if t := strings.TrimSpace(markup.LeadingText(txt)); t != "" {
						words = append(words, t)
					}
				}
			}
		}

		for _, fg := range markup.FindAll(doc, markup.SpanWithClass("fg")) {
			for _, f := range markup.Children(fg, markup.SpanWithClass("f")) {
				t := markup.LeadingText(f)
				t = strings.ReplaceAll(t, "the", "")
				if t = strings.TrimSpace(t); t != "" {
					words = append(words, t)
				}
			}
		}

		var filtered []string
		for _, w := range words {
			if w != e.key {
				filtered = append(filtered, w)
			}
		}
		e.related = dedupSorted(filtered)
		e.relatedDone = true
	}
	return e.related
}

// parsed returns the entry's markup parsed into a node tree, computing it
// on first use. Fragments that fail to parse yield an empty tree; entry
// structure was already validated at split time.
func (e *Entry) parsed() *html.Node {
	if !e.docDone {
		doc, err := markup.Parse(e.content)
		if err != nil {
			doc = &html.Node{Type: html.DocumentNode}
		}
		e.doc = doc
		e.docDone = true
	}
	return e.doc
}

func dedupSorted(words []string) []string {
	if len(words) == 0 {
		return nil
	}
	sort.Strings(words)
	out := words[:1]
	for _, w := range words[1:] {
		if w != out[len(out)-1] {
			out = append(out, w)
		}
	}
	return out
}
