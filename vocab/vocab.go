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

// Package vocab extracts dictionary-resolvable vocabulary from free text.
//
// The extraction pipeline lower-cases the text, undoes hard line wraps,
// tokenizes, prunes non-word tokens, counts the survivors and resolves each
// distinct token against a dictionary, using lemmatization to reach base
// forms ("houses" resolves through "house"). Tokenization and lemmatization
// are capabilities injected through the Tokenizer and Lemmatizer
// interfaces.
package vocab

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/lexfell/go-appledict"
)

// PartOfSpeech is a lemmatizer part-of-speech tag.
type PartOfSpeech string

const (
	Noun      PartOfSpeech = "n"
	Verb      PartOfSpeech = "v"
	Adjective PartOfSpeech = "a"
	Adverb    PartOfSpeech = "r"
	Satellite PartOfSpeech = "s"
)

// PartsOfSpeech is the fixed tag iteration order used during resolution.
var PartsOfSpeech = []PartOfSpeech{Noun, Verb, Adjective, Adverb, Satellite}

// Tokenizer splits text into word-like tokens.
type Tokenizer interface {
	Tokenize(text string) []string
}

// Lemmatizer produces zero or more base-form candidates for a word under a
// given part of speech. Candidates need not be real words; the extractor
// validates them against the dictionary.
type Lemmatizer interface {
	Lemmatize(word string, pos PartOfSpeech) []string
}

// Result is the outcome of an extraction.
type Result struct {
	// Counts maps dictionary-resolvable words to occurrence counts. A
	// single source token contributes its count to every dictionary form
	// it resolves to.
	Counts map[string]int

	// Links maps source tokens that are not dictionary words themselves to
	// the lemmatized form they resolve through.
	Links map[string]string
}

// Extractor resolves free text against a dictionary.
type Extractor struct {
	tok Tokenizer
	lem Lemmatizer
}

// NewExtractor returns an Extractor with the given capabilities. Nil
// arguments select the defaults: a UAX #29 word tokenizer and the combined
// rule and stem lemmatizer.
func NewExtractor(tok Tokenizer, lem Lemmatizer) *Extractor {
	if tok == nil {
		tok = WordTokenizer{}
	}
	if lem == nil {
		lem = DefaultLemmatizer()
	}
	return &Extractor{
		tok: tok,
		lem: lem,
	}
}

// lineWrap matches a newline preceded by a non-newline character: a hard
// line wrap rather than a paragraph break.
var lineWrap = regexp.MustCompile(`([^\n])\n`)

// Extract tokenizes text and resolves the surviving tokens against dict.
func (x *Extractor) Extract(text string, dict *appledict.Dictionary) *Result {
	text = strings.ToLower(text)
	text = lineWrap.ReplaceAllString(text, "$1 ")

	counts := map[string]int{}
	for _, t := range x.tok.Tokenize(text) {
		w, ok := pruneToken(t)
		if !ok {
			continue
		}
		counts[w]++
	}

	res := &Result{
		Counts: map[string]int{},
		Links:  map[string]string{},
	}
	for w, c := range counts {
		candidates := x.resolve(w, dict)
		if len(candidates) == 0 {
			// Unresolvable against the dictionary.
			continue
		}
		if !dict.Contains(w) {
			// Tie-break among several valid lemmatized forms: the first in
			// part-of-speech iteration order.
			res.Links[w] = candidates[0]
		}
		for _, cand := range candidates {
			res.Counts[cand] += c
		}
	}
	return res
}

// resolve returns the dictionary forms reachable from w: w itself when the
// dictionary contains it, then every distinct lemmatized form that differs
// from w and resolves, in part-of-speech order.
func (x *Extractor) resolve(w string, dict *appledict.Dictionary) []string {
	var candidates []string
	seen := map[string]bool{}
	if dict.Contains(w) {
		candidates = append(candidates, w)
		seen[w] = true
	}
	for _, pos := range PartsOfSpeech {
		for _, lemma := range x.lem.Lemmatize(w, pos) {
			if lemma == w || seen[lemma] || !dict.Contains(lemma) {
				continue
			}
			candidates = append(candidates, lemma)
			seen[lemma] = true
		}
	}
	return candidates
}

// pruneToken normalizes a raw token and reports whether it survives
// pruning. Pruning strips surrounding quote, period, hyphen and backtick
// characters, removes a possessive 's, and drops abbreviations, one-rune
// tokens and numbers.
func pruneToken(t string) (string, bool) {
	w := strings.Trim(t, "'.-`\"")
	w = strings.ReplaceAll(w, "'s", "")
	if strings.Contains(w, ".") {
		return "", false
	}
	if utf8.RuneCountInString(w) <= 1 {
		return "", false
	}
	if isAllDigits(w) {
		return "", false
	}
	return w, true
}

func isAllDigits(w string) bool {
	for _, r := range w {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
