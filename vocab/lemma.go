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

package vocab

import (
	"strings"

	snowballeng "github.com/kljensen/snowball/english"
)

// substitution is a detachment rule: a suffix and its replacement.
type substitution struct {
	suffix  string
	replace string
}

// substitutions holds WordNet-style morphological detachment rules per
// part of speech. Every applicable rule yields a candidate; validation
// against the dictionary happens in the extractor.
var substitutions = map[PartOfSpeech][]substitution{
	Noun: {
		{"s", ""},
		{"ses", "s"},
		{"ves", "f"},
		{"xes", "x"},
		{"zes", "z"},
		{"ches", "ch"},
		{"shes", "sh"},
		{"men", "man"},
		{"ies", "y"},
	},
	Verb: {
		{"s", ""},
		{"ies", "y"},
		{"es", "e"},
		{"es", ""},
		{"ed", "e"},
		{"ed", ""},
		{"ing", "e"},
		{"ing", ""},
	},
	Adjective: {
		{"er", ""},
		{"est", ""},
		{"er", "e"},
		{"est", "e"},
	},
	Adverb: nil,
	Satellite: {
		{"er", ""},
		{"est", ""},
		{"er", "e"},
		{"est", "e"},
	},
}

// RuleLemmatizer derives base-form candidates by suffix detachment.
type RuleLemmatizer struct{}

// Lemmatize implements [Lemmatizer.Lemmatize].
func (RuleLemmatizer) Lemmatize(word string, pos PartOfSpeech) []string {
	var out []string
	seen := map[string]bool{}
	for _, sub := range substitutions[pos] {
		if !strings.HasSuffix(word, sub.suffix) {
			continue
		}
		base := word[:len(word)-len(sub.suffix)] + sub.replace
		if base == "" || base == word || seen[base] {
			continue
		}
		out = append(out, base)
		seen[base] = true
	}
	return out
}

// StemLemmatizer derives a single candidate with the Porter2 (Snowball)
// English stemmer. Stemming is part-of-speech blind, so the tag only
// gates the call to once per word: tags other than Noun yield nothing.
type StemLemmatizer struct{}

// Lemmatize implements [Lemmatizer.Lemmatize].
func (StemLemmatizer) Lemmatize(word string, pos PartOfSpeech) []string {
	if pos != Noun {
		return nil
	}
	stem := snowballeng.Stem(word, false)
	if stem == "" || stem == word {
		return nil
	}
	return []string{stem}
}

// MultiLemmatizer concatenates the candidates of several lemmatizers.
type MultiLemmatizer []Lemmatizer

// Lemmatize implements [Lemmatizer.Lemmatize].
func (m MultiLemmatizer) Lemmatize(word string, pos PartOfSpeech) []string {
	var out []string
	for _, lem := range m {
		out = append(out, lem.Lemmatize(word, pos)...)
	}
	return out
}

// DefaultLemmatizer returns the combined rule and stem lemmatizer.
func DefaultLemmatizer() Lemmatizer {
	return MultiLemmatizer{
		RuleLemmatizer{},
		StemLemmatizer{},
	}
}
