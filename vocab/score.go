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
	"github.com/lexfell/go-appledict"
)

// literaryLabel is the register annotation that halves a word's score.
const literaryLabel = "literary"

// Scores derives a rarity score per counted word: the occurrence count,
// halved when the word's entry is marked literary. Lower means rarer. This
// is a coarse heuristic, not a statistical model.
//
// Every counted word must resolve in dict; a word that does not returns
// the lookup error.
func Scores(counts map[string]int, dict *appledict.Dictionary) (map[string]float64, error) {
	scores := make(map[string]float64, len(counts))
	for w, c := range counts {
		e, err := dict.Lookup(w)
		if err != nil {
			return nil, err
		}
		score := float64(c)
		if e.HasInfo(literaryLabel) {
			score /= 2
		}
		scores[w] = score
	}
	return scores, nil
}
