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

	"github.com/clipperhouse/uax29/v2/words"
)

// WordTokenizer segments text into words using Unicode UAX #29 word
// boundary rules. Whitespace runs are discarded; punctuation tokens are
// kept and die in later pruning, as do contraction remainders.
type WordTokenizer struct{}

// Tokenize implements [Tokenizer.Tokenize].
func (WordTokenizer) Tokenize(text string) []string {
	var out []string
	tokens := words.FromString(text)
	for tokens.Next() {
		t := tokens.Value()
		if strings.TrimSpace(t) == "" {
			continue
		}
		out = append(out, t)
	}
	return out
}
