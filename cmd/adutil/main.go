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

// Command adutil reads Apple dictionary Body.data files: it looks up words,
// prints container stats, and extracts vocabulary archives from books.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/lexfell/go-appledict"
	"github.com/lexfell/go-appledict/body"
)

func main() {
	if err := newAdutilApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)

		exitCode := ExitCodeUnknownError
		switch {
		case errors.Is(err, ErrFlagParse):
			exitCode = ExitCodeFlagParseError
		case errors.Is(err, appledict.ErrWordNotFound):
			exitCode = ExitCodeWordNotFound
		case errors.Is(err, appledict.ErrNotBodyData), errors.Is(err, body.ErrCorruptEntry):
			exitCode = ExitCodeBadContainer
		}
		os.Exit(exitCode)
	}
}
