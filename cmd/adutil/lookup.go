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

package main

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/lexfell/go-appledict"
	"github.com/lexfell/go-appledict/export"
)

// defaultLookupWords are the words looked up when none are given.
var defaultLookupWords = []string{"vital", "house", "cozen"}

var lookupCommand = &cli.Command{
	Name:      "lookup",
	Usage:     "Look up words and render their definitions",
	ArgsUsage: "[WORD...]",
	Description: strings.Join([]string{
		"Look up each WORD and write the definitions as a styled HTML report.",
		"A word missing from the dictionary fails the whole lookup.",
	}, "\n"),
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "dictionary",
			Usage:   "path of the Body.data container",
			Aliases: []string{"d"},
			Value:   appledict.NOADPath,
		},
		&cli.StringFlag{
			Name:    "output",
			Usage:   "where to save the report",
			Aliases: []string{"o"},
			Value:   "lookup/lookup.html",
		},
		&cli.BoolFlag{
			Name:    "text",
			Usage:   "print definitions as plain text instead of writing HTML",
			Aliases: []string{"t"},
		},
	},
	Action: func(c *cli.Context) error {
		lookupWords := c.Args().Slice()
		if len(lookupWords) == 0 {
			lookupWords = defaultLookupWords
		}

		logger := newLogger(c)
		dictPath := c.String("dictionary")

		dict, err := appledict.Open(dictPath, &appledict.Options{Logger: logger})
		if err != nil {
			return err
		}

		if c.Bool("text") {
			for _, word := range lookupWords {
				e, err := dict.Lookup(word)
				if err != nil {
					return err
				}
				fmt.Fprintln(c.App.Writer, e.Key())
				fmt.Fprintln(c.App.Writer)
				fmt.Fprintln(c.App.Writer, export.Text(e))
				fmt.Fprintln(c.App.Writer)
			}
			return nil
		}

		outputPath := c.String("output")
		if err := export.WriteReportFile(outputPath, dictPath, dict, lookupWords, logger); err != nil {
			return err
		}
		fmt.Fprintf(c.App.Writer, "Saved %d definitions at %s.\n", len(lookupWords), outputPath)
		return nil
	},
}
