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
	"sort"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/lexfell/go-appledict"
	"github.com/lexfell/go-appledict/cache"
	"github.com/lexfell/go-appledict/export"
	"github.com/lexfell/go-appledict/internal/textio"
	"github.com/lexfell/go-appledict/vocab"
)

var extractCommand = &cli.Command{
	Name:      "extract",
	Usage:     "Extract a vocabulary archive from a book",
	ArgsUsage: "[INPUT] [OUTPUT]",
	Description: strings.Join([]string{
		"Extract the dictionary-resolvable vocabulary of the text at INPUT",
		"and write a .zip archive of definitions, links and scores to OUTPUT.",
	}, "\n"),
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "dictionary",
			Usage:   "path of the Body.data container",
			Aliases: []string{"d"},
		},
		&cli.StringFlag{
			Name:    "input-encoding",
			Usage:   "encoding of INPUT; by default utf-8, ISO-8859-1 and ascii are tried",
			Aliases: []string{"i"},
		},
		&cli.StringFlag{
			Name:    "config",
			Usage:   "path of a YAML config file",
			Aliases: []string{"c"},
		},
		&cli.StringFlag{
			Name:  "cache-db",
			Usage: "path of a SQLite parse cache",
		},
	},
	Action: func(c *cli.Context) error {
		args := c.Args()
		if args.Len() != 2 {
			return fmt.Errorf("%w: expected INPUT and OUTPUT arguments", ErrFlagParse)
		}
		inputPath := args.Get(0)
		outputPath := args.Get(1)
		if !strings.HasSuffix(outputPath, ".zip") {
			return fmt.Errorf("%w: OUTPUT should end in .zip", ErrFlagParse)
		}

		cfg, err := loadConfig(c.String("config"))
		if err != nil {
			return err
		}
		if d := c.String("dictionary"); d != "" {
			cfg.Dictionary = d
		}
		if enc := c.String("input-encoding"); enc != "" {
			cfg.Encodings = []string{enc}
		}
		if db := c.String("cache-db"); db != "" {
			cfg.CachePath = db
		}

		logger := newLogger(c)

		opts := &appledict.Options{Logger: logger}
		if cfg.CachePath != "" {
			store, err := cache.OpenSQLite(cfg.CachePath)
			if err != nil {
				return err
			}
			defer store.Close()
			opts.Cache = store
		}

		dict, err := appledict.Open(cfg.Dictionary, opts)
		if err != nil {
			return err
		}
		logger.Info("parsed dictionary",
			"path", cfg.Dictionary,
			"entries", dict.Len(),
			"links", dict.LinkCount(),
		)

		text, encoding, err := textio.ReadFile(inputPath, cfg.Encodings)
		if err != nil {
			return err
		}
		logger.Info("decoded input", "path", inputPath, "encoding", encoding)

		res := vocab.NewExtractor(nil, nil).Extract(text, dict)
		dict.AddLinks(res.Links)

		scores, err := vocab.Scores(res.Counts, dict)
		if err != nil {
			return err
		}

		lookupWords := make([]string, 0, len(res.Counts))
		for w := range res.Counts {
			lookupWords = append(lookupWords, w)
		}
		sort.Strings(lookupWords)

		filtered, err := dict.Filtered(lookupWords)
		if err != nil {
			return err
		}
		archive, err := export.FromDictionary(filtered, scores)
		if err != nil {
			return err
		}
		if err := export.WriteFile(outputPath, archive, text); err != nil {
			return err
		}

		logger.Info("wrote archive", "path", outputPath, "words", len(lookupWords))
		fmt.Fprintf(c.App.Writer, "Extracted %d words to %s.\n", len(lookupWords), outputPath)
		return nil
	},
}
