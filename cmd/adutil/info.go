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
	"os"

	"github.com/rodaine/table"
	"github.com/urfave/cli/v2"

	"github.com/lexfell/go-appledict"
)

var infoCommand = &cli.Command{
	Name:        "info",
	Usage:       "Print container stats",
	ArgsUsage:   "[PATH]",
	Description: "Parse the container at PATH and print entry and link counts.",
	Action: func(c *cli.Context) error {
		path := appledict.NOADPath
		if c.Args().Len() > 0 {
			path = c.Args().Get(0)
		}

		fi, err := os.Stat(path)
		if err != nil {
			return err
		}

		dict, err := appledict.Open(path, &appledict.Options{Logger: newLogger(c)})
		if err != nil {
			return err
		}

		tbl := table.New("Field", "Value").WithWriter(c.App.Writer)
		tbl.AddRow("Path", path)
		tbl.AddRow("Size", fi.Size())
		tbl.AddRow("Entries", dict.Len())
		tbl.AddRow("Links", dict.LinkCount())
		tbl.Print()
		return nil
	},
}
