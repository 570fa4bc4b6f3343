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
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lexfell/go-appledict"
	"github.com/lexfell/go-appledict/internal/textio"
)

// Config holds adutil configuration.
type Config struct {
	// Dictionary is the path of the Body.data container.
	Dictionary string `yaml:"dictionary"`

	// Encodings are candidate input text encodings, tried in order.
	Encodings []string `yaml:"encodings"`

	// CachePath is the path of the SQLite parse cache. Empty disables
	// caching.
	CachePath string `yaml:"cache_path"`
}

func (c *Config) defaults() {
	if c.Dictionary == "" {
		c.Dictionary = appledict.NOADPath
	}
	if len(c.Encodings) == 0 {
		c.Encodings = textio.DefaultEncodings
	}
}

// loadConfig reads a YAML config file; an empty path yields the defaults.
func loadConfig(path string) (*Config, error) {
	var c Config
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config %q: %w", path, err)
		}
		if err := yaml.Unmarshal(b, &c); err != nil {
			return nil, fmt.Errorf("parsing config %q: %w", path, err)
		}
	}
	c.defaults()
	return &c, nil
}
