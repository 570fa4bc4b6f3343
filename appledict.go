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
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/lexfell/go-appledict/body"
	"github.com/lexfell/go-appledict/cache"
)

// NOADPath is the macOS asset path of the New Oxford American Dictionary
// container.
const NOADPath = "/System/Library/AssetsV2/" +
	"com_apple_MobileAsset_DictionaryServices_dictionaryOSX/" +
	"4094df88727a054b658681dfb74f23702d3c985e.asset/" +
	"AssetData/" +
	"New Oxford American Dictionary.dictionary/" +
	"Contents/Resources/Body.data"

// bodySuffix is the required container file name suffix.
const bodySuffix = "Body.data"

// ErrNotBodyData indicates a container path that is not a Body.data file.
var ErrNotBodyData = errors.New("not a Body.data file")

// Options configure Open and Parse.
type Options struct {
	// Cache memoizes parse results by container path. Parsing a large
	// container takes a while; a cache hit skips it entirely without
	// changing the result. Defaults to no caching.
	Cache cache.Store

	// Logger receives parse progress. Defaults to a discarding logger.
	Logger *slog.Logger
}

func (o *Options) cache() cache.Store {
	if o == nil || o.Cache == nil {
		return cache.Nop{}
	}
	return o.Cache
}

func (o *Options) logger() *slog.Logger {
	if o == nil || o.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return o.Logger
}

// Open reads and parses the Body.data container at path.
func Open(path string, opts *Options) (*Dictionary, error) {
	if !strings.HasSuffix(path, bodySuffix) {
		return nil, fmt.Errorf("%w: %q", ErrNotBodyData, path)
	}

	logger := opts.logger()
	store := opts.cache()

	if value, ok, err := store.Get(path); err == nil && ok {
		if entries, err := decodeEntries(value); err == nil {
			logger.Info("loaded cached parse", "path", path, "entries", len(entries))
			return New(entries), nil
		}
		// An undecodable cache value is ignored and overwritten below.
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", path, err)
	}

	entries, err := parseEntries(raw, logger)
	if err != nil {
		return nil, fmt.Errorf("parsing %q: %w", path, err)
	}

	if value, err := encodeEntries(entries); err == nil {
		if err := store.Put(path, value); err != nil {
			logger.Warn("caching parse failed", "path", path, "error", err)
		}
	}

	return New(entries), nil
}

// Parse parses a raw Body.data container image.
func Parse(raw []byte, opts *Options) (*Dictionary, error) {
	entries, err := parseEntries(raw, opts.logger())
	if err != nil {
		return nil, err
	}
	return New(entries), nil
}

func parseEntries(raw []byte, logger *slog.Logger) ([]*Entry, error) {
	var entries []*Entry
	s := body.NewScanner(raw)
	for s.Scan() {
		seg := s.Segment()
		raws, stop, err := body.Split(seg.Data)
		if err != nil {
			return nil, err
		}
		for _, r := range raws {
			entries = append(entries, NewEntry(r.Key, r.Content))
		}
		logger.Debug("scanned segment",
			"offset", seg.Offset,
			"entries", len(raws),
			"total", len(entries),
		)
		if stop {
			logger.Info("sentinel reached", "entries", len(entries))
			s.Stop()
		}
	}
	return entries, nil
}

// rawEntry is the cache serialization of an Entry.
type rawEntry struct {
	Key     string `json:"key"`
	Content string `json:"content"`
}

func encodeEntries(entries []*Entry) ([]byte, error) {
	raws := make([]rawEntry, 0, len(entries))
	for _, e := range entries {
		raws = append(raws, rawEntry{Key: e.Key(), Content: e.Content()})
	}
	value, err := json.Marshal(raws)
	if err != nil {
		return nil, fmt.Errorf("encoding entries: %w", err)
	}
	return value, nil
}

func decodeEntries(value []byte) ([]*Entry, error) {
	var raws []rawEntry
	if err := json.Unmarshal(value, &raws); err != nil {
		return nil, fmt.Errorf("decoding entries: %w", err)
	}
	entries := make([]*Entry, 0, len(raws))
	for _, r := range raws {
		entries = append(entries, NewEntry(r.Key, r.Content))
	}
	return entries, nil
}
