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

package appledict_test

import (
	"errors"
	"os"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lexfell/go-appledict"
	"github.com/lexfell/go-appledict/body"
	"github.com/lexfell/go-appledict/cache"
	"github.com/lexfell/go-appledict/internal/testutil"
)

// TestOpen tests opening and parsing a fabricated container.
func TestOpen(t *testing.T) {
	t.Parallel()

	t.Run("single segment", func(t *testing.T) {
		t.Parallel()

		path := testutil.MakeTempBody(t, []string{
			testutil.EntryXML("vital", "absolutely necessary"),
			testutil.EntryXML("house", "a building for living in"),
		})

		d, err := appledict.Open(path, nil)
		if err != nil {
			t.Fatalf("Open: %v", err)
		}

		if diff := cmp.Diff([]string{"vital", "house"}, d.Keys()); diff != "" {
			t.Fatalf("Keys (-want, +got):\n%s", diff)
		}

		e, err := d.Lookup("house")
		if err != nil {
			t.Fatalf("Lookup: %v", err)
		}
		expected := testutil.EntryXML("house", "a building for living in")
		if diff := cmp.Diff(expected, e.Content()); diff != "" {
			t.Fatalf("Lookup content (-want, +got):\n%s", diff)
		}
	})

	t.Run("multiple segments stop at sentinel", func(t *testing.T) {
		t.Parallel()

		first := testutil.MakeSegment(t, []string{
			testutil.EntryXML("vital", "absolutely necessary"),
		})
		second := testutil.MakeSegment(t, []string{
			testutil.EntryXML("house", "a building for living in"),
			testutil.Sentinel,
		})
		// A third segment after the sentinel must never be decoded.
		third := testutil.MakeSegment(t, []string{
			testutil.EntryXML("ghost", "should not appear"),
		})
		raw := testutil.MakeContainer(t, [][]byte{first, second, third}, 4)

		d, err := appledict.Parse(raw, nil)
		if err != nil {
			t.Fatalf("Parse: %v", err)
		}

		if diff := cmp.Diff([]string{"vital", "house"}, d.Keys()); diff != "" {
			t.Fatalf("Keys (-want, +got):\n%s", diff)
		}
	})

	t.Run("wrong file name", func(t *testing.T) {
		t.Parallel()

		_, err := appledict.Open("/tmp/whatever.bin", nil)
		if !errors.Is(err, appledict.ErrNotBodyData) {
			t.Fatalf("Open: want ErrNotBodyData, got %v", err)
		}
	})

	t.Run("corrupt entry", func(t *testing.T) {
		t.Parallel()

		path := testutil.MakeTempBody(t, []string{
			`<d:entry xmlns:d="` + testutil.NS + `" d:title="broken">no close`,
		})

		_, err := appledict.Open(path, nil)
		if !errors.Is(err, body.ErrCorruptEntry) {
			t.Fatalf("Open: want ErrCorruptEntry, got %v", err)
		}
	})
}

// TestOpen_cache tests that a cached parse is served without re-reading
// the container.
func TestOpen_cache(t *testing.T) {
	t.Parallel()

	path := testutil.MakeTempBody(t, []string{
		testutil.EntryXML("vital", "absolutely necessary"),
	})

	store := cache.NewMemory()
	opts := &appledict.Options{Cache: store}

	d, err := appledict.Open(path, opts)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if d.Len() != 1 {
		t.Fatalf("Len: want 1, got %d", d.Len())
	}
	if store.Len() != 1 {
		t.Fatalf("cache Len: want 1, got %d", store.Len())
	}

	// Remove the container. A second Open must be served entirely from
	// the cache.
	if err := os.Remove(path); err != nil {
		t.Fatal(err)
	}

	d, err = appledict.Open(path, opts)
	if err != nil {
		t.Fatalf("Open from cache: %v", err)
	}
	if diff := cmp.Diff([]string{"vital"}, d.Keys()); diff != "" {
		t.Fatalf("Keys (-want, +got):\n%s", diff)
	}

	// An undecodable cache value falls back to the container.
	if err := store.Put(path, []byte("not json")); err != nil {
		t.Fatal(err)
	}
	if _, err := appledict.Open(path, opts); err == nil {
		t.Fatal("Open: expected error for removed container and bad cache value")
	}
}
