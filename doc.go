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

// Package appledict implements a library for reading Apple dictionary
// Body.data files in pure Go.
//
// A Body.data file packs every dictionary entry into an unbounded sequence
// of zlib-compressed segments with no table of contents:
//  1. A fixed 100-byte header, skipped unconditionally.
//  2. Compressed segments interleaved with short padding runs. Segment
//     boundaries are discovered only by decoder success.
//  3. Within each segment, newline-delimited XML entry fragments, each
//     carrying its headword in a namespaced title attribute.
//  4. An administrative trailer section that ends meaningful data.
//
// Open parses a container into a Dictionary: a headword index plus a link
// table mapping derivative word forms harvested from entry markup to the
// canonical headwords that define them.
package appledict
