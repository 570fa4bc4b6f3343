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

// Package body implements reading Apple dictionary Body.data files.
//
// A Body.data file is a fixed 100-byte header followed by a concatenation of
// independently zlib-compressed segments separated by short runs of padding
// bytes. Segment boundaries carry no length prefix or table of contents; the
// only reliable boundary signal is a successful decompression, so the Scanner
// resynchronizes one byte at a time past padding.
//
// Each decompressed segment holds newline-delimited XML entry fragments with
// 4 bytes of filler before each run and between consecutive entries. An
// administrative trailer entry marks the end of meaningful data.
package body
