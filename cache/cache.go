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

// Package cache provides key-value stores for memoizing parse results.
//
// A Store is an injected capability: its absence or failure never changes
// parse output, only latency. Callers key entries by container path.
package cache

// Store is a simple persistent key-value memoization capability.
type Store interface {
	// Get returns the value for key. The second return value is false when
	// the key is absent.
	Get(key string) ([]byte, bool, error)

	// Put stores the value for key, replacing any previous value.
	Put(key string, value []byte) error
}

// Nop is a Store that stores nothing.
type Nop struct{}

// Get implements [Store.Get]. It never finds a value.
func (Nop) Get(_ string) ([]byte, bool, error) {
	return nil, false, nil
}

// Put implements [Store.Put]. It discards the value.
func (Nop) Put(_ string, _ []byte) error {
	return nil
}

// Memory is an in-process Store backed by a map. It is useful in tests and
// for repeated parses within one invocation.
type Memory struct {
	m map[string][]byte
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{
		m: map[string][]byte{},
	}
}

// Get implements [Store.Get].
func (s *Memory) Get(key string) ([]byte, bool, error) {
	value, ok := s.m[key]
	return value, ok, nil
}

// Put implements [Store.Put].
func (s *Memory) Put(key string, value []byte) error {
	s.m[key] = value
	return nil
}

// Len returns the number of stored keys.
func (s *Memory) Len() int {
	return len(s.m)
}
