// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package props

// Entry is a single key/value pair of an ordered record.
type Entry struct {
	Key   string `json:"key" yaml:"key"`
	Value any    `json:"value" yaml:"value"`
}

// Entries is the result of ordering a record.
//
// Entries implements [Record], so a result can be ordered again.
type Entries []Entry

// Keys returns the keys in order.
func (e Entries) Keys() []string {
	keys := make([]string, len(e))
	for i, entry := range e {
		keys[i] = entry.Key
	}
	return keys
}

// Lookup returns the value of the first entry with the given key.
func (e Entries) Lookup(key string) (any, bool) {
	for _, entry := range e {
		if entry.Key == key {
			return entry.Value, true
		}
	}
	return nil, false
}

// Map returns the entries as an unordered map.
func (e Entries) Map() map[string]any {
	m := make(map[string]any, len(e))
	for _, entry := range e {
		if _, exists := m[entry.Key]; !exists {
			m[entry.Key] = entry.Value
		}
	}
	return m
}
