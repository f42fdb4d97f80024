// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package props

// orderedMap maintains insertion order and ignores repeated keys.
type orderedMap struct {
	m     map[string]any
	order []string
}

func newOrderedMap(capacity int) *orderedMap {
	return &orderedMap{
		m:     make(map[string]any, capacity),
		order: make([]string, 0, capacity),
	}
}

// set stores value under key unless key is already present.
// It reports whether the key was added.
func (m *orderedMap) set(key string, value any) bool {
	if _, exists := m.m[key]; exists {
		return false
	}
	m.m[key] = value
	m.order = append(m.order, key)
	return true
}

func (m *orderedMap) has(key string) bool {
	_, ok := m.m[key]
	return ok
}

func (m *orderedMap) len() int {
	return len(m.order)
}

// entries returns the stored pairs in insertion order.
func (m *orderedMap) entries() Entries {
	out := make(Entries, 0, len(m.order))
	for _, key := range m.order {
		out = append(out, Entry{Key: key, Value: m.m[key]})
	}
	return out
}
