// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package props

import "slices"

// Order returns the own keys of record with their values.
//
// Keys listed in priority come first, in that order. Keys absent from record
// are skipped and repeated keys are emitted once. The remaining keys follow
// in ascending collation order.
//
// priority may be nil or any slice or array of strings. Order returns an
// error matching [ErrInvalidArgument] if record is not object-like or
// priority is not a sequence of strings. Neither argument is modified.
func Order(record any, priority any, opts ...Option) (Entries, error) {
	src, err := sourceOf(record)
	if err != nil {
		return nil, err
	}
	keys, err := priorityKeys(priority)
	if err != nil {
		return nil, err
	}
	return order(src, keys, newSettings(opts)), nil
}

// OrderMap is Order for a map with a static type. It cannot fail.
func OrderMap[V any](m map[string]V, priority []string, opts ...Option) Entries {
	return order(typedMap[V](m), priority, newSettings(opts))
}

func order(src source, priority []string, s settings) Entries {
	own := src.keys()
	out := newOrderedMap(len(own))

	for _, key := range priority {
		if out.has(key) {
			continue
		}
		if v, ok := src.lookup(key); ok {
			out.set(key, v)
		}
	}

	rest := make([]string, 0, max(0, len(own)-out.len()))
	for _, key := range own {
		if !out.has(key) {
			rest = append(rest, key)
		}
	}
	slices.SortFunc(rest, s.compare())

	for _, key := range rest {
		v, _ := src.lookup(key)
		out.set(key, v)
	}
	return out.entries()
}
