// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package props

import "reflect"

// priorityKeys validates priority and returns it as a list of keys.
// A nil priority is an empty list.
func priorityKeys(priority any) ([]string, error) {
	switch p := priority.(type) {
	case nil:
		return nil, nil
	case []string:
		return p, nil
	case string:
		return nil, invalidPriority("got string %q, want a sequence of keys", p)
	}

	v := reflect.ValueOf(priority)
	if v.Kind() != reflect.Slice && v.Kind() != reflect.Array {
		return nil, invalidPriority("got %s, want a sequence of keys", v.Type())
	}

	keys := make([]string, 0, v.Len())
	for i := range v.Len() {
		elem := v.Index(i)
		if elem.Kind() == reflect.Interface {
			if elem.IsNil() {
				return nil, invalidPriority("element %d is nil, want a string", i)
			}
			elem = elem.Elem()
		}
		if elem.Kind() != reflect.String {
			return nil, invalidPriority("element %d is %s, want a string", i, elem.Type())
		}
		keys = append(keys, elem.String())
	}
	return keys, nil
}
