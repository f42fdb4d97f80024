// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package props

import (
	"maps"
	"reflect"
	"slices"
	"strings"
)

// Record is a keyed value whose own keys can be enumerated.
//
// Lookup must report true exactly for the keys returned by Keys.
type Record interface {
	Keys() []string
	Lookup(key string) (any, bool)
}

// source is the internal view of a record used while ordering.
type source interface {
	keys() []string
	lookup(key string) (any, bool)
}

// sourceOf validates record and returns a view over its own keys.
func sourceOf(record any) (source, error) {
	switch r := record.(type) {
	case nil:
		return nil, invalidRecord("got nil, want an object")
	case map[string]any:
		return typedMap[any](r), nil
	}

	v := reflect.ValueOf(record)
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return nil, invalidRecord("got nil %s, want an object", v.Type())
		}
		if _, ok := v.Interface().(Record); ok {
			break
		}
		v = v.Elem()
	}

	if r, ok := v.Interface().(Record); ok {
		return recordSource{r}, nil
	}

	switch v.Kind() {
	case reflect.Map:
		if v.Type().Key().Kind() != reflect.String {
			return nil, invalidRecord("map key type %s is not a string", v.Type().Key())
		}
		return mapSource{v}, nil
	case reflect.Struct:
		return newStructSource(v), nil
	default:
		return nil, invalidRecord("got %s, want an object", v.Type())
	}
}

type typedMap[V any] map[string]V

func (m typedMap[V]) keys() []string {
	return slices.Collect(maps.Keys(m))
}

func (m typedMap[V]) lookup(key string) (any, bool) {
	v, ok := m[key]
	return v, ok
}

type recordSource struct {
	r Record
}

func (s recordSource) keys() []string {
	return s.r.Keys()
}

func (s recordSource) lookup(key string) (any, bool) {
	return s.r.Lookup(key)
}

// mapSource reads maps keyed by any string kind.
type mapSource struct {
	v reflect.Value
}

func (s mapSource) keys() []string {
	keys := make([]string, 0, s.v.Len())
	iter := s.v.MapRange()
	for iter.Next() {
		keys = append(keys, iter.Key().String())
	}
	return keys
}

func (s mapSource) lookup(key string) (any, bool) {
	k := reflect.ValueOf(key).Convert(s.v.Type().Key())
	v := s.v.MapIndex(k)
	if !v.IsValid() {
		return nil, false
	}
	return v.Interface(), true
}

// structSource exposes the exported fields declared directly on a struct.
type structSource struct {
	v      reflect.Value
	names  []string
	fields map[string]int
}

func newStructSource(v reflect.Value) structSource {
	t := v.Type()
	s := structSource{
		v:      v,
		fields: make(map[string]int, t.NumField()),
	}
	for i := range t.NumField() {
		f := t.Field(i)
		// Promoted fields belong to the embedded type, not this one.
		if f.Anonymous || !f.IsExported() {
			continue
		}
		name, ok := fieldName(f)
		if !ok {
			continue
		}
		if _, dup := s.fields[name]; dup {
			continue
		}
		s.fields[name] = i
		s.names = append(s.names, name)
	}
	return s
}

// fieldName returns the key for f, honoring the json tag.
func fieldName(f reflect.StructField) (string, bool) {
	tag, ok := f.Tag.Lookup("json")
	if !ok {
		return f.Name, true
	}
	if tag == "-" {
		return "", false
	}
	name, _, _ := strings.Cut(tag, ",")
	if name == "" {
		return f.Name, true
	}
	return name, true
}

func (s structSource) keys() []string {
	return s.names
}

func (s structSource) lookup(key string) (any, bool) {
	i, ok := s.fields[key]
	if !ok {
		return nil, false
	}
	return s.v.Field(i).Interface(), true
}
