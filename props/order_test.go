// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package props

import (
	"errors"
	"slices"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

func TestOrder_Scenarios(t *testing.T) {
	tests := []struct {
		name     string
		record   any
		priority any
		want     Entries
	}{
		{
			name: "priority then alphabetical",
			record: map[string]any{
				"name":    "sword",
				"health":  10,
				"level":   2,
				"attack":  80,
				"defence": 40,
			},
			priority: []string{"name", "level"},
			want: Entries{
				{Key: "name", Value: "sword"},
				{Key: "level", Value: 2},
				{Key: "attack", Value: 80},
				{Key: "defence", Value: 40},
				{Key: "health", Value: 10},
			},
		},
		{
			name:     "absent priority key ignored",
			record:   map[string]any{"b": 2, "a": 1},
			priority: []string{"z", "b"},
			want:     Entries{{Key: "b", Value: 2}, {Key: "a", Value: 1}},
		},
		{
			name:     "empty priority sorts everything",
			record:   map[string]any{"zebra": 1, "apple": 2, "mango": 3},
			priority: []string{},
			want:     Entries{{Key: "apple", Value: 2}, {Key: "mango", Value: 3}, {Key: "zebra", Value: 1}},
		},
		{
			name:     "empty record",
			record:   map[string]any{},
			priority: []string{"any"},
			want:     Entries{},
		},
		{
			name:     "omitted priority",
			record:   map[string]any{"b": 2, "a": 1},
			priority: nil,
			want:     Entries{{Key: "a", Value: 1}, {Key: "b", Value: 2}},
		},
		{
			name:     "duplicate priority keys emitted once",
			record:   map[string]any{"a": 1, "b": 2, "c": 3},
			priority: []string{"c", "a", "c", "a"},
			want:     Entries{{Key: "c", Value: 3}, {Key: "a", Value: 1}, {Key: "b", Value: 2}},
		},
		{
			name:     "priority as []any",
			record:   map[string]any{"a": 1, "b": 2},
			priority: []any{"b"},
			want:     Entries{{Key: "b", Value: 2}, {Key: "a", Value: 1}},
		},
		{
			name:     "priority as array",
			record:   map[string]any{"a": 1, "b": 2},
			priority: [1]string{"b"},
			want:     Entries{{Key: "b", Value: 2}, {Key: "a", Value: 1}},
		},
		{
			name:     "typed nil map is empty",
			record:   map[string]int(nil),
			priority: []string{"a"},
			want:     Entries{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Order(tt.record, tt.priority)
			if err != nil {
				t.Fatalf("Order: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Order mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestOrder_InvalidArgument(t *testing.T) {
	tests := []struct {
		name     string
		record   any
		priority any
		arg      string
	}{
		{name: "nil record", record: nil, priority: []string{}, arg: "record"},
		{name: "nil pointer", record: (*struct{ A int })(nil), arg: "record"},
		{name: "string record", record: "abc", arg: "record"},
		{name: "number record", record: 42, arg: "record"},
		{name: "slice record", record: []int{1, 2}, arg: "record"},
		{name: "int keyed map", record: map[int]string{1: "a"}, arg: "record"},
		{name: "string priority", record: map[string]any{"a": 1}, priority: "not-a-list", arg: "priority"},
		{name: "number priority", record: map[string]any{"a": 1}, priority: 3, arg: "priority"},
		{name: "non-string element", record: map[string]any{"a": 1}, priority: []any{"a", 1}, arg: "priority"},
		{name: "nil element", record: map[string]any{"a": 1}, priority: []any{nil}, arg: "priority"},
		{name: "record checked first", record: nil, priority: "x", arg: "record"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Order(tt.record, tt.priority)
			if err == nil {
				t.Fatalf("Order = %v, want error", got)
			}
			if !errors.Is(err, ErrInvalidArgument) {
				t.Errorf("errors.Is(%v, ErrInvalidArgument) = false", err)
			}
			var argErr *ArgumentError
			if !errors.As(err, &argErr) {
				t.Fatalf("error %T is not *ArgumentError", err)
			}
			if argErr.Arg != tt.arg {
				t.Errorf("Arg = %q, want %q", argErr.Arg, tt.arg)
			}
			if got != nil {
				t.Errorf("Order returned %v alongside error", got)
			}
		})
	}
}

func TestOrder_DoesNotMutate(t *testing.T) {
	record := map[string]any{"b": 2, "a": 1, "c": 3}
	priority := []string{"c", "x", "c"}

	if _, err := Order(record, priority); err != nil {
		t.Fatalf("Order: %v", err)
	}

	if diff := cmp.Diff(map[string]any{"b": 2, "a": 1, "c": 3}, record); diff != "" {
		t.Errorf("record mutated (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"c", "x", "c"}, priority); diff != "" {
		t.Errorf("priority mutated (-want +got):\n%s", diff)
	}
}

type base struct {
	ID string
}

type item struct {
	base
	Name    string `json:"name"`
	Level   int    `json:"level,omitempty"`
	Attack  int
	Secret  string `json:"-"`
	Dash    string `json:"-,"`
	private int
}

func TestOrder_Struct(t *testing.T) {
	it := item{
		base:    base{ID: "x1"},
		Name:    "sword",
		Level:   2,
		Attack:  80,
		Secret:  "hidden",
		Dash:    "d",
		private: 1,
	}

	want := Entries{
		{Key: "level", Value: 2},
		{Key: "-", Value: "d"},
		{Key: "Attack", Value: 80},
		{Key: "name", Value: "sword"},
	}

	for _, record := range []any{it, &it} {
		got, err := Order(record, []string{"level", "ID", "Secret"})
		if err != nil {
			t.Fatalf("Order(%T): %v", record, err)
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("Order(%T) mismatch (-want +got):\n%s", record, diff)
		}
	}
}

type color string

func TestOrder_NamedKeyType(t *testing.T) {
	record := map[color]int{"red": 1, "green": 2, "blue": 3}

	got, err := Order(record, []string{"red"})
	if err != nil {
		t.Fatalf("Order: %v", err)
	}
	want := Entries{{Key: "red", Value: 1}, {Key: "blue", Value: 3}, {Key: "green", Value: 2}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Order mismatch (-want +got):\n%s", diff)
	}
}

// fixedRecord reports keys in a fixed order, including a duplicate.
type fixedRecord struct{}

func (fixedRecord) Keys() []string { return []string{"b", "a", "b"} }

func (fixedRecord) Lookup(key string) (any, bool) {
	switch key {
	case "a":
		return "A", true
	case "b":
		return "B", true
	}
	return nil, false
}

func TestOrder_Record(t *testing.T) {
	for _, record := range []any{fixedRecord{}, &fixedRecord{}} {
		got, err := Order(record, nil)
		if err != nil {
			t.Fatalf("Order(%T): %v", record, err)
		}
		want := Entries{{Key: "a", Value: "A"}, {Key: "b", Value: "B"}}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("Order(%T) mismatch (-want +got):\n%s", record, diff)
		}
	}
}

func TestOrder_Idempotent(t *testing.T) {
	record := map[string]any{"e": 5, "d": 4, "c": 3, "b": 2, "a": 1}
	priority := []string{"d", "nope", "b"}

	first, err := Order(record, priority)
	if err != nil {
		t.Fatalf("Order: %v", err)
	}

	for name, again := range map[string]any{"entries": first, "map": first.Map()} {
		second, err := Order(again, priority)
		if err != nil {
			t.Fatalf("Order(%s): %v", name, err)
		}
		if diff := cmp.Diff(first, second); diff != "" {
			t.Errorf("re-ordering %s changed result (-first +second):\n%s", name, diff)
		}
	}
}

func TestOrder_Properties(t *testing.T) {
	record := map[string]any{
		"zeta": 1, "alpha": 2, "Beta": 3, "gamma": 4, "delta": 5, "epsilon": 6, "Éclair": 7,
	}
	priorities := [][]string{
		nil,
		{},
		{"gamma"},
		{"missing", "delta", "alpha"},
		{"zeta", "zeta", "Beta", "missing"},
		{"Éclair", "alpha", "Beta", "gamma", "delta", "epsilon", "zeta"},
	}

	compare := newSettings(nil).compare()
	for _, priority := range priorities {
		got, err := Order(record, priority)
		if err != nil {
			t.Fatalf("Order(%q): %v", priority, err)
		}

		if len(got) != len(record) {
			t.Errorf("Order(%q) returned %d entries, want %d", priority, len(got), len(record))
		}

		// Leading entries follow the first occurrence of each present key.
		var lead []string
		for _, key := range priority {
			if _, ok := record[key]; ok && !slices.Contains(lead, key) {
				lead = append(lead, key)
			}
		}
		keys := got.Keys()
		if diff := cmp.Diff(lead, keys[:len(lead)], cmpEmpty); diff != "" {
			t.Errorf("Order(%q) priority prefix mismatch (-want +got):\n%s", priority, diff)
		}

		rest := keys[len(lead):]
		if !slices.IsSortedFunc(rest, compare) {
			t.Errorf("Order(%q) remainder %q is not sorted", priority, rest)
		}

		for _, e := range got {
			if record[e.Key] != e.Value {
				t.Errorf("Order(%q) entry %q = %v, want %v", priority, e.Key, e.Value, record[e.Key])
			}
		}
	}
}

var cmpEmpty = cmp.Comparer(func(a, b []string) bool { return slices.Equal(a, b) })

func TestOrder_Collation(t *testing.T) {
	record := map[string]int{"b": 1, "B": 2, "a": 3, "A": 4, "résumé": 5, "resume": 6, "rose": 7}

	tests := []struct {
		name string
		opts []Option
		want []string
	}{
		{
			name: "root collation",
			want: []string{"a", "A", "b", "B", "resume", "résumé", "rose"},
		},
		{
			name: "bytewise",
			opts: []Option{Bytewise()},
			want: []string{"A", "B", "a", "b", "resume", "rose", "résumé"},
		},
		{
			name: "custom compare",
			opts: []Option{WithCompare(func(a, b string) int { return len(a) - len(b) })},
			want: []string{"A", "B", "a", "b", "rose", "resume", "résumé"},
		},
		{
			name: "ignore case ties broken byte-wise",
			opts: []Option{WithLocale(language.English, collate.IgnoreCase)},
			want: []string{"A", "a", "B", "b", "resume", "résumé", "rose"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Order(record, nil, tt.opts...)
			if err != nil {
				t.Fatalf("Order: %v", err)
			}
			if diff := cmp.Diff(tt.want, got.Keys()); diff != "" {
				t.Errorf("keys mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestOrderMap(t *testing.T) {
	got := OrderMap(map[string]float64{"y": 2, "x": 1, "w": 0}, []string{"y"})
	want := Entries{{Key: "y", Value: 2.0}, {Key: "w", Value: 0.0}, {Key: "x", Value: 1.0}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("OrderMap mismatch (-want +got):\n%s", diff)
	}

	if got := OrderMap[int](nil, []string{"a"}); len(got) != 0 {
		t.Errorf("OrderMap(nil) = %v, want empty", got)
	}
}

func TestOrder_Concurrent(t *testing.T) {
	record := map[string]any{"delta": 4, "charlie": 3, "bravo": 2, "alpha": 1}
	want := Entries{
		{Key: "charlie", Value: 3},
		{Key: "alpha", Value: 1},
		{Key: "bravo", Value: 2},
		{Key: "delta", Value: 4},
	}

	var wg sync.WaitGroup
	errs := make(chan string, 16)
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 50 {
				got, err := Order(record, []string{"charlie"})
				if err != nil {
					errs <- err.Error()
					return
				}
				if diff := cmp.Diff(want, got); diff != "" {
					errs <- diff
					return
				}
			}
		}()
	}
	wg.Wait()
	close(errs)

	for msg := range errs {
		t.Error(msg)
	}
}
