// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package props orders the properties of a record.
//
// Keys named in a priority list come first, in the order of that list. Every
// other key follows in ascending collation order:
//
//	entries, err := props.Order(map[string]any{
//		"name":    "sword",
//		"health":  10,
//		"level":   2,
//		"attack":  80,
//		"defence": 40,
//	}, []string{"name", "level"})
//	// name, level, attack, defence, health
//
// # Records
//
// A record is any map with string keys, a struct (or pointer to one), or a
// value implementing [Record]. Only own keys take part: for structs these are
// the exported fields declared directly on the type, so fields promoted from
// embedded structs are ignored.
//
// # Collation
//
// Remaining keys are compared with the root collation from
// golang.org/x/text/collate, which gives the same order on every platform.
// Use [WithLocale] to tailor it, or [Bytewise] to compare raw bytes.
package props
