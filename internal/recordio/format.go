// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package recordio

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Format is a record serialization format.
type Format string

const (
	// FormatAuto selects the format from the file extension.
	FormatAuto Format = "auto"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat parses a format name. The empty string is FormatAuto.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "", FormatAuto:
		return FormatAuto, nil
	case FormatJSON, FormatYAML:
		return f, nil
	case "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unknown format %q (want auto, json or yaml)", s)
	}
}

// DetectFormat returns FormatYAML for .yaml and .yml paths and FormatJSON
// for everything else, including stdin.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Shape selects how ordered entries are written.
type Shape int

const (
	// ShapeEntries writes a sequence of {key, value} pairs.
	ShapeEntries Shape = iota

	// ShapeObject writes a single mapping in entry order.
	ShapeObject
)

// ParseKeys splits a comma-separated key list, dropping blanks.
// It returns nil when s holds no keys.
func ParseKeys(s string) []string {
	var keys []string
	for _, k := range strings.Split(s, ",") {
		k = strings.TrimSpace(k)
		if k != "" {
			keys = append(keys, k)
		}
	}
	return keys
}
