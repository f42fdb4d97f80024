// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package recordio reads records and writes ordered entries as JSON or YAML.
package recordio

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Result contains a decoded record and where it came from.
type Result struct {
	// Record is the decoded value. It is not validated here.
	Record any

	// Format is the format the record was decoded with.
	Format Format

	// Source describes where the record was loaded from.
	Source string
}

// Load reads a single record from path, or from stdin when path is empty
// or "-".
func Load(path string, format Format, stdin io.Reader) (*Result, error) {
	if format == "" || format == FormatAuto {
		format = DetectFormat(path)
	}

	var (
		r      io.Reader
		source string
	)
	if path == "" || path == "-" {
		r = stdin
		source = "stdin"
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open record: %w", err)
		}
		defer f.Close()
		r = f
		source = fmt.Sprintf("file://%s", path)
	}

	record, err := Decode(r, format)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", source, err)
	}

	return &Result{
		Record: record,
		Format: format,
		Source: source,
	}, nil
}

// Decode reads exactly one JSON or YAML document from r.
// JSON numbers are kept as json.Number so they print unchanged.
func Decode(r io.Reader, format Format) (any, error) {
	switch format {
	case FormatJSON:
		return decodeJSON(r)
	case FormatYAML:
		return decodeYAML(r)
	default:
		return nil, fmt.Errorf("decode: unsupported format %q", format)
	}
}

func decodeJSON(r io.Reader) (any, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("decode json: empty input")
		}
		return nil, fmt.Errorf("decode json: %w", err)
	}

	var extra json.RawMessage
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return nil, errors.New("decode json: unexpected data after record")
	}
	return v, nil
}

func decodeYAML(r io.Reader) (any, error) {
	dec := yaml.NewDecoder(r)

	var v any
	if err := dec.Decode(&v); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("decode yaml: empty input")
		}
		return nil, fmt.Errorf("decode yaml: %w", err)
	}

	var extra yaml.Node
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return nil, errors.New("decode yaml: more than one document")
	}
	return stringKeys(v), nil
}

// stringKeys rewrites YAML mappings with non-string keys, at any depth,
// as map[string]any. Keys are formatted with fmt.Sprint.
func stringKeys(v any) any {
	switch v := v.(type) {
	case map[string]any:
		for k, elem := range v {
			v[k] = stringKeys(elem)
		}
		return v
	case map[any]any:
		m := make(map[string]any, len(v))
		for k, elem := range v {
			m[fmt.Sprint(k)] = stringKeys(elem)
		}
		return m
	case []any:
		for i, elem := range v {
			v[i] = stringKeys(elem)
		}
		return v
	default:
		return v
	}
}
