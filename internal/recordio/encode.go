// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package recordio

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/albertocavalcante/orderprops/props"
)

// Encode writes entries to w in the given format and shape.
func Encode(w io.Writer, entries props.Entries, format Format, shape Shape) error {
	if format == FormatYAML {
		entries = yamlEntries(entries)
	}

	var v any = entries
	if shape == ShapeObject {
		v = object(entries)
	}

	switch format {
	case FormatJSON, FormatAuto, "":
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("encode: unsupported format %q", format)
	}
}

// object renders entries as one mapping whose keys keep entry order.
type object props.Entries

func (o object) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range o {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := marshalJSON(e.Key)
		if err != nil {
			return nil, err
		}
		value, err := marshalJSON(e.Value)
		if err != nil {
			return nil, fmt.Errorf("value of %q: %w", e.Key, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (o object) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, e := range o {
		var value yaml.Node
		if err := value.Encode(e.Value); err != nil {
			return nil, fmt.Errorf("value of %q: %w", e.Key, err)
		}
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: e.Key},
			&value,
		)
	}
	return node, nil
}

// yamlEntries copies entries with json.Number values replaced by int64 or
// float64, so YAML writes them as numbers rather than strings.
func yamlEntries(entries props.Entries) props.Entries {
	out := make(props.Entries, len(entries))
	for i, e := range entries {
		out[i] = props.Entry{Key: e.Key, Value: yamlValue(e.Value)}
	}
	return out
}

func yamlValue(v any) any {
	switch v := v.(type) {
	case json.Number:
		if i, err := v.Int64(); err == nil {
			return i
		}
		if f, err := v.Float64(); err == nil {
			return f
		}
		return v.String()
	case map[string]any:
		m := make(map[string]any, len(v))
		for k, elem := range v {
			m[k] = yamlValue(elem)
		}
		return m
	case []any:
		s := make([]any, len(v))
		for i, elem := range v {
			s[i] = yamlValue(elem)
		}
		return s
	default:
		return v
	}
}

func marshalJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
