// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Command orderprops prints the properties of a record in priority order.
//
// Usage:
//
//	orderprops [flags]
//
// Flags:
//
//	-i            Input file, or - for stdin (default: -)
//	-p            Comma-separated priority keys
//	-f            Input format: auto, json or yaml (default: auto)
//	-out-format   Output format: auto, json or yaml (default: auto, from -o)
//	-object       Write a single ordered object instead of entries
//	-locale       BCP 47 locale used to sort the remaining keys
//	-bytewise     Sort the remaining keys byte-wise
//	-o            Output file (default: stdout)
//	-demo         Order the built-in sample record
package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/text/language"

	"github.com/albertocavalcante/orderprops/internal/recordio"
	"github.com/albertocavalcante/orderprops/props"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// demoRecord is ordered by demoPriority when -demo is set.
var (
	demoRecord = map[string]any{
		"name":    "sword",
		"health":  10,
		"level":   2,
		"attack":  80,
		"defence": 40,
	}
	demoPriority = []string{"name", "level"}
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// config holds the parsed command line.
type config struct {
	input     string
	priority  string
	format    string
	outFormat string
	output    string
	locale    string
	object    bool
	bytewise  bool
	demo      bool
	verbose   bool
	version   bool
	help      bool
}

func parseFlags(args []string, stderr io.Writer) (config, *flag.FlagSet, error) {
	var cfg config
	fs := flag.NewFlagSet("orderprops", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.StringVar(&cfg.input, "i", "-", "Input file, or - for stdin")
	fs.StringVar(&cfg.priority, "p", "", "Comma-separated priority keys")
	fs.StringVar(&cfg.format, "f", "auto", "Input format: auto, json or yaml")
	fs.StringVar(&cfg.outFormat, "out-format", "auto", "Output format: auto, json or yaml")
	fs.StringVar(&cfg.output, "o", "", "Output file (default: stdout)")
	fs.StringVar(&cfg.locale, "locale", "", "BCP 47 locale used to sort the remaining keys")
	fs.BoolVar(&cfg.object, "object", false, "Write a single ordered object instead of entries")
	fs.BoolVar(&cfg.bytewise, "bytewise", false, "Sort the remaining keys byte-wise")
	fs.BoolVar(&cfg.demo, "demo", false, "Order the built-in sample record")
	fs.BoolVar(&cfg.verbose, "verbose", false, "Verbose output")
	fs.BoolVar(&cfg.version, "version", false, "Show version information")
	fs.BoolVar(&cfg.help, "help", false, "Show help")

	fs.Usage = func() {
		fmt.Fprint(stderr, `orderprops - order the properties of a record

Keys given with -p come first, in that order. The remaining keys follow
sorted by the root collation, or by -locale or -bytewise.

With --out-format auto, output is YAML when -o ends in .yaml or .yml and
JSON otherwise.

Limits of -p: blank items are dropped, so the empty key cannot be given
priority, and an empty -p keeps the name,level priority of --demo.

Usage:
  orderprops [flags]

Flags:
  -i string           Input file, or - for stdin (default: -)
  -p string           Comma-separated priority keys
  -f string           Input format: auto, json or yaml (default: auto)
  --out-format string Output format: auto, json or yaml (default: auto)
  -o string           Output file (default: stdout)
  --object            Write a single ordered object instead of entries
  --locale string     BCP 47 locale used to sort the remaining keys
  --bytewise          Sort the remaining keys byte-wise
  --demo              Order the built-in sample record
  --verbose           Verbose output
  --version           Show version information
  --help              Show this help

Examples:
  # Order a JSON file, name and level first
  orderprops -i item.json -p name,level

  # Read YAML from stdin and write an ordered YAML mapping
  cat item.yaml | orderprops -f yaml --out-format yaml --object

  # Show the built-in example
  orderprops --demo

`)
	}

	if err := fs.Parse(args); err != nil {
		return config{}, nil, err
	}
	if fs.NArg() > 0 {
		return config{}, nil, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	return cfg, fs, nil
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	cfg, fs, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if cfg.help {
		fs.Usage()
		return nil
	}

	if cfg.version {
		fmt.Fprintf(stdout, "orderprops %s (commit: %s, built: %s)\n", version, commit, date)
		return nil
	}

	logf := func(format string, args ...any) {
		if cfg.verbose {
			fmt.Fprintf(stderr, format+"\n", args...)
		}
	}

	inFormat, err := recordio.ParseFormat(cfg.format)
	if err != nil {
		return fmt.Errorf("parse -f: %w", err)
	}
	outFormat, err := recordio.ParseFormat(cfg.outFormat)
	if err != nil {
		return fmt.Errorf("parse -out-format: %w", err)
	}
	if outFormat == recordio.FormatAuto {
		outFormat = recordio.DetectFormat(cfg.output)
	}

	opts, err := collation(cfg)
	if err != nil {
		return err
	}

	// Load the record
	var (
		record   any
		priority any
	)
	if cfg.demo {
		record, priority = demoRecord, demoPriority
		logf("Using the built-in sample record")
	} else {
		res, err := recordio.Load(cfg.input, inFormat, stdin)
		if err != nil {
			return fmt.Errorf("load record: %w", err)
		}
		logf("Loaded %s record from %s", res.Format, res.Source)
		record = res.Record
	}
	if keys := recordio.ParseKeys(cfg.priority); keys != nil {
		priority = keys
	}

	entries, err := props.Order(record, priority, opts...)
	if err != nil {
		return fmt.Errorf("order record: %w", err)
	}
	logf("Ordered %d keys", len(entries))

	shape := recordio.ShapeEntries
	if cfg.object {
		shape = recordio.ShapeObject
	}

	// Output
	if cfg.output == "" {
		return recordio.Encode(stdout, entries, outFormat, shape)
	}

	var buf bytes.Buffer
	if err := recordio.Encode(&buf, entries, outFormat, shape); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(cfg.output), 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	if err := os.WriteFile(cfg.output, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	logf("Wrote %s", cfg.output)
	return nil
}

// collation turns -locale and -bytewise into ordering options.
func collation(cfg config) ([]props.Option, error) {
	switch {
	case cfg.bytewise && cfg.locale != "":
		return nil, errors.New("-bytewise and -locale are mutually exclusive")
	case cfg.bytewise:
		return []props.Option{props.Bytewise()}, nil
	case cfg.locale != "":
		tag, err := language.Parse(cfg.locale)
		if err != nil {
			return nil, fmt.Errorf("parse -locale: %w", err)
		}
		return []props.Option{props.WithLocale(tag)}, nil
	default:
		return nil, nil
	}
}
