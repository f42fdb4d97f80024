// SPDX-License-Identifier: MIT

// Package testutil provides golden-file helpers for orderprops tests.
package testutil

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/tools/txtar"
)

// Case represents a parsed test case from a txtar archive.
type Case struct {
	// Name is the test case name (the filename without extension).
	Name string

	// Description is the comment block before any files.
	Description string

	// Priority holds the keys from a "Priority: a, b" line. It is nil when
	// the line is absent, which stands for an omitted priority list.
	Priority []string

	// Flags contains any flags parsed from a "Flags: ..." line.
	Flags []string

	// InputName is the name of the input file ("input.json" or "input.yaml").
	InputName string

	// Input is the contents of the input file.
	Input []byte

	// Want maps relative paths (e.g., "entries.json") to expected content.
	Want map[string][]byte
}

// ParseCase parses a txtar archive into a test Case.
// The archive should contain:
//   - A description comment (text before first file)
//   - An "input.json" or "input.yaml" file with the record
//   - One or more "want/<filename>" files with expected output
func ParseCase(name string, ar *txtar.Archive) (*Case, error) {
	c := &Case{
		Name:        name,
		Description: string(ar.Comment),
		Want:        make(map[string][]byte),
	}

	c.parseDescription()

	for _, f := range ar.Files {
		switch {
		case f.Name == "input.json" || f.Name == "input.yaml":
			if c.Input != nil {
				return nil, fmt.Errorf("more than one input file in archive")
			}
			c.InputName = f.Name
			c.Input = f.Data
		case strings.HasPrefix(f.Name, "want/"):
			relPath := strings.TrimPrefix(f.Name, "want/")
			c.Want[relPath] = f.Data
		default:
			return nil, fmt.Errorf("unexpected file in archive: %q (expected input.json, input.yaml or want/*)", f.Name)
		}
	}

	if c.Input == nil {
		return nil, fmt.Errorf("missing input file in archive")
	}

	if len(c.Want) == 0 {
		return nil, fmt.Errorf("missing want/* files in archive")
	}

	return c, nil
}

// parseDescription extracts the "Priority:" and "Flags:" lines.
func (c *Case) parseDescription() {
	for _, line := range strings.Split(c.Description, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(line, "Priority:"):
			c.Priority = splitList(strings.TrimPrefix(line, "Priority:"))
			if c.Priority == nil {
				c.Priority = []string{}
			}
		case strings.HasPrefix(line, "Flags:"):
			c.Flags = splitList(strings.TrimPrefix(line, "Flags:"))
		}
	}
}

func splitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}

// HasFlag reports whether flag was listed on the "Flags:" line.
func (c *Case) HasFlag(flag string) bool {
	for _, f := range c.Flags {
		if f == flag {
			return true
		}
	}
	return false
}

// GenerateFunc produces the output files for a test case.
// It returns a map of filename to content.
type GenerateFunc func(c *Case) (map[string][]byte, error)

// Run executes the test case using the provided generate function.
// It compares generated output against expected output and reports differences.
func (c *Case) Run(t *testing.T, generate GenerateFunc) {
	t.Helper()

	got, err := generate(c)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	for wantFile := range c.Want {
		if _, ok := got[wantFile]; !ok {
			t.Errorf("missing output file: %q", wantFile)
		}
	}

	for gotFile := range got {
		if _, ok := c.Want[gotFile]; !ok {
			t.Errorf("unexpected output file: %q", gotFile)
		}
	}

	for wantFile, wantContent := range c.Want {
		gotContent, ok := got[wantFile]
		if !ok {
			continue // Already reported as missing
		}

		if diff := cmp.Diff(NormalizeContent(wantContent), NormalizeContent(gotContent)); diff != "" {
			t.Errorf("file %q mismatch (-want +got):\n%s", wantFile, diff)
		}
	}
}

// NormalizeContent trims trailing whitespace from each line and trailing
// newlines from the content.
func NormalizeContent(content []byte) string {
	lines := strings.Split(string(content), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t\r")
	}
	return strings.TrimRight(strings.Join(lines, "\n"), "\n")
}

// UpdateArchive replaces the want/* files of ar with got.
// Used for golden file updates with -update flag.
func UpdateArchive(ar *txtar.Archive, got map[string][]byte) *txtar.Archive {
	result := &txtar.Archive{
		Comment: ar.Comment,
	}

	for _, f := range ar.Files {
		if !strings.HasPrefix(f.Name, "want/") {
			result.Files = append(result.Files, f)
		}
	}

	var wantFiles []string
	for name := range got {
		wantFiles = append(wantFiles, name)
	}
	sort.Strings(wantFiles)

	for _, name := range wantFiles {
		content := got[name]
		if len(content) > 0 && content[len(content)-1] != '\n' {
			content = append(content, '\n')
		}
		result.Files = append(result.Files, txtar.File{
			Name: "want/" + name,
			Data: content,
		})
	}

	return result
}

// File pairs a loaded case with the archive it came from.
type File struct {
	Path    string
	Archive *txtar.Archive
	Case    *Case
}

// LoadTestCases loads all txtar test cases from a directory.
func LoadTestCases(t *testing.T, dir string) []File {
	t.Helper()

	pattern := filepath.Join(dir, "*.txtar")
	paths, err := filepath.Glob(pattern)
	if err != nil {
		t.Fatalf("glob %q: %v", pattern, err)
	}

	if len(paths) == 0 {
		t.Fatalf("no txtar files found in %q", dir)
	}

	sort.Strings(paths)

	var files []File
	for _, path := range paths {
		ar, err := txtar.ParseFile(path)
		if err != nil {
			t.Fatalf("parse %q: %v", path, err)
		}

		name := strings.TrimSuffix(filepath.Base(path), ".txtar")
		c, err := ParseCase(name, ar)
		if err != nil {
			t.Fatalf("parse case %q: %v", name, err)
		}

		files = append(files, File{Path: path, Archive: ar, Case: c})
	}

	return files
}

// FormatArchive formats an archive to bytes.
func FormatArchive(ar *txtar.Archive) []byte {
	return txtar.Format(ar)
}
