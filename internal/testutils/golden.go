// Package testutils provides shared test helpers for Inkline. Its golden
// file support compares rendered SGR output against checked-in expectations
// and prints readable diffs when they diverge.
package testutils

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// update rewrites golden files with actual output instead of failing.
// Run tests with: go test ./... -update
var update = flag.Bool("update", false, "update golden files with actual output")

// GoldenPath returns the conventional path of a golden file under the
// package's testdata directory.
func GoldenPath(name string) string {
	return filepath.Join("testdata", name+".golden")
}

// AssertGolden compares actual against the named golden file. With -update
// it rewrites the file and passes. Escape sequences are shown in escaped
// form in failure output so diffs stay printable.
func AssertGolden(t *testing.T, name string, actual string) {
	t.Helper()

	path := GoldenPath(name)

	if *update {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("failed to create testdata directory: %v", err)
		}
		if err := os.WriteFile(path, []byte(actual), 0o644); err != nil {
			t.Fatalf("failed to update golden file %s: %v", path, err)
		}
		return
	}

	expected, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read golden file %s (run with -update to create it): %v", path, err)
	}

	if string(expected) == actual {
		return
	}

	t.Errorf("output does not match golden file %s\n%s",
		path, DiffStrings(string(expected), actual))
}

// DiffStrings renders a readable diff between expected and actual, with
// escape bytes made visible.
func DiffStrings(expected, actual string) string {
	var sb strings.Builder

	sb.WriteString("--- expected ---\n")
	writeNumberedLines(&sb, expected)
	sb.WriteString("--- actual ---\n")
	writeNumberedLines(&sb, actual)
	sb.WriteString("--- diff ---\n")

	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(expected, actual, false)
	for _, diff := range diffs {
		text := EscapeSGR(diff.Text)
		switch diff.Type {
		case diffmatchpatch.DiffDelete:
			fmt.Fprintf(&sb, "- %q\n", text)
		case diffmatchpatch.DiffInsert:
			fmt.Fprintf(&sb, "+ %q\n", text)
		case diffmatchpatch.DiffEqual:
			// Trim long unchanged stretches for brevity
			if len(text) > 50 {
				fmt.Fprintf(&sb, "  %q...\n", text[:47])
			} else {
				fmt.Fprintf(&sb, "  %q\n", text)
			}
		}
	}

	return sb.String()
}

// EscapeSGR replaces each ESC byte with the visible token "\x1b" so escape
// sequences survive printing to a terminal or a log file.
func EscapeSGR(s string) string {
	return strings.ReplaceAll(s, "\x1b", `\x1b`)
}

// writeNumberedLines writes content with 1-based line numbers and escaped
// SGR bytes.
func writeNumberedLines(sb *strings.Builder, content string) {
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		fmt.Fprintf(sb, "%4d  %s\n", i+1, EscapeSGR(line))
	}
}
