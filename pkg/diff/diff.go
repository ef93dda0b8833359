// Package diff compares generated palette output with a stored copy.
package diff

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

const (
	maxDiffLines    = 2000
	truncateMessage = "... (diff truncated) ..."
)

// Report is a line diff between two outputs.
type Report struct {
	Text    string
	Added   int
	Removed int
}

// Empty reports whether the compared outputs were identical.
func (r Report) Empty() bool {
	return r.Text == ""
}

// Summary describes the change size, e.g. "+3 -2 lines".
func (r Report) Summary() string {
	return fmt.Sprintf("+%d -%d lines", r.Added, r.Removed)
}

// Compare diffs stored against generated line by line. Unchanged lines are
// kept as context; the text is empty when both are byte-identical.
func Compare(stored, generated []byte, storedLabel, generatedLabel string) Report {
	if bytes.Equal(stored, generated) {
		return Report{}
	}

	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(string(stored), string(generated))
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	var (
		report Report
		buf    strings.Builder
		count  int
	)
	fmt.Fprintf(&buf, "--- %s\n+++ %s\n", storedLabel, generatedLabel)

	for _, d := range diffs {
		prefix := " "
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "-"
		case diffmatchpatch.DiffInsert:
			prefix = "+"
		}

		for _, line := range splitLines(d.Text) {
			switch prefix {
			case "-":
				report.Removed++
			case "+":
				report.Added++
			}
			if count < maxDiffLines {
				buf.WriteString(prefix)
				buf.WriteString(line)
				buf.WriteByte('\n')
			}
			count++
		}
	}

	if count > maxDiffLines {
		buf.WriteString(truncateMessage + "\n")
	}

	report.Text = buf.String()
	return report
}

// splitLines drops the empty element left by a trailing newline.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}
