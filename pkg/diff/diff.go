package diff

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

const (
	contextLines    = 3
	maxDiffLines    = 2000
	truncateMessage = "... (diff truncated, exceeds 2,000 lines) ..."
)

// Stats counts the lines a diff adds and removes.
type Stats struct {
	Added   int
	Removed int
}

// Unified renders a line-oriented diff turning want into got. Unchanged runs
// are trimmed to three lines of context around each change. It returns an
// empty string when the inputs are identical.
func Unified(want, got []byte, wantLabel, gotLabel string) (string, Stats) {
	if bytes.Equal(want, got) {
		return "", Stats{}
	}

	dmp := diffmatchpatch.New()
	a, b, lineArray := dmp.DiffLinesToChars(string(want), string(got))
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lineArray)

	var buf strings.Builder
	var stats Stats
	fmt.Fprintf(&buf, "--- %s\n", wantLabel)
	fmt.Fprintf(&buf, "+++ %s\n", gotLabel)

	for i, d := range diffs {
		lines := splitLines(d.Text)
		switch d.Type {
		case diffmatchpatch.DiffEqual:
			writeContext(&buf, lines, i == 0, i == len(diffs)-1)
		case diffmatchpatch.DiffDelete:
			stats.Removed += len(lines)
			writePrefixed(&buf, "-", lines)
		case diffmatchpatch.DiffInsert:
			stats.Added += len(lines)
			writePrefixed(&buf, "+", lines)
		}
	}

	out := buf.String()
	if all := strings.Split(out, "\n"); len(all) > maxDiffLines {
		out = strings.Join(all[:maxDiffLines], "\n") + "\n" + truncateMessage + "\n"
	}
	return out, stats
}

func splitLines(text string) []string {
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return []string{""}
	}
	return strings.Split(text, "\n")
}

func writePrefixed(buf *strings.Builder, prefix string, lines []string) {
	for _, line := range lines {
		buf.WriteString(prefix)
		buf.WriteString(line)
		buf.WriteByte('\n')
	}
}

// writeContext keeps the lines of an unchanged run that touch a change: the
// tail of a leading run, the head of a trailing run, both ends of a run in
// the middle.
func writeContext(buf *strings.Builder, lines []string, first, last bool) {
	head, tail := contextLines, contextLines
	if first {
		head = 0
	}
	if last {
		tail = 0
	}

	if head+tail >= len(lines) {
		writePrefixed(buf, " ", lines)
		return
	}

	writePrefixed(buf, " ", lines[:head])
	fmt.Fprintf(buf, "@@ %d unchanged line(s) @@\n", len(lines)-head-tail)
	writePrefixed(buf, " ", lines[len(lines)-tail:])
}
