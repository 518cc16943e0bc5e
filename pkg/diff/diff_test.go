package diff

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnifiedIdenticalContent(t *testing.T) {
	t.Parallel()

	out, stats := Unified([]byte("a\nb\n"), []byte("a\nb\n"), "want", "got")
	assert.Equal(t, "", out)
	assert.Equal(t, Stats{}, stats)
}

func TestUnifiedSingleLineChange(t *testing.T) {
	t.Parallel()

	want := []byte(":root {\n  --radius-l: 8px;\n}\n")
	got := []byte(":root {\n  --radius-l: 10px;\n}\n")

	out, stats := Unified(want, got, "dist/tokens.css", "generated")
	assert.Equal(t, "--- dist/tokens.css\n+++ generated\n :root {\n-  --radius-l: 8px;\n+  --radius-l: 10px;\n }\n", out)
	assert.Equal(t, Stats{Added: 1, Removed: 1}, stats)
}

func TestUnifiedTrimsLongUnchangedRuns(t *testing.T) {
	t.Parallel()

	var lines []string
	for i := 0; i < 20; i++ {
		lines = append(lines, fmt.Sprintf("line%d", i))
	}
	want := strings.Join(lines, "\n") + "\n"
	lines[10] = "changed"
	got := strings.Join(lines, "\n") + "\n"

	out, stats := Unified([]byte(want), []byte(got), "want", "got")
	assert.Equal(t, Stats{Added: 1, Removed: 1}, stats)
	assert.Contains(t, out, "@@ 7 unchanged line(s) @@\n line7\n line8\n line9\n-line10\n+changed\n line11\n line12\n line13\n@@ 6 unchanged line(s) @@\n")
	assert.NotContains(t, out, " line0\n")
	assert.NotContains(t, out, " line19\n")
}

func TestUnifiedAgainstEmpty(t *testing.T) {
	t.Parallel()

	out, stats := Unified(nil, []byte("new\nfile\n"), "missing", "generated")
	require.NotEmpty(t, out)
	assert.Equal(t, 2, stats.Added)
	assert.Contains(t, out, "+new\n+file\n")
}

func TestUnifiedTruncatesHugeDiffs(t *testing.T) {
	t.Parallel()

	var want, got strings.Builder
	for i := 0; i < maxDiffLines; i++ {
		fmt.Fprintf(&want, "old%d\n", i)
		fmt.Fprintf(&got, "new%d\n", i)
	}

	out, _ := Unified([]byte(want.String()), []byte(got.String()), "want", "got")
	assert.True(t, strings.HasSuffix(out, truncateMessage+"\n"))
}
