package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/buttonkit/internal/tokens"
)

func TestTokenEntriesWalkTreeInOrder(t *testing.T) {
	t.Parallel()

	entries := TokenEntries(tokens.Default())
	require.Len(t, entries, 64)

	assert.Equal(t, Entry{Path: "brand.color.brand/yellow/800", Value: "#ffd67d", Kind: tokens.KindString}, entries[0])
	assert.Equal(t, "mapped.color.surface", entries[len(entries)-1].Path)

	paths := make(map[string]Entry, len(entries))
	for _, entry := range entries {
		paths[entry.Path] = entry
	}
	assert.Equal(t, tokens.KindNumber, paths["brand.radius.L"].Kind)
	assert.Equal(t, "8", paths["brand.radius.L"].Value)
	assert.Equal(t, tokens.KindTypography, paths["alias.typography.body-regular"].Kind)
}

func TestVariableEntriesMatchFlattenedProperties(t *testing.T) {
	t.Parallel()

	store := tokens.Default()
	entries := VariableEntries(store)
	vars := tokens.FlattenToVariables(store)
	require.Len(t, entries, len(vars))
	for i, v := range vars {
		assert.Equal(t, v.Name, entries[i].Path)
		assert.Equal(t, v.Value, entries[i].Value)
	}
}

func TestEntryColor(t *testing.T) {
	t.Parallel()

	assert.True(t, Entry{Value: "#ffffff"}.Color())
	assert.False(t, Entry{Value: "16"}.Color())
	assert.False(t, Entry{Value: "Kollektif"}.Color())
}

func TestNewModelStartsOnTokens(t *testing.T) {
	t.Parallel()

	m := NewModel(tokens.Default())
	assert.Equal(t, ModeTokens, m.Mode())
	assert.Len(t, m.Visible(), 64)
	assert.False(t, m.Filtering())

	selected, ok := m.Selected()
	require.True(t, ok)
	assert.Equal(t, "brand.color.brand/yellow/800", selected.Path)
}

func TestCursorIsClamped(t *testing.T) {
	t.Parallel()

	m := NewModel(tokens.Default())
	m.MoveCursorUp()
	assert.Equal(t, 0, m.cursor)

	m.SetCursor(1000)
	assert.Equal(t, len(m.Visible())-1, m.cursor)
	assert.GreaterOrEqual(t, m.cursor, m.scrollOffset)
	assert.Less(t, m.cursor, m.scrollOffset+m.pageSize())
}

func TestToggleModeResetsCursor(t *testing.T) {
	t.Parallel()

	m := NewModel(tokens.Default())
	m.SetCursor(10)
	m.ToggleMode()

	assert.Equal(t, ModeVariables, m.Mode())
	assert.Equal(t, "variables", m.Mode().String())
	assert.Equal(t, 0, m.cursor)
	assert.Len(t, m.Visible(), len(tokens.FlattenToVariables(tokens.Default())))

	m.ToggleMode()
	assert.Equal(t, ModeTokens, m.Mode())
}
