package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/text/cases"

	"github.com/alexisbeaulieu97/buttonkit/internal/tokens"
)

// Mode selects which listing the browser shows.
type Mode int

const (
	// ModeTokens lists every leaf of the token tree by dotted path.
	ModeTokens Mode = iota
	// ModeVariables lists the flattened CSS custom properties.
	ModeVariables
)

func (m Mode) String() string {
	if m == ModeVariables {
		return "variables"
	}
	return "tokens"
}

// Entry is one row of the browser.
type Entry struct {
	Path  string
	Value string
	Kind  tokens.Kind
}

// Color reports whether the entry value is a hex color that can be swatched.
func (e Entry) Color() bool {
	return strings.HasPrefix(e.Value, "#")
}

// Model contains the Bubbletea state for the token browser.
type Model struct {
	store   *tokens.Store
	lists   map[Mode][]Entry
	mode    Mode
	visible []Entry

	filter    textinput.Model
	filtering bool

	cursor       int
	scrollOffset int

	width  int
	height int
}

// NewModel builds a browser over store.
func NewModel(store *tokens.Store) Model {
	input := textinput.New()
	input.Prompt = "/ "
	input.Placeholder = "filter by path or value"
	input.CharLimit = 64

	m := Model{
		store: store,
		lists: map[Mode][]Entry{
			ModeTokens:    TokenEntries(store),
			ModeVariables: VariableEntries(store),
		},
		filter: input,
		width:  80,
		height: 24,
	}
	m.applyFilter()
	return m
}

// TokenEntries walks the store tree depth-first in insertion order.
func TokenEntries(store *tokens.Store) []Entry {
	var entries []Entry
	walk(store.Root(), nil, &entries)
	return entries
}

func walk(group *tokens.Group, prefix []string, out *[]Entry) {
	for _, key := range group.Keys() {
		child, _ := group.Get(key)
		path := append(append([]string(nil), prefix...), key)
		switch node := child.(type) {
		case *tokens.Group:
			walk(node, path, out)
		case tokens.Token:
			*out = append(*out, Entry{Path: strings.Join(path, "."), Value: node.String(), Kind: node.Kind()})
		}
	}
}

// VariableEntries lists the flattened custom properties.
func VariableEntries(store *tokens.Store) []Entry {
	vars := tokens.FlattenToVariables(store)
	entries := make([]Entry, 0, len(vars))
	for _, v := range vars {
		entries = append(entries, Entry{Path: v.Name, Value: v.Value, Kind: tokens.KindString})
	}
	return entries
}

// Init starts the Bubbletea program.
func (m Model) Init() tea.Cmd {
	return nil
}

// Mode returns the active listing.
func (m Model) Mode() Mode {
	return m.mode
}

// Visible returns the rows that match the current filter.
func (m Model) Visible() []Entry {
	return m.visible
}

// Selected returns the row under the cursor.
func (m Model) Selected() (Entry, bool) {
	if m.cursor < 0 || m.cursor >= len(m.visible) {
		return Entry{}, false
	}
	return m.visible[m.cursor], true
}

// Filtering reports whether the filter input has focus.
func (m Model) Filtering() bool {
	return m.filtering
}

// Query returns the current filter text.
func (m Model) Query() string {
	return m.filter.Value()
}

// applyFilter recomputes the visible rows. Matching is case-insensitive
// against both path and value.
func (m *Model) applyFilter() {
	fold := cases.Fold()
	query := fold.String(strings.TrimSpace(m.filter.Value()))
	all := m.lists[m.mode]

	if query == "" {
		m.visible = all
	} else {
		m.visible = make([]Entry, 0, len(all))
		for _, entry := range all {
			if strings.Contains(fold.String(entry.Path), query) || strings.Contains(fold.String(entry.Value), query) {
				m.visible = append(m.visible, entry)
			}
		}
	}
	m.SetCursor(m.cursor)
}

func (m Model) pageSize() int {
	size := m.height - 9
	if size < 1 {
		return 1
	}
	return size
}

// SetCursor moves the cursor to index, clamped to the visible rows, and
// scrolls it into view.
func (m *Model) SetCursor(index int) {
	if index >= len(m.visible) {
		index = len(m.visible) - 1
	}
	if index < 0 {
		index = 0
	}
	m.cursor = index

	page := m.pageSize()
	if m.cursor < m.scrollOffset {
		m.scrollOffset = m.cursor
	}
	if m.cursor >= m.scrollOffset+page {
		m.scrollOffset = m.cursor - page + 1
	}
	if m.scrollOffset < 0 {
		m.scrollOffset = 0
	}
}

// MoveCursorUp moves the selection one row up.
func (m *Model) MoveCursorUp() {
	m.SetCursor(m.cursor - 1)
}

// MoveCursorDown moves the selection one row down.
func (m *Model) MoveCursorDown() {
	m.SetCursor(m.cursor + 1)
}

// ToggleMode switches between the token tree and the custom properties.
func (m *Model) ToggleMode() {
	if m.mode == ModeTokens {
		m.mode = ModeVariables
	} else {
		m.mode = ModeTokens
	}
	m.cursor = 0
	m.scrollOffset = 0
	m.applyFilter()
}
