package button

import (
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/alexisbeaulieu97/buttonkit/internal/tokens"
)

// Tailwind default palette shades used by the secondary and outline variants.
const (
	gray600 = lipgloss.Color("#4b5563")
	blue300 = lipgloss.Color("#93c5fd")
	blue600 = lipgloss.Color("#2563eb")
	white   = lipgloss.Color("#ffffff")
)

const spinnerGlyph = "◌ "

// Label returns a display label such as "Primary Large".
func Label(variant Variant, size Size) string {
	return cases.Title(language.English).String(variant.String() + " " + size.String())
}

// Preview renders the button as a terminal swatch in the token colors. It
// mirrors Compose: disabled and loading buttons render faint, loading adds a
// spinner glyph.
func Preview(store *tokens.Store, opts Options, label string) string {
	d := Compose(store, opts)
	p := paletteFrom(store)

	style := lipgloss.NewStyle().
		Bold(true).
		Border(lipgloss.RoundedBorder())

	switch opts.Variant {
	case VariantSecondary:
		style = style.
			Background(gray600).
			Foreground(white).
			BorderForeground(gray600)
	case VariantOutline:
		border := blue600
		if d.Disabled {
			border = blue300
		}
		style = style.
			Foreground(border).
			BorderForeground(border)
	default:
		style = style.
			Background(lipgloss.Color(p.surface)).
			Foreground(lipgloss.Color(p.foreground)).
			BorderForeground(lipgloss.Color(p.surface))
	}

	switch opts.Size {
	case SizeSmall:
		style = style.Padding(0, 1)
	case SizeLarge:
		style = style.Padding(1, 3)
	default:
		style = style.Padding(0, 2)
	}

	if d.Disabled {
		style = style.Faint(true)
	}

	text := label
	if d.Spinner {
		text = spinnerGlyph + label
	}
	return style.Render(text)
}

// Row lays out several previews side by side, separated by the brand's
// medium gap.
type Row struct {
	store *tokens.Store
	items []string
	gap   int
}

// NewRow creates an empty row.
func NewRow(store *tokens.Store) *Row {
	gap := 1
	if token, ok := store.Token("brand.spacing.gap.M"); ok {
		if n, ok := token.Number(); ok {
			// terminal cells are roughly 8px wide
			gap = int(n) / 8
		}
	}
	return &Row{store: store, gap: gap}
}

// WithGap overrides the gap in terminal cells.
func (r *Row) WithGap(gap int) *Row {
	r.gap = gap
	return r
}

// Add appends a preview of opts with label.
func (r *Row) Add(opts Options, label string) *Row {
	r.items = append(r.items, Preview(r.store, opts, label))
	return r
}

// View renders the row.
func (r *Row) View() string {
	if len(r.items) == 0 {
		return ""
	}
	spacer := lipgloss.NewStyle().Width(r.gap).Render("")
	parts := make([]string, 0, len(r.items)*2)
	for i, item := range r.items {
		if i > 0 {
			parts = append(parts, spacer)
		}
		parts = append(parts, item)
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, parts...)
}

// Gallery renders every variant at every size, one row per variant.
func Gallery(store *tokens.Store) string {
	rows := make([]string, 0, len(Variants))
	for _, variant := range Variants {
		row := NewRow(store)
		for _, size := range Sizes {
			row.Add(Options{Variant: variant, Size: size}, Label(variant, size))
		}
		rows = append(rows, row.View())
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
