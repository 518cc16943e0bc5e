package button

import (
	"io"
	"strings"

	"github.com/alexisbeaulieu97/buttonkit/internal/tokens"
)

// Button pairs a label and click handler with render options.
type Button struct {
	label   string
	options Options
	onClick func()
}

// New creates a button with the given label and options.
func New(label string, opts Options) *Button {
	return &Button{
		label:   label,
		options: opts,
	}
}

// Simple creates a medium primary button.
func Simple(label string) *Button {
	return New(label, Options{})
}

// WithVariant sets the button variant
func (b *Button) WithVariant(variant Variant) *Button {
	b.options.Variant = variant
	return b
}

// WithSize sets the button size
func (b *Button) WithSize(size Size) *Button {
	b.options.Size = size
	return b
}

// WithDisabled sets the disabled state
func (b *Button) WithDisabled(disabled bool) *Button {
	b.options.Disabled = disabled
	return b
}

// WithLoading sets the loading state
func (b *Button) WithLoading(loading bool) *Button {
	b.options.Loading = loading
	return b
}

// WithKind sets the element type attribute
func (b *Button) WithKind(kind Kind) *Button {
	b.options.Kind = kind
	return b
}

// WithClass appends caller classes after the computed ones.
func (b *Button) WithClass(class string) *Button {
	b.options.ExtraClass = class
	return b
}

// OnClick sets the activation handler.
func (b *Button) OnClick(fn func()) *Button {
	b.onClick = fn
	return b
}

// Label returns the button label.
func (b *Button) Label() string {
	return b.label
}

// Options returns a copy of the render options.
func (b *Button) Options() Options {
	return b.options
}

// Describe composes the button's descriptor against store.
func (b *Button) Describe(store *tokens.Store) Descriptor {
	return Compose(store, b.options)
}

// Click activates the button. The handler is skipped while the button is
// disabled or loading.
func (b *Button) Click(store *tokens.Store) bool {
	return b.Describe(store).Activate(b.onClick)
}

// Render writes the button's HTML markup.
func (b *Button) Render(w io.Writer, store *tokens.Store) error {
	return Render(w, b.Describe(store), b.label)
}

// HTML returns the button's markup as a string.
func (b *Button) HTML(store *tokens.Store) (string, error) {
	var sb strings.Builder
	if err := b.Render(&sb, store); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// View renders a terminal preview of the button.
func (b *Button) View(store *tokens.Store) string {
	return Preview(store, b.options, b.label)
}
