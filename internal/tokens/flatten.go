package tokens

import (
	"strings"
)

// Variable is one CSS custom property produced by FlattenToVariables.
type Variable struct {
	Name  string
	Value string
}

// Variables is an ordered list of custom properties.
type Variables []Variable

// Get returns the value of the named property.
func (v Variables) Get(name string) (string, bool) {
	for _, variable := range v {
		if variable.Name == name {
			return variable.Value, true
		}
	}
	return "", false
}

// Names returns the property names in emission order.
func (v Variables) Names() []string {
	names := make([]string, 0, len(v))
	for _, variable := range v {
		names = append(names, variable.Name)
	}
	return names
}

// CSS renders the properties as a single rule for selector.
func (v Variables) CSS(selector string) string {
	var b strings.Builder
	b.WriteString(selector)
	b.WriteString(" {\n")
	for _, variable := range v {
		b.WriteString("  ")
		b.WriteString(variable.Name)
		b.WriteString(": ")
		b.WriteString(variable.Value)
		b.WriteString(";\n")
	}
	b.WriteString("}\n")
	return b.String()
}

// Plain returns the properties as a name to value map.
func (v Variables) Plain() map[string]any {
	out := make(map[string]any, len(v))
	for _, variable := range v {
		out[variable.Name] = variable.Value
	}
	return out
}

// Group returns the properties as an ordered group of string tokens.
func (v Variables) Group() *Group {
	g := newGroup()
	for _, variable := range v {
		g.set(variable.Name, String(variable.Value))
	}
	return g
}

type variableBlock struct {
	prefix string
	table  Table
	lower  bool
	value  func(Token) string
}

// FlattenToVariables walks a fixed set of sub-collections and produces CSS
// custom properties. Blocks are emitted in this order: brand colors, alias
// foreground, alias background, alias interface, mapped colors, gap spacing,
// padding spacing, border, radius. Within a block the collection's insertion
// order is kept. Slashes in keys become hyphens; spacing and radius keys are
// lower-cased.
func FlattenToVariables(s *Store) Variables {
	blocks := []variableBlock{
		{prefix: "--color-brand-", table: s.Brand.Color, value: Token.String},
		{prefix: "--color-foreground-", table: s.Alias.Color.Foreground, value: Token.String},
		{prefix: "--color-background-", table: s.Alias.Color.Background, value: Token.String},
		{prefix: "--color-interface-", table: s.Alias.Color.Interface, value: Token.String},
		{prefix: "--color-mapped-", table: s.Mapped.Color, value: Token.String},
		{prefix: "--spacing-gap-", table: s.Brand.Spacing.Gap, lower: true, value: Token.Pixels},
		{prefix: "--spacing-padding-", table: s.Brand.Spacing.Padding, lower: true, value: Token.Pixels},
		{prefix: "--border-", table: s.Brand.Border, value: Token.Pixels},
		{prefix: "--radius-", table: s.Brand.Radius, lower: true, value: Token.Pixels},
	}

	var vars Variables
	for _, block := range blocks {
		block.table.Each(func(key string, token Token) {
			vars = append(vars, Variable{
				Name:  block.prefix + variableKey(key, block.lower),
				Value: block.value(token),
			})
		})
	}
	return vars
}

func variableKey(key string, lower bool) string {
	key = strings.ReplaceAll(key, "/", "-")
	if lower {
		key = strings.ToLower(key)
	}
	return key
}
