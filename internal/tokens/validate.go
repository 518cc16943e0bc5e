package tokens

import (
	"strings"

	kiterrors "github.com/alexisbeaulieu97/buttonkit/pkg/errors"
)

// Allowlist maps a dotted token path to the literal value it is allowed to
// carry without a matching Brand primitive.
type Allowlist map[string]string

// DefaultAllowlist returns the literal overrides present in the built-in
// Alias tables. These values do not appear in Brand.
func DefaultAllowlist() Allowlist {
	return Allowlist{
		"alias.color.foreground.tertiary":     "#32373d",
		"alias.color.foreground.accent":       "#8fd6c9",
		"alias.color.background.primary":      "#292e33",
		"alias.color.background.secondary":    "#32373d",
		"alias.color.background.tertiary":     "#3c454a",
		"alias.color.interface.primary-green": "#8ED6C9",
	}
}

// Validate checks that every Alias and Mapped color, and the family, size and
// weight of every Alias typography style, equals a Brand primitive or an
// allowlisted override. Mapped colors may also reuse an allowlisted Alias
// value. Line height and letter spacing have no Brand tier and are not checked.
func Validate(brand Brand, alias Alias, mapped Mapped, allow Allowlist) error {
	violations := make(map[string]string)

	brandColors := make(map[string]struct{})
	brand.Color.Each(func(_ string, token Token) {
		brandColors[normalizeColor(token.String())] = struct{}{}
	})

	approved := make(map[string]struct{}, len(brandColors))
	for value := range brandColors {
		approved[value] = struct{}{}
	}

	checkColor := func(path string, token Token) {
		value := normalizeColor(token.String())
		if _, ok := brandColors[value]; ok {
			return
		}
		if literal, ok := allow[path]; ok && normalizeColor(literal) == value {
			approved[value] = struct{}{}
			return
		}
		violations[path] = token.String()
	}

	colorGroups := []struct {
		prefix string
		table  Table
	}{
		{"alias.color.foreground.", alias.Color.Foreground},
		{"alias.color.background.", alias.Color.Background},
		{"alias.color.interface.", alias.Color.Interface},
	}
	for _, group := range colorGroups {
		group.table.Each(func(key string, token Token) {
			checkColor(group.prefix+key, token)
		})
	}

	mapped.Color.Each(func(key string, token Token) {
		path := "mapped.color." + key
		value := normalizeColor(token.String())
		if _, ok := approved[value]; ok {
			return
		}
		checkColor(path, token)
	})

	family, _ := brand.Typography.FontFamily.Text()
	sizes := numberSet(brand.Typography.FontSizes)
	weights := numberSet(brand.Typography.FontWeights)

	alias.Typography.Each(func(name string, token Token) {
		style, ok := token.Typography()
		path := "alias.typography." + name
		if !ok {
			violations[path] = token.String()
			return
		}
		if style.Family != family {
			violations[path+".family"] = style.Family
		}
		if _, ok := sizes[style.Size]; !ok {
			violations[path+".size"] = FormatNumber(style.Size)
		}
		if _, ok := weights[style.Weight]; !ok {
			violations[path+".weight"] = FormatNumber(style.Weight)
		}
	})

	return kiterrors.NewIntegrityError(violations)
}

// Validate re-runs the integrity check against a different allowlist.
func (s *Store) Validate(allow Allowlist) error {
	return Validate(s.Brand, s.Alias, s.Mapped, allow)
}

func normalizeColor(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

func numberSet(table Table) map[float64]struct{} {
	set := make(map[float64]struct{}, table.Len())
	table.Each(func(_ string, token Token) {
		if n, ok := token.Number(); ok {
			set[n] = struct{}{}
		}
	})
	return set
}
