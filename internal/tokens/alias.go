package tokens

import (
	kiterrors "github.com/alexisbeaulieu97/buttonkit/pkg/errors"
)

// Alias holds the semantic tier. Values are copied from Brand when the
// collection is built.
type Alias struct {
	Color      AliasColor
	Typography Table
}

// AliasColor groups semantic colors by purpose.
type AliasColor struct {
	Foreground Table
	Background Table
	Interface  Table
}

// NewAlias builds the semantic tier from b. A reference to a Brand key that
// does not exist fails with an IntegrityError naming the alias path.
func NewAlias(b Brand) (Alias, error) {
	refs := newReferences()

	white := refs.take("alias.color.foreground.primary", b.Color, "brand.color", "brand/white/0")
	family, _ := b.Typography.FontFamily.Text()

	style := func(name, sizeKey, weightKey string, lineHeight, letterSpacing float64) Entry {
		path := "alias.typography." + name
		size, _ := refs.take(path+".size", b.Typography.FontSizes, "brand.typography.fontSizes", sizeKey).Number()
		weight, _ := refs.take(path+".weight", b.Typography.FontWeights, "brand.typography.fontWeights", weightKey).Number()
		return Entry{Key: name, Value: TypographyToken(Typography{
			Family:        family,
			Size:          size,
			Weight:        weight,
			LineHeight:    lineHeight,
			LetterSpacing: letterSpacing,
		})}
	}

	alias := Alias{
		Color: AliasColor{
			Foreground: NewTable(
				Entry{Key: "primary", Value: white},
				str("tertiary", "#32373d"),
				Entry{Key: "default", Value: refs.take("alias.color.foreground.default", b.Color, "brand.color", "brand/white/0")},
				str("accent", "#8fd6c9"),
			),
			Background: NewTable(
				str("primary", "#292e33"),
				str("secondary", "#32373d"),
				str("tertiary", "#3c454a"),
			),
			Interface: NewTable(
				str("primary-green", "#8ED6C9"),
			),
		},
		Typography: NewTable(
			style("display-1", "display/1", "display/1", 1.2, 0),
			style("heading-regular", "heading/medium", "heading/large", 1.2, -2),
			style("heading-x-small", "heading/x-small", "heading/x-small", 1.2, -2),
			style("body-regular", "body/medium", "body/medium", 1.2, -2),
			style("body-bold", "body/medium", "bold", 1, -2),
			style("caption-regular", "caption/large", "caption/medium", 1.2, -1),
			style("caption-small", "caption/medium", "caption/medium", 1.2, -2),
			style("caption-1", "caption/1", "caption/1", 1.2, 0),
			style("caption-2", "caption/2", "caption/2", 1.2, 0),
		),
	}

	if err := refs.err(); err != nil {
		return Alias{}, err
	}
	return alias, nil
}

func (a Alias) group() *Group {
	return newGroup().
		set("color", newGroup().
			set("foreground", a.Color.Foreground.group()).
			set("background", a.Color.Background.group()).
			set("interface", a.Color.Interface.group())).
		set("typography", a.Typography.group())
}

// references records lookups into a lower tier while a collection is built.
type references struct {
	missing map[string]string
}

func newReferences() *references {
	return &references{missing: make(map[string]string)}
}

func (r *references) take(path string, table Table, tableName, key string) Token {
	token, ok := table.Get(key)
	if !ok {
		r.missing[path] = "missing reference " + tableName + "[" + key + "]"
	}
	return token
}

func (r *references) err() error {
	return kiterrors.NewIntegrityError(r.missing)
}
