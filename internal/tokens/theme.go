package tokens

import (
	"strings"
)

// ThemeFontSizes lists the Alias typography styles exported as utility
// font sizes. caption-1 and caption-2 are internal and stay out of the theme.
var ThemeFontSizes = []string{
	"display-1",
	"heading-regular",
	"heading-x-small",
	"body-regular",
	"body-bold",
	"caption-regular",
	"caption-small",
}

// TailwindTheme builds the theme-extension object consumed by the utility CSS
// framework at build time. Key names are load-bearing: utility classes such as
// text-foreground-accent derive from them.
func TailwindTheme(s *Store) *Group {
	colors := newGroup()
	brandColors := newGroup()
	s.Brand.Color.Each(func(key string, token Token) {
		nest(brandColors, strings.Split(strings.TrimPrefix(key, "brand/"), "/"), token)
	})
	colors.set("brand", brandColors)
	colors.set("foreground", s.Alias.Color.Foreground.group())
	colors.set("background", s.Alias.Color.Background.group())
	colors.set("interface", s.Alias.Color.Interface.group())
	s.Mapped.Color.Each(func(key string, token Token) {
		nest(colors, strings.Split(key, "/"), token)
	})

	family, _ := s.Brand.Typography.FontFamily.Text()
	fontFamily := newGroup().
		set(strings.ToLower(family), List{String(family), String("sans-serif")})

	fontSize := newGroup()
	for _, name := range ThemeFontSizes {
		token, ok := s.Alias.Typography.Get(name)
		if !ok {
			continue
		}
		style, _ := token.Typography()
		fontSize.set(name, List{
			String(FormatNumber(style.Size) + "px"),
			newGroup().
				set("lineHeight", String(FormatNumber(style.LineHeight))).
				set("letterSpacing", String(FormatNumber(style.LetterSpacing)+"px")),
		})
	}

	fontWeight := newGroup()
	for _, key := range []string{"regular", "bold"} {
		if token, ok := s.Brand.Typography.FontWeights.Get(key); ok {
			fontWeight.set(key, token)
		}
	}

	spacing := newGroup()
	s.Brand.Spacing.Base.Each(func(key string, token Token) {
		spacing.set("base-"+strings.TrimPrefix(key, "size-"), String(token.Pixels()))
	})
	s.Brand.Spacing.Gap.Each(func(key string, token Token) {
		spacing.set("gap-"+strings.ToLower(key), String(token.Pixels()))
	})
	s.Brand.Spacing.Padding.Each(func(key string, token Token) {
		spacing.set("padding-"+strings.ToLower(key), String(token.Pixels()))
	})

	borderColor := newGroup()
	borderWidth := newGroup()
	s.Brand.Border.Each(func(key string, token Token) {
		if token.Kind() == KindNumber {
			borderWidth.set(key, String(token.Pixels()))
			return
		}
		borderColor.set(key, token)
	})

	borderRadius := newGroup()
	s.Brand.Radius.Each(func(key string, token Token) {
		borderRadius.set(strings.ToLower(key), String(token.Pixels()))
	})

	return newGroup().
		set("colors", colors).
		set("fontFamily", fontFamily).
		set("fontSize", fontSize).
		set("fontWeight", fontWeight).
		set("spacing", spacing).
		set("borderColor", borderColor).
		set("borderWidth", borderWidth).
		set("borderRadius", borderRadius)
}

func nest(g *Group, path []string, token Token) {
	if len(path) == 1 {
		g.set(path[0], token)
		return
	}
	child, ok := g.Get(path[0])
	next, isGroup := child.(*Group)
	if !ok || !isGroup {
		next = newGroup()
		g.set(path[0], next)
	}
	nest(next, path[1:], token)
}

// CSSFont is the set of CSS font declarations for a typography token.
type CSSFont struct {
	FontFamily    string
	FontSize      string
	FontWeight    string
	LineHeight    string
	LetterSpacing string
}

// TypographyCSS converts a typography token into CSS declaration values.
func TypographyCSS(t Typography) CSSFont {
	return CSSFont{
		FontFamily:    t.Family,
		FontSize:      FormatNumber(t.Size) + "px",
		FontWeight:    FormatNumber(t.Weight),
		LineHeight:    FormatNumber(t.LineHeight),
		LetterSpacing: FormatNumber(t.LetterSpacing) + "px",
	}
}

// Declarations renders the font as inline CSS declarations.
func (f CSSFont) Declarations() string {
	return "font-family: " + f.FontFamily +
		"; font-size: " + f.FontSize +
		"; font-weight: " + f.FontWeight +
		"; line-height: " + f.LineHeight +
		"; letter-spacing: " + f.LetterSpacing + ";"
}
