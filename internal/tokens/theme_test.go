package tokens

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTailwindThemeTopLevelKeys(t *testing.T) {
	t.Parallel()

	theme := TailwindTheme(Default())

	assert.Equal(t, []string{
		"colors",
		"fontFamily",
		"fontSize",
		"fontWeight",
		"spacing",
		"borderColor",
		"borderWidth",
		"borderRadius",
	}, theme.Keys())
}

func TestTailwindThemeColors(t *testing.T) {
	t.Parallel()

	colors, ok := ResolveByDottedPath(TailwindTheme(Default()), "colors")
	require.True(t, ok)

	data, err := json.Marshal(colors)
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"brand": {
			"yellow": {"800": "#ffd67d"},
			"pink": {"800": "#f0b5e8"},
			"blue": {"800": "#82c7ff"},
			"white": {"0": "#ffffff"}
		},
		"foreground": {"primary": "#ffffff", "tertiary": "#32373d", "default": "#ffffff", "accent": "#8fd6c9"},
		"background": {"primary": "#292e33", "secondary": "#32373d", "tertiary": "#3c454a"},
		"interface": {"primary-green": "#8ED6C9"},
		"input-field": {"foreground": "#ffffff"},
		"panel": {"level1": "#32373d"},
		"surface": "#32373d"
	}`, string(data))
}

func TestTailwindThemeTypographyAndSpacing(t *testing.T) {
	t.Parallel()

	theme := TailwindTheme(Default())

	tests := []struct {
		path string
		want string
	}{
		{"fontFamily.kollektif", `["Kollektif","sans-serif"]`},
		{"fontSize.display-1", `["80px",{"lineHeight":"1.2","letterSpacing":"0px"}]`},
		{"fontSize.body-regular", `["16px",{"lineHeight":"1.2","letterSpacing":"-2px"}]`},
		{"fontSize.body-bold", `["16px",{"lineHeight":"1","letterSpacing":"-2px"}]`},
		{"fontSize.caption-regular", `["14px",{"lineHeight":"1.2","letterSpacing":"-1px"}]`},
		{"fontWeight.regular", `400`},
		{"fontWeight.bold", `700`},
		{"spacing.base-4", `"4px"`},
		{"spacing.gap-3xl", `"48px"`},
		{"spacing.padding-xxl", `"48px"`},
		{"borderColor.strong", `"#bebec0"`},
		{"borderColor.medium", `"#5a666d"`},
		{"borderWidth.stroke", `"2px"`},
		{"borderRadius.s", `"2px"`},
		{"borderRadius.l", `"8px"`},
		{"borderRadius.full", `"9999px"`},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			node, ok := ResolveByDottedPath(theme, tt.path)
			require.True(t, ok)
			data, err := json.Marshal(node)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(data))
		})
	}
}

func TestTailwindThemeExcludesInternalCaptions(t *testing.T) {
	t.Parallel()

	theme := TailwindTheme(Default())

	_, ok := ResolveByDottedPath(theme, "fontSize.caption-1")
	assert.False(t, ok)
	_, ok = ResolveByDottedPath(theme, "fontSize.caption-2")
	assert.False(t, ok)
}

func TestTailwindThemeIsDeterministic(t *testing.T) {
	t.Parallel()

	first, err := json.Marshal(TailwindTheme(Default()))
	require.NoError(t, err)
	second, err := json.Marshal(TailwindTheme(Default()))
	require.NoError(t, err)

	assert.Equal(t, string(first), string(second))
}

func TestTypographyCSS(t *testing.T) {
	t.Parallel()

	token, ok := Default().Token("alias.typography.heading-regular")
	require.True(t, ok)
	style, ok := token.Typography()
	require.True(t, ok)

	css := TypographyCSS(style)

	assert.Equal(t, CSSFont{
		FontFamily:    "Kollektif",
		FontSize:      "36px",
		FontWeight:    "700",
		LineHeight:    "1.2",
		LetterSpacing: "-2px",
	}, css)
	assert.Equal(t,
		"font-family: Kollektif; font-size: 36px; font-weight: 700; line-height: 1.2; letter-spacing: -2px;",
		css.Declarations(),
	)
}
