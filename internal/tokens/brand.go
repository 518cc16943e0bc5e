package tokens

// Brand holds the primitive tier: raw values that define the design language.
// Components read Alias or Mapped tokens, never Brand directly.
type Brand struct {
	Color      Table
	Typography BrandTypography
	Spacing    BrandSpacing
	Border     Table
	Radius     Table
	Other      Table
}

// BrandTypography groups the primitive type scale.
type BrandTypography struct {
	FontFamily  Token
	FontSizes   Table
	FontWeights Table
}

// BrandSpacing groups the primitive spacing scales.
type BrandSpacing struct {
	Base    Table
	Gap     Table
	Padding Table
}

// NewBrand returns the built-in brand primitives.
func NewBrand() Brand {
	return Brand{
		Color: NewTable(
			str("brand/yellow/800", "#ffd67d"),
			str("brand/pink/800", "#f0b5e8"),
			str("brand/blue/800", "#82c7ff"),
			str("brand/white/0", "#ffffff"),
		),
		Typography: BrandTypography{
			FontFamily: String("Kollektif"),
			FontSizes: NewTable(
				num("display/1", 80),
				num("caption/1", 14),
				num("caption/2", 12),
				num("heading/medium", 36),
				num("heading/x-small", 24),
				num("body/medium", 16),
				num("caption/medium", 12),
				num("caption/large", 14),
			),
			FontWeights: NewTable(
				num("display/1", 700),
				num("caption/1", 400),
				num("caption/2", 400),
				num("heading/large", 700),
				num("heading/x-small", 700),
				num("body/medium", 400),
				num("caption/medium", 400),
				num("bold", 700),
				num("regular", 400),
			),
		},
		Spacing: BrandSpacing{
			Base: NewTable(
				num("size-4", 4),
				num("size-8", 8),
				num("size-12", 12),
			),
			Gap: NewTable(
				num("S", 4),
				num("M", 8),
				num("L", 12),
				num("XL", 16),
				num("XXL", 32),
				num("3XL", 48),
			),
			Padding: NewTable(
				num("S", 8),
				num("M", 12),
				num("L", 16),
				num("XL", 32),
				num("XXL", 48),
			),
		},
		Border: NewTable(
			str("strong", "#bebec0"),
			str("medium", "#5a666d"),
			num("stroke", 2),
		),
		Radius: NewTable(
			num("S", 2),
			num("L", 8),
			num("full", 9999),
		),
		Other: NewTable(
			num("icon-size", 32),
			num("min-height", 48),
		),
	}
}

func (b Brand) group() *Group {
	return newGroup().
		set("color", b.Color.group()).
		set("typography", newGroup().
			set("fontFamily", b.Typography.FontFamily).
			set("fontSizes", b.Typography.FontSizes.group()).
			set("fontWeights", b.Typography.FontWeights.group())).
		set("spacing", newGroup().
			set("base", b.Spacing.Base.group()).
			set("gap", b.Spacing.Gap.group()).
			set("padding", b.Spacing.Padding.group())).
		set("border", b.Border.group()).
		set("radius", b.Radius.group()).
		set("other", b.Other.group())
}
