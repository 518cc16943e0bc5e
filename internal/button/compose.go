package button

import (
	"strings"

	"github.com/alexisbeaulieu97/buttonkit/internal/tokens"
)

// Descriptor is the presentation of one button: its composed class string and
// the attributes the host element carries.
type Descriptor struct {
	Class    string
	Disabled bool
	AriaBusy bool
	Kind     Kind
	Spinner  bool
}

// Activate invokes onClick unless the button is disabled or loading. It
// reports whether the handler ran.
func (d Descriptor) Activate(onClick func()) bool {
	if d.Disabled || onClick == nil {
		return false
	}
	onClick()
	return true
}

// palette holds the literal values the class fragments need, read from the
// store once per composition.
type palette struct {
	surface    string
	foreground string
	fontFamily string
	lineHeight string
	fontSize   string
	minHeight  string
	paddingM   string
	paddingL   string
	radius     string
}

func paletteFrom(store *tokens.Store) palette {
	pick := func(path string) string {
		token, ok := store.Token(path)
		if !ok {
			return ""
		}
		return token.Pixels()
	}
	raw := func(path string) string {
		token, ok := store.Token(path)
		if !ok {
			return ""
		}
		return token.String()
	}

	return palette{
		surface:    raw("alias.color.foreground.accent"),
		foreground: raw("alias.color.foreground.tertiary"),
		fontFamily: strings.ToLower(raw("brand.typography.fontFamily")),
		lineHeight: raw("alias.typography.body-regular.lineHeight"),
		fontSize:   pick("brand.typography.fontSizes.body/medium"),
		minHeight:  pick("brand.other.min-height"),
		paddingM:   pick("brand.spacing.padding.M"),
		paddingL:   pick("brand.spacing.padding.L"),
		radius:     pick("brand.radius.L"),
	}
}

// Compose selects and joins the class fragments for opts. It is a pure
// function of store and opts: base, variant, size, pointer affordance,
// loading position, then the caller's extra class.
func Compose(store *tokens.Store, opts Options) Descriptor {
	p := paletteFrom(store)
	disabled := opts.Disabled || opts.Loading

	fragments := []string{
		baseFragment(p),
		variantFragment(p, opts.Variant),
		sizeFragment(p, opts.Size),
		"",
		"",
		opts.ExtraClass,
	}
	if !disabled {
		fragments[3] = "cursor-pointer"
	}
	if opts.Loading {
		fragments[4] = "relative"
	}

	return Descriptor{
		Class:    joinFragments(fragments...),
		Disabled: disabled,
		AriaBusy: opts.Loading,
		Kind:     opts.Kind,
		Spinner:  opts.Loading,
	}
}

func baseFragment(p palette) string {
	return joinFragments(
		"font-bold",
		"font-"+p.fontFamily,
		"leading-["+p.lineHeight+"]",
		"transition-all duration-200",
		"focus:outline-none focus:ring-2 focus:ring-offset-2",
		"min-h-["+p.minHeight+"]",
		"inline-flex items-center justify-center",
	)
}

func variantFragment(p palette, variant Variant) string {
	switch variant {
	case VariantSecondary:
		return joinFragments(
			"bg-gray-600 text-white",
			"hover:bg-gray-700 hover:shadow-sm",
			"active:bg-gray-800 active:shadow-inner",
			"focus:ring-gray-500 focus:ring-opacity-50",
			"disabled:bg-gray-600 disabled:opacity-50 disabled:cursor-not-allowed",
			"rounded-lg",
		)
	case VariantOutline:
		return joinFragments(
			"border-2 border-blue-600 text-blue-600 bg-transparent",
			"hover:bg-blue-50 hover:border-blue-700",
			"active:bg-blue-100 active:border-blue-800",
			"focus:ring-blue-500 focus:ring-opacity-50",
			"disabled:border-blue-300 disabled:text-blue-300 disabled:opacity-50 disabled:cursor-not-allowed",
			"rounded-lg",
		)
	default:
		// hover, active and border shades are component literals with no token
		return joinFragments(
			"bg-["+p.surface+"]",
			"text-["+p.foreground+"]",
			"border border-[#3c4046]/20",
			"hover:bg-[#7fc9bb] hover:border-[#3c4046]/30 hover:shadow-sm",
			"active:bg-[#6fb8a8] active:border-[#3c4046]/40 active:shadow-inner",
			"focus:ring-["+p.surface+"] focus:ring-opacity-50",
			"disabled:bg-["+p.surface+"] disabled:opacity-50 disabled:cursor-not-allowed disabled:border-[#3c4046]/10",
			"rounded-["+p.radius+"]",
		)
	}
}

func sizeFragment(p palette, size Size) string {
	switch size {
	case SizeSmall:
		return "px-3 py-1.5 text-sm min-h-[36px]"
	case SizeLarge:
		return joinFragments(
			"px-["+p.paddingL+"]",
			"py-["+p.paddingL+"]",
			"text-lg",
			"min-h-[56px]",
		)
	default:
		return joinFragments(
			"px-["+p.paddingM+"]",
			"py-["+p.paddingM+"]",
			"text-base",
			"text-["+p.fontSize+"]",
			"min-h-["+p.minHeight+"]",
		)
	}
}

func joinFragments(fragments ...string) string {
	kept := make([]string, 0, len(fragments))
	for _, fragment := range fragments {
		if fragment == "" {
			continue
		}
		kept = append(kept, fragment)
	}
	return strings.Join(kept, " ")
}
