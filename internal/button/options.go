package button

import (
	"fmt"
	"strings"

	kiterrors "github.com/alexisbeaulieu97/buttonkit/pkg/errors"
)

// Variant selects the button's color treatment.
type Variant int

const (
	VariantPrimary Variant = iota
	VariantSecondary
	VariantOutline
)

// Variants lists every variant in display order.
var Variants = []Variant{VariantPrimary, VariantSecondary, VariantOutline}

func (v Variant) String() string {
	switch v {
	case VariantPrimary:
		return "primary"
	case VariantSecondary:
		return "secondary"
	case VariantOutline:
		return "outline"
	default:
		return fmt.Sprintf("Variant(%d)", int(v))
	}
}

// ParseVariant converts the textual variant name used by the CLI and config.
func ParseVariant(s string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "primary":
		return VariantPrimary, nil
	case "secondary":
		return VariantSecondary, nil
	case "outline":
		return VariantOutline, nil
	default:
		return VariantPrimary, kiterrors.NewValidationError("variant", fmt.Sprintf("unknown variant %q (want primary, secondary or outline)", s), nil)
	}
}

// Size selects padding, font scale and minimum height. The zero value is medium.
type Size int

const (
	SizeMedium Size = iota
	SizeSmall
	SizeLarge
)

// Sizes lists every size from smallest to largest.
var Sizes = []Size{SizeSmall, SizeMedium, SizeLarge}

func (s Size) String() string {
	switch s {
	case SizeSmall:
		return "small"
	case SizeMedium:
		return "medium"
	case SizeLarge:
		return "large"
	default:
		return fmt.Sprintf("Size(%d)", int(s))
	}
}

// ParseSize converts the textual size name used by the CLI and config.
func ParseSize(s string) (Size, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "medium":
		return SizeMedium, nil
	case "small":
		return SizeSmall, nil
	case "large":
		return SizeLarge, nil
	default:
		return SizeMedium, kiterrors.NewValidationError("size", fmt.Sprintf("unknown size %q (want small, medium or large)", s), nil)
	}
}

// Kind is the element's form behavior, rendered as the type attribute.
type Kind int

const (
	KindButton Kind = iota
	KindSubmit
	KindReset
)

func (k Kind) String() string {
	switch k {
	case KindSubmit:
		return "submit"
	case KindReset:
		return "reset"
	default:
		return "button"
	}
}

// ParseKind converts the textual element type used by the CLI and config.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "button":
		return KindButton, nil
	case "submit":
		return KindSubmit, nil
	case "reset":
		return KindReset, nil
	default:
		return KindButton, kiterrors.NewValidationError("type", fmt.Sprintf("unknown button type %q (want button, submit or reset)", s), nil)
	}
}

// Options configures a single render. The zero value is a medium primary
// button of type "button", enabled and idle.
type Options struct {
	Variant  Variant
	Size     Size
	Disabled bool
	Loading  bool
	Kind     Kind
	// ExtraClass is appended verbatim after every computed fragment.
	ExtraClass string
}
