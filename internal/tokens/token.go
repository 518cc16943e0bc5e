package tokens

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"
)

// Kind identifies the shape of a Token value.
type Kind int

const (
	// KindString holds colors and other literal strings such as font families.
	KindString Kind = iota
	// KindNumber holds sizes, weights and spacing in device-independent pixels.
	KindNumber
	// KindTypography holds a composite typography record.
	KindTypography
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindTypography:
		return "typography"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Typography is the composite text-style token.
type Typography struct {
	Family        string
	Size          float64
	Weight        float64
	LineHeight    float64
	LetterSpacing float64
}

// Token is an immutable leaf value of the token tree.
type Token struct {
	kind       Kind
	text       string
	number     float64
	typography Typography
}

// String builds a string token (colors, families, border colors).
func String(value string) Token {
	return Token{kind: KindString, text: value}
}

// Number builds a numeric token.
func Number(value float64) Token {
	return Token{kind: KindNumber, number: value}
}

// TypographyToken builds a composite typography token.
func TypographyToken(value Typography) Token {
	return Token{kind: KindTypography, typography: value}
}

func (Token) isNode() {}

// Kind reports the token's value shape.
func (t Token) Kind() Kind {
	return t.kind
}

// Text returns the string value, or false if the token is not a string.
func (t Token) Text() (string, bool) {
	if t.kind != KindString {
		return "", false
	}
	return t.text, true
}

// Number returns the numeric value, or false if the token is not numeric.
func (t Token) Number() (float64, bool) {
	if t.kind != KindNumber {
		return 0, false
	}
	return t.number, true
}

// Typography returns the typography record, or false for other kinds.
func (t Token) Typography() (Typography, bool) {
	if t.kind != KindTypography {
		return Typography{}, false
	}
	return t.typography, true
}

// Field exposes a typography record's members as child tokens so paths such as
// "alias.typography.body-regular.size" resolve. Other kinds have no fields.
func (t Token) Field(name string) (Token, bool) {
	if t.kind != KindTypography {
		return Token{}, false
	}
	switch name {
	case "family":
		return String(t.typography.Family), true
	case "size":
		return Number(t.typography.Size), true
	case "weight":
		return Number(t.typography.Weight), true
	case "lineHeight":
		return Number(t.typography.LineHeight), true
	case "letterSpacing":
		return Number(t.typography.LetterSpacing), true
	default:
		return Token{}, false
	}
}

// String renders the raw value: strings verbatim, numbers without trailing zeros.
func (t Token) String() string {
	switch t.kind {
	case KindNumber:
		return FormatNumber(t.number)
	case KindTypography:
		ty := t.typography
		return fmt.Sprintf("%s %spx/%s weight %s spacing %spx",
			ty.Family, FormatNumber(ty.Size), FormatNumber(ty.LineHeight),
			FormatNumber(ty.Weight), FormatNumber(ty.LetterSpacing))
	default:
		return t.text
	}
}

// Pixels renders the token as a CSS length: numbers get a px suffix and
// strings pass through unchanged.
func (t Token) Pixels() string {
	if t.kind == KindNumber {
		return FormatNumber(t.number) + "px"
	}
	return t.String()
}

// Plain converts the token into a value built from strings, numbers and maps.
// Integral numbers become int64 so encoders do not print a fractional part.
func (t Token) Plain() any {
	switch t.kind {
	case KindNumber:
		return plainNumber(t.number)
	case KindTypography:
		ty := t.typography
		return map[string]any{
			"family":        ty.Family,
			"size":          plainNumber(ty.Size),
			"weight":        plainNumber(ty.Weight),
			"lineHeight":    plainNumber(ty.LineHeight),
			"letterSpacing": plainNumber(ty.LetterSpacing),
		}
	default:
		return t.text
	}
}

// MarshalJSON implements json.Marshaler.
func (t Token) MarshalJSON() ([]byte, error) {
	switch t.kind {
	case KindNumber:
		return []byte(FormatNumber(t.number)), nil
	case KindTypography:
		return json.Marshal(t.typographyGroup())
	default:
		return json.Marshal(t.text)
	}
}

// MarshalYAML implements yaml.Marshaler.
func (t Token) MarshalYAML() (interface{}, error) {
	switch t.kind {
	case KindNumber:
		tag := "!!float"
		if _, ok := plainNumber(t.number).(int64); ok {
			tag = "!!int"
		}
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: FormatNumber(t.number)}, nil
	case KindTypography:
		return t.typographyGroup().MarshalYAML()
	default:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: t.text}, nil
	}
}

// EncodeMsgpack implements msgpack.CustomEncoder.
func (t Token) EncodeMsgpack(enc *msgpack.Encoder) error {
	switch t.kind {
	case KindNumber:
		if n, ok := plainNumber(t.number).(int64); ok {
			return enc.EncodeInt(n)
		}
		return enc.EncodeFloat64(t.number)
	case KindTypography:
		return t.typographyGroup().EncodeMsgpack(enc)
	default:
		return enc.EncodeString(t.text)
	}
}

func (t Token) typographyGroup() *Group {
	ty := t.typography
	return newGroup().
		set("family", String(ty.Family)).
		set("size", Number(ty.Size)).
		set("weight", Number(ty.Weight)).
		set("lineHeight", Number(ty.LineHeight)).
		set("letterSpacing", Number(ty.LetterSpacing))
}

// FormatNumber prints a number in its shortest exact decimal form (16, 1.2, -2).
func FormatNumber(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}

func plainNumber(value float64) any {
	if value == float64(int64(value)) {
		return int64(value)
	}
	return value
}
