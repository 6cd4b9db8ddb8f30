package ink

import (
	"fmt"
	"strings"
)

// Attributes is the full set of requests a style can carry: two color slots
// and eight tri-state effects. The zero value requests nothing.
type Attributes struct {
	Foreground Color
	Background Color

	Bold      Setting
	Faint     Setting
	Italic    Setting
	Underline Setting
	Overline  Setting
	Blink     Setting
	Inverse   Setting
	Conceal   Setting
}

// settingField pairs an effect with its name for validation and display.
type settingField struct {
	name  string
	value Setting
}

func (a Attributes) settingFields() []settingField {
	return []settingField{
		{"bold", a.Bold},
		{"faint", a.Faint},
		{"italic", a.Italic},
		{"underline", a.Underline},
		{"overline", a.Overline},
		{"blink", a.Blink},
		{"inverse", a.Inverse},
		{"conceal", a.Conceal},
	}
}

// validate checks that every effect holds a declared Setting value and that
// Double appears only on Underline.
func (a Attributes) validate() error {
	for _, f := range a.settingFields() {
		if !f.value.valid() {
			return fmt.Errorf("%w: %s=%d", ErrInvalidAttribute, f.name, uint8(f.value))
		}
		if f.value == Double && f.name != "underline" {
			return fmt.Errorf("%w: %s=%s", ErrInvalidAttribute, f.name, f.value)
		}
	}
	return nil
}

// Style is an immutable, comparable terminal style. The zero value is the
// identity style: it renders text unchanged and merging it over a base
// changes nothing. Non-zero styles are obtained from New, which precomputes
// the escape prefix so Render and Merge cannot fail afterwards.
type Style struct {
	attrs  Attributes
	prefix string
}

// New validates attrs and returns the corresponding style. It returns an
// error wrapping ErrMutuallyExclusiveAttributes when both Bold and Faint are
// On, and an error wrapping ErrInvalidAttribute for out-of-domain settings.
// Reset values are accepted: they are meaningful as Merge instructions and
// render as if unset.
func New(attrs Attributes) (Style, error) {
	if attrs.Bold == On && attrs.Faint == On {
		return Style{}, fmt.Errorf("%w: bold and faint", ErrMutuallyExclusiveAttributes)
	}
	prefix, err := Sequence(attrs)
	if err != nil {
		return Style{}, err
	}
	return Style{attrs: attrs, prefix: prefix}, nil
}

// Render wraps text in the style's escape prefix and the reset sequence.
// A style with an empty prefix returns text completely unchanged, so
// rendering with the zero style is the identity function and emits no stray
// reset bytes.
func (s Style) Render(text string) string {
	if s.prefix == "" {
		return text
	}
	return s.prefix + text + ResetSequence
}

// Prefix returns the precomputed SGR sequence, or "" when the style selects
// nothing. Callers streaming many fragments under one style can emit the
// prefix once and close with ResetSequence themselves.
func (s Style) Prefix() string {
	return s.prefix
}

// Attributes returns a copy of the attributes the style was built from.
func (s Style) Attributes() Attributes {
	return s.attrs
}

// Equal reports whether two styles request exactly the same attributes.
func (s Style) Equal(other Style) bool {
	return s.attrs == other.attrs
}

// IsZero reports whether the style is the identity style.
func (s Style) IsZero() bool {
	return s.attrs == Attributes{}
}

// String returns a compact debug form listing only the attributes the style
// sets, such as "style(fg=red bold=on)".
func (s Style) String() string {
	var parts []string
	if !s.attrs.Foreground.IsZero() {
		parts = append(parts, "fg="+s.attrs.Foreground.String())
	}
	if !s.attrs.Background.IsZero() {
		parts = append(parts, "bg="+s.attrs.Background.String())
	}
	for _, f := range s.attrs.settingFields() {
		if f.value != Unset {
			parts = append(parts, f.name+"="+f.value.String())
		}
	}
	return "style(" + strings.Join(parts, " ") + ")"
}
