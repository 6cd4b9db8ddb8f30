package ink

import (
	"fmt"
	"strconv"
	"strings"
)

// colorKind discriminates the internal representation of a Color.
type colorKind uint8

const (
	colorNone colorKind = iota
	colorNamed
	colorRGB
)

// namedColor identifies an entry in the fixed named-color table.
type namedColor uint8

const (
	nameDefault namedColor = iota
	nameReset
	nameBlack
	nameRed
	nameGreen
	nameYellow
	nameBlue
	nameMagenta
	nameCyan
	nameWhite
	nameBrightBlack
	nameBrightRed
	nameBrightGreen
	nameBrightYellow
	nameBrightBlue
	nameBrightMagenta
	nameBrightCyan
	nameBrightWhite
)

// Color selects a foreground or background color. The zero value selects no
// color at all: it inherits the base color during composition and emits
// nothing when rendered. Colors are comparable with ==.
type Color struct {
	kind colorKind
	name namedColor
	r    uint8
	g    uint8
	b    uint8
}

// The fixed named-color palette. Default selects the terminal's configured
// default color, and ResetColor is a composition instruction that clears the
// color slot back to unset. Gray is an alias for BrightBlack.
var (
	Default    = Color{kind: colorNamed, name: nameDefault}
	ResetColor = Color{kind: colorNamed, name: nameReset}

	Black   = Color{kind: colorNamed, name: nameBlack}
	Red     = Color{kind: colorNamed, name: nameRed}
	Green   = Color{kind: colorNamed, name: nameGreen}
	Yellow  = Color{kind: colorNamed, name: nameYellow}
	Blue    = Color{kind: colorNamed, name: nameBlue}
	Magenta = Color{kind: colorNamed, name: nameMagenta}
	Cyan    = Color{kind: colorNamed, name: nameCyan}
	White   = Color{kind: colorNamed, name: nameWhite}

	BrightBlack   = Color{kind: colorNamed, name: nameBrightBlack}
	BrightRed     = Color{kind: colorNamed, name: nameBrightRed}
	BrightGreen   = Color{kind: colorNamed, name: nameBrightGreen}
	BrightYellow  = Color{kind: colorNamed, name: nameBrightYellow}
	BrightBlue    = Color{kind: colorNamed, name: nameBrightBlue}
	BrightMagenta = Color{kind: colorNamed, name: nameBrightMagenta}
	BrightCyan    = Color{kind: colorNamed, name: nameBrightCyan}
	BrightWhite   = Color{kind: colorNamed, name: nameBrightWhite}

	Gray = BrightBlack
)

// colorNames maps every accepted color name to its palette entry. Lookup
// keys are normalized by ParseColor before consulting this table.
var colorNames = map[string]Color{
	"default":        Default,
	"reset":          ResetColor,
	"black":          Black,
	"red":            Red,
	"green":          Green,
	"yellow":         Yellow,
	"blue":           Blue,
	"magenta":        Magenta,
	"cyan":           Cyan,
	"white":          White,
	"bright-black":   BrightBlack,
	"bright-red":     BrightRed,
	"bright-green":   BrightGreen,
	"bright-yellow":  BrightYellow,
	"bright-blue":    BrightBlue,
	"bright-magenta": BrightMagenta,
	"bright-cyan":    BrightCyan,
	"bright-white":   BrightWhite,
	"gray":           Gray,
}

// RGB returns a 24-bit truecolor value.
func RGB(r, g, b uint8) Color {
	return Color{kind: colorRGB, r: r, g: g, b: b}
}

// ParseHex parses a 3- or 6-digit hexadecimal color with an optional leading
// "#". Three-digit colors expand by duplicating each digit, so "#F80" is
// equivalent to "#FF8800". Parsing is case-insensitive. It returns an error
// wrapping ErrInvalidHex when the input has any other shape.
func ParseHex(s string) (Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	switch len(hex) {
	case 6:
		// already expanded
	case 3:
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	default:
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidHex, s)
	}

	var channels [3]uint8
	for i := range channels {
		v, err := strconv.ParseUint(hex[2*i:2*i+2], 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("%w: %q", ErrInvalidHex, s)
		}
		channels[i] = uint8(v)
	}
	return RGB(channels[0], channels[1], channels[2]), nil
}

// ParseColor resolves a color from its textual form. Named colors are looked
// up first ("red", "bright-cyan", "gray", "default", "reset"); anything else
// that looks hexadecimal is handed to ParseHex. Names are matched
// case-insensitively, with spaces and underscores treated as hyphens. It
// returns an error wrapping ErrUnknownColor when the input is neither a
// known name nor hex-shaped.
func ParseColor(s string) (Color, error) {
	key := strings.TrimSpace(strings.ToLower(s))
	key = strings.NewReplacer(" ", "-", "_", "-").Replace(key)
	if c, ok := colorNames[key]; ok {
		return c, nil
	}
	if strings.HasPrefix(key, "#") || isHexShaped(key) {
		return ParseHex(key)
	}
	return Color{}, fmt.Errorf("%w: %q", ErrUnknownColor, s)
}

// isHexShaped reports whether s could only be a bare hex color.
func isHexShaped(s string) bool {
	if len(s) != 3 && len(s) != 6 {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') && (c < 'A' || c > 'F') {
			return false
		}
	}
	return true
}

// IsZero reports whether the color is unset.
func (c Color) IsZero() bool {
	return c.kind == colorNone
}

// String returns the canonical textual form of the color: the palette name
// for named colors, "#RRGGBB" for truecolor values, and the empty string for
// the zero value. Gray stringifies as "bright-black".
func (c Color) String() string {
	switch c.kind {
	case colorNamed:
		return c.name.String()
	case colorRGB:
		return fmt.Sprintf("#%02X%02X%02X", c.r, c.g, c.b)
	default:
		return ""
	}
}

func (n namedColor) String() string {
	names := [...]string{
		"default", "reset",
		"black", "red", "green", "yellow", "blue", "magenta", "cyan", "white",
		"bright-black", "bright-red", "bright-green", "bright-yellow",
		"bright-blue", "bright-magenta", "bright-cyan", "bright-white",
	}
	if int(n) < len(names) {
		return names[n]
	}
	return "invalid"
}
