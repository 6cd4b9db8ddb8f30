package ink

import (
	"fmt"
	"strconv"
	"strings"
)

// ResetSequence restores the terminal's default rendition. Render appends it
// after the text whenever a style emits a non-empty prefix.
const ResetSequence = "\x1b[0m"

// namedCodes maps palette entries to their foreground SGR code. Background
// codes are the foreground code plus 10. Default and reset map to zero and
// emit no parameter at all.
var namedCodes = [...]int{
	nameDefault:       0,
	nameReset:         0,
	nameBlack:         30,
	nameRed:           31,
	nameGreen:         32,
	nameYellow:        33,
	nameBlue:          34,
	nameMagenta:       35,
	nameCyan:          36,
	nameWhite:         37,
	nameBrightBlack:   90,
	nameBrightRed:     91,
	nameBrightGreen:   92,
	nameBrightYellow:  93,
	nameBrightBlue:    94,
	nameBrightMagenta: 95,
	nameBrightCyan:    96,
	nameBrightWhite:   97,
}

// colorParam renders one color slot as an SGR parameter fragment, or "" when
// the slot contributes nothing to the sequence.
func colorParam(c Color, background bool) string {
	switch c.kind {
	case colorNamed:
		code := namedCodes[c.name]
		if code == 0 {
			return ""
		}
		if background {
			code += 10
		}
		return strconv.Itoa(code)
	case colorRGB:
		base := 38
		if background {
			base = 48
		}
		return fmt.Sprintf("%d;2;%d;%d;%d", base, c.r, c.g, c.b)
	default:
		return ""
	}
}

// Sequence builds the SGR escape sequence selecting the given attributes. It
// validates attribute domains first and returns an error wrapping
// ErrInvalidAttribute for out-of-range settings or a Double value on
// anything but Underline. A fully unset Attributes value produces the empty
// string, never a bare escape.
//
// Parameter order is fixed: foreground, background, then effects in
// ascending numeric code order (bold 1, faint 2, italic 3, underline 4,
// blink 5, inverse 7, conceal 8, double underline 21, overline 53). Equal
// attribute sets therefore always produce byte-identical sequences.
func Sequence(attrs Attributes) (string, error) {
	if err := attrs.validate(); err != nil {
		return "", err
	}
	return sequence(attrs), nil
}

// sequence emits the prefix for attributes that already passed validation.
func sequence(a Attributes) string {
	var params []string
	if p := colorParam(a.Foreground, false); p != "" {
		params = append(params, p)
	}
	if p := colorParam(a.Background, true); p != "" {
		params = append(params, p)
	}
	effects := [...]struct {
		code string
		on   bool
	}{
		{"1", a.Bold == On},
		{"2", a.Faint == On},
		{"3", a.Italic == On},
		{"4", a.Underline == On},
		{"5", a.Blink == On},
		{"7", a.Inverse == On},
		{"8", a.Conceal == On},
		{"21", a.Underline == Double},
		{"53", a.Overline == On},
	}
	for _, e := range effects {
		if e.on {
			params = append(params, e.code)
		}
	}
	if len(params) == 0 {
		return ""
	}
	return "\x1b[" + strings.Join(params, ";") + "m"
}
