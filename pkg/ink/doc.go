// Package ink provides immutable terminal text styles backed by ANSI SGR
// escape sequences.
//
// A Style is a value type describing foreground and background colors plus a
// fixed set of text effects (bold, faint, italic, underline, overline, blink,
// inverse, conceal). Styles are created with New, which validates the
// requested attributes and precomputes the escape sequence, so rendering and
// composition never fail:
//
//	style, err := ink.New(ink.Attributes{
//		Foreground: ink.Red,
//		Bold:       ink.On,
//	})
//	if err != nil {
//		// invalid attribute combination
//	}
//	fmt.Println(style.Render("alert"))
//
// Styles compose with Merge, which layers an overlay style over a base style.
// Attributes the overlay leaves unset are inherited from the base; attributes
// set to Reset are cleared back to unset. Merge always produces a valid
// style, which makes it safe for theme inheritance chains of any depth.
//
// Every attribute is tri-state: unset (no opinion), explicitly off, or
// explicitly on. The distinction matters only for composition; a lone style
// renders unset and off identically by emitting nothing for that attribute.
package ink
