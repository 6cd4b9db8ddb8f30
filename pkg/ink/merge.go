package ink

// Merge layers overlay over s and returns the combined style. For every
// attribute the overlay wins when it has an opinion:
//
//   - overlay Unset (or zero color): the base value is kept unchanged
//   - overlay Reset (or the reset color): the result is cleared to Unset,
//     discarding the base value
//   - anything else: the overlay value replaces the base value
//
// After the generic rule, bold and faint are reconciled: an overlay turning
// one of them On forces the other Off, so a merged style never carries both.
// An explicit overlay Reset on bold or faint clears exactly that attribute
// to Unset and is not overridden by the reconciliation.
//
// Merge is total. Both inputs already passed construction validation, so the
// result is valid by construction and no error path exists. Merging the zero
// style over a base returns the base unchanged. Merge is not commutative; in
// a left-to-right chain the rightmost opinion wins, with Reset acting as a
// hard clearing wall.
func (s Style) Merge(overlay Style) Style {
	a := s.attrs
	o := overlay.attrs

	a.Foreground = mergeColor(a.Foreground, o.Foreground)
	a.Background = mergeColor(a.Background, o.Background)
	a.Bold = mergeSetting(a.Bold, o.Bold)
	a.Faint = mergeSetting(a.Faint, o.Faint)
	a.Italic = mergeSetting(a.Italic, o.Italic)
	a.Underline = mergeSetting(a.Underline, o.Underline)
	a.Overline = mergeSetting(a.Overline, o.Overline)
	a.Blink = mergeSetting(a.Blink, o.Blink)
	a.Inverse = mergeSetting(a.Inverse, o.Inverse)
	a.Conceal = mergeSetting(a.Conceal, o.Conceal)

	// Bold and faint exclusion, applied after the generic rule so an
	// overlay opinion on one side clears a base opinion on the other. An
	// explicit Reset keeps the Unset produced by the generic rule.
	if o.Bold == On && o.Faint != Reset {
		a.Faint = Off
	}
	if o.Faint == On && o.Bold != Reset {
		a.Bold = Off
	}

	return Style{attrs: a, prefix: sequence(a)}
}

func mergeSetting(base, overlay Setting) Setting {
	switch overlay {
	case Unset:
		return base
	case Reset:
		return Unset
	default:
		return overlay
	}
}

func mergeColor(base, overlay Color) Color {
	switch {
	case overlay.IsZero():
		return base
	case overlay == ResetColor:
		return Color{}
	default:
		return overlay
	}
}
