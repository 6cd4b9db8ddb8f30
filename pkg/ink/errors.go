package ink

import "errors"

// Sentinel errors reported by color parsing and style construction. They are
// always returned wrapped with the offending input, so callers match them
// with errors.Is.
var (
	// ErrInvalidHex reports a hex color that is not 3 or 6 hex digits with
	// an optional leading "#".
	ErrInvalidHex = errors.New("invalid hex color")

	// ErrUnknownColor reports a color name outside the fixed palette.
	ErrUnknownColor = errors.New("unknown color")

	// ErrMutuallyExclusiveAttributes reports bold and faint both explicitly
	// On at construction. Merge resolves the same conflict silently in
	// favor of the overlay.
	ErrMutuallyExclusiveAttributes = errors.New("mutually exclusive attributes")

	// ErrInvalidAttribute reports an attribute value outside its declared
	// domain, such as Double on anything but Underline.
	ErrInvalidAttribute = errors.New("invalid attribute")
)
