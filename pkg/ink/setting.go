package ink

// Setting is the tri-state value of a single text effect. The zero value is
// Unset, so an empty Attributes literal carries no opinion about any effect.
type Setting uint8

const (
	// Unset means the attribute has no opinion. During composition an unset
	// overlay attribute inherits the base value; during rendering it emits
	// nothing.
	Unset Setting = iota

	// Off explicitly disables the attribute. It emits nothing when rendered
	// but overrides the base value during composition.
	Off

	// On enables the attribute.
	On

	// Double selects double underline. It is valid only for the Underline
	// attribute and replaces single underline entirely.
	Double

	// Reset is a composition instruction: merging a Reset attribute over any
	// base value clears the result back to Unset. A style holding Reset
	// renders nothing for that attribute.
	Reset
)

// String returns the lowercase name of the setting.
func (s Setting) String() string {
	switch s {
	case Unset:
		return "unset"
	case Off:
		return "off"
	case On:
		return "on"
	case Double:
		return "double"
	case Reset:
		return "reset"
	default:
		return "invalid"
	}
}

// valid reports whether s is one of the declared Setting values.
func (s Setting) valid() bool {
	return s <= Reset
}
