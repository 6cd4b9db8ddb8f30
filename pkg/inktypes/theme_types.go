// Package inktypes defines the shared data structures for Inkline's theming
// system. This file contains the raw theme schema as it appears in YAML,
// before the theme service resolves it into ink styles.
package inktypes

import "fmt"

// StyleSpec is the unresolved styling request for one semantic element as
// written in a theme file. Color fields accept a palette name ("red",
// "bright-cyan", "gray"), a hex string ("#FF8800", "F80"), or "reset" to
// clear an inherited color. Effect fields accept a bool, the string "reset"
// to clear an inherited effect, and for underline additionally the string
// "double". A field left out of the YAML carries no opinion and inherits
// whatever the parent theme set.
type StyleSpec struct {
	// Foreground color name or hex string
	Foreground interface{} `yaml:"foreground,omitempty" json:"foreground,omitempty"`

	// Background color name or hex string
	Background interface{} `yaml:"background,omitempty" json:"background,omitempty"`

	// Bold text effect
	Bold interface{} `yaml:"bold,omitempty" json:"bold,omitempty"`

	// Faint text effect; themes cannot combine this with bold on one element
	Faint interface{} `yaml:"faint,omitempty" json:"faint,omitempty"`

	// Italic text effect
	Italic interface{} `yaml:"italic,omitempty" json:"italic,omitempty"`

	// Underline text effect; also accepts "double"
	Underline interface{} `yaml:"underline,omitempty" json:"underline,omitempty"`

	// Overline text effect
	Overline interface{} `yaml:"overline,omitempty" json:"overline,omitempty"`

	// Blink text effect
	Blink interface{} `yaml:"blink,omitempty" json:"blink,omitempty"`

	// Inverse swaps foreground and background
	Inverse interface{} `yaml:"inverse,omitempty" json:"inverse,omitempty"`

	// Conceal hides the text
	Conceal interface{} `yaml:"conceal,omitempty" json:"conceal,omitempty"`
}

// IsEmpty reports whether the spec carries no opinion at all.
func (s StyleSpec) IsEmpty() bool {
	return s.Foreground == nil && s.Background == nil &&
		s.Bold == nil && s.Faint == nil && s.Italic == nil &&
		s.Underline == nil && s.Overline == nil && s.Blink == nil &&
		s.Inverse == nil && s.Conceal == nil
}

// ThemeElements holds one StyleSpec per semantic element Inkline renders.
type ThemeElements struct {
	// Heading style for section titles and banners
	Heading StyleSpec `yaml:"heading" json:"heading"`

	// Label style for field names and keys
	Label StyleSpec `yaml:"label" json:"label"`

	// Success style for positive feedback
	Success StyleSpec `yaml:"success" json:"success"`

	// Error style for failures
	Error StyleSpec `yaml:"error" json:"error"`

	// Warning style for cautions
	Warning StyleSpec `yaml:"warning" json:"warning"`

	// Info style for neutral informational output
	Info StyleSpec `yaml:"info" json:"info"`

	// Highlight style for emphasized spans and selections
	Highlight StyleSpec `yaml:"highlight" json:"highlight"`

	// Muted style for de-emphasized detail text
	Muted StyleSpec `yaml:"muted" json:"muted"`

	// Accent style for decorative flourishes
	Accent StyleSpec `yaml:"accent" json:"accent"`
}

// ThemeSpec is a theme as loaded from YAML, before resolution.
type ThemeSpec struct {
	// Name is the theme identifier (e.g., "default", "dark", "light", "plain")
	Name string `yaml:"name" json:"name"`

	// Description provides a brief description of the theme
	Description string `yaml:"description,omitempty" json:"description,omitempty"`

	// Extends names a parent theme whose resolved styles this theme
	// layers its own elements over
	Extends string `yaml:"extends,omitempty" json:"extends,omitempty"`

	// Elements contains the per-element styling requests
	Elements ThemeElements `yaml:"elements" json:"elements"`
}

// ThemeFile represents a complete theme file loaded from YAML. Each file
// contains a single ThemeSpec.
type ThemeFile struct {
	ThemeSpec `yaml:",inline" json:",inline"`
}

// SpecValidationError reports a theme field that could not be resolved into
// a style attribute.
type SpecValidationError struct {
	Theme   string `json:"theme"`   // The theme being resolved
	Element string `json:"element"` // The semantic element within the theme
	Field   string `json:"field"`   // The field that failed validation
	Value   string `json:"value"`   // The invalid value
	Message string `json:"message"` // Human-readable error message
}

// Error implements the error interface for SpecValidationError.
func (e SpecValidationError) Error() string {
	return fmt.Sprintf("theme %q element %q: %s %s: %s",
		e.Theme, e.Element, e.Field, e.Value, e.Message)
}
