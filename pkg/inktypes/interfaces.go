// Package inktypes defines the shared data structures for Inkline's theming
// system. This file contains the architectural interfaces that services
// implement and consumers depend on.
package inktypes

import "inkline/pkg/ink"

// Service defines the interface that all Inkline services must implement.
// Services register themselves with the global registry and are initialized
// once at startup.
type Service interface {
	Name() string
	Initialize() error
}

// StyleResolver resolves semantic element names to ready-to-render styles.
// The theme service implements this; the output layer consumes it without
// knowing where the styles came from.
type StyleResolver interface {
	// Style returns the resolved style for a semantic element of the
	// active theme. Unknown elements resolve to the zero style.
	Style(element string) ink.Style

	// ThemeName returns the name of the active theme.
	ThemeName() string
}

// The semantic element names every theme defines.
const (
	ElementHeading   = "heading"
	ElementLabel     = "label"
	ElementSuccess   = "success"
	ElementError     = "error"
	ElementWarning   = "warning"
	ElementInfo      = "info"
	ElementHighlight = "highlight"
	ElementMuted     = "muted"
	ElementAccent    = "accent"
)

// Elements lists the semantic element names in display order.
func Elements() []string {
	return []string{
		ElementHeading,
		ElementLabel,
		ElementSuccess,
		ElementError,
		ElementWarning,
		ElementInfo,
		ElementHighlight,
		ElementMuted,
		ElementAccent,
	}
}
