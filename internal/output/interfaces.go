// Package output provides a unified console output system for Inkline.
// It uses dependency injection to support optional styling while maintaining clean architecture.
package output

// StyleProvider is the interface that styling services (like ThemeService) implement
// to provide styled text rendering capabilities.
// The output package depends only on this interface, not on concrete services.
type StyleProvider interface {
	// GetStyle returns a TextStyle for the given semantic type.
	// Semantic types include: "heading", "label", "success", "error", "info", etc.
	GetStyle(semantic string) TextStyle

	// IsAvailable returns true if the style provider is ready to provide styles.
	// This allows the output system to gracefully fall back to plain text.
	IsAvailable() bool

	// GetThemeType returns the theme type for markdown rendering (e.g., "dark", "light", "auto").
	GetThemeType() string
}

// TextStyle represents the capability to render text with styling.
// ink.Style satisfies this interface directly, so theme services can hand
// their resolved styles to the printer without any adapter.
type TextStyle interface {
	// Render applies styling to the given text and returns the styled result.
	Render(text string) string
}

// Mode defines different output modes the printer can operate in.
type Mode int

const (
	// ModeAuto picks styled or plain output based on the terminal's
	// advertised color support.
	ModeAuto Mode = iota

	// ModeStyled forces styled output (with colors, formatting)
	ModeStyled

	// ModePlain forces plain text output (no colors, minimal formatting)
	ModePlain

	// ModeJSON outputs structured JSON for machine consumption
	ModeJSON
)

// SemanticType defines the semantic meaning of output for consistent styling.
// The named types mirror the semantic elements every Inkline theme defines.
type SemanticType string

const (
	// SemanticPlain represents plain text without any semantic meaning.
	SemanticPlain SemanticType = "plain"
	// SemanticHeading represents section titles and banners.
	SemanticHeading SemanticType = "heading"
	// SemanticLabel represents field names and keys.
	SemanticLabel SemanticType = "label"
	// SemanticSuccess represents success or completion text.
	SemanticSuccess SemanticType = "success"
	// SemanticError represents error text.
	SemanticError SemanticType = "error"
	// SemanticWarning represents warning text.
	SemanticWarning SemanticType = "warning"
	// SemanticInfo represents informational text.
	SemanticInfo SemanticType = "info"
	// SemanticHighlight represents highlighted or emphasized text.
	SemanticHighlight SemanticType = "highlight"
	// SemanticMuted represents de-emphasized detail text.
	SemanticMuted SemanticType = "muted"
	// SemanticAccent represents decorative flourishes.
	SemanticAccent SemanticType = "accent"
)
