package services

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/log"

	"inkline/internal/logger"
	"inkline/pkg/inktypes"
)

// MarkdownService renders Markdown documents to styled terminal output
// using Glamour. The guide command uses it for the embedded user guide.
type MarkdownService struct {
	initialized bool
	renderer    *glamour.TermRenderer
	logger      *log.Logger
}

// NewMarkdownService creates a new MarkdownService instance.
func NewMarkdownService() *MarkdownService {
	return &MarkdownService{
		initialized: false,
		renderer:    nil,
		logger:      logger.NewStyledLogger("Markdown"),
	}
}

// Name returns the service name "markdown" for registration.
func (m *MarkdownService) Name() string {
	return "markdown"
}

// Initialize sets up the MarkdownService with default configuration.
func (m *MarkdownService) Initialize() error {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		return fmt.Errorf("failed to create markdown renderer: %w", err)
	}

	m.renderer = renderer
	m.initialized = true

	logger.ServiceOperation("markdown", "initialize")
	return nil
}

// Render renders markdown content to ANSI terminal output with the
// auto-detected style.
func (m *MarkdownService) Render(markdown string) (string, error) {
	if !m.initialized {
		return "", fmt.Errorf("markdown service not initialized")
	}

	if strings.TrimSpace(markdown) == "" {
		return "", fmt.Errorf("markdown content cannot be empty")
	}

	rendered, err := m.renderer.Render(markdown)
	if err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}

	return rendered, nil
}

// RenderWithStyle renders markdown content with a specific Glamour style.
// Supported styles include: "auto", "dark", "light", "notty", "ascii"
func (m *MarkdownService) RenderWithStyle(markdown string, style string) (string, error) {
	if !m.initialized {
		return "", fmt.Errorf("markdown service not initialized")
	}

	if strings.TrimSpace(markdown) == "" {
		return "", fmt.Errorf("markdown content cannot be empty")
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStylePath(style),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		// Fall back to default renderer if style is not available
		m.logger.Debug("Failed to create renderer with style, falling back to default", "style", style, "error", err)
		return m.Render(markdown)
	}

	rendered, err := renderer.Render(markdown)
	if err != nil {
		return "", fmt.Errorf("failed to render markdown with style '%s': %w", style, err)
	}

	return rendered, nil
}

// RenderForTheme renders markdown content with the Glamour style matching
// an Inkline theme name.
func (m *MarkdownService) RenderForTheme(markdown string, themeName string) (string, error) {
	return m.RenderWithStyle(markdown, mapThemeToGlamourStyle(themeName))
}

// mapThemeToGlamourStyle maps Inkline theme names to Glamour styles. The
// colorless themes render through notty so the guide matches their look.
func mapThemeToGlamourStyle(themeName string) string {
	switch strings.ToLower(themeName) {
	case "dark":
		return "dark"
	case "light":
		return "light"
	case "plain", "mono", "monochrome", "none":
		return "notty"
	default:
		return "auto"
	}
}

// GetAvailableStyles returns a list of available Glamour styles.
func (m *MarkdownService) GetAvailableStyles() []string {
	return []string{
		"auto",  // Auto-detect based on terminal
		"dark",  // Dark theme
		"light", // Light theme
		"notty", // Plain text (no colors)
		"ascii", // ASCII-only styling
	}
}

var _ inktypes.Service = (*MarkdownService)(nil)

func init() {
	// Register the MarkdownService with the global registry
	if err := GlobalRegistry.RegisterService(NewMarkdownService()); err != nil {
		panic(fmt.Sprintf("failed to register markdown service: %v", err))
	}
}
