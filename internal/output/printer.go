package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
)

// Printer is the main output handler that supports both plain and styled output.
// It uses dependency injection to optionally support styling while maintaining
// clean architecture with no service dependencies.
type Printer struct {
	styleProvider StyleProvider
	writer        io.Writer
	mode          Mode
	forcePlain    bool
	testMode      bool
	silent        bool
	prefix        string

	// Thread safety for concurrent output
	mu sync.Mutex
}

// NewPrinter creates a new Printer with the given options.
// By default, it writes to os.Stdout with automatic mode detection.
func NewPrinter(options ...Option) *Printer {
	p := &Printer{
		writer: os.Stdout,
		mode:   ModeAuto,
	}

	// Apply options
	for _, opt := range options {
		opt(p)
	}

	return p
}

// Print outputs text without any semantic styling.
// This is the basic replacement for fmt.Print.
func (p *Printer) Print(text string) {
	p.output(SemanticPlain, text, false)
}

// Printf outputs formatted text without any semantic styling.
// This is the basic replacement for fmt.Printf.
func (p *Printer) Printf(format string, args ...interface{}) {
	p.output(SemanticPlain, fmt.Sprintf(format, args...), false)
}

// Println outputs text with a newline without any semantic styling.
// This is the basic replacement for fmt.Println.
func (p *Printer) Println(text string) {
	p.output(SemanticPlain, text, true)
}

// Heading outputs section title text with heading styling.
func (p *Printer) Heading(text string) {
	p.output(SemanticHeading, text, true)
}

// Label outputs field name text with label styling.
func (p *Printer) Label(text string) {
	p.output(SemanticLabel, text, false)
}

// Info outputs informational text with info styling.
func (p *Printer) Info(text string) {
	p.output(SemanticInfo, text, true)
}

// Success outputs success text with success styling (typically green).
func (p *Printer) Success(text string) {
	p.output(SemanticSuccess, text, true)
}

// Warning outputs warning text with warning styling (typically yellow).
func (p *Printer) Warning(text string) {
	p.output(SemanticWarning, text, true)
}

// Error outputs error text with error styling (typically red).
func (p *Printer) Error(text string) {
	p.output(SemanticError, text, true)
}

// Highlight outputs text with highlight styling.
func (p *Printer) Highlight(text string) {
	p.output(SemanticHighlight, text, false)
}

// Muted outputs de-emphasized text with muted styling.
func (p *Printer) Muted(text string) {
	p.output(SemanticMuted, text, false)
}

// Accent outputs decorative text with accent styling.
func (p *Printer) Accent(text string) {
	p.output(SemanticAccent, text, false)
}

// Semantic outputs text under an arbitrary semantic type. The swatch command
// uses it to iterate every theme element without one method per element.
func (p *Printer) Semantic(semantic SemanticType, text string) {
	p.output(semantic, text, false)
}

// output is the core output method that handles all rendering logic.
func (p *Printer) output(semantic SemanticType, text string, addNewline bool) {
	if p.silent {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	// Prepare the text based on output mode
	var finalText string

	switch p.mode {
	case ModeJSON:
		finalText = p.renderJSON(semantic, text)
	case ModePlain:
		finalText = p.renderPlain(semantic, text, addNewline)
	case ModeStyled:
		finalText = p.renderStyled(semantic, text, addNewline)
	case ModeAuto:
		if TerminalSupportsColor() {
			finalText = p.renderStyled(semantic, text, addNewline)
		} else {
			finalText = p.renderPlain(semantic, text, addNewline)
		}
	}

	// Apply prefix if configured
	if p.prefix != "" {
		finalText = p.prefix + finalText
	}

	// Write to output
	_, _ = fmt.Fprint(p.writer, finalText) // Ignore write errors for output operations
}

// renderPlain renders text without escape sequences, using semantic prefixes.
func (p *Printer) renderPlain(semantic SemanticType, text string, addNewline bool) string {
	plainProvider := NewPlainStyleProvider()
	result := plainProvider.GetStyle(string(semantic)).Render(text)

	if addNewline && !strings.HasSuffix(result, "\n") {
		result += "\n"
	}

	return result
}

// renderStyled renders text through the configured style provider, falling
// back to plain rendering when no provider is available.
func (p *Printer) renderStyled(semantic SemanticType, text string, addNewline bool) string {
	if !p.forcePlain && p.styleProvider != nil && p.styleProvider.IsAvailable() {
		style := p.styleProvider.GetStyle(string(semantic))
		result := style.Render(text)
		if addNewline && !strings.HasSuffix(result, "\n") {
			result += "\n"
		}
		return result
	}

	return p.renderPlain(semantic, text, addNewline)
}

// renderJSON renders output as structured JSON.
func (p *Printer) renderJSON(semantic SemanticType, text string) string {
	output := map[string]interface{}{
		"type":    semantic,
		"message": text,
	}

	jsonBytes, err := json.Marshal(output)
	if err != nil {
		// Fall back to plain text if JSON encoding fails
		return text + "\n"
	}

	return string(jsonBytes) + "\n"
}

// SetWriter changes the output writer. This is useful for testing or redirecting output.
func (p *Printer) SetWriter(writer io.Writer) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.writer = writer
}

// SetMode changes the output mode.
func (p *Printer) SetMode(mode Mode) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.mode = mode
}

// SetStyleProvider changes the style provider. Pass nil to disable styling.
func (p *Printer) SetStyleProvider(provider StyleProvider) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.styleProvider = provider
}

// IsStylable returns true if the printer can apply styles.
func (p *Printer) IsStylable() bool {
	return !p.forcePlain && p.styleProvider != nil && p.styleProvider.IsAvailable()
}

// String returns a string representation for debugging.
func (p *Printer) String() string {
	hasStyles := "no"
	if p.IsStylable() {
		hasStyles = "yes"
	}
	return fmt.Sprintf("Printer{mode: %v, styles: %s, writer: %T}", p.mode, hasStyles, p.writer)
}
