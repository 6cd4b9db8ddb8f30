package output

import (
	"os"
	"sync"

	"github.com/muesli/termenv"
)

// Global printer instance for convenience functions
var (
	globalPrinter *Printer
	globalMu      sync.RWMutex
)

// Initialize sets up the global printer with default settings.
func init() {
	globalPrinter = NewPrinter()
}

// SetGlobalPrinter sets the global printer instance.
// This allows configuration of the global output behavior.
func SetGlobalPrinter(printer *Printer) {
	globalMu.Lock()
	defer globalMu.Unlock()
	globalPrinter = printer
}

// GetGlobalPrinter returns the current global printer instance.
func GetGlobalPrinter() *Printer {
	globalMu.RLock()
	defer globalMu.RUnlock()
	return globalPrinter
}

// ConfigureGlobal configures the global printer with the given options.
func ConfigureGlobal(options ...Option) {
	globalMu.Lock()
	defer globalMu.Unlock()
	globalPrinter = NewPrinter(options...)
}

// Global convenience functions that use the global printer instance.
// These provide direct replacements for fmt.Print* functions.

// Print outputs text using the global printer.
func Print(text string) {
	GetGlobalPrinter().Print(text)
}

// Printf outputs formatted text using the global printer.
func Printf(format string, args ...interface{}) {
	GetGlobalPrinter().Printf(format, args...)
}

// Println outputs text with newline using the global printer.
func Println(text string) {
	GetGlobalPrinter().Println(text)
}

// Heading outputs section title text using the global printer.
func Heading(text string) {
	GetGlobalPrinter().Heading(text)
}

// Label outputs field name text using the global printer.
func Label(text string) {
	GetGlobalPrinter().Label(text)
}

// Info outputs informational text using the global printer.
func Info(text string) {
	GetGlobalPrinter().Info(text)
}

// Success outputs success text using the global printer.
func Success(text string) {
	GetGlobalPrinter().Success(text)
}

// Warning outputs warning text using the global printer.
func Warning(text string) {
	GetGlobalPrinter().Warning(text)
}

// Error outputs error text using the global printer.
func Error(text string) {
	GetGlobalPrinter().Error(text)
}

// Highlight outputs highlighted text using the global printer.
func Highlight(text string) {
	GetGlobalPrinter().Highlight(text)
}

// Muted outputs de-emphasized text using the global printer.
func Muted(text string) {
	GetGlobalPrinter().Muted(text)
}

// TerminalSupportsColor reports whether styled output is appropriate for the
// current environment. NO_COLOR always wins; otherwise the decision follows
// the color profile termenv derives from the environment, where an Ascii
// profile means the terminal advertised no color support at all.
func TerminalSupportsColor() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return termenv.EnvColorProfile() != termenv.Ascii
}
