// Package cli provides command-line interface setup for the inkline tool.
package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"inkline/internal/logger"
	"inkline/internal/output"
	"inkline/internal/services"
)

// App represents the inkline CLI application. Flag values live on the App so
// tests can build isolated command trees without touching package state.
type App struct {
	LogLevel  string
	LogFile   string
	TestMode  bool
	ThemeName string
	ColorMode string
}

// NewApp creates a new inkline CLI application.
func NewApp() *App {
	return &App{}
}

// CreateRootCommand creates and configures the root command
func (app *App) CreateRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "inkline",
		Short: "Style terminal text with ANSI escape sequences",
		Long: `inkline renders styled terminal text by translating declarative style
descriptions (colors, text effects) into ANSI SGR escape sequences. Styles
come either from named theme elements or directly from flags, and partial
styles layer deterministically so themes can extend one another.`,
		SilenceUsage: true,
	}

	// Add global flags
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&app.LogLevel, "log-level", "", "Set log level (debug|info|warn|error) [default: info]")
	flags.StringVar(&app.LogFile, "log-file", "", "Write logs to file instead of stderr")
	flags.BoolVar(&app.TestMode, "test-mode", false, "Run in deterministic test mode")
	flags.StringVar(&app.ThemeName, "theme", "", "Theme for semantic styling (default|dark|light|plain|mono)")
	flags.StringVar(&app.ColorMode, "color", "auto", "Color output (auto|always|never)")

	// Bind flags to viper so INKLINE_* environment variables fill in
	// values the flags leave empty
	for _, name := range []string{"log-level", "log-file", "test-mode", "theme", "color"} {
		if err := viper.BindPFlag(name, flags.Lookup(name)); err != nil {
			fmt.Fprintf(os.Stderr, "Error binding %s flag: %v\n", name, err)
			os.Exit(1)
		}
	}

	// Add all subcommands
	app.addRenderCommand(rootCmd)
	app.addSwatchCommand(rootCmd)
	app.addThemesCommand(rootCmd)
	app.addGuideCommand(rootCmd)
	app.addVersionCommand(rootCmd)

	// Configure logger before any command execution
	cobra.OnInitialize(app.initConfig)

	return rootCmd
}

// Execute runs the root command and reports failures on stderr.
func (app *App) Execute() {
	if err := app.CreateRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

// initConfig loads .env, wires the environment into viper, and configures
// the logger. It runs once before any command.
func (app *App) initConfig() {
	// Missing .env files are not an error
	_ = godotenv.Load()

	viper.SetEnvPrefix("INKLINE")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := logger.Configure(viper.GetString("log-level"), viper.GetString("log-file"), viper.GetBool("test-mode")); err != nil {
		fmt.Fprintf(os.Stderr, "Error configuring logger: %v\n", err)
		os.Exit(1)
	}
}

// initServices initializes registered services and applies the theme and
// color configuration to the global printer. Commands call it first thing
// and print through output.GetGlobalPrinter afterwards.
func (app *App) initServices(cmd *cobra.Command) error {
	if err := services.GetGlobalRegistry().InitializeAll(); err != nil {
		return fmt.Errorf("failed to initialize services: %w", err)
	}

	themeService, err := services.GetGlobalThemeService()
	if err != nil {
		return err
	}
	if theme := viper.GetString("theme"); theme != "" {
		themeService.SetActiveTheme(theme)
	}

	options := []output.Option{
		output.WithWriter(cmd.OutOrStdout()),
		output.WithStyles(themeService),
	}
	switch viper.GetString("color") {
	case "always":
		options = append(options, output.Styled())
	case "never":
		options = append(options, output.PlainText())
	default:
		options = append(options, output.WithMode(output.ModeAuto))
	}
	if viper.GetBool("test-mode") {
		options = append(options, output.TestMode())
	}
	output.ConfigureGlobal(options...)

	return nil
}

// colorEnabled reports whether escape sequences should reach the output,
// honoring the --color flag before terminal detection.
func (app *App) colorEnabled() bool {
	switch viper.GetString("color") {
	case "always":
		return true
	case "never":
		return false
	default:
		return output.TerminalSupportsColor()
	}
}
