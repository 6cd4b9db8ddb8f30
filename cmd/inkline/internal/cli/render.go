package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"inkline/internal/output"
	"inkline/internal/services"
	"inkline/pkg/ink"
)

// renderFlags collects the direct style request of the render command. Every
// effect is a string flag so the three-way distinction between "no opinion",
// "off", and "reset" survives flag parsing.
type renderFlags struct {
	element    string
	foreground string
	background string
	bold       string
	faint      string
	italic     string
	underline  string
	overline   string
	blink      string
	inverse    string
	conceal    string
}

// addRenderCommand adds the render command
func (app *App) addRenderCommand(rootCmd *cobra.Command) {
	flags := &renderFlags{}

	renderCmd := &cobra.Command{
		Use:   "render [text]",
		Short: "Render styled text to stdout",
		Long: `Render text with a style built from flags, a theme element, or both.
With --element the element's theme style is the base and flag styles layer on
top, so "--element error --bold off" renders the error style without bold.
Text is read from the argument or, when absent, from standard input.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.initServices(cmd); err != nil {
				return err
			}

			style, err := flags.style()
			if err != nil {
				return err
			}

			text, err := readText(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}

			if app.colorEnabled() {
				text = style.Render(text)
			}
			output.GetGlobalPrinter().Println(text)
			return nil
		},
	}

	renderCmd.Flags().StringVar(&flags.element, "element", "", "Theme element to use as the base style (heading|label|success|...)")
	renderCmd.Flags().StringVar(&flags.foreground, "fg", "", "Foreground color (name or hex)")
	renderCmd.Flags().StringVar(&flags.background, "bg", "", "Background color (name or hex)")
	renderCmd.Flags().StringVar(&flags.bold, "bold", "", "Bold (on|off|reset)")
	renderCmd.Flags().StringVar(&flags.faint, "faint", "", "Faint (on|off|reset)")
	renderCmd.Flags().StringVar(&flags.italic, "italic", "", "Italic (on|off|reset)")
	renderCmd.Flags().StringVar(&flags.underline, "underline", "", "Underline (on|off|double|reset)")
	renderCmd.Flags().StringVar(&flags.overline, "overline", "", "Overline (on|off|reset)")
	renderCmd.Flags().StringVar(&flags.blink, "blink", "", "Blink (on|off|reset)")
	renderCmd.Flags().StringVar(&flags.inverse, "inverse", "", "Inverse video (on|off|reset)")
	renderCmd.Flags().StringVar(&flags.conceal, "conceal", "", "Conceal (on|off|reset)")

	rootCmd.AddCommand(renderCmd)
}

// style resolves the flag set into a single ink style. When an element is
// named, the flag style is layered over the element's theme style.
func (f *renderFlags) style() (ink.Style, error) {
	var attrs ink.Attributes
	var err error

	if f.foreground != "" {
		if attrs.Foreground, err = ink.ParseColor(f.foreground); err != nil {
			return ink.Style{}, fmt.Errorf("flag --fg: %w", err)
		}
	}
	if f.background != "" {
		if attrs.Background, err = ink.ParseColor(f.background); err != nil {
			return ink.Style{}, fmt.Errorf("flag --bg: %w", err)
		}
	}

	effects := []struct {
		name        string
		raw         string
		dst         *ink.Setting
		allowDouble bool
	}{
		{"bold", f.bold, &attrs.Bold, false},
		{"faint", f.faint, &attrs.Faint, false},
		{"italic", f.italic, &attrs.Italic, false},
		{"underline", f.underline, &attrs.Underline, true},
		{"overline", f.overline, &attrs.Overline, false},
		{"blink", f.blink, &attrs.Blink, false},
		{"inverse", f.inverse, &attrs.Inverse, false},
		{"conceal", f.conceal, &attrs.Conceal, false},
	}
	for _, effect := range effects {
		setting, err := parseSettingFlag(effect.name, effect.raw, effect.allowDouble)
		if err != nil {
			return ink.Style{}, err
		}
		*effect.dst = setting
	}

	style, err := ink.New(attrs)
	if err != nil {
		return ink.Style{}, err
	}

	if f.element == "" {
		return style, nil
	}

	themeService, err := services.GetGlobalThemeService()
	if err != nil {
		return ink.Style{}, err
	}
	return themeService.Style(f.element).Merge(style), nil
}

// parseSettingFlag maps one effect flag value onto an ink.Setting. An empty
// value carries no opinion.
func parseSettingFlag(name, value string, allowDouble bool) (ink.Setting, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "":
		return ink.Unset, nil
	case "on", "true":
		return ink.On, nil
	case "off", "false":
		return ink.Off, nil
	case "reset":
		return ink.Reset, nil
	case "double":
		if allowDouble {
			return ink.Double, nil
		}
		return ink.Unset, fmt.Errorf("flag --%s: double is only valid for underline", name)
	default:
		accepted := "on, off, reset"
		if allowDouble {
			accepted = "on, off, double, reset"
		}
		return ink.Unset, fmt.Errorf("flag --%s: invalid value %q (accepts %s)", name, value, accepted)
	}
}

// readText returns the positional argument or, without one, standard input
// with its trailing newline removed.
func readText(stdin io.Reader, args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}

	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return strings.TrimSuffix(string(data), "\n"), nil
}
