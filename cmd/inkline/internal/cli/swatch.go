package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/spf13/cobra"

	"inkline/internal/output"
	"inkline/internal/services"
	"inkline/pkg/ink"
	"inkline/pkg/inktypes"
)

// swatchColumnWidth is the display width of one cell in the palette table.
const swatchColumnWidth = 18

// addSwatchCommand adds the swatch command
func (app *App) addSwatchCommand(rootCmd *cobra.Command) {
	swatchCmd := &cobra.Command{
		Use:   "swatch",
		Short: "Preview every theme and the named color palette",
		Long: `Display each embedded theme's semantic elements in their resolved styles,
followed by the fixed named-color palette. Cell widths are measured on the
rendered text, so columns stay aligned regardless of the escape sequences
inside them.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.initServices(cmd); err != nil {
				return err
			}

			themeService, err := services.GetGlobalThemeService()
			if err != nil {
				return err
			}

			printer := output.GetGlobalPrinter()
			styled := app.colorEnabled()

			for _, name := range themeService.GetAvailableThemes() {
				theme, _ := themeService.GetTheme(name)
				printThemeSwatch(printer, theme, styled)
			}

			printPalette(printer, styled)
			return nil
		},
	}

	rootCmd.AddCommand(swatchCmd)
}

// printThemeSwatch writes one theme's elements, one per line. The title goes
// out under heading semantics so the active theme styles it; the samples are
// pre-rendered in the swatched theme's own styles.
func printThemeSwatch(printer *output.Printer, theme *services.Theme, styled bool) {
	title := theme.Name
	if theme.Extends != "" {
		title += " (extends " + theme.Extends + ")"
	}
	printer.Heading("Theme: " + title)

	for _, element := range inktypes.Elements() {
		sample := "The quick brown fox"
		if styled {
			sample = theme.Style(element).Render(sample)
		}
		printer.Println(fmt.Sprintf("  %-11s %s", element, sample))
	}
	printer.Println("")
}

// paletteEntries lists the named colors in display order, standard palette
// first, bright variants second.
var paletteEntries = []struct {
	name  string
	color ink.Color
}{
	{"black", ink.Black}, {"red", ink.Red}, {"green", ink.Green}, {"yellow", ink.Yellow},
	{"blue", ink.Blue}, {"magenta", ink.Magenta}, {"cyan", ink.Cyan}, {"white", ink.White},
	{"bright-black", ink.BrightBlack}, {"bright-red", ink.BrightRed},
	{"bright-green", ink.BrightGreen}, {"bright-yellow", ink.BrightYellow},
	{"bright-blue", ink.BrightBlue}, {"bright-magenta", ink.BrightMagenta},
	{"bright-cyan", ink.BrightCyan}, {"bright-white", ink.BrightWhite},
}

// printPalette writes the named-color table in rows of four columns. Cells
// are padded by rendered width: ansi.StringWidth ignores the SGR bytes, so
// styled and plain cells line up identically.
func printPalette(printer *output.Printer, styled bool) {
	printer.Heading("Palette:")

	for i, entry := range paletteEntries {
		cell := entry.name
		if styled {
			// A lone foreground color cannot fail validation
			style, err := ink.New(ink.Attributes{Foreground: entry.color})
			if err == nil {
				cell = style.Render(cell)
			}
		}

		pad := swatchColumnWidth - ansi.StringWidth(cell)
		if pad < 1 {
			pad = 1
		}
		printer.Printf("  %s%s", cell, strings.Repeat(" ", pad))

		if (i+1)%4 == 0 {
			printer.Print("\n")
		}
	}
}
