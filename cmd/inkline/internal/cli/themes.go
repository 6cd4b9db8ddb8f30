package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"inkline/internal/output"
	"inkline/internal/services"
)

// addThemesCommand adds the themes command
func (app *App) addThemesCommand(rootCmd *cobra.Command) {
	themesCmd := &cobra.Command{
		Use:   "themes",
		Short: "List the embedded themes",
		Long:  `List every embedded theme with its description and inheritance.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.initServices(cmd); err != nil {
				return err
			}

			themeService, err := services.GetGlobalThemeService()
			if err != nil {
				return err
			}

			printer := output.GetGlobalPrinter()
			active := themeService.ActiveTheme().Name

			for _, name := range themeService.GetAvailableThemes() {
				theme, _ := themeService.GetTheme(name)

				marker := " "
				if name == active {
					marker = "*"
				}

				line := fmt.Sprintf("%s %-8s %s", marker, name, theme.Description)
				if theme.Extends != "" {
					line += fmt.Sprintf(" (extends %s)", theme.Extends)
				}
				printer.Println(line)
			}

			return nil
		},
	}

	rootCmd.AddCommand(themesCmd)
}
