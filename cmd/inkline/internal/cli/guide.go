package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"inkline/internal/data/embedded"
	"inkline/internal/output"
	"inkline/internal/services"
)

// addGuideCommand adds the guide command
func (app *App) addGuideCommand(rootCmd *cobra.Command) {
	guideCmd := &cobra.Command{
		Use:   "guide",
		Short: "Show the user guide",
		Long:  `Render the embedded user guide as styled Markdown, matching the active theme.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.initServices(cmd); err != nil {
				return err
			}

			markdownService, err := services.GetGlobalMarkdownService()
			if err != nil {
				return err
			}

			themeService, err := services.GetGlobalThemeService()
			if err != nil {
				return err
			}

			themeType := themeService.GetThemeType()
			if !app.colorEnabled() {
				themeType = "notty"
			}

			rendered, err := markdownService.RenderWithStyle(string(embedded.GuideData), themeType)
			if err != nil {
				return fmt.Errorf("failed to render guide: %w", err)
			}

			output.GetGlobalPrinter().Print(rendered)
			return nil
		},
	}

	rootCmd.AddCommand(guideCmd)
}
