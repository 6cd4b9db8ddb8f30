package cli

import (
	"github.com/spf13/cobra"

	"inkline/internal/output"
	"inkline/internal/version"
)

// addVersionCommand adds the version command
func (app *App) addVersionCommand(rootCmd *cobra.Command) {
	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  `Display the version of inkline with build information.`,
		Run: func(cmd *cobra.Command, _ []string) {
			// Version output needs no theme, so the command skips service
			// initialization and prints through a local plain printer.
			printer := output.NewPrinter(output.WithWriter(cmd.OutOrStdout()))

			detailed, _ := cmd.Flags().GetBool("detailed")
			if detailed {
				printer.Println(version.GetDetailedVersion())
			} else {
				printer.Println(version.GetFormattedVersion())
			}
		},
	}

	versionCmd.Flags().Bool("detailed", false, "Show detailed version information")
	rootCmd.AddCommand(versionCmd)
}
