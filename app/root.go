// Package app implements the main application commands.
package app

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "festa-admin",
	Short: "festa-admin is the backend for a family-event promotional site",
	Long: `festa-admin serves the JSON API behind a family-event promotional site:
site text settings, a photo gallery, guest RSVP submissions and image
uploads delegated to an external media host.`,
	Args: cobra.OnlyValidArgs,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
