// Package app implements the main application commands.
package app

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "brightpage",
	Short: "BrightPage is a lightweight CMS for marketing websites",
	Long: `BrightPage is a lightweight content management system for marketing
websites. It serves the public content API for the landing page and an
authenticated admin API for managing content sections, media uploads,
contact submissions and site settings.`,
	Args: cobra.OnlyValidArgs,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
