// Package cmd implements the folio command line interface.
package cmd

import (
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "folio",
	Short: "Portfolio site engine with live content overrides",
	Long: `Folio binds portfolio content from JSON data files into rendered pages,
layering persisted overrides over the bundled values. Serve the site
locally with in-place editing and an admin panel, or bake the current
state into a static site.`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", ".folio.yml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
