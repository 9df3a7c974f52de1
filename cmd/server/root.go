package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "movienest",
	Short: "MovieNest - a server-rendered movie catalog",
	Long: `MovieNest serves a fixed movie catalog as HTML pages (and JSON on request).
Run "movienest serve" to start the web server or "movienest catalog" to print
the catalog.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newCatalogCmd())
}
