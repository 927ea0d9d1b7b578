// Package cmd implements the CLI commands for reader2pdf using Cobra.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "reader2pdf",
	Short: "reader2pdf — turn saved web-reader pages into PDFs",
	Long: `reader2pdf converts an HTML page saved from a paginated image-based
publication viewer into a single ordered PDF.

Open the publication in the web reader, page through it with 'next',
save the page as .html, then run:

  reader2pdf convert book.html`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
