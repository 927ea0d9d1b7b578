// Package cmd — inspect command.
// Runs only the extractor and prints the ordered page references, for
// checking what the parser sees in a saved file before converting it.
// The reader's markup shape is the one assumption this tool makes
// about its input, and this is the place to debug it.
package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/basilelt/reader2pdf/core/extract"
)

var flagInspectJSON bool

var inspectCmd = &cobra.Command{
	Use:   "inspect <file.html>",
	Short: "List the page-image URLs found in a saved reader HTML file",
	Args:  cobra.ExactArgs(1),
	RunE:  runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)

	inspectCmd.Flags().BoolVar(&flagInspectJSON, "json", false, "Print references as JSON")
}

func runInspect(cmd *cobra.Command, args []string) error {
	html, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	refs, err := extract.New().Extract(string(html))
	if err != nil {
		return err
	}

	if flagInspectJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(refs)
	}

	for _, ref := range refs {
		fmt.Fprintf(os.Stdout, "%3d  %s\n", ref.Index, ref.URL)
	}
	fmt.Fprintf(os.Stdout, "%d page images\n", len(refs))
	return nil
}
