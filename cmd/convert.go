// Package cmd — convert command.
// Runs the full pipeline for one saved HTML file, or for every .html
// file in a folder when the argument is a directory.
package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/basilelt/reader2pdf/core/assemble"
	"github.com/basilelt/reader2pdf/core/extract"
	"github.com/basilelt/reader2pdf/core/fetch"
	"github.com/basilelt/reader2pdf/core/pipeline"
	"github.com/basilelt/reader2pdf/core/store"
)

var (
	flagOut         string
	flagPagesDir    string
	flagCleanPages  bool
	flagConcurrency int
	flagRateLimit   float64
	flagBestEffort  bool
)

var convertCmd = &cobra.Command{
	Use:   "convert <file.html | folder>",
	Short: "Convert saved reader HTML into a PDF",
	Long: `Convert extracts the page-image URLs from a saved reader HTML file,
downloads every page, and assembles them into one PDF in reading order.

Given a folder, every .html file inside is converted, one PDF each.

Examples:
  reader2pdf convert book.html
  reader2pdf convert book.html --out ~/books/
  reader2pdf convert saved-pages/ --clean-pages
  reader2pdf convert book.html --best-effort --concurrency 8`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().StringVar(&flagOut, "out", "", "Output PDF path, or a directory for derived names (default: next to the input)")
	convertCmd.Flags().StringVar(&flagPagesDir, "pages-dir", "", "Working directory for downloaded pages (default: derived from the input name)")
	convertCmd.Flags().BoolVar(&flagCleanPages, "clean-pages", false, "Remove downloaded page images after a successful conversion")
	convertCmd.Flags().IntVar(&flagConcurrency, "concurrency", 4, "Number of concurrent page downloads")
	convertCmd.Flags().Float64Var(&flagRateLimit, "rate-limit", 0, "Maximum page requests per second (0 = unlimited)")
	convertCmd.Flags().BoolVar(&flagBestEffort, "best-effort", false, "Assemble the pages that downloaded instead of failing on the first fetch error")
}

func runConvert(cmd *cobra.Command, args []string) error {
	input := args[0]

	info, err := os.Stat(input)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if !info.IsDir() {
		return convertOne(ctx, input)
	}

	files, err := htmlFiles(input)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no .html files in %s", input)
	}

	var errCount int
	for i, file := range files {
		fmt.Fprintf(os.Stdout, "[%d/%d] Converting %s\n", i+1, len(files), file)
		if err := convertOne(ctx, file); err != nil {
			color.Red("  ✗ %v", err)
			errCount++
		}
	}
	if errCount > 0 {
		return fmt.Errorf("%d/%d conversions failed", errCount, len(files))
	}
	return nil
}

// convertOne runs the pipeline for a single HTML file.
func convertOne(ctx context.Context, htmlPath string) error {
	outPath := store.OutputPath(htmlPath, flagOut)

	st, err := store.New(store.WorkDir(htmlPath, flagPagesDir))
	if err != nil {
		return err
	}

	var (
		barOnce sync.Once
		bar     *progressbar.ProgressBar
	)
	p := pipeline.New(
		extract.New(),
		fetch.NewWithClient(nil, flagRateLimit),
		st,
		assemble.New(),
		pipeline.Options{
			Concurrency: flagConcurrency,
			BestEffort:  flagBestEffort,
			OnProgress: func(done, total int) {
				barOnce.Do(func() {
					bar = progressbar.NewOptions(total,
						progressbar.OptionSetDescription("Downloading pages"),
						progressbar.OptionShowCount(),
						progressbar.OptionOnCompletion(func() {
							fmt.Fprintln(os.Stdout)
						}),
					)
				})
				bar.Add(1)
			},
		},
	)

	if err := p.Run(ctx, htmlPath, outPath); err != nil {
		return err
	}

	if flagCleanPages {
		if err := st.Clean(); err != nil {
			fmt.Fprintf(os.Stderr, "warning: cleaning pages: %v\n", err)
		}
	}

	color.Green("✓ Written: %s", outPath)
	return nil
}

// htmlFiles lists the .html files directly inside dir, sorted by name.
func htmlFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading folder: %w", err)
	}
	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(entry.Name()), ".html") {
			files = append(files, filepath.Join(dir, entry.Name()))
		}
	}
	sort.Strings(files)
	return files, nil
}
