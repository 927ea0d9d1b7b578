// Package assemble implements the Assembler interface.
// It builds one PDF page per image using gofpdf, each page sized to
// the image's native pixel dimensions, so the compressed JPEG data is
// embedded as-is with no re-encoding or resizing.
package assemble

import (
	"bytes"
	"fmt"
	"image"
	"os"
	"path/filepath"

	_ "image/jpeg"
	_ "image/png"

	"github.com/jung-kurt/gofpdf"

	"github.com/basilelt/reader2pdf/core"
)

// pxToPt converts pixel dimensions to PDF points at 96 DPI, the usual
// assumption for images without density metadata.
const pxToPt = 72.0 / 96.0

// PDFAssembler combines page images into a single PDF.
type PDFAssembler struct{}

// New creates a PDFAssembler.
func New() *PDFAssembler {
	return &PDFAssembler{}
}

// Assemble writes a PDF to outPath with one page per entry of pages,
// in slice order. Page images must be JPEG or PNG; anything else fails
// with a *core.AssemblyError naming the page index. The PDF is written
// to a temporary file and renamed into place only on full success, so
// a failure never leaves a partial file at outPath.
func (a *PDFAssembler) Assemble(pages []core.FetchedPage, outPath string) error {
	if len(pages) == 0 {
		return fmt.Errorf("no pages to assemble")
	}

	pdf := gofpdf.New("P", "pt", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetMargins(0, 0, 0)

	for _, page := range pages {
		if err := addPage(pdf, page); err != nil {
			return err
		}
	}

	tmp, err := os.CreateTemp(filepath.Dir(outPath), ".reader2pdf-*.pdf")
	if err != nil {
		return fmt.Errorf("creating temporary output: %w", err)
	}
	if err := pdf.OutputAndClose(tmp); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("writing PDF: %w", err)
	}
	if err := os.Rename(tmp.Name(), outPath); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("moving PDF into place: %w", err)
	}
	return nil
}

// addPage embeds one image as a full PDF page at its native size.
func addPage(pdf *gofpdf.Fpdf, page core.FetchedPage) error {
	data, err := os.ReadFile(page.Path)
	if err != nil {
		return &core.AssemblyError{Index: page.Ref.Index, Err: err}
	}

	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return &core.AssemblyError{Index: page.Ref.Index, Err: fmt.Errorf("unsupported image: %w", err)}
	}

	w := float64(cfg.Width) * pxToPt
	h := float64(cfg.Height) * pxToPt
	pdf.AddPageFormat("P", gofpdf.SizeType{Wd: w, Ht: h})

	opts := gofpdf.ImageOptions{ImageType: format}
	name := fmt.Sprintf("page-%d", page.Ref.Index)
	pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(data))
	pdf.ImageOptions(name, 0, 0, w, h, false, opts, 0, "")

	if pdf.Err() {
		err := pdf.Error()
		pdf.ClearError()
		return &core.AssemblyError{Index: page.Ref.Index, Err: err}
	}
	return nil
}
