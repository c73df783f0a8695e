// Package pdf renders exported markdown into PDF files.
package pdf

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mandolyte/mdtopdf"
)

type Options struct {
	// Landscape switches the page orientation from portrait.
	Landscape bool
	// PaperSize is one of the gofpdf sizes such as A4 or Letter. Empty means A4.
	PaperSize string
	Dark      bool
}

// ConvertMarkdownToPDF writes <name>.pdf next to the <name>.md file and returns its absolute path.
func ConvertMarkdownToPDF(markdownPath string, options Options) (string, error) {
	if filepath.Ext(markdownPath) != ".md" {
		return "", fmt.Errorf("input file must have .md extension: %s", markdownPath)
	}

	content, err := os.ReadFile(markdownPath)
	if err != nil {
		return "", fmt.Errorf("os.ReadFile(%s) > %w", markdownPath, err)
	}

	orientation := "P"
	if options.Landscape {
		orientation = "L"
	}
	paperSize := options.PaperSize
	if paperSize == "" {
		paperSize = "A4"
	}
	theme := mdtopdf.LIGHT
	if options.Dark {
		theme = mdtopdf.DARK
	}

	pdfPath := strings.TrimSuffix(markdownPath, ".md") + ".pdf"
	renderer := mdtopdf.NewPdfRenderer(orientation, paperSize, pdfPath, "", nil, theme)
	if err := renderer.Process(content); err != nil {
		return "", fmt.Errorf("renderer.Process() > %w", err)
	}

	absPath, err := filepath.Abs(pdfPath)
	if err != nil {
		return pdfPath, nil
	}
	return absPath, nil
}
