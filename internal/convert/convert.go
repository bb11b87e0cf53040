// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert turns the office-format documentation file into a PDF
// before packaging. The conversion engine itself is an external office
// suite; this package only detects and drives it.
package convert

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/redhat-storage/rhs-pack/internal/extrun"
)

// Converter turns one office document into a PDF file and returns the PDF
// path.
type Converter interface {
	// Name returns the converter binary name.
	Name() string

	// Convert renders docPath as PDF into outDir.
	Convert(docPath, outDir string) (string, error)
}

// officeConverter drives a headless office binary. soffice and libreoffice
// share the same invocation; they differ only in binary name.
type officeConverter struct {
	bin  string
	exec extrun.Executor
}

func (c *officeConverter) Name() string { return c.bin }

func (c *officeConverter) Convert(docPath, outDir string) (string, error) {
	if err := c.exec.Run("", c.bin, "--headless", "--convert-to", "pdf", "--outdir", outDir, docPath); err != nil {
		return "", fmt.Errorf("converting %s with %s: %w", docPath, c.bin, err)
	}

	base := strings.TrimSuffix(filepath.Base(docPath), filepath.Ext(docPath))
	pdfPath := filepath.Join(outDir, base+".pdf")
	if _, err := os.Stat(pdfPath); err != nil {
		return "", fmt.Errorf("%s reported success but %s was not produced", c.bin, pdfPath)
	}
	return pdfPath, nil
}

// DetectConverter tries soffice first, falling back to libreoffice. Returns
// an error when neither binary is on PATH.
func DetectConverter(exec extrun.Executor) (Converter, error) {
	for _, bin := range []string{"soffice", "libreoffice"} {
		if _, err := exec.LookPath(bin); err == nil {
			return &officeConverter{bin: bin, exec: exec}, nil
		}
	}
	return nil, fmt.Errorf("no document converter available: neither soffice nor libreoffice found on PATH")
}

// ConvertDoc converts docPath into outDir, skipping the conversion when the
// PDF already exists. An empty outDir writes the PDF next to the document.
func ConvertDoc(c Converter, docPath, outDir string, w io.Writer) (string, error) {
	if _, err := os.Stat(docPath); err != nil {
		return "", fmt.Errorf("documentation file %s: %w", docPath, err)
	}
	if outDir == "" {
		outDir = filepath.Dir(docPath)
	}

	base := strings.TrimSuffix(filepath.Base(docPath), filepath.Ext(docPath))
	pdfPath := filepath.Join(outDir, base+".pdf")
	if _, err := os.Stat(pdfPath); err == nil {
		fmt.Fprintf(w, "skipped: %s (already exists)\n", pdfPath)
		return pdfPath, nil
	}

	out, err := c.Convert(docPath, outDir)
	if err != nil {
		return "", err
	}
	fmt.Fprintf(w, "converted: %s -> %s\n", docPath, out)
	return out, nil
}
