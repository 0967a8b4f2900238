// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package lecture

import (
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// Extractor produces the text content of a lecture file. The PDF
// implementation is the default; tests supply fakes.
type Extractor interface {
	ExtractText(path string) (string, error)
}

// PDFExtractor extracts text from PDF files page by page.
type PDFExtractor struct{}

// ExtractText returns the concatenated text of every page, each page
// followed by a newline. Image-only pages contribute empty text. Any
// low-level parse error is returned to the caller; it is never fatal to
// the batch.
func (PDFExtractor) ExtractText(path string) (string, error) {
	file, reader, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening pdf %s: %w", path, err)
	}
	defer file.Close()

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		// Pages the library cannot decode contribute empty text rather
		// than failing the whole document.
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	}
	return sb.String(), nil
}
