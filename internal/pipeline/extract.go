package pipeline

import (
	"bytes"
	"fmt"
	"os"

	pdf "github.com/ledongthuc/pdf"

	"github.com/GuilhermeEustaquio/ExcelAtas/internal"
)

// ExtractPages produces the raw page-text sequence of a PDF, in page
// order. A page whose text cannot be extracted yields an empty string;
// only failure to open the document itself is an error.
func ExtractPages(content []byte) ([]string, error) {
	r, err := pdf.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return nil, fmt.Errorf("cannot read PDF: %w", err)
	}

	pages := make([]string, 0, r.NumPage())
	for i := 1; i <= r.NumPage(); i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			pages = append(pages, "")
			continue
		}
		text, err := p.GetPlainText(nil)
		if err != nil {
			pages = append(pages, "")
			continue
		}
		pages = append(pages, text)
	}
	return pages, nil
}

// ExtractPagesFromFile reads a PDF from disk and returns its page texts.
func ExtractPagesFromFile(path string) ([]string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ExtractPages(content)
}

// ProcessPages runs the whole extraction pipeline over a document's raw
// pages: normalize, accumulate ata records across boundary pages, segment
// into item blocks, extract fields, assemble rows. Pure function of its
// input; document order is preserved.
func ProcessPages(rawPages []string) []internal.ReportRow {
	acc := NewAccumulator()
	rows := []internal.ReportRow{}
	for _, raw := range rawPages {
		rows = append(rows, acc.Feed(NormalizePageText(raw))...)
	}
	return append(rows, acc.Finish()...)
}

// ProcessPDF extracts all qualifying item rows from a PDF file. The file
// may contain several atas.
func ProcessPDF(path string) ([]internal.ReportRow, error) {
	pages, err := ExtractPagesFromFile(path)
	if err != nil {
		return nil, err
	}
	return ProcessPages(pages), nil
}
