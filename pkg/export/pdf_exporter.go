package export

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
)

// PDFExporter renders tables into a basic tabular PDF roadmap report.
type PDFExporter struct{}

// NewPDFExporter constructs a PDF exporter.
func NewPDFExporter() *PDFExporter {
	return &PDFExporter{}
}

// Render creates a one-page-per-overflow PDF document from the tables,
// each with its own header row.
func (e *PDFExporter) Render(tables ...Table) ([]byte, error) {
	if len(tables) == 0 {
		return nil, fmt.Errorf("pdf requires at least one table")
	}
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetMargins(10, 15, 10)
	pdf.AddPage()

	for i, table := range tables {
		if len(table.Columns) == 0 {
			return nil, fmt.Errorf("pdf table %d has no columns", i)
		}
		if i > 0 {
			pdf.Ln(8)
		}
		if table.Title != "" {
			pdf.SetFont("Arial", "B", 14)
			pdf.CellFormat(0, 10, table.Title, "", 1, "L", false, 0, "")
			pdf.Ln(2)
		}

		colWidth := 277.0 / float64(len(table.Columns))
		pdf.SetFont("Arial", "B", 10)
		for _, column := range table.Columns {
			pdf.CellFormat(colWidth, 8, column, "1", 0, "C", false, 0, "")
		}
		pdf.Ln(-1)

		pdf.SetFont("Arial", "", 9)
		for _, row := range table.Rows {
			for j := range table.Columns {
				value := ""
				if j < len(row) {
					value = row[j]
				}
				pdf.CellFormat(colWidth, 7, value, "1", 0, "", false, 0, "")
			}
			pdf.Ln(-1)
		}
	}

	pdf.SetFont("Arial", "I", 8)
	pdf.Ln(6)
	pdf.CellFormat(0, 6, "Generated "+time.Now().Format("2006-01-02"), "", 1, "R", false, 0, "")

	buf := &bytes.Buffer{}
	if err := pdf.Output(buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}
