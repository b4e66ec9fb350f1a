package export

import (
	"bytes"
	"fmt"

	"arteideas/internal/modules/reports"

	"github.com/go-pdf/fpdf"
)

// PDFRenderer renders the report envelope into an A4 document.
type PDFRenderer struct{}

func NewPDFRenderer() *PDFRenderer { return &PDFRenderer{} }

func (PDFRenderer) ContentType() string { return "application/pdf" }
func (PDFRenderer) Ext() string         { return "pdf" }

func (PDFRenderer) Render(report *reports.Report) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pageWidth, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	usable := pageWidth - left - right

	// title
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetTextColor(54, 96, 146)
	pdf.CellFormat(usable, 10, tr(report.Title), "", 1, "C", false, 0, "")
	pdf.Ln(2)

	// period and generation lines
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(0, 0, 0)
	pdf.CellFormat(usable, 6, tr(fmt.Sprintf("Período: %s - %s",
		report.PeriodStart.Format("02/01/2006"), report.PeriodEnd.Format("02/01/2006"))),
		"", 1, "C", false, 0, "")
	pdf.CellFormat(usable, 6, tr(fmt.Sprintf("Fecha de Generación: %s",
		report.GeneratedAt.Format("02/01/2006 15:04:05"))),
		"", 1, "C", false, 0, "")
	pdf.Ln(4)

	// metrics grid, two label/value pairs per line
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetTextColor(54, 96, 146)
	pdf.CellFormat(usable, 8, tr("MÉTRICAS DE RESUMEN"), "", 1, "L", false, 0, "")
	pdf.SetTextColor(0, 0, 0)

	colWidth := usable / float64(metricColumns)
	col := 0
	for _, metric := range report.Metrics {
		if col >= metricColumns {
			col = 0
			pdf.Ln(-1)
		}
		pdf.SetFont("Helvetica", "B", 9)
		pdf.CellFormat(colWidth, 7, tr(formatLabel(metric.Key)), "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 9)
		pdf.CellFormat(colWidth, 7, tr(cellString(formatMetricValue(metric.Value))), "", 0, "L", false, 0, "")
		col += 2
	}
	pdf.Ln(-1)

	if len(report.Detail) > 0 {
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "B", 12)
		pdf.SetTextColor(54, 96, 146)
		pdf.CellFormat(usable, 8, tr("DETALLE"), "", 1, "L", false, 0, "")

		headers := report.Detail[0].Columns()
		cellWidth := usable / float64(len(headers))

		pdf.SetFont("Helvetica", "B", 8)
		pdf.SetFillColor(54, 96, 146)
		pdf.SetTextColor(255, 255, 255)
		for _, header := range headers {
			pdf.CellFormat(cellWidth, 7, tr(formatLabel(header)), "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)

		pdf.SetFont("Helvetica", "", 8)
		pdf.SetTextColor(0, 0, 0)
		for i, row := range report.Detail {
			// alternating shading keeps long tables readable
			shaded := i%2 == 1
			pdf.SetFillColor(240, 240, 240)
			for _, header := range headers {
				pdf.CellFormat(cellWidth, 6, tr(cellString(formatCellValue(row.Get(header)))),
					"1", 0, "C", shaded, 0, "")
			}
			pdf.Ln(-1)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
