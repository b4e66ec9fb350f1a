package export

import (
	"fmt"

	"arteideas/internal/modules/reports"

	"github.com/xuri/excelize/v2"
)

const (
	sheetName   = "Reporte"
	headerColor = "366092"
	xlsxType    = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

	// metrics are laid out two label/value pairs per row
	metricColumns = 4

	detailColWidth = 20
)

// ExcelRenderer renders the report envelope into a styled workbook.
type ExcelRenderer struct{}

func NewExcelRenderer() *ExcelRenderer { return &ExcelRenderer{} }

func (ExcelRenderer) ContentType() string { return xlsxType }
func (ExcelRenderer) Ext() string         { return "xlsx" }

func (ExcelRenderer) Render(report *reports.Report) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, err
	}

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 14},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return nil, err
	}
	boldStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 12, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{headerColor}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    thinBorder(),
	})
	if err != nil {
		return nil, err
	}
	cellStyle, err := f.NewStyle(&excelize.Style{Border: thinBorder()})
	if err != nil {
		return nil, err
	}

	// title banner
	row := 1
	if err := f.MergeCell(sheetName, "A1", "D1"); err != nil {
		return nil, err
	}
	f.SetCellValue(sheetName, "A1", report.Title)
	f.SetCellStyle(sheetName, "A1", "D1", titleStyle)

	// period and generation line
	row += 2
	f.SetCellValue(sheetName, cell(1, row), "Período:")
	f.SetCellStyle(sheetName, cell(1, row), cell(1, row), boldStyle)
	f.SetCellValue(sheetName, cell(2, row), fmt.Sprintf("%s - %s",
		report.PeriodStart.Format("02/01/2006"), report.PeriodEnd.Format("02/01/2006")))
	f.SetCellValue(sheetName, cell(3, row), "Fecha de Generación:")
	f.SetCellStyle(sheetName, cell(3, row), cell(3, row), boldStyle)
	f.SetCellValue(sheetName, cell(4, row), report.GeneratedAt.Format("02/01/2006 15:04:05"))

	// metrics block
	row += 2
	f.SetCellValue(sheetName, cell(1, row), "MÉTRICAS DE RESUMEN")
	f.SetCellStyle(sheetName, cell(1, row), cell(1, row), headerStyle)

	row++
	col := 0
	for _, metric := range report.Metrics {
		if col >= metricColumns {
			col = 0
			row++
		}
		f.SetCellValue(sheetName, cell(col+1, row), formatLabel(metric.Key))
		f.SetCellStyle(sheetName, cell(col+1, row), cell(col+1, row), boldStyle)
		f.SetCellValue(sheetName, cell(col+2, row), formatMetricValue(metric.Value))
		col += 2
	}

	// detail table; omitted entirely when there are no rows
	if len(report.Detail) > 0 {
		row += 2
		f.SetCellValue(sheetName, cell(1, row), "DETALLE")
		f.SetCellStyle(sheetName, cell(1, row), cell(1, row), headerStyle)

		row++
		headers := report.Detail[0].Columns()
		for i, header := range headers {
			f.SetCellValue(sheetName, cell(i+1, row), formatLabel(header))
			f.SetCellStyle(sheetName, cell(i+1, row), cell(i+1, row), headerStyle)
		}

		for _, detailRow := range report.Detail {
			row++
			for i, header := range headers {
				f.SetCellValue(sheetName, cell(i+1, row), formatCellValue(detailRow.Get(header)))
				f.SetCellStyle(sheetName, cell(i+1, row), cell(i+1, row), cellStyle)
			}
		}

		first, _ := excelize.ColumnNumberToName(1)
		last, _ := excelize.ColumnNumberToName(len(headers))
		f.SetColWidth(sheetName, first, last, detailColWidth)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func cell(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}

func thinBorder() []excelize.Border {
	return []excelize.Border{
		{Type: "left", Style: 1},
		{Type: "right", Style: 1},
		{Type: "top", Style: 1},
		{Type: "bottom", Style: 1},
	}
}
