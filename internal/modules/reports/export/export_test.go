package export

import (
	"bytes"
	"testing"
	"time"

	"arteideas/internal/modules/reports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func sampleReport(withDetail bool) *reports.Report {
	var metrics reports.Metrics
	metrics.Add("total_ventas", 150.0)
	metrics.Add("total_pedidos", 2)
	metrics.Add("promedio_venta", 75.5)
	metrics.Add("tasa_completitud", 50.0)
	metrics.Add("total_pagado", 100.0)

	var detail reports.Detail
	if withDetail {
		var row reports.Row
		row.Set("numero_pedido", "PED-0001")
		row.Set("cliente", "María García")
		row.Set("total", 150.0)
		row.Set("alerta_stock", true)
		row.Set("fecha_finalizacion", nil)
		detail = append(detail, row)
	}

	return &reports.Report{
		Category:    reports.CategoryVentas,
		Title:       "Reporte de Ventas",
		PeriodStart: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		PeriodEnd:   time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC),
		Metrics:     metrics,
		Detail:      detail,
		GeneratedAt: time.Date(2026, 2, 1, 9, 30, 0, 0, time.UTC),
	}
}

func TestFormatLabel(t *testing.T) {
	assert.Equal(t, "Total Ventas", formatLabel("total_ventas"))
	assert.Equal(t, "Igv Recaudado", formatLabel("igv_recaudado"))
	assert.Equal(t, "Id", formatLabel("id"))
}

func TestFormatMetricValue(t *testing.T) {
	assert.Equal(t, int64(150), formatMetricValue(150.0))
	assert.Equal(t, 75.5, formatMetricValue(75.5))
	assert.Equal(t, 2, formatMetricValue(2))
}

func TestFormatCellValue(t *testing.T) {
	assert.Equal(t, "", formatCellValue(nil))
	assert.Equal(t, "Sí", formatCellValue(true))
	assert.Equal(t, "No", formatCellValue(false))
	assert.Equal(t, 150.0, formatCellValue(150.0))
	assert.Equal(t, "PED-0001", formatCellValue("PED-0001"))
}

func TestExcelRendererLayout(t *testing.T) {
	data, err := NewExcelRenderer().Render(sampleReport(true))
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	title, err := f.GetCellValue(sheetName, "A1")
	require.NoError(t, err)
	assert.Equal(t, "Reporte de Ventas", title)

	period, err := f.GetCellValue(sheetName, "B3")
	require.NoError(t, err)
	assert.Equal(t, "01/01/2026 - 31/01/2026", period)

	header, err := f.GetCellValue(sheetName, "A5")
	require.NoError(t, err)
	assert.Equal(t, "MÉTRICAS DE RESUMEN", header)

	// first metric pair on row 6: formatted label, integral float as int
	label, err := f.GetCellValue(sheetName, "A6")
	require.NoError(t, err)
	assert.Equal(t, "Total Ventas", label)
	value, err := f.GetCellValue(sheetName, "B6")
	require.NoError(t, err)
	assert.Equal(t, "150", value)

	// five metrics at two pairs per row span rows 6-8
	thirdRowLabel, err := f.GetCellValue(sheetName, "A8")
	require.NoError(t, err)
	assert.Equal(t, "Total Pagado", thirdRowLabel)

	rows, err := f.GetRows(sheetName)
	require.NoError(t, err)
	flat := flatten(rows)
	assert.Contains(t, flat, "DETALLE")
	assert.Contains(t, flat, "Numero Pedido")
	assert.Contains(t, flat, "PED-0001")
	assert.Contains(t, flat, "Sí")
}

func TestExcelRendererOmitsEmptyDetail(t *testing.T) {
	data, err := NewExcelRenderer().Render(sampleReport(false))
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(sheetName)
	require.NoError(t, err)
	assert.NotContains(t, flatten(rows), "DETALLE")
}

func TestPDFRenderer(t *testing.T) {
	data, err := NewPDFRenderer().Render(sampleReport(true))
	require.NoError(t, err)

	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
	assert.Greater(t, len(data), 1000)
}

func TestExportFileNaming(t *testing.T) {
	svc := NewService()
	svc.Register(reports.FormatExcel, NewExcelRenderer())
	svc.Register(reports.FormatPDF, NewPDFRenderer())
	svc.now = func() time.Time { return time.Date(2026, 2, 1, 9, 30, 45, 0, time.UTC) }

	file, err := svc.Export(reports.FormatExcel, sampleReport(true))
	require.NoError(t, err)
	assert.Equal(t, "Reporte_Ventas_20260201_093045.xlsx", file.FileName)
	assert.Equal(t, xlsxType, file.ContentType)

	file, err = svc.Export(reports.FormatPDF, sampleReport(true))
	require.NoError(t, err)
	assert.Equal(t, "Reporte_Ventas_20260201_093045.pdf", file.FileName)
	assert.Equal(t, "application/pdf", file.ContentType)
}

func TestExportRendererUnavailable(t *testing.T) {
	svc := NewService()

	_, err := svc.Export(reports.FormatPDF, sampleReport(true))
	assert.ErrorIs(t, err, reports.ErrRendererUnavailable)
}

func flatten(rows [][]string) []string {
	var flat []string
	for _, row := range rows {
		flat = append(flat, row...)
	}
	return flat
}
