package reports

// ExportFormat identifies a download format a report can be rendered to.
type ExportFormat string

const (
	FormatExcel ExportFormat = "excel"
	FormatPDF   ExportFormat = "pdf"
)

// ExportFile is a rendered report ready to be served as an attachment.
type ExportFile struct {
	Data        []byte
	ContentType string
	FileName    string
}

// Exporter renders an assembled report into a downloadable file. The
// rendering backends live in the export subpackage and are registered at
// wiring time.
type Exporter interface {
	Export(format ExportFormat, report *Report) (*ExportFile, error)
}
