package export

import (
	"fmt"
	"time"

	"arteideas/internal/modules/reports"
)

// Renderer turns a report envelope into a downloadable binary. Each
// backend is one concrete implementation chosen at wiring time.
type Renderer interface {
	Render(report *reports.Report) ([]byte, error)
	ContentType() string
	Ext() string
}

// Service dispatches a report to the renderer registered for a format.
// It satisfies reports.Exporter.
type Service struct {
	renderers map[reports.ExportFormat]Renderer
	now       func() time.Time
}

func NewService() *Service {
	return &Service{
		renderers: make(map[reports.ExportFormat]Renderer),
		now:       time.Now,
	}
}

// Register installs a renderer for a format, replacing any previous one.
func (s *Service) Register(format reports.ExportFormat, r Renderer) {
	s.renderers[format] = r
}

// Export renders the report and names the file after its category and the
// generation instant.
func (s *Service) Export(format reports.ExportFormat, report *reports.Report) (*reports.ExportFile, error) {
	r, ok := s.renderers[format]
	if !ok {
		return nil, fmt.Errorf("%w: %s", reports.ErrRendererUnavailable, format)
	}

	data, err := r.Render(report)
	if err != nil {
		return nil, err
	}

	stamp := s.now().Format("20060102_150405")
	return &reports.ExportFile{
		Data:        data,
		ContentType: r.ContentType(),
		FileName:    fmt.Sprintf("%s_%s.%s", report.Category.FileName(), stamp, r.Ext()),
	}, nil
}
