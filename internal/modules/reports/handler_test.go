package reports

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingExporter struct{}

func (failingExporter) Export(format ExportFormat, report *Report) (*ExportFile, error) {
	return nil, errors.New("sin espacio en disco")
}

func testRouter(t *testing.T, h *Handler) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) { c.Set("tenant_id", int64(1)) })
	h.RegisterRoutes(&r.RouterGroup)
	return r
}

func TestExportFaultCarriesDetail(t *testing.T) {
	h := NewHandler(testService(testDB(t), 0.18), failingExporter{})
	r := testRouter(t, h)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/reportes/ventas/excel", nil))

	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "EXPORT_FAILED")
	// the triggering message surfaces in the error details
	assert.Contains(t, w.Body.String(), "sin espacio en disco")
}

func TestExportUnavailableRenderer(t *testing.T) {
	h := NewHandler(testService(testDB(t), 0.18), unavailableExporter{})
	r := testRouter(t, h)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/reportes/ventas/pdf", nil))

	require.Equal(t, http.StatusNotImplemented, w.Code)
	assert.Contains(t, w.Body.String(), "EXPORT_UNAVAILABLE")
}

type unavailableExporter struct{}

func (unavailableExporter) Export(format ExportFormat, report *Report) (*ExportFile, error) {
	return nil, ErrRendererUnavailable
}
