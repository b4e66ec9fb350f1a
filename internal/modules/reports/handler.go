package reports

import (
	"errors"
	"net/http"

	"arteideas/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service  *Service
	exporter Exporter
}

func NewHandler(service *Service, exporter Exporter) *Handler {
	return &Handler{service: service, exporter: exporter}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	reportes := rg.Group("/reportes")
	{
		reportes.GET("/categorias", h.ListCategories)
		reportes.GET("/todos", h.GetAll)
		reportes.GET("/:categoria", h.GetReport)
		reportes.GET("/:categoria/excel", h.ExportExcel)
		reportes.GET("/:categoria/pdf", h.ExportPDF)
	}
}

// ListCategories returns the fixed category catalogue so clients never
// hardcode the codes.
func (h *Handler) ListCategories(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{
		"categorias": Categories(),
	})
}

func (h *Handler) GetReport(c *gin.Context) {
	tenantID, ok := h.tenantID(c)
	if !ok {
		return
	}

	category := Category(c.Param("categoria"))
	start, end := h.service.ParseDateRange(c.Query("fecha_inicio"), c.Query("fecha_fin"))

	report, err := h.service.Assemble(c.Request.Context(), tenantID, category, start, end)
	if err != nil {
		h.reportError(c, err)
		return
	}

	response.Success(c, http.StatusOK, report)
}

func (h *Handler) GetAll(c *gin.Context) {
	tenantID, ok := h.tenantID(c)
	if !ok {
		return
	}

	start, end := h.service.ParseDateRange(c.Query("fecha_inicio"), c.Query("fecha_fin"))

	summaries, err := h.service.AssembleAll(c.Request.Context(), tenantID, start, end)
	if err != nil {
		h.reportError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"periodo_inicio": start.Format("2006-01-02"),
		"periodo_fin":    end.Format("2006-01-02"),
		"reportes":       summaries,
	})
}

func (h *Handler) ExportExcel(c *gin.Context) {
	h.export(c, FormatExcel)
}

func (h *Handler) ExportPDF(c *gin.Context) {
	h.export(c, FormatPDF)
}

func (h *Handler) export(c *gin.Context, format ExportFormat) {
	tenantID, ok := h.tenantID(c)
	if !ok {
		return
	}

	category := Category(c.Param("categoria"))
	start, end := h.service.ParseDateRange(c.Query("fecha_inicio"), c.Query("fecha_fin"))

	report, err := h.service.Assemble(c.Request.Context(), tenantID, category, start, end)
	if err != nil {
		h.reportError(c, err)
		return
	}

	file, err := h.exporter.Export(format, report)
	if err != nil {
		if errors.Is(err, ErrRendererUnavailable) {
			response.Error(c, http.StatusNotImplemented, "EXPORT_UNAVAILABLE",
				"El formato de exportación solicitado no está disponible")
			return
		}
		response.ErrorWithDetails(c, http.StatusInternalServerError, "EXPORT_FAILED",
			"No se pudo generar el archivo del reporte", gin.H{
				"detalle": err.Error(),
			})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+file.FileName+`"`)
	c.Data(http.StatusOK, file.ContentType, file.Data)
}

// tenantID reads the tenant resolved by the auth middleware. A zero value
// means the user record is not linked to a tenant, which is a data setup
// problem, not an authentication one.
func (h *Handler) tenantID(c *gin.Context) (int64, bool) {
	tenantID := c.GetInt64("tenant_id")
	if tenantID == 0 {
		response.ErrorWithDetails(c, http.StatusForbidden, "TENANT_REQUIRED",
			"Usuario sin empresa asignada", gin.H{
				"solucion": "Asigne una empresa al usuario o ejecute el seeder para crear los datos iniciales",
			})
		return 0, false
	}
	return tenantID, true
}

func (h *Handler) reportError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrUnknownCategory):
		response.ErrorWithDetails(c, http.StatusBadRequest, "INVALID_CATEGORY",
			"Categoría de reporte no válida", gin.H{
				"categorias_validas": ValidCategories(),
			})
	case errors.Is(err, ErrTenantRequired):
		response.ErrorWithDetails(c, http.StatusForbidden, "TENANT_REQUIRED",
			"Usuario sin empresa asignada", gin.H{
				"solucion": "Asigne una empresa al usuario o ejecute el seeder para crear los datos iniciales",
			})
	default:
		response.ErrorWithDetails(c, http.StatusInternalServerError, "REPORT_FAILED",
			"No se pudo generar el reporte", gin.H{
				"detalle": err.Error(),
			})
	}
}
