package dashboard

import (
	"context"
	"net/http"

	"arteideas/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
	stream  *Stream
}

func NewHandler(service *Service, stream *Stream) *Handler {
	return &Handler{service: service, stream: stream}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	dash := rg.Group("/dashboard")
	{
		dash.GET("/resumen", h.Resumen)
		dash.GET("/alertas", h.Alertas)
		dash.GET("/alertas/stream", h.AlertasStream)
		dash.GET("/alertas-rapidas", h.AlertasRapidas)
		dash.GET("/estado-produccion", h.EstadoProduccion)
		dash.GET("/clientes-estadisticas", h.ClientesEstadisticas)
		dash.GET("/contratos-estadisticas", h.ContratosEstadisticas)
		dash.GET("/productos-mas-vendidos", h.ProductosMasVendidos)
		dash.GET("/pedidos-recientes", h.PedidosRecientes)
		dash.GET("/entregas-programadas-hoy", h.EntregasProgramadasHoy)
	}
}

func (h *Handler) Resumen(c *gin.Context) {
	h.serve(c, func(ctx context.Context, tenantID int64) (any, error) {
		return h.service.Summary(ctx, tenantID)
	})
}

func (h *Handler) Alertas(c *gin.Context) {
	filter := c.DefaultQuery("filtro", "semana")
	h.serve(c, func(ctx context.Context, tenantID int64) (any, error) {
		return h.service.Alerts(ctx, tenantID, filter)
	})
}

func (h *Handler) AlertasRapidas(c *gin.Context) {
	h.serve(c, func(ctx context.Context, tenantID int64) (any, error) {
		return h.service.QuickPanel(ctx, tenantID)
	})
}

func (h *Handler) EstadoProduccion(c *gin.Context) {
	h.serve(c, func(ctx context.Context, tenantID int64) (any, error) {
		return h.service.ProductionState(ctx, tenantID)
	})
}

func (h *Handler) ClientesEstadisticas(c *gin.Context) {
	h.serve(c, func(ctx context.Context, tenantID int64) (any, error) {
		return h.service.ClientStats(ctx, tenantID)
	})
}

func (h *Handler) ContratosEstadisticas(c *gin.Context) {
	h.serve(c, func(ctx context.Context, tenantID int64) (any, error) {
		return h.service.ContractStats(ctx, tenantID)
	})
}

func (h *Handler) ProductosMasVendidos(c *gin.Context) {
	h.serve(c, func(ctx context.Context, tenantID int64) (any, error) {
		return h.service.TopProducts(ctx, tenantID)
	})
}

func (h *Handler) PedidosRecientes(c *gin.Context) {
	h.serve(c, func(ctx context.Context, tenantID int64) (any, error) {
		return h.service.RecentOrders(ctx, tenantID)
	})
}

func (h *Handler) EntregasProgramadasHoy(c *gin.Context) {
	h.serve(c, func(ctx context.Context, tenantID int64) (any, error) {
		return h.service.TodayDeliveries(ctx, tenantID)
	})
}

// AlertasStream upgrades to a websocket and pushes the alert feed
// periodically until the client disconnects.
func (h *Handler) AlertasStream(c *gin.Context) {
	tenantID, ok := h.tenantID(c)
	if !ok {
		return
	}
	h.stream.Serve(c, tenantID)
}

func (h *Handler) serve(c *gin.Context, load func(ctx context.Context, tenantID int64) (any, error)) {
	tenantID, ok := h.tenantID(c)
	if !ok {
		return
	}

	data, err := load(c.Request.Context(), tenantID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "DASHBOARD_FAILED",
			"No se pudo cargar el panel")
		return
	}

	response.Success(c, http.StatusOK, data)
}

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
