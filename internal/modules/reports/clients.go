package reports

import (
	"context"
	"time"

	"arteideas/internal/domain"
	"arteideas/internal/repository"
)

// ClientsAggregator counts active clients by type and rolls up per-client
// order history for the detail table.
type ClientsAggregator struct {
	clients *repository.ClientRepository
	orders  *repository.OrderRepository
}

func NewClientsAggregator(clients *repository.ClientRepository, orders *repository.OrderRepository) *ClientsAggregator {
	return &ClientsAggregator{clients: clients, orders: orders}
}

func (a *ClientsAggregator) Metrics(ctx context.Context, tenantID int64, start, end time.Time) (Metrics, error) {
	clients, err := a.clients.ListActive(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	var particulares, colegios, empresas int
	for _, c := range clients {
		switch c.ClientType {
		case domain.ClientParticular:
			particulares++
		case domain.ClientColegio:
			colegios++
		case domain.ClientEmpresa:
			empresas++
		}
	}

	nuevos, err := a.clients.CountCreatedBetween(ctx, tenantID, start, end)
	if err != nil {
		return nil, err
	}

	var m Metrics
	m.Add("total_clientes", len(clients))
	m.Add("clientes_particulares", particulares)
	m.Add("clientes_colegios", colegios)
	m.Add("clientes_empresas", empresas)
	m.Add("clientes_nuevos", nuevos)
	return m, nil
}

func (a *ClientsAggregator) Detail(ctx context.Context, tenantID int64, _, _ time.Time) (Detail, error) {
	clients, err := a.clients.ListActive(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	stats, err := a.orders.StatsByClient(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	detail := make(Detail, 0, len(clients))
	for _, c := range clients {
		s := stats[c.ID]

		var row Row
		row.Set("id", c.ID)
		row.Set("tipo_cliente", c.ClientType.Display())
		row.Set("nombres", c.FirstNames)
		row.Set("apellidos", c.LastNames)
		row.Set("nombre_completo", c.FullName())
		row.Set("email", c.Email)
		row.Set("telefono", c.Phone)
		row.Set("dni", c.DNI)
		row.Set("total_pedidos", s.OrderCount)
		row.Set("total_ventas", round2(s.TotalSales))
		row.Set("fecha_registro", c.CreatedAt.Format("2006-01-02"))
		detail = append(detail, row)
	}
	return detail, nil
}
