package reports

import (
	"context"
	"time"

	"arteideas/internal/domain"
	"arteideas/internal/repository"
)

// SalesAggregator reduces the tenant's orders in a date range to revenue
// metrics and a per-order detail table.
type SalesAggregator struct {
	orders *repository.OrderRepository
}

func NewSalesAggregator(orders *repository.OrderRepository) *SalesAggregator {
	return &SalesAggregator{orders: orders}
}

func (a *SalesAggregator) Metrics(ctx context.Context, tenantID int64, start, end time.Time) (Metrics, error) {
	orders, err := a.orders.ListByDateRange(ctx, tenantID, start, end)
	if err != nil {
		return nil, err
	}

	var totalVentas, totalPagado float64
	var completados int
	for _, o := range orders {
		totalVentas += o.Total
		totalPagado += o.PaidAmount
		if o.Status == domain.OrderCompletado {
			completados++
		}
	}

	totalPedidos := len(orders)
	promedio := 0.0
	tasa := 0.0
	if totalPedidos > 0 {
		promedio = totalVentas / float64(totalPedidos)
		tasa = round2(float64(completados) / float64(totalPedidos) * 100)
	}

	var m Metrics
	m.Add("total_ventas", round2(totalVentas))
	m.Add("total_pedidos", totalPedidos)
	m.Add("promedio_venta", round2(promedio))
	m.Add("tasa_completitud", tasa)
	m.Add("total_pagado", round2(totalPagado))
	m.Add("saldo_pendiente", round2(totalVentas-totalPagado))
	return m, nil
}

func (a *SalesAggregator) Detail(ctx context.Context, tenantID int64, start, end time.Time) (Detail, error) {
	orders, err := a.orders.ListByDateRange(ctx, tenantID, start, end)
	if err != nil {
		return nil, err
	}

	detail := make(Detail, 0, len(orders))
	for _, o := range orders {
		clientName := ""
		if o.Client != nil {
			clientName = o.Client.FullName()
		}

		var row Row
		row.Set("id", o.ID)
		row.Set("numero_pedido", o.OrderNumber)
		row.Set("cliente", clientName)
		row.Set("fecha", o.OrderDate.Format("2006-01-02"))
		row.Set("tipo_documento", o.DocumentType.Display())
		row.Set("total", o.Total)
		row.Set("pagado", o.PaidAmount)
		row.Set("saldo", o.Balance)
		row.Set("estado", o.Status.Display())
		row.Set("estado_pago", o.PaymentState.Display())
		detail = append(detail, row)
	}
	return detail, nil
}
