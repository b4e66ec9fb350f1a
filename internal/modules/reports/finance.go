package reports

import (
	"context"
	"time"

	"arteideas/internal/repository"

	"github.com/shopspring/decimal"
)

// FinanceAggregator sums order revenue and collections in range. The tax
// metric extracts the IGV already embedded in totals: total * r / (1 + r),
// with r coming from configuration, not a constant.
type FinanceAggregator struct {
	orders  *repository.OrderRepository
	taxRate decimal.Decimal
}

func NewFinanceAggregator(orders *repository.OrderRepository, taxRate float64) *FinanceAggregator {
	return &FinanceAggregator{
		orders:  orders,
		taxRate: decimal.NewFromFloat(taxRate),
	}
}

func (a *FinanceAggregator) Metrics(ctx context.Context, tenantID int64, start, end time.Time) (Metrics, error) {
	orders, err := a.orders.ListByDateRange(ctx, tenantID, start, end)
	if err != nil {
		return nil, err
	}

	var totalIngresos, totalPagado float64
	for _, o := range orders {
		totalIngresos += o.Total
		totalPagado += o.PaidAmount
	}

	payments, err := a.orders.ListPaymentsByDateRange(ctx, tenantID, start, end)
	if err != nil {
		return nil, err
	}
	var pagosRecibidos float64
	for _, p := range payments {
		pagosRecibidos += p.Amount
	}

	ingresos := decimal.NewFromFloat(totalIngresos)
	igv := ingresos.Mul(a.taxRate).Div(decimal.NewFromInt(1).Add(a.taxRate)).Round(2)
	netos := ingresos.Sub(igv)

	var m Metrics
	m.Add("total_ingresos", round2(totalIngresos))
	m.Add("total_pagado", round2(totalPagado))
	m.Add("total_pagos_recibidos", round2(pagosRecibidos))
	m.Add("saldo_pendiente", round2(totalIngresos-totalPagado))
	m.Add("igv_recaudado", igv.InexactFloat64())
	m.Add("ingresos_netos", netos.InexactFloat64())
	return m, nil
}

func (a *FinanceAggregator) Detail(ctx context.Context, tenantID int64, start, end time.Time) (Detail, error) {
	payments, err := a.orders.ListPaymentsByDateRange(ctx, tenantID, start, end)
	if err != nil {
		return nil, err
	}

	detail := make(Detail, 0, len(payments))
	for _, p := range payments {
		orderNumber := ""
		clientName := ""
		if p.Order != nil {
			orderNumber = p.Order.OrderNumber
			if p.Order.Client != nil {
				clientName = p.Order.Client.FullName()
			}
		}

		var row Row
		row.Set("id", p.ID)
		row.Set("fecha", p.PaymentDate.Format("2006-01-02"))
		row.Set("numero_pedido", orderNumber)
		row.Set("cliente", clientName)
		row.Set("monto", p.Amount)
		row.Set("metodo_pago", p.PaymentMethod.Display())
		row.Set("numero_referencia", p.ReferenceNumber)
		row.Set("notas", p.Notes)
		detail = append(detail, row)
	}
	return detail, nil
}
