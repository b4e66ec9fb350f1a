package reports

import (
	"context"
	"time"

	"arteideas/internal/domain"
	"arteideas/internal/repository"
)

// ProductionAggregator reduces production orders filtered by estimated
// date. Overdue is computed per row, not in the aggregate query.
type ProductionAggregator struct {
	production *repository.ProductionRepository
	now        func() time.Time
}

func NewProductionAggregator(production *repository.ProductionRepository) *ProductionAggregator {
	return &ProductionAggregator{production: production, now: time.Now}
}

func (a *ProductionAggregator) Metrics(ctx context.Context, tenantID int64, start, end time.Time) (Metrics, error) {
	orders, err := a.production.ListByEstimatedRange(ctx, tenantID, start, end)
	if err != nil {
		return nil, err
	}

	today := repository.Day(a.now())
	var completadas, enProceso, pendientes, vencidas int
	var horasSum float64
	var horasCount int
	for _, o := range orders {
		switch o.Status {
		case domain.ProduccionTerminado:
			completadas++
		case domain.ProduccionEnProceso:
			enProceso++
		case domain.ProduccionPendiente:
			pendientes++
		}
		if o.Overdue(today) {
			vencidas++
		}
		if o.RealHours != nil {
			horasSum += *o.RealHours
			horasCount++
		}
	}

	total := len(orders)
	promedio := 0.0
	if horasCount > 0 {
		promedio = round2(horasSum / float64(horasCount))
	}
	tasa := 0.0
	if total > 0 {
		tasa = round2(float64(completadas) / float64(total) * 100)
	}

	var m Metrics
	m.Add("total_ordenes", total)
	m.Add("ordenes_completadas", completadas)
	m.Add("ordenes_en_proceso", enProceso)
	m.Add("ordenes_pendientes", pendientes)
	m.Add("ordenes_vencidas", vencidas)
	m.Add("tiempo_promedio_horas", promedio)
	m.Add("tasa_completitud", tasa)
	return m, nil
}

func (a *ProductionAggregator) Detail(ctx context.Context, tenantID int64, start, end time.Time) (Detail, error) {
	orders, err := a.production.ListByEstimatedRange(ctx, tenantID, start, end)
	if err != nil {
		return nil, err
	}

	today := repository.Day(a.now())
	detail := make(Detail, 0, len(orders))
	for _, o := range orders {
		orderNumber := ""
		if o.Order != nil {
			orderNumber = o.Order.OrderNumber
		}
		clientName := ""
		if o.Client != nil {
			clientName = o.Client.FullName()
		}
		var endDate any
		if o.RealEndDate != nil {
			endDate = o.RealEndDate.Format("2006-01-02")
		}
		var estimado, real any
		if o.EstimatedHours != nil {
			estimado = *o.EstimatedHours
		}
		if o.RealHours != nil {
			real = *o.RealHours
		}

		var row Row
		row.Set("id", o.ID)
		row.Set("numero_op", o.OPNumber)
		row.Set("pedido", orderNumber)
		row.Set("cliente", clientName)
		row.Set("tipo", o.Type)
		row.Set("estado", o.Status.Display())
		row.Set("prioridad", o.Priority.Display())
		row.Set("fecha_estimada", o.EstimatedDate.Format("2006-01-02"))
		row.Set("fecha_finalizacion", endDate)
		row.Set("operario", o.OperatorName)
		row.Set("tiempo_estimado", estimado)
		row.Set("tiempo_real", real)
		row.Set("vencida", o.Overdue(today))
		detail = append(detail, row)
	}
	return detail, nil
}
