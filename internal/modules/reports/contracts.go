package reports

import (
	"context"
	"time"

	"arteideas/internal/domain"
	"arteideas/internal/repository"
)

// ContractsAggregator reduces contracts whose start date falls inside the
// range.
type ContractsAggregator struct {
	contracts *repository.ContractRepository
}

func NewContractsAggregator(contracts *repository.ContractRepository) *ContractsAggregator {
	return &ContractsAggregator{contracts: contracts}
}

func (a *ContractsAggregator) Metrics(ctx context.Context, tenantID int64, start, end time.Time) (Metrics, error) {
	contracts, err := a.contracts.ListByStartRange(ctx, tenantID, start, end)
	if err != nil {
		return nil, err
	}

	var monto, adelantos, saldo float64
	var activos, completados int
	for _, c := range contracts {
		monto += c.TotalAmount
		adelantos += c.Advance
		saldo += c.PendingBalance
		switch c.Status {
		case domain.ContratoActivo:
			activos++
		case domain.ContratoCompletado:
			completados++
		}
	}

	var m Metrics
	m.Add("total_contratos", len(contracts))
	m.Add("total_monto", round2(monto))
	m.Add("total_adelantos", round2(adelantos))
	m.Add("total_saldo_pendiente", round2(saldo))
	m.Add("contratos_activos", activos)
	m.Add("contratos_completados", completados)
	return m, nil
}

func (a *ContractsAggregator) Detail(ctx context.Context, tenantID int64, start, end time.Time) (Detail, error) {
	contracts, err := a.contracts.ListByStartRange(ctx, tenantID, start, end)
	if err != nil {
		return nil, err
	}

	detail := make(Detail, 0, len(contracts))
	for _, c := range contracts {
		clientName := ""
		if c.Client != nil {
			clientName = c.Client.FullName()
		}

		var row Row
		row.Set("id", c.ID)
		row.Set("numero_contrato", c.ContractNumber)
		row.Set("titulo", c.Title)
		row.Set("cliente", clientName)
		row.Set("tipo_servicio", c.ServiceType.Display())
		row.Set("fecha_inicio", c.StartDate.Format("2006-01-02"))
		row.Set("fecha_fin", c.EndDate.Format("2006-01-02"))
		row.Set("monto_total", c.TotalAmount)
		row.Set("adelanto", c.Advance)
		row.Set("saldo_pendiente", c.PendingBalance)
		row.Set("estado", c.Status.Display())
		row.Set("porcentaje_adelanto", round2(c.AdvancePercent()))
		detail = append(detail, row)
	}
	return detail, nil
}
