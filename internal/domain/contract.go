package domain

import "time"

type ContractStatus string

const (
	ContratoActivo     ContractStatus = "activo"
	ContratoCompletado ContractStatus = "completado"
	ContratoCancelado  ContractStatus = "cancelado"
)

func (s ContractStatus) Display() string {
	switch s {
	case ContratoActivo:
		return "Activo"
	case ContratoCompletado:
		return "Completado"
	case ContratoCancelado:
		return "Cancelado"
	default:
		return string(s)
	}
}

type ServiceType string

const (
	ServicioPromocion ServiceType = "promocion_escolar"
	ServicioEvento    ServiceType = "evento"
	ServicioEnmarcado ServiceType = "enmarcado"
	ServicioSesion    ServiceType = "sesion_fotografica"
)

func (s ServiceType) Display() string {
	switch s {
	case ServicioPromocion:
		return "Promoción Escolar"
	case ServicioEvento:
		return "Evento"
	case ServicioEnmarcado:
		return "Enmarcado"
	case ServicioSesion:
		return "Sesión Fotográfica"
	default:
		return string(s)
	}
}

type Contract struct {
	ID             int64          `gorm:"column:id;primaryKey" json:"id"`
	TenantID       int64          `gorm:"column:tenant_id;index" json:"tenant_id"`
	ContractNumber string         `gorm:"column:contract_number" json:"contract_number"`
	Title          string         `gorm:"column:title" json:"title"`
	ClientID       int64          `gorm:"column:client_id" json:"client_id"`
	Client         *Client        `gorm:"foreignKey:ClientID" json:"client,omitempty"`
	ServiceType    ServiceType    `gorm:"column:service_type" json:"service_type"`
	StartDate      time.Time      `gorm:"column:start_date;index" json:"start_date"`
	EndDate        time.Time      `gorm:"column:end_date" json:"end_date"`
	TotalAmount    float64        `gorm:"column:total_amount" json:"total_amount"`
	Advance        float64        `gorm:"column:advance" json:"advance"`
	PendingBalance float64        `gorm:"column:pending_balance" json:"pending_balance"`
	Status         ContractStatus `gorm:"column:status" json:"status"`
	CreatedAt      time.Time      `gorm:"column:created_at" json:"created_at"`
	UpdatedAt      time.Time      `gorm:"column:updated_at" json:"updated_at"`
}

func (Contract) TableName() string { return "contracts" }

// AdvancePercent is the advance as a share of the contract total, 0 when
// the total is 0.
func (c Contract) AdvancePercent() float64 {
	if c.TotalAmount == 0 {
		return 0
	}
	return c.Advance / c.TotalAmount * 100
}
