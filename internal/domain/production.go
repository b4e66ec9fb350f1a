package domain

import "time"

type ProductionStatus string

const (
	ProduccionPendiente ProductionStatus = "pendiente"
	ProduccionEnProceso ProductionStatus = "en_proceso"
	ProduccionTerminado ProductionStatus = "terminado"
)

func (s ProductionStatus) Display() string {
	switch s {
	case ProduccionPendiente:
		return "Pendiente"
	case ProduccionEnProceso:
		return "En Proceso"
	case ProduccionTerminado:
		return "Terminado"
	default:
		return string(s)
	}
}

type ProductionPriority string

const (
	PriorityBaja   ProductionPriority = "baja"
	PriorityNormal ProductionPriority = "normal"
	PriorityAlta   ProductionPriority = "alta"
)

func (p ProductionPriority) Display() string {
	switch p {
	case PriorityBaja:
		return "Baja"
	case PriorityNormal:
		return "Normal"
	case PriorityAlta:
		return "Alta"
	default:
		return string(p)
	}
}

type ProductionOrder struct {
	ID             int64              `gorm:"column:id;primaryKey" json:"id"`
	TenantID       int64              `gorm:"column:tenant_id;index" json:"tenant_id"`
	OPNumber       string             `gorm:"column:op_number" json:"op_number"`
	OrderID        *int64             `gorm:"column:order_id" json:"order_id,omitempty"`
	Order          *Order             `gorm:"foreignKey:OrderID" json:"order,omitempty"`
	ClientID       int64              `gorm:"column:client_id" json:"client_id"`
	Client         *Client            `gorm:"foreignKey:ClientID" json:"client,omitempty"`
	Type           string             `gorm:"column:type" json:"type"`
	Priority       ProductionPriority `gorm:"column:priority" json:"priority"`
	Status         ProductionStatus   `gorm:"column:status" json:"status"`
	EstimatedDate  time.Time          `gorm:"column:estimated_date;index" json:"estimated_date"`
	RealStartDate  *time.Time         `gorm:"column:real_start_date" json:"real_start_date,omitempty"`
	RealEndDate    *time.Time         `gorm:"column:real_end_date" json:"real_end_date,omitempty"`
	EstimatedHours *float64           `gorm:"column:estimated_hours" json:"estimated_hours,omitempty"`
	RealHours      *float64           `gorm:"column:real_hours" json:"real_hours,omitempty"`
	OperatorName   string             `gorm:"column:operator_name" json:"operator_name"`
	Description    string             `gorm:"column:description" json:"description"`
	CreatedAt      time.Time          `gorm:"column:created_at" json:"created_at"`
	UpdatedAt      time.Time          `gorm:"column:updated_at" json:"updated_at"`
}

func (ProductionOrder) TableName() string { return "production_orders" }

// Overdue reports whether the order blew past its estimated date without
// reaching the terminal state.
func (o ProductionOrder) Overdue(today time.Time) bool {
	return o.EstimatedDate.Before(today) && o.Status != ProduccionTerminado
}
