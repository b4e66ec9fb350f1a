package domain

import "time"

type OrderStatus string

const (
	OrderPendiente  OrderStatus = "pendiente"
	OrderConfirmado OrderStatus = "confirmado"
	OrderEnProceso  OrderStatus = "en_proceso"
	OrderCompletado OrderStatus = "completado"
	OrderEntregado  OrderStatus = "entregado"
	OrderCancelado  OrderStatus = "cancelado"
)

func (s OrderStatus) Display() string {
	switch s {
	case OrderPendiente:
		return "Pendiente"
	case OrderConfirmado:
		return "Confirmado"
	case OrderEnProceso:
		return "En Proceso"
	case OrderCompletado:
		return "Completado"
	case OrderEntregado:
		return "Entregado"
	case OrderCancelado:
		return "Cancelado"
	default:
		return string(s)
	}
}

type DocumentType string

const (
	DocNotaVenta DocumentType = "nota_venta"
	DocProforma  DocumentType = "proforma"
	DocContrato  DocumentType = "contrato"
)

func (d DocumentType) Display() string {
	switch d {
	case DocNotaVenta:
		return "Nota de Venta"
	case DocProforma:
		return "Proforma"
	case DocContrato:
		return "Contrato"
	default:
		return string(d)
	}
}

type PaymentState string

const (
	PaymentPendiente PaymentState = "pendiente"
	PaymentParcial   PaymentState = "parcial"
	PaymentPagado    PaymentState = "pagado"
)

func (p PaymentState) Display() string {
	switch p {
	case PaymentPendiente:
		return "Pendiente"
	case PaymentParcial:
		return "Parcial"
	case PaymentPagado:
		return "Pagado"
	default:
		return string(p)
	}
}

// Order is a sale. Balance is always Total - PaidAmount.
type Order struct {
	ID           int64        `gorm:"column:id;primaryKey" json:"id"`
	TenantID     int64        `gorm:"column:tenant_id;index" json:"tenant_id"`
	OrderNumber  string       `gorm:"column:order_number" json:"order_number"`
	ClientID     int64        `gorm:"column:client_id;index" json:"client_id"`
	Client       *Client      `gorm:"foreignKey:ClientID" json:"client,omitempty"`
	OrderDate    time.Time    `gorm:"column:order_date;index" json:"order_date"`
	DocumentType DocumentType `gorm:"column:document_type" json:"document_type"`
	Status       OrderStatus  `gorm:"column:status" json:"status"`
	PaymentState PaymentState `gorm:"column:payment_state" json:"payment_state"`
	Total        float64      `gorm:"column:total" json:"total"`
	PaidAmount   float64      `gorm:"column:paid_amount" json:"paid_amount"`
	Balance      float64      `gorm:"column:balance" json:"balance"`
	Description  string       `gorm:"column:description" json:"description"`
	CreatedAt    time.Time    `gorm:"column:created_at" json:"created_at"`
	UpdatedAt    time.Time    `gorm:"column:updated_at" json:"updated_at"`
}

func (Order) TableName() string { return "orders" }

type OrderItem struct {
	ID          int64   `gorm:"column:id;primaryKey" json:"id"`
	TenantID    int64   `gorm:"column:tenant_id;index" json:"tenant_id"`
	OrderID     int64   `gorm:"column:order_id;index" json:"order_id"`
	Order       *Order  `gorm:"foreignKey:OrderID" json:"order,omitempty"`
	ProductName string  `gorm:"column:product_name" json:"product_name"`
	Quantity    int     `gorm:"column:quantity" json:"quantity"`
	UnitPrice   float64 `gorm:"column:unit_price" json:"unit_price"`
	Subtotal    float64 `gorm:"column:subtotal" json:"subtotal"`
}

func (OrderItem) TableName() string { return "order_items" }

type PaymentMethod string

const (
	MethodEfectivo      PaymentMethod = "efectivo"
	MethodTarjeta       PaymentMethod = "tarjeta"
	MethodTransferencia PaymentMethod = "transferencia"
	MethodYape          PaymentMethod = "yape"
)

func (m PaymentMethod) Display() string {
	switch m {
	case MethodEfectivo:
		return "Efectivo"
	case MethodTarjeta:
		return "Tarjeta"
	case MethodTransferencia:
		return "Transferencia"
	case MethodYape:
		return "Yape/Plin"
	default:
		return string(m)
	}
}

// OrderPayment is one collection against an order. Tenant scoping goes
// through the order join.
type OrderPayment struct {
	ID              int64         `gorm:"column:id;primaryKey" json:"id"`
	OrderID         int64         `gorm:"column:order_id;index" json:"order_id"`
	Order           *Order        `gorm:"foreignKey:OrderID" json:"order,omitempty"`
	Amount          float64       `gorm:"column:amount" json:"amount"`
	PaymentMethod   PaymentMethod `gorm:"column:payment_method" json:"payment_method"`
	PaymentDate     time.Time     `gorm:"column:payment_date;index" json:"payment_date"`
	ReferenceNumber string        `gorm:"column:reference_number" json:"reference_number"`
	Notes           string        `gorm:"column:notes" json:"notes"`
	CreatedAt       time.Time     `gorm:"column:created_at" json:"created_at"`
}

func (OrderPayment) TableName() string { return "order_payments" }
