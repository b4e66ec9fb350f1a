package dashboard

// RevenueIndicator is the "ingresos de hoy" card, with the day-over-day
// change. A zero baseline yields 0%, never a division by zero.
type RevenueIndicator struct {
	Value         float64 `json:"valor"`
	ChangePercent float64 `json:"cambio_porcentaje"`
	Period        string  `json:"periodo"`
}

type OrdersIndicator struct {
	Count         int64   `json:"cantidad"`
	ChangePercent float64 `json:"cambio_porcentaje"`
	Detail        string  `json:"detalle"`
}

type DeliveriesIndicator struct {
	Count         int64   `json:"cantidad"`
	InProgress    int64   `json:"atrasadas"`
	ChangePercent float64 `json:"cambio_porcentaje"`
	Average       string  `json:"promedio"`
}

type InventoryIndicator struct {
	Value         float64 `json:"valor"`
	ChangePercent float64 `json:"cambio_porcentaje"`
	LowStock      int64   `json:"stock_bajo"`
}

// QuickPanel is the four-card header of the dashboard.
type QuickPanel struct {
	RevenueToday RevenueIndicator    `json:"ingresos_hoy"`
	ActiveOrders OrdersIndicator     `json:"pedidos_activos"`
	Deliveries   DeliveriesIndicator `json:"entregas_a_tiempo"`
	Inventory    InventoryIndicator  `json:"valor_inventario"`
}

type ProductionState struct {
	Pending    int64 `json:"pendientes"`
	InProgress int64 `json:"en_proceso"`
	Completed  int64 `json:"completados"`
	Overdue    int64 `json:"atrasados"`
}

type ClientStats struct {
	Total        int64 `json:"total"`
	NewThisMonth int64 `json:"nuevos_este_mes"`
	Active       int64 `json:"activos"`
	Inactive     int64 `json:"inactivos"`
}

type ContractStats struct {
	TotalValue      float64 `json:"valor_total"`
	ActiveContracts int64   `json:"contratos_activos"`
	PendingPayments float64 `json:"pagos_pendientes"`
	ExpiringSoon    int64   `json:"por_vencer"`
}

type TopProduct struct {
	Name     string  `json:"nombre"`
	Quantity int64   `json:"cantidad_vendida"`
	Revenue  float64 `json:"ingresos"`
}

type RecentOrder struct {
	Code        string  `json:"codigo"`
	Client      string  `json:"cliente"`
	Description string  `json:"descripcion"`
	Amount      float64 `json:"monto"`
	Status      string  `json:"estado"`
}

type DeliveryItem struct {
	Code         string `json:"codigo"`
	Client       string `json:"cliente"`
	Description  string `json:"descripcion"`
	DeliveryDate string `json:"fecha_entrega"`
	Status       string `json:"estado"`
}

type TodayDeliveries struct {
	Total      int            `json:"total_entregas"`
	Message    string         `json:"mensaje"`
	Note       string         `json:"nota"`
	Deliveries []DeliveryItem `json:"entregas"`
}

// Alert severity tiers. Every alert carries the tier plus a presentation
// color the frontend maps directly.
const (
	SeverityCritical = "critico"
	SeverityWarning  = "advertencia"
	SeverityNormal   = "normal"

	ColorRed    = "rojo"
	ColorOrange = "naranja"
	ColorYellow = "amarillo"
	ColorGreen  = "verde"
)

type StockAlert struct {
	Name         string `json:"nombre"`
	StockCurrent int    `json:"stock_actual"`
	StockMinimum int    `json:"stock_minimo"`
	Category     string `json:"categoria"`
	Severity     string `json:"prioridad"`
	Color        string `json:"color"`
}

type MaintenanceAlert struct {
	Name          string `json:"nombre"`
	Type          string `json:"tipo_mantenimiento"`
	ScheduledDate string `json:"fecha_programada"`
	DaysLeft      int    `json:"dias_restantes"`
	StatusText    string `json:"estado_texto"`
	Severity      string `json:"prioridad"`
	Color         string `json:"color"`
}

type DeliveryAlert struct {
	Code         string `json:"codigo"`
	Client       string `json:"cliente"`
	DeliveryDate string `json:"fecha_entrega"`
	DaysLeft     int    `json:"dias_restantes"`
	Status       string `json:"estado"`
	Description  string `json:"descripcion"`
	Severity     string `json:"prioridad"`
	Color        string `json:"color"`
}

type StockAlertGroup struct {
	Total  int          `json:"total"`
	Alerts []StockAlert `json:"alertas"`
}

type MaintenanceAlertGroup struct {
	Total  int                `json:"total"`
	Alerts []MaintenanceAlert `json:"alertas"`
}

type DeliveryAlertGroup struct {
	Total  int             `json:"total"`
	Alerts []DeliveryAlert `json:"alertas"`
}

// Alerts is the combined alert feed. Group totals count everything found;
// each group's list is capped for the UI.
type Alerts struct {
	Total        int                   `json:"total_alertas"`
	Filter       string                `json:"filtro_aplicado"`
	Stock        StockAlertGroup       `json:"stock_critico"`
	Maintenance  MaintenanceAlertGroup `json:"mantenimientos_proximos"`
	UrgentOrders DeliveryAlertGroup    `json:"entregas_urgentes"`
}

// Summary bundles every dashboard block into one payload.
type Summary struct {
	QuickPanel      *QuickPanel      `json:"panel_alertas_rapidas"`
	ProductionState *ProductionState `json:"estado_produccion"`
	Clients         *ClientStats     `json:"clientes"`
	Contracts       *ContractStats   `json:"contratos"`
	TopProducts     []TopProduct     `json:"productos_mas_vendidos"`
	RecentOrders    []RecentOrder    `json:"pedidos_recientes"`
	TodayDeliveries *TodayDeliveries `json:"entregas_programadas_hoy"`
}
