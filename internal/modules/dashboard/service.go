package dashboard

import (
	"context"
	"fmt"
	"math"
	"time"

	"arteideas/internal/domain"
	"arteideas/internal/repository"

	"github.com/sirupsen/logrus"
)

const (
	topProductsLimit     = 4
	recentOrdersLimit    = 4
	todayDeliveriesLimit = 5
	alertsPerGroupLimit  = 10

	contractExpiryWindow = 30
	activeClientWindow   = 90
)

// Service computes the dashboard blocks. Every method is a read over the
// tenant's data at the current instant; nothing is cached.
type Service struct {
	orders      OrderReader
	production  ProductionReader
	inventory   InventoryReader
	clients     ClientReader
	contracts   ContractReader
	maintenance MaintenanceReader
	now         func() time.Time
}

func NewService(
	orders OrderReader,
	production ProductionReader,
	inventory InventoryReader,
	clients ClientReader,
	contracts ContractReader,
	maintenance MaintenanceReader,
) *Service {
	return &Service{
		orders:      orders,
		production:  production,
		inventory:   inventory,
		clients:     clients,
		contracts:   contracts,
		maintenance: maintenance,
		now:         time.Now,
	}
}

func (s *Service) QuickPanel(ctx context.Context, tenantID int64) (*QuickPanel, error) {
	today := repository.Day(s.now())
	yesterday := today.AddDate(0, 0, -1)

	revenueToday, err := s.orders.RevenueOnDay(ctx, tenantID, today)
	if err != nil {
		return nil, err
	}
	revenueYesterday, err := s.orders.RevenueOnDay(ctx, tenantID, yesterday)
	if err != nil {
		return nil, err
	}

	activeOrders, err := s.orders.CountActive(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	productOrders, err := s.orders.CountActive(ctx, tenantID, domain.DocNotaVenta, domain.DocProforma)
	if err != nil {
		return nil, err
	}
	projectOrders, err := s.orders.CountActive(ctx, tenantID, domain.DocContrato)
	if err != nil {
		return nil, err
	}

	monthStart := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC)
	prevMonthStart := monthStart.AddDate(0, -1, 0)
	ordersThisMonth, err := s.orders.CountByDateRange(ctx, tenantID, monthStart, today)
	if err != nil {
		return nil, err
	}
	ordersPrevMonth, err := s.orders.CountByDateRange(ctx, tenantID, prevMonthStart, monthStart.AddDate(0, 0, -1))
	if err != nil {
		return nil, err
	}

	pendingProduction, err := s.production.CountPending(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	inProgress, err := s.production.CountByStatus(ctx, tenantID, domain.ProduccionEnProceso)
	if err != nil {
		return nil, err
	}
	// adjacent half-open weekly windows, today included in the current one
	startedThisWeek, err := s.production.CountStartedBetween(ctx, tenantID, today.AddDate(0, 0, -7), today.AddDate(0, 0, 1))
	if err != nil {
		return nil, err
	}
	startedLastWeek, err := s.production.CountStartedBetween(ctx, tenantID, today.AddDate(0, 0, -14), today.AddDate(0, 0, -7))
	if err != nil {
		return nil, err
	}

	inventoryValue, err := s.inventory.TotalSaleValue(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	lowStock, err := s.inventory.CountLowStock(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	return &QuickPanel{
		RevenueToday: RevenueIndicator{
			Value:         revenueToday,
			ChangePercent: changePercent(revenueToday, revenueYesterday),
			Period:        "Hoy",
		},
		ActiveOrders: OrdersIndicator{
			Count:         activeOrders,
			ChangePercent: changePercent(float64(ordersThisMonth), float64(ordersPrevMonth)),
			Detail:        fmt.Sprintf("%d pendientes, %d en proceso", productOrders, projectOrders),
		},
		Deliveries: DeliveriesIndicator{
			Count:         pendingProduction,
			InProgress:    inProgress,
			ChangePercent: changePercent(float64(startedThisWeek), float64(startedLastWeek)),
			Average:       fmt.Sprintf("%dh promedio", inProgress),
		},
		Inventory: InventoryIndicator{
			Value:         inventoryValue,
			ChangePercent: 0,
			LowStock:      lowStock,
		},
	}, nil
}

func (s *Service) ProductionState(ctx context.Context, tenantID int64) (*ProductionState, error) {
	pending, err := s.production.CountByStatus(ctx, tenantID, domain.ProduccionPendiente)
	if err != nil {
		return nil, err
	}
	inProgress, err := s.production.CountByStatus(ctx, tenantID, domain.ProduccionEnProceso)
	if err != nil {
		return nil, err
	}
	completed, err := s.production.CountByStatus(ctx, tenantID, domain.ProduccionTerminado)
	if err != nil {
		return nil, err
	}
	overdue, err := s.production.CountOverdue(ctx, tenantID, repository.Day(s.now()))
	if err != nil {
		return nil, err
	}

	return &ProductionState{
		Pending:    pending,
		InProgress: inProgress,
		Completed:  completed,
		Overdue:    overdue,
	}, nil
}

func (s *Service) ClientStats(ctx context.Context, tenantID int64) (*ClientStats, error) {
	today := repository.Day(s.now())
	monthStart := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC)

	total, err := s.clients.CountAll(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	newThisMonth, err := s.clients.CountCreatedBetween(ctx, tenantID, monthStart, today)
	if err != nil {
		return nil, err
	}
	active, err := s.clients.CountWithOrdersSince(ctx, tenantID, today.AddDate(0, 0, -activeClientWindow))
	if err != nil {
		return nil, err
	}

	return &ClientStats{
		Total:        total,
		NewThisMonth: newThisMonth,
		Active:       active,
		Inactive:     total - active,
	}, nil
}

func (s *Service) ContractStats(ctx context.Context, tenantID int64) (*ContractStats, error) {
	totals, err := s.contracts.ActiveAggregate(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	expiring, err := s.contracts.CountExpiringWithin(ctx, tenantID, repository.Day(s.now()), contractExpiryWindow)
	if err != nil {
		return nil, err
	}

	return &ContractStats{
		TotalValue:      totals.TotalValue,
		ActiveContracts: totals.Count,
		PendingPayments: totals.PendingBalance,
		ExpiringSoon:    expiring,
	}, nil
}

func (s *Service) TopProducts(ctx context.Context, tenantID int64) ([]TopProduct, error) {
	rows, err := s.orders.TopProducts(ctx, tenantID, topProductsLimit)
	if err != nil {
		return nil, err
	}

	products := make([]TopProduct, 0, len(rows))
	for _, row := range rows {
		products = append(products, TopProduct{
			Name:     row.ProductName,
			Quantity: row.QuantitySold,
			Revenue:  row.Revenue,
		})
	}
	return products, nil
}

func (s *Service) RecentOrders(ctx context.Context, tenantID int64) ([]RecentOrder, error) {
	orders, err := s.orders.Recent(ctx, tenantID, recentOrdersLimit)
	if err != nil {
		return nil, err
	}

	recent := make([]RecentOrder, 0, len(orders))
	for _, order := range orders {
		recent = append(recent, RecentOrder{
			Code:        order.OrderNumber,
			Client:      clientName(order.Client),
			Description: orderDescription(order),
			Amount:      order.Total,
			Status:      string(order.Status),
		})
	}
	return recent, nil
}

func (s *Service) TodayDeliveries(ctx context.Context, tenantID int64) (*TodayDeliveries, error) {
	today := repository.Day(s.now())
	orders, err := s.production.ListEstimatedOn(ctx, tenantID, today, todayDeliveriesLimit)
	if err != nil {
		return nil, err
	}

	deliveries := make([]DeliveryItem, 0, len(orders))
	for _, order := range orders {
		description := order.Description
		if description == "" {
			description = "Orden de producción"
		}
		deliveries = append(deliveries, DeliveryItem{
			Code:         order.OPNumber,
			Client:       clientName(order.Client),
			Description:  description,
			DeliveryDate: order.EstimatedDate.Format("2006-01-02"),
			Status:       string(order.Status),
		})
	}

	return &TodayDeliveries{
		Total:      len(deliveries),
		Message:    fmt.Sprintf("%d pedidos listos para entregar", len(deliveries)),
		Note:       "Todos los pedidos están listos para ser entregados hoy",
		Deliveries: deliveries,
	}, nil
}

// Alerts builds the three alert groups for the requested window. Any
// filter other than hoy, semana or mes falls back to semana.
func (s *Service) Alerts(ctx context.Context, tenantID int64, filter string) (*Alerts, error) {
	today := repository.Day(s.now())

	var end time.Time
	switch filter {
	case "hoy":
		end = today
	case "mes":
		end = today.AddDate(0, 0, 30)
	case "semana":
		end = today.AddDate(0, 0, 7)
	default:
		filter = "semana"
		end = today.AddDate(0, 0, 7)
	}

	stock, err := s.stockAlerts(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	// a missing or failing maintenance store degrades to an empty group,
	// the rest of the feed still loads
	maintenance := s.maintenanceAlerts(ctx, tenantID, today, end)

	deliveries, err := s.deliveryAlerts(ctx, tenantID, today, end)
	if err != nil {
		return nil, err
	}

	return &Alerts{
		Total:        len(stock) + len(maintenance) + len(deliveries),
		Filter:       filter,
		Stock:        StockAlertGroup{Total: len(stock), Alerts: capStock(stock)},
		Maintenance:  MaintenanceAlertGroup{Total: len(maintenance), Alerts: capMaintenance(maintenance)},
		UrgentOrders: DeliveryAlertGroup{Total: len(deliveries), Alerts: capDeliveries(deliveries)},
	}, nil
}

func (s *Service) Summary(ctx context.Context, tenantID int64) (*Summary, error) {
	panel, err := s.QuickPanel(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	production, err := s.ProductionState(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	clients, err := s.ClientStats(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	contracts, err := s.ContractStats(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	products, err := s.TopProducts(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	recent, err := s.RecentOrders(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	deliveries, err := s.TodayDeliveries(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	return &Summary{
		QuickPanel:      panel,
		ProductionState: production,
		Clients:         clients,
		Contracts:       contracts,
		TopProducts:     products,
		RecentOrders:    recent,
		TodayDeliveries: deliveries,
	}, nil
}

func (s *Service) stockAlerts(ctx context.Context, tenantID int64) ([]StockAlert, error) {
	items, err := s.inventory.ListLowStock(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	alerts := make([]StockAlert, 0, len(items))
	for _, item := range items {
		severity, color := stockSeverity(item.StockAvailable, item.StockMinimum)
		alerts = append(alerts, StockAlert{
			Name:         item.ProductName,
			StockCurrent: item.StockAvailable,
			StockMinimum: item.StockMinimum,
			Category:     item.Category.Display(),
			Severity:     severity,
			Color:        color,
		})
	}
	return alerts, nil
}

func (s *Service) maintenanceAlerts(ctx context.Context, tenantID int64, today, end time.Time) []MaintenanceAlert {
	if s.maintenance == nil {
		return nil
	}

	rows, err := s.maintenance.ListScheduledBetween(ctx, tenantID, today, end)
	if err != nil {
		logrus.WithError(err).Warn("dashboard: skipping maintenance alerts")
		return nil
	}

	alerts := make([]MaintenanceAlert, 0, len(rows))
	for _, m := range rows {
		daysLeft := daysBetween(today, repository.Day(m.NextMaintenanceDate))
		severity, color, statusText := maintenanceSeverity(daysLeft)

		name := ""
		if m.Asset != nil {
			name = m.Asset.Name
		}
		alerts = append(alerts, MaintenanceAlert{
			Name:          name,
			Type:          m.MaintenanceType.Display(),
			ScheduledDate: m.NextMaintenanceDate.Format("02/01/2006"),
			DaysLeft:      daysLeft,
			StatusText:    statusText,
			Severity:      severity,
			Color:         color,
		})
	}
	return alerts
}

func (s *Service) deliveryAlerts(ctx context.Context, tenantID int64, today, end time.Time) ([]DeliveryAlert, error) {
	orders, err := s.production.ListPendingByEstimatedRange(ctx, tenantID, today, end)
	if err != nil {
		return nil, err
	}

	alerts := make([]DeliveryAlert, 0, len(orders))
	for _, order := range orders {
		daysLeft := daysBetween(today, repository.Day(order.EstimatedDate))
		severity, color, status := deliverySeverity(daysLeft, order)

		alerts = append(alerts, DeliveryAlert{
			Code:         order.OPNumber,
			Client:       clientName(order.Client),
			DeliveryDate: order.EstimatedDate.Format("02/01/2006"),
			DaysLeft:     daysLeft,
			Status:       status,
			Description:  order.Description,
			Severity:     severity,
			Color:        color,
		})
	}
	return alerts, nil
}

// stockSeverity grades an item by how far below its minimum it sits. At or
// under half the minimum is critical; a zero minimum counts as critical
// because any shortage there is absolute.
func stockSeverity(available, minimum int) (severity, color string) {
	pct := 0.0
	if minimum > 0 {
		pct = float64(available) / float64(minimum) * 100
	}

	switch {
	case pct <= 50:
		return SeverityCritical, ColorRed
	case pct <= 100:
		return SeverityWarning, ColorOrange
	default:
		return SeverityNormal, ColorYellow
	}
}

func maintenanceSeverity(daysLeft int) (severity, color, statusText string) {
	switch {
	case daysLeft <= 1:
		statusText = "Mañana"
		if daysLeft == 0 {
			statusText = "Hoy"
		}
		return SeverityCritical, ColorRed, statusText
	case daysLeft <= 3:
		return SeverityWarning, ColorOrange, fmt.Sprintf("%d días", daysLeft)
	default:
		return SeverityNormal, ColorYellow, fmt.Sprintf("%d días", daysLeft)
	}
}

func deliverySeverity(daysLeft int, order domain.ProductionOrder) (severity, color, status string) {
	inProgress := order.Status == domain.ProduccionEnProceso
	switch {
	case daysLeft <= 1:
		status = "Listo para entrega"
		if inProgress {
			status = "En producción"
		}
		return SeverityCritical, ColorRed, status
	case daysLeft <= 3:
		status = "Pendiente de aprobación"
		if inProgress {
			status = "En producción"
		}
		return SeverityWarning, ColorOrange, status
	default:
		return SeverityNormal, ColorGreen, order.Status.Display()
	}
}

func capStock(alerts []StockAlert) []StockAlert {
	if len(alerts) > alertsPerGroupLimit {
		return alerts[:alertsPerGroupLimit]
	}
	return alerts
}

func capMaintenance(alerts []MaintenanceAlert) []MaintenanceAlert {
	if len(alerts) > alertsPerGroupLimit {
		return alerts[:alertsPerGroupLimit]
	}
	return alerts
}

func capDeliveries(alerts []DeliveryAlert) []DeliveryAlert {
	if len(alerts) > alertsPerGroupLimit {
		return alerts[:alertsPerGroupLimit]
	}
	return alerts
}

func changePercent(current, previous float64) float64 {
	if previous <= 0 {
		return 0
	}
	return math.Round((current-previous)/previous*1000) / 10
}

func daysBetween(from, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}

func clientName(c *domain.Client) string {
	if c == nil {
		return "Sin cliente"
	}
	return c.FullName()
}

func orderDescription(order domain.Order) string {
	if order.Description != "" {
		return order.Description
	}
	return fmt.Sprintf("%s • %s", clientName(order.Client), order.DocumentType.Display())
}
