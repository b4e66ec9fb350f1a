package repository

import (
	"context"
	"time"

	"arteideas/internal/domain"

	"gorm.io/gorm"
)

type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// ListByDateRange returns the tenant's orders with order_date inside the
// range, newest first, with the client preloaded for display names.
func (r *OrderRepository) ListByDateRange(ctx context.Context, tenantID int64, start, end time.Time) ([]domain.Order, error) {
	var orders []domain.Order
	err := r.db.WithContext(ctx).
		Scopes(TenantScope(tenantID), DateRange("order_date", start, end)).
		Preload("Client").
		Order("order_date DESC, id DESC").
		Find(&orders).Error
	return orders, err
}

// RevenueOnDay sums totals of delivered/completed orders dated on the given
// calendar day.
func (r *OrderRepository) RevenueOnDay(ctx context.Context, tenantID int64, day time.Time) (float64, error) {
	var total *float64
	err := r.db.WithContext(ctx).Model(&domain.Order{}).
		Scopes(TenantScope(tenantID), DateRange("order_date", day, day)).
		Where("status IN ?", []string{string(domain.OrderCompletado), string(domain.OrderEntregado)}).
		Select("SUM(total)").
		Scan(&total).Error
	if err != nil || total == nil {
		return 0, err
	}
	return *total, nil
}

// CountActive counts orders in a non-terminal status, optionally narrowed
// to a document-type subset.
func (r *OrderRepository) CountActive(ctx context.Context, tenantID int64, docTypes ...domain.DocumentType) (int64, error) {
	q := r.db.WithContext(ctx).Model(&domain.Order{}).
		Scopes(TenantScope(tenantID)).
		Where("status IN ?", []string{
			string(domain.OrderPendiente),
			string(domain.OrderEnProceso),
			string(domain.OrderConfirmado),
		})
	if len(docTypes) > 0 {
		q = q.Where("document_type IN ?", docTypes)
	}
	var n int64
	err := q.Count(&n).Error
	return n, err
}

// CountByDateRange counts orders dated inside [start, end].
func (r *OrderRepository) CountByDateRange(ctx context.Context, tenantID int64, start, end time.Time) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&domain.Order{}).
		Scopes(TenantScope(tenantID), DateRange("order_date", start, end)).
		Count(&n).Error
	return n, err
}

// Recent returns the latest n orders by order date.
func (r *OrderRepository) Recent(ctx context.Context, tenantID int64, n int) ([]domain.Order, error) {
	var orders []domain.Order
	err := r.db.WithContext(ctx).
		Scopes(TenantScope(tenantID)).
		Preload("Client").
		Order("order_date DESC, id DESC").
		Limit(n).
		Find(&orders).Error
	return orders, err
}

// ClientOrderStats holds the per-client order rollup used by the clients
// report detail.
type ClientOrderStats struct {
	ClientID   int64
	OrderCount int64
	TotalSales float64
}

// StatsByClient returns order count and sales total grouped by client.
func (r *OrderRepository) StatsByClient(ctx context.Context, tenantID int64) (map[int64]ClientOrderStats, error) {
	var rows []ClientOrderStats
	err := r.db.WithContext(ctx).Model(&domain.Order{}).
		Scopes(TenantScope(tenantID)).
		Select("client_id AS client_id, COUNT(*) AS order_count, COALESCE(SUM(total), 0) AS total_sales").
		Group("client_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	stats := make(map[int64]ClientOrderStats, len(rows))
	for _, row := range rows {
		stats[row.ClientID] = row
	}
	return stats, nil
}

// TopProduct is one entry of the best-sellers ranking.
type TopProduct struct {
	ProductName  string
	QuantitySold int64
	Revenue      float64
}

// TopProducts ranks item names by units sold across delivered/completed
// orders.
func (r *OrderRepository) TopProducts(ctx context.Context, tenantID int64, limit int) ([]TopProduct, error) {
	var rows []TopProduct
	err := r.db.WithContext(ctx).Model(&domain.OrderItem{}).
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Where("order_items.tenant_id = ?", tenantID).
		Where("orders.status IN ?", []string{string(domain.OrderCompletado), string(domain.OrderEntregado)}).
		Select("order_items.product_name AS product_name, SUM(order_items.quantity) AS quantity_sold, COALESCE(SUM(order_items.subtotal), 0) AS revenue").
		Group("order_items.product_name").
		Order("quantity_sold DESC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}

// ListPaymentsByDateRange returns collections registered inside the range.
// Tenant scoping goes through the parent order.
func (r *OrderRepository) ListPaymentsByDateRange(ctx context.Context, tenantID int64, start, end time.Time) ([]domain.OrderPayment, error) {
	var payments []domain.OrderPayment
	err := r.db.WithContext(ctx).Model(&domain.OrderPayment{}).
		Joins("JOIN orders ON orders.id = order_payments.order_id").
		Where("orders.tenant_id = ?", tenantID).
		Scopes(DateRange("payment_date", start, end)).
		Preload("Order").
		Preload("Order.Client").
		Order("payment_date DESC, order_payments.id DESC").
		Find(&payments).Error
	return payments, err
}
