package dashboard

import (
	"context"
	"time"

	"arteideas/internal/domain"
	"arteideas/internal/repository"
)

type OrderReader interface {
	RevenueOnDay(ctx context.Context, tenantID int64, day time.Time) (float64, error)
	CountActive(ctx context.Context, tenantID int64, docTypes ...domain.DocumentType) (int64, error)
	CountByDateRange(ctx context.Context, tenantID int64, start, end time.Time) (int64, error)
	Recent(ctx context.Context, tenantID int64, n int) ([]domain.Order, error)
	TopProducts(ctx context.Context, tenantID int64, limit int) ([]repository.TopProduct, error)
}

type ProductionReader interface {
	CountByStatus(ctx context.Context, tenantID int64, status domain.ProductionStatus) (int64, error)
	CountPending(ctx context.Context, tenantID int64) (int64, error)
	CountOverdue(ctx context.Context, tenantID int64, today time.Time) (int64, error)
	CountStartedBetween(ctx context.Context, tenantID int64, start, end time.Time) (int64, error)
	ListEstimatedOn(ctx context.Context, tenantID int64, day time.Time, limit int) ([]domain.ProductionOrder, error)
	ListPendingByEstimatedRange(ctx context.Context, tenantID int64, start, end time.Time) ([]domain.ProductionOrder, error)
}

type InventoryReader interface {
	TotalSaleValue(ctx context.Context, tenantID int64) (float64, error)
	CountLowStock(ctx context.Context, tenantID int64) (int64, error)
	ListLowStock(ctx context.Context, tenantID int64) ([]domain.InventoryItem, error)
}

type ClientReader interface {
	CountAll(ctx context.Context, tenantID int64) (int64, error)
	CountCreatedBetween(ctx context.Context, tenantID int64, start, end time.Time) (int64, error)
	CountWithOrdersSince(ctx context.Context, tenantID int64, since time.Time) (int64, error)
}

type ContractReader interface {
	ActiveAggregate(ctx context.Context, tenantID int64) (repository.ActiveTotals, error)
	CountExpiringWithin(ctx context.Context, tenantID int64, today time.Time, days int) (int64, error)
}

type MaintenanceReader interface {
	ListScheduledBetween(ctx context.Context, tenantID int64, start, end time.Time) ([]domain.Maintenance, error)
}
