package repository

import (
	"context"
	"time"

	"arteideas/internal/domain"

	"gorm.io/gorm"
)

type ProductionRepository struct {
	db *gorm.DB
}

func NewProductionRepository(db *gorm.DB) *ProductionRepository {
	return &ProductionRepository{db: db}
}

// ListByEstimatedRange returns production orders whose estimated date falls
// inside the range, newest first.
func (r *ProductionRepository) ListByEstimatedRange(ctx context.Context, tenantID int64, start, end time.Time) ([]domain.ProductionOrder, error) {
	var orders []domain.ProductionOrder
	err := r.db.WithContext(ctx).
		Scopes(TenantScope(tenantID), DateRange("estimated_date", start, end)).
		Preload("Order").
		Preload("Client").
		Order("estimated_date DESC, id DESC").
		Find(&orders).Error
	return orders, err
}

// ListPendingByEstimatedRange returns not-yet-finished orders due inside
// the range, soonest first. Feeds the urgent-deliveries alerts.
func (r *ProductionRepository) ListPendingByEstimatedRange(ctx context.Context, tenantID int64, start, end time.Time) ([]domain.ProductionOrder, error) {
	var orders []domain.ProductionOrder
	err := r.db.WithContext(ctx).
		Scopes(TenantScope(tenantID), DateRange("estimated_date", start, end)).
		Where("status IN ?", []string{string(domain.ProduccionPendiente), string(domain.ProduccionEnProceso)}).
		Preload("Order").
		Preload("Client").
		Order("estimated_date").
		Find(&orders).Error
	return orders, err
}

// ListEstimatedOn returns up to limit orders due on the given day.
func (r *ProductionRepository) ListEstimatedOn(ctx context.Context, tenantID int64, day time.Time, limit int) ([]domain.ProductionOrder, error) {
	var orders []domain.ProductionOrder
	err := r.db.WithContext(ctx).
		Scopes(TenantScope(tenantID), DateRange("estimated_date", day, day)).
		Preload("Order").
		Preload("Client").
		Order("estimated_date").
		Limit(limit).
		Find(&orders).Error
	return orders, err
}

// CountByStatus counts the tenant's production orders in one state.
func (r *ProductionRepository) CountByStatus(ctx context.Context, tenantID int64, status domain.ProductionStatus) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&domain.ProductionOrder{}).
		Scopes(TenantScope(tenantID)).
		Where("status = ?", status).
		Count(&n).Error
	return n, err
}

// CountPending counts orders still waiting or in progress.
func (r *ProductionRepository) CountPending(ctx context.Context, tenantID int64) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&domain.ProductionOrder{}).
		Scopes(TenantScope(tenantID)).
		Where("status IN ?", []string{string(domain.ProduccionPendiente), string(domain.ProduccionEnProceso)}).
		Count(&n).Error
	return n, err
}

// CountOverdue counts unfinished orders whose estimated date is already
// past.
func (r *ProductionRepository) CountOverdue(ctx context.Context, tenantID int64, today time.Time) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&domain.ProductionOrder{}).
		Scopes(TenantScope(tenantID)).
		Where("estimated_date < ?", Day(today)).
		Where("status IN ?", []string{string(domain.ProduccionPendiente), string(domain.ProduccionEnProceso)}).
		Count(&n).Error
	return n, err
}

// CountStartedBetween counts orders whose real start date falls inside
// [start, end). Feeds the week-over-week "worked" comparison.
func (r *ProductionRepository) CountStartedBetween(ctx context.Context, tenantID int64, start, end time.Time) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&domain.ProductionOrder{}).
		Scopes(TenantScope(tenantID)).
		Where("real_start_date >= ? AND real_start_date < ?", Day(start), Day(end)).
		Count(&n).Error
	return n, err
}
