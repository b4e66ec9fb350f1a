package repository

import (
	"context"
	"time"

	"arteideas/internal/domain"

	"gorm.io/gorm"
)

type ClientRepository struct {
	db *gorm.DB
}

func NewClientRepository(db *gorm.DB) *ClientRepository {
	return &ClientRepository{db: db}
}

// ListActive returns the tenant's active clients ordered by last name.
func (r *ClientRepository) ListActive(ctx context.Context, tenantID int64) ([]domain.Client, error) {
	var clients []domain.Client
	err := r.db.WithContext(ctx).
		Scopes(TenantScope(tenantID)).
		Where("is_active = ?", true).
		Order("last_names, first_names").
		Find(&clients).Error
	return clients, err
}

// CountAll counts every client of the tenant, active or not.
func (r *ClientRepository) CountAll(ctx context.Context, tenantID int64) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&domain.Client{}).
		Scopes(TenantScope(tenantID)).
		Count(&n).Error
	return n, err
}

// CountCreatedBetween counts clients registered inside [start, end].
func (r *ClientRepository) CountCreatedBetween(ctx context.Context, tenantID int64, start, end time.Time) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&domain.Client{}).
		Scopes(TenantScope(tenantID), DateRange("created_at", start, end)).
		Count(&n).Error
	return n, err
}

// CountWithOrdersSince counts distinct clients with at least one order
// dated on or after the cutoff.
func (r *ClientRepository) CountWithOrdersSince(ctx context.Context, tenantID int64, since time.Time) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&domain.Order{}).
		Scopes(TenantScope(tenantID)).
		Where("order_date >= ?", Day(since)).
		Distinct("client_id").
		Count(&n).Error
	return n, err
}
