package repository

import (
	"context"
	"time"

	"arteideas/internal/domain"

	"gorm.io/gorm"
)

type ContractRepository struct {
	db *gorm.DB
}

func NewContractRepository(db *gorm.DB) *ContractRepository {
	return &ContractRepository{db: db}
}

// ListByStartRange returns contracts whose start date falls inside the
// range, newest first.
func (r *ContractRepository) ListByStartRange(ctx context.Context, tenantID int64, start, end time.Time) ([]domain.Contract, error) {
	var contracts []domain.Contract
	err := r.db.WithContext(ctx).
		Scopes(TenantScope(tenantID), DateRange("start_date", start, end)).
		Preload("Client").
		Order("start_date DESC, id DESC").
		Find(&contracts).Error
	return contracts, err
}

// ActiveTotals is the rollup over the tenant's active contracts.
type ActiveTotals struct {
	TotalValue     float64
	PendingBalance float64
	Count          int64
}

// ActiveAggregate sums value and pending balance over active contracts.
func (r *ContractRepository) ActiveAggregate(ctx context.Context, tenantID int64) (ActiveTotals, error) {
	var row struct {
		TotalValue     *float64
		PendingBalance *float64
		Count          int64
	}
	err := r.db.WithContext(ctx).Model(&domain.Contract{}).
		Scopes(TenantScope(tenantID)).
		Where("status = ?", domain.ContratoActivo).
		Select("SUM(total_amount) AS total_value, SUM(pending_balance) AS pending_balance, COUNT(*) AS count").
		Scan(&row).Error
	if err != nil {
		return ActiveTotals{}, err
	}

	totals := ActiveTotals{Count: row.Count}
	if row.TotalValue != nil {
		totals.TotalValue = *row.TotalValue
	}
	if row.PendingBalance != nil {
		totals.PendingBalance = *row.PendingBalance
	}
	return totals, nil
}

// CountExpiringWithin counts active contracts ending between today and
// today+days.
func (r *ContractRepository) CountExpiringWithin(ctx context.Context, tenantID int64, today time.Time, days int) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&domain.Contract{}).
		Scopes(TenantScope(tenantID)).
		Where("status = ?", domain.ContratoActivo).
		Scopes(DateRange("end_date", today, today.AddDate(0, 0, days))).
		Count(&n).Error
	return n, err
}
