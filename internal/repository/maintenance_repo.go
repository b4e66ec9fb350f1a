package repository

import (
	"context"
	"time"

	"arteideas/internal/domain"

	"gorm.io/gorm"
)

type MaintenanceRepository struct {
	db *gorm.DB
}

func NewMaintenanceRepository(db *gorm.DB) *MaintenanceRepository {
	return &MaintenanceRepository{db: db}
}

// ListScheduledBetween returns scheduled maintenances due inside the range,
// soonest first. Tenant scoping goes through the owning asset.
func (r *MaintenanceRepository) ListScheduledBetween(ctx context.Context, tenantID int64, start, end time.Time) ([]domain.Maintenance, error) {
	var rows []domain.Maintenance
	err := r.db.WithContext(ctx).Model(&domain.Maintenance{}).
		Joins("JOIN assets ON assets.id = maintenances.asset_id").
		Where("assets.tenant_id = ?", tenantID).
		Where("maintenances.status = ?", domain.MaintenanceProgramado).
		Scopes(DateRange("next_maintenance_date", start, end)).
		Preload("Asset").
		Order("next_maintenance_date").
		Find(&rows).Error
	return rows, err
}
