package repository

import (
	"context"

	"arteideas/internal/domain"

	"gorm.io/gorm"
)

type InventoryRepository struct {
	db *gorm.DB
}

func NewInventoryRepository(db *gorm.DB) *InventoryRepository {
	return &InventoryRepository{db: db}
}

// ListActive returns every active item across all ten categories.
func (r *InventoryRepository) ListActive(ctx context.Context, tenantID int64) ([]domain.InventoryItem, error) {
	var items []domain.InventoryItem
	err := r.db.WithContext(ctx).
		Scopes(TenantScope(tenantID)).
		Where("is_active = ?", true).
		Order("category, product_name").
		Find(&items).Error
	return items, err
}

// ListLowStock returns active items at or below their minimum, lowest stock
// first.
func (r *InventoryRepository) ListLowStock(ctx context.Context, tenantID int64) ([]domain.InventoryItem, error) {
	var items []domain.InventoryItem
	err := r.db.WithContext(ctx).
		Scopes(TenantScope(tenantID)).
		Where("is_active = ? AND stock_available <= stock_minimum", true).
		Order("stock_available").
		Find(&items).Error
	return items, err
}

// TotalSaleValue sums sale_price * stock over all active items.
func (r *InventoryRepository) TotalSaleValue(ctx context.Context, tenantID int64) (float64, error) {
	var total *float64
	err := r.db.WithContext(ctx).Model(&domain.InventoryItem{}).
		Scopes(TenantScope(tenantID)).
		Where("is_active = ?", true).
		Select("SUM(sale_price * stock_available)").
		Scan(&total).Error
	if err != nil || total == nil {
		return 0, err
	}
	return *total, nil
}

// CountLowStock counts active items at or below their minimum.
func (r *InventoryRepository) CountLowStock(ctx context.Context, tenantID int64) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&domain.InventoryItem{}).
		Scopes(TenantScope(tenantID)).
		Where("is_active = ? AND stock_available <= stock_minimum", true).
		Count(&n).Error
	return n, err
}
