package repository

import (
	"time"

	"gorm.io/gorm"
)

// TenantScope is the single place tenant filtering happens. Every query in
// this package goes through it; an unscoped query would leak data across
// studio accounts.
func TenantScope(tenantID int64) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("tenant_id = ?", tenantID)
	}
}

// DateRange filters a date column to [start, end] inclusive, comparing by
// calendar day: end is extended to the end of its day so DATETIME columns
// match the whole closing day.
func DateRange(column string, start, end time.Time) func(*gorm.DB) *gorm.DB {
	endOfDay := Day(end).AddDate(0, 0, 1)
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(column+" >= ? AND "+column+" < ?", Day(start), endOfDay)
	}
}

// Day truncates t to midnight UTC.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
