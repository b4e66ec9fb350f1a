package domain

import "time"

// Asset is a piece of equipment or furniture of the studio. The report
// pipeline only touches assets through maintenance alerts.
type Asset struct {
	ID        int64     `gorm:"column:id;primaryKey" json:"id"`
	TenantID  int64     `gorm:"column:tenant_id;index" json:"tenant_id"`
	Name      string    `gorm:"column:name" json:"name"`
	Category  string    `gorm:"column:category" json:"category"`
	Supplier  string    `gorm:"column:supplier" json:"supplier"`
	Status    string    `gorm:"column:status" json:"status"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

func (Asset) TableName() string { return "assets" }

type MaintenanceType string

const (
	MantenimientoPreventivo MaintenanceType = "preventivo"
	MantenimientoCorrectivo MaintenanceType = "correctivo"
)

func (t MaintenanceType) Display() string {
	switch t {
	case MantenimientoPreventivo:
		return "Preventivo"
	case MantenimientoCorrectivo:
		return "Correctivo"
	default:
		return string(t)
	}
}

type Maintenance struct {
	ID                  int64           `gorm:"column:id;primaryKey" json:"id"`
	AssetID             int64           `gorm:"column:asset_id;index" json:"asset_id"`
	Asset               *Asset          `gorm:"foreignKey:AssetID" json:"asset,omitempty"`
	MaintenanceType     MaintenanceType `gorm:"column:maintenance_type" json:"maintenance_type"`
	Status              string          `gorm:"column:status" json:"status"`
	NextMaintenanceDate time.Time       `gorm:"column:next_maintenance_date;index" json:"next_maintenance_date"`
	CreatedAt           time.Time       `gorm:"column:created_at" json:"created_at"`
}

func (Maintenance) TableName() string { return "maintenances" }

const MaintenanceProgramado = "programado"
