package domain

import "time"

// Tenant is one isolated studio account. Every business table carries a
// tenant_id and every query is scoped to exactly one tenant.
type Tenant struct {
	ID        int64     `gorm:"column:id;primaryKey" json:"id"`
	Name      string    `gorm:"column:name" json:"name"`
	RUC       string    `gorm:"column:ruc" json:"ruc"`
	IsActive  bool      `gorm:"column:is_active;default:true" json:"is_active"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

func (Tenant) TableName() string { return "tenants" }

type UserRole string

const (
	RoleAdmin      UserRole = "admin"
	RoleOperator   UserRole = "operator"
	RoleSuperAdmin UserRole = "super_admin"
)

type User struct {
	ID           int64     `gorm:"column:id;primaryKey" json:"id"`
	TenantID     int64     `gorm:"column:tenant_id;index" json:"tenant_id"`
	Email        string    `gorm:"column:email;uniqueIndex" json:"email"`
	PasswordHash string    `gorm:"column:password_hash" json:"-"`
	Name         string    `gorm:"column:name" json:"name"`
	Role         UserRole  `gorm:"column:role" json:"role"`
	CreatedAt    time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (User) TableName() string { return "users" }
