package domain

import (
	"strings"
	"time"
)

type ClientType string

const (
	ClientParticular ClientType = "particular"
	ClientColegio    ClientType = "colegio"
	ClientEmpresa    ClientType = "empresa"
)

func (t ClientType) Display() string {
	switch t {
	case ClientParticular:
		return "Particular"
	case ClientColegio:
		return "Colegio"
	case ClientEmpresa:
		return "Empresa"
	default:
		return string(t)
	}
}

type Client struct {
	ID         int64      `gorm:"column:id;primaryKey" json:"id"`
	TenantID   int64      `gorm:"column:tenant_id;index" json:"tenant_id"`
	ClientType ClientType `gorm:"column:client_type" json:"client_type"`
	FirstNames string     `gorm:"column:first_names" json:"first_names"`
	LastNames  string     `gorm:"column:last_names" json:"last_names"`
	Company    string     `gorm:"column:company" json:"company"`
	Email      string     `gorm:"column:email" json:"email"`
	Phone      string     `gorm:"column:phone" json:"phone"`
	DNI        string     `gorm:"column:dni" json:"dni"`
	IsActive   bool       `gorm:"column:is_active;default:true" json:"is_active"`
	CreatedAt  time.Time  `gorm:"column:created_at" json:"created_at"`
	UpdatedAt  time.Time  `gorm:"column:updated_at" json:"updated_at"`
}

func (Client) TableName() string { return "clients" }

// FullName returns the display name: company name for companies and
// schools, "names lastnames" for individuals.
func (c Client) FullName() string {
	if c.ClientType != ClientParticular && c.Company != "" {
		return c.Company
	}
	full := strings.TrimSpace(c.FirstNames + " " + c.LastNames)
	if full == "" {
		return c.Company
	}
	return full
}
