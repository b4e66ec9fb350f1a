package domain

import "time"

// InventoryCategory is one of the ten fixed product catalogs of the framing
// business. All catalogs share a single table with a category column; the
// set stays closed.
type InventoryCategory string

const (
	CatMolduraListon      InventoryCategory = "moldura_liston"
	CatMolduraPrearmada   InventoryCategory = "moldura_prearmada"
	CatVidrioTapaMDF      InventoryCategory = "vidrio_tapa_mdf"
	CatPaspartu           InventoryCategory = "paspartu"
	CatMinilab            InventoryCategory = "minilab"
	CatCuadro             InventoryCategory = "cuadro"
	CatAnuario            InventoryCategory = "anuario"
	CatCorteLaser         InventoryCategory = "corte_laser"
	CatMarcoAccesorio     InventoryCategory = "marco_accesorio"
	CatHerramientaGeneral InventoryCategory = "herramienta_general"
)

// InventoryCategories lists every catalog in display order. Aggregations
// that "iterate all categories" range over this slice.
var InventoryCategories = []InventoryCategory{
	CatMolduraListon, CatMolduraPrearmada, CatVidrioTapaMDF, CatPaspartu,
	CatMinilab, CatCuadro, CatAnuario, CatCorteLaser, CatMarcoAccesorio,
	CatHerramientaGeneral,
}

func (c InventoryCategory) Display() string {
	switch c {
	case CatMolduraListon:
		return "Moldura Listón"
	case CatMolduraPrearmada:
		return "Moldura Prearmada"
	case CatVidrioTapaMDF:
		return "Vidrio/Tapa MDF"
	case CatPaspartu:
		return "Paspartú"
	case CatMinilab:
		return "Minilab"
	case CatCuadro:
		return "Cuadro"
	case CatAnuario:
		return "Anuario"
	case CatCorteLaser:
		return "Corte Láser"
	case CatMarcoAccesorio:
		return "Marco/Accesorio"
	case CatHerramientaGeneral:
		return "Herramienta General"
	default:
		return string(c)
	}
}

type InventoryItem struct {
	ID             int64             `gorm:"column:id;primaryKey" json:"id"`
	TenantID       int64             `gorm:"column:tenant_id;index" json:"tenant_id"`
	Category       InventoryCategory `gorm:"column:category;index" json:"category"`
	ProductName    string            `gorm:"column:product_name" json:"product_name"`
	ProductCode    string            `gorm:"column:product_code" json:"product_code"`
	StockAvailable int               `gorm:"column:stock_available" json:"stock_available"`
	StockMinimum   int               `gorm:"column:stock_minimum" json:"stock_minimum"`
	UnitCost       float64           `gorm:"column:unit_cost" json:"unit_cost"`
	SalePrice      float64           `gorm:"column:sale_price" json:"sale_price"`
	Supplier       string            `gorm:"column:supplier" json:"supplier"`
	Location       string            `gorm:"column:location" json:"location"`
	IsActive       bool              `gorm:"column:is_active;default:true" json:"is_active"`
	CreatedAt      time.Time         `gorm:"column:created_at" json:"created_at"`
	UpdatedAt      time.Time         `gorm:"column:updated_at" json:"updated_at"`
}

func (InventoryItem) TableName() string { return "inventory_items" }

// TotalCost is the extended cost of the stock on hand.
func (i InventoryItem) TotalCost() float64 {
	return i.UnitCost * float64(i.StockAvailable)
}

// LowStock reports whether the item is at or below its reorder point.
func (i InventoryItem) LowStock() bool {
	return i.StockAvailable <= i.StockMinimum
}
