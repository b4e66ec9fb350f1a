package reports

import (
	"context"
	"sort"
	"time"

	"arteideas/internal/repository"
)

// InventoryAggregator walks every item across the ten catalog categories.
// The date range is accepted for interface uniformity but inventory is a
// point-in-time snapshot.
type InventoryAggregator struct {
	inventory *repository.InventoryRepository
}

func NewInventoryAggregator(inventory *repository.InventoryRepository) *InventoryAggregator {
	return &InventoryAggregator{inventory: inventory}
}

func (a *InventoryAggregator) Metrics(ctx context.Context, tenantID int64, _, _ time.Time) (Metrics, error) {
	items, err := a.inventory.ListActive(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	var totalStock, bajoStock int
	var valorInventario float64
	for _, item := range items {
		totalStock += item.StockAvailable
		valorInventario += item.TotalCost()
		if item.LowStock() {
			bajoStock++
		}
	}

	var m Metrics
	m.Add("total_productos", len(items))
	m.Add("total_stock", totalStock)
	m.Add("total_valor_inventario", round2(valorInventario))
	m.Add("productos_bajo_stock", bajoStock)
	m.Add("productos_ok_stock", len(items)-bajoStock)
	return m, nil
}

func (a *InventoryAggregator) Detail(ctx context.Context, tenantID int64, _, _ time.Time) (Detail, error) {
	items, err := a.inventory.ListActive(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	// low-stock items first, then alphabetically
	sort.SliceStable(items, func(i, j int) bool {
		li, lj := items[i].LowStock(), items[j].LowStock()
		if li != lj {
			return li
		}
		return items[i].ProductName < items[j].ProductName
	})

	detail := make(Detail, 0, len(items))
	for _, item := range items {
		var row Row
		row.Set("id", item.ID)
		row.Set("categoria", item.Category.Display())
		row.Set("nombre", item.ProductName)
		row.Set("codigo", item.ProductCode)
		row.Set("stock_disponible", item.StockAvailable)
		row.Set("stock_minimo", item.StockMinimum)
		row.Set("costo_unitario", item.UnitCost)
		row.Set("precio_venta", item.SalePrice)
		row.Set("valor_total", round2(item.TotalCost()))
		row.Set("alerta_stock", item.LowStock())
		row.Set("proveedor", item.Supplier)
		detail = append(detail, row)
	}
	return detail, nil
}
