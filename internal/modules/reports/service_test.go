package reports

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"arteideas/internal/domain"
	"arteideas/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"

	_ "modernc.org/sqlite"
)

/* ==================== SQLITE TEST DB ==================== */

func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(
		gormsqlite.New(gormsqlite.Config{DriverName: "sqlite", DSN: ":memory:"}),
		&gorm.Config{},
	)
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&domain.Tenant{},
		&domain.Client{},
		&domain.Order{},
		&domain.OrderItem{},
		&domain.OrderPayment{},
		&domain.InventoryItem{},
		&domain.ProductionOrder{},
		&domain.Contract{},
	))

	return db
}

func testService(db *gorm.DB, taxRate float64) *Service {
	orders := repository.NewOrderRepository(db)
	return NewService(
		NewSalesAggregator(orders),
		NewInventoryAggregator(repository.NewInventoryRepository(db)),
		NewProductionAggregator(repository.NewProductionRepository(db)),
		NewClientsAggregator(repository.NewClientRepository(db), orders),
		NewFinanceAggregator(orders, taxRate),
		NewContractsAggregator(repository.NewContractRepository(db)),
	)
}

var (
	rangeStart = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	rangeEnd   = time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC)
	inRange    = time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)
)

/* ==================== SALES ==================== */

func TestSalesMetrics(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	client := domain.Client{TenantID: 1, ClientType: domain.ClientParticular, FirstNames: "Ana", LastNames: "Rojas", IsActive: true}
	require.NoError(t, db.Create(&client).Error)

	orders := []domain.Order{
		{TenantID: 1, OrderNumber: "PED-0001", ClientID: client.ID, OrderDate: inRange, DocumentType: domain.DocNotaVenta, Status: domain.OrderCompletado, PaymentState: domain.PaymentPagado, Total: 100, PaidAmount: 100, Balance: 0},
		{TenantID: 1, OrderNumber: "PED-0002", ClientID: client.ID, OrderDate: inRange, DocumentType: domain.DocNotaVenta, Status: domain.OrderPendiente, PaymentState: domain.PaymentPendiente, Total: 50, PaidAmount: 0, Balance: 50},
		// other tenant, must not leak in
		{TenantID: 2, OrderNumber: "PED-9999", ClientID: client.ID, OrderDate: inRange, DocumentType: domain.DocNotaVenta, Status: domain.OrderCompletado, PaymentState: domain.PaymentPagado, Total: 1000, PaidAmount: 1000, Balance: 0},
		// outside the range
		{TenantID: 1, OrderNumber: "PED-0003", ClientID: client.ID, OrderDate: rangeEnd.AddDate(0, 1, 0), DocumentType: domain.DocNotaVenta, Status: domain.OrderCompletado, PaymentState: domain.PaymentPagado, Total: 999, PaidAmount: 999, Balance: 0},
	}
	for i := range orders {
		require.NoError(t, db.Create(&orders[i]).Error)
	}

	agg := NewSalesAggregator(repository.NewOrderRepository(db))
	m, err := agg.Metrics(ctx, 1, rangeStart, rangeEnd)
	require.NoError(t, err)

	assert.Equal(t, 150.0, m.Get("total_ventas"))
	assert.Equal(t, 2, m.Get("total_pedidos"))
	assert.Equal(t, 75.0, m.Get("promedio_venta"))
	assert.Equal(t, 50.0, m.Get("tasa_completitud"))
	assert.Equal(t, 100.0, m.Get("total_pagado"))
	assert.Equal(t, 50.0, m.Get("saldo_pendiente"))
}

func TestSalesMetricsEmptyRange(t *testing.T) {
	db := testDB(t)

	agg := NewSalesAggregator(repository.NewOrderRepository(db))
	m, err := agg.Metrics(context.Background(), 1, rangeStart, rangeEnd)
	require.NoError(t, err)

	assert.Equal(t, 0.0, m.Get("total_ventas"))
	assert.Equal(t, 0, m.Get("total_pedidos"))
	assert.Equal(t, 0.0, m.Get("promedio_venta"))
	assert.Equal(t, 0.0, m.Get("tasa_completitud"))
	assert.Equal(t, 0.0, m.Get("saldo_pendiente"))
}

func TestSalesDetailColumns(t *testing.T) {
	db := testDB(t)

	client := domain.Client{TenantID: 1, ClientType: domain.ClientColegio, Company: "I.E. San Martín", FirstNames: "Rosa", LastNames: "Fernández", IsActive: true}
	require.NoError(t, db.Create(&client).Error)
	order := domain.Order{TenantID: 1, OrderNumber: "PED-0001", ClientID: client.ID, OrderDate: inRange, DocumentType: domain.DocContrato, Status: domain.OrderEnProceso, PaymentState: domain.PaymentParcial, Total: 4500, PaidAmount: 2000, Balance: 2500}
	require.NoError(t, db.Create(&order).Error)

	agg := NewSalesAggregator(repository.NewOrderRepository(db))
	detail, err := agg.Detail(context.Background(), 1, rangeStart, rangeEnd)
	require.NoError(t, err)
	require.Len(t, detail, 1)

	row := detail[0]
	assert.Equal(t, []string{
		"id", "numero_pedido", "cliente", "fecha", "tipo_documento",
		"total", "pagado", "saldo", "estado", "estado_pago",
	}, row.Columns())
	// school clients surface as the institution, not the contact person
	assert.Equal(t, "I.E. San Martín", row.Get("cliente"))
	assert.Equal(t, "Contrato", row.Get("tipo_documento"))
	assert.Equal(t, "2026-01-15", row.Get("fecha"))
}

/* ==================== INVENTORY ==================== */

func TestInventoryDetailLowStockFirst(t *testing.T) {
	db := testDB(t)

	items := []domain.InventoryItem{
		{TenantID: 1, Category: domain.CatCuadro, ProductName: "Zeta", StockAvailable: 50, StockMinimum: 5, IsActive: true},
		{TenantID: 1, Category: domain.CatPaspartu, ProductName: "Beta", StockAvailable: 2, StockMinimum: 10, IsActive: true},
		{TenantID: 1, Category: domain.CatMinilab, ProductName: "Alfa", StockAvailable: 30, StockMinimum: 5, IsActive: true},
		{TenantID: 1, Category: domain.CatPaspartu, ProductName: "Ana", StockAvailable: 1, StockMinimum: 10, IsActive: true},
		{TenantID: 1, Category: domain.CatCuadro, ProductName: "Inactivo", StockAvailable: 0, StockMinimum: 10, IsActive: false},
	}
	for i := range items {
		require.NoError(t, db.Create(&items[i]).Error)
	}

	agg := NewInventoryAggregator(repository.NewInventoryRepository(db))
	detail, err := agg.Detail(context.Background(), 1, rangeStart, rangeEnd)
	require.NoError(t, err)
	require.Len(t, detail, 4)

	names := make([]string, 0, len(detail))
	for _, row := range detail {
		names = append(names, row.Get("nombre").(string))
	}
	assert.Equal(t, []string{"Ana", "Beta", "Alfa", "Zeta"}, names)
	assert.Equal(t, true, detail[0].Get("alerta_stock"))
	assert.Equal(t, false, detail[3].Get("alerta_stock"))
}

func TestInventoryMetrics(t *testing.T) {
	db := testDB(t)

	items := []domain.InventoryItem{
		{TenantID: 1, Category: domain.CatCuadro, ProductName: "A", StockAvailable: 10, StockMinimum: 2, UnitCost: 5, IsActive: true},
		{TenantID: 1, Category: domain.CatPaspartu, ProductName: "B", StockAvailable: 1, StockMinimum: 4, UnitCost: 2, IsActive: true},
	}
	for i := range items {
		require.NoError(t, db.Create(&items[i]).Error)
	}

	agg := NewInventoryAggregator(repository.NewInventoryRepository(db))
	m, err := agg.Metrics(context.Background(), 1, rangeStart, rangeEnd)
	require.NoError(t, err)

	assert.Equal(t, 2, m.Get("total_productos"))
	assert.Equal(t, 11, m.Get("total_stock"))
	assert.Equal(t, 52.0, m.Get("total_valor_inventario"))
	assert.Equal(t, 1, m.Get("productos_bajo_stock"))
	assert.Equal(t, 1, m.Get("productos_ok_stock"))
}

/* ==================== PRODUCTION ==================== */

func TestProductionMetricsOverdue(t *testing.T) {
	db := testDB(t)

	hours := func(v float64) *float64 { return &v }
	orders := []domain.ProductionOrder{
		{TenantID: 1, OPNumber: "OP-1", ClientID: 1, Status: domain.ProduccionTerminado, EstimatedDate: inRange, RealHours: hours(5)},
		{TenantID: 1, OPNumber: "OP-2", ClientID: 1, Status: domain.ProduccionPendiente, EstimatedDate: inRange},
		{TenantID: 1, OPNumber: "OP-3", ClientID: 1, Status: domain.ProduccionEnProceso, EstimatedDate: inRange.AddDate(0, 0, 10), RealHours: hours(3)},
	}
	for i := range orders {
		require.NoError(t, db.Create(&orders[i]).Error)
	}

	agg := NewProductionAggregator(repository.NewProductionRepository(db))
	agg.now = func() time.Time { return time.Date(2026, 1, 20, 10, 0, 0, 0, time.UTC) }

	m, err := agg.Metrics(context.Background(), 1, rangeStart, rangeEnd)
	require.NoError(t, err)

	assert.Equal(t, 3, m.Get("total_ordenes"))
	assert.Equal(t, 1, m.Get("ordenes_completadas"))
	assert.Equal(t, 1, m.Get("ordenes_en_proceso"))
	assert.Equal(t, 1, m.Get("ordenes_pendientes"))
	// only the pending order blew past Jan 15; the finished one does not count
	assert.Equal(t, 1, m.Get("ordenes_vencidas"))
	assert.Equal(t, 4.0, m.Get("tiempo_promedio_horas"))
	assert.Equal(t, 33.33, m.Get("tasa_completitud"))
}

/* ==================== FINANCE ==================== */

func TestFinanceMetricsExtractsIGV(t *testing.T) {
	db := testDB(t)

	order := domain.Order{TenantID: 1, OrderNumber: "PED-0001", ClientID: 1, OrderDate: inRange, DocumentType: domain.DocNotaVenta, Status: domain.OrderCompletado, PaymentState: domain.PaymentParcial, Total: 118, PaidAmount: 50, Balance: 68}
	require.NoError(t, db.Create(&order).Error)
	payment := domain.OrderPayment{OrderID: order.ID, Amount: 50, PaymentMethod: domain.MethodEfectivo, PaymentDate: inRange}
	require.NoError(t, db.Create(&payment).Error)

	agg := NewFinanceAggregator(repository.NewOrderRepository(db), 0.18)
	m, err := agg.Metrics(context.Background(), 1, rangeStart, rangeEnd)
	require.NoError(t, err)

	assert.Equal(t, 118.0, m.Get("total_ingresos"))
	assert.Equal(t, 50.0, m.Get("total_pagado"))
	assert.Equal(t, 50.0, m.Get("total_pagos_recibidos"))
	assert.Equal(t, 68.0, m.Get("saldo_pendiente"))
	// 118 gross at 18% embedded tax: 118 * 0.18 / 1.18 = 18
	assert.Equal(t, 18.0, m.Get("igv_recaudado"))
	assert.Equal(t, 100.0, m.Get("ingresos_netos"))
}

/* ==================== CONTRACTS ==================== */

func TestContractsMetrics(t *testing.T) {
	db := testDB(t)

	contracts := []domain.Contract{
		{TenantID: 1, ContractNumber: "CON-1", ClientID: 1, StartDate: inRange, EndDate: inRange.AddDate(0, 2, 0), TotalAmount: 4500, Advance: 2000, PendingBalance: 2500, Status: domain.ContratoActivo},
		{TenantID: 1, ContractNumber: "CON-2", ClientID: 1, StartDate: inRange, EndDate: inRange.AddDate(0, 1, 0), TotalAmount: 2800, Advance: 2800, PendingBalance: 0, Status: domain.ContratoCompletado},
	}
	for i := range contracts {
		require.NoError(t, db.Create(&contracts[i]).Error)
	}

	agg := NewContractsAggregator(repository.NewContractRepository(db))
	m, err := agg.Metrics(context.Background(), 1, rangeStart, rangeEnd)
	require.NoError(t, err)

	assert.Equal(t, 2, m.Get("total_contratos"))
	assert.Equal(t, 7300.0, m.Get("total_monto"))
	assert.Equal(t, 4800.0, m.Get("total_adelantos"))
	assert.Equal(t, 2500.0, m.Get("total_saldo_pendiente"))
	assert.Equal(t, 1, m.Get("contratos_activos"))
	assert.Equal(t, 1, m.Get("contratos_completados"))
}

/* ==================== ASSEMBLER ==================== */

func TestAssembleUnknownCategory(t *testing.T) {
	svc := testService(testDB(t), 0.18)

	_, err := svc.Assemble(context.Background(), 1, Category("nomina"), rangeStart, rangeEnd)
	assert.ErrorIs(t, err, ErrUnknownCategory)
}

func TestAssembleTenantRequired(t *testing.T) {
	svc := testService(testDB(t), 0.18)

	_, err := svc.Assemble(context.Background(), 0, CategoryVentas, rangeStart, rangeEnd)
	assert.ErrorIs(t, err, ErrTenantRequired)

	_, err = svc.AssembleAll(context.Background(), 0, rangeStart, rangeEnd)
	assert.ErrorIs(t, err, ErrTenantRequired)
}

func TestParseDateRangeDefaults(t *testing.T) {
	svc := testService(testDB(t), 0.18)
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	start, end := svc.ParseDateRange("", "")
	assert.Equal(t, now.AddDate(0, 0, -30), start)
	assert.Equal(t, now, end)

	// malformed values silently fall back
	start, end = svc.ParseDateRange("10/03/2026", "not-a-date")
	assert.Equal(t, now.AddDate(0, 0, -30), start)
	assert.Equal(t, now, end)

	start, end = svc.ParseDateRange("2026-01-01", "2026-01-31")
	assert.Equal(t, rangeStart, start)
	assert.Equal(t, rangeEnd, end)
}

func TestAssembleReportEnvelope(t *testing.T) {
	db := testDB(t)
	svc := testService(db, 0.18)
	now := time.Date(2026, 2, 1, 9, 30, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	report, err := svc.Assemble(context.Background(), 1, CategoryVentas, rangeStart, rangeEnd)
	require.NoError(t, err)

	assert.Equal(t, CategoryVentas, report.Category)
	assert.Equal(t, "Reporte de Ventas", report.Title)
	assert.Equal(t, now, report.GeneratedAt)

	data, err := json.Marshal(report)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"categoria":"ventas"`)
	assert.Contains(t, string(data), `"periodo_inicio":"2026-01-01"`)
	assert.Contains(t, string(data), `"periodo_fin":"2026-01-31"`)
}

func TestAssembleIdempotent(t *testing.T) {
	db := testDB(t)
	svc := testService(db, 0.18)
	svc.now = func() time.Time { return time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC) }

	client := domain.Client{TenantID: 1, ClientType: domain.ClientParticular, FirstNames: "Ana", LastNames: "Rojas", IsActive: true}
	require.NoError(t, db.Create(&client).Error)
	order := domain.Order{TenantID: 1, OrderNumber: "PED-0001", ClientID: client.ID, OrderDate: inRange, DocumentType: domain.DocNotaVenta, Status: domain.OrderCompletado, PaymentState: domain.PaymentPagado, Total: 100, PaidAmount: 100}
	require.NoError(t, db.Create(&order).Error)

	first, err := svc.Assemble(context.Background(), 1, CategoryVentas, rangeStart, rangeEnd)
	require.NoError(t, err)
	second, err := svc.Assemble(context.Background(), 1, CategoryVentas, rangeStart, rangeEnd)
	require.NoError(t, err)

	firstJSON, err := json.Marshal(first)
	require.NoError(t, err)
	secondJSON, err := json.Marshal(second)
	require.NoError(t, err)
	assert.JSONEq(t, string(firstJSON), string(secondJSON))
}

func TestAssembleAllTruncatesDetail(t *testing.T) {
	db := testDB(t)
	svc := testService(db, 0.18)

	for i := 0; i < 12; i++ {
		item := domain.InventoryItem{TenantID: 1, Category: domain.CatCuadro, ProductName: fmt.Sprintf("Cuadro %02d", i), StockAvailable: 10, StockMinimum: 2, IsActive: true}
		require.NoError(t, db.Create(&item).Error)
	}

	summaries, err := svc.AssembleAll(context.Background(), 1, rangeStart, rangeEnd)
	require.NoError(t, err)
	require.Len(t, summaries, 6)

	inv := summaries[CategoryInventario]
	require.NotNil(t, inv)
	assert.Len(t, inv.Detail, 10)
	assert.Equal(t, 12, inv.TotalRecords)
	assert.Equal(t, "Reporte de Inventario", inv.Title)
	assert.Equal(t, "2026-01-01", inv.PeriodStart)

	// every category answers even with no data behind it
	for _, category := range []Category{CategoryVentas, CategoryProduccion, CategoryClientes, CategoryFinanciero, CategoryContratos} {
		require.NotNil(t, summaries[category], string(category))
	}
}

func TestCategoriesCatalogue(t *testing.T) {
	infos := Categories()
	require.Len(t, infos, 6)

	codes := make([]string, 0, len(infos))
	for _, info := range infos {
		codes = append(codes, string(info.Code))
	}
	assert.Equal(t, []string{"clientes", "contratos", "financiero", "inventario", "produccion", "ventas"}, codes)
	assert.Equal(t, "Reporte_Ventas", CategoryVentas.FileName())
}
