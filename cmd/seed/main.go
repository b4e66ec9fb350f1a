package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"arteideas/internal/database"
	"arteideas/internal/domain"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "arteideas.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	// AutoMigrate to ensure schema is up to date
	log.Println("Running AutoMigrate...")
	if err := db.AutoMigrate(
		&domain.Tenant{},
		&domain.User{},
		&domain.Client{},
		&domain.Order{},
		&domain.OrderItem{},
		&domain.OrderPayment{},
		&domain.InventoryItem{},
		&domain.ProductionOrder{},
		&domain.Contract{},
		&domain.Asset{},
		&domain.Maintenance{},
	); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	// Cleanup old data (in safe order to avoid foreign key errors)
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM maintenances")
	db.Exec("DELETE FROM assets")
	db.Exec("DELETE FROM contracts")
	db.Exec("DELETE FROM production_orders")
	db.Exec("DELETE FROM order_payments")
	db.Exec("DELETE FROM order_items")
	db.Exec("DELETE FROM orders")
	db.Exec("DELETE FROM inventory_items")
	db.Exec("DELETE FROM clients")
	db.Exec("DELETE FROM users")
	db.Exec("DELETE FROM tenants")

	today := time.Now().UTC().Truncate(24 * time.Hour)

	// ================== TENANT & USERS ==================
	log.Println("Creating tenant and users...")

	tenant := domain.Tenant{Name: "Arte Ideas", RUC: "20481234567", IsActive: true}
	if err := db.Create(&tenant).Error; err != nil {
		log.Fatal("tenant:", err)
	}

	adminHash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	admin := domain.User{
		TenantID:     tenant.ID,
		Email:        "admin@arteideas.pe",
		PasswordHash: string(adminHash),
		Name:         "Administrador",
		Role:         domain.RoleAdmin,
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Fatal("admin:", err)
	}

	operatorHash, _ := bcrypt.GenerateFromPassword([]byte("operador123"), bcrypt.DefaultCost)
	operator := domain.User{
		TenantID:     tenant.ID,
		Email:        "operador@arteideas.pe",
		PasswordHash: string(operatorHash),
		Name:         "Operador de Taller",
		Role:         domain.RoleOperator,
	}
	if err := db.Create(&operator).Error; err != nil {
		log.Fatal("operator:", err)
	}

	// ================== CLIENTS ==================
	log.Println("Creating clients...")

	clients := []domain.Client{
		{TenantID: tenant.ID, ClientType: domain.ClientParticular, FirstNames: "María", LastNames: "García López", Email: "maria.garcia@gmail.com", Phone: "987654321", DNI: "45678912", IsActive: true},
		{TenantID: tenant.ID, ClientType: domain.ClientParticular, FirstNames: "José", LastNames: "Quispe Mamani", Email: "jose.quispe@gmail.com", Phone: "912345678", DNI: "41234567", IsActive: true},
		{TenantID: tenant.ID, ClientType: domain.ClientColegio, Company: "I.E. San Martín de Porres", FirstNames: "Rosa", LastNames: "Fernández", Email: "direccion@sanmartin.edu.pe", Phone: "945612378", IsActive: true},
		{TenantID: tenant.ID, ClientType: domain.ClientEmpresa, Company: "Constructora Andina SAC", FirstNames: "Carlos", LastNames: "Paredes", Email: "cparedes@andina.com.pe", Phone: "998877665", IsActive: true},
	}
	for i := range clients {
		if err := db.Create(&clients[i]).Error; err != nil {
			log.Fatal("client:", err)
		}
	}

	// ================== ORDERS ==================
	log.Println("Creating orders...")

	orders := []domain.Order{
		{TenantID: tenant.ID, OrderNumber: "PED-0001", ClientID: clients[0].ID, OrderDate: today.AddDate(0, 0, -20), DocumentType: domain.DocNotaVenta, Status: domain.OrderEntregado, PaymentState: domain.PaymentPagado, Total: 350, PaidAmount: 350, Balance: 0, Description: "Enmarcado de diploma"},
		{TenantID: tenant.ID, OrderNumber: "PED-0002", ClientID: clients[1].ID, OrderDate: today.AddDate(0, 0, -12), DocumentType: domain.DocNotaVenta, Status: domain.OrderCompletado, PaymentState: domain.PaymentParcial, Total: 580, PaidAmount: 300, Balance: 280, Description: "Cuadro con paspartú doble"},
		{TenantID: tenant.ID, OrderNumber: "PED-0003", ClientID: clients[2].ID, OrderDate: today.AddDate(0, 0, -7), DocumentType: domain.DocContrato, Status: domain.OrderEnProceso, PaymentState: domain.PaymentParcial, Total: 4500, PaidAmount: 2000, Balance: 2500, Description: "Anuarios promoción 2026"},
		{TenantID: tenant.ID, OrderNumber: "PED-0004", ClientID: clients[3].ID, OrderDate: today.AddDate(0, 0, -3), DocumentType: domain.DocProforma, Status: domain.OrderPendiente, PaymentState: domain.PaymentPendiente, Total: 1200, PaidAmount: 0, Balance: 1200, Description: "Marcos para oficinas"},
		{TenantID: tenant.ID, OrderNumber: "PED-0005", ClientID: clients[0].ID, OrderDate: today, DocumentType: domain.DocNotaVenta, Status: domain.OrderCompletado, PaymentState: domain.PaymentPagado, Total: 150, PaidAmount: 150, Balance: 0, Description: "Impresión minilab 20x30"},
	}
	for i := range orders {
		if err := db.Create(&orders[i]).Error; err != nil {
			log.Fatal("order:", err)
		}
	}

	items := []domain.OrderItem{
		{TenantID: tenant.ID, OrderID: orders[0].ID, ProductName: "Moldura cedro 3cm", Quantity: 1, UnitPrice: 350, Subtotal: 350},
		{TenantID: tenant.ID, OrderID: orders[1].ID, ProductName: "Cuadro 50x70", Quantity: 1, UnitPrice: 480, Subtotal: 480},
		{TenantID: tenant.ID, OrderID: orders[1].ID, ProductName: "Paspartú crema", Quantity: 2, UnitPrice: 50, Subtotal: 100},
		{TenantID: tenant.ID, OrderID: orders[2].ID, ProductName: "Anuario tapa dura", Quantity: 30, UnitPrice: 150, Subtotal: 4500},
		{TenantID: tenant.ID, OrderID: orders[3].ID, ProductName: "Marco aluminio A3", Quantity: 12, UnitPrice: 100, Subtotal: 1200},
		{TenantID: tenant.ID, OrderID: orders[4].ID, ProductName: "Impresión 20x30", Quantity: 10, UnitPrice: 15, Subtotal: 150},
	}
	for i := range items {
		if err := db.Create(&items[i]).Error; err != nil {
			log.Fatal("order item:", err)
		}
	}

	payments := []domain.OrderPayment{
		{OrderID: orders[0].ID, Amount: 350, PaymentMethod: domain.MethodEfectivo, PaymentDate: today.AddDate(0, 0, -20), ReferenceNumber: "REC-1001"},
		{OrderID: orders[1].ID, Amount: 300, PaymentMethod: domain.MethodYape, PaymentDate: today.AddDate(0, 0, -10), ReferenceNumber: "YAPE-4451"},
		{OrderID: orders[2].ID, Amount: 2000, PaymentMethod: domain.MethodTransferencia, PaymentDate: today.AddDate(0, 0, -6), ReferenceNumber: "BCP-88213"},
		{OrderID: orders[4].ID, Amount: 150, PaymentMethod: domain.MethodTarjeta, PaymentDate: today, ReferenceNumber: "POS-5512"},
	}
	for i := range payments {
		if err := db.Create(&payments[i]).Error; err != nil {
			log.Fatal("payment:", err)
		}
	}

	// ================== INVENTORY ==================
	log.Println("Creating inventory...")

	inventory := []domain.InventoryItem{
		{TenantID: tenant.ID, Category: domain.CatMolduraListon, ProductName: "Moldura cedro 3cm", ProductCode: "ML-001", StockAvailable: 25, StockMinimum: 10, UnitCost: 18, SalePrice: 35, Supplier: "Maderas del Sur", IsActive: true},
		{TenantID: tenant.ID, Category: domain.CatMolduraPrearmada, ProductName: "Marco prearmado 40x50", ProductCode: "MP-010", StockAvailable: 4, StockMinimum: 8, UnitCost: 25, SalePrice: 55, Supplier: "Maderas del Sur", IsActive: true},
		{TenantID: tenant.ID, Category: domain.CatVidrioTapaMDF, ProductName: "Vidrio 2mm 50x70", ProductCode: "VT-003", StockAvailable: 40, StockMinimum: 15, UnitCost: 8, SalePrice: 18, Supplier: "Vidriería Central", IsActive: true},
		{TenantID: tenant.ID, Category: domain.CatPaspartu, ProductName: "Paspartú crema 70x100", ProductCode: "PP-021", StockAvailable: 3, StockMinimum: 12, UnitCost: 6, SalePrice: 15, Supplier: "Papelera Lima", IsActive: true},
		{TenantID: tenant.ID, Category: domain.CatMinilab, ProductName: "Papel fotográfico 20x30", ProductCode: "MB-100", StockAvailable: 500, StockMinimum: 200, UnitCost: 0.8, SalePrice: 2.5, Supplier: "Fujifilm Perú", IsActive: true},
		{TenantID: tenant.ID, Category: domain.CatHerramientaGeneral, ProductName: "Grapadora neumática", ProductCode: "HG-005", StockAvailable: 2, StockMinimum: 1, UnitCost: 180, SalePrice: 0, Supplier: "Ferretería Industrial", IsActive: true},
	}
	for i := range inventory {
		if err := db.Create(&inventory[i]).Error; err != nil {
			log.Fatal("inventory:", err)
		}
	}

	// ================== PRODUCTION ==================
	log.Println("Creating production orders...")

	hours := func(v float64) *float64 { return &v }
	started := today.AddDate(0, 0, -5)

	production := []domain.ProductionOrder{
		{TenantID: tenant.ID, OPNumber: "OP-0001", OrderID: &orders[1].ID, ClientID: clients[1].ID, Type: "enmarcado", Priority: domain.PriorityNormal, Status: domain.ProduccionTerminado, EstimatedDate: today.AddDate(0, 0, -8), RealStartDate: &started, RealEndDate: &today, EstimatedHours: hours(4), RealHours: hours(5), OperatorName: "Luis Torres", Description: "Cuadro 50x70 con paspartú"},
		{TenantID: tenant.ID, OPNumber: "OP-0002", OrderID: &orders[2].ID, ClientID: clients[2].ID, Type: "anuario", Priority: domain.PriorityAlta, Status: domain.ProduccionEnProceso, EstimatedDate: today.AddDate(0, 0, 2), RealStartDate: &started, EstimatedHours: hours(60), OperatorName: "Luis Torres", Description: "Anuarios promoción 2026"},
		{TenantID: tenant.ID, OPNumber: "OP-0003", OrderID: &orders[3].ID, ClientID: clients[3].ID, Type: "enmarcado", Priority: domain.PriorityNormal, Status: domain.ProduccionPendiente, EstimatedDate: today, EstimatedHours: hours(10), OperatorName: "Ana Rojas", Description: "Marcos aluminio para oficinas"},
		{TenantID: tenant.ID, OPNumber: "OP-0004", ClientID: clients[0].ID, Type: "corte_laser", Priority: domain.PriorityBaja, Status: domain.ProduccionPendiente, EstimatedDate: today.AddDate(0, 0, -2), EstimatedHours: hours(2), OperatorName: "Ana Rojas", Description: "Letras MDF decorativas"},
	}
	for i := range production {
		if err := db.Create(&production[i]).Error; err != nil {
			log.Fatal("production:", err)
		}
	}

	// ================== CONTRACTS ==================
	log.Println("Creating contracts...")

	contracts := []domain.Contract{
		{TenantID: tenant.ID, ContractNumber: "CON-0001", Title: "Promoción 2026 - I.E. San Martín", ClientID: clients[2].ID, ServiceType: domain.ServicioPromocion, StartDate: today.AddDate(0, 0, -30), EndDate: today.AddDate(0, 0, 20), TotalAmount: 4500, Advance: 2000, PendingBalance: 2500, Status: domain.ContratoActivo},
		{TenantID: tenant.ID, ContractNumber: "CON-0002", Title: "Enmarcado corporativo Andina", ClientID: clients[3].ID, ServiceType: domain.ServicioEnmarcado, StartDate: today.AddDate(0, 0, -60), EndDate: today.AddDate(0, 0, -10), TotalAmount: 2800, Advance: 2800, PendingBalance: 0, Status: domain.ContratoCompletado},
	}
	for i := range contracts {
		if err := db.Create(&contracts[i]).Error; err != nil {
			log.Fatal("contract:", err)
		}
	}

	// ================== ASSETS & MAINTENANCE ==================
	log.Println("Creating assets and maintenance...")

	assets := []domain.Asset{
		{TenantID: tenant.ID, Name: "Minilab Frontier 550", Category: "impresion", Supplier: "Fujifilm Perú", Status: "operativo"},
		{TenantID: tenant.ID, Name: "Cortadora láser CO2", Category: "corte", Supplier: "TecnoLaser", Status: "operativo"},
	}
	for i := range assets {
		if err := db.Create(&assets[i]).Error; err != nil {
			log.Fatal("asset:", err)
		}
	}

	maintenances := []domain.Maintenance{
		{AssetID: assets[0].ID, MaintenanceType: domain.MantenimientoPreventivo, Status: domain.MaintenanceProgramado, NextMaintenanceDate: today.AddDate(0, 0, 1)},
		{AssetID: assets[1].ID, MaintenanceType: domain.MantenimientoCorrectivo, Status: domain.MaintenanceProgramado, NextMaintenanceDate: today.AddDate(0, 0, 6)},
	}
	for i := range maintenances {
		if err := db.Create(&maintenances[i]).Error; err != nil {
			log.Fatal("maintenance:", err)
		}
	}

	fmt.Println()
	log.Println("Seed completed")
	log.Println("  admin:    admin@arteideas.pe / admin123")
	log.Println("  operador: operador@arteideas.pe / operador123")
}
