package main

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"arteideas/internal/config"
	"arteideas/internal/database"
	"arteideas/internal/middleware"
	"arteideas/internal/modules/auth"
	"arteideas/internal/modules/dashboard"
	"arteideas/internal/modules/reports"
	"arteideas/internal/modules/reports/export"
	jwtsvc "arteideas/internal/pkg/jwt"
	"arteideas/internal/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("invalid configuration")
	}

	if cfg.AppEnv == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		logrus.WithError(err).Fatal("database connection failed")
	}

	userRepo := repository.NewUserRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	inventoryRepo := repository.NewInventoryRepository(db)
	productionRepo := repository.NewProductionRepository(db)
	clientRepo := repository.NewClientRepository(db)
	contractRepo := repository.NewContractRepository(db)
	maintenanceRepo := repository.NewMaintenanceRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)

	authService := auth.NewService(userRepo, j)
	authHandler := auth.NewHandler(authService)

	reportService := reports.NewService(
		reports.NewSalesAggregator(orderRepo),
		reports.NewInventoryAggregator(inventoryRepo),
		reports.NewProductionAggregator(productionRepo),
		reports.NewClientsAggregator(clientRepo, orderRepo),
		reports.NewFinanceAggregator(orderRepo, cfg.TaxRate),
		reports.NewContractsAggregator(contractRepo),
	)

	exporter := export.NewService()
	exporter.Register(reports.FormatExcel, export.NewExcelRenderer())
	exporter.Register(reports.FormatPDF, export.NewPDFRenderer())

	reportHandler := reports.NewHandler(reportService, exporter)

	dashboardService := dashboard.NewService(
		orderRepo,
		productionRepo,
		inventoryRepo,
		clientRepo,
		contractRepo,
		maintenanceRepo,
	)
	dashboardHandler := dashboard.NewHandler(dashboardService, dashboard.NewStream(dashboardService))

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.RequestLogger())

	v1 := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterRoutes(v1)

		// protected
		protected := v1.Group("/")
		protected.Use(middleware.Auth(j))
		{
			authHandler.RegisterProtectedRoutes(protected)
			reportHandler.RegisterRoutes(protected)
			dashboardHandler.RegisterRoutes(protected)
		}
	}

	logrus.WithField("port", cfg.Port).Info("Starting API server")
	if err := r.Run(":" + cfg.Port); err != nil {
		logrus.WithError(err).Fatal("server stopped")
	}
}
