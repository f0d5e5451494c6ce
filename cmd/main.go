package main

import (
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/rasheduzzaman2024/polashtoli/internal/handler"
	"github.com/rasheduzzaman2024/polashtoli/internal/middleware"
	"github.com/rasheduzzaman2024/polashtoli/internal/session"
	"github.com/rasheduzzaman2024/polashtoli/internal/store"
	"github.com/rasheduzzaman2024/polashtoli/pkg/config"
	"github.com/rasheduzzaman2024/polashtoli/pkg/jwtutil"
	"github.com/rasheduzzaman2024/polashtoli/pkg/logger"
	"github.com/rasheduzzaman2024/polashtoli/prometheus"
)

func main() {
	// Load configuration from .env file and environment variables
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger with config
	if err := logger.InitLogger(cfg); err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	log := logger.GetLogger()
	defer log.Sync()

	log.Info("Starting storefront service",
		zap.String("environment", cfg.Server.Env),
		zap.String("port", cfg.Server.Port))

	// Initialize Prometheus metrics
	prometheus.InitMetrics(cfg)
	log.Info("Prometheus metrics initialized",
		zap.String("metrics_prefix", cfg.Metrics.Prefix))

	// Initialize the in-memory stores
	catalog := store.NewCatalog()
	accounts := store.NewAccounts()
	ledger := store.NewLedger()
	if cfg.Store.SeedDemo {
		store.SeedDemo(catalog, accounts)
		log.Info("Demo catalog and admin account seeded")
	}

	// Session registry and token utility
	sessions := session.NewManager()
	jwtUtil := jwtutil.NewJWTUtil(&cfg.JWT)
	log.Info("JWT utility initialized")

	// Initialize Echo instance
	e := echo.New()

	// Apply global middleware - order matters
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORS())
	e.Use(middleware.RequestIDMiddleware)
	e.Use(middleware.MetricsMiddleware)

	// Metrics endpoint
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Storefront commands
	h := handler.New(catalog, accounts, ledger, sessions, jwtUtil)
	h.Register(e, middleware.SessionMiddleware(jwtUtil, sessions))

	// Start server
	log.Info("Starting server", zap.String("port", cfg.Server.Port))
	if err := e.Start(":" + cfg.Server.Port); err != nil {
		log.Fatal("Server error", zap.Error(err))
	}
}
