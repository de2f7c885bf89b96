package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"time"

	"transfer-backend/internal/auth"
	"transfer-backend/internal/cache"
	"transfer-backend/internal/config"
	"transfer-backend/internal/database"
	"transfer-backend/internal/db"
	"transfer-backend/internal/email"
	"transfer-backend/internal/handlers"
	"transfer-backend/internal/health"
	h "transfer-backend/internal/http"
	"transfer-backend/internal/metrics"
	"transfer-backend/internal/middleware"
	"transfer-backend/internal/repositories"
	"transfer-backend/internal/scheduler"
	"transfer-backend/internal/services"
	"transfer-backend/internal/timeutil"
	"transfer-backend/migrations"
)

func main() {
	port := flag.Int("port", 0, "Server port (overrides config)")
	flag.Parse()

	// Load configuration
	cfg := config.Load()
	if *port != 0 {
		cfg.Server.Port = *port
	}

	// Reporting timezone drives the daily report window and the cron clock
	if err := timeutil.SetLocation(cfg.Report.Timezone); err != nil {
		log.Fatalf("Invalid report timezone %q: %v", cfg.Report.Timezone, err)
	}

	pool := db.Connect(cfg)
	defer pool.Close()

	// Initialize Redis cache (optional - graceful fallback if unavailable)
	if err := cache.Init(); err != nil {
		log.Printf("[Redis] Cache unavailable: %v (login will use bcrypt only)", err)
	} else {
		log.Println("[Redis] Cache connected successfully")
	}

	// Run database migrations
	log.Println("Running database migrations...")
	migrator := database.NewMigrator(pool, migrations.FS)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := migrator.RunMigrations(ctx); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize health checker
	healthChecker := health.NewHealthChecker(pool)

	// Initialize JWT manager
	jwtManager := auth.NewJWTManager(cfg)

	// Initialize repositories
	userRepo := repositories.NewUserRepository(pool)
	vehicleRepo := repositories.NewVehicleRepository(pool)
	priceListRepo := repositories.NewPriceListRepository(pool)
	transferRepo := repositories.NewTransferRepository(pool)
	requestRepo := repositories.NewServiceRequestRepository(pool)
	reportRepo := repositories.NewDailyReportRepository(pool)
	emailLogRepo := repositories.NewEmailLogRepository(pool)

	// Email provider: SendGrid when configured, otherwise a mock that
	// prints to the log. Every attempt is recorded in email_logs.
	var emailProvider email.Provider
	if cfg.Email.SendGridAPIKey != "" {
		log.Println("[Email] Using SendGrid for confirmation emails")
		emailProvider = email.NewSendGridProvider(cfg.Email.SendGridAPIKey, cfg.Email.FromAddress, cfg.Email.FromName)
	} else {
		log.Println("WARNING: SENDGRID_API_KEY not set, using mock email provider (emails only print to logs)")
		emailProvider = email.NewMockProvider()
	}
	emailProvider.SetLogRepository(emailLogRepo)

	// Initialize services
	userService := services.NewUserService(userRepo, jwtManager)
	vehicleService := services.NewVehicleService(vehicleRepo)
	priceListService := services.NewPriceListService(priceListRepo)
	pricingService := services.NewPricingService(priceListRepo)
	transferService := services.NewTransferService(transferRepo, userRepo, vehicleRepo, pricingService, emailProvider)
	requestService := services.NewRequestService(requestRepo, userRepo)
	reportService := services.NewReportService(reportRepo, transferRepo)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtManager, userRepo)
	corsMiddleware := middleware.NewCORS(cfg)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userService)
	userHandler := handlers.NewUserHandler(userService)
	vehicleHandler := handlers.NewVehicleHandler(vehicleService)
	priceListHandler := handlers.NewPriceListHandler(priceListService)
	transferHandler := handlers.NewTransferHandler(transferService)
	requestHandler := handlers.NewServiceRequestHandler(requestService)
	reportHandler := handlers.NewReportHandler(reportService)
	healthHandler := handlers.NewHealthHandler(healthChecker)

	router := h.NewRouter(
		authHandler,
		userHandler,
		vehicleHandler,
		priceListHandler,
		transferHandler,
		requestHandler,
		reportHandler,
		healthHandler,
		authMiddleware,
	)

	// Wrap with panic recovery and metrics middleware
	handler := middleware.PanicRecovery(middleware.MetricsMiddleware(corsMiddleware(router)))

	// Host gauges for the /metrics endpoint
	stopHostMetrics := make(chan struct{})
	defer close(stopHostMetrics)
	metrics.StartHostCollector(30*time.Second, stopHostMetrics)

	// Nightly report rollup
	if cfg.Scheduler.Enabled {
		sched, err := scheduler.New(reportService, cfg.Scheduler.ReportCron)
		if err != nil {
			log.Fatalf("Failed to set up scheduler: %v", err)
		}
		sched.Start()
		defer sched.Stop()
	} else {
		log.Println("[Scheduler] Disabled by config, daily reports must be triggered via the API")
	}

	// Start server
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Printf("Server running on %s", addr)
	if err := http.ListenAndServe(addr, handler); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
