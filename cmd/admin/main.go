package main

import (
	"context"
	"log"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/integrations/nrecho-v4"

	"github.com/BidumanADT/bellwood-admin/internal/pkg/config"
	"github.com/BidumanADT/bellwood-admin/internal/pkg/database"
	"github.com/BidumanADT/bellwood-admin/internal/pkg/health"
	"github.com/BidumanADT/bellwood-admin/internal/pkg/logger"
	"github.com/BidumanADT/bellwood-admin/internal/pkg/middleware"
	nrpkg "github.com/BidumanADT/bellwood-admin/internal/pkg/newrelic"
	nsqpkg "github.com/BidumanADT/bellwood-admin/internal/pkg/nsq"
	"github.com/BidumanADT/bellwood-admin/internal/pkg/server"
	wspkg "github.com/BidumanADT/bellwood-admin/internal/pkg/websocket"
	accountsHandler "github.com/BidumanADT/bellwood-admin/services/accounts/handler"
	accountsRepository "github.com/BidumanADT/bellwood-admin/services/accounts/repository"
	accountsUsecase "github.com/BidumanADT/bellwood-admin/services/accounts/usecase"
	bookingsGateway "github.com/BidumanADT/bellwood-admin/services/bookings/gateway"
	bookingsHandler "github.com/BidumanADT/bellwood-admin/services/bookings/handler"
	bookingsRepository "github.com/BidumanADT/bellwood-admin/services/bookings/repository"
	bookingsUsecase "github.com/BidumanADT/bellwood-admin/services/bookings/usecase"
	"github.com/BidumanADT/bellwood-admin/services/tracking"
	trackingGateway "github.com/BidumanADT/bellwood-admin/services/tracking/gateway"
	trackingHandler "github.com/BidumanADT/bellwood-admin/services/tracking/handler"
	trackingUsecase "github.com/BidumanADT/bellwood-admin/services/tracking/usecase"
)

func main() {
	appName := "bellwood-admin"
	configPath := "config/admin.env"
	configs := config.InitConfig(configPath)

	// Initialize New Relic and Zap logger
	nrApp := nrpkg.InitNewRelic(configs)

	// Wait for New Relic connection before proceeding
	if nrApp != nil {
		if err := nrApp.WaitForConnection(10 * time.Second); err != nil {
			log.Printf("Warning: New Relic connection timeout: %v", err)
		}
	}

	zapLogger, err := logger.InitZapLoggerFromConfig(configs, nrApp)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()

	// Set global logger for application-wide access
	logger.SetGlobalLogger(zapLogger)

	logger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
	)

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
	}

	// Initialize NSQ producer for domain events
	producer, err := nsqpkg.NewProducer(configs.NSQ.NSQDAddress)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NSQ", logger.Err(err))
	}

	// Initialize repositories
	bookingRepo := bookingsRepository.NewBookingRepository(configs, postgresClient.GetDB())
	accountRepo := accountsRepository.NewAccountRepository(configs, postgresClient.GetDB())
	sessionRepo := accountsRepository.NewSessionRepository(configs, redisClient)

	// Initialize gateways
	bookingGW := bookingsGateway.NewBookingGW(producer, zapLogger)
	trackingGW := trackingGateway.NewTrackingGW(producer, zapLogger)

	// Initialize the live tracking state shared by the HTTP layer and
	// the broadcast scheduler
	store := tracking.NewLocationStore(configs.Tracking)
	registry := tracking.NewSubscriptionRegistry()

	// Initialize use cases
	bookingUC, err := bookingsUsecase.NewBookingUC(configs, bookingRepo, bookingGW)
	if err != nil {
		zapLogger.Fatal("Failed to initialize booking use case", logger.Err(err))
	}

	trackingUC, err := trackingUsecase.NewTrackingUC(configs, store, registry, bookingRepo, trackingGW)
	if err != nil {
		zapLogger.Fatal("Failed to initialize tracking use case", logger.Err(err))
	}

	accountUC, err := accountsUsecase.NewAccountUC(configs, accountRepo, sessionRepo)
	if err != nil {
		zapLogger.Fatal("Failed to initialize account use case", logger.Err(err))
	}

	// Initialize handlers
	wsManager := wspkg.NewManager(configs.JWT)
	bookingHandler := bookingsHandler.NewHandler(bookingUC, configs)
	accountHandler := accountsHandler.NewHandler(accountUC, configs)
	trackHandler := trackingHandler.NewHandler(trackingUC, wsManager, registry, configs)

	// Initialize Echo server
	e := echo.New()

	// Add middlewares (panic recovery should be first)
	e.Use(middleware.PanicRecoveryMiddleware(zapLogger))
	e.Use(nrecho.Middleware(nrApp))
	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	// Authentication middleware; sessions back token revocation
	authMW := middleware.JWTAuthMiddleware(configs.JWT, sessionRepo)
	loginLimiter := middleware.LoginRateLimiter(
		configs.Auth.LoginRateLimit,
		time.Duration(configs.Auth.LoginRatePeriodSec)*time.Second,
		redisClient.GetClient(),
	)

	// Register health endpoints
	health.RegisterHealthEndpoints(e, appName)

	healthService := health.NewHealthService(zapLogger)
	healthService.AddChecker("postgres", health.NewPostgresHealthChecker(postgresClient))
	healthService.AddChecker("redis", health.NewRedisHealthChecker(redisClient))
	healthService.AddChecker("nsq", health.NewNSQHealthChecker(producer))
	health.RegisterEnhancedHealthEndpoints(e, appName, configs.App.Version, healthService)

	// Register service routes
	accountHandler.RegisterRoutes(e, authMW, loginLimiter)
	bookingHandler.RegisterRoutes(e, authMW)
	trackHandler.RegisterRoutes(e, authMW)

	// Start the passenger broadcast scheduler
	scheduler := tracking.NewBroadcastScheduler(configs.Tracking, store, bookingRepo, registry)
	schedulerCtx, stopScheduler := context.WithCancel(context.Background())
	go scheduler.Run(schedulerCtx)

	// Register component cleanup in shutdown order
	shutdownManager := server.NewShutdownManager(zapLogger)
	shutdownManager.Register(func(ctx context.Context) error {
		stopScheduler()
		return nil
	})
	shutdownManager.Register(func(ctx context.Context) error {
		producer.Stop()
		return nil
	})
	shutdownManager.Register(func(ctx context.Context) error {
		return redisClient.Close()
	})
	shutdownManager.Register(func(ctx context.Context) error {
		postgresClient.Close()
		return nil
	})
	if nrApp != nil {
		shutdownManager.Register(func(ctx context.Context) error {
			nrApp.Shutdown(10 * time.Second)
			return nil
		})
	}

	// Serve until interrupted, then drain components
	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port)
	if err := srv.Start(); err != nil {
		zapLogger.Error("Server shutdown with error", logger.Err(err))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := shutdownManager.Shutdown(shutdownCtx); err != nil {
		zapLogger.Error("Component shutdown failed", logger.Err(err))
	}

	zapLogger.Info("Server exiting gracefully")
}
