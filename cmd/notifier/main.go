package main

import (
	"log"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/BidumanADT/bellwood-admin/internal/pkg/config"
	"github.com/BidumanADT/bellwood-admin/internal/pkg/health"
	"github.com/BidumanADT/bellwood-admin/internal/pkg/logger"
	"github.com/BidumanADT/bellwood-admin/internal/pkg/middleware"
	nrpkg "github.com/BidumanADT/bellwood-admin/internal/pkg/newrelic"
	"github.com/BidumanADT/bellwood-admin/internal/pkg/server"
	nsqHandler "github.com/BidumanADT/bellwood-admin/services/notifier/handler/nsq"
	notifierUsecase "github.com/BidumanADT/bellwood-admin/services/notifier/usecase"
)

func main() {
	appName := "bellwood-notifier"
	configPath := "config/notifier.env"
	configs := config.InitConfig(configPath)

	// Initialize New Relic and Zap logger
	nrApp := nrpkg.InitNewRelic(configs)

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

	// Initialize use case
	notifierUC, err := notifierUsecase.NewNotifierUC(configs)
	if err != nil {
		zapLogger.Fatal("Failed to initialize notifier use case", logger.Err(err))
	}

	// Initialize NSQ consumers
	notifierHandler := nsqHandler.NewNotifierHandler(notifierUC)
	if err := notifierHandler.InitConsumers(configs.NSQ); err != nil {
		zapLogger.Fatal("Failed to initialize NSQ consumers", logger.Err(err))
	}

	// Echo serves only the health probes here; all real work arrives
	// over NSQ
	e := echo.New()
	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	health.RegisterHealthEndpoints(e, appName)

	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port)
	if err := srv.Start(); err != nil {
		zapLogger.Error("Server shutdown with error", logger.Err(err))
	}

	// Drain in-flight messages before exit
	notifierHandler.Stop()

	if nrApp != nil {
		nrApp.Shutdown(10 * time.Second)
	}

	zapLogger.Info("Server exiting gracefully")
}
