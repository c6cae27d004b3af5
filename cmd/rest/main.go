package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"maverik-copilot-be/internal/bootstrap"
	"maverik-copilot-be/internal/config"
	"maverik-copilot-be/internal/pkg/logger"
	"maverik-copilot-be/internal/server"
	"maverik-copilot-be/internal/tracer"
	"maverik-copilot-be/pkg/keepalive"

	"gorm.io/gorm"
)

func main() {
	// 1. Load Configuration
	cfg := config.Load()

	appLogger := logger.NewZapLogger(cfg.App.LogDir, cfg.IsProduction())
	defer appLogger.Sync()

	// 2. Initialize Tracer
	shutdownTracer := tracer.InitTracer(cfg.Tracing, cfg.App.Version, appLogger)
	defer shutdownTracer(context.Background())

	// 3. Initialize Database
	var gormDB *gorm.DB
	if cfg.App.Storage == bootstrap.StoragePostgres {
		db, err := bootstrap.OpenDatabase(cfg.Database, !cfg.IsProduction())
		if err != nil {
			log.Panicf("Unable to connect to GORM DB: %v", err)
		}
		gormDB = db
	}

	// 4. Bootstrap Dependencies (Container)
	container, err := bootstrap.NewContainer(gormDB, cfg, appLogger)
	if err != nil {
		log.Panicf("Unable to build container: %v", err)
	}
	defer container.Close()

	// 5. Start Background Services
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		if err := container.ConsumerService.Consume(ctx); err != nil {
			appLogger.Error(logger.Errors, "Background consumer stopped", map[string]interface{}{
				"error": err,
			})
		}
	}()

	pinger := keepalive.NewPinger(cfg.Keepalive.URLs, 30*time.Second, appLogger)
	if err := pinger.Start(cfg.Keepalive.Schedule); err != nil {
		appLogger.Warn(logger.App, "Keepalive scheduler not started", map[string]interface{}{
			"error": err.Error(),
		})
	}
	defer pinger.Stop()

	// 6. Initialize Server
	srv := server.New(cfg, container)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit

		appLogger.Info(logger.App, "Shutting down server", nil)
		cancel()
		if err := srv.Shutdown(); err != nil {
			appLogger.Error(logger.Errors, "Server shutdown failed", map[string]interface{}{
				"error": err,
			})
		}
	}()

	// 7. Run Server
	if err := srv.Run(); err != nil {
		log.Printf("Server stopped: %v", err)
	}
}
