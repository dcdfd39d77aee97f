// Command recurring-worker runs the recurring expense scheduler as a
// standalone daemon. On each tick it materializes transactions for every
// due recurring rule; the same logic is reachable on demand through the
// API's generate endpoint.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"
	"golang.org/x/sync/errgroup"

	"fintrack/internal/config"
	"fintrack/internal/database"
	"fintrack/internal/logger"
	"fintrack/internal/services"
)

func main() {
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	dbConfig, err := database.NewConfig()
	if err != nil {
		return fmt.Errorf("failed to load database configuration: %w", err)
	}

	dbManager, err := database.NewManager(dbConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}

	recurringService := services.NewRecurringService(dbManager.DB())

	scheduler := cron.New()
	_, err = scheduler.AddFunc(appConfig.WorkerSchedule, func() {
		created, err := recurringService.GenerateDue(time.Now())
		if err != nil {
			log.Errorw("Recurring generation run failed", "error", err)
			return
		}
		log.Infow("Recurring generation run completed", "generated", created)
	})
	if err != nil {
		return fmt.Errorf("invalid schedule %q: %w", appConfig.WorkerSchedule, err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Infof("Starting recurring worker with schedule %q", appConfig.WorkerSchedule)
		scheduler.Start()
		<-ctx.Done()
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		log.Info("Shutting down recurring worker...")
		// Wait for an in-flight run to finish before exiting.
		<-scheduler.Stop().Done()
		return nil
	})

	return g.Wait()
}
