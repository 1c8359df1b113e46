package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/segyhp/finance-planner/internal/config"
	"github.com/segyhp/finance-planner/internal/repository"
	"github.com/segyhp/finance-planner/internal/service"
	"github.com/segyhp/finance-planner/pkg/utils"
)

// jobTimeout bounds a single run of any job
const jobTimeout = 5 * time.Minute

// maintenance is the part of the planner the scheduled jobs drive
type maintenance interface {
	PurgeScenarios(ctx context.Context, olderThan time.Time) (int64, error)
	WarmCache(ctx context.Context) error
}

func main() {
	log.Println("Starting planner scheduler...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	log.SetFlags(cfg.LogFlags())

	db, err := repository.OpenDatabase(cfg.Database)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	sealer, err := repository.NewSealer(cfg.Storage.ScenarioPassphrase)
	if err != nil {
		log.Fatalf("Failed to initialize scenario encryption: %v", err)
	}

	cache, redisClient := repository.OpenCache(context.Background(), cfg.Redis)
	if redisClient != nil {
		defer redisClient.Close()
	}

	planner := service.NewPlannerService(repository.NewScenarioRepository(db, sealer), cache, cfg)

	// Initialize cron scheduler
	c := cron.New(cron.WithSeconds(), cron.WithLocation(cfg.GetSchedulerLocation()))

	if err := setupCronJobs(c, cfg, planner); err != nil {
		log.Fatalf("Failed to schedule jobs: %v", err)
	}

	c.Start()
	log.Println("Scheduler started successfully")

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down scheduler...")
	<-c.Stop().Done()
	log.Println("Scheduler stopped")
}

func setupCronJobs(c *cron.Cron, cfg *config.Config, planner maintenance) error {
	retention := cfg.GetScenarioRetention()

	if _, err := c.AddFunc(cfg.Scheduler.PurgeSchedule, func() {
		purgeScenarios(planner, time.Now(), retention)
	}); err != nil {
		return err
	}

	if _, err := c.AddFunc(cfg.Scheduler.WarmupSchedule, func() {
		warmCache(planner)
	}); err != nil {
		return err
	}

	log.Printf("Cron jobs scheduled (purge %q, warm-up %q)", cfg.Scheduler.PurgeSchedule, cfg.Scheduler.WarmupSchedule)
	return nil
}

func purgeScenarios(planner maintenance, now time.Time, retention time.Duration) {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	cutoff := utils.RetentionCutoff(now, retention)
	log.Printf("Running scenario retention sweep (cutoff %s)...", cutoff.Format(time.RFC3339))

	removed, err := planner.PurgeScenarios(ctx, cutoff)
	if err != nil {
		log.Printf("Scenario retention sweep failed: %v", err)
		return
	}
	log.Printf("Scenario retention sweep removed %d scenarios", removed)
}

func warmCache(planner maintenance) {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	if err := planner.WarmCache(ctx); err != nil {
		log.Printf("Cache warm-up failed: %v", err)
		return
	}
	log.Println("Cache warm-up complete")
}
