package cron

import (
	"context"
	"log"

	"commander-tracker-api/services"

	"github.com/robfig/cron/v3"
)

// Scheduler periodically retries the Scryfall backfill for commanders that
// were registered while the lookup was failing, so rows do not stay
// imageless forever.
type Scheduler struct {
	cron             *cron.Cron
	commanderService *services.CommanderService
}

func NewScheduler(commanderService *services.CommanderService) *Scheduler {
	c := cron.New(cron.WithSeconds(), cron.WithLogger(cron.VerbosePrintfLogger(log.Default())))

	return &Scheduler{
		cron:             c,
		commanderService: commanderService,
	}
}

// Start schedules the backfill refresh job and starts the scheduler.
func (s *Scheduler) Start() error {
	// At minute 0 of every hour.
	_, err := s.cron.AddFunc("0 0 * * * *", s.runBackfillRefresh)
	if err != nil {
		log.Printf("Error scheduling backfill refresh job: %v", err)
		return err
	}

	s.cron.Start()
	log.Println("Cron scheduler started")

	return nil
}

// Stop gracefully shuts down the scheduler.
func (s *Scheduler) Stop() {
	s.cron.Stop()
	log.Println("Cron scheduler stopped")
}

func (s *Scheduler) runBackfillRefresh() {
	log.Println("Running commander backfill refresh...")

	refreshed, err := s.commanderService.RefreshIncomplete(context.Background())
	if err != nil {
		log.Printf("Backfill refresh failed: %v", err)
		return
	}
	if refreshed == 0 {
		log.Println("No incomplete commanders to refresh")
		return
	}
	log.Printf("Refreshed %d commander(s)", refreshed)
}

// RunNow manually triggers the refresh job (useful for testing).
func (s *Scheduler) RunNow() {
	s.runBackfillRefresh()
}
