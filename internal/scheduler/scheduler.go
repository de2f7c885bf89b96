package scheduler

import (
	"context"
	"log"

	"transfer-backend/internal/services"
	"transfer-backend/internal/timeutil"

	"github.com/robfig/cron/v3"
)

// Scheduler runs the nightly report rollup
type Scheduler struct {
	cron    *cron.Cron
	reports *services.ReportService
}

// New creates a scheduler and registers the daily report job with the
// given cron expression. The cron clock runs in the business timezone
// so "shortly after midnight" means midnight of the reporting day.
func New(reports *services.ReportService, reportCron string) (*Scheduler, error) {
	c := cron.New(cron.WithLocation(timeutil.Location()))

	s := &Scheduler{
		cron:    c,
		reports: reports,
	}

	if _, err := c.AddFunc(reportCron, s.runDailyReport); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Scheduler) runDailyReport() {
	s.reports.GeneratePreviousDay(context.Background())
}

// Start begins the cron scheduler
func (s *Scheduler) Start() {
	s.cron.Start()
	log.Printf("[Scheduler] Started with %d job(s)", len(s.cron.Entries()))
}

// Stop stops the scheduler and waits for a running job to finish
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	log.Printf("[Scheduler] Stopped")
}
