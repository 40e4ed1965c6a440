package crawler

import (
	"context"
	"time"

	cron "github.com/robfig/cron/v3"
	"golang.org/x/sync/errgroup"

	"github.com/priceintel/pricepulse/internal/logger"
	"github.com/priceintel/pricepulse/internal/service"
)

// Scheduler runs the simulated crawl jobs on a cron schedule. Jobs within
// one tick run concurrently; a failing job is logged but does not stop the
// others or future ticks.
type Scheduler struct {
	cron     *cron.Cron
	ingestor service.Ingestor
	jobs     []*SimulatedJob
}

// NewScheduler registers all jobs under one cron entry with the given
// schedule expression (e.g. "@every 1m").
func NewScheduler(ingestor service.Ingestor, schedule string, jobs []*SimulatedJob) (*Scheduler, error) {
	s := &Scheduler{
		cron:     cron.New(),
		ingestor: ingestor,
		jobs:     jobs,
	}
	if _, err := s.cron.AddFunc(schedule, s.runAll); err != nil {
		return nil, err
	}
	return s, nil
}

// DefaultJobs is the fixed simulated catalog: one product crawled on two
// platforms in the same city so comparisons have data to work with.
func DefaultJobs() []*SimulatedJob {
	return []*SimulatedJob{
		NewSimulatedJob("Blinkit", "Amul", "Butter", "500g", "Bangalore", "https://blinkit.com/amul-butter", 240, 260, 20),
		NewSimulatedJob("Zepto", "Amul", "Butter", "500g", "Bangalore", "https://zepto.com/amul-butter", 235, 265, 15),
	}
}

// Start begins the schedule. Returns immediately; jobs run on the cron's
// own goroutines.
func (s *Scheduler) Start() {
	logger.L().Info().Int("jobs", len(s.jobs)).Msg("crawl scheduler starting")
	s.cron.Start()
}

// Stop halts the schedule and waits for in-flight jobs to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	logger.L().Info().Msg("crawl scheduler stopped")
}

// runAll executes every job for this tick concurrently and logs the
// outcome. Errors are contained per tick.
func (s *Scheduler) runAll() {
	start := time.Now()
	g, gctx := errgroup.WithContext(context.Background())

	for _, job := range s.jobs {
		j := job
		g.Go(func() error {
			if err := j.Execute(gctx, s.ingestor); err != nil {
				logger.L().Error().Err(err).Str("platform", j.PlatformName).Msg("crawl job failed")
			}
			return nil
		})
	}
	_ = g.Wait()

	logger.L().Info().
		Int64("duration_ms", time.Since(start).Milliseconds()).
		Msg("crawl tick completed")
}
