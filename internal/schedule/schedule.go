// Package schedule runs the overlay's timers on gocron. Jobs never touch
// overlay state themselves; they only post events back to the loop.
package schedule

import (
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// Scheduler wraps a gocron scheduler with the two job shapes the overlay needs.
type Scheduler struct {
	cron gocron.Scheduler
}

func New() (*Scheduler, error) {
	cron, err := gocron.NewScheduler()
	if err != nil {
		return nil, errors.Wrap(err, "failed to create scheduler")
	}
	return &Scheduler{cron: cron}, nil
}

// Start begins running registered jobs.
func (s *Scheduler) Start() {
	s.cron.Start()
}

// Shutdown stops all jobs and waits for running ones to return.
func (s *Scheduler) Shutdown() error {
	if err := s.cron.Shutdown(); err != nil {
		return errors.Wrap(err, "failed to shutdown scheduler")
	}
	return nil
}

// Every runs fn every d, first run after d. Overlapping runs are skipped.
func (s *Scheduler) Every(d time.Duration, fn func()) error {
	job, err := s.cron.NewJob(
		gocron.DurationJob(d),
		gocron.NewTask(fn),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return errors.Wrap(err, "failed to create recurring job")
	}
	log.Debug().
		Str("job_id", job.ID().String()).
		Dur("interval", d).
		Msg("recurring job added")
	return nil
}

// After runs fn once, d from now. The job is removed once it has run, so
// a long-running clock does not collect finished jobs.
func (s *Scheduler) After(d time.Duration, fn func()) error {
	start := gocron.OneTimeJobStartImmediately()
	if d > 0 {
		start = gocron.OneTimeJobStartDateTime(time.Now().Add(d))
	}
	_, err := s.cron.NewJob(
		gocron.OneTimeJob(start),
		gocron.NewTask(fn),
		gocron.WithEventListeners(
			gocron.AfterJobRuns(func(jobID uuid.UUID, _ string) { s.remove(jobID) }),
			gocron.AfterJobRunsWithError(func(jobID uuid.UUID, _ string, _ error) { s.remove(jobID) }),
		),
	)
	if err != nil {
		return errors.Wrap(err, "failed to create one-time job")
	}
	return nil
}

// remove runs off the executor goroutine that fired the listener.
func (s *Scheduler) remove(jobID uuid.UUID) {
	go func() {
		if err := s.cron.RemoveJob(jobID); err != nil {
			log.Debug().Err(err).Str("job_id", jobID.String()).Msg("one-time job already gone")
		}
	}()
}

// Len reports how many jobs are registered.
func (s *Scheduler) Len() int {
	return len(s.cron.Jobs())
}
