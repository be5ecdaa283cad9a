package monitoring

import (
	"time"

	"github.com/isdelr/bloglist-be/internal/services"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
)

// Scheduler runs database backups on a cron schedule.
type Scheduler struct {
	backupSvc services.BackupServiceProvider
	schedule  cron.Schedule
	done      chan bool
}

// NewScheduler creates a scheduler for the given cron expression, using the
// standard five-field format plus descriptors like "@daily".
func NewScheduler(backupSvc services.BackupServiceProvider, cronExpression string) (*Scheduler, error) {
	schedule, err := cron.ParseStandard(cronExpression)
	if err != nil {
		return nil, err
	}
	return &Scheduler{
		backupSvc: backupSvc,
		schedule:  schedule,
		done:      make(chan bool),
	}, nil
}

// Run blocks until Stop is called, firing a backup at each scheduled time.
func (s *Scheduler) Run() {
	log.Info().Msg("Starting backup scheduler")
	for {
		next := s.schedule.Next(time.Now())
		timer := time.NewTimer(time.Until(next))

		select {
		case <-s.done:
			timer.Stop()
			log.Info().Msg("Stopping backup scheduler")
			return
		case <-timer.C:
			if _, err := s.backupSvc.CreateBackup(); err != nil {
				log.Error().Err(err).Msg("Scheduled backup failed")
			}
		}
	}
}

// Stop halts the scheduler.
func (s *Scheduler) Stop() {
	s.done <- true
}
