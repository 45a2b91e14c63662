// Package scheduler runs the periodic monthly digest job.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"github.com/Dan9191/finance-service/internal/models"
)

// DigestSource builds digests for every user with an email address.
type DigestSource interface {
	DigestRecipients(ctx context.Context) ([]models.User, error)
	Digest(ctx context.Context, user models.User, asOf time.Time) (*models.Digest, error)
}

// DigestSender delivers a built digest.
type DigestSender interface {
	SendMonthlyDigest(d *models.Digest) error
}

// Scheduler mails monthly digests on a cron schedule
type Scheduler struct {
	cron   *cron.Cron
	source DigestSource
	sender DigestSender
	log    *logrus.Logger
	now    func() time.Time
}

// NewScheduler registers the digest job under spec, a standard five-field
// cron expression.
func NewScheduler(spec string, source DigestSource, sender DigestSender, log *logrus.Logger) (*Scheduler, error) {
	s := &Scheduler{
		cron:   cron.New(),
		source: source,
		sender: sender,
		log:    log,
		now:    time.Now,
	}
	if _, err := s.cron.AddFunc(spec, func() {
		if _, err := s.RunDigest(context.Background()); err != nil {
			s.log.Errorf("Digest job failed: %v", err)
		}
	}); err != nil {
		return nil, fmt.Errorf("invalid digest schedule %q: %w", spec, err)
	}
	return s, nil
}

// Start runs the scheduler in its own goroutine
func (s *Scheduler) Start() {
	s.cron.Start()
	s.log.Info("Digest scheduler started")
}

// Stop halts the scheduler and waits for a running job to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
	s.log.Info("Digest scheduler stopped")
}

// RunDigest builds and sends one digest per recipient and returns how many
// were sent. A failure for one user is logged and does not stop the rest.
func (s *Scheduler) RunDigest(ctx context.Context) (int, error) {
	users, err := s.source.DigestRecipients(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list digest recipients: %w", err)
	}

	asOf := s.now()
	sent := 0
	for _, u := range users {
		if ctx.Err() != nil {
			return sent, ctx.Err()
		}
		entry := s.log.WithFields(logrus.Fields{"user_id": u.ID, "username": u.Username})

		d, err := s.source.Digest(ctx, u, asOf)
		if err != nil {
			entry.Errorf("Failed to build digest: %v", err)
			continue
		}
		if err := s.sender.SendMonthlyDigest(d); err != nil {
			entry.Errorf("Failed to send digest: %v", err)
			continue
		}
		sent++
	}

	s.log.WithFields(logrus.Fields{"recipients": len(users), "sent": sent}).Info("Digest run complete")
	return sent, nil
}
