// Package report runs the scheduled standing sweep: every run recomputes the
// payment standing of all subscribers and logs a summary, so operators see
// how the membership is trending without querying each subscriber.
package report

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/membercore/membercore/internal/domain"
)

// sweepPageSize bounds how many subscribers one page of the sweep loads.
const sweepPageSize = 100

// Scheduler runs the standing sweep on a cron schedule.
type Scheduler struct {
	cron        *cron.Cron
	subscribers domain.SubscriberService
	payments    domain.PaymentService
	logger      *slog.Logger
}

// New creates a Scheduler that runs the sweep at the given cron schedule
// (standard 5-field syntax, e.g. "0 2 * * *").
func New(schedule string, subscribers domain.SubscriberService, payments domain.PaymentService, logger *slog.Logger) (*Scheduler, error) {
	if subscribers == nil || payments == nil {
		return nil, errors.New("report: subscriber and payment services are required")
	}
	if logger == nil {
		logger = slog.Default()
	}

	s := &Scheduler{
		cron:        cron.New(),
		subscribers: subscribers,
		payments:    payments,
		logger:      logger,
	}

	if _, err := s.cron.AddFunc(schedule, s.sweep); err != nil {
		return nil, err
	}
	return s, nil
}

// Start begins running the schedule in its own goroutine.
func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop stops the schedule and waits for a running sweep to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

// sweep walks all subscribers page by page, classifies each one's standing,
// and logs aggregate counts.
func (s *Scheduler) sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	start := time.Now()
	counts := map[domain.StandingStatus]int{}
	unclassified := 0

	for page := 1; ; page++ {
		result, err := s.subscribers.ListSubscribers(ctx, domain.PageRequest{
			Page:     page,
			PageSize: sweepPageSize,
		})
		if err != nil {
			s.logger.Error("standing sweep: list subscribers", slog.Any("error", err), slog.Int("page", page))
			return
		}

		for _, sub := range result.Data {
			standing, err := s.payments.Standing(ctx, sub.ID)
			if err != nil {
				s.logger.Warn("standing sweep: classify subscriber",
					slog.Any("error", err), slog.Uint64("subscriber_id", uint64(sub.ID)))
				continue
			}
			if standing == nil {
				unclassified++
				continue
			}
			counts[standing.Status]++
		}

		if !result.PageInfo.HasNextPage {
			break
		}
	}

	s.logger.Info("standing sweep completed",
		slog.Int("good", counts[domain.StandingGood]),
		slog.Int("default", counts[domain.StandingDefault]),
		slog.Int("inactive", counts[domain.StandingInactive]),
		slog.Int("unclassified", unclassified),
		slog.Duration("elapsed", time.Since(start)),
	)
}
