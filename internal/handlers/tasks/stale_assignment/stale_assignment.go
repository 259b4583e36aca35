package stale_assignment

import (
	"context"
	"time"

	"marketplace/pkg/logger"
)

type Service interface {
	ReleaseStaleAssignments(ctx context.Context, maxAge time.Duration) (int64, error)
}

type StaleAssignment struct {
	log      logger.Logger
	service  Service
	interval time.Duration
	maxAge   time.Duration
}

func NewStaleAssignment(log logger.Logger, service Service, interval, maxAge time.Duration) *StaleAssignment {
	return &StaleAssignment{
		log:      log,
		service:  service,
		interval: interval,
		maxAge:   maxAge,
	}
}

func (s *StaleAssignment) TTL() time.Duration {
	return s.interval
}

func (s *StaleAssignment) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, s.interval)
	defer cancel()

	rowsAffected, err := s.service.ReleaseStaleAssignments(ctxWithTimeout, s.maxAge)

	if rowsAffected > 0 {
		s.log.With(
			logger.NewField("released_deliveries", rowsAffected),
		).Info("stale assignment release")
	}

	return err
}

func (s *StaleAssignment) Info() string {
	return "stale assignment release"
}
