package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"eventrsvp/internal/domain"
	"eventrsvp/internal/metrics"
	"eventrsvp/internal/validation"
)

type rsvpService struct {
	repo      domain.RSVPRepository
	validator *validation.Validator
	notifier  domain.RSVPNotifier
	logger    *slog.Logger
	now       func() time.Time
}

// RSVPOption configures optional collaborators of the RSVP service.
type RSVPOption func(*rsvpService)

// WithNotifier sets the notifier told about every created RSVP.
func WithNotifier(n domain.RSVPNotifier) RSVPOption {
	return func(s *rsvpService) { s.notifier = n }
}

// WithClock overrides the time source used for RSVP timestamps.
func WithClock(now func() time.Time) RSVPOption {
	return func(s *rsvpService) { s.now = now }
}

// NewRSVPService creates an RSVPService storing records in repo.
func NewRSVPService(repo domain.RSVPRepository, logger *slog.Logger, opts ...RSVPOption) domain.RSVPService {
	s := &rsvpService{
		repo:      repo,
		validator: validation.New(),
		logger:    logger,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *rsvpService) Create(ctx context.Context, sub *domain.RSVPSubmission) (*domain.RSVP, error) {
	if err := s.validator.Submission(sub); err != nil {
		return nil, err
	}

	nameKey := validation.NameKey(sub.Name)
	if _, err := s.repo.FindByNameKey(ctx, nameKey); err == nil {
		metrics.RSVPDuplicates.Inc()
		return nil, domain.ErrDuplicate
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("check existing rsvp: %w", err)
	}

	// BSON datetimes carry milliseconds; truncating keeps the value identical after a round trip.
	ts := s.now().UTC().Truncate(time.Millisecond)
	rsvp := domain.NewRSVP(sub.Name, *sub.WillAttend, *sub.HasChildren, sub.ChildrenNames, sub.DietaryRestriction, ts)

	id, err := s.repo.Insert(ctx, rsvp, nameKey)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			metrics.RSVPDuplicates.Inc()
			return nil, domain.ErrDuplicate
		}
		return nil, fmt.Errorf("insert rsvp: %w", err)
	}

	created, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("rsvp %s: %w", id, domain.ErrIntegrity)
		}
		return nil, fmt.Errorf("fetch created rsvp: %w", err)
	}
	metrics.RSVPsCreated.WithLabelValues(attendanceLabel(created.WillAttend)).Inc()

	if s.notifier != nil {
		if err := s.notifier.RSVPCreated(ctx, created); err != nil {
			s.logger.WarnContext(ctx, "rsvp notification failed", "rsvp_id", created.ID, "err", err)
		}
	}
	return created, nil
}

func (s *rsvpService) List(ctx context.Context) ([]*domain.RSVP, error) {
	rsvps, err := s.repo.ListByTimestampDesc(ctx)
	if err != nil {
		return nil, fmt.Errorf("list rsvps: %w", err)
	}
	if rsvps == nil {
		rsvps = []*domain.RSVP{}
	}
	return rsvps, nil
}

func attendanceLabel(willAttend bool) string {
	if willAttend {
		return "attending"
	}
	return "declined"
}
