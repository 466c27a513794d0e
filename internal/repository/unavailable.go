// Package repository holds persistence adapters shared across store drivers.
package repository

import (
	"context"
	"fmt"

	"eventrsvp/internal/domain"
)

// unavailableRepository stands in for the store when the startup connection failed.
// Every call fails fast with domain.ErrStoreUnavailable.
type unavailableRepository struct {
	cause error
}

// NewUnavailableRepository returns an RSVPRepository for degraded mode.
// cause is the startup connection error and is kept for logs.
func NewUnavailableRepository(cause error) domain.RSVPRepository {
	return &unavailableRepository{cause: cause}
}

func (r *unavailableRepository) err() error {
	if r.cause == nil {
		return domain.ErrStoreUnavailable
	}
	return fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, r.cause)
}

func (r *unavailableRepository) Insert(context.Context, *domain.RSVP, string) (string, error) {
	return "", r.err()
}

func (r *unavailableRepository) GetByID(context.Context, string) (*domain.RSVP, error) {
	return nil, r.err()
}

func (r *unavailableRepository) FindByNameKey(context.Context, string) (*domain.RSVP, error) {
	return nil, r.err()
}

func (r *unavailableRepository) ListByTimestampDesc(context.Context) ([]*domain.RSVP, error) {
	return nil, r.err()
}
