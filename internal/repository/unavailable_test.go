package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"eventrsvp/internal/domain"
)

func TestUnavailableRepository(t *testing.T) {
	ctx := context.Background()
	for _, cause := range []error{nil, errors.New("server selection timeout")} {
		repo := NewUnavailableRepository(cause)

		_, err := repo.Insert(ctx, &domain.RSVP{Name: "Ana"}, "ana")
		require.ErrorIs(t, err, domain.ErrStoreUnavailable)

		_, err = repo.GetByID(ctx, "id")
		require.ErrorIs(t, err, domain.ErrStoreUnavailable)

		_, err = repo.FindByNameKey(ctx, "ana")
		require.ErrorIs(t, err, domain.ErrStoreUnavailable)

		_, err = repo.ListByTimestampDesc(ctx)
		require.ErrorIs(t, err, domain.ErrStoreUnavailable)
	}
}
