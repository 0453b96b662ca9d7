//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"hotel-backoffice/internal/domain/reservation"
	"hotel-backoffice/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReservation(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		res, err := builder.NewReservationBuilder().BuildDomain()
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, res.ID())
		assert.Equal(t, reservation.StatusPending, res.Status())
		assert.Equal(t, 2, res.Adults())
		assert.Nil(t, res.ExternalID())
	})

	t.Run("zero adults rejected", func(t *testing.T) {
		_, err := builder.NewReservationBuilder().
			With(func(b *builder.ReservationBuilder) { b.Adults = 0 }).
			BuildDomain()
		assert.ErrorIs(t, err, reservation.ErrNoAdults)
	})

	t.Run("negative children rejected", func(t *testing.T) {
		_, err := builder.NewReservationBuilder().
			With(func(b *builder.ReservationBuilder) { b.Children = -1 }).
			BuildDomain()
		assert.ErrorIs(t, err, reservation.ErrNegativeChildren)
	})
}

func TestNewImportedReservation(t *testing.T) {
	stay := mustStay(t, date(2025, 1, 10), date(2025, 1, 12))
	total, _ := reservation.NewMoney(20000)
	remoteCreated := time.Date(2025, 1, 2, 8, 0, 0, 0, time.UTC)

	t.Run("accepts historical dates and mapped status", func(t *testing.T) {
		res, err := reservation.NewImportedReservation(
			uuid.New(), uuid.New(), stay, 2, 1, "", total,
			reservation.StatusCheckedOut, "res-901", &remoteCreated,
		)
		require.NoError(t, err)
		assert.Equal(t, reservation.StatusCheckedOut, res.Status())
		require.NotNil(t, res.ExternalID())
		assert.Equal(t, "res-901", *res.ExternalID())
		require.NotNil(t, res.ExternalCreatedAt())
		assert.Equal(t, remoteCreated, *res.ExternalCreatedAt())
	})

	t.Run("clamps invalid counts instead of failing", func(t *testing.T) {
		res, err := reservation.NewImportedReservation(
			uuid.New(), uuid.New(), stay, 0, -3, "", total,
			reservation.StatusConfirmed, "res-902", nil,
		)
		require.NoError(t, err)
		assert.Equal(t, 1, res.Adults())
		assert.Equal(t, 0, res.Children())
	})
}

func TestAttachExternalPreservesCreationTimestamp(t *testing.T) {
	res, err := builder.NewReservationBuilder().BuildDomain()
	require.NoError(t, err)

	first := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	second := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)

	res.AttachExternal("res-1", &first)
	res.AttachExternal("res-1", &second)

	require.NotNil(t, res.ExternalCreatedAt())
	assert.Equal(t, first, *res.ExternalCreatedAt())
}

func TestTransitions(t *testing.T) {
	t.Run("confirm then cancel", func(t *testing.T) {
		res, err := builder.NewReservationBuilder().BuildDomain()
		require.NoError(t, err)

		require.NoError(t, res.Confirm())
		assert.Equal(t, reservation.StatusConfirmed, res.Status())
		require.NoError(t, res.Cancel())
		assert.Equal(t, reservation.StatusCancelled, res.Status())
	})

	t.Run("cancel is final", func(t *testing.T) {
		res, err := builder.NewReservationBuilder().BuildDomain()
		require.NoError(t, err)

		require.NoError(t, res.Cancel())
		assert.ErrorIs(t, res.Confirm(), reservation.ErrInvalidTransition)
	})
}

func TestReschedule(t *testing.T) {
	newStay := mustStay(t, date(2026, 4, 1), date(2026, 4, 5))
	newTotal, _ := reservation.NewMoney(60000)

	t.Run("moves dates on active booking", func(t *testing.T) {
		res, err := builder.NewReservationBuilder().BuildDomain()
		require.NoError(t, err)

		require.NoError(t, res.Reschedule(newStay, 3, 1, newTotal))
		assert.Equal(t, newStay, res.Stay())
		assert.Equal(t, 3, res.Adults())
		assert.Equal(t, int64(60000), res.TotalPrice().Cents())
	})

	t.Run("rejected on terminal status", func(t *testing.T) {
		res, err := builder.NewReservationBuilder().BuildDomain()
		require.NoError(t, err)
		require.NoError(t, res.Cancel())

		assert.ErrorIs(t, res.Reschedule(newStay, 2, 0, newTotal), reservation.ErrInvalidTransition)
	})
}

func TestCanDelete(t *testing.T) {
	res, err := builder.NewReservationBuilder().BuildDomain()
	require.NoError(t, err)

	assert.NoError(t, res.CanDelete())

	require.NoError(t, res.Confirm())
	assert.ErrorIs(t, res.CanDelete(), reservation.ErrDeleteConfirmed)

	require.NoError(t, res.Cancel())
	assert.NoError(t, res.CanDelete())
}
