package store

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"cinebook/internal/data/entity"
	"cinebook/pkg/database"
	"cinebook/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	kv, err := database.InitStore(utils.StoreConfig{
		Path: filepath.Join(t.TempDir(), "test.db"),
	})
	require.NoError(t, err)
	t.Cleanup(func() { kv.Close() })

	st := NewStore(kv, zap.NewNop())
	require.NoError(t, st.Seed(context.Background()))
	return st
}

func TestSeedPopulatesCatalog(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	movies, err := st.Movies.List(ctx)
	require.NoError(t, err)
	assert.Len(t, movies, 4)

	showtimes, err := st.Showtimes.List(ctx)
	require.NoError(t, err)
	assert.Len(t, showtimes, 4)

	s2, err := st.Showtimes.FindByID(ctx, "s2")
	require.NoError(t, err)
	require.NotNil(t, s2)
	assert.Equal(t, []string{"A1", "A2"}, s2.OccupiedSeats)
	assert.Equal(t, int64(600), s2.Price)

	theaters, err := st.Theaters.List(ctx)
	require.NoError(t, err)
	assert.Len(t, theaters, 3)
}

func TestSeedIsIdempotent(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	booking := &entity.Booking{
		ID:         "b1",
		UserID:     "u1",
		ShowTimeID: "s1",
		Seats:      []string{"C3"},
		Status:     entity.BookingStatusConfirmed,
		BookedAt:   time.Now(),
	}
	require.NoError(t, st.Bookings.CreateWithSeatClaim(ctx, booking))

	// A second seed run must not reset occupancy.
	require.NoError(t, st.Seed(ctx))

	s1, err := st.Showtimes.FindByID(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, []string{"C3"}, s1.OccupiedSeats)
}

func TestMovieStoreCreateAndDelete(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	movie := &entity.Movie{
		ID:          "m9",
		Title:       "Test Feature",
		Genres:      []string{"Drama"},
		Duration:    120,
		Language:    "Hindi",
		ReleaseDate: time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC),
		Rating:      7.5,
		Status:      entity.MovieStatusNowShowing,
	}
	require.NoError(t, st.Movies.Create(ctx, movie))

	found, err := st.Movies.FindByID(ctx, "m9")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Test Feature", found.Title)

	err = st.Movies.Create(ctx, movie)
	assert.ErrorIs(t, err, entity.ErrDuplicateID)

	require.NoError(t, st.Movies.Delete(ctx, "m9"))

	found, err = st.Movies.FindByID(ctx, "m9")
	require.NoError(t, err)
	assert.Nil(t, found)

	err = st.Movies.Delete(ctx, "m9")
	assert.ErrorIs(t, err, entity.ErrNotFound)
}

func TestCreateWithSeatClaim(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	booking := &entity.Booking{
		ID:         "b1",
		Reference:  "BOOK-20260101-120000-0001",
		UserID:     "u1",
		ShowTimeID: "s1",
		Seats:      []string{"A1", "A2"},
		TotalPrice: 925,
		Status:     entity.BookingStatusConfirmed,
		BookedAt:   time.Now(),
	}
	require.NoError(t, st.Bookings.CreateWithSeatClaim(ctx, booking))

	stored, err := st.Bookings.FindByID(ctx, "b1")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, entity.BookingStatusConfirmed, stored.Status)

	s1, err := st.Showtimes.FindByID(ctx, "s1")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"A1", "A2"}, s1.OccupiedSeats)
}

func TestCreateWithSeatClaimConflict(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	first := &entity.Booking{
		ID: "b1", UserID: "u1", ShowTimeID: "s1",
		Seats: []string{"B1"}, Status: entity.BookingStatusConfirmed,
	}
	require.NoError(t, st.Bookings.CreateWithSeatClaim(ctx, first))

	second := &entity.Booking{
		ID: "b2", UserID: "u2", ShowTimeID: "s1",
		Seats: []string{"B1", "B2"}, Status: entity.BookingStatusConfirmed,
	}
	err := st.Bookings.CreateWithSeatClaim(ctx, second)
	assert.ErrorIs(t, err, entity.ErrSeatUnavailable)

	// Losing the race must leave nothing behind: no booking, no extra seats.
	stored, err := st.Bookings.FindByID(ctx, "b2")
	require.NoError(t, err)
	assert.Nil(t, stored)

	s1, err := st.Showtimes.FindByID(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, []string{"B1"}, s1.OccupiedSeats)
}

func TestOccupancyMatchesConfirmedBookings(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	claims := [][]string{{"A3", "A4"}, {"B1"}, {"C7", "C8", "C9"}}
	for i, seats := range claims {
		booking := &entity.Booking{
			ID: fmt.Sprintf("b%d", i+1), UserID: "u1", ShowTimeID: "s1",
			Seats: seats, Status: entity.BookingStatusConfirmed,
		}
		require.NoError(t, st.Bookings.CreateWithSeatClaim(ctx, booking))
	}

	// Occupancy is exactly the union of the confirmed bookings' seats.
	s1, err := st.Showtimes.FindByID(ctx, "s1")
	require.NoError(t, err)
	assert.ElementsMatch(t,
		[]string{"A3", "A4", "B1", "C7", "C8", "C9"},
		s1.OccupiedSeats,
	)

	// Cancelling the middle one removes only its seat.
	_, err = st.Bookings.CancelWithSeatRelease(ctx, "b2")
	require.NoError(t, err)

	s1, err = st.Showtimes.FindByID(ctx, "s1")
	require.NoError(t, err)
	assert.ElementsMatch(t,
		[]string{"A3", "A4", "C7", "C8", "C9"},
		s1.OccupiedSeats,
	)
}

func TestCreateWithSeatClaimUnknownShowtime(t *testing.T) {
	st := newTestStore(t)

	booking := &entity.Booking{ID: "b1", ShowTimeID: "nope", Seats: []string{"A1"}}
	err := st.Bookings.CreateWithSeatClaim(context.Background(), booking)
	assert.ErrorIs(t, err, entity.ErrNotFound)
}

func TestCancelWithSeatRelease(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	// s2 is pre-occupied with A1 and A2; book two more seats on it.
	booking := &entity.Booking{
		ID: "b1", UserID: "u1", ShowTimeID: "s2",
		Seats: []string{"A3", "A4"}, Status: entity.BookingStatusConfirmed,
	}
	require.NoError(t, st.Bookings.CreateWithSeatClaim(ctx, booking))

	cancelled, err := st.Bookings.CancelWithSeatRelease(ctx, "b1")
	require.NoError(t, err)
	assert.Equal(t, entity.BookingStatusCancelled, cancelled.Status)

	// Only the booking's own seats come back; the pre-occupied ones stay.
	s2, err := st.Showtimes.FindByID(ctx, "s2")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"A1", "A2"}, s2.OccupiedSeats)

	stored, err := st.Bookings.FindByID(ctx, "b1")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, entity.BookingStatusCancelled, stored.Status)
}

func TestCancelTwice(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	booking := &entity.Booking{
		ID: "b1", UserID: "u1", ShowTimeID: "s1",
		Seats: []string{"D4"}, Status: entity.BookingStatusConfirmed,
	}
	require.NoError(t, st.Bookings.CreateWithSeatClaim(ctx, booking))

	_, err := st.Bookings.CancelWithSeatRelease(ctx, "b1")
	require.NoError(t, err)

	_, err = st.Bookings.CancelWithSeatRelease(ctx, "b1")
	assert.ErrorIs(t, err, entity.ErrAlreadyCancelled)

	s1, err := st.Showtimes.FindByID(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, s1.OccupiedSeats)
}

func TestFindByUserID(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	for i, spec := range []struct {
		id, user, seat string
	}{
		{"b1", "u1", "E1"},
		{"b2", "u2", "E2"},
		{"b3", "u1", "E3"},
	} {
		booking := &entity.Booking{
			ID: spec.id, UserID: spec.user, ShowTimeID: "s3",
			Seats: []string{spec.seat}, Status: entity.BookingStatusConfirmed,
			BookedAt: time.Now().Add(time.Duration(i) * time.Second),
		}
		require.NoError(t, st.Bookings.CreateWithSeatClaim(ctx, booking))
	}

	mine, err := st.Bookings.FindByUserID(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, mine, 2)

	none, err := st.Bookings.FindByUserID(ctx, "u3")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestSessionStoreRoundTrip(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	loaded, err := st.Sessions.Get(ctx)
	require.NoError(t, err)
	assert.Nil(t, loaded)

	session := &entity.Session{
		User: entity.User{
			ID:    "u1",
			Name:  "priya",
			Email: "priya@example.com",
			Role:  entity.RoleCustomer,
		},
		Token:     "token-123",
		CreatedAt: time.Now().Truncate(time.Second),
	}
	require.NoError(t, st.Sessions.Save(ctx, session))

	loaded, err = st.Sessions.Get(ctx)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, "token-123", loaded.Token)
	assert.Equal(t, entity.RoleCustomer, loaded.User.Role)

	require.NoError(t, st.Sessions.Clear(ctx))

	loaded, err = st.Sessions.Get(ctx)
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestStoreSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "persist.db")
	ctx := context.Background()

	kv, err := database.InitStore(utils.StoreConfig{Path: path})
	require.NoError(t, err)

	st := NewStore(kv, zap.NewNop())
	require.NoError(t, st.Seed(ctx))

	booking := &entity.Booking{
		ID: "b1", UserID: "u1", ShowTimeID: "s1",
		Seats: []string{"F9"}, Status: entity.BookingStatusConfirmed,
	}
	require.NoError(t, st.Bookings.CreateWithSeatClaim(ctx, booking))
	require.NoError(t, kv.Close())

	kv2, err := database.InitStore(utils.StoreConfig{Path: path})
	require.NoError(t, err)
	defer kv2.Close()

	st2 := NewStore(kv2, zap.NewNop())

	stored, err := st2.Bookings.FindByID(ctx, "b1")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, []string{"F9"}, stored.Seats)

	s1, err := st2.Showtimes.FindByID(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, []string{"F9"}, s1.OccupiedSeats)
}
