package usecase

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"cinebook/internal/data/entity"
	"cinebook/internal/data/store"
	"cinebook/internal/dto/request"
	"cinebook/pkg/database"
	"cinebook/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()

	kv, err := database.InitStore(utils.StoreConfig{
		Path: filepath.Join(t.TempDir(), "test.db"),
	})
	require.NoError(t, err)
	t.Cleanup(func() { kv.Close() })

	st := store.NewStore(kv, zap.NewNop())
	require.NoError(t, st.Seed(context.Background()))
	return st
}

func newTestBookingService(t *testing.T) (BookingService, *store.Store) {
	t.Helper()

	st := newTestStore(t)
	cfg := utils.BookingConfig{
		ConvenienceFee: 25,
		PaymentDelay:   time.Millisecond,
		PaymentTimeout: 100 * time.Millisecond,
	}
	return NewBookingService(st, cfg, zap.NewNop()), st
}

func TestComputePrice(t *testing.T) {
	svc, _ := newTestBookingService(t)
	showTime := &entity.ShowTime{Price: 450}

	// No seats means no fee either.
	assert.Equal(t, int64(0), svc.ComputePrice(showTime, nil))
	assert.Equal(t, int64(475), svc.ComputePrice(showTime, []string{"A1"}))
	assert.Equal(t, int64(925), svc.ComputePrice(showTime, []string{"A1", "A2"}))
}

func TestSelectSeats(t *testing.T) {
	svc, _ := newTestBookingService(t)
	ctx := context.Background()

	seats, err := svc.SelectSeats(ctx, "s1", []string{"A1", "B2"})
	require.NoError(t, err)
	assert.Equal(t, []string{"A1", "B2"}, seats)

	// s2 already has A1 taken.
	_, err = svc.SelectSeats(ctx, "s2", []string{"A1"})
	assert.ErrorIs(t, err, entity.ErrSeatUnavailable)

	_, err = svc.SelectSeats(ctx, "s1", []string{"Z9"})
	assert.ErrorIs(t, err, entity.ErrInvalidSeat)

	_, err = svc.SelectSeats(ctx, "s1", []string{"A1", "A1"})
	assert.ErrorIs(t, err, entity.ErrInvalidSeat)

	_, err = svc.SelectSeats(ctx, "missing", []string{"A1"})
	assert.ErrorIs(t, err, entity.ErrNotFound)
}

func TestCreateBooking(t *testing.T) {
	svc, st := newTestBookingService(t)
	ctx := context.Background()

	booking, err := svc.CreateBooking(ctx, "u1", &request.CreateBookingRequest{
		ShowTimeID: "s1",
		Seats:      []string{"C3", "C4"},
	})
	require.NoError(t, err)

	assert.NotEmpty(t, booking.ID)
	assert.Regexp(t, `^BOOK-\d{8}-\d{6}-\d{4}$`, booking.Reference)
	assert.Equal(t, "u1", booking.UserID)
	assert.Equal(t, int64(2*450+25), booking.TotalPrice)
	assert.Equal(t, entity.BookingStatusConfirmed, booking.Status)
	assert.Equal(t, "RRR (Rise Roar Revolt)", booking.MovieTitle)
	assert.Equal(t, "PVR Director's Cut", booking.TheaterName)
	assert.Equal(t, "13:00", booking.StartTime)

	s1, err := st.Showtimes.FindByID(ctx, "s1")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"C3", "C4"}, s1.OccupiedSeats)
}

func TestCreateBookingEmptySelection(t *testing.T) {
	svc, _ := newTestBookingService(t)

	_, err := svc.CreateBooking(context.Background(), "u1", &request.CreateBookingRequest{
		ShowTimeID: "s1",
		Seats:      []string{},
	})
	assert.ErrorIs(t, err, entity.ErrEmptySelection)
}

func TestCreateBookingSeatTaken(t *testing.T) {
	svc, _ := newTestBookingService(t)
	ctx := context.Background()

	_, err := svc.CreateBooking(ctx, "u1", &request.CreateBookingRequest{
		ShowTimeID: "s2",
		Seats:      []string{"A2", "A3"},
	})
	assert.ErrorIs(t, err, entity.ErrSeatUnavailable)
}

func TestCreateBookingRejectsSeatAliases(t *testing.T) {
	svc, st := newTestBookingService(t)
	ctx := context.Background()

	_, err := svc.CreateBooking(ctx, "u1", &request.CreateBookingRequest{
		ShowTimeID: "s1",
		Seats:      []string{"A1"},
	})
	require.NoError(t, err)

	// "A01" spells the same physical seat as "A1"; it must be rejected
	// outright, not treated as a distinct free seat.
	_, err = svc.CreateBooking(ctx, "u2", &request.CreateBookingRequest{
		ShowTimeID: "s1",
		Seats:      []string{"A01"},
	})
	assert.ErrorIs(t, err, entity.ErrInvalidSeat)

	s1, err := st.Showtimes.FindByID(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, []string{"A1"}, s1.OccupiedSeats)
}

func TestCreateBookingUnknownShowtime(t *testing.T) {
	svc, _ := newTestBookingService(t)

	_, err := svc.CreateBooking(context.Background(), "u1", &request.CreateBookingRequest{
		ShowTimeID: "missing",
		Seats:      []string{"A1"},
	})
	assert.ErrorIs(t, err, entity.ErrNotFound)
}

func TestCreateBookingPaymentAbortsOnCancelledContext(t *testing.T) {
	svc, st := newTestBookingService(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.CreateBooking(ctx, "u1", &request.CreateBookingRequest{
		ShowTimeID: "s1",
		Seats:      []string{"A5"},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)

	// An aborted payment must not claim seats.
	s1, err := st.Showtimes.FindByID(context.Background(), "s1")
	require.NoError(t, err)
	assert.Empty(t, s1.OccupiedSeats)
}

func TestCreateBookingPaymentTimeout(t *testing.T) {
	st := newTestStore(t)
	cfg := utils.BookingConfig{
		ConvenienceFee: 25,
		PaymentDelay:   time.Second,
		PaymentTimeout: 5 * time.Millisecond,
	}
	svc := NewBookingService(st, cfg, zap.NewNop())
	ctx := context.Background()

	_, err := svc.CreateBooking(ctx, "u1", &request.CreateBookingRequest{
		ShowTimeID: "s1",
		Seats:      []string{"A5"},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	// A timed-out payment must not claim seats.
	s1, err := st.Showtimes.FindByID(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, s1.OccupiedSeats)
}

func TestCancelBooking(t *testing.T) {
	svc, st := newTestBookingService(t)
	ctx := context.Background()

	booking, err := svc.CreateBooking(ctx, "u1", &request.CreateBookingRequest{
		ShowTimeID: "s2",
		Seats:      []string{"B1"},
	})
	require.NoError(t, err)

	require.NoError(t, svc.CancelBooking(ctx, "u1", false, booking.ID))

	s2, err := st.Showtimes.FindByID(ctx, "s2")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"A1", "A2"}, s2.OccupiedSeats)

	err = svc.CancelBooking(ctx, "u1", false, booking.ID)
	assert.ErrorIs(t, err, entity.ErrAlreadyCancelled)
}

func TestCancelBookingOwnership(t *testing.T) {
	svc, _ := newTestBookingService(t)
	ctx := context.Background()

	booking, err := svc.CreateBooking(ctx, "u1", &request.CreateBookingRequest{
		ShowTimeID: "s1",
		Seats:      []string{"D1"},
	})
	require.NoError(t, err)

	err = svc.CancelBooking(ctx, "u2", false, booking.ID)
	assert.ErrorIs(t, err, entity.ErrForbidden)

	// Admin may cancel anyone's booking.
	require.NoError(t, svc.CancelBooking(ctx, "admin-1", true, booking.ID))
}

func TestCancelBookingNotFound(t *testing.T) {
	svc, _ := newTestBookingService(t)

	err := svc.CancelBooking(context.Background(), "u1", false, "missing")
	assert.ErrorIs(t, err, entity.ErrNotFound)
}

func TestGetUserBookings(t *testing.T) {
	svc, _ := newTestBookingService(t)
	ctx := context.Background()

	for _, seat := range []string{"E1", "E2", "E3"} {
		_, err := svc.CreateBooking(ctx, "u1", &request.CreateBookingRequest{
			ShowTimeID: "s3",
			Seats:      []string{seat},
		})
		require.NoError(t, err)
	}
	_, err := svc.CreateBooking(ctx, "u2", &request.CreateBookingRequest{
		ShowTimeID: "s3",
		Seats:      []string{"F1"},
	})
	require.NoError(t, err)

	page, err := svc.GetUserBookings(ctx, "u1", &request.PaginatedRequest{Page: 1, PerPage: 2})
	require.NoError(t, err)

	assert.Equal(t, int64(3), page.Pagination.Total)
	assert.Equal(t, 2, page.Pagination.TotalPages)
	assert.Len(t, page.Data, 2)

	// Newest first
	assert.Equal(t, []string{"E3"}, page.Data[0].Seats)

	page2, err := svc.GetUserBookings(ctx, "u1", &request.PaginatedRequest{Page: 2, PerPage: 2})
	require.NoError(t, err)
	assert.Len(t, page2.Data, 1)
	assert.Equal(t, []string{"E1"}, page2.Data[0].Seats)
}

func TestGetBookingByID(t *testing.T) {
	svc, _ := newTestBookingService(t)
	ctx := context.Background()

	created, err := svc.CreateBooking(ctx, "u1", &request.CreateBookingRequest{
		ShowTimeID: "s4",
		Seats:      []string{"A7"},
	})
	require.NoError(t, err)

	found, err := svc.GetBookingByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Reference, found.Reference)
	assert.Equal(t, "Dangal", found.MovieTitle)

	_, err = svc.GetBookingByID(ctx, "missing")
	assert.ErrorIs(t, err, entity.ErrNotFound)
}
