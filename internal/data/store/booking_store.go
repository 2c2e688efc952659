package store

import (
	"context"
	"fmt"
	"sync"

	"cinebook/internal/data/entity"
	"cinebook/pkg/database"

	"github.com/samber/lo"
	"go.uber.org/zap"
)

type BookingStore interface {
	List(ctx context.Context) ([]entity.Booking, error)
	FindByID(ctx context.Context, id string) (*entity.Booking, error)
	FindByUserID(ctx context.Context, userID string) ([]entity.Booking, error)

	// CreateWithSeatClaim re-checks seat availability at commit time and
	// persists the booking together with the showtime occupancy update as
	// one transaction. A booking without its seats marked, or the reverse,
	// is an invariant violation.
	CreateWithSeatClaim(ctx context.Context, booking *entity.Booking) error

	// CancelWithSeatRelease flips the booking to cancelled and releases
	// exactly its seats, again as one transaction. Cancelling twice fails
	// with ErrAlreadyCancelled and releases nothing.
	CancelWithSeatRelease(ctx context.Context, bookingID string) (*entity.Booking, error)
}

type bookingStore struct {
	kv  database.KVIface
	mu  *sync.Mutex
	log *zap.Logger
}

func NewBookingStore(kv database.KVIface, mu *sync.Mutex, log *zap.Logger) BookingStore {
	return &bookingStore{
		kv:  kv,
		mu:  mu,
		log: log.With(zap.String("store", "booking")),
	}
}

func (r *bookingStore) List(ctx context.Context) ([]entity.Booking, error) {
	bookings, err := loadCollection[entity.Booking](ctx, r.kv, keyBookings)
	if err != nil {
		r.log.Error("Failed to load bookings", zap.Error(err))
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	return bookings, nil
}

func (r *bookingStore) FindByID(ctx context.Context, id string) (*entity.Booking, error) {
	bookings, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	booking, found := lo.Find(bookings, func(b entity.Booking) bool { return b.ID == id })
	if !found {
		return nil, nil
	}
	return &booking, nil
}

func (r *bookingStore) FindByUserID(ctx context.Context, userID string) ([]entity.Booking, error) {
	bookings, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	return lo.Filter(bookings, func(b entity.Booking, _ int) bool {
		return b.UserID == userID
	}), nil
}

func (r *bookingStore) CreateWithSeatClaim(ctx context.Context, booking *entity.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	showtimes, err := loadCollection[entity.ShowTime](ctx, r.kv, keyShowtimes)
	if err != nil {
		return fmt.Errorf("claim seats for booking %s: %w", booking.ID, err)
	}

	_, idx, found := lo.FindIndexOf(showtimes, func(st entity.ShowTime) bool {
		return st.ID == booking.ShowTimeID
	})
	if !found {
		return fmt.Errorf("showtime %s: %w", booking.ShowTimeID, entity.ErrNotFound)
	}

	// Commit-time re-check: a seat that was free at selection may have been
	// claimed since.
	showtime := &showtimes[idx]
	for _, seat := range booking.Seats {
		if showtime.IsOccupied(seat) {
			return fmt.Errorf("seat %s: %w", seat, entity.ErrSeatUnavailable)
		}
	}

	bookings, err := loadCollection[entity.Booking](ctx, r.kv, keyBookings)
	if err != nil {
		return fmt.Errorf("claim seats for booking %s: %w", booking.ID, err)
	}

	showtime.OccupiedSeats = append(showtime.OccupiedSeats, booking.Seats...)
	bookings = append(bookings, *booking)

	showtimeBlob, err := encodeCollection(keyShowtimes, showtimes)
	if err != nil {
		return err
	}
	bookingBlob, err := encodeCollection(keyBookings, bookings)
	if err != nil {
		return err
	}

	if err := r.kv.PutMany(ctx, map[string][]byte{
		keyShowtimes: showtimeBlob,
		keyBookings:  bookingBlob,
	}); err != nil {
		r.log.Error("Failed to persist booking and seat claim",
			zap.Error(err),
			zap.String("booking_id", booking.ID),
			zap.String("showtime_id", booking.ShowTimeID),
		)
		return fmt.Errorf("persist booking %s: %w", booking.ID, err)
	}

	r.log.Info("Booking persisted with seat claim",
		zap.String("booking_id", booking.ID),
		zap.String("reference", booking.Reference),
		zap.String("showtime_id", booking.ShowTimeID),
		zap.Strings("seats", booking.Seats),
	)
	return nil
}

func (r *bookingStore) CancelWithSeatRelease(ctx context.Context, bookingID string) (*entity.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	bookings, err := loadCollection[entity.Booking](ctx, r.kv, keyBookings)
	if err != nil {
		return nil, fmt.Errorf("cancel booking %s: %w", bookingID, err)
	}

	_, idx, found := lo.FindIndexOf(bookings, func(b entity.Booking) bool {
		return b.ID == bookingID
	})
	if !found {
		return nil, fmt.Errorf("booking %s: %w", bookingID, entity.ErrNotFound)
	}

	booking := &bookings[idx]
	if booking.Status == entity.BookingStatusCancelled {
		return nil, fmt.Errorf("booking %s: %w", bookingID, entity.ErrAlreadyCancelled)
	}

	booking.Status = entity.BookingStatusCancelled

	showtimes, err := loadCollection[entity.ShowTime](ctx, r.kv, keyShowtimes)
	if err != nil {
		return nil, fmt.Errorf("cancel booking %s: %w", bookingID, err)
	}

	_, stIdx, stFound := lo.FindIndexOf(showtimes, func(st entity.ShowTime) bool {
		return st.ID == booking.ShowTimeID
	})
	if stFound {
		showtime := &showtimes[stIdx]
		showtime.OccupiedSeats = lo.Without(showtime.OccupiedSeats, booking.Seats...)
	}

	showtimeBlob, err := encodeCollection(keyShowtimes, showtimes)
	if err != nil {
		return nil, err
	}
	bookingBlob, err := encodeCollection(keyBookings, bookings)
	if err != nil {
		return nil, err
	}

	if err := r.kv.PutMany(ctx, map[string][]byte{
		keyShowtimes: showtimeBlob,
		keyBookings:  bookingBlob,
	}); err != nil {
		r.log.Error("Failed to persist cancellation",
			zap.Error(err),
			zap.String("booking_id", bookingID),
		)
		return nil, fmt.Errorf("persist cancellation %s: %w", bookingID, err)
	}

	r.log.Info("Booking cancelled with seat release",
		zap.String("booking_id", bookingID),
		zap.String("showtime_id", booking.ShowTimeID),
		zap.Strings("seats", booking.Seats),
	)

	cancelled := *booking
	return &cancelled, nil
}
