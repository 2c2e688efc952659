package usecase

import (
	"context"
	"fmt"
	"time"

	"cinebook/internal/data/entity"
	"cinebook/internal/data/store"
	"cinebook/internal/dto/request"
	"cinebook/internal/dto/response"
	"cinebook/pkg/utils"

	"github.com/samber/lo"
	"go.uber.org/zap"
)

type BookingService interface {
	// SelectSeats validates a candidate seat set against current occupancy.
	// The result is advisory; availability is re-checked at commit time.
	SelectSeats(ctx context.Context, showTimeID string, seats []string) ([]string, error)

	// ComputePrice is pure: seats × price plus the flat convenience fee,
	// applied once and only when at least one seat is selected.
	ComputePrice(showTime *entity.ShowTime, seats []string) int64

	CreateBooking(ctx context.Context, userID string, req *request.CreateBookingRequest) (*response.BookingResponse, error)
	CancelBooking(ctx context.Context, userID string, isAdmin bool, bookingID string) error

	GetUserBookings(ctx context.Context, userID string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error)

	// Admin
	GetBookingByID(ctx context.Context, bookingID string) (*response.BookingResponse, error)
}

type bookingService struct {
	store *store.Store
	cfg   utils.BookingConfig
	log   *zap.Logger
}

func NewBookingService(st *store.Store, cfg utils.BookingConfig, log *zap.Logger) BookingService {
	return &bookingService{
		store: st,
		cfg:   cfg,
		log:   log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) SelectSeats(ctx context.Context, showTimeID string, seats []string) ([]string, error) {
	validated, err := validateSeatIDs(seats)
	if err != nil {
		return nil, err
	}

	showTime, err := s.store.Showtimes.FindByID(ctx, showTimeID)
	if err != nil {
		return nil, fmt.Errorf("select seats: %w", err)
	}
	if showTime == nil {
		return nil, fmt.Errorf("showtime %s: %w", showTimeID, entity.ErrNotFound)
	}

	for _, seat := range validated {
		if showTime.IsOccupied(seat) {
			return nil, fmt.Errorf("seat %s: %w", seat, entity.ErrSeatUnavailable)
		}
	}

	return validated, nil
}

func (s *bookingService) ComputePrice(showTime *entity.ShowTime, seats []string) int64 {
	if len(seats) == 0 {
		return 0
	}
	return int64(len(seats))*showTime.Price + s.cfg.ConvenienceFee
}

func (s *bookingService) CreateBooking(ctx context.Context, userID string, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create booking validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	if len(req.Seats) == 0 {
		return nil, entity.ErrEmptySelection
	}

	seats, err := validateSeatIDs(req.Seats)
	if err != nil {
		return nil, err
	}

	showTime, err := s.store.Showtimes.FindByID(ctx, req.ShowTimeID)
	if err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}
	if showTime == nil {
		return nil, fmt.Errorf("showtime %s: %w", req.ShowTimeID, entity.ErrNotFound)
	}

	// Early availability check so an obviously lost race fails before the
	// payment simulation, not after.
	for _, seat := range seats {
		if showTime.IsOccupied(seat) {
			return nil, fmt.Errorf("seat %s: %w", seat, entity.ErrSeatUnavailable)
		}
	}

	totalPrice := s.ComputePrice(showTime, seats)

	if err := s.processPayment(ctx); err != nil {
		s.log.Warn("Payment simulation failed",
			zap.Error(err),
			zap.String("user_id", userID),
			zap.String("showtime_id", req.ShowTimeID),
		)
		return nil, err
	}

	booking := &entity.Booking{
		ID:         utils.GenerateID(),
		Reference:  utils.GenerateBookingRef(),
		UserID:     userID,
		ShowTimeID: showTime.ID,
		Seats:      seats,
		TotalPrice: totalPrice,
		Status:     entity.BookingStatusConfirmed,
		BookedAt:   time.Now(),
	}

	// Booking creation and the occupancy update land together or not at
	// all; the store re-checks availability under its lock.
	if err := s.store.Bookings.CreateWithSeatClaim(ctx, booking); err != nil {
		return nil, err
	}

	s.log.Info("Booking created",
		zap.String("booking_id", booking.ID),
		zap.String("reference", booking.Reference),
		zap.String("user_id", userID),
		zap.Int("seat_count", len(seats)),
		zap.Int64("total_price", totalPrice),
	)

	return s.buildBookingResponse(ctx, booking), nil
}

func (s *bookingService) CancelBooking(ctx context.Context, userID string, isAdmin bool, bookingID string) error {
	booking, err := s.store.Bookings.FindByID(ctx, bookingID)
	if err != nil {
		return fmt.Errorf("cancel booking: %w", err)
	}
	if booking == nil {
		return fmt.Errorf("booking %s: %w", bookingID, entity.ErrNotFound)
	}

	if !isAdmin && booking.UserID != userID {
		return fmt.Errorf("booking %s: %w", bookingID, entity.ErrForbidden)
	}

	if _, err := s.store.Bookings.CancelWithSeatRelease(ctx, bookingID); err != nil {
		return err
	}

	s.log.Info("Booking cancelled",
		zap.String("booking_id", bookingID),
		zap.String("reference", booking.Reference),
		zap.Bool("by_admin", isAdmin),
	)
	return nil
}

func (s *bookingService) GetUserBookings(ctx context.Context, userID string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error) {
	bookings, err := s.store.Bookings.FindByUserID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to get user bookings",
			zap.Error(err),
			zap.String("user_id", userID),
		)
		return nil, fmt.Errorf("get user bookings: %w", err)
	}

	total := int64(len(bookings))

	// Newest first
	for i, j := 0, len(bookings)-1; i < j; i, j = i+1, j-1 {
		bookings[i], bookings[j] = bookings[j], bookings[i]
	}

	offset := req.Offset()
	limit := req.Limit()
	if offset > len(bookings) {
		offset = len(bookings)
	}
	end := offset + limit
	if end > len(bookings) {
		end = len(bookings)
	}
	page := bookings[offset:end]

	bookingResponses := lo.Map(page, func(b entity.Booking, _ int) response.BookingResponse {
		return *s.buildBookingResponse(ctx, &b)
	})

	return response.NewPaginatedResponse(bookingResponses, req.Page, req.PerPage, total), nil
}

func (s *bookingService) GetBookingByID(ctx context.Context, bookingID string) (*response.BookingResponse, error) {
	booking, err := s.store.Bookings.FindByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}
	if booking == nil {
		return nil, fmt.Errorf("booking %s: %w", bookingID, entity.ErrNotFound)
	}

	return s.buildBookingResponse(ctx, booking), nil
}

// validateSeatIDs rejects identifiers outside the grid and duplicates in
// the selection itself.
func validateSeatIDs(seats []string) ([]string, error) {
	for _, seat := range seats {
		if !entity.ValidSeatID(seat) {
			return nil, fmt.Errorf("seat %s: %w", seat, entity.ErrInvalidSeat)
		}
	}

	if dupes := lo.FindDuplicates(seats); len(dupes) > 0 {
		return nil, fmt.Errorf("seat %s selected twice: %w", dupes[0], entity.ErrInvalidSeat)
	}

	return seats, nil
}

func (s *bookingService) buildBookingResponse(ctx context.Context, booking *entity.Booking) *response.BookingResponse {
	var movieTitle, theaterName, startTime string

	showTime, _ := s.store.Showtimes.FindByID(ctx, booking.ShowTimeID)
	if showTime != nil {
		startTime = showTime.StartTime

		movie, _ := s.store.Movies.FindByID(ctx, showTime.MovieID)
		if movie != nil {
			movieTitle = movie.Title
		}

		theater, _ := s.store.Theaters.FindByID(ctx, showTime.TheaterID)
		if theater != nil {
			theaterName = theater.Name
		}
	}

	resp := response.BookingToResponse(booking, movieTitle, theaterName, startTime)
	return &resp
}
