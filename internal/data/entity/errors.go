package entity

import "errors"

var (
	// ErrNotFound covers lookups of movies, showtimes and bookings by id.
	ErrNotFound = errors.New("not found")

	// ErrSeatUnavailable is returned when a candidate seat is already in the
	// showtime's occupied set, either at selection or at commit time.
	ErrSeatUnavailable = errors.New("seat unavailable")

	// ErrInvalidSeat is returned for seat identifiers outside the grid.
	ErrInvalidSeat = errors.New("invalid seat identifier")

	// ErrEmptySelection is returned when a booking is attempted with no seats.
	ErrEmptySelection = errors.New("empty seat selection")

	// ErrAlreadyCancelled guards against double-releasing a booking's seats.
	ErrAlreadyCancelled = errors.New("booking already cancelled")

	// ErrDuplicateID is returned when a catalog record reuses an existing id.
	ErrDuplicateID = errors.New("id already exists")

	// ErrForbidden is returned when a customer touches another user's booking.
	ErrForbidden = errors.New("forbidden")

	// ErrExternalServiceUnavailable marks failures of the flavor-text
	// collaborator. Callers absorb it with a static fallback; it is logged,
	// never surfaced.
	ErrExternalServiceUnavailable = errors.New("external service unavailable")
)
