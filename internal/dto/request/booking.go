package request

type CreateBookingRequest struct {
	ShowTimeID string `json:"showtime_id" validate:"required"`
	// Seats stays untagged so the engine can report an empty selection as a
	// domain error rather than a generic validation failure.
	Seats []string `json:"seats"`
}
