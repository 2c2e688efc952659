package entity

// ShowTime is a scheduled screening of a movie at a theater. OccupiedSeats
// holds the seat identifiers already claimed by confirmed bookings; it grows
// on booking and shrinks on cancellation.
type ShowTime struct {
	ID            string   `json:"id"`
	MovieID       string   `json:"movie_id"`
	TheaterID     string   `json:"theater_id"`
	StartTime     string   `json:"start_time"` // HH:MM
	Price         int64    `json:"price"`      // per seat, base currency unit
	OccupiedSeats []string `json:"occupied_seats"`
}

// IsOccupied reports whether the seat is claimed by an active booking.
func (st *ShowTime) IsOccupied(seatID string) bool {
	for _, s := range st.OccupiedSeats {
		if s == seatID {
			return true
		}
	}
	return false
}
