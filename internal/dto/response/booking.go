package response

import (
	"time"

	"cinebook/internal/data/entity"
)

type BookingResponse struct {
	ID          string               `json:"id"`
	Reference   string               `json:"reference"`
	UserID      string               `json:"user_id"`
	ShowTimeID  string               `json:"showtime_id"`
	MovieTitle  string               `json:"movie_title,omitempty"`
	TheaterName string               `json:"theater_name,omitempty"`
	StartTime   string               `json:"start_time,omitempty"`
	Seats       []string             `json:"seats"`
	TotalPrice  int64                `json:"total_price"`
	Status      entity.BookingStatus `json:"status"`
	BookedAt    time.Time            `json:"booked_at"`
}

func BookingToResponse(b *entity.Booking, movieTitle, theaterName, startTime string) BookingResponse {
	return BookingResponse{
		ID:          b.ID,
		Reference:   b.Reference,
		UserID:      b.UserID,
		ShowTimeID:  b.ShowTimeID,
		MovieTitle:  movieTitle,
		TheaterName: theaterName,
		StartTime:   startTime,
		Seats:       b.Seats,
		TotalPrice:  b.TotalPrice,
		Status:      b.Status,
		BookedAt:    b.BookedAt,
	}
}
