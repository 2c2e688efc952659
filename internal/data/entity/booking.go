package entity

import (
	"time"
)

type BookingStatus string

const (
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

type Booking struct {
	ID         string        `json:"id"`
	Reference  string        `json:"reference"` // human-facing, BOOK-YYYYMMDD-HHMMSS-NNNN
	UserID     string        `json:"user_id"`
	ShowTimeID string        `json:"showtime_id"`
	Seats      []string      `json:"seats"` // non-empty, ordered as selected
	TotalPrice int64         `json:"total_price"`
	Status     BookingStatus `json:"status"`
	BookedAt   time.Time     `json:"booked_at"`
}
