package entity

import (
	"time"
)

type MovieStatus string

const (
	MovieStatusNowShowing MovieStatus = "now_showing"
	MovieStatusComingSoon MovieStatus = "coming_soon"
)

type Movie struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Genres      []string    `json:"genres"`
	Duration    int         `json:"duration"` // minutes
	Language    string      `json:"language"`
	ReleaseDate time.Time   `json:"release_date"`
	Rating      float64     `json:"rating"`
	Description string      `json:"description"`
	PosterURL   string      `json:"poster_url"`
	Status      MovieStatus `json:"status"`
	CreatedAt   time.Time   `json:"created_at"`
}
