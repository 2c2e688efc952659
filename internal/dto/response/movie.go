package response

import (
	"cinebook/internal/data/entity"
)

type MovieResponse struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Genres      []string `json:"genres"`
	Duration    int      `json:"duration"`
	Language    string   `json:"language"`
	ReleaseDate string   `json:"release_date"`
	Rating      float64  `json:"rating"`
	Description string   `json:"description,omitempty"`
	PosterURL   string   `json:"poster_url,omitempty"`
	Status      string   `json:"status"`
}

type TheaterResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
}

func MovieToResponse(movie *entity.Movie) MovieResponse {
	return MovieResponse{
		ID:          movie.ID,
		Title:       movie.Title,
		Genres:      movie.Genres,
		Duration:    movie.Duration,
		Language:    movie.Language,
		ReleaseDate: movie.ReleaseDate.Format("2006-01-02"),
		Rating:      movie.Rating,
		Description: movie.Description,
		PosterURL:   movie.PosterURL,
		Status:      string(movie.Status),
	}
}

func TheaterToResponse(theater *entity.Theater) TheaterResponse {
	return TheaterResponse{
		ID:       theater.ID,
		Name:     theater.Name,
		Location: theater.Location,
	}
}
