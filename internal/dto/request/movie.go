package request

type MovieRequest struct {
	ID          string   `json:"id,omitempty"`
	Title       string   `json:"title" validate:"required,min=1,max=200"`
	Genres      []string `json:"genres" validate:"required,min=1"`
	Duration    int      `json:"duration" validate:"required,min=1,max=999"`
	Language    string   `json:"language" validate:"required"`
	ReleaseDate string   `json:"release_date" validate:"required,datetime=2006-01-02"`
	Rating      float64  `json:"rating" validate:"min=0,max=10"`
	Description string   `json:"description,omitempty"`
	PosterURL   string   `json:"poster_url,omitempty"`
	Status      string   `json:"status" validate:"required,oneof=now_showing coming_soon"`
}
