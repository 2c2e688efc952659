package request

type RecommendationRequest struct {
	Genres []string `json:"genres" validate:"required,min=1"`
}
