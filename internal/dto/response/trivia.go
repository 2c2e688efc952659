package response

type TriviaResponse struct {
	MovieTitle string   `json:"movie_title"`
	Facts      []string `json:"facts"`
	// Source is "gemini" when the collaborator answered, "fallback" otherwise.
	Source string `json:"source"`
}

type RecommendationResponse struct {
	Title  string `json:"title"`
	Hook   string `json:"hook"`
	Source string `json:"source"`
}
