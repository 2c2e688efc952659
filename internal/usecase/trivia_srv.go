package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"cinebook/internal/data/entity"
	"cinebook/internal/data/store"
	"cinebook/internal/dto/request"
	"cinebook/internal/dto/response"
	"cinebook/pkg/utils"

	"go.uber.org/zap"
)

// TextGenerator is the slice of the Gemini client this service needs.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

type TriviaService interface {
	GetMovieTrivia(ctx context.Context, movieID string) (*response.TriviaResponse, error)
	GetRecommendation(ctx context.Context, req *request.RecommendationRequest) (*response.RecommendationResponse, error)
}

type triviaService struct {
	movies    store.MovieStore
	generator TextGenerator
	log       *zap.Logger
}

func NewTriviaService(movies store.MovieStore, generator TextGenerator, log *zap.Logger) TriviaService {
	return &triviaService{
		movies:    movies,
		generator: generator,
		log:       log.With(zap.String("service", "trivia")),
	}
}

var fallbackTrivia = []string{
	"The director shot this movie on IMAX film.",
	"The soundtrack was composed using vintage synthesizers.",
	"Most of the sets were built as practical effects.",
}

var fallbackRecommendation = response.RecommendationResponse{
	Title:  "Blade Runner 2049",
	Hook:   "A visual masterpiece about what it means to be human.",
	Source: "fallback",
}

// GetMovieTrivia asks the generator for three facts about the movie. Any
// generator failure degrades to the canned facts rather than an error; the
// movie itself must still exist.
func (s *triviaService) GetMovieTrivia(ctx context.Context, movieID string) (*response.TriviaResponse, error) {
	movie, err := s.movies.FindByID(ctx, movieID)
	if err != nil {
		return nil, fmt.Errorf("get trivia: %w", err)
	}
	if movie == nil {
		return nil, fmt.Errorf("movie %s: %w", movieID, entity.ErrNotFound)
	}

	prompt := fmt.Sprintf(
		"Give me 3 fun, surprising trivia facts about the movie \"%s\" (%s, %s). "+
			"Respond with a JSON array of exactly 3 strings and nothing else.",
		movie.Title, movie.Language, strings.Join(movie.Genres, ", "),
	)

	text, err := s.generator.GenerateText(ctx, prompt)
	if err != nil {
		s.log.Warn("Trivia generation failed, using fallback",
			zap.Error(err),
			zap.String("movie_id", movieID),
		)
		return &response.TriviaResponse{
			MovieTitle: movie.Title,
			Facts:      fallbackTrivia,
			Source:     "fallback",
		}, nil
	}

	var facts []string
	if err := json.Unmarshal([]byte(text), &facts); err != nil || len(facts) == 0 {
		s.log.Warn("Trivia response was not a JSON string array, using fallback",
			zap.String("movie_id", movieID),
		)
		return &response.TriviaResponse{
			MovieTitle: movie.Title,
			Facts:      fallbackTrivia,
			Source:     "fallback",
		}, nil
	}

	return &response.TriviaResponse{
		MovieTitle: movie.Title,
		Facts:      facts,
		Source:     "gemini",
	}, nil
}

func (s *triviaService) GetRecommendation(ctx context.Context, req *request.RecommendationRequest) (*response.RecommendationResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	prompt := fmt.Sprintf(
		"Recommend one movie for someone who likes these genres: %s. "+
			"Respond with a JSON object {\"title\": string, \"hook\": string} and nothing else. "+
			"The hook is a single enticing sentence.",
		strings.Join(req.Genres, ", "),
	)

	text, err := s.generator.GenerateText(ctx, prompt)
	if err != nil {
		s.log.Warn("Recommendation generation failed, using fallback", zap.Error(err))
		fallback := fallbackRecommendation
		return &fallback, nil
	}

	var rec struct {
		Title string `json:"title"`
		Hook  string `json:"hook"`
	}
	if err := json.Unmarshal([]byte(text), &rec); err != nil || rec.Title == "" {
		s.log.Warn("Recommendation response was malformed, using fallback")
		fallback := fallbackRecommendation
		return &fallback, nil
	}

	return &response.RecommendationResponse{
		Title:  rec.Title,
		Hook:   rec.Hook,
		Source: "gemini",
	}, nil
}
