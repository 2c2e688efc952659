package wire

import (
	"cinebook/internal/adaptor"
	"cinebook/internal/usecase"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func TriviaWire(r chi.Router, service usecase.TriviaService, logger *zap.Logger) {
	handler := adaptor.NewTriviaHandler(service, logger)

	r.Get("/movies/{id}/trivia", handler.GetMovieTrivia)
	r.Post("/recommendations", handler.GetRecommendation)
}
