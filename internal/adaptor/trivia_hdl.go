package adaptor

import (
	"encoding/json"
	"net/http"

	"cinebook/internal/dto/request"
	"cinebook/internal/usecase"
	"cinebook/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type TriviaHandler struct {
	service usecase.TriviaService
	log     *zap.Logger
}

func NewTriviaHandler(service usecase.TriviaService, log *zap.Logger) *TriviaHandler {
	return &TriviaHandler{
		service: service,
		log:     log.With(zap.String("handler", "trivia")),
	}
}

func (h *TriviaHandler) GetMovieTrivia(w http.ResponseWriter, r *http.Request) {
	movieID := chi.URLParam(r, "id")

	trivia, err := h.service.GetMovieTrivia(r.Context(), movieID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Trivia retrieved successfully", trivia)
}

func (h *TriviaHandler) GetRecommendation(w http.ResponseWriter, r *http.Request) {
	var req request.RecommendationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	recommendation, err := h.service.GetRecommendation(r.Context(), &req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Recommendation retrieved successfully", recommendation)
}
