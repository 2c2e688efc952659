package usecase

import (
	"cinebook/internal/data/store"
	"cinebook/internal/gemini"
	"cinebook/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Session SessionService
	Catalog CatalogService
	Booking BookingService
	Trivia  TriviaService
}

func NewService(st *store.Store, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Session: NewSessionService(st.Sessions, log),
		Catalog: NewCatalogService(st, log),
		Booking: NewBookingService(st, config.Booking, log),
		Trivia:  NewTriviaService(st.Movies, gemini.NewClient(config.Gemini), log),
	}
}
