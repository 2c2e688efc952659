package wire

import (
	"net/http"

	"cinebook/internal/data/store"
	"cinebook/internal/usecase"
	"cinebook/pkg/middleware"
	"cinebook/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type App struct {
	Router *chi.Mux
}

func Wiring(st *store.Store, config *utils.Config, logger *zap.Logger) *App {
	service := usecase.NewService(st, config, logger)

	router := setupRouter(logger)

	authMW := middleware.AuthSession(st.Sessions, logger)
	adminMW := middleware.Admin(logger)

	router.Route("/api", func(r chi.Router) {
		SessionWire(r, service.Session, authMW, logger)
		CatalogWire(r, service.Catalog, authMW, adminMW, logger)
		BookingWire(r, service.Booking, authMW, adminMW, logger)
		TriviaWire(r, service.Trivia, logger)
	})

	return &App{Router: router}
}

func setupRouter(logger *zap.Logger) *chi.Mux {
	router := chi.NewRouter()

	router.Use(middleware.Logger(logger))
	router.Use(middleware.Recover(logger))
	router.Use(middleware.CORS())

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		utils.ResponseSuccess(w, "OK", nil)
	})

	return router
}
