package wire

import (
	"net/http"

	"cinebook/internal/adaptor"
	"cinebook/internal/usecase"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func CatalogWire(r chi.Router, service usecase.CatalogService, authMW, adminMW func(http.Handler) http.Handler, logger *zap.Logger) {
	handler := adaptor.NewCatalogHandler(service, logger)

	r.Get("/movies", handler.GetMovies)
	r.Get("/movies/{id}", handler.GetMovieByID)
	r.Get("/movies/{id}/showtimes", handler.GetShowtimesByMovie)
	r.Get("/theaters", handler.GetTheaters)
	r.Get("/showtimes/{id}", handler.GetShowtimeByID)

	r.Route("/admin/movies", func(r chi.Router) {
		r.Use(authMW)
		r.Use(adminMW)
		r.Post("/", handler.CreateMovie)
		r.Delete("/{id}", handler.DeleteMovie)
	})
}
