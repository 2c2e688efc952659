package wire

import (
	"net/http"

	"cinebook/internal/adaptor"
	"cinebook/internal/usecase"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func SessionWire(r chi.Router, service usecase.SessionService, authMW func(http.Handler) http.Handler, logger *zap.Logger) {
	handler := adaptor.NewSessionHandler(service, logger)

	r.Route("/auth", func(r chi.Router) {
		r.Post("/login", handler.Login)

		r.Group(func(r chi.Router) {
			r.Use(authMW)
			r.Post("/logout", handler.Logout)
		})
	})
}
