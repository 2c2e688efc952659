package wire

import (
	"net/http"

	"cinebook/internal/adaptor"
	"cinebook/internal/usecase"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func BookingWire(r chi.Router, service usecase.BookingService, authMW, adminMW func(http.Handler) http.Handler, logger *zap.Logger) {
	handler := adaptor.NewBookingHandler(service, logger)

	r.Group(func(r chi.Router) {
		r.Use(authMW)
		r.Post("/bookings", handler.CreateBooking)
		r.Put("/bookings/{id}/cancel", handler.CancelBooking)
		r.Get("/user/bookings", handler.GetUserBookings)
	})

	r.Route("/admin/bookings", func(r chi.Router) {
		r.Use(authMW)
		r.Use(adminMW)
		r.Get("/{id}", handler.GetBookingByID)
		r.Put("/{id}/cancel", handler.AdminCancelBooking)
	})
}
