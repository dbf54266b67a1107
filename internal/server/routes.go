package server

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RegisterRoutes sets up the router with all endpoints.
func (s *Server) RegisterRoutes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(s.logger))

	r.Get("/health", s.healthHandler)
	if s.gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))
	}

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/book", http.StatusFound)
	})

	// Booking wizard
	r.Get("/book", s.BookingPageHandler)
	r.Get("/book/whatsapp", s.BookingChatHandler)

	// Bill request
	r.Get("/bill", s.BillPageHandler)

	r.Group(func(r chi.Router) {
		r.Use(s.limiter.middleware)
		r.Post("/book/next", s.BookingNextHandler)
		r.Post("/book/back", s.BookingBackHandler)
		r.Post("/book/submit", s.BookingSubmitHandler)
		r.Post("/book/new", s.BookingResetHandler)
		r.Post("/bill", s.BillSubmitHandler)
	})

	return r
}

// healthHandler reports whether the draft session store is reachable.
func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), time.Second)
	defer cancel()

	status := http.StatusOK
	stats := map[string]string{"status": "up"}
	if err := s.store.Ping(ctx); err != nil {
		status = http.StatusServiceUnavailable
		stats["status"] = "down"
		stats["error"] = err.Error()
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(stats)
}
