package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/kamikazebr/engage-server/internal/config"
	"github.com/kamikazebr/engage-server/pkg/version"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Handlers groups everything the router mounts.
type Handlers struct {
	Codes         *CodeHandler
	Notifications *NotificationHandler
	Events        *EventHandler
}

func NewRouter(h *Handlers, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(RequestLogger)
	r.Use(middleware.Recoverer)
	r.Use(CORSMiddleware(cfg.AllowedOrigins))

	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		respondErrorJSON(w, http.StatusMethodNotAllowed, "method not allowed")
	})
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		respondErrorJSON(w, http.StatusNotFound, "route not found")
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]interface{}{
			"status":  "healthy",
			"service": "engage-server",
			"build":   version.Get(),
		})
	})

	// Function-style endpoints kept for existing mobile clients. They accept
	// any method so the handler can answer 405 itself.
	r.Handle("/metrics", promhttp.Handler())

	r.HandleFunc("/sendVerificationCode", h.Codes.RequestCode)
	r.HandleFunc("/sendNotification", h.Notifications.Send)

	r.Route("/api", func(r chi.Router) {
		r.Post("/codes/request", h.Codes.RequestCode)
		r.Post("/codes/verify", h.Codes.VerifyCode)
		r.Post("/notifications/send", h.Notifications.Send)
	})

	r.With(RequireBearerToken(cfg.EventsSecret)).Post("/events/{collection}", h.Events.DocumentCreated)

	return r
}
