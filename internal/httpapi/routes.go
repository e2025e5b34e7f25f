package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"go-quiz/internal/api"
)

// SetupRoutes exposes a quiz backend over JSON/HTTP.
func SetupRoutes(svc api.Service, logger *zap.Logger) http.Handler {
	h := &handlers{svc: svc, logger: logger.Named("http")}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(h.logRequests)

	r.Get("/healthz", Healthz)
	r.Get("/user", h.fetchUser)
	r.Post("/user/notifications/block", h.blockNotifications)
	r.Get("/game-types", h.gameTypes)
	r.Get("/scoreboard", h.scoreboard)

	r.Route("/battles", func(r chi.Router) {
		r.Post("/", h.startBattle)
		r.Get("/{battleID}", h.getBattle)
		r.Post("/{battleID}/questions/{questionID}/answer", h.answer)
	})
	return r
}
