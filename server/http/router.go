package serverhttp

import (
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"sizeguide-service/internal/agegate"
	"sizeguide-service/internal/config"
	"sizeguide-service/internal/middleware"
	sizeHnd "sizeguide-service/internal/sizing/handler"
	"sizeguide-service/internal/sizing/service"
	"sizeguide-service/server/http/handlers"
)

func NewRouter(cfg config.Config, reg *service.Registry, logger zerolog.Logger) *chi.Mux {
	r := chi.NewRouter()

	// порядок важен: recover -> requestID -> logging -> cors -> limit
	r.Use(middleware.Recover(logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.Logging(logger))
	r.Use(middleware.CORS(cfg.AllowOrigins))
	r.Use(middleware.LimitBytes(int64(cfg.MaxUploadMB) * 1024 * 1024))

	r.Get("/health", handlers.Health)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/guide", sizeHnd.Guide(cfg))

		r.Get("/age-gate", agegate.Status())
		r.Post("/age-gate", agegate.Confirm(cfg.AgeGateRejectURL, cfg.CookieSecure, logger))

		r.Post("/recommend", sizeHnd.Recommend(cfg, reg, logger))

		r.Get("/charts", sizeHnd.ListCharts(reg))
		r.Route("/charts/{category}", func(r chi.Router) {
			r.Get("/", sizeHnd.GetChart(cfg, reg))
			r.Put("/", sizeHnd.PutChart(cfg, reg, logger))
			r.Post("/recommend", sizeHnd.Recommend(cfg, reg, logger))
		})
	})

	return r
}
