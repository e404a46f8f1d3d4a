package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/andesmarket/shipping-backend/api/controllers"
	shippingcontrollers "github.com/andesmarket/shipping-backend/api/controllers/shipping"
	"github.com/andesmarket/shipping-backend/api/middleware"
	shippingsvc "github.com/andesmarket/shipping-backend/internal/shipping"
	"github.com/andesmarket/shipping-backend/pkg/config"
	"github.com/andesmarket/shipping-backend/pkg/db"
	"github.com/andesmarket/shipping-backend/pkg/logger"
	"github.com/andesmarket/shipping-backend/pkg/redis"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP db.Pinger,
	redisClient *redis.Client,
	registry *prometheus.Registry,
	shippingService shippingsvc.Service,
) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, dbP, redisClient))
	})

	r.Route("/api/public", func(r chi.Router) {
		r.Get("/ping", controllers.PublicPing())
	})

	r.Route("/api/v1/shipping", func(r chi.Router) {
		r.Post("/rates", shippingcontrollers.QuoteRates(shippingService, logg))
	})

	if registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	}

	return r
}
