package routes

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/angelmondragon/skb-upsell-backend/api/controllers"
	quotecontrollers "github.com/angelmondragon/skb-upsell-backend/api/controllers/quotes"
	sessioncontrollers "github.com/angelmondragon/skb-upsell-backend/api/controllers/sessions"
	"github.com/angelmondragon/skb-upsell-backend/api/middleware"
	"github.com/angelmondragon/skb-upsell-backend/internal/quotes"
	"github.com/angelmondragon/skb-upsell-backend/internal/sessions"
	"github.com/angelmondragon/skb-upsell-backend/pkg/config"
	"github.com/angelmondragon/skb-upsell-backend/pkg/logger"
)

// redisDeps is the slice of the redis client the router needs.
type redisDeps interface {
	Ping(context.Context) error
	FixedWindowAllow(ctx context.Context, scope string, limit int64, window time.Duration) (bool, int64, error)
}

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	redisClient redisDeps,
	gatherer prometheus.Gatherer,
	quoteService quotes.Service,
	sessionService sessions.Service,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, redisClient))
	})

	if gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	}

	passcodePolicy := middleware.NewPasscodePolicy(cfg.Passcode.RateWindow, cfg.Passcode.RateIPLimit)

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Passcode(cfg.Passcode.Hash, passcodePolicy, redisClient, logg))

		r.Get("/catalog", controllers.Catalog(quoteService, logg))
		r.Get("/presets", controllers.Presets(quoteService, logg))
		r.Post("/quotes", quotecontrollers.QuoteEvaluate(quoteService, logg))

		r.Route("/sessions", func(r chi.Router) {
			r.Post("/", sessioncontrollers.SessionCreate(sessionService, logg))
			r.Get("/{sessionId}", sessioncontrollers.SessionFetch(sessionService, logg))
			r.Patch("/{sessionId}", sessioncontrollers.SessionEdit(sessionService, logg))
			r.Delete("/{sessionId}", sessioncontrollers.SessionDelete(sessionService, logg))
		})
	})

	return r
}
