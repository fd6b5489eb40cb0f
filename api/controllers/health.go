package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/angelmondragon/skb-upsell-backend/api/responses"
	"github.com/angelmondragon/skb-upsell-backend/pkg/config"
	pkgerrors "github.com/angelmondragon/skb-upsell-backend/pkg/errors"
	"github.com/angelmondragon/skb-upsell-backend/pkg/logger"
)

const (
	envHeader    = "X-SKB-Env"
	readyTimeout = 2 * time.Second
)

// Pinger is a dependency the readiness probe checks.
type Pinger interface {
	Ping(context.Context) error
}

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(envHeader, cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

func HealthReady(cfg *config.Config, logg *logger.Logger, redis Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(envHeader, cfg.App.Env)
		if redis == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeDependency, "redis not configured"))
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), readyTimeout)
		defer cancel()
		if err := redis.Ping(ctx); err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "redis unavailable").
				WithDetails(map[string]string{"dependency": "redis"}))
			return
		}
		responses.WriteSuccess(w, map[string]string{"status": "ready"})
	}
}
