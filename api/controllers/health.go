package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/rotalog/rotalog-backend/api/responses"
	"github.com/rotalog/rotalog-backend/pkg/config"
	"github.com/rotalog/rotalog-backend/pkg/logger"
)

const readinessTimeout = 2 * time.Second

type pinger interface {
	Ping(ctx context.Context) error
}

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Rotalog-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady pings the datastore dependencies before reporting ready.
func HealthReady(cfg *config.Config, logg *logger.Logger, db, cache pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Rotalog-Env", cfg.App.Env)

		ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
		defer cancel()

		checks := map[string]string{}
		healthy := true

		checks["database"] = "ok"
		if db == nil {
			checks["database"] = "not configured"
			healthy = false
		} else if err := db.Ping(ctx); err != nil {
			logg.Error(ctx, "database readiness check failed", err)
			checks["database"] = "unreachable"
			healthy = false
		}

		checks["redis"] = "ok"
		if cache == nil {
			checks["redis"] = "not configured"
			healthy = false
		} else if err := cache.Ping(ctx); err != nil {
			logg.Error(ctx, "redis readiness check failed", err)
			checks["redis"] = "unreachable"
			healthy = false
		}

		if !healthy {
			responses.WriteSuccessStatus(w, http.StatusServiceUnavailable, map[string]any{
				"status": "degraded",
				"checks": checks,
			})
			return
		}

		responses.WriteSuccess(w, map[string]any{
			"status": "ready",
			"checks": checks,
		})
	}
}
