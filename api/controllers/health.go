package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/angelmondragon/storegate/pkg/cache"
	"github.com/angelmondragon/storegate/pkg/config"
	"github.com/angelmondragon/storegate/pkg/logger"
)

// HealthLive answers as soon as the process serves traffic.
func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"status": "ok",
			"env":    cfg.App.Env,
		})
	}
}

// HealthReady also checks the optional redis dependency. A disabled cache
// reports as skipped rather than failing readiness; the gateway works
// without it.
func HealthReady(cfg *config.Config, logg *logger.Logger, redisClient *cache.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		checks := map[string]string{"redis": "skipped"}
		status := http.StatusOK

		if redisClient != nil {
			if err := redisClient.Ping(ctx); err != nil {
				checks["redis"] = "down"
				status = http.StatusServiceUnavailable
				if logg != nil {
					logg.Warn(ctx, "readiness: redis unreachable")
				}
			} else {
				checks["redis"] = "ok"
			}
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(map[string]any{
			"status": http.StatusText(status),
			"checks": checks,
		})
	}
}
