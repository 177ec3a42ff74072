package health

import (
	"net/http"

	"slidegate/internal/cache"
	"slidegate/internal/clients/brokerage"
	"slidegate/internal/http/responses"
	"slidegate/internal/logging"
)

type Handler struct {
	upstream *brokerage.Client
	cache    *cache.RedisClient
	logger   logging.Logger
}

// NewHandler probes the brokerage core and, when configured, Redis. A nil
// redisClient skips the Redis probe.
func NewHandler(upstream *brokerage.Client, redisClient *cache.RedisClient, logger logging.Logger) *Handler {
	return &Handler{
		upstream: upstream,
		cache:    redisClient,
		logger:   logger.With("component", "health_http_handler"),
	}
}

// Check reports gateway liveness plus dependency reachability. A degraded
// dependency downgrades the status field, never the HTTP code.
func (h *Handler) Check(w http.ResponseWriter, r *http.Request) {
	report := map[string]string{
		"status":   "ok",
		"upstream": "ok",
	}

	if err := h.upstream.Ping(r.Context()); err != nil {
		h.logger.Warn("upstream health probe failed", "error", err)
		report["status"] = "degraded"
		report["upstream"] = "unreachable"
	}

	if h.cache != nil {
		report["redis"] = "ok"
		if err := h.cache.Ping(r.Context()); err != nil {
			h.logger.Warn("redis health probe failed", "error", err)
			report["status"] = "degraded"
			report["redis"] = "unreachable"
		}
	}

	responses.WriteJSON(w, http.StatusOK, report)
}
