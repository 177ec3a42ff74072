package proxy

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"slidegate/internal/clients/brokerage"
	"slidegate/internal/contract"
	"slidegate/internal/correlation"
	"slidegate/internal/httpclient"
	"slidegate/internal/logging"
	"slidegate/internal/metrics"
)

// Upstream mirrors requests to the brokerage core service.
type Upstream interface {
	Forward(ctx context.Context, req brokerage.ForwardRequest) (*httpclient.Response, error)
}

type Service interface {
	Forward(ctx context.Context, operation string, req brokerage.ForwardRequest) Result
}

type service struct {
	upstream Upstream
	metrics  *metrics.Metrics
	logger   logging.Logger
}

func NewService(upstream Upstream, m *metrics.Metrics, logger logging.Logger) Service {
	return &service{
		upstream: upstream,
		metrics:  m,
		logger:   logger.With("component", "proxy_service"),
	}
}

// Forward mirrors one request upstream. A 2xx reply passes through with its
// status, body, and content type intact. Everything else, an unreachable
// upstream included, collapses into a 500 failure envelope so callers see a
// single error shape. The real cause goes to the log, never to the caller.
func (s *service) Forward(ctx context.Context, operation string, req brokerage.ForwardRequest) Result {
	start := time.Now()
	resp, err := s.upstream.Forward(ctx, req)
	s.metrics.ObserveUpstreamLatency(operation, time.Since(start))

	if err != nil {
		s.logger.Error("upstream unreachable",
			"operation", operation,
			"method", req.Method,
			"path", req.Path,
			"error", err,
		)
		s.metrics.IncrementForward(operation, "transport_error")
		return s.failure(ctx, operation)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		s.logger.Error("upstream returned an error status",
			"operation", operation,
			"method", req.Method,
			"path", req.Path,
			"status", resp.StatusCode,
		)
		s.metrics.IncrementForward(operation, "upstream_error")
		return s.failure(ctx, operation)
	}

	s.metrics.IncrementForward(operation, "ok")
	return Result{
		StatusCode:  resp.StatusCode,
		Body:        resp.Body,
		ContentType: resp.ContentType,
	}
}

func (s *service) failure(ctx context.Context, operation string) Result {
	env := contract.NewFailure("Failed to "+operation, correlation.FromContext(ctx))
	body, _ := json.Marshal(env)

	return Result{
		StatusCode:  http.StatusInternalServerError,
		Body:        body,
		ContentType: "application/json",
	}
}
