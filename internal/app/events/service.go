package events

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"slidegate/internal/app/proxy"
	"slidegate/internal/cache"
	"slidegate/internal/clients/brokerage"
	"slidegate/internal/contract"
	"slidegate/internal/correlation"
	"slidegate/internal/logging"
	"slidegate/internal/metrics"
)

type Service interface {
	Ingest(ctx context.Context, input IngestInput) IngestResult
}

type service struct {
	forwarder proxy.Service
	relay     Relay
	store     cache.IdempotencyStore
	metrics   *metrics.Metrics
	logger    logging.Logger
}

func NewService(
	forwarder proxy.Service,
	relay Relay,
	store cache.IdempotencyStore,
	m *metrics.Metrics,
	logger logging.Logger,
) Service {
	return &service{
		forwarder: forwarder,
		relay:     relay,
		store:     store,
		metrics:   m,
		logger:    logger.With("component", "events_service"),
	}
}

// Ingest validates one event submission and forwards it upstream. Malformed
// payloads are rejected before any network call. Accepted events are relayed
// to the bus only after the upstream takes them, so consumers never see an
// event the core rejected. A repeated Idempotency-Key replays the stored
// outcome instead of forwarding again.
func (s *service) Ingest(ctx context.Context, input IngestInput) IngestResult {
	ev, err := contract.ParseDomainEvent(input.Body)
	if err != nil {
		label := "invalid"
		var ute *contract.UnknownEventTypeError
		if errors.As(err, &ute) {
			label = ute.EventType
		}
		s.metrics.IncrementEvent(label, "rejected")
		s.logger.Warn("rejected event payload", "error", err)
		return s.reject(ctx, err)
	}

	eventType := string(ev.Type())

	key := strings.TrimSpace(input.IdempotencyKey)
	if key != "" {
		rec, err := s.store.Get(ctx, key)
		if err != nil {
			s.logger.Error("idempotency lookup failed", "error", err, "key", key)
		} else if rec != nil {
			s.metrics.IncrementEvent(eventType, "replayed")
			return IngestResult{
				Result: proxy.Result{
					StatusCode:  rec.StatusCode,
					Body:        rec.Body,
					ContentType: rec.ContentType,
				},
				Replayed: true,
			}
		}
	}

	res := s.forwarder.Forward(ctx, proxy.OpPublishEvent, brokerage.ForwardRequest{
		Method:        http.MethodPost,
		Path:          "/api/v1/events",
		Body:          input.Body,
		ContentType:   input.ContentType,
		Authorization: input.Authorization,
	})

	if res.StatusCode >= 200 && res.StatusCode <= 299 {
		s.announce(ctx, ev)
		s.metrics.IncrementEvent(eventType, "published")

		if key != "" {
			rec := cache.Record{
				Key:         key,
				StatusCode:  res.StatusCode,
				Body:        res.Body,
				ContentType: res.ContentType,
				CompletedAt: time.Now().UTC(),
			}
			if err := s.store.Put(ctx, rec); err != nil {
				s.logger.Error("failed to store idempotency record", "error", err, "key", key)
			}
		}
	}

	return IngestResult{Result: res}
}

// announce is best effort: a broker outage must not fail a submission the
// upstream already accepted.
func (s *service) announce(ctx context.Context, ev contract.DomainEvent) {
	var err error
	switch e := ev.(type) {
	case contract.UserRegisteredEvent:
		err = s.relay.UserRegistered(ctx, e)
	case contract.UserLoginEvent:
		err = s.relay.UserLogin(ctx, e, DeviceLabel(e.UserAgent))
	}
	if err != nil {
		s.logger.Error("failed to relay event", "error", err, "eventType", string(ev.Type()))
	}
}

func (s *service) reject(ctx context.Context, err error) IngestResult {
	env := contract.NewFailure(err.Error(), correlation.FromContext(ctx))
	body, _ := json.Marshal(env)

	return IngestResult{Result: proxy.Result{
		StatusCode:  http.StatusBadRequest,
		Body:        body,
		ContentType: "application/json",
	}}
}
