package kafka

import (
	"context"
	"fmt"

	appevents "slidegate/internal/app/events"
	"slidegate/internal/config"
	"slidegate/internal/contract"
	"slidegate/internal/logging"
)

type eventRelay struct {
	bus         Bus
	topicPrefix string
	logger      logging.Logger
}

// NewEventRelay publishes validated domain events for downstream consumers
// (analytics, CRM). Publication is best effort; the ingestion service decides
// what a failed relay means for the caller.
func NewEventRelay(bus Bus, cfg config.KafkaConfig, logger logging.Logger) appevents.Relay {
	return &eventRelay{
		bus:         bus,
		topicPrefix: cfg.TopicPrefix,
		logger:      logger.With("component", "event_relay"),
	}
}

func (r *eventRelay) topic() string {
	return r.topicPrefix + "user-events"
}

func (r *eventRelay) UserRegistered(ctx context.Context, ev contract.UserRegisteredEvent) error {
	if err := r.bus.Publish(ctx, r.topic(), string(contract.EventUserRegistered), ev); err != nil {
		return fmt.Errorf("publish user.registered: %w", err)
	}
	return nil
}

func (r *eventRelay) UserLogin(ctx context.Context, ev contract.UserLoginEvent, device string) error {
	payload := struct {
		contract.UserLoginEvent
		Device string `json:"device,omitempty"`
	}{ev, device}

	if err := r.bus.Publish(ctx, r.topic(), string(contract.EventUserLogin), payload); err != nil {
		return fmt.Errorf("publish user.login: %w", err)
	}
	return nil
}
