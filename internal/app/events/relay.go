package events

import (
	"context"

	"slidegate/internal/contract"
)

// Relay announces accepted events to downstream consumers.
type Relay interface {
	UserRegistered(ctx context.Context, ev contract.UserRegisteredEvent) error
	UserLogin(ctx context.Context, ev contract.UserLoginEvent, device string) error
}

// NoopRelay is a no-op implementation, useful for tests or when the bus is
// disabled.
type NoopRelay struct{}

func (NoopRelay) UserRegistered(ctx context.Context, ev contract.UserRegisteredEvent) error {
	return nil
}

func (NoopRelay) UserLogin(ctx context.Context, ev contract.UserLoginEvent, device string) error {
	return nil
}
