package events

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"slidegate/internal/app/proxy"
	"slidegate/internal/cache"
	"slidegate/internal/clients/brokerage"
	"slidegate/internal/contract"
	"slidegate/internal/logging"
)

type fakeForwarder struct {
	res     proxy.Result
	calls   int
	lastOp  string
	lastReq brokerage.ForwardRequest
}

func (f *fakeForwarder) Forward(ctx context.Context, operation string, req brokerage.ForwardRequest) proxy.Result {
	f.calls++
	f.lastOp = operation
	f.lastReq = req
	return f.res
}

type recordingRelay struct {
	registered []contract.UserRegisteredEvent
	logins     []contract.UserLoginEvent
	devices    []string
	err        error
}

func (r *recordingRelay) UserRegistered(ctx context.Context, ev contract.UserRegisteredEvent) error {
	r.registered = append(r.registered, ev)
	return r.err
}

func (r *recordingRelay) UserLogin(ctx context.Context, ev contract.UserLoginEvent, device string) error {
	r.logins = append(r.logins, ev)
	r.devices = append(r.devices, device)
	return r.err
}

func acceptedResult() proxy.Result {
	return proxy.Result{
		StatusCode:  http.StatusOK,
		Body:        []byte(`{"success":true,"data":{"received":true}}`),
		ContentType: "application/json",
	}
}

func newTestService(f *fakeForwarder, r Relay) Service {
	store := cache.NewMemoryIdempotencyStore(time.Hour)
	return NewService(f, r, store, nil, logging.NewNop())
}

func TestIngest(t *testing.T) {
	ctx := context.Background()

	t.Run("missing email is rejected before any forwarding", func(t *testing.T) {
		forwarder := &fakeForwarder{res: acceptedResult()}
		relay := &recordingRelay{}
		svc := newTestService(forwarder, relay)

		res := svc.Ingest(ctx, IngestInput{Body: []byte(`{
			"eventType": "user.registered",
			"userId": "5f0e8d9c-5b3a-4a2e-9f1d-8c7b6a5e4d3c",
			"registrationDate": "2026-03-01T09:30:00Z"
		}`)})

		assert.Equal(t, http.StatusBadRequest, res.StatusCode)
		assert.Contains(t, string(res.Body), "email")
		assert.Zero(t, forwarder.calls)
		assert.Empty(t, relay.registered)
	})

	t.Run("unknown event type never reaches the upstream", func(t *testing.T) {
		forwarder := &fakeForwarder{res: acceptedResult()}
		svc := newTestService(forwarder, &recordingRelay{})

		res := svc.Ingest(ctx, IngestInput{Body: []byte(`{"eventType":"order.filled"}`)})

		assert.Equal(t, http.StatusBadRequest, res.StatusCode)
		assert.Contains(t, string(res.Body), "order.filled")
		assert.Zero(t, forwarder.calls)
	})

	t.Run("accepted events forward then relay", func(t *testing.T) {
		forwarder := &fakeForwarder{res: acceptedResult()}
		relay := &recordingRelay{}
		svc := newTestService(forwarder, relay)

		res := svc.Ingest(ctx, IngestInput{
			Body:          []byte(validRegisteredPayload),
			ContentType:   "application/json",
			Authorization: "Bearer abc",
		})

		assert.Equal(t, http.StatusOK, res.StatusCode)
		assert.False(t, res.Replayed)
		assert.Equal(t, 1, forwarder.calls)
		assert.Equal(t, "publish user event", forwarder.lastOp)
		assert.Equal(t, "/api/v1/events", forwarder.lastReq.Path)
		assert.Equal(t, "Bearer abc", forwarder.lastReq.Authorization)

		require.Len(t, relay.registered, 1)
		assert.Equal(t, "trader@example.com", relay.registered[0].Email)
	})

	t.Run("login events relay with a device label", func(t *testing.T) {
		forwarder := &fakeForwarder{res: acceptedResult()}
		relay := &recordingRelay{}
		svc := newTestService(forwarder, relay)

		svc.Ingest(ctx, IngestInput{Body: []byte(`{
			"eventType": "user.login",
			"userId": "5f0e8d9c-5b3a-4a2e-9f1d-8c7b6a5e4d3c",
			"loginDate": "2026-03-02T08:15:00Z",
			"userAgent": "Mozilla/5.0 (X11; Linux x86_64; rv:121.0) Gecko/20100101 Firefox/121.0"
		}`)})

		require.Len(t, relay.devices, 1)
		assert.Contains(t, relay.devices[0], "Firefox")
	})

	t.Run("upstream rejection suppresses the relay", func(t *testing.T) {
		forwarder := &fakeForwarder{res: proxy.Result{
			StatusCode:  http.StatusInternalServerError,
			Body:        []byte(`{"success":false,"error":"Failed to publish user event"}`),
			ContentType: "application/json",
		}}
		relay := &recordingRelay{}
		svc := newTestService(forwarder, relay)

		res := svc.Ingest(ctx, IngestInput{Body: []byte(validRegisteredPayload)})

		assert.Equal(t, http.StatusInternalServerError, res.StatusCode)
		assert.Empty(t, relay.registered)
	})

	t.Run("a relay failure does not fail the submission", func(t *testing.T) {
		forwarder := &fakeForwarder{res: acceptedResult()}
		relay := &recordingRelay{err: errors.New("broker down")}
		svc := newTestService(forwarder, relay)

		res := svc.Ingest(ctx, IngestInput{Body: []byte(validRegisteredPayload)})
		assert.Equal(t, http.StatusOK, res.StatusCode)
	})

	t.Run("a repeated idempotency key replays the stored outcome", func(t *testing.T) {
		forwarder := &fakeForwarder{res: acceptedResult()}
		svc := newTestService(forwarder, &recordingRelay{})

		first := svc.Ingest(ctx, IngestInput{Body: []byte(validRegisteredPayload), IdempotencyKey: "evt-42"})
		require.Equal(t, http.StatusOK, first.StatusCode)
		require.False(t, first.Replayed)

		second := svc.Ingest(ctx, IngestInput{Body: []byte(validRegisteredPayload), IdempotencyKey: "evt-42"})
		assert.Equal(t, http.StatusOK, second.StatusCode)
		assert.True(t, second.Replayed)
		assert.Equal(t, first.Body, second.Body)
		assert.Equal(t, 1, forwarder.calls)
	})

	t.Run("blank idempotency keys are not stored", func(t *testing.T) {
		forwarder := &fakeForwarder{res: acceptedResult()}
		svc := newTestService(forwarder, &recordingRelay{})

		svc.Ingest(ctx, IngestInput{Body: []byte(validRegisteredPayload), IdempotencyKey: "  "})
		svc.Ingest(ctx, IngestInput{Body: []byte(validRegisteredPayload), IdempotencyKey: "  "})

		assert.Equal(t, 2, forwarder.calls)
	})
}

const validRegisteredPayload = `{
	"eventType": "user.registered",
	"userId": "5f0e8d9c-5b3a-4a2e-9f1d-8c7b6a5e4d3c",
	"email": "trader@example.com",
	"registrationDate": "2026-03-01T09:30:00Z"
}`
