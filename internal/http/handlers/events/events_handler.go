package events

import (
	"io"
	"net/http"

	appevents "slidegate/internal/app/events"
	"slidegate/internal/app/proxy"
	"slidegate/internal/http/responses"
	"slidegate/internal/logging"
)

type Handler struct {
	service appevents.Service
	logger  logging.Logger
}

func NewHandler(service appevents.Service, logger logging.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger.With("component", "events_http_handler"),
	}
}

// Publish POST /events
func (h *Handler) Publish(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		h.logger.Error("failed to read event body", "error", err)
		responses.WriteFailure(w, r, http.StatusInternalServerError, "Failed to "+proxy.OpPublishEvent)
		return
	}

	res := h.service.Ingest(r.Context(), appevents.IngestInput{
		Body:           body,
		ContentType:    r.Header.Get("Content-Type"),
		Authorization:  r.Header.Get("Authorization"),
		IdempotencyKey: r.Header.Get("Idempotency-Key"),
	})

	if res.Replayed {
		w.Header().Set("Idempotent-Replay", "true")
	}
	responses.WriteRaw(w, res.StatusCode, res.ContentType, res.Body)
}
