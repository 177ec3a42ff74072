package orders

import (
	"io"
	"net/http"
	"net/url"
	"strconv"

	"slidegate/internal/app/proxy"
	"slidegate/internal/clients/brokerage"
	"slidegate/internal/contract"
	"slidegate/internal/http/responses"
	"slidegate/internal/logging"
)

type Handler struct {
	service proxy.Service
	logger  logging.Logger
}

func NewHandler(service proxy.Service, logger logging.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger.With("component", "orders_http_handler"),
	}
}

// Place POST /slide-orders
func (h *Handler) Place(w http.ResponseWriter, r *http.Request) {
	h.forward(w, r, proxy.OpPlaceOrder, r.URL.Query())
}

// Cancel POST /slide-orders/cancel
func (h *Handler) Cancel(w http.ResponseWriter, r *http.Request) {
	h.forward(w, r, proxy.OpCancelOrder, r.URL.Query())
}

// List GET /slide-orders
//
// Page and limit are normalized before the request is mirrored, so the
// upstream always sees values inside the pagination contract.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	page, limit := contract.NormalizePageQuery(query.Get("page"), query.Get("limit"))
	query.Set("page", strconv.Itoa(page))
	query.Set("limit", strconv.Itoa(limit))

	h.forward(w, r, proxy.OpListOrders, query)
}

// GetByID GET /slide-orders/{orderID}
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	h.forward(w, r, proxy.OpGetOrder, r.URL.Query())
}

func (h *Handler) forward(w http.ResponseWriter, r *http.Request, operation string, query url.Values) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		h.logger.Error("failed to read request body", "error", err, "operation", operation)
		responses.WriteFailure(w, r, http.StatusInternalServerError, "Failed to "+operation)
		return
	}

	res := h.service.Forward(r.Context(), operation, brokerage.ForwardRequest{
		Method:        r.Method,
		Path:          r.URL.Path,
		Query:         query,
		Body:          body,
		ContentType:   r.Header.Get("Content-Type"),
		Authorization: r.Header.Get("Authorization"),
	})

	responses.WriteRaw(w, res.StatusCode, res.ContentType, res.Body)
}
