package proxy

// Operation labels appear verbatim in failure envelopes as
// "Failed to <operation>", so they read as plain English.
const (
	OpPlaceOrder   = "place slide order"
	OpCancelOrder  = "cancel slide order"
	OpListOrders   = "fetch slide orders"
	OpGetOrder     = "fetch slide order"
	OpPublishEvent = "publish user event"
)

// Result is what the caller gets back for every forwarded request. A
// successful upstream reply passes through untouched; any failure is already
// normalized into a 500 with a failure envelope body.
type Result struct {
	StatusCode  int
	Body        []byte
	ContentType string
}
