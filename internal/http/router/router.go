package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"slidegate/internal/http/apidocs"
	eventshandler "slidegate/internal/http/handlers/events"
	"slidegate/internal/http/handlers/health"
	ordershandler "slidegate/internal/http/handlers/orders"
	"slidegate/internal/http/responses"
	"slidegate/internal/logging"
)

func NewRouter(
	logger logging.Logger,
	healthHandler *health.Handler,
	ordersHandler *ordershandler.Handler,
	eventsHandler *eventshandler.Handler,
) chi.Router {
	r := chi.NewRouter()

	useBaseMiddlewares(r, logger)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", healthHandler.Check)
		r.Get("/openapi.json", apidocs.Serve)

		r.Route("/slide-orders", func(r chi.Router) {
			r.Get("/", ordersHandler.List)
			r.Post("/", ordersHandler.Place)
			r.Post("/cancel", ordersHandler.Cancel)
			r.Get("/{orderID}", ordersHandler.GetByID)
		})

		r.Post("/events", eventsHandler.Publish)
	})

	r.Handle("/metrics", promhttp.Handler())

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/api/v1/openapi.json"),
	))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		responses.WriteNotFound(w, r)
	})

	return r
}
