package api

import (
	"net/http"

	_ "github.com/AlexZinkM/donate-action/docs"
	"github.com/AlexZinkM/donate-action/internal/handler"
	"github.com/AlexZinkM/donate-action/internal/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

// RouterConfig holds what SetupRouter needs besides the handler
type RouterConfig struct {
	Headers ActionHeaders
	Metrics *metrics.Metrics
	// Gatherer backs GET /metrics; nil disables the endpoint
	Gatherer prometheus.Gatherer
}

// SetupRouter sets up router with handlers
func SetupRouter(donateHandler *handler.DonateHandler, cfg RouterConfig) http.Handler {
	mux := http.NewServeMux()

	action := func(name string, fn http.HandlerFunc) http.Handler {
		var h http.Handler = fn
		h = actionHeadersMiddleware(cfg.Headers)(h)
		return metrics.HTTPMetricsMiddleware(cfg.Metrics, name)(h)
	}

	// Swagger UI
	mux.HandleFunc("/swagger/", httpSwagger.WrapHandler)

	// Donate action
	mux.Handle("GET "+handler.ActionPath, action(handler.ActionPath, donateHandler.Action))
	mux.Handle("OPTIONS "+handler.ActionPath, action(handler.ActionPath, donateHandler.Action))
	mux.Handle("POST "+handler.ActionPath, action(handler.ActionPath, donateHandler.Transaction))
	mux.Handle(handler.ActionPath, action(handler.ActionPath, donateHandler.MethodNotAllowed))

	mux.Handle("GET /actions.json", action("/actions.json", donateHandler.ActionsJSON))
	mux.Handle("OPTIONS /actions.json", action("/actions.json", donateHandler.ActionsJSON))

	// QR code is an image, not an action response
	mux.Handle("GET "+handler.ActionPath+"/qr",
		metrics.HTTPMetricsMiddleware(cfg.Metrics, handler.ActionPath+"/qr")(http.HandlerFunc(donateHandler.QRCode)))

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	if cfg.Gatherer != nil {
		mux.Handle("GET /metrics", promhttp.HandlerFor(cfg.Gatherer, promhttp.HandlerOpts{}))
	}

	return mux
}
