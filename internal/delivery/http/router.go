package http

import (
	"log/slog"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	_ "eventrsvp/docs"
	"eventrsvp/internal/delivery/http/controllers"
	"eventrsvp/internal/delivery/http/middleware"
	"eventrsvp/internal/metrics"
)

// NewRouter initializes the HTTP router with all application routes
func NewRouter(rsvpController *controllers.RSVPController, panelController *controllers.PanelController) *http.ServeMux {
	mux := http.NewServeMux()

	// RSVP
	mux.HandleFunc("HEAD /rsvp", rsvpController.Health)
	mux.HandleFunc("POST /rsvp", rsvpController.Create)
	mux.HandleFunc("GET /rsvp", rsvpController.List)

	// Panel
	mux.HandleFunc("POST /login", panelController.Login)

	// Ops
	mux.Handle("GET /metrics", metrics.Handler())
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}

// NewHandler wraps mux with the middleware chain, outermost first:
// CORS, request id, request logging, then metrics. Metrics sits directly on the mux
// because it labels requests with the matched pattern.
func NewHandler(mux *http.ServeMux, logger *slog.Logger, allowedOrigins []string) http.Handler {
	var h http.Handler = metrics.HTTPMiddleware(mux)
	h = middleware.LoggingMiddleware(logger, h)
	h = middleware.RequestID(h)
	return middleware.CORS(allowedOrigins, h)
}
