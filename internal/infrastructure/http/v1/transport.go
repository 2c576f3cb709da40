package v1

import (
	"net/http"

	"github.com/klauspost/compress/gzhttp"
	"github.com/rs/cors"

	"grainpay/internal/infrastructure/http/v1/handlers"
	"grainpay/internal/infrastructure/http/v1/middleware"
)

// TransportConfig configures the wrapping applied around the router.
type TransportConfig struct {
	// AllowedOrigins lists CORS origins; empty disables CORS headers.
	AllowedOrigins []string

	// Debug enables rs/cors request logging.
	Debug bool
}

// Wrap applies CORS and response compression around h.
func Wrap(h http.Handler, cfg TransportConfig) http.Handler {
	wrapped := gzhttp.GzipHandler(h)
	if len(cfg.AllowedOrigins) == 0 {
		return wrapped
	}

	c := cors.New(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders: []string{"Content-Type", "Accept", middleware.HeaderRequestID, middleware.HeaderTraceID},
		ExposedHeaders: []string{handlers.HeaderTotalCount, middleware.HeaderRequestID, middleware.HeaderTraceID},
		MaxAge:         300,
		Debug:          cfg.Debug,
	})
	return c.Handler(wrapped)
}
