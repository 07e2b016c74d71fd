package router

import (
	"net/http"

	"larek/internal/handler"
	"larek/internal/middleware"

	"github.com/rs/zerolog"
)

// APIPrefix is the path under which the storefront API is mounted.
const APIPrefix = "/api/weblarek"

// ContentPrefix is the path the storefront's default CDN URL points at.
const ContentPrefix = "/content/weblarek"

// New creates a new HTTP router with all routes and middleware configured.
func New(
	productHandler *handler.ProductHandler,
	orderHandler *handler.OrderHandler,
	apiKey string,
	contentDir string,
	logger zerolog.Logger,
) http.Handler {
	mux := http.NewServeMux()

	// Health check endpoint (no authentication required)
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"healthy"}`))
	})

	mux.HandleFunc("GET "+APIPrefix+"/product/{$}", productHandler.List)
	mux.HandleFunc("GET "+APIPrefix+"/product/{id}", productHandler.GetByID)

	mux.HandleFunc("POST "+APIPrefix+"/order", orderHandler.Create)
	mux.HandleFunc("GET "+APIPrefix+"/order/{id}", orderHandler.GetByID)

	// Product images, served so the default CDN_URL works without a real CDN.
	if contentDir != "" {
		files := http.FileServer(http.Dir(contentDir))
		mux.Handle("GET "+ContentPrefix+"/", http.StripPrefix(ContentPrefix, files))
	}

	// Apply middleware in order: Recovery -> Logging -> RequestID -> CORS -> APIKeyAuth
	var h http.Handler = mux
	h = middleware.APIKeyAuth(apiKey, logger)(h)
	h = middleware.CORS(h)
	h = middleware.RequestID(h)
	h = middleware.Logging(logger)(h)
	h = middleware.Recovery(logger)(h)

	return h
}
