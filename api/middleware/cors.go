package middleware

import (
	"net/http"

	"github.com/go-chi/cors"

	"github.com/stitchandstory/shop-backend/pkg/config"
)

// CORS returns middleware applying the configured allowed-origin
// policy. Requests without an Origin header (server-to-server, curl)
// pass through untouched.
func CORS(cfg config.CORSConfig) func(http.Handler) http.Handler {
	return cors.New(cors.Options{
		AllowedOrigins:   cfg.Origins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           300,
	}).Handler
}
