package middleware

import (
	"net/http"

	"github.com/rs/cors"
)

// Cors allows any origin; the puzzle endpoints are public and the site
// frontend is served from a different host.
func Cors() Middleware {
	options := cors.Options{
		AllowOriginFunc: func(origin string) bool {
			return true
		},
		AllowedMethods: []string{
			http.MethodHead,
			http.MethodGet,
			http.MethodPost,
		},
		AllowedHeaders: []string{"*"},
	}
	return cors.New(options).Handler
}
