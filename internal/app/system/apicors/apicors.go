// Package apicors provides the CORS policies for the JSON API.
//
// Outside production the policy is permissive (any origin) so local frontends
// can develop against the API without configuration. In production the policy
// is restricted to a fixed allow-list of origins.
package apicors

import (
	"net/http"

	"github.com/go-chi/cors"
)

// Permissive returns CORS middleware that allows any origin.
func Permissive() func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         86400, // 24 hours
	})
}

// Restricted returns CORS middleware that only allows the given origins.
func Restricted(allowedOrigins ...string) func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         86400,
	})
}
