// Package api holds the serverless function entry points that are
// deployed as standalone functions, one exported handler per file.
package api

import (
	"net/http"

	"github.com/mealtrack/gateway/internal/status"
)

var statusHandler = status.Handler()

// Handler is the entry point for the status function.
func Handler(w http.ResponseWriter, r *http.Request) {
	statusHandler.ServeHTTP(w, r)
}
