package health

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"
)

const serviceName = "support-squad-backend"

type rootResponse struct {
	Message string `json:"message"`
	Status  string `json:"status"`
}

type checkResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Service   string `json:"service"`
}

type livenessResponse struct {
	Message string `json:"message"`
	Status  string `json:"status"`
}

// Root serves GET /.
func Root(_ *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, r, rootResponse{
			Message: "Support Squad Backend is running!",
			Status:  "healthy",
		})
	}
}

// Check serves GET /health for monitoring.
func Check(_ *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, r, checkResponse{
			Status:    "healthy",
			Timestamp: time.Now().UTC().Format(time.RFC3339),
			Service:   serviceName,
		})
	}
}

// Liveness serves GET /healthz, the lightweight probe.
func Liveness(_ *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, r, livenessResponse{
			Message: "Support Squad Backend is running!",
			Status:  "ok",
		})
	}
}
