package hosts

import (
	"SupportSquad/internal/lib/api/response"
	"SupportSquad/internal/lib/sl"
	"log/slog"
	"net"
	"net/http"
	"strings"

	"github.com/go-chi/render"
)

// New rejects requests whose Host header is not in the allowed list. Install
// only when the list is non-empty.
func New(log *slog.Logger, allowed []string) func(next http.Handler) http.Handler {
	mod := sl.Module("middleware.hosts")
	log.With(mod, slog.Any("allowed_hosts", allowed)).Info("allowed-hosts middleware initialized")

	allowedSet := make(map[string]bool, len(allowed))
	for _, host := range allowed {
		allowedSet[strings.ToLower(strings.TrimSpace(host))] = true
	}

	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			host := r.Host
			if h, _, err := net.SplitHostPort(host); err == nil {
				host = h
			}

			if !allowedSet[strings.ToLower(host)] {
				log.With(
					mod,
					slog.String("host", host),
				).Error("host not allowed")
				render.Status(r, http.StatusForbidden)
				render.JSON(w, r, response.Error("Host not allowed"))
				return
			}

			next.ServeHTTP(w, r)
		}

		return http.HandlerFunc(fn)
	}
}
