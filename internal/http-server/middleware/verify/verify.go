package verify

import (
	"SupportSquad/internal/lib/api/response"
	"SupportSquad/internal/lib/sl"
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

// SignatureHeader carries the hex HMAC-SHA256 of the raw webhook body.
const SignatureHeader = "X-Chatwoot-Signature"

// New rejects webhook deliveries whose body signature does not match the
// shared secret. Install only when a secret is configured.
func New(log *slog.Logger, secret string) func(next http.Handler) http.Handler {
	mod := sl.Module("middleware.verify")
	log.With(mod).Info("webhook signature verification enabled")

	return func(next http.Handler) http.Handler {

		fn := func(w http.ResponseWriter, r *http.Request) {
			logger := log.With(
				mod,
				slog.String("request_id", middleware.GetReqID(r.Context())),
			)

			body, err := io.ReadAll(r.Body)
			if err != nil {
				logger.Error("read webhook body", sl.Err(err))
				verifyFailed(w, r, "Invalid request body")
				return
			}
			r.Body = io.NopCloser(bytes.NewReader(body))

			signature := r.Header.Get(SignatureHeader)
			if signature == "" {
				logger.Error("missing webhook signature")
				verifyFailed(w, r, "Missing webhook signature")
				return
			}

			if !validSignature(secret, body, signature) {
				logger.With(
					sl.Secret("signature", signature),
				).Error("invalid webhook signature")
				verifyFailed(w, r, "Invalid webhook signature")
				return
			}

			next.ServeHTTP(w, r)
		}

		return http.HandlerFunc(fn)
	}
}

func validSignature(secret string, body []byte, signature string) bool {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}

func verifyFailed(w http.ResponseWriter, r *http.Request, message string) {
	render.Status(r, http.StatusUnauthorized)
	render.JSON(w, r, response.Error(message))
}
