package webhook

import (
	"SupportSquad/impl/core"
	"SupportSquad/internal/lib/api/response"
	"SupportSquad/internal/lib/sl"
	"SupportSquad/internal/normalizer"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

// Handle serves POST /chatwoot/webhook: normalize the loosely-structured
// payload, dispatch it, reply with the configured envelope.
func Handle(log *slog.Logger, norm *normalizer.Normalizer, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mod := sl.Module("http.handlers.webhook")

		logger := log.With(
			mod,
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		body, err := io.ReadAll(r.Body)
		if err != nil {
			logger.Error("failed to read request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("Invalid request body"))
			return
		}

		logger.With(
			slog.String("raw_body", string(body)),
		).Debug("received webhook")

		msg, err := norm.Normalize(body, r.Header.Get("Content-Type"))
		if err != nil {
			var extractionErr *normalizer.ExtractionError
			if errors.As(err, &extractionErr) {
				logger.With(
					slog.Any("payload", extractionErr.Payload),
				).Error("no message found in payload")
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("No message found in payload"))
				return
			}
			logger.Error("normalize webhook body", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("Internal server error"))
			return
		}

		logger = logger.With(
			slog.String("text", msg.Text),
			slog.String("conversation_id", msg.ConversationID),
		)

		envelope, err := handler.ProcessWebhook(r.Context(), msg)
		if err != nil {
			logger.Error("process webhook", sl.Err(err))
			if errors.Is(err, core.ErrGenerator) {
				render.Status(r, http.StatusBadGateway)
				render.JSON(w, r, response.Error("Response generation failed"))
				return
			}
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("Internal server error"))
			return
		}
		logger.Debug("webhook processed")

		render.JSON(w, r, envelope)
	}
}
