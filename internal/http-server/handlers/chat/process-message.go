package chat

import (
	"SupportSquad/entity"
	"SupportSquad/impl/core"
	"SupportSquad/internal/lib/api/response"
	"SupportSquad/internal/lib/sl"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ProcessMessage serves POST /chat/message, the strict direct API.
func ProcessMessage(log *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mod := sl.Module("http.handlers.chat")

		logger := log.With(
			mod,
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		var req entity.ChatMessageRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusUnprocessableEntity)
			render.JSON(w, r, response.Error("Invalid request body"))
			return
		}

		if err := validate.Struct(req); err != nil {
			logger.Error("request validation failed", sl.Err(err))
			render.Status(r, http.StatusUnprocessableEntity)
			render.JSON(w, r, response.Error("Field 'message' is required"))
			return
		}

		logger = logger.With(slog.String("message", req.Message))

		resp, err := handler.ProcessChatMessage(r.Context(), req)
		if err != nil {
			logger.Error("process chat message", sl.Err(err))
			if errors.Is(err, core.ErrGenerator) {
				render.Status(r, http.StatusBadGateway)
				render.JSON(w, r, response.Error("Response generation failed"))
				return
			}
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("Internal server error"))
			return
		}
		logger.Debug("chat message processed")

		render.JSON(w, r, resp)
	}
}
