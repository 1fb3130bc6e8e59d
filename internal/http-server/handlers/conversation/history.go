package conversation

import (
	"SupportSquad/entity"
	"SupportSquad/internal/lib/sl"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

type historyResponse struct {
	ConversationID string                     `json:"conversation_id"`
	History        []entity.ConversationEntry `json:"history"`
	Message        string                     `json:"message,omitempty"`
}

// History serves GET /conversations/{conversation_id}/history. It never
// errors: unknown ids and store failures both render an empty history.
func History(log *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mod := sl.Module("http.handlers.conversation")

		conversationID := chi.URLParam(r, "conversation_id")

		logger := log.With(
			mod,
			slog.String("request_id", middleware.GetReqID(r.Context())),
			slog.String("conversation_id", conversationID),
		)

		entries, err := handler.History(conversationID)
		if err != nil {
			logger.Error("load conversation history", sl.Err(err))
			entries = nil
		}

		resp := historyResponse{
			ConversationID: conversationID,
			History:        entries,
		}
		if len(entries) == 0 {
			resp.History = []entity.ConversationEntry{}
			resp.Message = "No conversation history found"
		}
		logger.Debug("conversation history served")

		render.JSON(w, r, resp)
	}
}
