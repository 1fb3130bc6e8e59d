package conversation

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"SupportSquad/entity"
)

type stubCore struct {
	entries map[string][]entity.ConversationEntry
	err     error
}

func (s *stubCore) History(conversationID string) ([]entity.ConversationEntry, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.entries[conversationID], nil
}

func setupRouter(handler Core) *chi.Mux {
	r := chi.NewRouter()
	r.Get("/conversations/{conversation_id}/history", History(slog.New(slog.NewTextHandler(io.Discard, nil)), handler))
	return r
}

func get(r http.Handler, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	return resp
}

func TestHistory_KnownConversation(t *testing.T) {
	stub := &stubCore{entries: map[string][]entity.ConversationEntry{
		"c1": {
			{UserMessage: "hi", AiResponse: "hello", Timestamp: "2026-08-23T10:00:00Z"},
			{UserMessage: "bye", AiResponse: "goodbye", Timestamp: "2026-08-23T10:01:00Z"},
		},
	}}
	r := setupRouter(stub)

	resp := get(r, "/conversations/c1/history")
	require.Equal(t, http.StatusOK, resp.Code)

	var out struct {
		ConversationID string                     `json:"conversation_id"`
		History        []entity.ConversationEntry `json:"history"`
		Message        string                     `json:"message"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &out))
	require.Equal(t, "c1", out.ConversationID)
	require.Len(t, out.History, 2)
	require.Equal(t, "hi", out.History[0].UserMessage)
	require.Empty(t, out.Message)
}

func TestHistory_UnknownConversation(t *testing.T) {
	stub := &stubCore{entries: map[string][]entity.ConversationEntry{}}
	r := setupRouter(stub)

	resp := get(r, "/conversations/missing/history")
	require.Equal(t, http.StatusOK, resp.Code)

	var out struct {
		ConversationID string                     `json:"conversation_id"`
		History        []entity.ConversationEntry `json:"history"`
		Message        string                     `json:"message"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &out))
	require.Equal(t, "missing", out.ConversationID)
	require.NotNil(t, out.History)
	require.Empty(t, out.History)
	require.Equal(t, "No conversation history found", out.Message)
}

func TestHistory_StoreFailureStillOk(t *testing.T) {
	stub := &stubCore{err: fmt.Errorf("store down")}
	r := setupRouter(stub)

	resp := get(r, "/conversations/c1/history")
	require.Equal(t, http.StatusOK, resp.Code)
	require.Contains(t, resp.Body.String(), "No conversation history found")
}

func TestHistory_EntryWireShape(t *testing.T) {
	stub := &stubCore{entries: map[string][]entity.ConversationEntry{
		"c1": {{ID: "internal-id", UserMessage: "hi", AiResponse: "hello", Timestamp: "2026-08-23T10:00:00Z"}},
	}}
	r := setupRouter(stub)

	resp := get(r, "/conversations/c1/history")

	var out map[string]any
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &out))
	entries := out["history"].([]any)
	entry := entries[0].(map[string]any)
	require.Equal(t, map[string]any{
		"user_message": "hi",
		"ai_response":  "hello",
		"timestamp":    "2026-08-23T10:00:00Z",
	}, entry)
}
