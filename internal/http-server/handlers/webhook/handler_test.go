package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"SupportSquad/entity"
	"SupportSquad/impl/core"
	"SupportSquad/internal/normalizer"
)

type stubCore struct {
	envelope any
	err      error
	lastMsg  *entity.NormalizedMessage
}

func (s *stubCore) ProcessWebhook(_ context.Context, msg *entity.NormalizedMessage) (any, error) {
	s.lastMsg = msg
	return s.envelope, s.err
}

func setupRouter(handler Core) *chi.Mux {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	r := chi.NewRouter()
	r.Post("/chatwoot/webhook", Handle(log, normalizer.New(log), handler))
	return r
}

func TestHandle_CompletionEnvelope(t *testing.T) {
	stub := &stubCore{envelope: entity.CompletionEnvelope{
		Choices: []entity.CompletionChoice{{Message: entity.CompletionMessage{Content: "reply"}}},
	}}
	r := setupRouter(stub)

	req := httptest.NewRequest(http.MethodPost, "/chatwoot/webhook", strings.NewReader(`{"message":"hi","conversation_id":"c1"}`))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	require.Equal(t, http.StatusOK, resp.Code)
	require.Equal(t, "hi", stub.lastMsg.Text)
	require.Equal(t, "c1", stub.lastMsg.ConversationID)

	var out entity.CompletionEnvelope
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &out))
	require.Len(t, out.Choices, 1)
	require.Equal(t, "reply", out.Choices[0].Message.Content)
}

func TestHandle_FormEncodedBody(t *testing.T) {
	stub := &stubCore{envelope: entity.CompletionEnvelope{}}
	r := setupRouter(stub)

	req := httptest.NewRequest(http.MethodPost, "/chatwoot/webhook", strings.NewReader("message=hello+there"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	require.Equal(t, http.StatusOK, resp.Code)
	require.Equal(t, "hello there", stub.lastMsg.Text)
}

func TestHandle_NoMessageFound(t *testing.T) {
	stub := &stubCore{}
	r := setupRouter(stub)

	req := httptest.NewRequest(http.MethodPost, "/chatwoot/webhook", strings.NewReader(`{"foo":"bar"}`))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	require.Equal(t, http.StatusBadRequest, resp.Code)
	require.Nil(t, stub.lastMsg)
	require.Contains(t, resp.Body.String(), "No message found in payload")
}

func TestHandle_GeneratorFailure(t *testing.T) {
	stub := &stubCore{err: fmt.Errorf("%w: boom", core.ErrGenerator)}
	r := setupRouter(stub)

	req := httptest.NewRequest(http.MethodPost, "/chatwoot/webhook", strings.NewReader(`{"message":"hi"}`))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	require.Equal(t, http.StatusBadGateway, resp.Code)
}

func TestHandle_UnhandledFailure(t *testing.T) {
	stub := &stubCore{err: fmt.Errorf("unexpected")}
	r := setupRouter(stub)

	req := httptest.NewRequest(http.MethodPost, "/chatwoot/webhook", strings.NewReader(`{"message":"hi"}`))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	require.Equal(t, http.StatusInternalServerError, resp.Code)
}
