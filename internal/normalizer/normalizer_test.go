package normalizer

import (
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestNormalizer() *Normalizer {
	return New(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestNormalize_FlatMessage(t *testing.T) {
	n := newTestNormalizer()

	msg, err := n.Normalize([]byte(`{"message":"hi"}`), "application/json")
	require.NoError(t, err)
	require.Equal(t, "hi", msg.Text)
	require.Empty(t, msg.ConversationID)
	require.Empty(t, msg.SenderID)
}

func TestNormalize_FlatContent(t *testing.T) {
	n := newTestNormalizer()

	msg, err := n.Normalize([]byte(`{"content":"need a refund"}`), "application/json")
	require.NoError(t, err)
	require.Equal(t, "need a refund", msg.Text)
}

func TestNormalize_MessageBeatsContent(t *testing.T) {
	n := newTestNormalizer()

	msg, err := n.Normalize([]byte(`{"message":"first","content":"second"}`), "application/json")
	require.NoError(t, err)
	require.Equal(t, "first", msg.Text)
}

func TestNormalize_NestedConversation(t *testing.T) {
	n := newTestNormalizer()

	body := `{"conversation":{"id":"c1","account_id":"a1","messages":[{"content":"hello","sender_id":"u0"},{"content":"help me","sender_id":"u1"}]}}`
	msg, err := n.Normalize([]byte(body), "application/json")
	require.NoError(t, err)
	require.Equal(t, "help me", msg.Text)
	require.Equal(t, "c1", msg.ConversationID)
	require.Equal(t, "u1", msg.SenderID)
	require.Equal(t, "a1", msg.AccountID)
}

func TestNormalize_NestedConversationNumericIDs(t *testing.T) {
	n := newTestNormalizer()

	body := `{"conversation":{"id":42,"account_id":7,"messages":[{"content":"hey","sender_id":99}]}}`
	msg, err := n.Normalize([]byte(body), "application/json")
	require.NoError(t, err)
	require.Equal(t, "42", msg.ConversationID)
	require.Equal(t, "7", msg.AccountID)
	require.Equal(t, "99", msg.SenderID)
}

func TestNormalize_CompletionMessagesLastUserTurn(t *testing.T) {
	n := newTestNormalizer()

	body := `{"messages":[{"role":"assistant","content":"x"},{"role":"user","content":"y"}]}`
	msg, err := n.Normalize([]byte(body), "application/json")
	require.NoError(t, err)
	require.Equal(t, "y", msg.Text)
	require.True(t, strings.HasPrefix(msg.ConversationID, "conv_"), "expected synthesized id, got %q", msg.ConversationID)
}

func TestNormalize_CompletionMessagesSkipsTrailingAssistant(t *testing.T) {
	n := newTestNormalizer()

	body := `{"messages":[{"role":"user","content":"question"},{"role":"assistant","content":"answer"}]}`
	msg, err := n.Normalize([]byte(body), "application/json")
	require.NoError(t, err)
	require.Equal(t, "question", msg.Text)
}

func TestNormalize_CompletionMessagesKeepsSuppliedConversationID(t *testing.T) {
	n := newTestNormalizer()

	body := `{"conversation_id":"c7","messages":[{"role":"user","content":"y"}]}`
	msg, err := n.Normalize([]byte(body), "application/json")
	require.NoError(t, err)
	require.Equal(t, "c7", msg.ConversationID)
}

func TestNormalize_TopLevelIDFallback(t *testing.T) {
	n := newTestNormalizer()

	body := `{"message":"hi","conversation_id":"c2","sender_id":"u2","account_id":"a2"}`
	msg, err := n.Normalize([]byte(body), "application/json")
	require.NoError(t, err)
	require.Equal(t, "c2", msg.ConversationID)
	require.Equal(t, "u2", msg.SenderID)
	require.Equal(t, "a2", msg.AccountID)
}

func TestNormalize_FormEncodedBody(t *testing.T) {
	n := newTestNormalizer()

	body := "message=hello+there&conversation_id=c9"
	msg, err := n.Normalize([]byte(body), "application/x-www-form-urlencoded")
	require.NoError(t, err)
	require.Equal(t, "hello there", msg.Text)
	require.Equal(t, "c9", msg.ConversationID)
}

func TestNormalize_UnknownShape(t *testing.T) {
	n := newTestNormalizer()

	_, err := n.Normalize([]byte(`{"foo":"bar"}`), "application/json")
	require.Error(t, err)

	var extractionErr *ExtractionError
	require.True(t, errors.As(err, &extractionErr))
	require.Equal(t, "bar", extractionErr.Payload["foo"])
}

func TestNormalize_FirstMatchWinsEvenWhenEmpty(t *testing.T) {
	n := newTestNormalizer()

	// "messages" matches first; no user turn means empty text, and the flat
	// "message" field is not consulted.
	body := `{"messages":[{"role":"assistant","content":"x"}],"message":"fallback"}`
	_, err := n.Normalize([]byte(body), "application/json")
	require.Error(t, err)

	var extractionErr *ExtractionError
	require.True(t, errors.As(err, &extractionErr))
}

func TestNormalize_EmptyMessageField(t *testing.T) {
	n := newTestNormalizer()

	_, err := n.Normalize([]byte(`{"message":""}`), "application/json")
	require.Error(t, err)
}
