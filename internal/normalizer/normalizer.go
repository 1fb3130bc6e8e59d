package normalizer

import (
	"SupportSquad/entity"
	"SupportSquad/internal/lib/sl"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"
	"time"
)

// ExtractionError is returned when no known payload shape yields a message
// text. It carries the decoded payload so callers can log the miss.
type ExtractionError struct {
	Payload map[string]any
}

func (e *ExtractionError) Error() string {
	return "no message found in payload"
}

const conversationIDPrefix = "conv_"

// shape is one recognized upstream payload layout with its typed extractor.
// Shapes are tried in declared order; the first whose marker keys are present
// wins and later shapes are not attempted, even if the winner produced empty
// text (empty text is a terminal extraction failure for the request).
type shape struct {
	name    string
	extract func(payload map[string]any) (*entity.NormalizedMessage, bool)
}

var shapes = []shape{
	{name: "completion_messages", extract: extractCompletionMessages},
	{name: "flat_message", extract: extractFlatMessage},
	{name: "flat_content", extract: extractFlatContent},
	{name: "nested_conversation", extract: extractNestedConversation},
}

type Normalizer struct {
	log *slog.Logger
}

func New(log *slog.Logger) *Normalizer {
	return &Normalizer{
		log: log.With(sl.Module("normalizer")),
	}
}

// Normalize decodes a raw webhook body (JSON first, form-encoded fallback)
// and runs shape detection on it.
func (n *Normalizer) Normalize(raw []byte, contentType string) (*entity.NormalizedMessage, error) {
	payload, err := decode(raw)
	if err != nil {
		n.log.With(
			slog.String("content_type", contentType),
			slog.String("raw_body", string(raw)),
			sl.Err(err),
		).Error("failed to decode webhook body")
		return nil, &ExtractionError{}
	}

	n.log.With(
		slog.Any("payload", payload),
	).Debug("parsed webhook payload")

	msg, matchedShape := match(payload)
	if msg == nil || msg.Text == "" {
		n.log.With(
			slog.String("shape", matchedShape),
			slog.Any("payload", payload),
		).Error("no message found in payload")
		return nil, &ExtractionError{Payload: payload}
	}

	// Whatever shape matched, top-level ids fill in anything still missing.
	if msg.ConversationID == "" {
		msg.ConversationID = asID(payload["conversation_id"])
	}
	if msg.SenderID == "" {
		msg.SenderID = asID(payload["sender_id"])
	}
	if msg.AccountID == "" {
		msg.AccountID = asID(payload["account_id"])
	}

	// Completion-style callers may omit any conversation id; synthesize one
	// so history still groups the exchange.
	if matchedShape == "completion_messages" && msg.ConversationID == "" {
		msg.ConversationID = fmt.Sprintf("%s%d", conversationIDPrefix, time.Now().UnixMilli())
	}

	n.log.With(
		slog.String("shape", matchedShape),
		slog.String("text", msg.Text),
		slog.String("conversation_id", msg.ConversationID),
		slog.String("sender_id", msg.SenderID),
		slog.String("account_id", msg.AccountID),
	).Debug("extracted message")

	return msg, nil
}

func match(payload map[string]any) (*entity.NormalizedMessage, string) {
	for _, s := range shapes {
		if msg, ok := s.extract(payload); ok {
			return msg, s.name
		}
	}
	return nil, ""
}

func decode(raw []byte) (map[string]any, error) {
	var payload map[string]any
	if err := json.Unmarshal(raw, &payload); err == nil {
		return payload, nil
	}

	values, err := url.ParseQuery(string(raw))
	if err != nil {
		return nil, fmt.Errorf("body is neither JSON nor form-encoded: %w", err)
	}

	payload = make(map[string]any, len(values))
	for key := range values {
		payload[key] = values.Get(key)
	}
	return payload, nil
}

// extractCompletionMessages handles completion-API payloads: a "messages"
// array of role/content objects, scanned from the end for the latest user
// turn.
func extractCompletionMessages(payload map[string]any) (*entity.NormalizedMessage, bool) {
	rawMessages, ok := payload["messages"]
	if !ok {
		return nil, false
	}

	msg := &entity.NormalizedMessage{}
	messages, ok := rawMessages.([]any)
	if !ok {
		return msg, true
	}

	for i := len(messages) - 1; i >= 0; i-- {
		item, ok := messages[i].(map[string]any)
		if !ok {
			continue
		}
		if asString(item["role"]) != "user" {
			continue
		}
		msg.Text = asString(item["content"])
		break
	}

	return msg, true
}

func extractFlatMessage(payload map[string]any) (*entity.NormalizedMessage, bool) {
	raw, ok := payload["message"]
	if !ok {
		return nil, false
	}
	return &entity.NormalizedMessage{Text: asString(raw)}, true
}

func extractFlatContent(payload map[string]any) (*entity.NormalizedMessage, bool) {
	raw, ok := payload["content"]
	if !ok {
		return nil, false
	}
	return &entity.NormalizedMessage{Text: asString(raw)}, true
}

// extractNestedConversation handles the Chatwoot structure: a "conversation"
// object with its own "messages" list; the last element carries the text.
func extractNestedConversation(payload map[string]any) (*entity.NormalizedMessage, bool) {
	conversation, ok := payload["conversation"].(map[string]any)
	if !ok {
		return nil, false
	}
	rawMessages, ok := conversation["messages"]
	if !ok {
		return nil, false
	}

	msg := &entity.NormalizedMessage{
		ConversationID: asID(conversation["id"]),
		AccountID:      asID(conversation["account_id"]),
	}

	messages, ok := rawMessages.([]any)
	if !ok || len(messages) == 0 {
		return msg, true
	}

	last, ok := messages[len(messages)-1].(map[string]any)
	if !ok {
		return msg, true
	}

	msg.Text = asString(last["content"])
	msg.SenderID = asID(last["sender_id"])
	return msg, true
}

func asString(value any) string {
	s, _ := value.(string)
	return s
}

// asID renders scalar identifiers as strings. Chatwoot sends numeric ids, so
// JSON numbers are accepted alongside strings.
func asID(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	default:
		return ""
	}
}
