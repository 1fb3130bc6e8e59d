package entity

// PlainEnvelope is the webhook reply in plain mode. Confidence and
// Suggestions are lifted from the generator metadata when present; the rest
// of the metadata rides along untouched.
type PlainEnvelope struct {
	Response       string         `json:"response"`
	ConversationID *string        `json:"conversation_id"`
	Timestamp      string         `json:"timestamp"`
	Status         string         `json:"status"`
	Confidence     any            `json:"confidence,omitempty"`
	Suggestions    any            `json:"suggestions,omitempty"`
	Metadata       map[string]any `json:"metadata,omitempty"`
}

// CompletionEnvelope mimics a generic completion API reply so Chatwoot can
// treat the relay as a drop-in AI provider.
type CompletionEnvelope struct {
	Choices []CompletionChoice `json:"choices"`
}

type CompletionChoice struct {
	Message CompletionMessage `json:"message"`
}

type CompletionMessage struct {
	Content string `json:"content"`
}
