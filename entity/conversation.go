package entity

// ConversationEntry is one user/assistant exchange in a conversation's
// history. ID is internal (ws-event correlation) and never rendered on the
// history endpoint.
type ConversationEntry struct {
	ID          string `json:"-" bson:"entry_id"`
	UserMessage string `json:"user_message" bson:"user_message"`
	AiResponse  string `json:"ai_response" bson:"ai_response"`
	Timestamp   string `json:"timestamp" bson:"timestamp"`
}

// MessageEvent is broadcast to websocket observers after each successful
// dispatch.
type MessageEvent struct {
	EntryID        string `json:"entry_id,omitempty"`
	ConversationID string `json:"conversation_id,omitempty"`
	UserMessage    string `json:"user_message"`
	AiResponse     string `json:"ai_response"`
	Timestamp      string `json:"timestamp"`
}
