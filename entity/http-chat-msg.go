package entity

// ChatMessageRequest is the strict body of POST /chat/message.
type ChatMessageRequest struct {
	Message        string `json:"message" validate:"required"`
	ConversationID string `json:"conversation_id,omitempty"`
	SenderID       string `json:"sender_id,omitempty"`
	AccountID      string `json:"account_id,omitempty"`
}

// ChatMessageResponse is the reply of POST /chat/message.
type ChatMessageResponse struct {
	Response       string  `json:"response"`
	ConversationID *string `json:"conversation_id"`
	Timestamp      string  `json:"timestamp"`
}
