package entity

// NormalizedMessage is the result of payload-shape detection on an inbound
// webhook body. Text is always non-empty when extraction succeeds; the id
// fields are empty strings when the payload did not carry them.
type NormalizedMessage struct {
	Text           string `json:"text"`
	ConversationID string `json:"conversation_id,omitempty"`
	SenderID       string `json:"sender_id,omitempty"`
	AccountID      string `json:"account_id,omitempty"`
}
