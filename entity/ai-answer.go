package entity

// GeneratedResponse is the response-generator output. Metadata carries
// whatever the backend attaches (confidence, suggestions, model info) and is
// passed through without interpretation.
type GeneratedResponse struct {
	Text     string         `json:"text"`
	Metadata map[string]any `json:"metadata,omitempty"`
}
