package keyword

import (
	"SupportSquad/entity"
	"SupportSquad/internal/lib/sl"
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
)

// rule maps trigger substrings to a canned reply. Rules are checked in
// declared priority order against the lowercased message.
type rule struct {
	keywords []string
	reply    string
}

var rules = []rule{
	{
		keywords: []string{"hello", "hi"},
		reply:    "Hello! I'm your AI assistant powered by Google ADK. How can I help you today?",
	},
	{
		keywords: []string{"help"},
		reply:    "I'm here to help! I can assist with customer support, answer questions, and provide information. What do you need help with?",
	},
	{
		keywords: []string{"support"},
		reply:    "I can help with technical support. Please provide more details about your issue, and I'll do my best to assist you.",
	},
	{
		keywords: []string{"bye", "goodbye"},
		reply:    "Goodbye! Feel free to reach out if you need help again. Have a great day!",
	},
	{
		keywords: []string{"weather"},
		reply:    "I can't check the weather right now, but I can help you with other questions and support issues.",
	},
	{
		keywords: []string{"order", "purchase"},
		reply:    "I can help you with order-related questions. Please provide your order number or describe what you need assistance with.",
	},
}

var suggestions = []string{
	"Get help with orders",
	"Technical support",
	"General questions",
}

// Responder is the keyword-matching stand-in for a real response-generation
// backend. It carries no conversation state; history lives in the dispatcher.
type Responder struct {
	model string
	log   *slog.Logger
}

func NewResponder(model string, log *slog.Logger) *Responder {
	return &Responder{
		model: model,
		log:   log.With(sl.Module("keyword.responder")),
	}
}

func (r *Responder) Generate(_ context.Context, text, conversationID string) (entity.GeneratedResponse, error) {
	started := time.Now()

	r.log.With(
		slog.String("text", text),
		slog.String("conversation_id", conversationID),
	).Debug("processing message")

	reply := matchReply(text)

	return entity.GeneratedResponse{
		Text: reply,
		Metadata: map[string]any{
			"confidence":      0.85,
			"intent":          "general_support",
			"entities":        []any{},
			"suggestions":     suggestions,
			"model":           r.model,
			"processing_time": time.Since(started).Seconds(),
			"timestamp":       time.Now().UTC().Format(time.RFC3339),
		},
	}, nil
}

func matchReply(text string) string {
	lowered := strings.ToLower(text)
	for _, rl := range rules {
		for _, keyword := range rl.keywords {
			if strings.Contains(lowered, keyword) {
				return rl.reply
			}
		}
	}
	return fmt.Sprintf("I understand you said: '%s'. How can I assist you further? I'm here to help with any questions or support you might need.", text)
}
