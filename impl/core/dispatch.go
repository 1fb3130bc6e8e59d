package core

import (
	"SupportSquad/entity"
	"SupportSquad/internal/config"
	"SupportSquad/internal/lib/sl"
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// ProcessWebhook dispatches a normalized webhook message and shapes the
// reply into the configured envelope.
func (c *Core) ProcessWebhook(ctx context.Context, msg *entity.NormalizedMessage) (any, error) {
	if c.replyMode == config.WebhookReplyStatic {
		// Static mode answers without consulting the generator and keeps no
		// history, matching the drop-in-provider deployment.
		return c.envelope(entity.GeneratedResponse{Text: c.staticReply}, msg.ConversationID, now()), nil
	}

	generated, timestamp, err := c.dispatch(ctx, msg)
	if err != nil {
		return nil, err
	}

	return c.envelope(*generated, msg.ConversationID, timestamp), nil
}

// ProcessChatMessage serves the direct API: always the plain reply shape.
func (c *Core) ProcessChatMessage(ctx context.Context, req entity.ChatMessageRequest) (*entity.ChatMessageResponse, error) {
	msg := &entity.NormalizedMessage{
		Text:           req.Message,
		ConversationID: req.ConversationID,
		SenderID:       req.SenderID,
		AccountID:      req.AccountID,
	}

	generated, timestamp, err := c.dispatch(ctx, msg)
	if err != nil {
		return nil, err
	}

	return &entity.ChatMessageResponse{
		Response:       generated.Text,
		ConversationID: optional(msg.ConversationID),
		Timestamp:      timestamp,
	}, nil
}

// History returns the stored entries for a conversation, oldest first. Reads
// have no side effects; unknown ids yield an empty history.
func (c *Core) History(conversationID string) ([]entity.ConversationEntry, error) {
	if c.repo == nil {
		return nil, nil
	}
	return c.repo.History(conversationID)
}

func (c *Core) dispatch(ctx context.Context, msg *entity.NormalizedMessage) (*entity.GeneratedResponse, string, error) {
	if c.gen == nil {
		return nil, "", fmt.Errorf("%w: generator not initialized", ErrGenerator)
	}

	generated, err := c.gen.Generate(ctx, msg.Text, msg.ConversationID)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrGenerator, err)
	}

	timestamp := now()

	if msg.ConversationID != "" && c.repo != nil {
		entry := entity.ConversationEntry{
			ID:          uuid.NewString(),
			UserMessage: msg.Text,
			AiResponse:  generated.Text,
			Timestamp:   timestamp,
		}
		// A failed history append must not fail the reply.
		if err := c.repo.AppendEntry(msg.ConversationID, entry); err != nil {
			c.log.With(
				slog.String("conversation_id", msg.ConversationID),
				sl.Err(err),
			).Error("append conversation entry")
		} else if c.hub != nil {
			c.hub.BroadcastMessageProcessed(entity.MessageEvent{
				EntryID:        entry.ID,
				ConversationID: msg.ConversationID,
				UserMessage:    entry.UserMessage,
				AiResponse:     entry.AiResponse,
				Timestamp:      entry.Timestamp,
			})
		}
	}

	c.log.With(
		slog.String("conversation_id", msg.ConversationID),
		slog.String("text", generated.Text),
	).Debug("dispatched message")

	return &generated, timestamp, nil
}

// envelope is pure data shaping; nothing here branches on message content.
func (c *Core) envelope(generated entity.GeneratedResponse, conversationID, timestamp string) any {
	if c.webhookMode == config.WebhookModePlain {
		env := entity.PlainEnvelope{
			Response:       generated.Text,
			ConversationID: optional(conversationID),
			Timestamp:      timestamp,
			Status:         "success",
		}
		if len(generated.Metadata) > 0 {
			metadata := make(map[string]any, len(generated.Metadata))
			for key, value := range generated.Metadata {
				metadata[key] = value
			}
			env.Confidence = metadata["confidence"]
			env.Suggestions = metadata["suggestions"]
			delete(metadata, "confidence")
			delete(metadata, "suggestions")
			env.Metadata = metadata
		}
		return env
	}

	return entity.CompletionEnvelope{
		Choices: []entity.CompletionChoice{
			{Message: entity.CompletionMessage{Content: generated.Text}},
		},
	}
}

func now() string {
	return time.Now().UTC().Format(time.RFC3339)
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
