package chat

import (
	"SupportSquad/entity"
	"context"
)

type Core interface {
	ProcessChatMessage(ctx context.Context, req entity.ChatMessageRequest) (*entity.ChatMessageResponse, error)
}
