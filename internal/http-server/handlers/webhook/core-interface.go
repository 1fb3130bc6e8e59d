package webhook

import (
	"SupportSquad/entity"
	"context"
)

type Core interface {
	ProcessWebhook(ctx context.Context, msg *entity.NormalizedMessage) (any, error)
}
