package core

import (
	"SupportSquad/entity"
	"SupportSquad/internal/config"
	"SupportSquad/internal/lib/sl"
	"context"
	"errors"
	"log/slog"
)

// ErrGenerator marks a response-generator failure so handlers can map it to
// an upstream-failure status instead of a relay bug.
var ErrGenerator = errors.New("response generator failed")

// Repository is the conversation store contract. Memory and Mongo
// implementations both satisfy it; durability is the store's concern only.
type Repository interface {
	AppendEntry(conversationID string, entry entity.ConversationEntry) error
	History(conversationID string) ([]entity.ConversationEntry, error)
}

// Generator turns message text into reply text.
type Generator interface {
	Generate(ctx context.Context, text, conversationID string) (entity.GeneratedResponse, error)
}

// Broadcaster pushes processed-message events to live observers.
type Broadcaster interface {
	BroadcastMessageProcessed(event entity.MessageEvent)
}

type Core struct {
	repo        Repository
	gen         Generator
	hub         Broadcaster
	webhookMode string
	replyMode   string
	staticReply string
	log         *slog.Logger
}

func New(conf *config.Config, log *slog.Logger) *Core {
	return &Core{
		webhookMode: conf.Webhook.Mode,
		replyMode:   conf.Webhook.Reply,
		staticReply: conf.Webhook.StaticReply,
		log:         log.With(sl.Module("core")),
	}
}

func (c *Core) SetRepository(repo Repository) {
	c.repo = repo
}

func (c *Core) SetGenerator(gen Generator) {
	c.gen = gen
}

func (c *Core) SetBroadcaster(hub Broadcaster) {
	c.hub = hub
}
