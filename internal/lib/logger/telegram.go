package logger

import (
	"context"
	"fmt"
	"log/slog"
)

// Alerter pushes a plain-text alert to an operator channel.
type Alerter interface {
	SendAlert(msg string)
}

// SetupTelegramHandler tees records at or above minLevel to the alert bot
// while keeping the original handler chain intact.
func SetupTelegramHandler(log *slog.Logger, bot Alerter, minLevel slog.Level) *slog.Logger {
	return slog.New(&telegramHandler{
		next:     log.Handler(),
		bot:      bot,
		minLevel: minLevel,
	})
}

type telegramHandler struct {
	next     slog.Handler
	bot      Alerter
	minLevel slog.Level
	attrs    []slog.Attr
}

func (h *telegramHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

func (h *telegramHandler) Handle(ctx context.Context, record slog.Record) error {
	if record.Level >= h.minLevel && record.Level >= slog.LevelError {
		msg := fmt.Sprintf("[%s] %s", record.Level, record.Message)
		for _, attr := range h.attrs {
			msg = fmt.Sprintf("%s\n%s: %v", msg, attr.Key, attr.Value)
		}
		record.Attrs(func(attr slog.Attr) bool {
			msg = fmt.Sprintf("%s\n%s: %v", msg, attr.Key, attr.Value)
			return true
		})
		h.bot.SendAlert(msg)
	}
	return h.next.Handle(ctx, record)
}

func (h *telegramHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	merged := make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	merged = append(merged, h.attrs...)
	merged = append(merged, attrs...)
	return &telegramHandler{
		next:     h.next.WithAttrs(attrs),
		bot:      h.bot,
		minLevel: h.minLevel,
		attrs:    merged,
	}
}

func (h *telegramHandler) WithGroup(name string) slog.Handler {
	return &telegramHandler{
		next:     h.next.WithGroup(name),
		bot:      h.bot,
		minLevel: h.minLevel,
		attrs:    h.attrs,
	}
}
