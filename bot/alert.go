package bot

import (
	"SupportSquad/internal/lib/sl"
	"fmt"
	tgbotapi "github.com/PaulSonOfLars/gotgbot/v2"
	"log/slog"
)

// AlertBot pushes operator alerts to a Telegram admin chat. It only sends;
// it never polls for updates.
type AlertBot struct {
	log         *slog.Logger
	api         *tgbotapi.Bot
	botUsername string
	adminId     int64
}

func NewAlertBot(botName, apiKey string, adminId int64, log *slog.Logger) (*AlertBot, error) {
	alertBot := &AlertBot{
		log:         log.With(sl.Module("alertbot")),
		adminId:     adminId,
		botUsername: botName,
	}

	api, err := tgbotapi.NewBot(apiKey, nil)
	if err != nil {
		return nil, fmt.Errorf("creating api instance: %v", err)
	}
	alertBot.api = api

	return alertBot, nil
}

func (t *AlertBot) SendAlert(msg string) {
	t.plainResponse(t.adminId, msg)
}

func (t *AlertBot) plainResponse(chatId int64, text string) {
	if t.api == nil || chatId == 0 {
		return
	}

	_, err := t.api.SendMessage(chatId, text, nil)
	if err != nil {
		t.log.With(
			sl.Err(err),
		).Error("send alert message")
	}
}
