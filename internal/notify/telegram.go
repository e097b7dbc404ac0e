package notify

import (
	"fmt"
	"html"
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/AdityaVermayc/Ruu-girlf-portal/internal/config"
	"github.com/AdityaVermayc/Ruu-girlf-portal/internal/models"
)

// TelegramNotifier pushes the grievance summary to a Telegram chat. It is an
// optional second channel next to email, for an admin who lives in Telegram
// rather than their inbox.
type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

// NewTelegramNotifier authorizes the bot once at startup.
func NewTelegramNotifier(cfg *config.Config) (*TelegramNotifier, error) {
	bot, err := tgbotapi.NewBotAPI(cfg.Telegram.BotToken)
	if err != nil {
		return nil, err
	}
	bot.Debug = false
	log.Printf("✅ Telegram notifications authorized on account %s", bot.Self.UserName)

	return &TelegramNotifier{bot: bot, chatID: cfg.Telegram.ChatID}, nil
}

// NotifyNewGrievance sends one Telegram message per new grievance.
func (t *TelegramNotifier) NotifyNewGrievance(g *models.Grievance) error {
	text := fmt.Sprintf(
		"<b>New grievance #%d</b>\n<b>Title:</b> %s\n<b>Mood:</b> %s\n<b>Priority:</b> %s\n\n%s",
		g.ID,
		html.EscapeString(g.Title),
		html.EscapeString(g.Mood),
		html.EscapeString(g.Priority),
		html.EscapeString(g.Description),
	)

	msg := tgbotapi.NewMessage(t.chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML

	_, err := t.bot.Send(msg)
	return err
}
