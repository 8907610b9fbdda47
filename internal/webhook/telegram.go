package webhook

import (
	"context"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// messageSender - часть tgbotapi.BotAPI, нужная для отправки
type messageSender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// TelegramSink отправляет оповещения в чат Telegram
type TelegramSink struct {
	bot    messageSender
	chatID int64
}

// NewTelegramSink создает бота по токену. Токен проверяется запросом getMe
func NewTelegramSink(botToken string, chatID int64) (*TelegramSink, error) {
	bot, err := tgbotapi.NewBotAPI(botToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot: %w", err)
	}
	return &TelegramSink{bot: bot, chatID: chatID}, nil
}

func (s *TelegramSink) Name() string { return "telegram" }

func (s *TelegramSink) Deliver(_ context.Context, event AlertEvent, _ []byte) error {
	msg := tgbotapi.NewMessage(s.chatID, FormatAlert(event))
	if _, err := s.bot.Send(msg); err != nil {
		return fmt.Errorf("failed to send telegram message: %w", err)
	}
	return nil
}

// FormatAlert готовит текст сообщения для чата
func FormatAlert(event AlertEvent) string {
	a := event.Alert

	var b strings.Builder
	switch event.Event {
	case EventAlertResolved:
		b.WriteString("✅ Alert resolved")
	default:
		b.WriteString("🚨 New alert")
	}
	fmt.Fprintf(&b, " [%s] %s\n", strings.ToUpper(string(a.Severity)), a.Type)
	if a.Message != "" {
		b.WriteString(a.Message)
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "\nVillage: %s", a.VillageID)
	if !a.CreatedAt.IsZero() {
		fmt.Fprintf(&b, "\n🕒 Created: %s", a.CreatedAt.Format("2006-01-02 15:04:05"))
	}
	return b.String()
}
