package receipt

import (
	"context"
	"errors"
	"fmt"
	"html"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// ErrNoPrinter means no print target is configured. Callers report it and carry on.
var ErrNoPrinter = errors.New("no printer configured")

// Printer hands a rendered bill to an output device.
type Printer interface {
	Print(ctx context.Context, text string) error
}

type NoPrinter struct{}

func (NoPrinter) Print(ctx context.Context, text string) error {
	return ErrNoPrinter
}

type sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// TelegramPrinter delivers bills to a chat through the message bot.
type TelegramPrinter struct {
	api    sender
	chatID int64
}

func NewTelegramPrinter(token string, chatID int64) (*TelegramPrinter, error) {
	if token == "" {
		return nil, fmt.Errorf("MESSAGE_TOKEN not set")
	}
	if chatID == 0 {
		return nil, fmt.Errorf("BILL_CHAT_ID not set")
	}
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("init message bot: %w", err)
	}
	return &TelegramPrinter{api: api, chatID: chatID}, nil
}

func (p *TelegramPrinter) Print(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	msg := tgbotapi.NewMessage(p.chatID, "<pre>"+html.EscapeString(text)+"</pre>")
	msg.ParseMode = tgbotapi.ModeHTML
	if _, err := p.api.Send(msg); err != nil {
		return fmt.Errorf("send bill: %w", err)
	}
	return nil
}
