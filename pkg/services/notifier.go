package services

import (
	"context"

	"github.com/ragecodemaster/landing/pkg/clients/relay"
	"github.com/ragecodemaster/landing/pkg/clients/telegram"
)

// Notifier delivers one text message to the team's chat.
type Notifier interface {
	Notify(ctx context.Context, text string) error
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(ctx context.Context, text string) error

func (f NotifierFunc) Notify(ctx context.Context, text string) error {
	return f(ctx, text)
}

// TelegramNotifier sends straight to the Telegram Bot API.
func TelegramNotifier(c telegram.Client) Notifier {
	return NotifierFunc(c.SendMessage)
}

// RelayNotifier hands the text to a remote notification endpoint.
func RelayNotifier(c relay.Client) Notifier {
	return NotifierFunc(c.Send)
}
