package bot

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// tgTransport implements transport over the Telegram Bot API. All lesson
// messages are sent as HTML.
type tgTransport struct {
	api *tgbotapi.BotAPI
}

func (t *tgTransport) send(chatID int64, text string, keyboard tgbotapi.InlineKeyboardMarkup) (int, error) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	if len(keyboard.InlineKeyboard) > 0 {
		msg.ReplyMarkup = keyboard
	}

	sent, err := t.api.Send(msg)
	if err != nil {
		return 0, fmt.Errorf("failed to send message: %w", err)
	}
	return sent.MessageID, nil
}

func (t *tgTransport) sendAudio(chatID int64, audio []byte, title, caption string, keyboard tgbotapi.InlineKeyboardMarkup) (int, error) {
	msg := tgbotapi.NewAudio(chatID, tgbotapi.FileBytes{Name: title + ".mp3", Bytes: audio})
	msg.Title = title
	msg.Caption = caption
	msg.ParseMode = tgbotapi.ModeHTML
	msg.ReplyMarkup = keyboard

	sent, err := t.api.Send(msg)
	if err != nil {
		return 0, fmt.Errorf("failed to send audio: %w", err)
	}
	return sent.MessageID, nil
}

func (t *tgTransport) edit(chatID int64, messageID int, text string, keyboard tgbotapi.InlineKeyboardMarkup) error {
	msg := tgbotapi.NewEditMessageTextAndMarkup(chatID, messageID, text, keyboard)
	msg.ParseMode = tgbotapi.ModeHTML

	if _, err := t.api.Send(msg); err != nil {
		return fmt.Errorf("failed to edit message: %w", err)
	}
	return nil
}

func (t *tgTransport) editCaption(chatID int64, messageID int, caption string, keyboard tgbotapi.InlineKeyboardMarkup) error {
	msg := tgbotapi.NewEditMessageCaption(chatID, messageID, caption)
	msg.ParseMode = tgbotapi.ModeHTML
	msg.ReplyMarkup = &keyboard

	if _, err := t.api.Send(msg); err != nil {
		return fmt.Errorf("failed to edit caption: %w", err)
	}
	return nil
}

func (t *tgTransport) delete(chatID int64, messageID int) error {
	if _, err := t.api.Request(tgbotapi.NewDeleteMessage(chatID, messageID)); err != nil {
		return fmt.Errorf("failed to delete message: %w", err)
	}
	return nil
}

func (t *tgTransport) answer(callbackID, text string) error {
	if _, err := t.api.Request(tgbotapi.NewCallback(callbackID, text)); err != nil {
		return fmt.Errorf("failed to answer callback: %w", err)
	}
	return nil
}
