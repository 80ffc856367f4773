package bot

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"bgbot/internal/content"
	"bgbot/internal/storage"
)

// Bot represents the Telegram bot wrapper
type Bot struct {
	api     *tgbotapi.BotAPI
	tp      transport
	db      storage.Storage
	content *content.Repository
	locks   *userLocks
	logger  *zap.Logger
}

// transport abstracts the message operations the lesson engine performs
// against Telegram, so transitions can be tested without the network.
type transport interface {
	send(chatID int64, text string, keyboard tgbotapi.InlineKeyboardMarkup) (int, error)
	sendAudio(chatID int64, audio []byte, title, caption string, keyboard tgbotapi.InlineKeyboardMarkup) (int, error)
	edit(chatID int64, messageID int, text string, keyboard tgbotapi.InlineKeyboardMarkup) error
	editCaption(chatID int64, messageID int, caption string, keyboard tgbotapi.InlineKeyboardMarkup) error
	delete(chatID int64, messageID int) error
	answer(callbackID, text string) error
}

// lessonCard is the composed content of one lesson message: text (HTML),
// an optional audio attachment, and the action buttons.
type lessonCard struct {
	text       string
	audio      []byte
	audioTitle string
	keyboard   tgbotapi.InlineKeyboardMarkup
}

func (c lessonCard) hasAudio() bool {
	return len(c.audio) > 0
}

// renderedMessage identifies the live lesson message in a chat and its
// attachment kind.
type renderedMessage struct {
	id       int
	hasAudio bool
}
