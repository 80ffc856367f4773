package bot

import (
	"context"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

// HandleUpdate dispatches one incoming update. Both paths recover from
// panics so a bad update can never take the process down.
func (b *Bot) HandleUpdate(update tgbotapi.Update) {
	switch {
	case update.Message != nil:
		b.handleMessage(update.Message)
	case update.CallbackQuery != nil:
		b.handleCallbackQuery(update.CallbackQuery)
	}
}

// handleMessage processes a single message
func (b *Bot) handleMessage(message *tgbotapi.Message) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error("recovered from panic in handleMessage",
				zap.Any("panic", r), zap.Stack("stack"))
		}
	}()

	if !message.IsCommand() {
		return
	}

	ctx := context.Background()
	var err error
	switch message.Command() {
	case "start":
		err = b.handleStart(ctx, message)
	case "help":
		err = b.handleHelp(ctx, message)
	case "progress":
		err = b.handleProgress(ctx, message)
	case "favourites":
		err = b.sendFavourites(ctx, message.Chat.ID, message.From.ID)
	default:
		err = b.handleHelp(ctx, message)
	}
	if err != nil {
		b.logger.Error("command failed",
			zap.String("command", message.Command()),
			zap.Int64("user_id", message.From.ID),
			zap.Error(err))
	}
}

// handleCallbackQuery routes inline keyboard button clicks by prefix. The
// callback is answered first so the client never shows a stuck loading
// state, regardless of how long rendering takes.
func (b *Bot) handleCallbackQuery(query *tgbotapi.CallbackQuery) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error("recovered from panic in handleCallbackQuery",
				zap.Any("panic", r), zap.Stack("stack"))
		}
	}()

	if query.Message == nil {
		return
	}

	ctx := context.Background()
	userID := query.From.ID
	chatID := query.Message.Chat.ID
	data := query.Data

	languageTo := ""
	if sess, err := b.db.GetSession(ctx, userID); err == nil && sess != nil {
		languageTo = sess.LanguageTo
	}

	// fav:add answers with its outcome instead
	if data != cbAddFavourite {
		if err := b.tp.answer(query.ID, answerText(data, languageTo)); err != nil {
			b.logger.Debug("failed to answer callback", zap.Error(err))
		}
	}

	var err error
	switch {
	case strings.HasPrefix(data, cbLangPrefix):
		err = b.onLanguageSelected(ctx, query, strings.TrimPrefix(data, cbLangPrefix))
	case strings.HasPrefix(data, cbFolderPrefix):
		err = b.onFolderSelected(ctx, query, strings.TrimPrefix(data, cbFolderPrefix))
	case strings.HasPrefix(data, cbCategoryPrefix):
		err = b.startLesson(ctx, chatID, userID, "", strings.TrimPrefix(data, cbCategoryPrefix))
	case strings.HasPrefix(data, cbStartLesson+":"):
		err = b.startLesson(ctx, chatID, userID, "", strings.TrimPrefix(data, cbStartLesson+":"))
	case data == cbStartLesson:
		_, err = b.tp.send(chatID, getUIText("select_level", languageTo), folderKeyboard())
	case data == cbContinueLesson:
		err = b.resumeLesson(ctx, chatID, userID)
	case data == cbShowTranslation:
		err = b.revealTranslation(ctx, chatID, userID)
	case data == cbNext:
		err = b.nextSentence(ctx, chatID, userID)
	case data == cbPrev:
		err = b.previousSentence(ctx, chatID, userID)
	case data == cbExit:
		err = b.exitLesson(ctx, chatID, userID)
	case data == cbAddFavourite:
		var answer string
		answer, err = b.addFavourite(ctx, userID)
		if aerr := b.tp.answer(query.ID, answer); aerr != nil {
			b.logger.Debug("failed to answer callback", zap.Error(aerr))
		}
	default:
		b.logger.Debug("unknown callback", zap.String("data", data))
	}
	if err != nil {
		b.logger.Error("callback failed",
			zap.String("data", data),
			zap.Int64("user_id", userID),
			zap.Error(err))
	}
}
