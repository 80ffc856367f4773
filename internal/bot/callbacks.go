package bot

import (
	"context"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"bgbot/internal/content"
)

// onLanguageSelected stores the chosen target language and moves on to
// folder selection.
func (b *Bot) onLanguageSelected(ctx context.Context, query *tgbotapi.CallbackQuery, code string) error {
	if !content.ValidLanguage(code) {
		return nil
	}

	userID := query.From.ID
	unlock := b.locks.lock(userID)
	sess, err := b.loadOrCreateSession(ctx, userID)
	if err == nil {
		sess.LanguageTo = code
		err = b.persistSession(ctx, sess)
	}
	unlock()
	if err != nil {
		return err
	}

	_, err = b.tp.send(query.Message.Chat.ID, getUIText("select_level", code), folderKeyboard())
	return err
}

// onFolderSelected stores the folder and shows its categories.
func (b *Bot) onFolderSelected(ctx context.Context, query *tgbotapi.CallbackQuery, folder string) error {
	if !content.ValidFolder(folder) {
		return nil
	}

	userID := query.From.ID
	unlock := b.locks.lock(userID)
	sess, err := b.loadOrCreateSession(ctx, userID)
	if err == nil {
		if folder != sess.Folder {
			sess.Folder = folder
			sess.CurrentIndex = 0
			sess.TranslationRevealed = false
		}
		err = b.persistSession(ctx, sess)
	}
	unlock()
	if err != nil {
		return err
	}

	categories, err := b.content.Categories(ctx, folder)
	if err != nil {
		return err
	}
	if len(categories) == 0 {
		_, err := b.tp.send(query.Message.Chat.ID, getUIText("no_categories", sess.LanguageTo), folderKeyboard())
		return err
	}

	_, err = b.tp.send(query.Message.Chat.ID, getUIText("select_category", sess.LanguageTo), categoryKeyboard(categories, sess.LanguageTo))
	return err
}

// answerText maps an action to the toast shown while it is processed.
func answerText(data, languageTo string) string {
	switch {
	case data == cbShowTranslation:
		return getUIText("translation_revealed", languageTo)
	case data == cbNext:
		return getUIText("next_clicked", languageTo)
	case data == cbPrev:
		return getUIText("previous_clicked", languageTo)
	case data == cbContinueLesson,
		strings.HasPrefix(data, cbCategoryPrefix),
		strings.HasPrefix(data, cbStartLesson+":"):
		return getUIText("lesson_started", languageTo)
	default:
		return ""
	}
}
