package bot

import (
	"context"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"bgbot/internal/content"
	"bgbot/internal/models"
)

// handleStart greets the user. With an active lesson it offers resuming;
// otherwise it starts from target-language selection.
func (b *Bot) handleStart(ctx context.Context, message *tgbotapi.Message) error {
	sess, err := b.loadOrCreateSession(ctx, message.From.ID)
	if err != nil {
		return err
	}

	if sess.LessonActive && sess.LastCategory != "" {
		cat := content.CategoryByID(sess.LastCategory)
		text := fmt.Sprintf("%s\n\n%s %s <b>%s</b>\n\n%s",
			getUIText("welcome_back", sess.LanguageTo),
			getUIText("active_lesson", sess.LanguageTo),
			cat.Emoji, strings.ToUpper(cat.Name),
			getUIText("what_to_do", sess.LanguageTo))
		_, err := b.tp.send(message.Chat.ID, text, welcomeBackKeyboard(sess.LanguageTo))
		return err
	}

	_, err = b.tp.send(message.Chat.ID, getUIText("select_language", sess.LanguageTo), languageKeyboard())
	return err
}

// handleHelp lists the available commands.
func (b *Bot) handleHelp(ctx context.Context, message *tgbotapi.Message) error {
	text := "🇧🇬 <b>Bulgarian Flashcards</b>\n\n" +
		"/start — start or resume a lesson\n" +
		"/progress — your mastery per category\n" +
		"/favourites — your saved sentences\n" +
		"/help — this message\n\n" +
		"During a lesson: reveal the translation, step back and forth, and save sentences with ⭐."
	_, err := b.tp.send(message.Chat.ID, text, tgbotapi.InlineKeyboardMarkup{})
	return err
}

// handleProgress renders per-category mastery bars across all folders.
func (b *Bot) handleProgress(ctx context.Context, message *tgbotapi.Message) error {
	userID := message.From.ID
	sess, err := b.loadOrCreateSession(ctx, userID)
	if err != nil {
		return err
	}

	stats, err := b.collectProgress(ctx, userID)
	if err != nil {
		return err
	}
	if len(stats) == 0 {
		_, err := b.tp.send(message.Chat.ID, getUIText("progress_no_lessons", sess.LanguageTo), folderKeyboard())
		return err
	}

	var sb strings.Builder
	sb.WriteString(getUIText("progress_title", sess.LanguageTo))
	current := ""
	for _, st := range stats {
		if st.Folder != current {
			current = st.Folder
			f := content.FolderByID(st.Folder)
			fmt.Fprintf(&sb, "\n\n%s <b>%s</b>", f.Emoji, f.Name)
		}
		c := content.CategoryByID(st.Category)
		fmt.Fprintf(&sb, "\n%s %s: %s (%d/%d)",
			c.Emoji, c.Name, progressBar(st.MasteredCount, st.Total), st.MasteredCount, st.Total)
	}

	_, err = b.tp.send(message.Chat.ID, sb.String(), folderKeyboard())
	return err
}

// collectProgress walks the catalog and returns stats for every category
// the user has mastery records in, in folder order.
func (b *Bot) collectProgress(ctx context.Context, userID int64) ([]models.CategoryStat, error) {
	mastered := []string{models.StatusLearned, models.StatusKnown}

	var stats []models.CategoryStat
	for _, f := range content.Folders {
		categories, err := b.content.Categories(ctx, f.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to list categories: %w", err)
		}
		for _, cat := range categories {
			count, err := b.db.CountMastered(ctx, userID, f.ID, cat, mastered)
			if err != nil {
				return nil, fmt.Errorf("failed to count mastered: %w", err)
			}
			if count == 0 {
				continue
			}
			total, err := b.content.Total(ctx, f.ID, cat)
			if err != nil {
				return nil, fmt.Errorf("failed to count sentences: %w", err)
			}
			stats = append(stats, models.CategoryStat{
				Folder:        f.ID,
				Category:      cat,
				Total:         total,
				MasteredCount: count,
			})
		}
	}
	return stats, nil
}
