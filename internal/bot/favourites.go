package bot

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"bgbot/internal/models"
)

// addFavourite saves the session's current sentence to the user's
// favourites and returns the callback answer text. Duplicate saves are
// safe and reported as such.
func (b *Bot) addFavourite(ctx context.Context, userID int64) (string, error) {
	defer b.locks.lock(userID)()

	sess, err := b.db.GetSession(ctx, userID)
	if err != nil {
		return getUIText("error_occurred", ""), err
	}
	if sess == nil || !sess.LessonActive {
		return "❌ No active lesson", nil
	}

	s, err := b.content.SentenceAt(ctx, sess.Folder, sess.Category, sess.CurrentIndex)
	if err != nil {
		return getUIText("error_occurred", sess.LanguageTo), err
	}
	if s == nil {
		return "❌ Sentence not found", nil
	}

	before, err := b.db.CountFavourites(ctx, userID)
	if err != nil {
		return getUIText("error_occurred", sess.LanguageTo), err
	}

	fav := &models.Favourite{
		UserID:     userID,
		SentenceID: s.ID,
		Folder:     sess.Folder,
		Category:   sess.Category,
		BG:         s.BG,
		Eng:        s.Eng,
		Ru:         s.Ru,
		Ua:         s.Ua,
		Audio:      s.Audio,
		AddedAt:    time.Now().UTC(),
	}
	if err := b.db.UpsertFavourite(ctx, fav); err != nil {
		return getUIText("error_occurred", sess.LanguageTo), fmt.Errorf("failed to save favourite: %w", err)
	}

	after, err := b.db.CountFavourites(ctx, userID)
	if err == nil && after == before {
		return getUIText("favourite_exists", sess.LanguageTo), nil
	}

	b.logger.Info("favourite added", zap.Int64("user_id", userID), zap.String("sentence", s.BG))
	return getUIText("favourite_added", sess.LanguageTo), nil
}

// sendFavourites renders the saved-sentences list.
func (b *Bot) sendFavourites(ctx context.Context, chatID, userID int64) error {
	sess, err := b.loadOrCreateSession(ctx, userID)
	if err != nil {
		return err
	}

	favs, err := b.db.ListFavourites(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to list favourites: %w", err)
	}

	_, err = b.tp.send(chatID, buildFavouritesText(favs, sess.LanguageTo), completionKeyboard(sess.LanguageTo))
	return err
}
