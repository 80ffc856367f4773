package bot

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"bgbot/internal/content"
	"bgbot/internal/models"
)

// loadOrCreateSession returns the user's session, lazily creating one with
// defaults on first contact.
func (b *Bot) loadOrCreateSession(ctx context.Context, userID int64) (*models.Session, error) {
	sess, err := b.db.GetSession(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	if sess == nil {
		sess = &models.Session{
			UserID:     userID,
			Folder:     content.FolderBasic,
			Category:   "greetings",
			LanguageTo: content.LangEng,
		}
	}
	return sess, nil
}

func (b *Bot) persistSession(ctx context.Context, sess *models.Session) error {
	sess.UpdatedAt = time.Now().UTC()
	if err := b.db.UpsertSession(ctx, sess); err != nil {
		return fmt.Errorf("failed to persist session: %w", err)
	}
	return nil
}

// composeCard builds the deliverable for the sentence at the session's
// current position.
func (b *Bot) composeCard(s *models.Sentence, sess *models.Session, total int) lessonCard {
	return lessonCard{
		text: buildLessonText(s, sess.Folder, sess.Category, sess.CurrentIndex, total,
			sess.LanguageTo, sess.TranslationRevealed),
		audio:      s.Audio,
		audioTitle: fmt.Sprintf("%s %d", sess.Category, sess.CurrentIndex+1),
		keyboard:   lessonKeyboard(sess.LanguageTo, sess.TranslationRevealed),
	}
}

// renderCard runs the transition and records the resulting live message in
// the session.
func (b *Bot) renderCard(chatID int64, sess *models.Session, card lessonCard, total int) error {
	prev := renderedMessage{id: sess.LastMessageID, hasAudio: sess.LastHasAudio}
	rendered, err := b.transition(chatID, prev, card, sess.Category, sess.CurrentIndex, total)
	if err != nil {
		return err
	}
	sess.LastMessageID = rendered.id
	sess.LastHasAudio = rendered.hasAudio
	return nil
}

// startLesson begins (or restarts) a lesson. A category different from the
// session's current one resets the position; the first card is always a
// fresh send.
func (b *Bot) startLesson(ctx context.Context, chatID, userID int64, folder, category string) error {
	defer b.locks.lock(userID)()

	sess, err := b.loadOrCreateSession(ctx, userID)
	if err != nil {
		return err
	}

	if folder != "" && folder != sess.Folder {
		sess.Folder = folder
		sess.CurrentIndex = 0
	}
	if category != "" && category != sess.Category {
		sess.Category = category
		sess.CurrentIndex = 0
	}
	sess.TranslationRevealed = false

	total, err := b.content.Total(ctx, sess.Folder, sess.Category)
	if err != nil {
		return fmt.Errorf("failed to count sentences: %w", err)
	}
	if total == 0 {
		_, err := b.tp.send(chatID, getUIText("no_sentences", sess.LanguageTo), categoryKeyboard(nil, sess.LanguageTo))
		return err
	}
	if sess.CurrentIndex >= total {
		sess.CurrentIndex = 0
	}

	s, err := b.content.SentenceAt(ctx, sess.Folder, sess.Category, sess.CurrentIndex)
	if err != nil {
		return fmt.Errorf("failed to load sentence: %w", err)
	}
	if s == nil {
		_, err := b.tp.send(chatID, getUIText("no_sentences", sess.LanguageTo), categoryKeyboard(nil, sess.LanguageTo))
		return err
	}

	card := b.composeCard(s, sess, total)
	rendered, err := b.sendCard(chatID, card)
	if err != nil {
		return err
	}

	sess.LastMessageID = rendered.id
	sess.LastHasAudio = rendered.hasAudio
	sess.LessonActive = true
	sess.LastFolder = sess.Folder
	sess.LastCategory = sess.Category
	return b.persistSession(ctx, sess)
}

// resumeLesson re-renders the current card as a fresh message, used by the
// welcome-back "resume" path.
func (b *Bot) resumeLesson(ctx context.Context, chatID, userID int64) error {
	defer b.locks.lock(userID)()

	sess, err := b.loadOrCreateSession(ctx, userID)
	if err != nil {
		return err
	}

	total, err := b.content.Total(ctx, sess.Folder, sess.Category)
	if err != nil {
		return fmt.Errorf("failed to count sentences: %w", err)
	}
	s, err := b.content.SentenceAt(ctx, sess.Folder, sess.Category, sess.CurrentIndex)
	if err != nil {
		return fmt.Errorf("failed to load sentence: %w", err)
	}
	if s == nil {
		_, err := b.tp.send(chatID, getUIText("no_sentences", sess.LanguageTo), categoryKeyboard(nil, sess.LanguageTo))
		return err
	}

	sess.TranslationRevealed = false
	card := b.composeCard(s, sess, total)
	rendered, err := b.sendCard(chatID, card)
	if err != nil {
		return err
	}

	sess.LastMessageID = rendered.id
	sess.LastHasAudio = rendered.hasAudio
	sess.LessonActive = true
	return b.persistSession(ctx, sess)
}

// revealTranslation recomposes the current card with the translation shown
// and edits the live message in place. Reveal never changes the attachment,
// so no replace fallback is needed.
func (b *Bot) revealTranslation(ctx context.Context, chatID, userID int64) error {
	defer b.locks.lock(userID)()

	sess, err := b.loadOrCreateSession(ctx, userID)
	if err != nil {
		return err
	}
	if !sess.LessonActive || sess.LastMessageID == 0 {
		return nil
	}

	total, err := b.content.Total(ctx, sess.Folder, sess.Category)
	if err != nil {
		return fmt.Errorf("failed to count sentences: %w", err)
	}
	s, err := b.content.SentenceAt(ctx, sess.Folder, sess.Category, sess.CurrentIndex)
	if err != nil {
		return fmt.Errorf("failed to load sentence: %w", err)
	}
	if s == nil {
		return nil
	}

	sess.TranslationRevealed = true
	card := b.composeCard(s, sess, total)

	if sess.LastHasAudio {
		err = b.tp.editCaption(chatID, sess.LastMessageID, card.text, card.keyboard)
	} else {
		err = b.tp.edit(chatID, sess.LastMessageID, card.text, card.keyboard)
	}
	if err != nil {
		return err
	}
	return b.persistSession(ctx, sess)
}

// nextSentence marks the departed sentence reviewed and advances, or at the
// last index renders the completion summary and ends the lesson.
func (b *Bot) nextSentence(ctx context.Context, chatID, userID int64) error {
	defer b.locks.lock(userID)()

	sess, err := b.loadOrCreateSession(ctx, userID)
	if err != nil {
		return err
	}
	if !sess.LessonActive {
		return nil
	}

	total, err := b.content.Total(ctx, sess.Folder, sess.Category)
	if err != nil {
		return fmt.Errorf("failed to count sentences: %w", err)
	}

	b.markReviewed(ctx, sess)

	if sess.CurrentIndex >= total-1 {
		card := lessonCard{
			text:     buildCompletionText(sess.Category, total, sess.LanguageTo),
			keyboard: completionKeyboard(sess.LanguageTo),
		}
		if err := b.renderCard(chatID, sess, card, total); err != nil {
			return err
		}
		sess.LessonActive = false
		sess.TranslationRevealed = false
		return b.persistSession(ctx, sess)
	}

	sess.CurrentIndex++
	sess.TranslationRevealed = false

	s, err := b.content.SentenceAt(ctx, sess.Folder, sess.Category, sess.CurrentIndex)
	if err != nil {
		return fmt.Errorf("failed to load sentence: %w", err)
	}
	if s == nil {
		return fmt.Errorf("no sentence at %s/%s index %d", sess.Folder, sess.Category, sess.CurrentIndex)
	}

	if err := b.renderCard(chatID, sess, b.composeCard(s, sess, total), total); err != nil {
		return err
	}
	return b.persistSession(ctx, sess)
}

// previousSentence marks the departed sentence reviewed and steps back. At
// index 0 it re-renders the same card instead of underflowing.
func (b *Bot) previousSentence(ctx context.Context, chatID, userID int64) error {
	defer b.locks.lock(userID)()

	sess, err := b.loadOrCreateSession(ctx, userID)
	if err != nil {
		return err
	}
	if !sess.LessonActive {
		return nil
	}

	total, err := b.content.Total(ctx, sess.Folder, sess.Category)
	if err != nil {
		return fmt.Errorf("failed to count sentences: %w", err)
	}

	b.markReviewed(ctx, sess)

	if sess.CurrentIndex > 0 {
		sess.CurrentIndex--
	}
	sess.TranslationRevealed = false

	s, err := b.content.SentenceAt(ctx, sess.Folder, sess.Category, sess.CurrentIndex)
	if err != nil {
		return fmt.Errorf("failed to load sentence: %w", err)
	}
	if s == nil {
		return fmt.Errorf("no sentence at %s/%s index %d", sess.Folder, sess.Category, sess.CurrentIndex)
	}

	if err := b.renderCard(chatID, sess, b.composeCard(s, sess, total), total); err != nil {
		return err
	}
	return b.persistSession(ctx, sess)
}

// exitLesson deactivates the lesson and shows the folder menu.
func (b *Bot) exitLesson(ctx context.Context, chatID, userID int64) error {
	defer b.locks.lock(userID)()

	sess, err := b.loadOrCreateSession(ctx, userID)
	if err != nil {
		return err
	}

	sess.LessonActive = false
	sess.TranslationRevealed = false
	sess.LastMessageID = 0
	sess.LastHasAudio = false
	if err := b.persistSession(ctx, sess); err != nil {
		return err
	}

	_, err = b.tp.send(chatID, getUIText("select_level", sess.LanguageTo), folderKeyboard())
	return err
}

// markReviewed upserts a mastery record for the sentence being departed.
// Failure is logged and does not block navigation.
func (b *Bot) markReviewed(ctx context.Context, sess *models.Session) {
	s, err := b.content.SentenceAt(ctx, sess.Folder, sess.Category, sess.CurrentIndex)
	if err != nil || s == nil {
		return
	}
	if err := b.db.RecordReview(ctx, sess.UserID, s.ID, sess.Folder, sess.Category, models.StatusLearned); err != nil {
		b.logger.Warn("failed to record review", zap.Int64("user_id", sess.UserID), zap.Error(err))
	}
}
