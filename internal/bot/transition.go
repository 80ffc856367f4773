package bot

import (
	"fmt"

	"go.uber.org/zap"
)

// sendCard delivers a card as a fresh message, audio or text depending on
// the attachment.
func (b *Bot) sendCard(chatID int64, card lessonCard) (renderedMessage, error) {
	if card.hasAudio() {
		id, err := b.tp.sendAudio(chatID, card.audio, card.audioTitle, card.text, card.keyboard)
		return renderedMessage{id: id, hasAudio: true}, err
	}
	id, err := b.tp.send(chatID, card.text, card.keyboard)
	return renderedMessage{id: id}, err
}

// transition replaces the live lesson message with a new card and returns
// the message that now displays it.
//
// A text-to-text step prefers an in-place edit (same message id), with a
// transient skeleton shown first to mask latency. Audio attachments cannot
// be edited in, so any step that involves audio — and any step whose edit
// was rejected — falls back to replace: the new message is sent before the
// old one is deleted, so the chat always keeps a live lesson message. The
// delete is best-effort and runs in the background.
func (b *Bot) transition(chatID int64, prev renderedMessage, card lessonCard, category string, index, total int) (renderedMessage, error) {
	if prev.id == 0 {
		return b.sendCard(chatID, card)
	}

	if !prev.hasAudio && !card.hasAudio() {
		if err := b.tp.edit(chatID, prev.id, buildSkeleton(category, index, total), card.keyboard); err != nil {
			b.logger.Debug("skeleton edit failed",
				zap.Int64("chat_id", chatID), zap.Int("message_id", prev.id), zap.Error(err))
		}
		if err := b.tp.edit(chatID, prev.id, card.text, card.keyboard); err == nil {
			return prev, nil
		} else {
			b.logger.Warn("edit rejected, replacing message",
				zap.Int64("chat_id", chatID), zap.Int("message_id", prev.id), zap.Error(err))
		}
	}

	next, err := b.sendCard(chatID, card)
	if err != nil {
		return prev, fmt.Errorf("failed to send replacement message: %w", err)
	}
	b.deleteLater(chatID, prev.id)
	return next, nil
}

// deleteLater removes a superseded message in the background. Failure is a
// tidiness problem, not a correctness one.
func (b *Bot) deleteLater(chatID int64, messageID int) {
	go func() {
		if err := b.tp.delete(chatID, messageID); err != nil {
			b.logger.Warn("failed to delete superseded message",
				zap.Int64("chat_id", chatID), zap.Int("message_id", messageID), zap.Error(err))
		}
	}()
}
