package storage

import (
	"context"

	"github.com/google/uuid"

	"bgbot/internal/models"
)

// Storage defines the interface for data storage operations
type Storage interface {
	// Sentence operations
	CreateSentence(ctx context.Context, s *models.Sentence) error
	GetSentenceByIndex(ctx context.Context, folder, category string, index int) (*models.Sentence, error)
	CountSentences(ctx context.Context, folder, category string) (int, error)
	ListCategories(ctx context.Context, folder string) ([]string, error)

	// Session operations

	// GetSession returns the stored session for a user, or nil when the
	// user has never interacted with the bot.
	GetSession(ctx context.Context, userID int64) (*models.Session, error)
	// UpsertSession writes the whole session document atomically.
	UpsertSession(ctx context.Context, s *models.Session) error

	// Mastery operations

	// RecordReview upserts the mastery record for (userID, sentenceID),
	// setting the given status and incrementing the review count. At most
	// one record exists per pair.
	RecordReview(ctx context.Context, userID int64, sentenceID uuid.UUID, folder, category, status string) error
	// CountMastered counts mastery records for the user in
	// (folder, category) whose status is one of statuses.
	CountMastered(ctx context.Context, userID int64, folder, category string, statuses []string) (int, error)

	// Favourite operations
	UpsertFavourite(ctx context.Context, f *models.Favourite) error
	ListFavourites(ctx context.Context, userID int64) ([]models.Favourite, error)
	CountFavourites(ctx context.Context, userID int64) (int, error)

	// Lifecycle
	Initialize(ctx context.Context) error
	Close() error
}
