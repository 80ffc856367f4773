package pg

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"bgbot/internal/models"
)

type PostgresDB struct {
	pool *pgxpool.Pool
}

// NewPostgresDB creates a new Postgres connection pool from a DSN
func NewPostgresDB(ctx context.Context, dsn string) (*PostgresDB, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database URL: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	// Test the connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &PostgresDB{pool: pool}, nil
}

// Initialize is a no-op - tables are managed via migrations
func (db *PostgresDB) Initialize(ctx context.Context) error {
	// Tables are managed via migrations (see migrations/ directory)
	return nil
}

// CreateSentence inserts a sentence into its (folder, category, position) slot
func (db *PostgresDB) CreateSentence(ctx context.Context, s *models.Sentence) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	_, err := db.pool.Exec(ctx, `
		INSERT INTO sentences (
			id, folder, category, position, bg, eng, ru, ua, source,
			grammar, explanation, tag, rule_eng, rule_ru, rule_ua,
			comparison, false_friend, audio, audio_generated
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)`,
		s.ID, s.Folder, s.Category, s.Position, s.BG, s.Eng, s.Ru, s.Ua, s.Source,
		s.Grammar, s.Explanation, s.Tag, s.RuleEng, s.RuleRu, s.RuleUA,
		s.Comparison, s.FalseFriend, s.Audio, s.AudioGenerated)
	if err != nil {
		return fmt.Errorf("failed to create sentence: %w", err)
	}
	return nil
}

// GetSentenceByIndex returns the sentence at a zero-based position within
// (folder, category), or nil when the position does not exist
func (db *PostgresDB) GetSentenceByIndex(ctx context.Context, folder, category string, index int) (*models.Sentence, error) {
	row := db.pool.QueryRow(ctx, `
		SELECT id, folder, category, position, bg, eng, ru, ua, source,
		       grammar, explanation, tag, rule_eng, rule_ru, rule_ua,
		       comparison, false_friend, audio, audio_generated
		FROM sentences
		WHERE folder = $1 AND category = $2 AND position = $3`,
		folder, category, index)

	var s models.Sentence
	err := row.Scan(&s.ID, &s.Folder, &s.Category, &s.Position, &s.BG, &s.Eng, &s.Ru, &s.Ua, &s.Source,
		&s.Grammar, &s.Explanation, &s.Tag, &s.RuleEng, &s.RuleRu, &s.RuleUA,
		&s.Comparison, &s.FalseFriend, &s.Audio, &s.AudioGenerated)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get sentence: %w", err)
	}
	return &s, nil
}

// CountSentences returns the number of sentences in (folder, category)
func (db *PostgresDB) CountSentences(ctx context.Context, folder, category string) (int, error) {
	var count int
	err := db.pool.QueryRow(ctx,
		`SELECT count(*) FROM sentences WHERE folder = $1 AND category = $2`,
		folder, category).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count sentences: %w", err)
	}
	return count, nil
}

// ListCategories returns the distinct category names within a folder, sorted
func (db *PostgresDB) ListCategories(ctx context.Context, folder string) ([]string, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT DISTINCT category FROM sentences WHERE folder = $1 ORDER BY category`, folder)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer rows.Close()

	var categories []string
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

// GetSession returns the stored session for a user, or nil when absent
func (db *PostgresDB) GetSession(ctx context.Context, userID int64) (*models.Session, error) {
	row := db.pool.QueryRow(ctx, `
		SELECT user_id, folder, category, current_index, language_to,
		       lesson_active, translation_revealed, last_message_id, last_has_audio,
		       last_folder, last_category, updated_at
		FROM sessions WHERE user_id = $1`, userID)

	var s models.Session
	err := row.Scan(&s.UserID, &s.Folder, &s.Category, &s.CurrentIndex, &s.LanguageTo,
		&s.LessonActive, &s.TranslationRevealed, &s.LastMessageID, &s.LastHasAudio,
		&s.LastFolder, &s.LastCategory, &s.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return &s, nil
}

// UpsertSession writes the whole session row atomically
func (db *PostgresDB) UpsertSession(ctx context.Context, s *models.Session) error {
	s.UpdatedAt = time.Now().UTC()
	_, err := db.pool.Exec(ctx, `
		INSERT INTO sessions (
			user_id, folder, category, current_index, language_to,
			lesson_active, translation_revealed, last_message_id, last_has_audio,
			last_folder, last_category, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (user_id) DO UPDATE SET
			folder = EXCLUDED.folder,
			category = EXCLUDED.category,
			current_index = EXCLUDED.current_index,
			language_to = EXCLUDED.language_to,
			lesson_active = EXCLUDED.lesson_active,
			translation_revealed = EXCLUDED.translation_revealed,
			last_message_id = EXCLUDED.last_message_id,
			last_has_audio = EXCLUDED.last_has_audio,
			last_folder = EXCLUDED.last_folder,
			last_category = EXCLUDED.last_category,
			updated_at = EXCLUDED.updated_at`,
		s.UserID, s.Folder, s.Category, s.CurrentIndex, s.LanguageTo,
		s.LessonActive, s.TranslationRevealed, s.LastMessageID, s.LastHasAudio,
		s.LastFolder, s.LastCategory, s.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to upsert session: %w", err)
	}
	return nil
}

// RecordReview upserts the mastery record for (userID, sentenceID) and
// increments its review count
func (db *PostgresDB) RecordReview(ctx context.Context, userID int64, sentenceID uuid.UUID, folder, category, status string) error {
	now := time.Now().UTC()
	_, err := db.pool.Exec(ctx, `
		INSERT INTO mastery (
			user_id, sentence_id, folder, category, status,
			review_count, last_reviewed_at, mastered_at
		) VALUES ($1, $2, $3, $4, $5, 1, $6, $6)
		ON CONFLICT (user_id, sentence_id) DO UPDATE SET
			status = EXCLUDED.status,
			review_count = mastery.review_count + 1,
			last_reviewed_at = EXCLUDED.last_reviewed_at,
			mastered_at = EXCLUDED.mastered_at`,
		userID, sentenceID, folder, category, status, now)
	if err != nil {
		return fmt.Errorf("failed to record review: %w", err)
	}
	return nil
}

// CountMastered counts the user's mastery records in (folder, category)
// matching any of the given statuses
func (db *PostgresDB) CountMastered(ctx context.Context, userID int64, folder, category string, statuses []string) (int, error) {
	var count int
	err := db.pool.QueryRow(ctx, `
		SELECT count(*) FROM mastery
		WHERE user_id = $1 AND folder = $2 AND category = $3 AND status = ANY($4)`,
		userID, folder, category, statuses).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count mastered sentences: %w", err)
	}
	return count, nil
}

// UpsertFavourite saves a favourite, refreshing the cached text on conflict
func (db *PostgresDB) UpsertFavourite(ctx context.Context, f *models.Favourite) error {
	if f.AddedAt.IsZero() {
		f.AddedAt = time.Now().UTC()
	}
	_, err := db.pool.Exec(ctx, `
		INSERT INTO favourites (
			user_id, sentence_id, folder, category, bg, eng, ru, ua, audio, added_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (user_id, sentence_id) DO UPDATE SET
			bg = EXCLUDED.bg,
			eng = EXCLUDED.eng,
			ru = EXCLUDED.ru,
			ua = EXCLUDED.ua,
			audio = EXCLUDED.audio`,
		f.UserID, f.SentenceID, f.Folder, f.Category, f.BG, f.Eng, f.Ru, f.Ua, f.Audio, f.AddedAt)
	if err != nil {
		return fmt.Errorf("failed to upsert favourite: %w", err)
	}
	return nil
}

// ListFavourites returns the user's favourites, most recent first
func (db *PostgresDB) ListFavourites(ctx context.Context, userID int64) ([]models.Favourite, error) {
	rows, err := db.pool.Query(ctx, `
		SELECT user_id, sentence_id, folder, category, bg, eng, ru, ua, audio, added_at
		FROM favourites WHERE user_id = $1 ORDER BY added_at DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list favourites: %w", err)
	}
	defer rows.Close()

	var favourites []models.Favourite
	for rows.Next() {
		var f models.Favourite
		if err := rows.Scan(&f.UserID, &f.SentenceID, &f.Folder, &f.Category,
			&f.BG, &f.Eng, &f.Ru, &f.Ua, &f.Audio, &f.AddedAt); err != nil {
			return nil, fmt.Errorf("failed to scan favourite: %w", err)
		}
		favourites = append(favourites, f)
	}
	return favourites, rows.Err()
}

// CountFavourites returns how many favourites the user has saved
func (db *PostgresDB) CountFavourites(ctx context.Context, userID int64) (int, error) {
	var count int
	err := db.pool.QueryRow(ctx,
		`SELECT count(*) FROM favourites WHERE user_id = $1`, userID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count favourites: %w", err)
	}
	return count, nil
}

// Close closes the connection pool
func (db *PostgresDB) Close() error {
	if db.pool != nil {
		db.pool.Close()
	}
	return nil
}
