package pg

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	postgresTC "github.com/testcontainers/testcontainers-go/modules/postgres"

	"bgbot/internal/models"
)

// runMigrations applies the schema directly, mirroring
// migrations/00001_create_tables.sql
func runMigrations(ctx context.Context, db *PostgresDB) error {
	_, err := db.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS sentences (
			id UUID PRIMARY KEY,
			folder TEXT NOT NULL,
			category TEXT NOT NULL,
			position INT NOT NULL,
			bg TEXT NOT NULL,
			eng TEXT NOT NULL,
			ru TEXT NOT NULL,
			ua TEXT NOT NULL,
			source TEXT NOT NULL DEFAULT '',
			grammar TEXT[] NOT NULL DEFAULT '{}',
			explanation TEXT NOT NULL DEFAULT '',
			tag TEXT NOT NULL DEFAULT '',
			rule_eng TEXT NOT NULL DEFAULT '',
			rule_ru TEXT NOT NULL DEFAULT '',
			rule_ua TEXT NOT NULL DEFAULT '',
			comparison TEXT NOT NULL DEFAULT '',
			false_friend TEXT NOT NULL DEFAULT '',
			audio BYTEA NOT NULL DEFAULT '',
			audio_generated BOOLEAN NOT NULL DEFAULT FALSE,
			UNIQUE (folder, category, position)
		);

		CREATE TABLE IF NOT EXISTS sessions (
			user_id BIGINT PRIMARY KEY,
			folder TEXT NOT NULL DEFAULT 'basic',
			category TEXT NOT NULL DEFAULT 'greetings',
			current_index INT NOT NULL DEFAULT 0,
			language_to TEXT NOT NULL DEFAULT 'eng',
			lesson_active BOOLEAN NOT NULL DEFAULT FALSE,
			translation_revealed BOOLEAN NOT NULL DEFAULT FALSE,
			last_message_id INT NOT NULL DEFAULT 0,
			last_has_audio BOOLEAN NOT NULL DEFAULT FALSE,
			last_folder TEXT NOT NULL DEFAULT '',
			last_category TEXT NOT NULL DEFAULT '',
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);

		CREATE TABLE IF NOT EXISTS mastery (
			user_id BIGINT NOT NULL,
			sentence_id UUID NOT NULL,
			folder TEXT NOT NULL,
			category TEXT NOT NULL,
			status TEXT NOT NULL DEFAULT 'new',
			review_count INT NOT NULL DEFAULT 0,
			last_reviewed_at TIMESTAMPTZ,
			mastered_at TIMESTAMPTZ,
			PRIMARY KEY (user_id, sentence_id)
		);

		CREATE TABLE IF NOT EXISTS favourites (
			user_id BIGINT NOT NULL,
			sentence_id UUID NOT NULL,
			folder TEXT NOT NULL,
			category TEXT NOT NULL,
			bg TEXT NOT NULL,
			eng TEXT NOT NULL,
			ru TEXT NOT NULL,
			ua TEXT NOT NULL,
			audio BYTEA NOT NULL DEFAULT '',
			added_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			PRIMARY KEY (user_id, sentence_id)
		);
	`)
	return err
}

// setupTestDB creates a throwaway Postgres instance using testcontainers
func setupTestDB(t *testing.T) (*PostgresDB, func()) {
	ctx := context.Background()

	pgContainer, err := postgresTC.Run(ctx,
		"postgres:16-alpine",
		postgresTC.WithDatabase("bgbot_test"),
		postgresTC.WithUsername("bgbot"),
		postgresTC.WithPassword("secret"),
		postgresTC.BasicWaitStrategies(),
	)
	require.NoError(t, err, "Failed to start Postgres container")

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := NewPostgresDB(ctx, dsn)
	require.NoError(t, err, "Failed to connect to Postgres")

	require.NoError(t, runMigrations(ctx, db), "Failed to run migrations")

	cleanup := func() {
		db.Close()
		_ = pgContainer.Terminate(ctx)
	}
	return db, cleanup
}

func seedSentences(t *testing.T, db *PostgresDB) []*models.Sentence {
	ctx := context.Background()
	sentences := []*models.Sentence{
		{Folder: "basic", Category: "greetings", Position: 0, BG: "Здравей!", Eng: "Hello!", Ru: "Привет!", Ua: "Привіт!"},
		{Folder: "basic", Category: "greetings", Position: 1, BG: "Добро утро!", Eng: "Good morning!", Ru: "Доброе утро!", Ua: "Доброго ранку!"},
		{Folder: "basic", Category: "restaurant", Position: 0, BG: "Сметката, моля.", Eng: "The bill, please.", Ru: "Счёт, пожалуйста.", Ua: "Рахунок, будь ласка."},
		{
			Folder: "middle", Category: "present", Position: 0, BG: "Чета книга.", Eng: "I am reading a book.",
			Ru: "Я читаю книгу.", Ua: "Я читаю книгу.",
			Grammar: []string{"present", "first_person"}, Explanation: "Present tense.",
			Audio: []byte{0x01, 0x02}, AudioGenerated: true,
		},
	}
	for _, s := range sentences {
		require.NoError(t, db.CreateSentence(ctx, s))
	}
	return sentences
}

func TestPostgresSentences(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	db, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	seedSentences(t, db)

	count, err := db.CountSentences(ctx, "basic", "greetings")
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	s, err := db.GetSentenceByIndex(ctx, "basic", "greetings", 1)
	require.NoError(t, err)
	require.NotNil(t, s)
	assert.Equal(t, "Добро утро!", s.BG)
	assert.Equal(t, 1, s.Position)

	missing, err := db.GetSentenceByIndex(ctx, "basic", "greetings", 5)
	require.NoError(t, err)
	assert.Nil(t, missing)

	withAudio, err := db.GetSentenceByIndex(ctx, "middle", "present", 0)
	require.NoError(t, err)
	require.NotNil(t, withAudio)
	assert.Equal(t, []string{"present", "first_person"}, withAudio.Grammar)
	assert.True(t, withAudio.HasAudio())
	assert.True(t, withAudio.AudioGenerated)

	categories, err := db.ListCategories(ctx, "basic")
	require.NoError(t, err)
	assert.Equal(t, []string{"greetings", "restaurant"}, categories)
}

func TestPostgresSessionUpsert(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	db, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	sess, err := db.GetSession(ctx, 42)
	require.NoError(t, err)
	assert.Nil(t, sess)

	require.NoError(t, db.UpsertSession(ctx, &models.Session{
		UserID: 42, Folder: "basic", Category: "greetings", CurrentIndex: 1,
		LanguageTo: "ua", LessonActive: true, LastMessageID: 7,
		LastFolder: "basic", LastCategory: "greetings",
	}))

	// second upsert overwrites the whole row
	require.NoError(t, db.UpsertSession(ctx, &models.Session{
		UserID: 42, Folder: "middle", Category: "present", CurrentIndex: 0,
		LanguageTo: "ua", LessonActive: true, LastMessageID: 9, LastHasAudio: true,
		LastFolder: "middle", LastCategory: "present",
	}))

	sess, err = db.GetSession(ctx, 42)
	require.NoError(t, err)
	require.NotNil(t, sess)
	assert.Equal(t, "middle", sess.Folder)
	assert.Equal(t, "present", sess.Category)
	assert.Equal(t, 9, sess.LastMessageID)
	assert.True(t, sess.LastHasAudio)
	assert.WithinDuration(t, time.Now().UTC(), sess.UpdatedAt, time.Minute)
}

func TestPostgresRecordReview(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	db, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	sentenceID := uuid.New()
	require.NoError(t, db.RecordReview(ctx, 42, sentenceID, "basic", "greetings", models.StatusLearned))
	require.NoError(t, db.RecordReview(ctx, 42, sentenceID, "basic", "greetings", models.StatusLearned))

	var reviewCount int
	err := db.pool.QueryRow(ctx,
		`SELECT review_count FROM mastery WHERE user_id = $1 AND sentence_id = $2`,
		int64(42), sentenceID).Scan(&reviewCount)
	require.NoError(t, err)
	assert.Equal(t, 2, reviewCount)

	count, err := db.CountMastered(ctx, 42, "basic", "greetings", []string{models.StatusLearned, models.StatusKnown})
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	count, err = db.CountMastered(ctx, 42, "basic", "greetings", []string{models.StatusKnown})
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestPostgresFavourites(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	db, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	first := uuid.New()
	require.NoError(t, db.UpsertFavourite(ctx, &models.Favourite{
		UserID: 42, SentenceID: first, Folder: "basic", Category: "greetings",
		BG: "Здравей!", Eng: "Hello!", Ru: "Привет!", Ua: "Привіт!",
		AddedAt: time.Now().UTC().Add(-time.Hour),
	}))
	require.NoError(t, db.UpsertFavourite(ctx, &models.Favourite{
		UserID: 42, SentenceID: uuid.New(), Folder: "basic", Category: "greetings",
		BG: "Чао!", Eng: "Bye!", Ru: "Пока!", Ua: "Бувай!",
	}))

	// duplicate save keeps a single row
	require.NoError(t, db.UpsertFavourite(ctx, &models.Favourite{
		UserID: 42, SentenceID: first, Folder: "basic", Category: "greetings",
		BG: "Здравей!", Eng: "Hello there!", Ru: "Привет!", Ua: "Привіт!",
		AddedAt: time.Now().UTC().Add(-time.Hour),
	}))

	count, err := db.CountFavourites(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	favs, err := db.ListFavourites(ctx, 42)
	require.NoError(t, err)
	require.Len(t, favs, 2)
	assert.Equal(t, "Чао!", favs[0].BG, "most recent first")
	// conflict refreshes the cached text
	assert.Equal(t, "Hello there!", favs[1].Eng)
}
