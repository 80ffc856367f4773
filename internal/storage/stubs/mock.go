package stubs

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"bgbot/internal/models"
)

// MockDB is an in-memory implementation of the Storage interface for testing
// and for USE_MOCK_DB mode
type MockDB struct {
	mu         sync.RWMutex
	sentences  map[string][]models.Sentence // keyed by folder + "/" + category, ordered by position
	sessions   map[int64]*models.Session
	mastery    map[int64]map[uuid.UUID]*models.MasteryRecord
	favourites map[int64]map[uuid.UUID]*models.Favourite
}

// NewMockDB creates a new mock database
func NewMockDB() *MockDB {
	return &MockDB{
		sentences:  make(map[string][]models.Sentence),
		sessions:   make(map[int64]*models.Session),
		mastery:    make(map[int64]map[uuid.UUID]*models.MasteryRecord),
		favourites: make(map[int64]map[uuid.UUID]*models.Favourite),
	}
}

func key(folder, category string) string {
	return folder + "/" + category
}

// Initialize seeds a small default sentence set so the bot is usable in
// mock mode
func (m *MockDB) Initialize(ctx context.Context) error {
	seed := []models.Sentence{
		{Folder: "basic", Category: "greetings", BG: "Здравей!", Eng: "Hello!", Ru: "Привет!", Ua: "Привіт!", Source: "seed"},
		{Folder: "basic", Category: "greetings", BG: "Добро утро!", Eng: "Good morning!", Ru: "Доброе утро!", Ua: "Доброго ранку!", Source: "seed"},
		{Folder: "basic", Category: "greetings", BG: "Как си?", Eng: "How are you?", Ru: "Как дела?", Ua: "Як справи?", Source: "seed"},
		{Folder: "basic", Category: "restaurant", BG: "Сметката, моля.", Eng: "The bill, please.", Ru: "Счёт, пожалуйста.", Ua: "Рахунок, будь ласка.", Source: "seed"},
		{
			Folder: "middle", Category: "present", BG: "Чета книга.", Eng: "I am reading a book.",
			Ru: "Я читаю книгу.", Ua: "Я читаю книгу.", Source: "seed",
			Grammar: []string{"present", "first_person"}, Explanation: "Present tense, first person singular.",
		},
		{
			Folder: "middle-slavic", Category: "false-friends", BG: "Майка ми готви.", Eng: "My mother is cooking.",
			Ru: "Моя мама готовит.", Ua: "Моя мама готує.", Source: "seed",
			Tag: "false-friend", FalseFriend: "\"майка\" means mother, not a shirt (ru: майка).",
			Comparison: "Common Slavic root, diverged meaning in Russian.",
		},
	}

	for _, s := range seed {
		if err := m.CreateSentence(ctx, &s); err != nil {
			return err
		}
	}
	return nil
}

// CreateSentence appends a sentence to its category, assigning the next
// position when unset
func (m *MockDB) CreateSentence(ctx context.Context, s *models.Sentence) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	k := key(s.Folder, s.Category)
	if s.Position == 0 && len(m.sentences[k]) > 0 {
		s.Position = len(m.sentences[k])
	}
	m.sentences[k] = append(m.sentences[k], *s)
	return nil
}

// GetSentenceByIndex returns the sentence at a position, or nil when absent
func (m *MockDB) GetSentenceByIndex(ctx context.Context, folder, category string, index int) (*models.Sentence, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	list := m.sentences[key(folder, category)]
	if index < 0 || index >= len(list) {
		return nil, nil
	}
	s := list[index]
	return &s, nil
}

// CountSentences returns the number of sentences in (folder, category)
func (m *MockDB) CountSentences(ctx context.Context, folder, category string) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sentences[key(folder, category)]), nil
}

// ListCategories returns the category names within a folder, sorted
func (m *MockDB) ListCategories(ctx context.Context, folder string) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var categories []string
	prefix := folder + "/"
	for k := range m.sentences {
		if len(k) > len(prefix) && k[:len(prefix)] == prefix {
			categories = append(categories, k[len(prefix):])
		}
	}
	sort.Strings(categories)
	return categories, nil
}

// GetSession returns a copy of the stored session, or nil when absent
func (m *MockDB) GetSession(ctx context.Context, userID int64) (*models.Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s, ok := m.sessions[userID]
	if !ok {
		return nil, nil
	}
	copied := *s
	return &copied, nil
}

// UpsertSession stores the whole session
func (m *MockDB) UpsertSession(ctx context.Context, s *models.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	s.UpdatedAt = time.Now().UTC()
	copied := *s
	m.sessions[s.UserID] = &copied
	return nil
}

// RecordReview upserts the mastery record and increments its review count
func (m *MockDB) RecordReview(ctx context.Context, userID int64, sentenceID uuid.UUID, folder, category, status string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	records, ok := m.mastery[userID]
	if !ok {
		records = make(map[uuid.UUID]*models.MasteryRecord)
		m.mastery[userID] = records
	}

	now := time.Now().UTC()
	if r, ok := records[sentenceID]; ok {
		r.Status = status
		r.ReviewCount++
		r.LastReviewedAt = now
		r.MasteredAt = now
		return nil
	}
	records[sentenceID] = &models.MasteryRecord{
		UserID:         userID,
		SentenceID:     sentenceID,
		Folder:         folder,
		Category:       category,
		Status:         status,
		ReviewCount:    1,
		LastReviewedAt: now,
		MasteredAt:     now,
	}
	return nil
}

// CountMastered counts the user's records in (folder, category) matching
// any of the statuses
func (m *MockDB) CountMastered(ctx context.Context, userID int64, folder, category string, statuses []string) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	count := 0
	for _, r := range m.mastery[userID] {
		if r.Folder != folder || r.Category != category {
			continue
		}
		for _, s := range statuses {
			if r.Status == s {
				count++
				break
			}
		}
	}
	return count, nil
}

// GetMasteryRecord exposes a record for test assertions; not part of the
// Storage interface
func (m *MockDB) GetMasteryRecord(userID int64, sentenceID uuid.UUID) *models.MasteryRecord {
	m.mu.RLock()
	defer m.mu.RUnlock()

	r, ok := m.mastery[userID][sentenceID]
	if !ok {
		return nil
	}
	copied := *r
	return &copied
}

// UpsertFavourite saves a favourite keyed by (user, sentence)
func (m *MockDB) UpsertFavourite(ctx context.Context, f *models.Favourite) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	favs, ok := m.favourites[f.UserID]
	if !ok {
		favs = make(map[uuid.UUID]*models.Favourite)
		m.favourites[f.UserID] = favs
	}
	if f.AddedAt.IsZero() {
		f.AddedAt = time.Now().UTC()
	}
	copied := *f
	favs[f.SentenceID] = &copied
	return nil
}

// ListFavourites returns the user's favourites, most recent first
func (m *MockDB) ListFavourites(ctx context.Context, userID int64) ([]models.Favourite, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var favourites []models.Favourite
	for _, f := range m.favourites[userID] {
		favourites = append(favourites, *f)
	}
	sort.Slice(favourites, func(i, j int) bool {
		return favourites[i].AddedAt.After(favourites[j].AddedAt)
	})
	return favourites, nil
}

// CountFavourites returns how many favourites the user has saved
func (m *MockDB) CountFavourites(ctx context.Context, userID int64) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.favourites[userID]), nil
}

// Close does nothing for mock DB
func (m *MockDB) Close() error {
	return nil
}
