package content

import (
	"context"
	"fmt"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"bgbot/internal/models"
	"bgbot/internal/storage"
)

const (
	cacheTTL     = 5 * time.Minute
	cacheCleanup = 10 * time.Minute
)

// Repository resolves (folder, category, index) lookups against storage,
// with a small in-memory cache in front. Sentences are immutable, so a
// short TTL is only needed to pick up freshly loaded content.
type Repository struct {
	db    storage.Storage
	cache *gocache.Cache
}

// NewRepository creates a content repository backed by the given storage
func NewRepository(db storage.Storage) *Repository {
	return &Repository{
		db:    db,
		cache: gocache.New(cacheTTL, cacheCleanup),
	}
}

// SentenceAt returns the sentence at a zero-based index within
// (folder, category), or nil when the index is out of range
func (r *Repository) SentenceAt(ctx context.Context, folder, category string, index int) (*models.Sentence, error) {
	key := fmt.Sprintf("sentence:%s/%s/%d", folder, category, index)
	if cached, ok := r.cache.Get(key); ok {
		return cached.(*models.Sentence), nil
	}

	sentence, err := r.db.GetSentenceByIndex(ctx, folder, category, index)
	if err != nil {
		return nil, err
	}
	if sentence != nil {
		r.cache.SetDefault(key, sentence)
	}
	return sentence, nil
}

// Total returns the number of sentences in (folder, category)
func (r *Repository) Total(ctx context.Context, folder, category string) (int, error) {
	key := fmt.Sprintf("count:%s/%s", folder, category)
	if cached, ok := r.cache.Get(key); ok {
		return cached.(int), nil
	}

	count, err := r.db.CountSentences(ctx, folder, category)
	if err != nil {
		return 0, err
	}
	r.cache.SetDefault(key, count)
	return count, nil
}

// Categories returns the category ids available in a folder
func (r *Repository) Categories(ctx context.Context, folder string) ([]string, error) {
	key := "categories:" + folder
	if cached, ok := r.cache.Get(key); ok {
		return cached.([]string), nil
	}

	categories, err := r.db.ListCategories(ctx, folder)
	if err != nil {
		return nil, err
	}
	r.cache.SetDefault(key, categories)
	return categories, nil
}

// Flush drops all cached entries
func (r *Repository) Flush() {
	r.cache.Flush()
}
