package models

import (
	"time"

	"github.com/google/uuid"
)

// Mastery statuses for a (user, sentence) pair.
const (
	StatusNew      = "new"
	StatusLearning = "learning"
	StatusLearned  = "learned"
	StatusKnown    = "known"
)

// Sentence is an immutable flashcard unit. Identified by ID plus its
// (Folder, Category, Position) slot.
type Sentence struct {
	ID       uuid.UUID
	Folder   string
	Category string
	Position int

	BG     string
	Eng    string
	Ru     string
	Ua     string
	Source string

	Grammar     []string
	Explanation string
	Tag         string
	RuleEng     string
	RuleRu      string
	RuleUA      string
	Comparison  string
	FalseFriend string

	// Audio is the inline mp3 payload for the sentence, empty when none
	// was generated.
	Audio          []byte
	AudioGenerated bool
}

// HasAudio reports whether the sentence carries an audio attachment.
func (s *Sentence) HasAudio() bool {
	return s != nil && len(s.Audio) > 0
}

// Session is the per-user navigation/display state. The whole struct is
// persisted as a single atomic upsert.
type Session struct {
	UserID       int64
	Folder       string
	Category     string
	CurrentIndex int
	LanguageTo   string

	LessonActive        bool
	TranslationRevealed bool

	// LastMessageID is the edit/delete target for the next transition.
	// At most one live lesson message is tracked at a time.
	LastMessageID int
	// LastHasAudio records the attachment kind of the tracked message,
	// which decides edit-in-place vs. replace on the next transition.
	LastHasAudio bool

	// Sticky resume pointers, distinct from the active selectors.
	LastFolder   string
	LastCategory string

	UpdatedAt time.Time
}

// MasteryRecord tracks review status for one (user, sentence) pair.
type MasteryRecord struct {
	UserID         int64
	SentenceID     uuid.UUID
	Folder         string
	Category       string
	Status         string
	ReviewCount    int
	LastReviewedAt time.Time
	MasteredAt     time.Time
}

// Favourite is a user-saved sentence with cached text for quick listing.
type Favourite struct {
	UserID     int64
	SentenceID uuid.UUID
	Folder     string
	Category   string
	BG         string
	Eng        string
	Ru         string
	Ua         string
	Audio      []byte
	AddedAt    time.Time
}

// CategoryStat is a per-category mastery summary used by progress reports.
type CategoryStat struct {
	Folder        string
	Category      string
	Total         int
	MasteredCount int
}
