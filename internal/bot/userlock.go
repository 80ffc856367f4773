package bot

import "sync"

// userLocks serializes lesson actions per user. A rapid double-tap on
// "Next" must apply as two sequential steps, never as an interleaved
// read-modify-write on the same session row.
type userLocks struct {
	mu    sync.Mutex
	locks map[int64]*sync.Mutex
}

func newUserLocks() *userLocks {
	return &userLocks{locks: make(map[int64]*sync.Mutex)}
}

// lock acquires the mutex for userID and returns its unlock func.
func (u *userLocks) lock(userID int64) func() {
	u.mu.Lock()
	m, ok := u.locks[userID]
	if !ok {
		m = &sync.Mutex{}
		u.locks[userID] = m
	}
	u.mu.Unlock()

	m.Lock()
	return m.Unlock
}
