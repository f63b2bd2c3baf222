package dialog

import "sync"

// LockRegistry serializes concurrent media uploads per user. Telegram
// delivers albums as separate updates that can race on the session's media
// list. Entries are reference counted and removed once the last holder
// releases, so the registry does not grow with the user base.
type LockRegistry struct {
	mu    sync.Mutex
	locks map[int64]*userLock
}

type userLock struct {
	mu   sync.Mutex
	refs int
}

func NewLockRegistry() *LockRegistry {
	return &LockRegistry{locks: make(map[int64]*userLock)}
}

// Acquire blocks until the user's lock is held and returns the release
// function. Release must be called exactly once.
func (r *LockRegistry) Acquire(userID int64) func() {
	r.mu.Lock()
	l, ok := r.locks[userID]
	if !ok {
		l = &userLock{}
		r.locks[userID] = l
	}
	l.refs++
	r.mu.Unlock()

	l.mu.Lock()

	var once sync.Once
	return func() {
		once.Do(func() {
			l.mu.Unlock()
			r.mu.Lock()
			l.refs--
			if l.refs == 0 {
				delete(r.locks, userID)
			}
			r.mu.Unlock()
		})
	}
}

// Len reports how many users currently have lock entries.
func (r *LockRegistry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.locks)
}
