package service

import "sync"

// playerLocks serializes read-modify-write cycles on one player's session.
// Entries are dropped once nobody holds or waits for them.
type playerLocks struct {
	mu    sync.Mutex
	locks map[string]*playerLock
}

type playerLock struct {
	sync.Mutex
	refs int
}

func newPlayerLocks() *playerLocks {
	return &playerLocks{
		locks: make(map[string]*playerLock),
	}
}

// lock blocks until playerID is free and returns the matching unlock.
func (that *playerLocks) lock(playerID string) func() {
	that.mu.Lock()
	l, ok := that.locks[playerID]
	if !ok {
		l = &playerLock{}
		that.locks[playerID] = l
	}
	l.refs++
	that.mu.Unlock()

	l.Lock()

	return func() {
		l.Unlock()

		that.mu.Lock()
		defer that.mu.Unlock()

		l.refs--
		if l.refs == 0 {
			delete(that.locks, playerID)
		}
	}
}

func (that *playerLocks) size() int {
	that.mu.Lock()
	defer that.mu.Unlock()

	return len(that.locks)
}
