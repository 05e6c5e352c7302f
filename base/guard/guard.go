// Package guard provides a non-reentrant execution guard keyed by an
// arbitrary string. A purchase path enters the guard before mutating any
// state and leaves it on exit, so a nested call observing half-applied
// state fails instead of double-minting.
package guard

import (
	"errors"
	"sync"
)

// ErrReentrantCall is returned when a key is entered while already held.
var ErrReentrantCall = errors.New("reentrant call")

type Guard struct {
	mu      sync.Mutex
	holding map[string]bool
}

func New() *Guard {
	return &Guard{
		holding: map[string]bool{},
	}
}

// Enter marks key as currently executing. It fails if the key is already
// held. Callers must pair every successful Enter with a deferred Exit.
func (g *Guard) Enter(key string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.holding[key] {
		return ErrReentrantCall
	}
	g.holding[key] = true
	return nil
}

// Exit releases key. Exiting a key that is not held is a no-op.
func (g *Guard) Exit(key string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.holding, key)
}

// Held reports whether key is currently executing.
func (g *Guard) Held(key string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.holding[key]
}
