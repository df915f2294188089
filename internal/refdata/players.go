// Package refdata holds the static reference sets used as ground truth for
// name resolution: the league's full player list (loaded once per process
// from the provider) and the fixed team table. Resolution never mutates
// either set, so concurrent reads after construction need no locking.
package refdata

import (
	"context"
	"sync"
)

// Player is one entry in the player reference set.
type Player struct {
	ID        int
	FullName  string
	FirstName string
	LastName  string
	IsActive  bool
}

// PlayerSource supplies the full player list. The production implementation
// fetches it from the stats provider; tests inject fixtures.
type PlayerSource interface {
	AllPlayers(ctx context.Context) ([]Player, error)
}

// Catalog caches the player reference set for the life of the process.
// The load happens at most once; a failed load is not cached, so the next
// call retries.
type Catalog struct {
	src PlayerSource

	mu      sync.Mutex
	players []Player
	loaded  bool
}

// NewCatalog returns a Catalog backed by src.
func NewCatalog(src PlayerSource) *Catalog {
	return &Catalog{src: src}
}

// Players returns the cached player list, loading it on first use.
func (c *Catalog) Players(ctx context.Context) ([]Player, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.loaded {
		return c.players, nil
	}
	players, err := c.src.AllPlayers(ctx)
	if err != nil {
		return nil, err
	}
	c.players = players
	c.loaded = true
	return c.players, nil
}
