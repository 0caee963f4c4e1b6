package taxonomy

import (
	"context"
	"sync"

	"github.com/pkg/errors"

	"github.com/betbot/betsuggest/internal/domain"
	"github.com/betbot/betsuggest/pkg/logger"
)

// Loader fetches the full market-type catalog for a language.
type Loader interface {
	LineTypes(ctx context.Context, lang int) ([]domain.LineType, error)
}

// Cache holds the market-type taxonomy for the lifetime of the process.
// It is loaded exactly once at startup, before the server accepts traffic,
// and is read-only afterwards; a restart is required to pick up upstream
// changes. Before the first successful Load, Get returns an empty set.
type Cache struct {
	loader Loader

	mu     sync.RWMutex
	types  []domain.LineType
	loaded bool
}

func NewCache(loader Loader) *Cache {
	return &Cache{loader: loader}
}

// Load fetches the taxonomy and atomically replaces the cached set. Callers
// treat a returned error as fatal: the process must not start serving.
func (c *Cache) Load(ctx context.Context, lang int) error {
	types, err := c.loader.LineTypes(ctx, lang)
	if err != nil {
		return errors.Wrap(err, "load line types")
	}

	c.mu.Lock()
	c.types = types
	c.loaded = true
	c.mu.Unlock()

	logger.Infof("loaded %d line types (lang=%d)", len(types), lang)
	return nil
}

// Get returns the cached taxonomy. Never nil: before the first successful
// Load it returns an empty set.
func (c *Cache) Get() []domain.LineType {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.types == nil {
		return []domain.LineType{}
	}
	return c.types
}

// Loaded reports whether a successful Load has completed.
func (c *Cache) Loaded() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loaded
}
