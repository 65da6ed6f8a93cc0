package verse

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"
)

// ContentGenerator produces a fresh artifact for a key. Generator is the
// production implementation.
type ContentGenerator interface {
	Generate(ctx context.Context, slot Slot, lang Language, date string) (*Verse, error)
}

// Resolver yields the artifact for a key, generating it when absent.
type Resolver interface {
	Resolve(ctx context.Context, key Key) (*Verse, error)
}

// Cache enforces at-most-once generation per key against the persistent
// store. Every lookup re-reads the store, so the cache is durable and
// shared across instances. Within one process concurrent misses for the
// same key are collapsed through singleflight; across instances the store
// keeps last-write-wins semantics.
type Cache struct {
	repo  Repository
	gen   ContentGenerator
	group singleflight.Group
	log   zerolog.Logger
}

func NewCache(repo Repository, gen ContentGenerator, log zerolog.Logger) *Cache {
	return &Cache{
		repo: repo,
		gen:  gen,
		log:  log.With().Str("component", "verse_cache").Logger(),
	}
}

// Resolve returns the stored artifact for key, or generates and persists it
// on a miss. A generation failure leaves no partial write behind.
func (c *Cache) Resolve(ctx context.Context, key Key) (*Verse, error) {
	v, err := c.repo.GetByKey(ctx, key)
	if err == nil {
		return v, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	stored, err, _ := c.group.Do(key.DocID(), func() (interface{}, error) {
		// Re-check under the flight: a concurrent caller may have just
		// written this key.
		if v, err := c.repo.GetByKey(ctx, key); err == nil {
			return v, nil
		} else if !errors.Is(err, ErrNotFound) {
			return nil, err
		}

		c.log.Info().Str("key", key.DocID()).Msg("generating new verse")

		fresh, err := c.gen.Generate(ctx, key.Slot, key.Language, key.Date)
		if err != nil {
			return nil, err
		}
		return c.repo.Save(ctx, key, fresh)
	})
	if err != nil {
		return nil, err
	}
	return stored.(*Verse), nil
}
