// Package catalog loads the career catalog from its static source.
package catalog

import (
	"context"
	"sync"

	"skillpath/internal/domain/career"
)

type Source interface {
	Load(ctx context.Context) (career.Catalog, error)
}

// Cached serves a catalog loaded once at construction. Load hands out deep
// copies of the records so callers cannot alter the shared value.
type Cached struct {
	once    sync.Once
	src     Source
	catalog career.Catalog
	err     error
}

func NewCached(ctx context.Context, src Source) (*Cached, error) {
	c := &Cached{src: src}
	if err := c.init(ctx); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Cached) init(ctx context.Context) error {
	c.once.Do(func() {
		c.catalog, c.err = c.src.Load(ctx)
	})
	return c.err
}

func (c *Cached) Load(ctx context.Context) (career.Catalog, error) {
	if err := c.init(ctx); err != nil {
		return career.Catalog{}, err
	}
	records := make([]career.Record, len(c.catalog.Records))
	for i, r := range c.catalog.Records {
		records[i] = r.Clone()
	}
	return career.Catalog{Version: c.catalog.Version, Records: records}, nil
}
