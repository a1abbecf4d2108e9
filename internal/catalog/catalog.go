// Package catalog owns the in-memory tour catalog. Review merges are the
// only writes; every reader gets a deep copy.
package catalog

import (
	"sync"

	"github.com/fairyhunter13/tour-catalog-service/internal/model"
	"github.com/fairyhunter13/tour-catalog-service/internal/reviews"
)

type Catalog struct {
	mu    sync.RWMutex
	tours []model.Tour
	index map[string]int
	// seqs holds the sequence of the batch that last wrote each tour.
	seqs         map[string]uint64
	lastSequence uint64
}

// New builds a catalog from tours, keeping their order. Later duplicates of
// a SKU are only reachable by position; use LoadFile to reject them.
func New(tours []model.Tour) *Catalog {
	c := &Catalog{
		tours: model.CloneTours(tours),
		index: make(map[string]int, len(tours)),
		seqs:  make(map[string]uint64, len(tours)),
	}
	for i, t := range c.tours {
		if _, ok := c.index[t.SKU]; !ok {
			c.index[t.SKU] = i
		}
	}
	return c
}

// Tours returns a snapshot of every tour in catalog order.
func (c *Catalog) Tours() []model.Tour {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := model.CloneTours(c.tours)
	if out == nil {
		out = []model.Tour{}
	}
	return out
}

func (c *Catalog) Get(sku string) (model.Tour, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	i, ok := c.index[sku]
	if !ok {
		return model.Tour{}, false
	}
	return c.tours[i].Clone(), true
}

func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.tours)
}

// LastSequence returns the highest sequence of any batch applied so far.
func (c *Catalog) LastSequence() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lastSequence
}

// ApplyReviews merges a review batch into the catalog and returns how many
// tours were updated. Ordering is tracked per tour: a tour already written
// by a batch with a higher or equal sequence keeps its values, while the
// rest of the batch still applies.
func (c *Catalog) ApplyReviews(b model.ReviewBatch) int {
	if b.Entries == nil {
		return 0
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	updated := 0
	for i, t := range c.tours {
		if b.Sequence <= c.seqs[t.SKU] {
			continue
		}
		merged, ok := reviews.MergeTour(t, b.Entries)
		if ok {
			c.tours[i] = merged
			c.seqs[t.SKU] = b.Sequence
			updated++
		}
	}
	c.lastSequence = max(c.lastSequence, b.Sequence)
	return updated
}
