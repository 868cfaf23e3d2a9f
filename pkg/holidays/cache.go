package holidays

import "sync"

// Cached memoizes a Provider per queried year range. Holiday calendars for
// past and near-future years do not change, so entries never expire.
type Cached struct {
	provider Provider

	mu      sync.Mutex
	entries map[[2]int]Set
}

// NewCached wraps a Provider with an in-process memo.
func NewCached(provider Provider) *Cached {
	return &Cached{
		provider: provider,
		entries:  make(map[[2]int]Set),
	}
}

func (c *Cached) HolidaysForYears(from, to int) (Set, error) {
	key := [2]int{from, to}

	c.mu.Lock()
	cached, ok := c.entries[key]
	c.mu.Unlock()
	if ok {
		return cached, nil
	}

	set, err := c.provider.HolidaysForYears(from, to)
	if err != nil {
		// Failures are not cached: the next query retries the provider.
		return nil, err
	}

	c.mu.Lock()
	c.entries[key] = set
	c.mu.Unlock()
	return set, nil
}
