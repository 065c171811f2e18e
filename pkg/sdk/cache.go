package sdk

import (
	"sync"
	"time"
)

// cacheEntry is one cached list page plus its bookkeeping.
type cacheEntry struct {
	page      UsersPage
	fetchedAt time.Time
}

// queryCache holds list pages keyed by canonical query parameters. The
// same user may appear under several keys (e.g. "all" and "active"), so
// optimistic mutations walk every entry.
//
// The generation counter orders fetches against mutations: a fetch
// started under an older generation is discarded on completion, so a
// stale pre-mutation page can never overwrite an optimistic write.
type queryCache struct {
	mu           sync.Mutex
	ttl          time.Duration
	entries      map[string]*cacheEntry
	generation   uint64
	revalidating map[string]bool
}

func newQueryCache(ttl time.Duration) *queryCache {
	return &queryCache{
		ttl:          ttl,
		entries:      make(map[string]*cacheEntry),
		revalidating: make(map[string]bool),
	}
}

// get returns the cached page for key, whether it exists, and whether
// it is stale (past TTL or explicitly invalidated).
func (c *queryCache) get(key string) (UsersPage, bool, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		return UsersPage{}, false, false
	}

	stale := entry.fetchedAt.IsZero() || time.Since(entry.fetchedAt) > c.ttl
	return copyPage(entry.page), true, stale
}

// currentGeneration is read before starting a fetch; the result is only
// stored if no mutation happened in between.
func (c *queryCache) currentGeneration() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.generation
}

// set stores a fetched page unless it was superseded by a mutation.
// Reports whether the page was stored.
func (c *queryCache) set(key string, page UsersPage, generation uint64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if generation != c.generation {
		return false
	}
	c.entries[key] = &cacheEntry{
		page:      copyPage(page),
		fetchedAt: time.Now(),
	}
	return true
}

// beginMutation starts one optimistic mutation: it snapshots every
// cached page containing the user, rewrites the user's status in those
// pages, and bumps the generation — all under a single lock hold, so no
// fetch result can land between the optimistic write and the
// supersession point. The returned snapshot is the rollback unit.
func (c *queryCache) beginMutation(userID, status string) map[string]UsersPage {
	c.mu.Lock()
	defer c.mu.Unlock()

	snapshot := make(map[string]UsersPage)
	for key, entry := range c.entries {
		for i, u := range entry.page.Items {
			if u.ID == userID {
				snapshot[key] = copyPage(entry.page)
				entry.page.Items[i].Status = status
				break
			}
		}
	}
	c.generation++
	return snapshot
}

// tryBeginRevalidate claims the revalidation slot for a key. Returns
// false while another revalidation of the same key is in flight.
func (c *queryCache) tryBeginRevalidate(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.revalidating[key] {
		return false
	}
	c.revalidating[key] = true
	return true
}

// endRevalidate releases the revalidation slot for a key.
func (c *queryCache) endRevalidate(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.revalidating, key)
}

// restore puts back the pre-mutation snapshot verbatim. Pages that were
// evicted or replaced since the snapshot are recreated as stale so the
// next read revalidates them.
func (c *queryCache) restore(snapshot map[string]UsersPage) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for key, page := range snapshot {
		entry, ok := c.entries[key]
		if !ok {
			c.entries[key] = &cacheEntry{page: copyPage(page)}
			continue
		}
		entry.page = copyPage(page)
	}
}

// invalidateAll marks every cached page stale, forcing a refetch on
// next access while still serving the cached data in the meantime.
func (c *queryCache) invalidateAll() {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, entry := range c.entries {
		entry.fetchedAt = time.Time{}
	}
}

// len reports the number of cached pages.
func (c *queryCache) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

func copyPage(p UsersPage) UsersPage {
	out := p
	out.Items = make([]User, len(p.Items))
	for i, u := range p.Items {
		out.Items[i] = u
		if u.Groups != nil {
			out.Items[i].Groups = make([]Group, len(u.Groups))
			copy(out.Items[i].Groups, u.Groups)
		}
	}
	return out
}
