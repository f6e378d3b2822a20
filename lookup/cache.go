package lookup

import (
	"context"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/mailpolicy/spf"
	"github.com/mailpolicy/spf/dns"
)

// Cache is a bounded in-memory cache of discovered records keyed by
// domain. Entries are stored in their binary encoding and decoded on
// retrieval, so callers may mutate returned records freely.
//
// The zero value is not usable; construct with NewCache. All methods
// are safe for concurrent use.
type Cache struct {
	mu      sync.Mutex
	ttl     time.Duration
	max     int
	entries map[string]cacheEntry
}

type cacheEntry struct {
	id        ulid.ULID
	txt       string
	authentic bool
	fetchedAt time.Time
	encoded   []byte
}

// DefaultCacheTTL is the entry lifetime used when NewCache is given a
// zero TTL.
const DefaultCacheTTL = 1 * time.Hour

// DefaultCacheSize is the entry limit used when NewCache is given a
// zero size.
const DefaultCacheSize = 1024

// NewCache creates a cache holding at most max entries, each valid for
// ttl after insertion. Zero values select the defaults.
func NewCache(ttl time.Duration, max int) *Cache {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	if max <= 0 {
		max = DefaultCacheSize
	}
	return &Cache{
		ttl:     ttl,
		max:     max,
		entries: make(map[string]cacheEntry),
	}
}

// Put stores a lookup result. The oldest entry is evicted when the
// cache is full.
func (c *Cache) Put(res *Result) error {
	encoded, err := res.Record.MarshalMsg(nil)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[res.Domain]; !exists && len(c.entries) >= c.max {
		c.evictOldest()
	}

	c.entries[res.Domain] = cacheEntry{
		id:        res.ID,
		txt:       res.TXT,
		authentic: res.Authentic,
		fetchedAt: res.FetchedAt,
		encoded:   encoded,
	}
	return nil
}

// Get returns the cached result for domain, or false when absent or
// expired.
func (c *Cache) Get(domain string) (*Result, bool) {
	c.mu.Lock()
	entry, ok := c.entries[domain]
	if ok && time.Since(entry.fetchedAt) > c.ttl {
		delete(c.entries, domain)
		ok = false
	}
	c.mu.Unlock()
	if !ok {
		return nil, false
	}

	record := &spf.Record{}
	if _, err := record.UnmarshalMsg(entry.encoded); err != nil {
		// A corrupt entry is treated as a miss.
		c.mu.Lock()
		delete(c.entries, domain)
		c.mu.Unlock()
		return nil, false
	}

	return &Result{
		ID:        entry.id,
		Domain:    domain,
		TXT:       entry.txt,
		Record:    record,
		Authentic: entry.authentic,
		FetchedAt: entry.fetchedAt,
	}, true
}

// Len returns the number of entries currently cached, including any
// that have expired but not yet been evicted.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// evictOldest removes the entry with the earliest fetch time. Callers
// must hold c.mu.
func (c *Cache) evictOldest() {
	var oldest string
	var oldestAt time.Time
	for domain, entry := range c.entries {
		if oldest == "" || entry.fetchedAt.Before(oldestAt) {
			oldest = domain
			oldestAt = entry.fetchedAt
		}
	}
	if oldest != "" {
		delete(c.entries, oldest)
	}
}

// Resolve returns the cached result for domain, performing a lookup
// and caching the outcome on a miss.
func (c *Cache) Resolve(ctx context.Context, resolver dns.Resolver, domain string, cfg Config) (*Result, error) {
	if res, ok := c.Get(domain); ok {
		return res, nil
	}

	res, err := LookupWith(ctx, resolver, domain, cfg)
	if err != nil {
		return nil, err
	}
	if err := c.Put(res); err != nil {
		return nil, err
	}
	return res, nil
}
