package owner

import (
	"strings"

	"github.com/ishandutta2007/Tops-of-Github/internal/model"
)

// Cache memoizes owner records by identity for the duration of a run.
// Identities compare case-insensitively, as account names do.
type Cache struct {
	entries map[string]model.Owner
}

// NewCache creates an empty Cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[string]model.Owner)}
}

// Get returns the cached record for identity.
func (c *Cache) Get(identity string) (model.Owner, bool) {
	o, ok := c.entries[cacheKey(identity)]
	return o, ok
}

// Put stores the record for identity, replacing any previous entry.
func (c *Cache) Put(identity string, o model.Owner) {
	c.entries[cacheKey(identity)] = o
}

// Len returns the number of cached identities.
func (c *Cache) Len() int {
	return len(c.entries)
}

func cacheKey(identity string) string {
	return strings.ToLower(strings.TrimSpace(identity))
}
