// Package cache provides the in-memory result cache for pipeline runs.
// It uses patrickmn/go-cache for TTL-based expiry; keys are content hashes
// of the input catalogs plus the pipeline configuration, so a cache entry
// can never outlive a change to either.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/pricelens/pricelens/pkg/catalogs"
)

// Cache wraps go-cache for pipeline results.
type Cache struct {
	store *gocache.Cache
}

// New creates a cache with the given TTL and cleanup interval.
func New(defaultTTL, cleanupInterval time.Duration) *Cache {
	return &Cache{
		store: gocache.New(defaultTTL, cleanupInterval),
	}
}

// Get retrieves a value from the cache.
func (c *Cache) Get(key string) (any, bool) {
	return c.store.Get(key)
}

// Set stores a value in the cache with the default TTL.
func (c *Cache) Set(key string, value any) {
	c.store.Set(key, value, gocache.DefaultExpiration)
}

// Delete removes a value from the cache.
func (c *Cache) Delete(key string) {
	c.store.Delete(key)
}

// Clear removes all items from the cache.
func (c *Cache) Clear() {
	c.store.Flush()
}

// ItemCount returns the number of items in the cache.
func (c *Cache) ItemCount() int {
	return c.store.ItemCount()
}

// Key builds a cache key from the two input catalogs and the pipeline
// configuration fingerprint. Identical inputs and configuration hash to the
// same key regardless of when the run happens.
func Key(c1, c2 *catalogs.Catalog, config string) string {
	h := sha256.New()
	writeCatalog(h, c1)
	writeCatalog(h, c2)
	h.Write([]byte(config))
	return hex.EncodeToString(h.Sum(nil))
}

func writeCatalog(h interface{ Write(p []byte) (int, error) }, c *catalogs.Catalog) {
	h.Write([]byte(c.Source()))
	for _, r := range c.Records() {
		h.Write([]byte(r.VendorID))
		h.Write([]byte{0})
		h.Write([]byte(r.VendorName))
		h.Write([]byte{0})
		h.Write([]byte(r.ProductID))
		h.Write([]byte{0})
		h.Write([]byte(r.ProductName))
		h.Write([]byte{0})
		if r.HasPrice() {
			h.Write([]byte(strconv.FormatFloat(*r.Price, 'g', -1, 64)))
		}
		h.Write([]byte{'\n'})
	}
}
