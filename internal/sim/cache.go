package sim

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"sync"

	"rentorbuy/internal/model"
)

// ResultCache memoizes engine output keyed by the full configuration value.
// The engine is deterministic, so entries never go stale; the cache only
// exists to skip recomputation when the API sees repeated identical requests.
// Safe for concurrent readers.
type ResultCache struct {
	mu    sync.RWMutex
	store map[string]*Result
}

var globalCache *ResultCache
var cacheOnce sync.Once

// GetCache returns the global result cache, or nil when memoization is not
// enabled. Opt-in via ENABLE_RESULT_CACHE=true.
func GetCache() *ResultCache {
	if os.Getenv("ENABLE_RESULT_CACHE") != "true" {
		return nil
	}
	cacheOnce.Do(func() {
		globalCache = NewResultCache()
	})
	return globalCache
}

func NewResultCache() *ResultCache {
	return &ResultCache{store: make(map[string]*Result)}
}

// Get retrieves a cached result. Nil-safe so call sites don't need to guard
// on whether caching is enabled.
func (c *ResultCache) Get(key string) (*Result, bool) {
	if c == nil {
		return nil, false
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	res, ok := c.store[key]
	return res, ok
}

// Set stores a result.
func (c *ResultCache) Set(key string, res *Result) {
	if c == nil {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.store[key] = res
}

// Clear removes all entries.
func (c *ResultCache) Clear() {
	if c == nil {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.store = make(map[string]*Result)
}

// CacheKey derives a deterministic key from every configuration field.
func CacheKey(cfg model.SimulationConfig) string {
	keyStr := fmt.Sprintf("%d:%v:%v:%v:%v:%v:%v:%v",
		cfg.DurationYears,
		cfg.PropertyPrice,
		cfg.DownPaymentPct,
		cfg.MortgageRateAnnual,
		cfg.PropertyAppreciationAnnual,
		cfg.EquityGrowthAnnual,
		cfg.MonthlyRent,
		cfg.RentInflationAnnual,
	)

	hash := sha256.Sum256([]byte(keyStr))
	return hex.EncodeToString(hash[:])
}
