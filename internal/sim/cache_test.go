package sim

import (
	"testing"

	"rentorbuy/internal/model"
)

func TestResultCacheRoundTrip(t *testing.T) {
	cache := NewResultCache()
	cfg := model.SimulationConfig{
		DurationYears:              30,
		PropertyPrice:              500000,
		DownPaymentPct:             20,
		MortgageRateAnnual:         4.5,
		PropertyAppreciationAnnual: 3.0,
		EquityGrowthAnnual:         7.0,
		MonthlyRent:                2000,
		RentInflationAnnual:        3.0,
	}
	key := CacheKey(cfg)

	if _, ok := cache.Get(key); ok {
		t.Fatal("empty cache returned a hit")
	}

	res := &Result{FinalNetBuy: 1}
	cache.Set(key, res)

	got, ok := cache.Get(key)
	if !ok {
		t.Fatal("expected a hit after Set")
	}
	if got != res {
		t.Error("cache returned a different result")
	}

	cache.Clear()
	if _, ok := cache.Get(key); ok {
		t.Error("cache still has entries after Clear")
	}
}

func TestResultCacheNilSafe(t *testing.T) {
	var cache *ResultCache

	if _, ok := cache.Get("k"); ok {
		t.Error("nil cache returned a hit")
	}
	cache.Set("k", &Result{}) // must not panic
	cache.Clear()             // must not panic
}

func TestCacheKeyDistinguishesConfigs(t *testing.T) {
	a := model.SimulationConfig{DurationYears: 30, PropertyPrice: 500000, DownPaymentPct: 20, MonthlyRent: 2000}
	b := a
	b.MonthlyRent = 2001

	if CacheKey(a) != CacheKey(a) {
		t.Error("key is not deterministic")
	}
	if CacheKey(a) == CacheKey(b) {
		t.Error("different configs share a key")
	}
}
