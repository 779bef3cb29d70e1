package cache

import (
	"sync"
	"time"
)

type CachedRate struct {
	Rate      float64
	Timestamp time.Time
}

var (
	cachedRates   = make(map[string]CachedRate)
	cacheDuration = 10 * time.Minute
	mu            sync.Mutex
)

// GetCachedRate returns the cached rate, or false when missing or expired.
func GetCachedRate(key string) (float64, bool) {
	mu.Lock()
	defer mu.Unlock()

	rateData, ok := cachedRates[key]
	if !ok {
		return 0, false
	}

	if time.Since(rateData.Timestamp) > cacheDuration {
		return 0, false
	}

	return rateData.Rate, true
}

// SetCachedRate stores the rate under key with the current timestamp.
func SetCachedRate(key string, rate float64) {
	mu.Lock()
	defer mu.Unlock()

	cachedRates[key] = CachedRate{
		Rate:      rate,
		Timestamp: time.Now(),
	}
}
