package ratelimit

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boosterConfig() *Config {
	return &Config{
		Enabled:         true,
		DefaultLimit:    1000,
		DefaultWindow:   time.Minute,
		EndpointConfigs: DefaultEndpointConfigs(),
	}
}

func TestTokenBucket_BurstThenDeny(t *testing.T) {
	bucket := newTokenBucket(5, 1.0)

	for i := 0; i < 5; i++ {
		assert.True(t, bucket.allow(), "request %d should fit in the burst", i+1)
	}
	assert.False(t, bucket.allow())
}

func TestTokenBucket_Refills(t *testing.T) {
	bucket := newTokenBucket(2, 10.0) // fast refill keeps the test short

	bucket.allow()
	bucket.allow()
	require.False(t, bucket.allow())

	time.Sleep(150 * time.Millisecond)
	assert.True(t, bucket.allow())
}

func TestTokenBucket_StatusDoesNotConsume(t *testing.T) {
	bucket := newTokenBucket(5, 1.0)
	bucket.allow()

	remaining, resetTime := bucket.status()
	assert.Equal(t, 4, remaining)
	assert.True(t, resetTime.After(time.Now()))

	remaining, _ = bucket.status()
	assert.Equal(t, 4, remaining)
}

func TestMatchEndpoint_HealthIsUnlimited(t *testing.T) {
	config := MatchEndpoint("/api/health", "GET", DefaultEndpointConfigs())
	require.NotNil(t, config)
	assert.Equal(t, 0, config.Limit)
}

func TestMatchEndpoint_GeminiPrefixCoversBothRoutes(t *testing.T) {
	configs := DefaultEndpointConfigs()

	for _, path := range []string{"/api/gemini/refine", "/api/gemini/compile"} {
		config := MatchEndpoint(path, "POST", configs)
		require.NotNil(t, config, path)
		assert.Equal(t, 30, config.Limit)
		assert.Equal(t, 5, config.Burst)
	}
}

func TestMatchEndpoint_ExactBeforePrefix(t *testing.T) {
	configs := DefaultEndpointConfigs()

	config := MatchEndpoint("/api/resume/export/pdf", "POST", configs)
	require.NotNil(t, config)
	assert.Equal(t, 60, config.Limit)
	assert.Equal(t, 5, config.Burst)

	config = MatchEndpoint("/api/github/import", "POST", configs)
	require.NotNil(t, config)
	assert.Equal(t, 10, config.Burst)
}

func TestMatchEndpoint_UnmatchedFallsToDefault(t *testing.T) {
	configs := DefaultEndpointConfigs()

	assert.Nil(t, MatchEndpoint("/api/resume/score", "POST", configs))
	// Method must match too: a GET on the gemini prefix is not the POST tier.
	assert.Nil(t, MatchEndpoint("/api/gemini/refine", "GET", configs))
}

func TestLimiter_GeminiTierExhaustsAtBurst(t *testing.T) {
	limiter := NewLimiter(boosterConfig())
	defer limiter.Stop()

	for i := 0; i < 5; i++ {
		allowed, info := limiter.Allow("10.0.0.1", "/api/gemini/refine", "POST")
		require.True(t, allowed, "request %d should fit in the burst", i+1)
		assert.Equal(t, 30, info.Limit)
	}

	allowed, info := limiter.Allow("10.0.0.1", "/api/gemini/refine", "POST")
	assert.False(t, allowed)
	assert.Equal(t, 0, info.Remaining)
	assert.Greater(t, info.RetryAfter, time.Duration(0))
}

func TestLimiter_BucketsAreScopedPerClientAndEndpoint(t *testing.T) {
	limiter := NewLimiter(boosterConfig())
	defer limiter.Stop()

	for i := 0; i < 5; i++ {
		allowed, _ := limiter.Allow("10.0.0.1", "/api/gemini/refine", "POST")
		require.True(t, allowed)
	}
	allowed, _ := limiter.Allow("10.0.0.1", "/api/gemini/refine", "POST")
	require.False(t, allowed)

	// Another client still has a full bucket.
	allowed, _ = limiter.Allow("10.0.0.2", "/api/gemini/refine", "POST")
	assert.True(t, allowed)

	// The exhausted client can still hit other tiers.
	allowed, info := limiter.Allow("10.0.0.1", "/api/resume/export/pdf", "POST")
	assert.True(t, allowed)
	assert.Equal(t, 60, info.Limit)
}

func TestLimiter_HealthNeverLimited(t *testing.T) {
	config := boosterConfig()
	config.DefaultLimit = 1
	limiter := NewLimiter(config)
	defer limiter.Stop()

	for i := 0; i < 50; i++ {
		allowed, _ := limiter.Allow("10.0.0.1", "/api/health", "GET")
		require.True(t, allowed, "health request %d should bypass limiting", i+1)
	}
}

func TestLimiter_DefaultLimitForUnmatchedRoutes(t *testing.T) {
	config := boosterConfig()
	config.DefaultLimit = 3
	limiter := NewLimiter(config)
	defer limiter.Stop()

	for i := 0; i < 3; i++ {
		allowed, info := limiter.Allow("10.0.0.1", "/api/resume/score", "POST")
		require.True(t, allowed)
		assert.Equal(t, 3, info.Limit)
	}
	allowed, _ := limiter.Allow("10.0.0.1", "/api/resume/score", "POST")
	assert.False(t, allowed)
}

func TestLimiter_WhitelistBypassesTiers(t *testing.T) {
	config := boosterConfig()
	config.Whitelist = map[string]bool{"10.0.0.1": true}
	limiter := NewLimiter(config)
	defer limiter.Stop()

	for i := 0; i < 20; i++ {
		allowed, _ := limiter.Allow("10.0.0.1", "/api/gemini/refine", "POST")
		require.True(t, allowed)
	}
}

func TestLimiter_BlacklistAlwaysDenied(t *testing.T) {
	config := boosterConfig()
	config.Blacklist = map[string]bool{"10.0.0.9": true}
	limiter := NewLimiter(config)
	defer limiter.Stop()

	allowed, info := limiter.Allow("10.0.0.9", "/api/health", "GET")
	assert.False(t, allowed)
	assert.False(t, info.Allowed)
}

func TestLimiter_DisabledAllowsEverything(t *testing.T) {
	limiter := NewLimiter(&Config{Enabled: false})
	defer limiter.Stop()

	for i := 0; i < 20; i++ {
		allowed, _ := limiter.Allow("10.0.0.1", "/api/gemini/refine", "POST")
		require.True(t, allowed)
	}
}

func TestLimiter_ConcurrentRequestsRespectBurst(t *testing.T) {
	limiter := NewLimiter(boosterConfig())
	defer limiter.Stop()

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		allowed int
	)
	for i := 0; i < 40; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ok, _ := limiter.Allow("10.0.0.1", "/api/github/import", "POST")
			if ok {
				mu.Lock()
				allowed++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 10, allowed)
}

func TestNewLimiter_NilConfigUsesDefaults(t *testing.T) {
	limiter := NewLimiter(nil)
	defer limiter.Stop()

	allowed, info := limiter.Allow("10.0.0.1", "/api/resume/score", "POST")
	assert.True(t, allowed)
	assert.Equal(t, 1000, info.Limit)
}
