package ratelimit

import (
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestLimiter builds a limiter whose clock only moves when the test advances it
func newTestLimiter(t *testing.T, config *Config) (*Limiter, *time.Time) {
	t.Helper()
	clock := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	limiter := NewLimiter(config)
	limiter.now = func() time.Time { return clock }
	t.Cleanup(limiter.Stop)
	return limiter, &clock
}

func TestLimiter_Allow(t *testing.T) {
	limiter, _ := newTestLimiter(t, &Config{
		Enabled:       true,
		DefaultLimit:  10,
		DefaultWindow: time.Minute,
	})

	for i := 0; i < 10; i++ {
		allowed, info := limiter.Allow("127.0.0.1", "/topics", "GET")
		require.True(t, allowed, "request %d", i+1)
		assert.Equal(t, 10, info.Limit)
		assert.Equal(t, 9-i, info.Remaining)
	}

	allowed, info := limiter.Allow("127.0.0.1", "/topics", "GET")
	assert.False(t, allowed)
	assert.Equal(t, 0, info.Remaining)
	assert.Greater(t, info.RetryAfter, time.Duration(0))
	assert.True(t, info.ResetTime.After(limiter.now()))
}

func TestLimiter_Refill(t *testing.T) {
	limiter, clock := newTestLimiter(t, &Config{
		Enabled:       true,
		DefaultLimit:  60,
		DefaultWindow: time.Minute,
	})

	for i := 0; i < 60; i++ {
		allowed, _ := limiter.Allow("127.0.0.1", "/topics", "GET")
		require.True(t, allowed)
	}
	allowed, _ := limiter.Allow("127.0.0.1", "/topics", "GET")
	require.False(t, allowed)

	*clock = clock.Add(1100 * time.Millisecond)

	allowed, _ = limiter.Allow("127.0.0.1", "/topics", "GET")
	assert.True(t, allowed)
	allowed, _ = limiter.Allow("127.0.0.1", "/topics", "GET")
	assert.False(t, allowed)
}

func TestLimiter_DeniedRequestsDoNotConsumeTokens(t *testing.T) {
	limiter, clock := newTestLimiter(t, &Config{
		Enabled:       true,
		DefaultLimit:  1,
		DefaultWindow: time.Second,
	})

	allowed, _ := limiter.Allow("127.0.0.1", "/topics", "GET")
	require.True(t, allowed)
	for i := 0; i < 5; i++ {
		allowed, _ = limiter.Allow("127.0.0.1", "/topics", "GET")
		require.False(t, allowed)
	}

	*clock = clock.Add(time.Second)
	allowed, _ = limiter.Allow("127.0.0.1", "/topics", "GET")
	assert.True(t, allowed)
}

func TestLimiter_Whitelist(t *testing.T) {
	limiter, _ := newTestLimiter(t, &Config{
		Enabled:       true,
		DefaultLimit:  1,
		DefaultWindow: time.Minute,
		Whitelist:     map[string]bool{"127.0.0.1": true},
	})

	for i := 0; i < 100; i++ {
		allowed, info := limiter.Allow("127.0.0.1", "/topics", "GET")
		require.True(t, allowed)
		assert.Equal(t, 0, info.Limit)
	}
}

func TestLimiter_Blacklist(t *testing.T) {
	limiter, _ := newTestLimiter(t, &Config{
		Enabled:       true,
		DefaultLimit:  1000,
		DefaultWindow: time.Minute,
		Blacklist:     map[string]bool{"192.168.1.1": true},
	})

	allowed, _ := limiter.Allow("192.168.1.1", "/topics", "GET")
	assert.False(t, allowed)
}

func TestLimiter_Disabled(t *testing.T) {
	limiter, _ := newTestLimiter(t, &Config{Enabled: false})

	for i := 0; i < 100; i++ {
		allowed, info := limiter.Allow("127.0.0.1", "/topics", "GET")
		require.True(t, allowed)
		assert.Equal(t, 0, info.Limit)
	}
}

func TestLimiter_HealthUnlimited(t *testing.T) {
	limiter, _ := newTestLimiter(t, &Config{
		Enabled:       true,
		DefaultLimit:  1,
		DefaultWindow: time.Minute,
	})

	for i := 0; i < 20; i++ {
		allowed, _ := limiter.Allow("127.0.0.1", "/health", "GET")
		require.True(t, allowed)
	}
}

func TestLimiter_EndpointSpecific(t *testing.T) {
	limiter, _ := newTestLimiter(t, &Config{
		Enabled:       true,
		DefaultLimit:  1000,
		DefaultWindow: time.Minute,
		EndpointConfigs: []EndpointConfig{
			{Path: "/resume/improve", Method: "POST", Limit: 5, Window: time.Hour, Burst: 5},
		},
	})

	for i := 0; i < 5; i++ {
		allowed, info := limiter.Allow("127.0.0.1", "/resume/improve", "POST")
		require.True(t, allowed, "request %d", i+1)
		assert.Equal(t, 5, info.Limit)
	}

	allowed, info := limiter.Allow("127.0.0.1", "/resume/improve", "POST")
	assert.False(t, allowed)
	assert.Equal(t, 5, info.Limit)

	allowed, info = limiter.Allow("127.0.0.1", "/topics", "GET")
	assert.True(t, allowed)
	assert.Equal(t, 1000, info.Limit)
}

func TestLimiter_PrefixRuleSharesBucketAcrossTopics(t *testing.T) {
	limiter, _ := newTestLimiter(t, &Config{
		Enabled:       true,
		DefaultLimit:  1000,
		DefaultWindow: time.Minute,
		EndpointConfigs: []EndpointConfig{
			{Path: "/insights/", Method: "GET", Limit: 2, Window: time.Minute, Burst: 2},
		},
	})

	allowed, _ := limiter.Allow("127.0.0.1", "/insights/salary", "GET")
	require.True(t, allowed)
	allowed, _ = limiter.Allow("127.0.0.1", "/insights/job-market", "GET")
	require.True(t, allowed)
	allowed, _ = limiter.Allow("127.0.0.1", "/insights/skill-demand", "GET")
	assert.False(t, allowed)

	allowed, _ = limiter.Allow("10.0.0.2", "/insights/salary", "GET")
	assert.True(t, allowed, "other clients keep their own bucket")
}

func TestLimiter_Burst(t *testing.T) {
	limiter, _ := newTestLimiter(t, &Config{
		Enabled:       true,
		DefaultLimit:  10,
		DefaultWindow: time.Minute,
		EndpointConfigs: []EndpointConfig{
			{Path: "/dashboard/industry-pulse", Method: "GET", Limit: 10, Window: time.Minute, Burst: 5},
		},
	})

	for i := 0; i < 5; i++ {
		allowed, _ := limiter.Allow("127.0.0.1", "/dashboard/industry-pulse", "GET")
		require.True(t, allowed, "burst request %d", i+1)
	}
	allowed, _ := limiter.Allow("127.0.0.1", "/dashboard/industry-pulse", "GET")
	assert.False(t, allowed)
}

func TestLimiter_Concurrent(t *testing.T) {
	limiter, _ := newTestLimiter(t, &Config{
		Enabled:       true,
		DefaultLimit:  100,
		DefaultWindow: time.Minute,
	})

	var wg sync.WaitGroup
	var allowedCount atomic.Int64
	for i := 0; i < 200; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if allowed, _ := limiter.Allow("127.0.0.1", "/topics", "GET"); allowed {
				allowedCount.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(100), allowedCount.Load())
}

func TestLimiter_EvictIdle(t *testing.T) {
	limiter, clock := newTestLimiter(t, &Config{
		Enabled:       true,
		DefaultLimit:  10,
		DefaultWindow: time.Minute,
		IdleTimeout:   time.Minute,
	})

	for i := 0; i < 10; i++ {
		allowed, _ := limiter.Allow(fmt.Sprintf("127.0.0.%d", i+1), "/topics", "GET")
		require.True(t, allowed)
	}

	*clock = clock.Add(45 * time.Second)
	for i := 0; i < 5; i++ {
		limiter.Allow(fmt.Sprintf("127.0.0.%d", i+1), "/topics", "GET")
	}

	*clock = clock.Add(30 * time.Second)
	limiter.evictIdle()

	limiter.mu.Lock()
	defer limiter.mu.Unlock()
	assert.Len(t, limiter.buckets, 5)
}

func TestNewLimiter_NilConfig(t *testing.T) {
	limiter := NewLimiter(nil)
	defer limiter.Stop()

	allowed, info := limiter.Allow("127.0.0.1", "/topics", "GET")
	assert.True(t, allowed)
	assert.Equal(t, 120, info.Limit)
}

func TestLimiter_StopIdempotent(t *testing.T) {
	limiter := NewLimiter(&Config{Enabled: true, DefaultLimit: 1, DefaultWindow: time.Second, CleanupInterval: time.Millisecond})
	limiter.Stop()
	assert.NotPanics(t, limiter.Stop)
}

func TestMatchEndpoint(t *testing.T) {
	configs := []EndpointConfig{
		{Path: "/insights/", Method: "GET", Limit: 30},
		{Path: "/insights/salary", Method: "GET", Limit: 3},
		{Path: "/resume/improve", Method: "POST", Limit: 20},
	}

	tests := []struct {
		name      string
		path      string
		method    string
		wantLimit int
		wantNil   bool
	}{
		{"health unlimited", "/health", "GET", 0, false},
		{"exact beats prefix", "/insights/salary", "GET", 3, false},
		{"prefix match", "/insights/job-market", "GET", 30, false},
		{"method mismatch", "/resume/improve", "GET", 0, true},
		{"no match", "/topics", "GET", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MatchEndpoint(tt.path, tt.method, configs)
			if tt.wantNil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, tt.wantLimit, got.Limit)
		})
	}
}

func TestParseIPList(t *testing.T) {
	got := ParseIPList([]string{"10.0.0.1, 10.0.0.2", "", " 10.0.0.3 "})
	assert.Equal(t, map[string]bool{"10.0.0.1": true, "10.0.0.2": true, "10.0.0.3": true}, got)
	assert.Empty(t, ParseIPList(nil))
}
