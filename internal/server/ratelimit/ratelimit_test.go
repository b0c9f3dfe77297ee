package ratelimit

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenBucketBurst(t *testing.T) {
	bucket := newTokenBucket(3, 0.001) // effectively no refill during the test

	for i := 0; i < 3; i++ {
		assert.True(t, bucket.allow(), "request %d within burst", i+1)
	}
	assert.False(t, bucket.allow(), "burst exhausted")
}

func TestLimiterAllowsWithinLimit(t *testing.T) {
	limiter := NewLimiter(&Config{
		Enabled:       true,
		DefaultLimit:  100,
		DefaultWindow: time.Minute,
		EndpointConfigs: []EndpointConfig{
			{Path: "/sessions", Method: "POST", Limit: 2, Window: time.Hour, Burst: 2},
		},
	})
	defer limiter.Stop()

	allowed, info := limiter.Allow("1.2.3.4", "/sessions", "POST")
	assert.True(t, allowed)
	assert.Equal(t, 2, info.Limit)

	allowed, _ = limiter.Allow("1.2.3.4", "/sessions", "POST")
	assert.True(t, allowed)

	allowed, info = limiter.Allow("1.2.3.4", "/sessions", "POST")
	assert.False(t, allowed)
	assert.Greater(t, info.RetryAfter, time.Duration(0))

	// A different client has its own bucket.
	allowed, _ = limiter.Allow("5.6.7.8", "/sessions", "POST")
	assert.True(t, allowed)
}

func TestLimiterDisabled(t *testing.T) {
	limiter := NewLimiter(&Config{Enabled: false})
	defer limiter.Stop()

	for i := 0; i < 100; i++ {
		allowed, _ := limiter.Allow("1.2.3.4", "/sessions", "POST")
		require.True(t, allowed)
	}
}

func TestLimiterUnlimitedEndpoint(t *testing.T) {
	limiter := NewLimiter(&Config{
		Enabled:         true,
		DefaultLimit:    1,
		DefaultWindow:   time.Hour,
		EndpointConfigs: DefaultEndpointConfigs(),
	})
	defer limiter.Stop()

	for i := 0; i < 50; i++ {
		allowed, _ := limiter.Allow("1.2.3.4", "/health", "GET")
		require.True(t, allowed, "health endpoint is never limited")
	}
}

func TestMatchEndpoint(t *testing.T) {
	configs := DefaultEndpointConfigs()

	tests := []struct {
		path   string
		method string
		want   string // matched Path, "" for no match
	}{
		{"/health", "GET", "/health"},
		{"/sessions", "POST", "/sessions"},
		{"/sessions/abc/messages", "POST", "/sessions/"},
		{"/sessions/abc", "DELETE", "/sessions/"},
		{"/sessions/abc", "GET", ""},
		{"/unknown", "GET", ""},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s %s", tt.method, tt.path), func(t *testing.T) {
			got := MatchEndpoint(tt.path, tt.method, configs)
			if tt.want == "" {
				assert.Nil(t, got)
			} else {
				require.NotNil(t, got)
				assert.Equal(t, tt.want, got.Path)
			}
		})
	}
}
