package questions

import (
	"context"
	"strings"
	"sync"
	"time"
)

// DefaultCacheTTL is how long a generated question set stays fresh.
const DefaultCacheTTL = 5 * time.Minute

type cacheEntry struct {
	questions []string
	storedAt  time.Time
}

// Cached wraps a Generator with an in-memory TTL cache keyed by the
// normalized tech list. The cache lives at the collaborator boundary so
// the conversation driver stays cache-agnostic.
type Cached struct {
	inner Generator
	ttl   time.Duration
	now   func() time.Time

	mu      sync.Mutex
	entries map[string]cacheEntry
}

// NewCached wraps gen with a TTL cache. A zero TTL uses DefaultCacheTTL.
func NewCached(gen Generator, ttl time.Duration) *Cached {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &Cached{
		inner:   gen,
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]cacheEntry),
	}
}

// Generate returns the cached question set for this tech stack when fresh,
// otherwise delegates to the wrapped generator and stores the result.
func (c *Cached) Generate(ctx context.Context, techStack []string) []string {
	key := cacheKey(techStack)

	c.mu.Lock()
	entry, ok := c.entries[key]
	if ok && c.now().Sub(entry.storedAt) < c.ttl {
		c.mu.Unlock()
		return entry.questions
	}
	c.mu.Unlock()

	questions := c.inner.Generate(ctx, techStack)

	c.mu.Lock()
	c.entries[key] = cacheEntry{questions: questions, storedAt: c.now()}
	c.mu.Unlock()

	return questions
}

func cacheKey(techStack []string) string {
	lowered := make([]string, len(techStack))
	for i, tech := range techStack {
		lowered[i] = strings.ToLower(tech)
	}
	return strings.Join(lowered, ",")
}
