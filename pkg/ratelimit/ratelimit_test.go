package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLimiterAllow(t *testing.T) {
	clock := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	l := NewLimiter(time.Minute, 2)
	l.now = func() time.Time { return clock }

	assert.True(t, l.Allow("127.0.0.1"))
	assert.True(t, l.Allow("127.0.0.1"))
	assert.False(t, l.Allow("127.0.0.1"), "third hit inside the window must be rejected")
	assert.True(t, l.Allow("10.0.0.1"), "keys are counted separately")
	assert.Equal(t, 0, l.Remaining("127.0.0.1"))

	clock = clock.Add(time.Minute + time.Second)
	assert.Equal(t, 2, l.Remaining("127.0.0.1"))
	assert.True(t, l.Allow("127.0.0.1"), "window slid past the old hits")
	assert.Equal(t, 1, l.Remaining("127.0.0.1"))
}

func TestLimiterForgetsIdleKeys(t *testing.T) {
	clock := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	l := NewLimiter(time.Second, 1)
	l.now = func() time.Time { return clock }

	l.Allow("a")
	clock = clock.Add(2 * time.Second)
	l.Remaining("a")

	assert.NotContains(t, l.hits, "a")
}
