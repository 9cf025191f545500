package payzcore_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	payzcore "github.com/payzcore/payzcore-go"
)

func TestExponentialBackoff(t *testing.T) {
	t.Parallel()

	b := payzcore.ExponentialBackoff{
		InitialInterval: 200 * time.Millisecond,
		MaxInterval:     5 * time.Second,
		Multiplier:      2,
	}

	assert.Equal(t, time.Duration(0), b.NextInterval(0))
	assert.Equal(t, 200*time.Millisecond, b.NextInterval(1))
	assert.Equal(t, 400*time.Millisecond, b.NextInterval(2))
	assert.Equal(t, 800*time.Millisecond, b.NextInterval(3))

	// Bounded by MaxInterval.
	assert.Equal(t, 5*time.Second, b.NextInterval(10))
}

func TestExponentialBackoff_Monotonic(t *testing.T) {
	t.Parallel()

	b := payzcore.DefaultBackoffStrategy()

	prev := time.Duration(0)
	for attempt := 1; attempt <= 12; attempt++ {
		next := b.NextInterval(attempt)
		assert.GreaterOrEqual(t, next, prev, "backoff must be non-decreasing")
		assert.LessOrEqual(t, next, 5*time.Second, "backoff must be bounded")
		prev = next
	}
}

func TestExponentialBackoff_Jitter(t *testing.T) {
	t.Parallel()

	b := payzcore.ExponentialBackoff{
		InitialInterval: time.Second,
		MaxInterval:     time.Minute,
		Multiplier:      2,
		JitterFactor:    0.5,
	}

	for range 50 {
		got := b.NextInterval(1)
		assert.GreaterOrEqual(t, got, 500*time.Millisecond)
		assert.LessOrEqual(t, got, 1500*time.Millisecond)
	}
}

func TestLinearBackoff(t *testing.T) {
	t.Parallel()

	b := payzcore.LinearBackoff{
		Interval:    100 * time.Millisecond,
		MaxInterval: 250 * time.Millisecond,
	}

	assert.Equal(t, time.Duration(0), b.NextInterval(0))
	assert.Equal(t, 100*time.Millisecond, b.NextInterval(1))
	assert.Equal(t, 200*time.Millisecond, b.NextInterval(2))
	assert.Equal(t, 250*time.Millisecond, b.NextInterval(3))
	assert.Equal(t, 250*time.Millisecond, b.NextInterval(100))
}

func TestFixedBackoff(t *testing.T) {
	t.Parallel()

	b := payzcore.FixedBackoff{Interval: 50 * time.Millisecond}

	assert.Equal(t, time.Duration(0), b.NextInterval(0))
	assert.Equal(t, 50*time.Millisecond, b.NextInterval(1))
	assert.Equal(t, 50*time.Millisecond, b.NextInterval(7))
}
