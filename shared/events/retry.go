package events

import "time"

// RetryPolicy bounds handler retries on the bus. The policy is applied
// uniformly around every handler invocation, independent of business logic.
type RetryPolicy struct {
	MaxAttempts    int
	InitialBackoff time.Duration
	Multiplier     int
}

// DefaultRetryPolicy retries each handler up to 3 times with
// 100ms/200ms/400ms backoff between attempts.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts:    3,
		InitialBackoff: 100 * time.Millisecond,
		Multiplier:     2,
	}
}

// Backoff returns the delay after the given 1-based failed attempt.
func (p RetryPolicy) Backoff(attempt int) time.Duration {
	delay := p.InitialBackoff
	for i := 1; i < attempt; i++ {
		delay *= time.Duration(p.Multiplier)
	}
	return delay
}
