package clock

import (
	"context"
	"time"
)

// Clock is an interface around the standard library functions that
// provide time handling, so that durations of normalization requests
// and shutdown deadlines can be controlled by unit tests.
type Clock interface {
	// Return the current time of day. Equivalent to time.Now().
	Now() time.Time

	// Create a Context object that automatically cancels after a
	// certain amount of time has passed. Equivalent to
	// context.WithTimeout().
	NewContextWithTimeout(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc)
}
