package clock

import "time"

//go:generate mockgen -package=mocks -destination=mocks/mock_clock.go github.com/KirkDiggler/roulette/internal/common/clock Clock

// Clock supplies timestamps for the transcript and pacing for animations.
// Tests replace it so that no frame ever really sleeps.
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

// DefaultClock implements the Clock interface using the system clock
type DefaultClock struct{}

// Now returns the current time
func (c *DefaultClock) Now() time.Time {
	return time.Now()
}

// Sleep pauses the calling goroutine
func (c *DefaultClock) Sleep(d time.Duration) {
	time.Sleep(d)
}

// Instant is a Clock whose Sleep returns immediately. Automatic games use it
// to elide animation delays.
type Instant struct{}

// Now returns the current time
func (Instant) Now() time.Time {
	return time.Now()
}

// Sleep does nothing
func (Instant) Sleep(time.Duration) {}
