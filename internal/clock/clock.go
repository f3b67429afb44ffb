// Package clock is the time source for step timings.
package clock

import "time"

var nowFunc = time.Now

func Now() time.Time {
	return nowFunc()
}

// Since is the time elapsed since t according to the current clock.
func Since(t time.Time) time.Duration {
	return nowFunc().Sub(t)
}

// SetNowForTest overrides the clock source and returns a restore function.
// Tests that use it must not run in parallel with other clock users.
func SetNowForTest(fn func() time.Time) func() {
	previous := nowFunc
	nowFunc = fn
	return func() {
		nowFunc = previous
	}
}
