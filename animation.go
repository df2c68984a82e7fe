package scrollkit

import "time"

// DefaultScrollDuration is the duration of an animated scroll-to.
const DefaultScrollDuration = 300 * time.Millisecond

// scrollAnimation interpolates the offset from start to target over a fixed
// duration using an ease-out cubic curve. It is created by ScrollToAnimated
// and cleared on completion or on any manual scroll input.
type scrollAnimation struct {
	start     Offset
	target    Offset
	startTime time.Time
	duration  time.Duration
}

func newScrollAnimation(start, target Offset, now time.Time, duration time.Duration) *scrollAnimation {
	if duration <= 0 {
		duration = DefaultScrollDuration
	}
	return &scrollAnimation{
		start:     start,
		target:    target,
		startTime: now,
		duration:  duration,
	}
}

// At returns the interpolated offset at the given time and whether the
// animation has completed. At t=0 the result is exactly start; at t>=1 it is
// exactly target.
func (a *scrollAnimation) At(now time.Time) (Offset, bool) {
	t := clamp(now.Sub(a.startTime).Seconds()/a.duration.Seconds(), 0, 1)
	if t >= 1 {
		return a.target, true
	}
	eased := easeOutCubic(t)
	return Offset{
		X: Lerp(a.start.X, a.target.X, eased),
		Y: Lerp(a.start.Y, a.target.Y, eased),
	}, false
}

// Done reports whether the animation has run its full duration.
func (a *scrollAnimation) Done(now time.Time) bool {
	return now.Sub(a.startTime) >= a.duration
}

// easeOutCubic is 1-(1-t)^3: fast at the start, decelerating toward the end.
// Monotonic non-decreasing on [0, 1].
func easeOutCubic(t float64) float64 {
	u := 1 - t
	return 1 - u*u*u
}
