package scrollkit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testWidget(content Size, bounds Rect) *Scrollable {
	return ShowViewport(content, func(Rect) Content { return nil }).
		Both().
		SetBounds(bounds)
}

func TestEaseOutCubic_Endpoints(t *testing.T) {
	assert.Equal(t, 0.0, easeOutCubic(0))
	assert.Equal(t, 1.0, easeOutCubic(1))
}

func TestEaseOutCubic_Monotonic(t *testing.T) {
	prev := -1.0
	for i := 0; i <= 1000; i++ {
		v := easeOutCubic(float64(i) / 1000)
		assert.GreaterOrEqual(t, v, prev, "easing must be non-decreasing")
		prev = v
	}
}

func TestScrollAnimation_ExactEndpoints(t *testing.T) {
	start := time.Unix(0, 0)
	a := newScrollAnimation(Offset{X: 10, Y: 20}, Offset{X: 110, Y: 220}, start, 300*time.Millisecond)

	at0, done := a.At(start)
	assert.False(t, done)
	assert.Equal(t, Offset{X: 10, Y: 20}, at0, "t=0 yields start exactly")

	at1, done := a.At(start.Add(300 * time.Millisecond))
	assert.True(t, done)
	assert.Equal(t, Offset{X: 110, Y: 220}, at1, "t=1 yields target exactly")

	after, done := a.At(start.Add(time.Hour))
	assert.True(t, done)
	assert.Equal(t, Offset{X: 110, Y: 220}, after)
}

func TestScrollAnimation_MonotonicProgress(t *testing.T) {
	start := time.Unix(0, 0)
	a := newScrollAnimation(Offset{}, Offset{Y: 1000}, start, 300*time.Millisecond)

	prev := -1.0
	for ms := 0; ms <= 300; ms += 5 {
		off, _ := a.At(start.Add(time.Duration(ms) * time.Millisecond))
		assert.GreaterOrEqual(t, off.Y, prev)
		prev = off.Y
	}
}

func TestScrollToAnimated_ConvergesToClampedTarget(t *testing.T) {
	w := testWidget(Size{1000, 1000}, Rect{0, 0, 100, 100})
	now := time.Unix(0, 0)

	// Target beyond the scrollable range: clamped up front.
	w.ScrollToAnimated(Offset{X: 5000, Y: 5000}, now)
	require.True(t, w.IsScrollToAnimating(now))

	w.Update(now.Add(w.scrollDuration))
	assert.Equal(t, Offset{X: 900, Y: 900}, w.AbsoluteOffset())
	assert.False(t, w.IsScrollToAnimating(now.Add(w.scrollDuration)))
}

func TestScrollToAnimated_RestingOffsetAfterCompletion(t *testing.T) {
	w := testWidget(Size{1000, 1000}, Rect{0, 0, 100, 100})
	now := time.Unix(0, 0)

	w.ScrollToAnimated(Offset{Y: 400}, now)
	w.Update(now.Add(w.scrollDuration))
	require.Nil(t, w.anim, "completed animation is cleared")

	// Subsequent frames rest on the static target.
	w.Update(now.Add(w.scrollDuration + time.Second))
	assert.Equal(t, 400.0, w.AbsoluteOffset().Y)
}

func TestScrollToAnimated_InterruptedByWheel(t *testing.T) {
	w := testWidget(Size{1000, 1000}, Rect{0, 0, 100, 100})
	now := time.Unix(0, 0)

	w.ScrollToAnimated(Offset{Y: 800}, now)
	mid := now.Add(w.scrollDuration / 2)
	w.Update(mid)
	require.True(t, w.IsScrollToAnimating(mid))
	atInterrupt := w.AbsoluteOffset()

	w.Wheel(0, 0) // zero-delta wheel still cancels
	assert.False(t, w.IsScrollToAnimating(mid))

	// No further offset change attributable to the cancelled animation.
	w.Update(mid.Add(frameDt))
	assert.Equal(t, atInterrupt, w.AbsoluteOffset())
}

func TestScrollToAnimated_InterruptedByDrag(t *testing.T) {
	w := testWidget(Size{1000, 1000}, Rect{0, 0, 100, 100})
	now := time.Unix(0, 0)

	w.ScrollToAnimated(Offset{Y: 800}, now)
	mid := now.Add(w.scrollDuration / 2)
	w.Update(mid)
	require.True(t, w.IsScrollToAnimating(mid))

	w.PointerDown(Point{X: 50, Y: 50}, mid)
	assert.False(t, w.IsScrollToAnimating(mid))
}

func TestScrollToAnimated_PreemptsKinetic(t *testing.T) {
	w := testWidget(Size{1000, 1000}, Rect{0, 0, 100, 100})

	now := time.Unix(0, 0)
	pos := Point{X: 50, Y: 80}
	w.PointerDown(pos, now)
	for i := 0; i < 10; i++ {
		now = now.Add(frameDt)
		pos.Y -= 10
		w.PointerMove(pos, now)
	}
	w.PointerUp(now)
	require.True(t, w.IsKineticActive())

	w.ScrollToAnimated(Offset{Y: 0}, now)
	assert.False(t, w.IsKineticActive(), "scroll-to discards kinetic coasting")
}

func TestScrollTo_ImmediateClearsAnimation(t *testing.T) {
	w := testWidget(Size{1000, 1000}, Rect{0, 0, 100, 100})
	now := time.Unix(0, 0)

	w.ScrollToAnimated(Offset{Y: 800}, now)
	w.ScrollTo(Offset{Y: 250})
	assert.False(t, w.IsScrollToAnimating(now))
	assert.Equal(t, 250.0, w.AbsoluteOffset().Y)
}

func TestSnapTo_RelativePosition(t *testing.T) {
	w := testWidget(Size{1000, 1000}, Rect{0, 0, 100, 100})

	w.SnapTo(Offset{X: 0.5, Y: 1})
	assert.Equal(t, Offset{X: 450, Y: 900}, w.AbsoluteOffset())

	w.SnapTo(Offset{X: -3, Y: 7}) // out-of-range fractions clamp to [0, 1]
	assert.Equal(t, Offset{X: 0, Y: 900}, w.AbsoluteOffset())
}
