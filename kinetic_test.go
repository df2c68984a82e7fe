package scrollkit

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const frameDt = 16 * time.Millisecond

// dragSequence feeds a straight downward-finger drag so that a known velocity
// is being tracked when the drag ends.
func dragSequence(k *kineticState, start time.Time, perFrame float64, frames int) time.Time {
	pos := Point{X: 50, Y: 50}
	now := start
	k.DragBegin(pos, now)
	for i := 0; i < frames; i++ {
		now = now.Add(frameDt)
		pos.Y += perFrame
		k.DragMove(pos, now)
	}
	return now
}

func TestKinetic_DragMoveReturnsOppositeDelta(t *testing.T) {
	var k kineticState
	now := time.Unix(0, 0)
	k.DragBegin(Point{X: 10, Y: 10}, now)

	delta := k.DragMove(Point{X: 15, Y: 30}, now.Add(frameDt))
	assert.Equal(t, Offset{X: -5, Y: -20}, delta, "content moves opposite to the pointer")
}

func TestKinetic_ZeroDtSampleIgnored(t *testing.T) {
	var k kineticState
	now := time.Unix(0, 0)
	k.DragBegin(Point{X: 0, Y: 0}, now)

	// Duplicate timestamp: no delta and no infinite velocity.
	delta := k.DragMove(Point{X: 0, Y: 100}, now)
	assert.Equal(t, Offset{}, delta)

	vx, vy := k.Velocity()
	assert.False(t, math.IsInf(vy, 0))
	assert.Equal(t, 0.0, vx)
	assert.Equal(t, 0.0, vy)
}

func TestKinetic_VelocitySmoothing(t *testing.T) {
	var k kineticState
	now := dragSequence(&k, time.Unix(0, 0), 8, 20)
	_, vy := k.Velocity()

	// 8 px per 16ms frame = 500 px/s; smoothing converges toward it.
	assert.InDelta(t, 500, vy, 20)

	k.DragEnd(now)
	assert.True(t, k.Active())
}

func TestKinetic_DecayTerminates(t *testing.T) {
	var k kineticState
	now := dragSequence(&k, time.Unix(0, 0), 8, 20) // ~500 px/s
	k.DragEnd(now)
	require.True(t, k.Active())

	// v(t) = v0 * exp(-5t) falls below 1 px/s within ln(500)/5 ~ 1.25s,
	// i.e. well inside 200 frames at 16ms.
	steps := 0
	for k.Active() {
		require.Less(t, steps, 200, "coasting must terminate in bounded steps")
		now = now.Add(frameDt)
		k.Step(now)
		steps++
	}

	vx, vy := k.Velocity()
	assert.Equal(t, 0.0, vx)
	assert.Equal(t, 0.0, vy)
	assert.Equal(t, Offset{}, k.Step(now.Add(frameDt)), "idle state produces no deltas")
}

func TestKinetic_StepDeltaOpposesVelocity(t *testing.T) {
	var k kineticState
	now := dragSequence(&k, time.Unix(0, 0), 8, 20)
	k.DragEnd(now)

	_, vy := k.Velocity()
	require.Greater(t, vy, 0.0)

	delta := k.Step(now.Add(frameDt))
	assert.Less(t, delta.Y, 0.0, "offset -= v*dt")
}

func TestKinetic_StopAxisZeroesVelocity(t *testing.T) {
	var k kineticState
	now := dragSequence(&k, time.Unix(0, 0), 8, 20)
	k.DragEnd(now)
	require.True(t, k.Active())

	k.StopAxis(false, true)
	_, vy := k.Velocity()
	assert.Equal(t, 0.0, vy)
	assert.False(t, k.Active(), "no residual axis above the floor")
}

func TestKinetic_InterruptDiscardsEverything(t *testing.T) {
	var k kineticState
	now := dragSequence(&k, time.Unix(0, 0), 8, 20)
	k.DragEnd(now)
	require.True(t, k.Active())

	k.Interrupt()
	assert.False(t, k.Active())
	vx, vy := k.Velocity()
	assert.Equal(t, 0.0, vx)
	assert.Equal(t, 0.0, vy)
}

func TestKinetic_ReleaseBelowFloorGoesIdle(t *testing.T) {
	var k kineticState
	now := time.Unix(0, 0)
	k.DragBegin(Point{X: 0, Y: 0}, now)
	// A single tiny, slow move: smoothed velocity stays under 1 px/s.
	now = now.Add(time.Second)
	k.DragMove(Point{X: 0, Y: 0.5}, now)
	k.DragEnd(now)

	assert.False(t, k.Active())
}

func TestKinetic_BoundaryStopThroughWidget(t *testing.T) {
	w := ShowViewport(Size{Width: 300, Height: 300}, func(Rect) Content { return nil }).
		Both().
		SetBounds(Rect{X: 0, Y: 0, Width: 100, Height: 100})

	// Drag the finger upward so content coasts toward the bottom boundary.
	now := time.Unix(0, 0)
	pos := Point{X: 50, Y: 80}
	require.True(t, w.PointerDown(pos, now))
	for i := 0; i < 10; i++ {
		now = now.Add(frameDt)
		pos.Y -= 10
		w.PointerMove(pos, now)
	}
	w.PointerUp(now)
	require.True(t, w.IsKineticActive())

	maxY := MaxOffset(Size{300, 300}, Size{100, 100}).Y
	for i := 0; i < 1000 && w.IsKineticActive(); i++ {
		now = now.Add(frameDt)
		w.Update(now)

		// Never past the boundary, not even transiently after Update.
		assert.LessOrEqual(t, w.AbsoluteOffset().Y, maxY)
	}

	assert.Equal(t, maxY, w.AbsoluteOffset().Y, "offset pinned at the boundary")
	_, vy := w.Velocity()
	assert.Equal(t, 0.0, vy, "velocity zeroed in the same step as the clamp")
	assert.False(t, w.IsKineticActive())
}
