package scrollkit

import (
	"math"
	"time"
)

// Kinetic scrolling constants.
const (
	// kineticFriction is the exponential decay rate applied while coasting, in 1/s.
	kineticFriction = 5.0
	// kineticMinVelocity is the combined velocity magnitude below which
	// coasting stops, in px/s.
	kineticMinVelocity = 1.0
	// velocitySmoothing weights the newest velocity sample during a drag.
	velocitySmoothing = 0.6
)

type kineticPhase int

const (
	kineticIdle kineticPhase = iota
	kineticDragging
	kineticCoasting
)

// kineticState tracks pointer velocity during a drag and integrates momentum
// after release. Owned by a single Scrollable; all methods are called from the
// frame loop.
type kineticState struct {
	phase    kineticPhase
	vx, vy   float64
	lastPos  Point
	lastTime time.Time
}

// DragBegin starts velocity tracking. Any residual coasting is discarded.
func (k *kineticState) DragBegin(pos Point, now time.Time) {
	k.phase = kineticDragging
	k.vx = 0
	k.vy = 0
	k.lastPos = pos
	k.lastTime = now
}

// DragMove records a pointer sample and returns the content offset delta to
// apply for this sample (content moves opposite to the pointer). Samples with
// zero elapsed time are ignored to avoid infinite instantaneous velocity.
func (k *kineticState) DragMove(pos Point, now time.Time) Offset {
	if k.phase != kineticDragging {
		return Offset{}
	}

	dt := now.Sub(k.lastTime).Seconds()
	dx := pos.X - k.lastPos.X
	dy := pos.Y - k.lastPos.Y

	if dt <= 0 {
		return Offset{}
	}

	k.vx = velocitySmoothing*(dx/dt) + (1-velocitySmoothing)*k.vx
	k.vy = velocitySmoothing*(dy/dt) + (1-velocitySmoothing)*k.vy
	k.lastPos = pos
	k.lastTime = now

	return Offset{X: -dx, Y: -dy}
}

// DragEnd releases the drag, carrying the smoothed velocity into coasting.
func (k *kineticState) DragEnd(now time.Time) {
	if k.phase != kineticDragging {
		return
	}
	k.phase = kineticCoasting
	k.lastTime = now
	if !k.aboveFloor() {
		k.reset()
	}
}

// Step advances coasting by one frame and returns the content offset delta to
// apply. Velocity decays exponentially; once the combined magnitude falls
// below the floor the state returns to idle and no further deltas are produced.
func (k *kineticState) Step(now time.Time) Offset {
	if k.phase != kineticCoasting {
		return Offset{}
	}

	dt := now.Sub(k.lastTime).Seconds()
	k.lastTime = now
	if dt <= 0 {
		return Offset{}
	}

	delta := Offset{X: -k.vx * dt, Y: -k.vy * dt}

	decay := math.Exp(-kineticFriction * dt)
	k.vx *= decay
	k.vy *= decay

	if !k.aboveFloor() {
		k.reset()
	}
	return delta
}

// StopAxis zeroes velocity on the axes pinned at a content boundary. Called in
// the same step as the clamp so there is no overshoot and no bounce.
func (k *kineticState) StopAxis(x, y bool) {
	if x {
		k.vx = 0
	}
	if y {
		k.vy = 0
	}
	if k.phase == kineticCoasting && !k.aboveFloor() {
		k.reset()
	}
}

// Interrupt discards all kinetic state. Called on wheel input or a new drag.
func (k *kineticState) Interrupt() {
	k.reset()
}

// Active reports whether momentum integration is in progress.
func (k *kineticState) Active() bool {
	return k.phase == kineticCoasting
}

// Dragging reports whether a drag is tracking velocity.
func (k *kineticState) Dragging() bool {
	return k.phase == kineticDragging
}

// Velocity returns the current tracked velocity in px/s.
func (k *kineticState) Velocity() (vx, vy float64) {
	return k.vx, k.vy
}

func (k *kineticState) aboveFloor() bool {
	return math.Hypot(k.vx, k.vy) >= kineticMinVelocity
}

func (k *kineticState) reset() {
	k.phase = kineticIdle
	k.vx = 0
	k.vy = 0
}
