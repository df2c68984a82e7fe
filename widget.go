package scrollkit

import (
	"image"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// DefaultWheelSpeed is the scroll distance in pixels per wheel unit.
const DefaultWheelSpeed = 60.0

// Direction selects which axes a Scrollable scrolls on.
type Direction int

const (
	Vertical Direction = iota
	Horizontal
	Both
)

// Anchor selects which edge of the content the offset is measured from.
type Anchor int

const (
	AnchorStart Anchor = iota
	AnchorEnd
)

// Viewport describes the scroll position reported to OnScroll callbacks.
type Viewport struct {
	Bounds      Rect
	ContentSize Size
	Absolute    Offset
	Relative    Offset
}

type viewMode int

const (
	modeViewport viewMode = iota
	modeRows
)

type scrollbarGrab struct {
	axis   barAxis
	origin float64
}

// Scrollable is a virtual-scrolling widget: it renders only the visible
// interval of a logically larger content area via a caller-supplied view
// callback. All state is owned by the instance and mutated synchronously
// from the hosting frame loop.
type Scrollable struct {
	id          string
	mode        viewMode
	contentSize Size
	rowHeight   float64
	rowCount    int
	overscan    int
	viewRect    func(Rect) Content
	viewRows    func(RowRange) Content

	dir            Direction
	anchorX        Anchor
	anchorY        Anchor
	styleFn        func(Status) ScrollStyle
	cacheKey       any
	wheelSpeed     float64
	scrollDuration time.Duration
	onScroll       func(Viewport)

	bounds  Rect
	offset  Offset
	kinetic kineticState
	anim    *scrollAnimation
	hover   hoverAnimation

	pointer       Point
	pointerInside bool
	grab          *scrollbarGrab
	touchID       ebiten.TouchID
	touchActive   bool

	cache   renderCache
	content Content

	lastUpdate   time.Time
	lastNotified *Viewport
}

// ShowViewport creates a Scrollable for custom virtualization: the view
// callback receives the visible rectangle in content coordinates and returns
// the content to render for it.
func ShowViewport(contentSize Size, view func(Rect) Content) *Scrollable {
	return &Scrollable{
		mode:           modeViewport,
		contentSize:    contentSize,
		viewRect:       view,
		dir:            Vertical,
		styleFn:        func(Status) ScrollStyle { return FloatingStyle() },
		wheelSpeed:     DefaultWheelSpeed,
		scrollDuration: DefaultScrollDuration,
	}
}

// ShowRows creates a Scrollable optimized for uniform-height rows: the view
// callback receives the range of visible row indices.
func ShowRows(rowHeight float64, rowCount int, view func(RowRange) Content) *Scrollable {
	s := ShowViewport(Size{Height: rowHeight * float64(rowCount)}, nil)
	s.mode = modeRows
	s.rowHeight = rowHeight
	s.rowCount = rowCount
	s.viewRows = view
	return s
}

// ID sets the widget identity used for addressed commands via a Registry.
func (s *Scrollable) ID(id string) *Scrollable {
	s.id = id
	return s
}

// CacheKey sets the render cache key. Changing the key across frames
// invalidates the cached content even when the visible interval is unchanged.
// Keys must be comparable, like map keys.
func (s *Scrollable) CacheKey(key any) *Scrollable {
	if s.cacheKey != key {
		s.cacheKey = key
		s.cache.invalidate()
	}
	return s
}

// Style sets the scrollbar style function. The function receives the current
// hover and interaction state every frame.
func (s *Scrollable) Style(fn func(Status) ScrollStyle) *Scrollable {
	s.styleFn = fn
	return s
}

// Preset sets a fixed scrollbar style.
func (s *Scrollable) Preset(style ScrollStyle) *Scrollable {
	return s.Style(func(Status) ScrollStyle { return style })
}

// Vertical restricts scrolling to the Y axis.
func (s *Scrollable) Vertical() *Scrollable {
	s.dir = Vertical
	return s
}

// Horizontal restricts scrolling to the X axis.
func (s *Scrollable) Horizontal() *Scrollable {
	s.dir = Horizontal
	return s
}

// Both enables scrolling on both axes.
func (s *Scrollable) Both() *Scrollable {
	s.dir = Both
	return s
}

// AnchorBottom measures the vertical offset from the bottom edge, keeping the
// view pinned to the end while content grows.
func (s *Scrollable) AnchorBottom() *Scrollable {
	s.anchorY = AnchorEnd
	return s
}

// AnchorRight measures the horizontal offset from the right edge.
func (s *Scrollable) AnchorRight() *Scrollable {
	s.anchorX = AnchorEnd
	return s
}

// Overscan renders extra rows beyond the strict visible bound to reduce
// pop-in during fast scrolling. Row mode only; the default is 0.
func (s *Scrollable) Overscan(rows int) *Scrollable {
	if rows < 0 {
		rows = 0
	}
	s.overscan = rows
	return s
}

// WheelSpeed sets the scroll distance in pixels per wheel unit.
func (s *Scrollable) WheelSpeed(px float64) *Scrollable {
	if px > 0 {
		s.wheelSpeed = px
	}
	return s
}

// ScrollDuration sets the duration of animated scroll-to.
func (s *Scrollable) ScrollDuration(d time.Duration) *Scrollable {
	if d > 0 {
		s.scrollDuration = d
	}
	return s
}

// OnScroll sets a callback fired whenever the scroll position changes.
func (s *Scrollable) OnScroll(fn func(Viewport)) *Scrollable {
	s.onScroll = fn
	return s
}

// SetBounds assigns the allotted layout bounds. Call on creation and on
// every resize.
func (s *Scrollable) SetBounds(bounds Rect) *Scrollable {
	s.bounds = bounds
	return s
}

// Bounds returns the allotted layout bounds.
func (s *Scrollable) Bounds() Rect {
	return s.bounds
}

// SetRowCount updates the total row count in row mode.
func (s *Scrollable) SetRowCount(n int) *Scrollable {
	if s.mode == modeRows && n >= 0 {
		s.rowCount = n
		s.contentSize.Height = s.rowHeight * float64(n)
	}
	return s
}

// contentExtent is the logical content size, falling back to the viewport on
// axes the caller left unspecified.
func (s *Scrollable) contentExtent() Size {
	vp := s.viewportSize()
	cs := s.contentSize
	if cs.Width <= 0 {
		cs.Width = vp.Width
	}
	if cs.Height <= 0 {
		cs.Height = vp.Height
	}
	return cs
}

// viewportSize is the content viewport, shrunk by the scrollbar when the
// active style reserves layout space.
func (s *Scrollable) viewportSize() Size {
	vp := Size{Width: s.bounds.Width, Height: s.bounds.Height}
	style := s.currentStyle()
	if !style.ReservesSpace {
		return vp
	}
	reserve := style.WidthHovered + style.Margin*2
	if s.dir != Horizontal && s.contentSize.Height > s.bounds.Height {
		vp.Width -= reserve
	}
	if s.dir != Vertical && s.contentSize.Width > s.bounds.Width {
		vp.Height -= reserve
	}
	if vp.Width < 0 {
		vp.Width = 0
	}
	if vp.Height < 0 {
		vp.Height = 0
	}
	return vp
}

func (s *Scrollable) currentStyle() ScrollStyle {
	return s.styleFn(Status{HoverFactor: s.hover.Factor(), Dragging: s.grab != nil})
}

// effectiveOffset resolves anchoring: an AnchorEnd axis measures the stored
// offset from the far edge.
func (s *Scrollable) effectiveOffset() Offset {
	content, viewport := s.contentExtent(), s.viewportSize()
	off := ClampOffset(content, viewport, s.offset)
	limit := MaxOffset(content, viewport)
	if s.anchorX == AnchorEnd {
		off.X = limit.X - off.X
	}
	if s.anchorY == AnchorEnd {
		off.Y = limit.Y - off.Y
	}
	return off
}

// alignDelta zeroes delta components on axes this widget does not scroll and
// flips them on AnchorEnd axes, where the stored offset grows toward the
// start while the screen delta grows toward the end.
func (s *Scrollable) alignDelta(d Offset) Offset {
	switch s.dir {
	case Vertical:
		d.X = 0
	case Horizontal:
		d.Y = 0
	}
	if s.anchorX == AnchorEnd {
		d.X = -d.X
	}
	if s.anchorY == AnchorEnd {
		d.Y = -d.Y
	}
	return d
}

// applyDelta adds an aligned, clamped delta to the offset. When the delta
// came from kinetic integration, axes pinned at a boundary zero their
// velocity in the same step. Reports whether the offset moved.
func (s *Scrollable) applyDelta(d Offset, fromKinetic bool) bool {
	d = s.alignDelta(d)
	if d == (Offset{}) {
		return false
	}
	old := ClampOffset(s.contentExtent(), s.viewportSize(), s.offset)
	next := ClampOffset(s.contentExtent(), s.viewportSize(), Offset{X: old.X + d.X, Y: old.Y + d.Y})
	s.offset = next
	if fromKinetic {
		s.kinetic.StopAxis(d.X != 0 && next.X == old.X, d.Y != 0 && next.Y == old.Y)
	}
	return next != old
}

// Wheel applies a wheel delta in wheel units. Wheel input unconditionally
// interrupts kinetic coasting and any in-flight scroll-to animation.
func (s *Scrollable) Wheel(dx, dy float64) {
	s.kinetic.Interrupt()
	s.anim = nil
	s.applyDelta(Offset{X: -dx * s.wheelSpeed, Y: -dy * s.wheelSpeed}, false)
}

// PointerDown begins a scrollbar grab when the press lands on a bar, or a
// kinetic drag when it lands on the content. Reports whether the press was
// consumed.
func (s *Scrollable) PointerDown(p Point, now time.Time) bool {
	s.pointer = p
	s.pointerInside = s.bounds.Contains(p.X, p.Y)
	if !s.pointerInside {
		return false
	}

	s.kinetic.Interrupt()
	s.anim = nil

	if bar, ok := s.barAt(p); ok {
		if origin, ok := bar.grabOrigin(p); ok {
			s.grab = &scrollbarGrab{axis: bar.axis, origin: origin}
			s.setAxisOffset(bar.axis, bar.dragOffset(p, origin))
			return true
		}
	}

	s.kinetic.DragBegin(p, now)
	return true
}

// PointerMove tracks the pointer for hover state and advances any active
// scrollbar grab or kinetic drag.
func (s *Scrollable) PointerMove(p Point, now time.Time) {
	s.pointer = p
	s.pointerInside = s.bounds.Contains(p.X, p.Y)

	switch {
	case s.grab != nil:
		if bar, ok := s.barForAxis(s.grab.axis); ok {
			s.setAxisOffset(s.grab.axis, bar.dragOffset(p, s.grab.origin))
		}
	case s.kinetic.Dragging():
		s.applyDelta(s.kinetic.DragMove(p, now), false)
	}
}

// PointerUp releases a grab or hands a drag over to coasting.
func (s *Scrollable) PointerUp(now time.Time) {
	if s.grab != nil {
		s.grab = nil
		return
	}
	if s.kinetic.Dragging() {
		s.kinetic.DragEnd(now)
	}
}

// ScrollTo jumps to an absolute offset immediately, clearing any in-flight
// animation and kinetic state.
func (s *Scrollable) ScrollTo(target Offset) {
	s.kinetic.Interrupt()
	s.anim = nil
	s.offset = ClampOffset(s.contentExtent(), s.viewportSize(), s.alignTarget(target))
}

// ScrollBy scrolls by a relative amount immediately.
func (s *Scrollable) ScrollBy(delta Offset) {
	s.kinetic.Interrupt()
	s.anim = nil
	s.applyDelta(delta, false)
}

// SnapTo jumps to a relative position in [0, 1] per axis.
func (s *Scrollable) SnapTo(rel Offset) {
	limit := MaxOffset(s.contentExtent(), s.viewportSize())
	s.ScrollTo(Offset{
		X: clamp(rel.X, 0, 1) * limit.X,
		Y: clamp(rel.Y, 0, 1) * limit.Y,
	})
}

// ScrollToAnimated starts an animated scroll to an absolute offset. The
// target is clamped up front; manual scroll input cancels the animation.
func (s *Scrollable) ScrollToAnimated(target Offset, now time.Time) {
	s.kinetic.Interrupt()
	content, viewport := s.contentExtent(), s.viewportSize()
	start := ClampOffset(content, viewport, s.offset)
	end := ClampOffset(content, viewport, s.alignTarget(target))
	s.anim = newScrollAnimation(start, end, now, s.scrollDuration)
}

// alignTarget keeps non-scrolling axes at their current position.
func (s *Scrollable) alignTarget(target Offset) Offset {
	switch s.dir {
	case Vertical:
		target.X = s.offset.X
	case Horizontal:
		target.Y = s.offset.Y
	}
	return target
}

// setAxisOffset stores a scrollbar-drag position. value is measured from the
// content start; AnchorEnd axes convert it to their end-measured form.
func (s *Scrollable) setAxisOffset(axis barAxis, value float64) {
	limit := MaxOffset(s.contentExtent(), s.viewportSize())
	if axis == barVertical {
		if s.anchorY == AnchorEnd {
			value = limit.Y - value
		}
		s.offset.Y = value
	} else {
		if s.anchorX == AnchorEnd {
			value = limit.X - value
		}
		s.offset.X = value
	}
	s.offset = ClampOffset(s.contentExtent(), s.viewportSize(), s.offset)
}

// Update advances the widget by one frame: kinetic integration, scroll-to
// animation, offset clamp, render-callback driver, then hover state. Input
// events must be applied before Update within the same frame so the rendered
// content and the drawn scrollbar reflect the same resolved offset.
func (s *Scrollable) Update(now time.Time) {
	if delta := s.kinetic.Step(now); delta != (Offset{}) {
		s.applyDelta(delta, true)
	}

	if s.anim != nil {
		off, done := s.anim.At(now)
		s.offset = ClampOffset(s.contentExtent(), s.viewportSize(), off)
		if done {
			s.anim = nil
		}
	}

	s.offset = ClampOffset(s.contentExtent(), s.viewportSize(), s.offset)
	s.render()

	var dt float64
	if !s.lastUpdate.IsZero() {
		dt = now.Sub(s.lastUpdate).Seconds()
	}
	s.hover.Step(s.pointerInside, dt)
	s.lastUpdate = now

	s.notifyScroll()
}

// render runs the render-callback driver: it recomputes the visible interval
// and reuses the cached content when both the interval and the cache key are
// unchanged; otherwise the view callback runs exactly once.
func (s *Scrollable) render() {
	content, viewport := s.contentExtent(), s.viewportSize()
	off := s.effectiveOffset()

	switch s.mode {
	case modeRows:
		rows := VisibleRows(s.rowHeight, s.rowCount, viewport.Height, off.Y, s.overscan)
		if cached, ok := s.cache.lookupRows(s.cacheKey, rows); ok {
			s.content = cached
			return
		}
		s.content = s.viewRows(rows)
		s.cache.storeRows(s.cacheKey, rows, s.content)
	default:
		rect := VisibleRect(content, viewport, off)
		if cached, ok := s.cache.lookupRect(s.cacheKey, rect); ok {
			s.content = cached
			return
		}
		s.content = s.viewRect(rect)
		s.cache.storeRect(s.cacheKey, rect, s.content)
	}
}

func (s *Scrollable) notifyScroll() {
	if s.onScroll == nil {
		return
	}
	vp := Viewport{
		Bounds:      s.bounds,
		ContentSize: s.contentExtent(),
		Absolute:    s.AbsoluteOffset(),
		Relative:    s.RelativeOffset(),
	}
	if s.lastNotified != nil && *s.lastNotified == vp {
		return
	}
	s.lastNotified = &vp
	s.onScroll(vp)
}

// Draw renders the cached content clipped to the widget bounds, then the
// scrollbars on top. Content draws relative to the returned origin, so
// fractional offsets scroll smoothly without re-invoking the view callback.
func (s *Scrollable) Draw(dst *ebiten.Image) {
	if s.content == nil {
		s.render()
	}
	if s.content != nil {
		clip := dst.SubImage(image.Rect(
			int(s.bounds.X), int(s.bounds.Y),
			int(s.bounds.X+s.bounds.Width), int(s.bounds.Y+s.bounds.Height),
		)).(*ebiten.Image)
		off := s.effectiveOffset()
		s.content.Draw(clip, Point{X: s.bounds.X - off.X, Y: s.bounds.Y - off.Y})
	}

	style := s.currentStyle()
	metrics := style.Metrics(s.hover.Factor(), s.grab != nil)
	if metrics.Width <= 0 {
		return
	}
	content, viewport := s.contentExtent(), s.viewportSize()
	off := s.effectiveOffset()
	if s.dir != Horizontal {
		if bar, ok := verticalBar(s.bounds, content, viewport, off, metrics.Width, style); ok {
			bar.draw(dst, style, metrics)
		}
	}
	if s.dir != Vertical {
		if bar, ok := horizontalBar(s.bounds, content, viewport, off, metrics.Width, style); ok {
			bar.draw(dst, style, metrics)
		}
	}
}

// barAt returns the scrollbar whose rail contains p, if any.
func (s *Scrollable) barAt(p Point) (scrollbar, bool) {
	content, viewport := s.contentExtent(), s.viewportSize()
	off := s.effectiveOffset()
	style := s.currentStyle()
	width := style.Metrics(s.hover.Factor(), true).Width

	if s.dir != Horizontal {
		if bar, ok := verticalBar(s.bounds, content, viewport, off, width, style); ok && bar.rail.Contains(p.X, p.Y) {
			return bar, true
		}
	}
	if s.dir != Vertical {
		if bar, ok := horizontalBar(s.bounds, content, viewport, off, width, style); ok && bar.rail.Contains(p.X, p.Y) {
			return bar, true
		}
	}
	return scrollbar{}, false
}

func (s *Scrollable) barForAxis(axis barAxis) (scrollbar, bool) {
	content, viewport := s.contentExtent(), s.viewportSize()
	off := s.effectiveOffset()
	style := s.currentStyle()
	width := style.Metrics(s.hover.Factor(), true).Width
	if axis == barVertical {
		return verticalBar(s.bounds, content, viewport, off, width, style)
	}
	return horizontalBar(s.bounds, content, viewport, off, width, style)
}

// IsKineticActive reports whether momentum coasting is in progress.
func (s *Scrollable) IsKineticActive() bool {
	return s.kinetic.Active()
}

// IsScrollToAnimating reports whether an animated scroll-to is in flight.
func (s *Scrollable) IsScrollToAnimating(now time.Time) bool {
	return s.anim != nil && !s.anim.Done(now)
}

// Velocity returns the tracked kinetic velocity in px/s.
func (s *Scrollable) Velocity() (vx, vy float64) {
	return s.kinetic.Velocity()
}

// HoverFactor returns the scrollbar fade state in [0, 1].
func (s *Scrollable) HoverFactor() float64 {
	return s.hover.Factor()
}

// AbsoluteOffset returns the clamped scroll offset.
func (s *Scrollable) AbsoluteOffset() Offset {
	return s.effectiveOffset()
}

// RelativeOffset returns the scroll position as a fraction of the scrollable
// range per axis; 0 on axes where the content does not overflow.
func (s *Scrollable) RelativeOffset() Offset {
	return RelativeOffset(s.contentExtent(), s.viewportSize(), s.effectiveOffset())
}

// VisibleRect returns the currently visible rectangle in content coordinates.
func (s *Scrollable) VisibleRect() Rect {
	return VisibleRect(s.contentExtent(), s.viewportSize(), s.effectiveOffset())
}

// VisibleRowRange returns the visible row range in row mode.
func (s *Scrollable) VisibleRowRange() RowRange {
	return VisibleRows(s.rowHeight, s.rowCount, s.viewportSize().Height, s.effectiveOffset().Y, s.overscan)
}
