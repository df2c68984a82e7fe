package scrollkit

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

type barAxis int

const (
	barVertical barAxis = iota
	barHorizontal
)

// scrollbar is the resolved rail and handle geometry for one axis, in screen
// coordinates. Geometry is recomputed every frame from the current offset.
type scrollbar struct {
	axis   barAxis
	rail   Rect
	handle Rect
	// maxOffset is the scrollable range on this axis in content pixels.
	maxOffset float64
}

// verticalBar computes the vertical scrollbar geometry, or false when the
// content does not overflow the viewport vertically.
func verticalBar(bounds Rect, content, viewport Size, off Offset, width float64, style ScrollStyle) (scrollbar, bool) {
	limit := MaxOffset(content, viewport)
	if limit.Y <= 0 || width <= 0 || bounds.Height <= 0 {
		return scrollbar{}, false
	}

	rail := Rect{
		X:      bounds.X + bounds.Width - width - style.Margin,
		Y:      bounds.Y + style.Margin,
		Width:  width,
		Height: bounds.Height - style.Margin*2,
	}

	handleLen := railHandleLength(rail.Height, viewport.Height, content.Height, style.MinHandleLength)
	rel := RelativeOffset(content, viewport, off).Y
	handle := Rect{
		X:      rail.X,
		Y:      rail.Y + rel*(rail.Height-handleLen),
		Width:  width,
		Height: handleLen,
	}

	return scrollbar{axis: barVertical, rail: rail, handle: handle, maxOffset: limit.Y}, true
}

// horizontalBar computes the horizontal scrollbar geometry, or false when the
// content does not overflow the viewport horizontally.
func horizontalBar(bounds Rect, content, viewport Size, off Offset, width float64, style ScrollStyle) (scrollbar, bool) {
	limit := MaxOffset(content, viewport)
	if limit.X <= 0 || width <= 0 || bounds.Width <= 0 {
		return scrollbar{}, false
	}

	rail := Rect{
		X:      bounds.X + style.Margin,
		Y:      bounds.Y + bounds.Height - width - style.Margin,
		Width:  bounds.Width - style.Margin*2,
		Height: width,
	}

	handleLen := railHandleLength(rail.Width, viewport.Width, content.Width, style.MinHandleLength)
	rel := RelativeOffset(content, viewport, off).X
	handle := Rect{
		X:      rail.X + rel*(rail.Width-handleLen),
		Y:      rail.Y,
		Width:  handleLen,
		Height: width,
	}

	return scrollbar{axis: barHorizontal, rail: rail, handle: handle, maxOffset: limit.X}, true
}

// railHandleLength sizes the handle proportionally to the visible share of
// the content, subject to the style minimum and capped at the rail length.
func railHandleLength(railLen, viewport, content, minLen float64) float64 {
	if content <= 0 {
		return railLen
	}
	length := railLen * viewport / content
	length = math.Max(length, minLen)
	return math.Min(length, railLen)
}

// grabOrigin returns the grab position within the handle for a press at p, or
// false when the press is outside this bar's rail. A press on the rail but
// off the handle centers the handle at the press point.
func (b scrollbar) grabOrigin(p Point) (float64, bool) {
	if !b.rail.Contains(p.X, p.Y) {
		return 0, false
	}
	if b.handle.Contains(p.X, p.Y) {
		if b.axis == barVertical {
			return p.Y - b.handle.Y, true
		}
		return p.X - b.handle.X, true
	}
	// Jump: center the handle on the press point.
	if b.axis == barVertical {
		return b.handle.Height / 2, true
	}
	return b.handle.Width / 2, true
}

// dragOffset maps a pointer position during a handle drag back to an
// absolute offset on this axis. grabbed is the value from grabOrigin.
func (b scrollbar) dragOffset(p Point, grabbed float64) float64 {
	var travel, pos float64
	if b.axis == barVertical {
		travel = b.rail.Height - b.handle.Height
		pos = p.Y - grabbed - b.rail.Y
	} else {
		travel = b.rail.Width - b.handle.Width
		pos = p.X - grabbed - b.rail.X
	}
	if travel <= 0 {
		return 0
	}
	return clamp(pos/travel, 0, 1) * b.maxOffset
}

// draw paints the rail and handle with the resolved frame metrics.
func (b scrollbar) draw(dst *ebiten.Image, style ScrollStyle, m BarMetrics) {
	if m.RailOpacity > 0 {
		vector.DrawFilledRect(dst,
			float32(b.rail.X), float32(b.rail.Y),
			float32(b.rail.Width), float32(b.rail.Height),
			scaleColor(style.RailColor, m.RailOpacity), false)
	}
	if m.HandleOpacity > 0 {
		vector.DrawFilledRect(dst,
			float32(b.handle.X), float32(b.handle.Y),
			float32(b.handle.Width), float32(b.handle.Height),
			scaleColor(style.HandleColor, m.HandleOpacity), false)
	}
}

// scaleColor applies an opacity to an alpha-premultiplied color.
func scaleColor(c color.RGBA, opacity float64) color.RGBA {
	o := clamp(opacity, 0, 1)
	return color.RGBA{
		R: uint8(float64(c.R) * o),
		G: uint8(float64(c.G) * o),
		B: uint8(float64(c.B) * o),
		A: uint8(float64(c.A) * o),
	}
}
