package scrollkit

import "math"

// Size is a logical size in pixels.
type Size struct {
	Width  float64
	Height float64
}

// Point is a position in pixels.
type Point struct {
	X float64
	Y float64
}

// Offset is a scroll position in content coordinates.
type Offset struct {
	X float64
	Y float64
}

// Rect is an axis-aligned rectangle in content coordinates.
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Contains reports whether the point (px, py) lies inside the rectangle.
func (r Rect) Contains(px, py float64) bool {
	return px >= r.X && px < r.X+r.Width && py >= r.Y && py < r.Y+r.Height
}

// RowRange is a half-open range [Start, End) of row indices.
type RowRange struct {
	Start int
	End   int
}

// Len returns the number of rows in the range.
func (r RowRange) Len() int {
	if r.End <= r.Start {
		return 0
	}
	return r.End - r.Start
}

// MaxOffset returns the largest valid scroll offset for the given content and
// viewport sizes. Each axis is max(0, content-viewport).
func MaxOffset(content, viewport Size) Offset {
	return Offset{
		X: math.Max(0, content.Width-viewport.Width),
		Y: math.Max(0, content.Height-viewport.Height),
	}
}

// ClampOffset clamps off to [0, MaxOffset] per axis independently. It must be
// applied after every offset mutation before the offset is used.
func ClampOffset(content, viewport Size, off Offset) Offset {
	limit := MaxOffset(content, viewport)
	return Offset{
		X: clamp(off.X, 0, limit.X),
		Y: clamp(off.Y, 0, limit.Y),
	}
}

// VisibleRect maps a content size, viewport size and scroll offset to the
// visible rectangle in content coordinates. The offset is clamped first, so
// the result is always contained in [0, content.Width] x [0, content.Height].
// Where the viewport exceeds the content on an axis, the origin is pinned to 0.
func VisibleRect(content, viewport Size, off Offset) Rect {
	off = ClampOffset(content, viewport, off)
	return Rect{
		X:      off.X,
		Y:      off.Y,
		Width:  math.Max(0, math.Min(viewport.Width, content.Width)),
		Height: math.Max(0, math.Min(viewport.Height, content.Height)),
	}
}

// VisibleRows maps a vertical scroll offset to the range of visible row
// indices for uniform-height rows. The range is widened by overscan rows on
// each side and clamped to [0, rowCount).
func VisibleRows(rowHeight float64, rowCount int, viewportHeight, offsetY float64, overscan int) RowRange {
	if rowHeight <= 0 || rowCount <= 0 || viewportHeight <= 0 {
		return RowRange{}
	}

	contentHeight := rowHeight * float64(rowCount)
	offsetY = clamp(offsetY, 0, math.Max(0, contentHeight-viewportHeight))

	first := int(math.Floor(offsetY/rowHeight)) - overscan
	last := int(math.Ceil((offsetY+viewportHeight)/rowHeight)) + overscan

	if first < 0 {
		first = 0
	}
	if last > rowCount {
		last = rowCount
	}
	if last < first {
		last = first
	}
	return RowRange{Start: first, End: last}
}

// RelativeOffset converts an absolute offset to a fraction of the scrollable
// range per axis. When the content does not overflow the viewport on an axis
// the fraction is defined as 0, never NaN.
func RelativeOffset(content, viewport Size, off Offset) Offset {
	limit := MaxOffset(content, viewport)
	var rel Offset
	if limit.X > 0 {
		rel.X = clamp(off.X, 0, limit.X) / limit.X
	}
	if limit.Y > 0 {
		rel.Y = clamp(off.Y, 0, limit.Y) / limit.Y
	}
	return rel
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Lerp linearly interpolates between a and b.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
