package scrollkit

import "image/color"

// Hover fade rates in factor units per second. Fading in is faster than
// fading out so the bar appears promptly and lingers briefly.
const (
	hoverFadeInRate  = 8.0
	hoverFadeOutRate = 4.0
)

// Colors — neutral dark defaults for the built-in presets.
var (
	ColorRail   = color.RGBA{R: 0x28, G: 0x28, B: 0x34, A: 0xFF}
	ColorHandle = color.RGBA{R: 0x90, G: 0x90, B: 0x9C, A: 0xFF}
)

// Status describes the scrollbar interaction state passed to style functions.
type Status struct {
	// HoverFactor is the pointer-presence fade state in [0, 1].
	HoverFactor float64
	// Dragging is true while a scrollbar handle is grabbed.
	Dragging bool
}

// ScrollStyle configures scrollbar appearance. Idle and hovered values are
// blended by the hover factor; see BarMetrics.
type ScrollStyle struct {
	WidthIdle    float64
	WidthHovered float64

	RailColor          color.RGBA
	RailOpacityIdle    float64
	RailOpacityHovered float64

	HandleColor          color.RGBA
	HandleOpacityIdle    float64
	HandleOpacityHovered float64

	// Margin is the gap between the bar and the widget edge.
	Margin float64
	// MinHandleLength is the smallest handle size regardless of content ratio.
	MinHandleLength float64
	// ReservesSpace shrinks the content viewport by the bar width instead of
	// overlaying the bar on top of the content.
	ReservesSpace bool
}

// BarMetrics is the resolved appearance for one frame.
type BarMetrics struct {
	Width         float64
	RailOpacity   float64
	HandleOpacity float64
}

// Metrics interpolates between the idle and hovered values using hoverFactor
// as the blend weight. While the handle is being dragged the hovered values
// apply in full, regardless of the hover factor.
func (s ScrollStyle) Metrics(hoverFactor float64, interacting bool) BarMetrics {
	t := clamp(hoverFactor, 0, 1)
	if interacting {
		t = 1
	}
	return BarMetrics{
		Width:         Lerp(s.WidthIdle, s.WidthHovered, t),
		RailOpacity:   Lerp(s.RailOpacityIdle, s.RailOpacityHovered, t),
		HandleOpacity: Lerp(s.HandleOpacityIdle, s.HandleOpacityHovered, t),
	}
}

// FloatingStyle is a slim overlay bar that fades in on hover and reserves no
// layout space.
func FloatingStyle() ScrollStyle {
	return ScrollStyle{
		WidthIdle:            4,
		WidthHovered:         8,
		RailColor:            ColorRail,
		RailOpacityIdle:      0,
		RailOpacityHovered:   0.3,
		HandleColor:          ColorHandle,
		HandleOpacityIdle:    0.35,
		HandleOpacityHovered: 0.9,
		Margin:               2,
		MinHandleLength:      24,
		ReservesSpace:        false,
	}
}

// ThinStyle is a narrow bar that reserves layout space and stays visible.
func ThinStyle() ScrollStyle {
	return ScrollStyle{
		WidthIdle:            6,
		WidthHovered:         10,
		RailColor:            ColorRail,
		RailOpacityIdle:      0.5,
		RailOpacityHovered:   0.8,
		HandleColor:          ColorHandle,
		HandleOpacityIdle:    0.6,
		HandleOpacityHovered: 1,
		Margin:               1,
		MinHandleLength:      24,
		ReservesSpace:        true,
	}
}

// SolidStyle is a fixed-width, fully opaque bar in the classic desktop manner.
func SolidStyle() ScrollStyle {
	return ScrollStyle{
		WidthIdle:            12,
		WidthHovered:         12,
		RailColor:            ColorRail,
		RailOpacityIdle:      1,
		RailOpacityHovered:   1,
		HandleColor:          ColorHandle,
		HandleOpacityIdle:    1,
		HandleOpacityHovered: 1,
		Margin:               0,
		MinHandleLength:      24,
		ReservesSpace:        true,
	}
}

// hoverAnimation holds the continuous pointer-presence fade state.
type hoverAnimation struct {
	factor float64
}

// Step advances the factor toward 1 while the pointer is inside the widget
// bounds and toward 0 otherwise. The result stays in [0, 1] for any dt,
// including 0.
func (h *hoverAnimation) Step(inside bool, dt float64) {
	if dt < 0 {
		dt = 0
	}
	if inside {
		h.factor = clamp(h.factor+hoverFadeInRate*dt, 0, 1)
	} else {
		h.factor = clamp(h.factor-hoverFadeOutRate*dt, 0, 1)
	}
}

// Factor returns the current fade state in [0, 1].
func (h *hoverAnimation) Factor() float64 {
	return h.factor
}
