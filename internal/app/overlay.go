package app

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/depeter/scrollkit"
)

var debugOverlayVisible bool

// ToggleDebugOverlay toggles the debug overlay on F12.
func ToggleDebugOverlay() {
	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		debugOverlayVisible = !debugOverlayVisible
	}
}

// DrawDebugOverlay draws the scroll-state panel for the active widget.
func DrawDebugOverlay(screen *ebiten.Image, w *scrollkit.Scrollable, now time.Time) {
	if !debugOverlayVisible {
		return
	}

	const (
		padX    = 16.0
		padY    = 12.0
		lineH   = 16.0
		marginR = 20.0
		marginT = 20.0
		panelW  = 340.0
	)

	abs := w.AbsoluteOffset()
	rel := w.RelativeOffset()
	vx, vy := w.Velocity()
	visible := w.VisibleRect()

	lines := []string{
		"Debug: Scroll State (F12 to close)",
		"",
		fmt.Sprintf("offset   abs=(%.1f, %.1f)", abs.X, abs.Y),
		fmt.Sprintf("         rel=(%.3f, %.3f)", rel.X, rel.Y),
		fmt.Sprintf("velocity (%.1f, %.1f) px/s", vx, vy),
		fmt.Sprintf("kinetic  %v", w.IsKineticActive()),
		fmt.Sprintf("animating %v", w.IsScrollToAnimating(now)),
		fmt.Sprintf("hover    %.2f", w.HoverFactor()),
		fmt.Sprintf("visible  (%.0f, %.0f) %vx%v", visible.X, visible.Y, visible.Width, visible.Height),
	}
	if rows := w.VisibleRowRange(); rows.Len() > 0 {
		lines = append(lines, fmt.Sprintf("rows     [%d, %d)", rows.Start, rows.End))
	}

	panelH := float64(len(lines))*lineH + padY*2
	px := float64(screen.Bounds().Dx()) - panelW - marginR
	py := marginT

	vector.DrawFilledRect(screen, float32(px), float32(py), float32(panelW), float32(panelH), ColorOverlay, false)

	y := py + padY
	for _, line := range lines {
		ebitenutil.DebugPrintAt(screen, line, int(px+padX), int(y))
		y += lineH
	}
}
