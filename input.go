package scrollkit

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// HandleInput polls ebiten's mouse, wheel and touch state and feeds it into
// the widget's event methods. Call once per frame from Update, before
// (*Scrollable).Update. Hosts with their own event routing can skip this and
// call PointerDown/PointerMove/PointerUp/Wheel directly.
func (s *Scrollable) HandleInput(now time.Time) {
	cx, cy := ebiten.CursorPosition()
	cursor := Point{X: float64(cx), Y: float64(cy)}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		s.PointerDown(cursor, now)
	}
	s.PointerMove(cursor, now)
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		s.PointerUp(now)
	}

	if dx, dy := ebiten.Wheel(); (dx != 0 || dy != 0) && s.bounds.Contains(cursor.X, cursor.Y) {
		s.Wheel(dx, dy)
	}

	s.handleTouches(now)
}

// handleTouches maps the first touch inside the widget bounds onto the
// pointer event methods. A single touch is tracked at a time; a new touch
// while one is active is ignored rather than merged.
func (s *Scrollable) handleTouches(now time.Time) {
	if s.touchActive {
		if inpututil.IsTouchJustReleased(s.touchID) {
			s.touchActive = false
			s.PointerUp(now)
			return
		}
		tx, ty := ebiten.TouchPosition(s.touchID)
		s.PointerMove(Point{X: float64(tx), Y: float64(ty)}, now)
		return
	}

	for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
		tx, ty := ebiten.TouchPosition(id)
		p := Point{X: float64(tx), Y: float64(ty)}
		if s.PointerDown(p, now) {
			s.touchID = id
			s.touchActive = true
			return
		}
	}
}
