package app

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/depeter/scrollkit"
	"github.com/depeter/scrollkit/internal/config"
)

// rowsScreen is a list of cfg.Scroll.Rows uniform rows. Only the visible row
// interval is ever produced; the widget re-invokes the view callback when the
// interval changes.
type rowsScreen struct {
	list      *scrollkit.Scrollable
	rowHeight float64
}

func newRowsScreen(cfg *config.Config, registry *scrollkit.Registry, bounds scrollkit.Rect) *rowsScreen {
	s := &rowsScreen{rowHeight: cfg.Scroll.RowHeight}
	s.list = scrollkit.ShowRows(cfg.Scroll.RowHeight, cfg.Scroll.Rows, s.view).
		ID("rows").
		Overscan(cfg.Scroll.Overscan).
		WheelSpeed(cfg.Scroll.WheelSpeed).
		Preset(presetByName(cfg.Scroll.Preset)).
		ScrollDuration(time.Duration(cfg.Scroll.DurationMS) * time.Millisecond).
		SetBounds(bounds)
	registry.Register(s.list)
	return s
}

func (s *rowsScreen) Name() string { return "Rows" }

func (s *rowsScreen) ID() string { return "rows" }

func (s *rowsScreen) Widget() *scrollkit.Scrollable { return s.list }

// view builds the content for one visible row interval. The returned content
// draws rows at their absolute positions relative to origin, so fractional
// scrolling stays smooth while the interval is unchanged.
func (s *rowsScreen) view(r scrollkit.RowRange) scrollkit.Content {
	width := s.list.Bounds().Width
	return scrollkit.ContentFunc(func(dst *ebiten.Image, origin scrollkit.Point) {
		for i := r.Start; i < r.End; i++ {
			y := origin.Y + float64(i)*s.rowHeight

			bg := ColorRowOdd
			if i%2 == 0 {
				bg = ColorRowEven
			}
			vector.DrawFilledRect(dst, float32(origin.X), float32(y), float32(width), float32(s.rowHeight), bg, false)

			// Marker stripe on every thousandth row
			if i%1000 == 0 {
				vector.DrawFilledRect(dst, float32(origin.X), float32(y), 4, float32(s.rowHeight), ColorRowStripe, false)
			}

			ebitenutil.DebugPrintAt(dst, fmt.Sprintf("Row %d", i), int(origin.X)+12, int(y)+8)
		}
	})
}

func (s *rowsScreen) Draw(dst *ebiten.Image) {
	s.list.Draw(dst)
}
