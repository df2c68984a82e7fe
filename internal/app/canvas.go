package app

import (
	"fmt"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/depeter/scrollkit"
	"github.com/depeter/scrollkit/internal/config"
)

const (
	canvasSize = 4000.0
	tileSize   = 100.0
)

// canvasScreen is a two-axis pannable tile grid driven by viewport
// virtualization: the view callback receives the visible rectangle in canvas
// coordinates and draws only the tiles it intersects.
type canvasScreen struct {
	canvas *scrollkit.Scrollable
}

func newCanvasScreen(cfg *config.Config, registry *scrollkit.Registry, bounds scrollkit.Rect) *canvasScreen {
	s := &canvasScreen{}
	s.canvas = scrollkit.ShowViewport(scrollkit.Size{Width: canvasSize, Height: canvasSize}, s.view).
		ID("canvas").
		Both().
		WheelSpeed(cfg.Scroll.WheelSpeed).
		Preset(presetByName(cfg.Scroll.Preset)).
		ScrollDuration(time.Duration(cfg.Scroll.DurationMS) * time.Millisecond).
		SetBounds(bounds)
	registry.Register(s.canvas)
	return s
}

func (s *canvasScreen) Name() string { return "Canvas" }

func (s *canvasScreen) ID() string { return "canvas" }

func (s *canvasScreen) Widget() *scrollkit.Scrollable { return s.canvas }

func (s *canvasScreen) view(visible scrollkit.Rect) scrollkit.Content {
	col0 := int(math.Floor(visible.X / tileSize))
	row0 := int(math.Floor(visible.Y / tileSize))
	col1 := int(math.Ceil((visible.X + visible.Width) / tileSize))
	row1 := int(math.Ceil((visible.Y + visible.Height) / tileSize))

	return scrollkit.ContentFunc(func(dst *ebiten.Image, origin scrollkit.Point) {
		for row := row0; row < row1; row++ {
			for col := col0; col < col1; col++ {
				x := origin.X + float64(col)*tileSize
				y := origin.Y + float64(row)*tileSize

				c := ColorTileB
				if (row+col)%2 == 0 {
					c = ColorTileA
				}
				if row%10 == 0 && col%10 == 0 {
					c = ColorTileAccent
				}
				vector.DrawFilledRect(dst, float32(x)+1, float32(y)+1, tileSize-2, tileSize-2, c, false)

				ebitenutil.DebugPrintAt(dst, fmt.Sprintf("%d,%d", col, row), int(x)+8, int(y)+8)
			}
		}
	})
}

func (s *canvasScreen) Draw(dst *ebiten.Image) {
	s.canvas.Draw(dst)
}
