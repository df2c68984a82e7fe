package app

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/depeter/scrollkit"
	"github.com/depeter/scrollkit/internal/config"
)

// screen is one demo page built around a single scrollable widget.
type screen interface {
	Name() string
	ID() string
	Widget() *scrollkit.Scrollable
	Draw(dst *ebiten.Image)
}

// Game implements ebiten.Game and hosts the demo screens. It owns the
// Registry; queued scroll commands are flushed once per frame before the
// active widget updates.
type Game struct {
	Config   *config.Config
	Registry *scrollkit.Registry

	screens []screen
	active  int

	Width, Height int
}

// NewGame creates the Game with all demo screens.
func NewGame(cfg *config.Config) *Game {
	g := &Game{
		Config:   cfg,
		Registry: scrollkit.NewRegistry(),
		Width:    cfg.UI.Width,
		Height:   cfg.UI.Height,
	}

	bounds := scrollkit.Rect{
		X:      ScreenPadding,
		Y:      ScreenPadding + HeaderHeight,
		Width:  float64(g.Width) - ScreenPadding*2,
		Height: float64(g.Height) - ScreenPadding*2 - HeaderHeight,
	}
	g.screens = []screen{
		newRowsScreen(cfg, g.Registry, bounds),
		newCanvasScreen(cfg, g.Registry, bounds),
	}
	return g
}

// presetByName maps a config preset name to a scrollbar style.
func presetByName(name string) scrollkit.ScrollStyle {
	switch name {
	case "thin":
		return scrollkit.ThinStyle()
	case "solid":
		return scrollkit.SolidStyle()
	default:
		return scrollkit.FloatingStyle()
	}
}

func (g *Game) Update() error {
	now := time.Now()

	// Alt+Enter toggles fullscreen
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) && ebiten.IsKeyPressed(ebiten.KeyAlt) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}

	// F12 toggles debug overlay
	ToggleDebugOverlay()

	// Tab cycles screens
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.active = (g.active + 1) % len(g.screens)
	}

	w := g.screens[g.active].Widget()
	g.handleScrollKeys(w)

	w.HandleInput(now)
	g.Registry.Flush(now)
	w.Update(now)
	return nil
}

// handleScrollKeys queues keyboard scroll commands on the active widget
// through the registry.
func (g *Game) handleScrollKeys(w *scrollkit.Scrollable) {
	id := g.screens[g.active].ID()
	page := w.Bounds().Height
	cur := w.AbsoluteOffset()

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyPageDown):
		g.Registry.ScrollToAnimated(id, scrollkit.Offset{X: cur.X, Y: cur.Y + page})
	case inpututil.IsKeyJustPressed(ebiten.KeyPageUp):
		g.Registry.ScrollToAnimated(id, scrollkit.Offset{X: cur.X, Y: cur.Y - page})
	case inpututil.IsKeyJustPressed(ebiten.KeyHome):
		g.Registry.ScrollTo(id, scrollkit.Offset{})
	case inpututil.IsKeyJustPressed(ebiten.KeyEnd):
		g.Registry.SnapTo(id, scrollkit.Offset{X: 1, Y: 1})
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowDown):
		w.ScrollBy(scrollkit.Offset{Y: 40})
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowUp):
		w.ScrollBy(scrollkit.Offset{Y: -40})
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowRight):
		w.ScrollBy(scrollkit.Offset{X: 40})
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft):
		w.ScrollBy(scrollkit.Offset{X: -40})
	}
}

func (g *Game) Draw(dst *ebiten.Image) {
	dst.Fill(ColorBackground)

	active := g.screens[g.active]
	ebitenutil.DebugPrintAt(dst, active.Name()+"  (Tab: switch screen, PgUp/PgDn/Home/End: scroll, F12: debug)", ScreenPadding, ScreenPadding)
	active.Draw(dst)

	DrawDebugOverlay(dst, active.Widget(), time.Now())
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.Width, g.Height
}
