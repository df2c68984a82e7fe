package scrollkit

import "github.com/hajimehoshi/ebiten/v2"

// Content is rendered output produced by a view callback. origin is the
// screen position of the visible interval's content origin; implementations
// draw their items relative to it and the widget clips to its bounds.
type Content interface {
	Draw(dst *ebiten.Image, origin Point)
}

// ContentFunc adapts a plain function to the Content interface.
type ContentFunc func(dst *ebiten.Image, origin Point)

// Draw implements Content.
func (f ContentFunc) Draw(dst *ebiten.Image, origin Point) {
	f(dst, origin)
}

// renderCache holds the last view-callback result together with the cache key
// and visible interval it was produced for. The entry is reused only when
// both the key and the interval are unchanged; staleness is checked, not
// trusted.
type renderCache struct {
	valid   bool
	key     any
	rect    Rect
	rows    RowRange
	content Content
}

// lookupRect returns the cached content for a viewport-mode interval.
func (c *renderCache) lookupRect(key any, rect Rect) (Content, bool) {
	if c.valid && c.key == key && c.rect == rect {
		return c.content, true
	}
	return nil, false
}

// lookupRows returns the cached content for a row-mode interval.
func (c *renderCache) lookupRows(key any, rows RowRange) (Content, bool) {
	if c.valid && c.key == key && c.rows == rows {
		return c.content, true
	}
	return nil, false
}

func (c *renderCache) storeRect(key any, rect Rect, content Content) {
	*c = renderCache{valid: true, key: key, rect: rect, content: content}
}

func (c *renderCache) storeRows(key any, rows RowRange, content Content) {
	*c = renderCache{valid: true, key: key, rows: rows, content: content}
}

func (c *renderCache) invalidate() {
	*c = renderCache{}
}
