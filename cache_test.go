package scrollkit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderCache_ReuseWhenStateUnchanged(t *testing.T) {
	calls := 0
	w := ShowRows(30, 1000, func(RowRange) Content {
		calls++
		return nil
	}).SetBounds(Rect{0, 0, 200, 300})

	now := time.Unix(0, 0)
	w.Update(now)
	require.Equal(t, 1, calls)

	// Same key, same interval: the callback must not run again.
	w.Update(now.Add(frameDt))
	w.Update(now.Add(2 * frameDt))
	assert.Equal(t, 1, calls)
}

func TestRenderCache_IntervalChangeReinvokes(t *testing.T) {
	calls := 0
	w := ShowRows(30, 1000, func(RowRange) Content {
		calls++
		return nil
	}).SetBounds(Rect{0, 0, 200, 290})

	now := time.Unix(0, 0)
	w.Update(now)
	require.Equal(t, 1, calls)

	w.ScrollTo(Offset{Y: 3000})
	w.Update(now.Add(frameDt))
	assert.Equal(t, 2, calls)

	// Sub-row movement that keeps the row range identical reuses the cache.
	w.ScrollTo(Offset{Y: 3005})
	w.Update(now.Add(2 * frameDt))
	assert.Equal(t, 2, calls, "rows [100, 110) cover both 3000 and 3005")
}

func TestRenderCache_KeyChangeReinvokesOnce(t *testing.T) {
	calls := 0
	w := ShowRows(30, 1000, func(RowRange) Content {
		calls++
		return nil
	}).SetBounds(Rect{0, 0, 200, 300}).CacheKey("rev-1")

	now := time.Unix(0, 0)
	w.Update(now)
	require.Equal(t, 1, calls)

	// Interval unchanged, key changed: exactly one re-invocation.
	w.CacheKey("rev-2")
	w.Update(now.Add(frameDt))
	w.Update(now.Add(2 * frameDt))
	assert.Equal(t, 2, calls)

	// Setting the same key again does not invalidate.
	w.CacheKey("rev-2")
	w.Update(now.Add(3 * frameDt))
	assert.Equal(t, 2, calls)
}

func TestRenderCache_ViewportModeCaches(t *testing.T) {
	calls := 0
	var lastRect Rect
	w := ShowViewport(Size{2000, 2000}, func(r Rect) Content {
		calls++
		lastRect = r
		return nil
	}).Both().SetBounds(Rect{0, 0, 400, 300})

	now := time.Unix(0, 0)
	w.Update(now)
	require.Equal(t, 1, calls)
	assert.Equal(t, Rect{0, 0, 400, 300}, lastRect)

	w.Update(now.Add(frameDt))
	assert.Equal(t, 1, calls)

	w.ScrollTo(Offset{X: 100, Y: 50})
	w.Update(now.Add(2 * frameDt))
	assert.Equal(t, 2, calls)
	assert.Equal(t, Rect{100, 50, 400, 300}, lastRect)
}

func TestRenderCache_CallbackReceivesClampedInterval(t *testing.T) {
	var got RowRange
	w := ShowRows(30, 100000, func(r RowRange) Content {
		got = r
		return nil
	}).SetBounds(Rect{0, 0, 200, 300})

	w.ScrollTo(Offset{Y: 3000})
	w.Update(time.Unix(0, 0))
	assert.Equal(t, RowRange{100, 110}, got)
}
