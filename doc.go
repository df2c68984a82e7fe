// Package scrollkit provides virtual-scrolling widgets for Ebitengine:
// only the visible interval of a logically larger content area is rendered,
// via a caller-supplied view callback.
//
// Two virtualization strategies are available:
//
//   - ShowRows for uniform-height rows; the callback receives the range of
//     visible row indices.
//   - ShowViewport for arbitrary content; the callback receives the visible
//     rectangle in content coordinates.
//
// Widgets scroll by wheel, by dragging the content (with kinetic momentum
// after release), by dragging the scrollbar handle, or programmatically via
// ScrollTo / ScrollToAnimated, optionally addressed by widget ID through a
// Registry. View results are cached per visible interval and cache key, so
// the callback runs only when the interval or the key changes.
//
// Everything is single-threaded and frame-driven: call HandleInput and
// Update once per frame with the current timestamp, then Draw.
package scrollkit
