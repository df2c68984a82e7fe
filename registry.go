package scrollkit

import "time"

// Registry maps widget IDs to live Scrollable instances and queues addressed
// scroll commands against them. It is owned by the hosting application; there
// is no package-level registry.
type Registry struct {
	widgets map[string]*Scrollable
	pending []command
}

type command struct {
	id       string
	target   Offset
	relative bool
	animated bool
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{widgets: make(map[string]*Scrollable)}
}

// Register adds a widget under its ID. Widgets without an ID are ignored.
func (r *Registry) Register(s *Scrollable) *Scrollable {
	if s.id != "" {
		r.widgets[s.id] = s
	}
	return s
}

// Unregister removes the widget with the given ID.
func (r *Registry) Unregister(id string) {
	delete(r.widgets, id)
}

// Lookup returns the widget registered under id.
func (r *Registry) Lookup(id string) (*Scrollable, bool) {
	s, ok := r.widgets[id]
	return s, ok
}

// ScrollTo queues an immediate jump to an absolute offset on the named widget.
func (r *Registry) ScrollTo(id string, target Offset) {
	r.pending = append(r.pending, command{id: id, target: target})
}

// ScrollToAnimated queues an animated scroll to an absolute offset on the
// named widget.
func (r *Registry) ScrollToAnimated(id string, target Offset) {
	r.pending = append(r.pending, command{id: id, target: target, animated: true})
}

// SnapTo queues a jump to a relative position in [0, 1] on the named widget.
func (r *Registry) SnapTo(id string, rel Offset) {
	r.pending = append(r.pending, command{id: id, target: rel, relative: true})
}

// Flush executes all queued commands against the registered widgets. Call
// once per frame before updating the widgets. Commands addressed to unknown
// IDs are dropped.
func (r *Registry) Flush(now time.Time) {
	for _, cmd := range r.pending {
		s, ok := r.widgets[cmd.id]
		if !ok {
			continue
		}
		switch {
		case cmd.relative:
			s.SnapTo(cmd.target)
		case cmd.animated:
			s.ScrollToAnimated(cmd.target, now)
		default:
			s.ScrollTo(cmd.target)
		}
	}
	r.pending = r.pending[:0]
}
