package funcy

import (
	"sort"
	"strings"
)

// Handler resolves one placeholder occurrence to its replacement text.
// The name is the placeholder name as it appeared in the marker, so a
// single handler registered under several names can tell them apart.
// An error returned from Resolve aborts the render and is surfaced to
// the caller wrapped with the placeholder name and position.
//
// Handlers may carry mutable state: a handler is invoked once per
// occurrence of its name, in template order, within one call to Render.
type Handler interface {
	Resolve(name, arg string) (string, error)
}

// HandlerFunc adapts an ordinary function to the Handler interface.
//
// Example:
//
//	r.Handle("echo", funcy.HandlerFunc(func(name, arg string) (string, error) {
//	    return arg, nil
//	}))
type HandlerFunc func(name, arg string) (string, error)

// Resolve calls f(name, arg).
func (f HandlerFunc) Resolve(name, arg string) (string, error) {
	return f(name, arg)
}

// Renderer renders templates containing <!$ name arg> markers by
// dispatching each marker to a handler registered under its name.
//
// A Renderer owns its template, its segment cache, and its handler
// registry. It is not safe for concurrent use: handlers carry mutable
// state that Render touches without locking, so a Renderer belongs to
// one goroutine at a time.
type Renderer struct {
	template string
	segments []Segment
	scanErr  error
	handlers map[string]Handler
}

// New creates a Renderer with an empty template and no handlers.
func New() *Renderer {
	return &Renderer{handlers: make(map[string]Handler)}
}

// WithTemplate creates a Renderer over the given template. The template
// is scanned immediately; a malformed marker is reported by the next
// call to Render.
func WithTemplate(template string) *Renderer {
	r := New()
	r.SetTemplate(template)
	return r
}

// SetTemplate replaces the renderer's template and rescans it. Handler
// registrations are kept, which allows re-rendering related templates
// against one stateful handler set.
func (r *Renderer) SetTemplate(template string) {
	r.template = template
	r.segments, r.scanErr = Scan(template)
}

// Template returns the current template text.
func (r *Renderer) Template() string {
	return r.template
}

// Handle registers h for the given placeholder name, silently replacing
// any previous registration. Lookup at render time is by exact,
// case-sensitive match.
func (r *Renderer) Handle(name string, h Handler) {
	r.handlers[name] = h
}

// HandleFunc registers an ordinary function for the given name.
func (r *Renderer) HandleFunc(name string, f func(name, arg string) (string, error)) {
	r.Handle(name, HandlerFunc(f))
}

// AppendHandlers merges the given handlers into the registry, replacing
// entries whose names collide.
func (r *Renderer) AppendHandlers(handlers map[string]Handler) {
	for name, h := range handlers {
		r.handlers[name] = h
	}
}

// SetHandlers discards the registry and replaces it with the given
// handlers. The map is copied, so later mutation of the argument does
// not affect the renderer.
func (r *Renderer) SetHandlers(handlers map[string]Handler) {
	r.handlers = make(map[string]Handler, len(handlers))
	for name, h := range handlers {
		r.handlers[name] = h
	}
}

// Handlers returns the registered placeholder names, sorted for
// consistent ordering.
func (r *Renderer) Handlers() []string {
	names := make([]string, 0, len(r.handlers))
	for name := range r.handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Render walks the template's segments in textual order, copying
// literal text and substituting each placeholder with its handler's
// output. It returns the fully substituted string, or the first error
// encountered: a malformed marker held from scanning, an unregistered
// placeholder name, or a handler failure. On error no partial output is
// returned.
func (r *Renderer) Render() (string, error) {
	if r.scanErr != nil {
		return "", r.scanErr
	}

	var out strings.Builder
	out.Grow(len(r.template))
	for _, seg := range r.segments {
		if seg.Kind == SegmentLiteral {
			out.WriteString(seg.Text)
			continue
		}

		h, ok := r.handlers[seg.Name]
		if !ok {
			return "", &RenderError{Name: seg.Name, Pos: seg.Pos, Err: ErrUnknownPlaceholder}
		}
		replacement, err := h.Resolve(seg.Name, seg.Arg)
		if err != nil {
			return "", &RenderError{Name: seg.Name, Pos: seg.Pos, Err: err}
		}
		out.WriteString(replacement)
	}
	return out.String(), nil
}
