// Package funcs provides stock placeholder handlers for funcy templates.
//
// Every constructor returns a funcy.Handler ready to register on a
// Renderer, so common placeholders do not need hand-written closures:
//
//	r := funcy.WithTemplate("Build <!$ counter> at <!$ now 2006-01-02>")
//	r.Handle("counter", funcs.Counter(0))
//	r.Handle("now", funcs.Now(""))
//
// # Handlers
//
//   - Echo() - the argument, verbatim
//   - Static(value) - a fixed string
//   - Counter(start) - stateful incrementing count
//   - Map(values) - argument-keyed table lookup
//   - Env() - environment variable named by the argument
//   - Now(layout) - current time; the argument overrides the layout
//   - Upper(), Lower(), Trim() - argument text shaping
//   - Default(fallback) - the argument, or fallback when empty
//   - Chain(handlers...) - feed each handler's output to the next
//
// Defaults bundles the stateless-argument handlers plus a zero-based
// counter under conventional names for Renderer.AppendHandlers.
//
// # Location
//
// This package is part of the funcy library:
//
//	import "github.com/randalmurphal/funcy/funcs"
package funcs
