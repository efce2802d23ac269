// Package funcy is a minimal function-driven template renderer.
//
// A template is plain text containing <!$ name arg> markers. Rendering
// scans the template once, left to right, and replaces each marker with
// the output of the handler registered under its name. There is no
// control flow, no nesting, and no expression language: a placeholder
// is a function call, and everything interesting happens inside the
// handlers the caller supplies.
//
// # Quick Start
//
// Echo a marker's argument:
//
//	r := funcy.WithTemplate("<!$ echo Hello>, World!")
//	r.HandleFunc("echo", func(name, arg string) (string, error) {
//	    return arg, nil
//	})
//	out, _ := r.Render() // "Hello, World!"
//
// Handlers may carry state. They are invoked once per occurrence, in
// template order, so side effects line up with the text:
//
//	n := 0
//	r := funcy.WithTemplate("<!$ counter> <!$ counter> <!$ counter>")
//	r.HandleFunc("counter", func(name, arg string) (string, error) {
//	    n++
//	    return strconv.Itoa(n), nil
//	})
//	out, _ := r.Render() // "1 2 3"
//
// # Subpackages
//
//   - funcs: stock handlers (echo, counters, lookup tables, env, time)
//   - manifest: declarative placeholder sets parsed from YAML or TOML
//
// # Errors
//
// Render returns the template's rendered string or the first error
// encountered: a malformed marker, an unregistered placeholder name, or
// a handler failure. Errors are wrapped in *RenderError carrying the
// placeholder name and byte offset, and match ErrMalformedMarker and
// ErrUnknownPlaceholder through errors.Is. There is no partial output
// and no default substitution; the caller decides whether to fix the
// registry and render again.
package funcy
