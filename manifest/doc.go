// Package manifest parses declarative placeholder-set documents.
//
// A manifest pairs placeholder names with replacement sources — a
// static value, an argument-keyed map, or a stock handler from the
// funcs package — so a template's vocabulary can be described in YAML
// or TOML next to the template instead of being wired up in code. The
// package only ever consumes bytes; reading documents from disk or
// anywhere else is the caller's business.
//
// # Example
//
//	doc := []byte(`
//	name: greeting
//	placeholders:
//	  - name: who
//	    value: World
//	  - name: echo
//	    builtin: echo
//	`)
//
//	m, err := manifest.Parse(doc)
//	if err != nil {
//	    return err
//	}
//	handlers, err := m.Handlers()
//	if err != nil {
//	    return err
//	}
//
//	r := funcy.WithTemplate("<!$ echo Hello>, <!$ who>!")
//	r.AppendHandlers(handlers)
//	out, _ := r.Render() // "Hello, World!"
//
// TOML documents go through ParseTOML; both formats share one schema,
// available as JSON via Schema.
//
// # Location
//
// This package is part of the funcy library:
//
//	import "github.com/randalmurphal/funcy/manifest"
package manifest
