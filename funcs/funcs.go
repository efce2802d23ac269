package funcs

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/randalmurphal/funcy"
)

// Echo returns a handler that replaces the marker with its argument,
// verbatim.
func Echo() funcy.Handler {
	return funcy.HandlerFunc(func(name, arg string) (string, error) {
		return arg, nil
	})
}

// Static returns a handler that always produces the given string and
// ignores the argument.
func Static(value string) funcy.Handler {
	return funcy.HandlerFunc(func(name, arg string) (string, error) {
		return value, nil
	})
}

// Counter returns a stateful handler that increments from start and
// produces the new count on each occurrence. With start 0, a template
// containing three counter markers renders "1", "2", "3".
func Counter(start int) funcy.Handler {
	n := start
	return funcy.HandlerFunc(func(name, arg string) (string, error) {
		n++
		return strconv.Itoa(n), nil
	})
}

// Map returns a handler that looks its argument up in the given table.
// An argument with no entry fails the render.
func Map(values map[string]string) funcy.Handler {
	return funcy.HandlerFunc(func(name, arg string) (string, error) {
		value, ok := values[arg]
		if !ok {
			return "", fmt.Errorf("no value for key %q", arg)
		}
		return value, nil
	})
}

// Env returns a handler that resolves to the environment variable named
// by the argument. An unset variable fails the render; use Chain with
// Default to supply a fallback instead.
func Env() funcy.Handler {
	return funcy.HandlerFunc(func(name, arg string) (string, error) {
		value, ok := os.LookupEnv(arg)
		if !ok {
			return "", fmt.Errorf("environment variable %q not set", arg)
		}
		return value, nil
	})
}

// Now returns a handler that formats the current time. The marker
// argument overrides layout when non-empty; an empty layout defaults to
// time.RFC3339.
func Now(layout string) funcy.Handler {
	if layout == "" {
		layout = time.RFC3339
	}
	return funcy.HandlerFunc(func(name, arg string) (string, error) {
		l := layout
		if arg != "" {
			l = arg
		}
		return time.Now().Format(l), nil
	})
}

// Upper returns a handler that uppercases its argument.
func Upper() funcy.Handler {
	return funcy.HandlerFunc(func(name, arg string) (string, error) {
		return strings.ToUpper(arg), nil
	})
}

// Lower returns a handler that lowercases its argument.
func Lower() funcy.Handler {
	return funcy.HandlerFunc(func(name, arg string) (string, error) {
		return strings.ToLower(arg), nil
	})
}

// Trim returns a handler that removes leading and trailing whitespace
// from its argument.
func Trim() funcy.Handler {
	return funcy.HandlerFunc(func(name, arg string) (string, error) {
		return strings.TrimSpace(arg), nil
	})
}

// Default returns a handler that passes its argument through when
// non-empty and produces fallback otherwise.
func Default(fallback string) funcy.Handler {
	return funcy.HandlerFunc(func(name, arg string) (string, error) {
		if arg == "" {
			return fallback, nil
		}
		return arg, nil
	})
}

// Chain composes handlers within a single marker: the marker's argument
// feeds the first handler, each handler's output becomes the next one's
// argument, and the last output is the replacement. This is per-marker
// composition, not nested marker expansion.
//
// Example:
//
//	r.Handle("shout", funcs.Chain(funcs.Trim(), funcs.Upper()))
//	// "<!$ shout  hello >" renders as "HELLO"
func Chain(handlers ...funcy.Handler) funcy.Handler {
	return funcy.HandlerFunc(func(name, arg string) (string, error) {
		out := arg
		for _, h := range handlers {
			var err error
			out, err = h.Resolve(name, out)
			if err != nil {
				return "", err
			}
		}
		return out, nil
	})
}

// Defaults returns the stock handler set keyed by conventional name:
// echo, env, now, upper, lower, trim, and counter. Every call builds
// fresh handler instances, so counter state is never shared between
// bundles.
//
//	r.AppendHandlers(funcs.Defaults())
func Defaults() map[string]funcy.Handler {
	return map[string]funcy.Handler{
		"echo":    Echo(),
		"env":     Env(),
		"now":     Now(""),
		"upper":   Upper(),
		"lower":   Lower(),
		"trim":    Trim(),
		"counter": Counter(0),
	}
}
