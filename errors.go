package funcy

import (
	"errors"
	"fmt"
)

// Sentinel errors for scanning and rendering.
var (
	// ErrMalformedMarker indicates a start token with no closing
	// delimiter, or a marker with an empty name.
	ErrMalformedMarker = errors.New("malformed placeholder marker")

	// ErrUnknownPlaceholder indicates a placeholder whose name has no
	// registered handler.
	ErrUnknownPlaceholder = errors.New("unknown placeholder")
)

// RenderError wraps a scan or render failure with the placeholder it
// occurred at. Name is empty for scan errors, which happen before a
// name is known.
type RenderError struct {
	Name string // placeholder name, if known
	Pos  int    // byte offset in the template
	Err  error  // underlying error
}

// Error implements the error interface.
func (e *RenderError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("placeholder %q at offset %d: %v", e.Name, e.Pos, e.Err)
	}
	return fmt.Sprintf("offset %d: %v", e.Pos, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *RenderError) Unwrap() error {
	return e.Err
}
