package funcy

import (
	"fmt"
	"strings"
)

// startToken opens a placeholder marker. A marker is only recognized when
// the token is followed by at least one whitespace character; a bare
// "<!$x" is ordinary template text.
const startToken = "<!$"

// closeDelim terminates a placeholder marker. There is no escape
// sequence: the first '>' after the start token closes the marker, so
// neither the name nor the argument can contain one.
const closeDelim = '>'

// SegmentKind discriminates the two segment variants.
type SegmentKind int

const (
	// SegmentLiteral is template text copied verbatim into the output.
	SegmentLiteral SegmentKind = iota

	// SegmentPlaceholder is a marker resolved by a registered handler.
	SegmentPlaceholder
)

// Segment is one piece of a scanned template: either literal text or a
// placeholder reference. All string fields are slices of the template
// string, so a Segment is only valid as long as the template it came
// from. Concatenating the Text of every segment in order reconstructs
// the template exactly.
type Segment struct {
	// Kind is the segment variant.
	Kind SegmentKind

	// Text is the raw segment text: the literal run, or the full
	// marker including its delimiters.
	Text string

	// Name is the placeholder name. Empty for literal segments.
	Name string

	// Arg is the raw argument text between the name and the closing
	// delimiter, with the whitespace separating it from the name
	// removed. Empty when the marker closes right after the name.
	Arg string

	// Pos is the byte offset of the segment start in the template.
	Pos int
}

// Scan splits a template into literal and placeholder segments in one
// left-to-right pass.
//
// Marker grammar:
//
//	<!$ name>          placeholder with an empty argument
//	<!$ name argument> placeholder with a verbatim argument
//
// The name is a run of non-whitespace characters. The argument is
// everything between the whitespace after the name and the closing '>',
// kept verbatim (it may contain spaces). A start token with no closing
// delimiter before end of input, or a marker with an empty name, is a
// malformed marker and fails the scan.
func Scan(template string) ([]Segment, error) {
	var segments []Segment

	cursor := 0 // start of pending literal text
	search := 0 // resume point for the next start-token search
	for {
		rel := strings.Index(template[search:], startToken)
		if rel < 0 {
			break
		}
		start := search + rel

		inner := start + len(startToken)
		if inner >= len(template) || !isSpace(template[inner]) {
			// No whitespace after the token: not a marker.
			search = start + 1
			continue
		}

		rel = strings.IndexByte(template[inner:], closeDelim)
		if rel < 0 {
			return nil, &RenderError{
				Pos: start,
				Err: fmt.Errorf("%w: missing closing %q", ErrMalformedMarker, string(closeDelim)),
			}
		}
		end := inner + rel

		name, arg := splitMarker(template[inner:end])
		if name == "" {
			return nil, &RenderError{
				Pos: start,
				Err: fmt.Errorf("%w: empty placeholder name", ErrMalformedMarker),
			}
		}

		if start > cursor {
			segments = append(segments, Segment{
				Kind: SegmentLiteral,
				Text: template[cursor:start],
				Pos:  cursor,
			})
		}
		segments = append(segments, Segment{
			Kind: SegmentPlaceholder,
			Text: template[start : end+1],
			Name: name,
			Arg:  arg,
			Pos:  start,
		})

		cursor = end + 1
		search = cursor
	}

	if cursor < len(template) {
		segments = append(segments, Segment{
			Kind: SegmentLiteral,
			Text: template[cursor:],
			Pos:  cursor,
		})
	}
	return segments, nil
}

// splitMarker splits marker content (the text between the start token
// and the closing delimiter) into name and argument. The argument keeps
// interior and trailing whitespace.
func splitMarker(content string) (name, arg string) {
	i := 0
	for i < len(content) && isSpace(content[i]) {
		i++
	}
	j := i
	for j < len(content) && !isSpace(content[j]) {
		j++
	}
	k := j
	for k < len(content) && isSpace(content[k]) {
		k++
	}
	return content[i:j], content[k:]
}

// isSpace reports whether b is an ASCII whitespace byte.
func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r':
		return true
	}
	return false
}

// ValidName reports whether name satisfies the scanner's name grammar:
// non-empty, no whitespace, and no marker delimiters. Names that fail
// this check can never be produced by Scan, so a handler registered
// under one is unreachable.
func ValidName(name string) bool {
	if name == "" {
		return false
	}
	for i := 0; i < len(name); i++ {
		if isSpace(name[i]) || name[i] == closeDelim {
			return false
		}
	}
	return true
}
