package path

import (
	"strings"
)

// tokenize splits a pathname string into raw segments. Slashes only
// act as separators if they are neither quoted nor escaped. Quotes and
// backslashes are retained in the segments, so that the original
// string can be reconstructed.
//
// Tokenization never fails. An unterminated quote or a trailing
// backslash simply causes the remainder of the string to become part
// of the final segment.
func tokenize(s string) []string {
	var segments []string
	quoted, escaping := false, false

	// A nil segment means that no segment has been started yet. This
	// prevents a leading slash from yielding an empty segment, while
	// "//x" and "a//b" still yield one between both slashes.
	var segment *strings.Builder
	read := func(r rune) {
		if segment == nil {
			segment = &strings.Builder{}
		}
		segment.WriteRune(r)
	}

	for _, r := range s {
		if escaping {
			read(r)
			escaping = false
			continue
		}
		switch r {
		case '/':
			if quoted {
				read(r)
			} else {
				if segment != nil {
					segments = append(segments, segment.String())
				}
				segment = &strings.Builder{}
			}
		case '\'', '"':
			// Any kind of quote terminates a quoted region.
			quoted = !quoted
			read(r)
		case '\\':
			if !quoted {
				escaping = true
			}
			read(r)
		default:
			read(r)
		}
	}

	if segment != nil && segment.Len() > 0 {
		segments = append(segments, segment.String())
	}
	return segments
}
