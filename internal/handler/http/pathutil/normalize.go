package pathutil

import (
	"strings"
)

// IDPlaceholder replaces every identifier-like path segment.
const IDPlaceholder = "{id}"

// NormalizePath maps a concrete request path to a template suitable for use
// as a metric label. Segments that are purely decimal digits or have a UUID /
// hex-with-hyphens shape become IDPlaceholder; all other segments, empty
// segments and the leading slash are kept as they are. Any query string is
// dropped. The result is stable under repeated normalization.
//
// Examples:
//
//	NormalizePath("/todos/42")                                   // "/todos/{id}"
//	NormalizePath("/todos/550e8400-e29b-41d4-a716-446655440000") // "/todos/{id}"
//	NormalizePath("/todos")                                      // "/todos"
//	NormalizePath("/health")                                     // "/health"
//	NormalizePath("/todos/42?verbose=1")                         // "/todos/{id}"
func NormalizePath(path string) string {
	if idx := strings.IndexByte(path, '?'); idx != -1 {
		path = path[:idx]
	}

	segments := strings.Split(path, "/")
	changed := false
	for i, seg := range segments {
		if isNumeric(seg) || isHexWithHyphens(seg) {
			segments[i] = IDPlaceholder
			changed = true
		}
	}
	if !changed {
		return path
	}
	return strings.Join(segments, "/")
}

// isNumeric reports whether seg is a non-empty run of ASCII digits.
func isNumeric(seg string) bool {
	if seg == "" {
		return false
	}
	for i := 0; i < len(seg); i++ {
		if seg[i] < '0' || seg[i] > '9' {
			return false
		}
	}
	return true
}

// isHexWithHyphens reports whether seg looks like a UUID or a similar
// hyphenated hex identifier: at least two hyphen-separated groups of hex
// digits with at least one decimal digit overall. The digit rule keeps
// hyphenated words such as "add-face" intact.
func isHexWithHyphens(seg string) bool {
	if seg == "" || seg[0] == '-' || seg[len(seg)-1] == '-' {
		return false
	}
	hyphens, digits := 0, 0
	prevHyphen := false
	for i := 0; i < len(seg); i++ {
		c := seg[i]
		switch {
		case c == '-':
			if prevHyphen {
				return false
			}
			hyphens++
			prevHyphen = true
			continue
		case c >= '0' && c <= '9':
			digits++
		case (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F'):
		default:
			return false
		}
		prevHyphen = false
	}
	return hyphens > 0 && digits > 0
}
