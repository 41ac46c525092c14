// Package pyimports extracts the module names referenced by import
// statements in Python source text.
//
// Recognition is a line-anchored pattern match, not a grammar parse:
// each physical line is evaluated independently, and statements the
// pattern cannot express (comma lists, parenthesized import lists,
// indented or conditional imports, backslash continuations) are
// silently skipped. That trade-off keeps extraction a single linear
// pass over the text.
package pyimports

import (
	"regexp"
	"strings"
)

// importLine recognizes exactly two statement shapes, anchored at the
// start of the line and consuming it entirely:
//
//	import a.b.c [as x]
//	from a.b import c [as x]
//
// Group 1 captures the "from" target, group 2 the plain import target.
var importLine = regexp.MustCompile(
	`^(?:from[ \t]+([\w.]+)[ \t]+import[ \t]+[\w.]+|import[ \t]+([\w.]+))(?:[ \t]+as[ \t]+\w+)?[ \t]*$`)

// MatchLine reports the module name referenced by a single physical
// line. The second return value is false when the line is not a
// recognized import statement. When both capture groups are non-empty
// the "from" target wins; the pattern cannot structurally produce that
// state, but the precedence is kept explicit rather than re-derived.
func MatchLine(line string) (string, bool) {
	m := importLine.FindStringSubmatch(line)
	if m == nil {
		return "", false
	}

	if m[1] != "" {
		return m[1], true
	}

	if m[2] != "" {
		return m[2], true
	}

	return "", false
}

// Extract returns the module names referenced by import statements in
// src, in line order. Text with no recognizable import lines yields an
// empty (non-nil) slice. Extraction is a pure function of src.
func Extract(src string) []string {
	names := make([]string, 0)

	for _, line := range strings.Split(src, "\n") {
		// Tolerate CRLF sources; the pattern is LF-oriented.
		line = strings.TrimSuffix(line, "\r")

		name, ok := MatchLine(line)
		if ok {
			names = append(names, name)
		}
	}

	return names
}
