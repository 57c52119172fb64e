// Package lsjson turns the framework's non-standard, JSON-like lsdata and
// lsevents attribute strings into standard JSON (spec.md §4.2), then
// offers a small helper layer for decoding the result into per-kind
// field maps keyed by the numbered schema each element kind declares.
package lsjson

import (
	"regexp"
)

var (
	bareKeyRe    = regexp.MustCompile(`([{,\[])(\w+):`)
	singleQuoted = regexp.MustCompile(`([^\\])'([^']*)'`)
	hexByteRe    = regexp.MustCompile(`\\x([0-9a-fA-F]{2})`)
)

// Normalize runs the three-step pre-processor from spec.md §4.2 and
// returns text a standards-conformant JSON parser accepts (or the input
// was malformed, in which case the caller's json.Unmarshal call fails and
// the element decodes to its defaults per spec.md §7).
func Normalize(raw string) string {
	s := raw
	s = bareKeyRe.ReplaceAllString(s, `$1"$2":`)
	s = singleQuoted.ReplaceAllString(s, `$1"$2"`)
	s = hexByteRe.ReplaceAllString(s, `\u00$1`)
	return s
}
