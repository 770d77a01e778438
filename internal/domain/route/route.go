// Package route classifies request paths for the session guard.
package route

import "strings"

// Class is the guard category of a request path.
type Class string

const (
	// Unclassified paths are passed through without inspecting the credential.
	Unclassified Class = "unclassified"
	// AuthPage is the public login/registration page.
	AuthPage Class = "auth_page"
	// Protected pages require a valid session credential.
	Protected Class = "protected"
)

// Well-known paths.
const (
	AuthPath      = "/auth"
	DashboardPath = "/dashboard"
)

const paramSegment = "{id}"

type entry struct {
	pattern  string
	segments []string
	class    Class
}

// table is matched exactly; a {id} segment matches one non-empty path segment.
var table = newTable(
	[]string{AuthPath},
	[]string{
		DashboardPath,
		"/dashboard/profile",
		"/dashboard/haircuts",
		"/dashboard/haircuts/new",
		"/dashboard/haircuts/" + paramSegment,
		"/dashboard/new-schedule",
		"/dashboard/profile/change-plan",
	},
)

func newTable(authPages, protected []string) []entry {
	out := make([]entry, 0, len(authPages)+len(protected))
	add := func(patterns []string, class Class) {
		for _, p := range patterns {
			out = append(out, entry{pattern: p, segments: split(p), class: class})
		}
	}
	add(authPages, AuthPage)
	add(protected, Protected)
	return out
}

// Classify returns the guard category for path.
// Literal entries take precedence over parameterized ones, so
// /dashboard/haircuts/new is never treated as a haircut id.
func Classify(path string) Class {
	if e, ok := lookup(path); ok {
		return e.class
	}
	return Unclassified
}

// Pattern returns the table pattern matching path, or "" when unclassified.
// It is used as a low-cardinality metrics tag.
func Pattern(path string) string {
	if e, ok := lookup(path); ok {
		return e.pattern
	}
	return ""
}

// InScope reports whether the session guard intercepts path at all:
// /dashboard, anything below it, and exactly /auth.
func InScope(path string) bool {
	if path == AuthPath || path == DashboardPath {
		return true
	}
	return strings.HasPrefix(path, DashboardPath+"/")
}

func lookup(path string) (entry, bool) {
	segs := split(path)
	var param *entry
	for i := range table {
		e := &table[i]
		switch matchSegments(e.segments, segs) {
		case matchLiteral:
			return *e, true
		case matchParam:
			if param == nil {
				param = e
			}
		}
	}
	if param != nil {
		return *param, true
	}
	return entry{}, false
}

type matchKind int

const (
	matchNone matchKind = iota
	matchLiteral
	matchParam
)

func matchSegments(pattern, segs []string) matchKind {
	if len(pattern) != len(segs) {
		return matchNone
	}
	kind := matchLiteral
	for i, p := range pattern {
		if p == paramSegment {
			if segs[i] == "" {
				return matchNone
			}
			kind = matchParam
			continue
		}
		if p != segs[i] {
			return matchNone
		}
	}
	return kind
}

// split breaks an absolute path into its segments. "/" and "" yield no segments;
// empty segments (trailing or doubled slashes) are kept so they never match.
func split(path string) []string {
	path = strings.TrimPrefix(path, "/")
	if path == "" {
		return nil
	}
	return strings.Split(path, "/")
}
