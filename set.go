// SPDX-License-Identifier: MIT
// Copyright (c) 2026 PathKit
// Source: github.com/pathkit/globset

package globset

// Set answers membership of a path in a derived set of paths.
//
// Every implementation keeps Matches and Filter consistent: Filter returns
// exactly the elements for which Matches is true, in input order. All sets
// built by this package are immutable after construction and safe for
// unrestricted concurrent use.
type Set interface {
	// Matches reports whether path belongs to the set.
	Matches(path string) bool
	// Filter returns the matching sub-sequence of paths in input order.
	Filter(paths []string) []string
}

// Empty is the identity set: it matches nothing.
var Empty Set = emptySet{}

// emptySet holds no patterns and rejects every path.
type emptySet struct{}

func (emptySet) Matches(string) bool { return false }

func (emptySet) Filter([]string) []string { return []string{} }

// patternList matches when any of its compiled patterns matches.
type patternList struct {
	patterns []*Pattern
}

func (s patternList) Matches(path string) bool {
	for _, p := range s.patterns {
		if p.Matches(path) {
			return true
		}
	}

	return false
}

func (s patternList) Filter(paths []string) []string {
	return filterPaths(s, paths)
}

// union matches when any child set matches.
type union struct {
	sets []Set
}

func (s union) Matches(path string) bool {
	for _, child := range s.sets {
		if child.Matches(path) {
			return true
		}
	}

	return false
}

func (s union) Filter(paths []string) []string {
	return filterPaths(s, paths)
}

// complement matches paths in include that are not in exclude.
type complement struct {
	include Set
	exclude Set
}

func (s complement) Matches(path string) bool {
	return s.include.Matches(path) && !s.exclude.Matches(path)
}

func (s complement) Filter(paths []string) []string {
	return filterPaths(s, paths)
}

// NewSet compiles glob patterns into a set matching any of them.
//
// With no patterns it returns Empty. A value that is already a Set needs no
// wrapping; pass it to NewUnion or NewComplement directly.
func NewSet(patterns ...string) Set {
	if len(patterns) == 0 {
		return Empty
	}

	compiled := make([]*Pattern, 0, len(patterns))
	for _, pattern := range patterns {
		compiled = append(compiled, Compile(pattern))
	}

	return patternList{patterns: compiled}
}

// NewUnion builds the union of the given sets. Nil children count as Empty;
// already-built sets are used as-is, any nesting depth is allowed.
func NewUnion(sets ...Set) Set {
	children := make([]Set, 0, len(sets))
	for _, s := range sets {
		children = append(children, normalizeSet(s))
	}

	return union{sets: children}
}

// NewComplement builds the set difference include minus exclude. Either side
// may be nil, which counts as Empty.
func NewComplement(include, exclude Set) Set {
	return complement{
		include: normalizeSet(include),
		exclude: normalizeSet(exclude),
	}
}

// normalizeSet maps nil to Empty and keeps built sets unchanged.
func normalizeSet(s Set) Set {
	if s == nil {
		return Empty
	}

	return s
}

// filterPaths is the shared Filter implementation derived from Matches.
func filterPaths(s Set, paths []string) []string {
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		if s.Matches(p) {
			out = append(out, p)
		}
	}

	return out
}
