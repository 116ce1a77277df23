// SPDX-License-Identifier: MIT
// Copyright (c) 2026 PathKit
// Source: github.com/pathkit/globset

package globset

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Pattern is one compiled glob pattern. It is immutable after Compile and
// safe for unrestricted concurrent use.
type Pattern struct {
	source string
	re     *regexp.Regexp
}

// Compile compiles a glob pattern into a Pattern.
//
// The compiler is permissive and total: every input string compiles to some
// deterministic matcher, malformed glob syntax is never rejected. In
// particular "**" not followed by "/" degrades to plain "*".
func Compile(pattern string) *Pattern {
	var b strings.Builder
	b.Grow(len(pattern) + 8)
	b.WriteByte('^')

	for i := 0; i < len(pattern); i++ {
		c := pattern[i]
		switch c {
		case '*':
			// "**/" crosses segment boundaries, including the zero-segment
			// case: "a/**/b" matches "a/b" as well as "a/x/y/b".
			if i+2 < len(pattern) && pattern[i+1] == '*' && pattern[i+2] == '/' {
				b.WriteString(`(?:[^/]+/)*`)
				i += 2
				continue
			}

			b.WriteString(`[^/]*`)
		case '?':
			b.WriteString(`[^/]`)
		default:
			if c >= utf8.RuneSelf {
				r, size := utf8.DecodeRuneInString(pattern[i:])
				if r == utf8.RuneError && size <= 1 {
					// Invalid bytes decode as the replacement rune during
					// matching; regexp source must stay valid UTF-8.
					b.WriteString(`\x{FFFD}`)
					continue
				}

				b.WriteString(pattern[i : i+size])
				i += size - 1
				continue
			}

			b.WriteString(regexEscapeByte(c))
		}
	}

	b.WriteByte('$')
	return &Pattern{
		source: pattern,
		re:     regexp.MustCompile(b.String()),
	}
}

// Matches reports whether the whole path matches the pattern.
//
// Matching is byte-exact: no case folding, no path normalization.
func (p *Pattern) Matches(path string) bool {
	return p.re.MatchString(path)
}

// Filter returns the sub-sequence of paths matching the pattern, preserving
// input order. A single Pattern is usable anywhere a Set is expected.
func (p *Pattern) Filter(paths []string) []string {
	return filterPaths(p, paths)
}

// Source returns the original pattern string.
func (p *Pattern) Source() string {
	return p.source
}

// String returns the original pattern string.
func (p *Pattern) String() string {
	return p.source
}

// regexEscapeByte escapes one byte for regexp source.
//
// Only "." carries meaning as a glob literal, but escaping the full regexp
// meta set keeps the compiler total for arbitrary input.
func regexEscapeByte(c byte) string {
	switch c {
	case '.', '+', '(', ')', '|', '{', '}', '[', ']', '^', '$', '\\':
		return `\` + string(c)
	default:
		return string(c)
	}
}
