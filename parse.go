// SPDX-License-Identifier: MIT
// Copyright (c) 2026 PathKit
// Source: github.com/pathkit/globset

package globset

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ParsePatterns parses newline-separated glob patterns from reader.
//
// Semantics:
// - blank lines and "#" comments are ignored
// - "\#" escapes a literal leading hash
// - trailing spaces are trimmed unless escaped by "\"
func ParsePatterns(r io.Reader) ([]string, error) {
	s := bufio.NewScanner(r)
	patterns := make([]string, 0, 16)

	for s.Scan() {
		line := strings.TrimRight(s.Text(), "\r")
		if line == "" {
			continue
		}

		line = trimTrailingSpaces(line)
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, "#") {
			continue
		}

		if strings.HasPrefix(line, `\#`) {
			line = line[1:]
		}

		patterns = append(patterns, line)
	}

	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("scan patterns: %w", err)
	}

	return patterns, nil
}

// ParsePatternsString parses patterns from string input.
func ParsePatternsString(src string) ([]string, error) {
	return ParsePatterns(strings.NewReader(src))
}

// trimTrailingSpaces removes trailing spaces unless escaped by "\".
func trimTrailingSpaces(s string) string {
	for len(s) > 0 && (s[len(s)-1] == ' ' || s[len(s)-1] == '\t') {
		if len(s) >= 2 && s[len(s)-2] == '\\' {
			s = s[:len(s)-2] + s[len(s)-1:]
			break
		}

		s = s[:len(s)-1]
	}

	return s
}
