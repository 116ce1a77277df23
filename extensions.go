// SPDX-License-Identifier: MIT
// Copyright (c) 2026 PathKit
// Source: github.com/pathkit/globset

package globset

import "strings"

// ExtensionPatterns converts an extension list to glob patterns matching
// files with those extensions at any depth.
//
// Accepted extension forms:
//   - "txt"
//   - ".txt"
//   - "*.txt"
//
// Empty values are skipped. Returned patterns take the "**/*.ext" form and
// preserve input order. Extensions are kept byte-exact; matching in this
// package is case-sensitive.
func ExtensionPatterns(exts []string) []string {
	patterns := make([]string, 0, len(exts))
	for _, ext := range exts {
		ext = strings.TrimSpace(ext)
		ext = strings.TrimPrefix(ext, "*.")
		ext = strings.TrimLeft(ext, ".")
		if ext == "" {
			continue
		}

		patterns = append(patterns, "**/*."+ext)
	}

	return patterns
}
