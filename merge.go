// SPDX-License-Identifier: MIT
// Copyright (c) 2026 PathKit
// Source: github.com/pathkit/globset

package globset

// MergePatterns merges pattern slices preserving input order.
func MergePatterns(patternSets ...[]string) []string {
	total := 0
	for _, set := range patternSets {
		total += len(set)
	}

	out := make([]string, 0, total)
	for _, set := range patternSets {
		out = append(out, set...)
	}

	return out
}
