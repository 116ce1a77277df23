// SPDX-License-Identifier: MIT
// Copyright (c) 2026 PathKit
// Source: github.com/pathkit/globset

// Package globset matches slash-separated path strings against glob patterns
// and composes pattern sets with union and complement.
//
// The package is intentionally small and generic: it decides membership of a
// relative file path in a derived set, for packaging, syncing, and similar
// include/exclude pipelines. Where the paths come from is the caller's concern;
// globset never touches the filesystem.
//
// Pattern syntax supports four tokens:
//   - "**/" matches zero or more path segments, each followed by a separator
//   - "*" matches zero or more characters within one segment (never "/")
//   - "?" matches exactly one character within one segment
//   - every other character matches itself literally
//
// Matching is anchored (the whole path must match), case-sensitive, and applies
// no path normalization.
//
// Basic flow:
//   - compile a single pattern (`Compile`)
//   - or build a set from patterns (`NewSet`)
//   - compose sets (`NewUnion`, `NewComplement`)
//   - ask for membership (`Matches`) or reduce a path list (`Filter`)
//
// Pattern lists can be parsed from configuration text (`ParsePatterns`), built
// from file-extension lists (`ExtensionPatterns`), and concatenated from several
// sources (`MergePatterns`).
package globset
