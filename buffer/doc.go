// Package buffer implements the in-memory document model: an ordered list of
// rows of Unicode text with per-character highlight state.
//
// Positions are 0-based (X, Y) where X counts grapheme clusters within row Y.
// Highlight state is indexed by rune; Row.RuneOffset maps a grapheme column to
// the rune index of that cluster's first rune.
package buffer
