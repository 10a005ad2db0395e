// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package normalizer

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// Result holds the canonical form of a document plus the offset map needed
// to project match positions back onto the original text.
type Result struct {
	// Text is the canonical string: lowercase, diacritics folded to their
	// base letters, C0 control characters replaced by spaces, whitespace
	// runs collapsed to a single space, trimmed.
	Text string

	// offsets[i] is the byte offset in the original text of the character
	// that produced normalized byte i. Monotonically non-decreasing.
	offsets []int

	originalLen int
}

// Normalize produces the canonical form of text along with its offset map.
// Normalization is idempotent: Normalize(r.Text).Text == r.Text.
func Normalize(text string) *Result {
	r := &Result{originalLen: len(text)}
	if text == "" {
		return r
	}

	var b strings.Builder
	b.Grow(len(text))
	offsets := make([]int, 0, len(text))

	pendingSpace := false
	pendingOffset := 0

	for i, ru := range text {
		if isCollapsible(ru) {
			if !pendingSpace {
				pendingSpace = true
				pendingOffset = i
			}
			continue
		}

		if pendingSpace {
			// Leading whitespace is dropped entirely (trim).
			if b.Len() > 0 {
				b.WriteByte(' ')
				offsets = append(offsets, pendingOffset)
			}
			pendingSpace = false
		}

		for _, folded := range foldRune(ru) {
			start := b.Len()
			b.WriteRune(folded)
			for n := start; n < b.Len(); n++ {
				offsets = append(offsets, i)
			}
		}
	}

	r.Text = b.String()
	r.offsets = offsets
	return r
}

// Clean returns only the canonical text, for callers that do not need the
// offset map (the document classifier, test helpers).
func Clean(text string) string {
	return Normalize(text).Text
}

// OriginalOffset maps a byte offset in the normalized text to the byte
// offset of the corresponding character in the original text. Offsets at or
// past the end of the normalized text map to the original length; negative
// offsets map to zero.
func (r *Result) OriginalOffset(normalized int) int {
	if normalized < 0 {
		return 0
	}
	if normalized >= len(r.offsets) {
		return r.originalLen
	}
	return r.offsets[normalized]
}

// OriginalRange maps a normalized [start, end) span onto the original text.
func (r *Result) OriginalRange(start, end int) (int, int) {
	origStart := r.OriginalOffset(start)
	origEnd := r.OriginalOffset(end)
	if origEnd < origStart {
		origEnd = origStart
	}
	return origStart, origEnd
}

// Len returns the byte length of the normalized text.
func (r *Result) Len() int {
	return len(r.Text)
}

// isCollapsible reports whether a rune collapses into the single-space
// class: Unicode whitespace, C0 controls, and DEL.
func isCollapsible(ru rune) bool {
	if ru < 0x20 || ru == 0x7f {
		return true
	}
	return unicode.IsSpace(ru)
}

// foldRune lowercases a rune and strips combining marks from its canonical
// decomposition ("á" → "a", "ç" → "c", "º" → "o"). Runes that do not
// decompose are passed through lowercased, so no non-presentational
// information is lost.
func foldRune(ru rune) []rune {
	if ru < utf8.RuneSelf {
		return []rune{unicode.ToLower(ru)}
	}

	decomposed := norm.NFKD.String(string(ru))
	out := make([]rune, 0, 2)
	for _, d := range decomposed {
		if unicode.Is(unicode.Mn, d) {
			continue
		}
		out = append(out, unicode.ToLower(d))
	}
	if len(out) == 0 {
		// The rune was nothing but combining marks; fold it away.
		return nil
	}
	return out
}
