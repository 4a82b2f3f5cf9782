// Package kana classifies Japanese syllabary characters and converts between
// katakana, hiragana and romaji. All functions are pure and safe for
// concurrent use.
package kana

import "strings"

const (
	hiraganaFirst = 0x3040
	hiraganaLast  = 0x309F
	katakanaFirst = 0x30A1
	katakanaLast  = 0x30FA
	// foldable katakana stop at ヶ; ヷ..ヺ have no hiragana counterpart
	foldLast = 0x30F6
	foldDiff = 0x60

	// Choonpu is the katakana long-vowel mark.
	Choonpu = 'ー'
)

// IsHiragana reports whether r lies in the hiragana block.
func IsHiragana(r rune) bool {
	return r >= hiraganaFirst && r <= hiraganaLast
}

// IsKatakana reports whether r is a katakana letter or the long-vowel mark.
// The middle dot (U+30FB) and iteration marks are not katakana here.
func IsKatakana(r rune) bool {
	return (r >= katakanaFirst && r <= katakanaLast) || r == Choonpu
}

// IsAnchor reports whether r is kana that reads as itself.
func IsAnchor(r rune) bool {
	return IsHiragana(r) || IsKatakana(r)
}

// ToHiragana maps a katakana codepoint to its hiragana equivalent. Anything
// else, including the long-vowel mark, is returned unchanged.
func ToHiragana(r rune) rune {
	if r >= katakanaFirst && r <= foldLast {
		return r - foldDiff
	}
	return r
}

// FoldHiragana converts every katakana codepoint in s to hiragana.
func FoldHiragana(s string) string {
	return strings.Map(ToHiragana, s)
}
