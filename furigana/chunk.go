package furigana

import (
	"rubyalign/kana"
	"rubyalign/model"
)

type runClass int

const (
	classText runClass = iota
	classHiragana
	classKatakana
)

func classify(r rune) runClass {
	switch {
	case kana.IsHiragana(r):
		return classHiragana
	case kana.IsKatakana(r):
		return classKatakana
	default:
		return classText
	}
}

// Chunk splits title into maximal runs of hiragana, of katakana (with the
// long-vowel mark), and of everything else. Concatenating the Raw fields of
// the result gives back title.
func Chunk(title string) []model.Chunk {
	var chunks []model.Chunk
	start := 0
	cur := classText
	for i, r := range title {
		c := classify(r)
		if i > start && c != cur {
			chunks = append(chunks, newChunk(title[start:i], cur))
			start = i
		}
		cur = c
	}
	if start < len(title) {
		chunks = append(chunks, newChunk(title[start:], cur))
	}
	return chunks
}

func newChunk(raw string, c runClass) model.Chunk {
	if c == classText {
		return model.Chunk{Kind: model.Text, Raw: raw}
	}
	return model.Chunk{Kind: model.Anchor, Raw: raw, Normalized: kana.FoldHiragana(raw)}
}

// anchorsOf returns the normalized form of every anchor chunk in order.
func anchorsOf(chunks []model.Chunk) []string {
	var anchors []string
	for _, c := range chunks {
		if c.Kind == model.Anchor {
			anchors = append(anchors, c.Normalized)
		}
	}
	return anchors
}
