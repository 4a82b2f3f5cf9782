package model

// Segment is one display unit of a title. Ruby is empty when the text is
// rendered plainly.
type Segment struct {
	Text string `json:"text"`
	Ruby string `json:"ruby,omitempty"`
}

// HasRuby reports whether the segment carries a phonetic annotation.
func (s Segment) HasRuby() bool {
	return s.Ruby != ""
}

// ChunkKind distinguishes kana runs from everything else in a title.
type ChunkKind int

const (
	// Text is a maximal run of non-kana characters: kanji, Latin, digits, punctuation.
	Text ChunkKind = iota
	// Anchor is a maximal run of hiragana, or of katakana and the long-vowel mark.
	Anchor
)

func (k ChunkKind) String() string {
	switch k {
	case Anchor:
		return "anchor"
	case Text:
		return "text"
	default:
		return "unknown"
	}
}

// MarshalText renders the kind by name in JSON output.
func (k ChunkKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Chunk is a typed slice of a title. Normalized is only set for Anchor chunks
// and holds the hiragana form of Raw.
type Chunk struct {
	Kind       ChunkKind `json:"kind"`
	Raw        string    `json:"raw"`
	Normalized string    `json:"normalized,omitempty"`
}

// Token represents a token / morpheme produced by the tokenizer.
type Token struct {
	Text    string `json:"text"`
	Lemma   string `json:"lemma,omitempty"`
	POS     string `json:"pos,omitempty"`
	Start   int    `json:"start"`
	End     int    `json:"end"`
	Reading string `json:"reading,omitempty"`
	Pron    string `json:"pronunciation,omitempty"`
	Known   bool   `json:"known"`
}
