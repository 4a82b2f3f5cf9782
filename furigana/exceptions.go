package furigana

import (
	"errors"
	"fmt"
	"strings"

	"rubyalign/kana"
	"rubyalign/model"
)

// ErrExceptionMismatch reports an override whose segments do not spell out
// its title, or that puts ruby on kana.
var ErrExceptionMismatch = errors.New("furigana: exception segments do not match title")

// builtinExceptions holds titles where the positional heuristic produces a
// valid but wrong split. Entries are returned verbatim.
var builtinExceptions = map[string][]model.Segment{
	"好き！雪！本気マジック": {
		{Text: "好", Ruby: "す"},
		{Text: "き！"},
		{Text: "雪", Ruby: "ゆき"},
		{Text: "！"},
		{Text: "本気", Ruby: "まじ"},
		{Text: "マジック"},
	},
}

// Exceptions returns a copy of the built-in override table.
func Exceptions() map[string][]model.Segment {
	out := make(map[string][]model.Segment, len(builtinExceptions))
	for title, segs := range builtinExceptions {
		out[title] = cloneSegments(segs)
	}
	return out
}

// ValidateException checks that segs spell out title exactly and that no
// kana-only segment carries ruby.
func ValidateException(title string, segs []model.Segment) error {
	if len(segs) == 0 {
		return fmt.Errorf("%w: %q has no segments", ErrExceptionMismatch, title)
	}
	var b strings.Builder
	for _, s := range segs {
		b.WriteString(s.Text)
		if s.HasRuby() && isKanaOnly(s.Text) {
			return fmt.Errorf("%w: %q carries ruby %q on kana", ErrExceptionMismatch, s.Text, s.Ruby)
		}
	}
	if got := b.String(); got != title {
		return fmt.Errorf("%w: segments spell %q, want %q", ErrExceptionMismatch, got, title)
	}
	return nil
}

func isKanaOnly(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !kana.IsAnchor(r) {
			return false
		}
	}
	return true
}

func cloneSegments(segs []model.Segment) []model.Segment {
	out := make([]model.Segment, len(segs))
	copy(out, segs)
	return out
}
