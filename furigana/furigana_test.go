package furigana

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rubyalign/kana"
	"rubyalign/logger"
	"rubyalign/model"
)

func TestResolve(t *testing.T) {
	cases := []struct {
		name    string
		title   string
		reading string
		want    []model.Segment
	}{
		{
			name:    "exception table entry",
			title:   "好き！雪！本気マジック",
			reading: "すきゆきまじまじっく",
			want: []model.Segment{
				{Text: "好", Ruby: "す"},
				{Text: "き！"},
				{Text: "雪", Ruby: "ゆき"},
				{Text: "！"},
				{Text: "本気", Ruby: "まじ"},
				{Text: "マジック"},
			},
		},
		{
			name:    "single kanji",
			title:   "歌",
			reading: "うた",
			want:    []model.Segment{{Text: "歌", Ruby: "うた"}},
		},
		{
			name:    "kana only",
			title:   "ねこ",
			reading: "ねこ",
			want:    []model.Segment{{Text: "ねこ"}},
		},
		{
			name:    "kanji then hiragana",
			title:   "猫ちゃん",
			reading: "ねこちゃん",
			want: []model.Segment{
				{Text: "猫", Ruby: "ねこ"},
				{Text: "ちゃん"},
			},
		},
		{
			name:    "empty title",
			title:   "",
			reading: "abc",
			want:    []model.Segment{{Text: ""}},
		},
		{
			name:    "empty reading",
			title:   "歌",
			reading: "",
			want:    []model.Segment{{Text: "歌"}},
		},
		{
			name:    "anchor missing from reading",
			title:   "猫ちゃん",
			reading: "いぬくん",
			want:    []model.Segment{{Text: "猫ちゃん"}},
		},
		{
			name:    "anchors in the wrong order",
			title:   "あ猫い",
			reading: "いねこあ",
			want:    []model.Segment{{Text: "あ猫い"}},
		},
		{
			name:    "okurigana between kanji",
			title:   "食べ物",
			reading: "たべもの",
			want: []model.Segment{
				{Text: "食", Ruby: "た"},
				{Text: "べ"},
				{Text: "物", Ruby: "もの"},
			},
		},
		{
			name:    "katakana anchor folded for matching",
			title:   "東京タワー",
			reading: "とうきょうたわー",
			want: []model.Segment{
				{Text: "東京", Ruby: "とうきょう"},
				{Text: "タワー"},
			},
		},
		{
			name:    "right-most anchor keeps reading for trailing text",
			title:   "野の花",
			reading: "ののはな",
			want: []model.Segment{
				{Text: "野", Ruby: "の"},
				{Text: "の"},
				{Text: "花", Ruby: "はな"},
			},
		},
		{
			name:    "text with no reading left stays plain",
			title:   "ねこ。",
			reading: "ねこ",
			want: []model.Segment{
				{Text: "ねこ"},
				{Text: "。"},
			},
		},
		{
			name:    "punctuation travels with its kanji",
			title:   "歌！",
			reading: "うた",
			want:    []model.Segment{{Text: "歌！", Ruby: "うた"}},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Resolve(tc.title, tc.reading))
		})
	}
}

func TestResolveProperties(t *testing.T) {
	pairs := [][2]string{
		{"歌", "うた"},
		{"猫ちゃん", "ねこちゃん"},
		{"食べ物", "たべもの"},
		{"東京タワー", "とうきょうたわー"},
		{"野の花", "ののはな"},
		{"君の名は。", "きみのなは"},
		{"千と千尋の神隠し", "せんとちひろのかみかくし"},
	}

	t.Run("Should reconstruct the title and partition the reading", func(t *testing.T) {
		for _, p := range pairs {
			segs := Resolve(p[0], p[1])
			assert.Equal(t, p[0], joinText(segs), "title %q", p[0])
			assert.Equal(t, p[1], joinReading(segs), "reading for %q", p[0])
		}
	})

	t.Run("Should never annotate kana", func(t *testing.T) {
		for _, p := range pairs {
			for _, s := range Resolve(p[0], p[1]) {
				if isKanaOnly(s.Text) {
					assert.False(t, s.HasRuby(), "segment %q in %q", s.Text, p[0])
				}
			}
		}
	})

	t.Run("Should return identical output for identical input", func(t *testing.T) {
		for _, p := range pairs {
			assert.Equal(t, Resolve(p[0], p[1]), Resolve(p[0], p[1]))
		}
	})

	t.Run("Should prefer the exception entry whatever the reading", func(t *testing.T) {
		title := "好き！雪！本気マジック"
		want := Exceptions()[title]

		assert.Equal(t, want, Resolve(title, "でたらめ"))
		assert.Equal(t, want, Resolve(title, "すきゆきまじまじっく"))
	})
}

func TestHeuristicWithoutOverride(t *testing.T) {
	t.Run("Should produce the known wrong split the override exists for", func(t *testing.T) {
		title, reading := "好き！雪！本気マジック", "すきゆきまじまじっく"
		chunks := Chunk(title)

		offsets, err := Align(reading, anchorsOf(chunks))
		require.NoError(t, err)

		got := Build(chunks, reading, offsets)
		assert.Equal(t, []model.Segment{
			{Text: "好", Ruby: "すきゆ"},
			{Text: "き"},
			{Text: "！雪！本気", Ruby: "まじ"},
			{Text: "マジック"},
		}, got)
		assert.NotEqual(t, Exceptions()[title], got)
	})
}

func TestAligner(t *testing.T) {
	t.Run("Should layer extra exceptions over the built-in table", func(t *testing.T) {
		extra := map[string][]model.Segment{
			"野の花": {{Text: "野", Ruby: "や"}, {Text: "の"}, {Text: "花", Ruby: "はな"}},
		}
		a := New(WithExceptions(extra))

		assert.Equal(t, extra["野の花"], a.Resolve("野の花", "ののはな"))
		assert.Equal(t, Exceptions()["好き！雪！本気マジック"], a.Resolve("好き！雪！本気マジック", "x"))
	})

	t.Run("Should not share exception storage with callers", func(t *testing.T) {
		extra := map[string][]model.Segment{"歌": {{Text: "歌", Ruby: "うた"}}}
		a := New(WithExceptions(extra))
		extra["歌"][0].Ruby = "か"

		got := a.Resolve("歌", "whatever")
		got[0].Ruby = "changed"

		again, ok := a.Lookup("歌")
		require.True(t, ok)
		assert.Equal(t, "うた", again[0].Ruby)
	})

	t.Run("Should log fallbacks at debug level", func(t *testing.T) {
		var buf bytes.Buffer
		log := logger.NewLogger(&logger.Config{Level: logger.DebugLevel, Output: &buf})
		a := New(WithLogger(log))

		segs := a.Resolve("猫ちゃん", "いぬ")

		assert.Equal(t, []model.Segment{{Text: "猫ちゃん"}}, segs)
		assert.Contains(t, buf.String(), "falling back")
	})

	t.Run("Should report unknown titles as absent", func(t *testing.T) {
		_, ok := New().Lookup("歌")
		assert.False(t, ok)
	})
}

func TestValidateException(t *testing.T) {
	t.Run("Should accept the built-in entries", func(t *testing.T) {
		for title, segs := range Exceptions() {
			assert.NoError(t, ValidateException(title, segs))
		}
	})

	t.Run("Should reject segments that do not spell the title", func(t *testing.T) {
		err := ValidateException("野の花", []model.Segment{{Text: "野", Ruby: "の"}, {Text: "花"}})
		assert.ErrorIs(t, err, ErrExceptionMismatch)
	})

	t.Run("Should reject ruby on kana", func(t *testing.T) {
		err := ValidateException("ねこ", []model.Segment{{Text: "ねこ", Ruby: "ねこ"}})
		assert.ErrorIs(t, err, ErrExceptionMismatch)
	})

	t.Run("Should reject an empty entry", func(t *testing.T) {
		assert.ErrorIs(t, ValidateException("歌", nil), ErrExceptionMismatch)
	})
}

func FuzzResolve(f *testing.F) {
	f.Add("好き！雪！本気マジック", "すきゆきまじまじっく")
	f.Add("猫ちゃん", "ねこちゃん")
	f.Add("東京タワー", "とうきょうたわー")
	f.Add("ねこネコ", "ねこねこ")
	f.Add("", "abc")
	f.Add("あ猫い", "いねこあ")
	f.Fuzz(func(t *testing.T, title, reading string) {
		segs := Resolve(title, reading)
		if len(segs) == 0 {
			t.Fatal("no segments")
		}
		if got := joinText(segs); got != title {
			t.Fatalf("text %q does not reconstruct title %q", got, title)
		}
		for _, s := range segs {
			if s.HasRuby() && isKanaOnly(s.Text) {
				t.Fatalf("kana segment %q carries ruby %q", s.Text, s.Ruby)
			}
		}
		if _, ok := builtinExceptions[title]; !ok && len(joinReading(segs)) > len(reading) && len(segs) > 1 {
			t.Fatalf("segments consume more than the reading: %v", segs)
		}
	})
}

func joinText(segs []model.Segment) string {
	var b strings.Builder
	for _, s := range segs {
		b.WriteString(s.Text)
	}
	return b.String()
}

// joinReading rebuilds the reading from ruby on text and the folded kana of
// anchor segments.
func joinReading(segs []model.Segment) string {
	var b strings.Builder
	for _, s := range segs {
		if isKanaOnly(s.Text) {
			b.WriteString(kana.FoldHiragana(s.Text))
			continue
		}
		b.WriteString(s.Ruby)
	}
	return b.String()
}
