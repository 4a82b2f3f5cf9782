package kana

import "strings"

var basicRomaji = map[rune]string{
	'あ': "a", 'い': "i", 'う': "u", 'え': "e", 'お': "o",
	'か': "ka", 'き': "ki", 'く': "ku", 'け': "ke", 'こ': "ko",
	'さ': "sa", 'し': "shi", 'す': "su", 'せ': "se", 'そ': "so",
	'た': "ta", 'ち': "chi", 'つ': "tsu", 'て': "te", 'と': "to",
	'な': "na", 'に': "ni", 'ぬ': "nu", 'ね': "ne", 'の': "no",
	'は': "ha", 'ひ': "hi", 'ふ': "fu", 'へ': "he", 'ほ': "ho",
	'ま': "ma", 'み': "mi", 'む': "mu", 'め': "me", 'も': "mo",
	'や': "ya", 'ゆ': "yu", 'よ': "yo",
	'ら': "ra", 'り': "ri", 'る': "ru", 'れ': "re", 'ろ': "ro",
	'わ': "wa", 'を': "o", 'ん': "n",
	'が': "ga", 'ぎ': "gi", 'ぐ': "gu", 'げ': "ge", 'ご': "go",
	'ざ': "za", 'じ': "ji", 'ず': "zu", 'ぜ': "ze", 'ぞ': "zo",
	'だ': "da", 'ぢ': "ji", 'づ': "zu", 'で': "de", 'ど': "do",
	'ば': "ba", 'び': "bi", 'ぶ': "bu", 'べ': "be", 'ぼ': "bo",
	'ぱ': "pa", 'ぴ': "pi", 'ぷ': "pu", 'ぺ': "pe", 'ぽ': "po",
	'ぁ': "a", 'ぃ': "i", 'ぅ': "u", 'ぇ': "e", 'ぉ': "o",
	'ゃ': "ya", 'ゅ': "yu", 'ょ': "yo",
	Choonpu: "-",
}

// youon digraphs: a consonant kana followed by a small ya/yu/yo
var compoundRomaji = map[string]string{
	"きゃ": "kya", "きゅ": "kyu", "きょ": "kyo",
	"しゃ": "sha", "しゅ": "shu", "しょ": "sho",
	"ちゃ": "cha", "ちゅ": "chu", "ちょ": "cho",
	"にゃ": "nya", "にゅ": "nyu", "にょ": "nyo",
	"ひゃ": "hya", "ひゅ": "hyu", "ひょ": "hyo",
	"みゃ": "mya", "みゅ": "myu", "みょ": "myo",
	"りゃ": "rya", "りゅ": "ryu", "りょ": "ryo",
	"ぎゃ": "gya", "ぎゅ": "gyu", "ぎょ": "gyo",
	"じゃ": "ja", "じゅ": "ju", "じょ": "jo",
	"ぢゃ": "ja", "ぢゅ": "ju", "ぢょ": "jo",
	"びゃ": "bya", "びゅ": "byu", "びょ": "byo",
	"ぴゃ": "pya", "ぴゅ": "pyu", "ぴょ": "pyo",
}

const sokuon = 'っ'

// ToRomaji transliterates kana to Hepburn-style romaji. Katakana is folded to
// hiragana first. A small tsu doubles the first letter of the next syllable
// and is kept as-is when nothing romanizable follows it. Characters without a
// mapping are copied through.
func ToRomaji(s string) string {
	if s == "" {
		return ""
	}
	runes := []rune(FoldHiragana(s))
	var b strings.Builder
	b.Grow(len(runes) * 2)

	for i := 0; i < len(runes); {
		if syl, n := syllable(runes[i:]); n > 0 {
			b.WriteString(syl)
			i += n
			continue
		}
		if runes[i] == sokuon {
			if next, n := syllable(runes[i+1:]); n > 0 {
				b.WriteByte(next[0])
				i++
				continue
			}
		}
		b.WriteRune(runes[i])
		i++
	}
	return b.String()
}

// syllable returns the romaji for the digraph or single kana at the start of
// rs and how many runes it consumed. A zero count means no mapping applies.
func syllable(rs []rune) (string, int) {
	if len(rs) >= 2 {
		if r, ok := compoundRomaji[string(rs[:2])]; ok {
			return r, 2
		}
	}
	if len(rs) >= 1 {
		if r, ok := basicRomaji[rs[0]]; ok {
			return r, 1
		}
	}
	return "", 0
}
