// Package tokenize derives a hiragana reading for Japanese text with the
// kagome morphological analyzer. The alignment engine never calls it; it
// supplies a reading when the caller has none.
package tokenize

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ikawaha/kagome-dict/dict"
	"github.com/ikawaha/kagome-dict/ipa"
	"github.com/ikawaha/kagome-dict/uni"
	"github.com/ikawaha/kagome/v2/tokenizer"

	"rubyalign/kana"
	"rubyalign/model"
)

// DictName selects the system dictionary kagome analyzes with.
type DictName string

const (
	DictIPA DictName = "ipa"
	DictUni DictName = "uni"
)

// ErrUnknownDict is returned by New for a dictionary name it does not know.
var ErrUnknownDict = errors.New("tokenize: unknown dictionary")

// Token represents a token / morpheme produced by the tokenizer.
type Token = model.Token

// Tokenizer wraps a kagome tokenizer. It is safe for concurrent use.
type Tokenizer struct {
	kg   *tokenizer.Tokenizer
	name DictName
}

func loadDict(name DictName) (*dict.Dict, error) {
	switch name {
	case DictIPA, "":
		return ipa.Dict(), nil
	case DictUni:
		return uni.Dict(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDict, name)
	}
}

// New loads the named dictionary and builds a tokenizer that omits BOS/EOS.
// An empty name selects ipa.
func New(name DictName) (*Tokenizer, error) {
	d, err := loadDict(name)
	if err != nil {
		return nil, err
	}
	kg, err := tokenizer.New(d, tokenizer.OmitBosEos())
	if err != nil {
		return nil, fmt.Errorf("tokenize: build tokenizer: %w", err)
	}
	if name == "" {
		name = DictIPA
	}
	return &Tokenizer{kg: kg, name: name}, nil
}

// Dict reports which dictionary the tokenizer was built with.
func (t *Tokenizer) Dict() DictName {
	return t.name
}

// Tokenize splits text into morphemes in normal mode.
func (t *Tokenizer) Tokenize(ctx context.Context, text string) ([]Token, error) {
	if text == "" {
		return nil, nil
	}
	ktoks := t.kg.Tokenize(text)
	out := make([]Token, 0, len(ktoks))
	for _, kt := range ktoks {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if kt.Class == tokenizer.DUMMY {
			continue
		}
		out = append(out, convert(kt))
	}
	return out, nil
}

// Reading returns the hiragana reading of text: each token's dictionary
// reading, or its own surface when the dictionary has none.
func (t *Tokenizer) Reading(ctx context.Context, text string) (string, error) {
	toks, err := t.Tokenize(ctx, text)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	for _, tk := range toks {
		if tk.Reading != "" {
			b.WriteString(kana.FoldHiragana(tk.Reading))
			continue
		}
		b.WriteString(kana.FoldHiragana(tk.Text))
	}
	return b.String(), nil
}

func convert(kt tokenizer.Token) Token {
	lemma, ok := kt.BaseForm()
	if !ok || lemma == "*" || lemma == "" {
		lemma = kt.Surface
	}
	reading, ok := kt.Reading()
	if !ok || reading == "*" {
		reading = ""
	}
	pron, ok := kt.Pronunciation()
	if !ok || pron == "*" {
		pron = ""
	}
	return Token{
		Text:    kt.Surface,
		Lemma:   lemma,
		POS:     strings.Join(kt.POS(), ","),
		Start:   kt.Start,
		End:     kt.End,
		Reading: reading,
		Pron:    pron,
		Known:   kt.Class == tokenizer.KNOWN,
	}
}
