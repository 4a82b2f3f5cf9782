// Package furigana aligns a hiragana reading against a display title and
// splits the title into segments annotated with ruby.
//
// Kana runs in the title read as themselves, so they are located in the
// reading and used as anchors; whatever reading lies between two anchors
// belongs to the non-kana text between them. Anchors are placed back to
// front at their right-most possible occurrence. When no placement exists
// the whole title is returned as a single plain segment. Titles known to be
// split wrongly by this heuristic are served from an override table.
//
// Resolve never fails and holds no state between calls; it is safe for
// concurrent use.
package furigana

import (
	"errors"

	"rubyalign/logger"
	"rubyalign/model"
)

// Aligner resolves titles against an override table. Its fields are not
// modified after New returns.
type Aligner struct {
	exceptions map[string][]model.Segment
	log        logger.Logger
}

// Option configures an Aligner.
type Option func(*Aligner)

// WithExceptions adds overrides on top of the built-in table. An entry for a
// title already in the table replaces it.
func WithExceptions(extra map[string][]model.Segment) Option {
	return func(a *Aligner) {
		for title, segs := range extra {
			a.exceptions[title] = cloneSegments(segs)
		}
	}
}

// WithLogger sets the logger that receives debug events.
func WithLogger(l logger.Logger) Option {
	return func(a *Aligner) {
		if l != nil {
			a.log = l
		}
	}
}

// New returns an Aligner seeded with the built-in exception table.
func New(opts ...Option) *Aligner {
	a := &Aligner{
		exceptions: Exceptions(),
		log:        logger.Nop(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

var defaultAligner = New()

// Resolve splits title into ruby segments using the built-in exception table.
func Resolve(title, reading string) []model.Segment {
	return defaultAligner.Resolve(title, reading)
}

// Resolve splits title into segments whose Text concatenates back to title.
// Text chunks receive the part of reading they are pronounced with; kana is
// never annotated. If the reading cannot be aligned, the result is the title
// as one plain segment.
func (a *Aligner) Resolve(title, reading string) []model.Segment {
	if title == "" || reading == "" {
		return []model.Segment{{Text: title}}
	}
	if segs, ok := a.exceptions[title]; ok {
		a.log.Debug("exception table hit", "title", title)
		return cloneSegments(segs)
	}

	chunks := Chunk(title)
	offsets, err := Align(reading, anchorsOf(chunks))
	if err != nil {
		if errors.Is(err, ErrUnalignable) {
			a.log.Debug("reading does not align, falling back to plain title", "title", title, "reading", reading)
		}
		return []model.Segment{{Text: title}}
	}
	return Build(chunks, reading, offsets)
}

// Lookup returns the override for title, if any.
func (a *Aligner) Lookup(title string) ([]model.Segment, bool) {
	segs, ok := a.exceptions[title]
	if !ok {
		return nil, false
	}
	return cloneSegments(segs), true
}
