package furigana

import (
	"errors"
	"strings"
)

// ErrUnalignable is returned by Align when the anchors cannot all be placed in
// the reading in title order without overlapping.
var ErrUnalignable = errors.New("furigana: anchors cannot be aligned with reading")

type alignState struct {
	end    int
	anchor int
}

type aligner struct {
	reading string
	anchors []string
	offsets []int
	failed  map[alignState]struct{}
}

// Align places every anchor in reading and returns the byte offset at which
// each one starts. Anchors are placed from last to first, each at its
// right-most occurrence that still leaves room for the anchors before it.
// Offsets satisfy offsets[i]+len(anchors[i]) <= offsets[i+1].
func Align(reading string, anchors []string) ([]int, error) {
	a := &aligner{
		reading: reading,
		anchors: anchors,
		offsets: make([]int, len(anchors)),
		failed:  make(map[alignState]struct{}),
	}
	if !a.place(len(anchors)-1, len(reading)) {
		return nil, ErrUnalignable
	}
	return a.offsets, nil
}

// place positions anchors[0..k] entirely inside reading[:end].
func (a *aligner) place(k, end int) bool {
	if k < 0 {
		return true
	}
	state := alignState{end: end, anchor: k}
	if _, ok := a.failed[state]; ok {
		return false
	}
	anchor := a.anchors[k]
	if anchor == "" {
		// an empty anchor consumes nothing; pin it at end
		if a.place(k-1, end) {
			a.offsets[k] = end
			return true
		}
		a.failed[state] = struct{}{}
		return false
	}
	limit := end
	for {
		pos := strings.LastIndex(a.reading[:limit], anchor)
		if pos < 0 {
			break
		}
		if a.place(k-1, pos) {
			a.offsets[k] = pos
			return true
		}
		// next candidate must start strictly before pos
		limit = pos + len(anchor) - 1
	}
	a.failed[state] = struct{}{}
	return false
}
