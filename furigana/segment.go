package furigana

import "rubyalign/model"

// Build walks chunks in title order and hands each text chunk the slice of
// reading between the previous anchor and the next one. offsets must come
// from a successful Align over the same chunks and reading.
func Build(chunks []model.Chunk, reading string, offsets []int) []model.Segment {
	segs := make([]model.Segment, 0, len(chunks))
	pi, a := 0, 0
	for _, c := range chunks {
		if c.Kind == model.Anchor {
			segs = append(segs, model.Segment{Text: c.Raw})
			pi = offsets[a] + len(c.Normalized)
			a++
			continue
		}
		end := len(reading)
		if a < len(offsets) {
			end = offsets[a]
		}
		seg := model.Segment{Text: c.Raw}
		if end > pi {
			seg.Ruby = reading[pi:end]
		}
		segs = append(segs, seg)
		pi = end
	}
	return segs
}
