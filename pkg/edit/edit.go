// Package edit provides byte-range text edits and unified diffs.
//
// The alignment engine expresses each pass over a file as a batch of
// edits against the pass's input bytes: canonicalization replaces whole
// lines, padding inserts runs of spaces. Prepare establishes the order
// and rejects overlaps before Apply splices the batch in one walk.
package edit

import (
	"bytes"
	"fmt"
	"sort"
)

// Edit replaces the bytes in [Start, End) with Text. An insertion has
// Start == End; a deletion has empty Text.
type Edit struct {
	Start int
	End   int
	Text  string
}

// Insert returns an edit that inserts text at offset.
func Insert(offset int, text string) Edit {
	return Edit{Start: offset, End: offset, Text: text}
}

// Replace returns an edit that replaces bytes [start, end) with text.
func Replace(start, end int, text string) Edit {
	return Edit{Start: start, End: end, Text: text}
}

// RangeError describes an edit whose range does not fit the content.
type RangeError struct {
	Edit    Edit
	Message string
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("invalid edit [%d:%d]: %s", e.Edit.Start, e.Edit.End, e.Message)
}

// OverlapError describes two edits whose ranges intersect. Alignment
// passes never produce overlapping edits, so an overlap is a bug in the
// caller rather than something to resolve here.
type OverlapError struct {
	First  Edit
	Second Edit
}

func (e *OverlapError) Error() string {
	return fmt.Sprintf("overlapping edits: [%d:%d] and [%d:%d]",
		e.First.Start, e.First.End, e.Second.Start, e.Second.End)
}

// Prepare validates the edits against contentLen, returns a copy sorted
// by start offset, and rejects any pair of overlapping ranges.
func Prepare(edits []Edit, contentLen int) ([]Edit, error) {
	if len(edits) == 0 {
		return nil, nil
	}

	for _, e := range edits {
		switch {
		case e.Start < 0:
			return nil, &RangeError{Edit: e, Message: "negative start offset"}
		case e.End < e.Start:
			return nil, &RangeError{Edit: e, Message: "end before start"}
		case e.End > contentLen:
			return nil, &RangeError{
				Edit:    e,
				Message: fmt.Sprintf("end %d past content length %d", e.End, contentLen),
			}
		}
	}

	sorted := make([]Edit, len(edits))
	copy(sorted, edits)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Start != sorted[j].Start {
			return sorted[i].Start < sorted[j].Start
		}
		return sorted[i].End < sorted[j].End
	})

	for i := 1; i < len(sorted); i++ {
		if sorted[i].Start < sorted[i-1].End {
			return nil, &OverlapError{First: sorted[i-1], Second: sorted[i]}
		}
	}
	return sorted, nil
}

// Apply splices prepared edits into content and returns the result.
// The input slice is never mutated.
func Apply(content []byte, edits []Edit) []byte {
	if len(edits) == 0 {
		return content
	}

	size := len(content)
	for _, e := range edits {
		size += len(e.Text) - (e.End - e.Start)
	}

	var out bytes.Buffer
	out.Grow(size)

	cursor := 0
	for _, e := range edits {
		out.Write(content[cursor:e.Start])
		out.WriteString(e.Text)
		cursor = e.End
	}
	out.Write(content[cursor:])

	return out.Bytes()
}
