package edit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zaydek/alignment-sanity/pkg/edit"
)

func TestPrepareSortsByStart(t *testing.T) {
	t.Parallel()

	edits := []edit.Edit{
		edit.Insert(10, "b"),
		edit.Insert(2, "a"),
	}

	sorted, err := edit.Prepare(edits, 20)
	require.NoError(t, err)
	assert.Equal(t, 2, sorted[0].Start)
	assert.Equal(t, 10, sorted[1].Start)

	// Caller's slice keeps its order.
	assert.Equal(t, 10, edits[0].Start)
}

func TestPrepareRejectsBadRanges(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		e    edit.Edit
	}{
		{"negative start", edit.Edit{Start: -1, End: 0}},
		{"end before start", edit.Edit{Start: 5, End: 3}},
		{"end past content", edit.Edit{Start: 0, End: 11}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := edit.Prepare([]edit.Edit{tt.e}, 10)
			var rangeErr *edit.RangeError
			require.ErrorAs(t, err, &rangeErr)
		})
	}
}

func TestPrepareRejectsOverlaps(t *testing.T) {
	t.Parallel()

	edits := []edit.Edit{
		edit.Replace(0, 5, "x"),
		edit.Replace(3, 8, "y"),
	}

	_, err := edit.Prepare(edits, 10)
	var overlapErr *edit.OverlapError
	require.ErrorAs(t, err, &overlapErr)
}

func TestPrepareAllowsTouchingRanges(t *testing.T) {
	t.Parallel()

	// [0,3) and [3,5) share a boundary but no bytes.
	edits := []edit.Edit{
		edit.Replace(0, 3, "x"),
		edit.Replace(3, 5, "y"),
	}

	_, err := edit.Prepare(edits, 10)
	assert.NoError(t, err)
}

func TestApply(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		edits   []edit.Edit
		want    string
	}{
		{
			name:    "no edits returns content",
			content: "abc",
			want:    "abc",
		},
		{
			name:    "insert padding mid line",
			content: "a: 1\nlong: 2\n",
			edits:   []edit.Edit{edit.Insert(2, "   ")},
			want:    "a:    1\nlong: 2\n",
		},
		{
			name:    "replace whole line",
			content: "a   :1\nb: 2\n",
			edits:   []edit.Edit{edit.Replace(0, 6, "a: 1")},
			want:    "a: 1\nb: 2\n",
		},
		{
			name:    "multiple edits splice in order",
			content: "aaabbbccc",
			edits: []edit.Edit{
				edit.Replace(0, 3, "A"),
				edit.Insert(6, "-"),
			},
			want: "Abbb-ccc",
		},
		{
			name:    "delete range",
			content: "keep drop keep",
			edits:   []edit.Edit{edit.Replace(4, 9, "")},
			want:    "keep keep",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			prepared, err := edit.Prepare(tt.edits, len(tt.content))
			require.NoError(t, err)

			got := edit.Apply([]byte(tt.content), prepared)
			assert.Equal(t, tt.want, string(got))
		})
	}
}
