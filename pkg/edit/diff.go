package edit

import (
	"fmt"
	"strings"
)

// Hunks carry three context lines on each side, matching git's default.
const diffContext = 3

// LineKind classifies a diff line.
type LineKind int

const (
	LineContext LineKind = iota
	LineAdd
	LineRemove
)

// Line is one line of a hunk, without its +/-/space prefix.
type Line struct {
	Kind    LineKind
	Content string
}

// Hunk is a contiguous region of a unified diff. Start positions are
// 1-based line numbers.
type Hunk struct {
	OldStart, OldCount int
	NewStart, NewCount int
	Lines              []Line
}

// Diff is a line-level unified diff for a single file.
type Diff struct {
	Path      string
	Hunks     []Hunk
	Additions int
	Deletions int
}

// Compute diffs original against modified. It returns nil when the two
// are line-for-line identical.
func Compute(path string, original, modified []byte) *Diff {
	oldLines := splitLines(original)
	newLines := splitLines(modified)

	ops := diffOps(oldLines, newLines)
	changed := false
	for _, op := range ops {
		if op.kind != LineContext {
			changed = true
			break
		}
	}
	if !changed {
		return nil
	}

	d := &Diff{Path: path, Hunks: hunks(ops)}
	for _, h := range d.Hunks {
		for _, ln := range h.Lines {
			switch ln.Kind {
			case LineAdd:
				d.Additions++
			case LineRemove:
				d.Deletions++
			}
		}
	}
	return d
}

// HasChanges reports whether the diff contains any hunks.
func (d *Diff) HasChanges() bool {
	return d != nil && len(d.Hunks) > 0
}

// String renders the diff in unified format with ---/+++ headers.
func (d *Diff) String() string {
	if !d.HasChanges() {
		return ""
	}

	path := strings.TrimPrefix(d.Path, "/")

	var b strings.Builder
	fmt.Fprintf(&b, "--- a/%s\n", path)
	fmt.Fprintf(&b, "+++ b/%s\n", path)

	for _, h := range d.Hunks {
		fmt.Fprintf(&b, "@@ -%d,%d +%d,%d @@\n", h.OldStart, h.OldCount, h.NewStart, h.NewCount)
		for _, ln := range h.Lines {
			switch ln.Kind {
			case LineContext:
				b.WriteByte(' ')
			case LineAdd:
				b.WriteByte('+')
			case LineRemove:
				b.WriteByte('-')
			}
			b.WriteString(ln.Content)
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func splitLines(content []byte) []string {
	if len(content) == 0 {
		return nil
	}
	lines := strings.Split(string(content), "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

type op struct {
	kind    LineKind
	content string
}

// diffOps flattens the two sides into a single op sequence using a
// longest-common-subsequence walk.
func diffOps(oldLines, newLines []string) []op {
	common := lcs(oldLines, newLines)

	var ops []op
	oi, ni, ci := 0, 0, 0
	for oi < len(oldLines) || ni < len(newLines) {
		if ci < len(common) && oi < len(oldLines) && ni < len(newLines) &&
			oldLines[oi] == common[ci] && newLines[ni] == common[ci] {
			ops = append(ops, op{LineContext, oldLines[oi]})
			oi, ni, ci = oi+1, ni+1, ci+1
			continue
		}
		for oi < len(oldLines) && (ci >= len(common) || oldLines[oi] != common[ci]) {
			ops = append(ops, op{LineRemove, oldLines[oi]})
			oi++
		}
		for ni < len(newLines) && (ci >= len(common) || newLines[ni] != common[ci]) {
			ops = append(ops, op{LineAdd, newLines[ni]})
			ni++
		}
	}
	return ops
}

// hunks groups changed ops into hunks, merging changes whose context
// windows would touch.
func hunks(ops []op) []Hunk {
	type span struct{ start, end int }

	var spans []span
	open := -1
	for i, o := range ops {
		if o.kind != LineContext {
			if open < 0 {
				open = i
			}
		} else if open >= 0 {
			spans = append(spans, span{open, i})
			open = -1
		}
	}
	if open >= 0 {
		spans = append(spans, span{open, len(ops)})
	}
	if len(spans) == 0 {
		return nil
	}

	var out []Hunk
	for i := 0; i < len(spans); {
		j := i + 1
		for j < len(spans) && spans[j].start-spans[j-1].end <= diffContext*2 {
			j++
		}
		out = append(out, buildHunk(ops, spans[i].start, spans[j-1].end))
		i = j
	}
	return out
}

func buildHunk(ops []op, changeStart, changeEnd int) Hunk {
	start := max(changeStart-diffContext, 0)
	end := min(changeEnd+diffContext, len(ops))

	h := Hunk{OldStart: 1, NewStart: 1}
	for _, o := range ops[:start] {
		if o.kind != LineAdd {
			h.OldStart++
		}
		if o.kind != LineRemove {
			h.NewStart++
		}
	}

	for _, o := range ops[start:end] {
		h.Lines = append(h.Lines, Line{Kind: o.kind, Content: o.content})
		if o.kind != LineAdd {
			h.OldCount++
		}
		if o.kind != LineRemove {
			h.NewCount++
		}
	}
	return h
}

// lcs computes the longest common subsequence of two line slices.
func lcs(a, b []string) []string {
	if len(a) == 0 || len(b) == 0 {
		return nil
	}

	dp := make([][]int, len(a)+1)
	for i := range dp {
		dp[i] = make([]int, len(b)+1)
	}
	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			if a[i-1] == b[j-1] {
				dp[i][j] = dp[i-1][j-1] + 1
			} else {
				dp[i][j] = max(dp[i-1][j], dp[i][j-1])
			}
		}
	}

	out := make([]string, dp[len(a)][len(b)])
	i, j, k := len(a), len(b), len(out)-1
	for i > 0 && j > 0 {
		switch {
		case a[i-1] == b[j-1]:
			out[k] = a[i-1]
			i, j, k = i-1, j-1, k-1
		case dp[i-1][j] > dp[i][j-1]:
			i--
		default:
			j--
		}
	}
	return out
}
