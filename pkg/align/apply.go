package align

import (
	"sort"
	"strings"
	"unicode/utf8"
)

// Instruction asks for spaceCount filler characters at (line, column). In
// Preview mode the renderer paints them without touching stored text; in
// Write mode they become literal spaces.
type Instruction struct {
	// Line is the 0-based line index.
	Line int

	// Column is the rune offset where filler is inserted.
	Column int

	// Spaces is the number of filler characters. Always > 0 in the output
	// of Instructions; zero-padding members are dropped.
	Spaces int
}

// Instructions flattens groups into a collapsed instruction set for lines.
//
// When several groups request padding at the same (line, column), the result
// holds the maximum requested amount, never the sum: overlapping demands must
// not double-insert. Members whose insert column falls beyond the current
// line indicate a stale computation (the line changed since tokenization) and
// are skipped; the caller re-requests a parse rather than failing. The result
// is sorted by (line, column).
func Instructions(lines []string, groups []Group) []Instruction {
	type key struct{ line, col int }
	need := make(map[key]int)

	for _, g := range groups {
		for _, tok := range g.Tokens {
			col := tok.insertColumn(g.PadAfter)
			spaces := g.TargetColumn - col
			if spaces <= 0 {
				continue
			}
			if tok.Line < 0 || tok.Line >= len(lines) {
				continue
			}
			if col > utf8.RuneCountInString(lines[tok.Line]) {
				continue
			}
			k := key{tok.Line, col}
			if spaces > need[k] {
				need[k] = spaces
			}
		}
	}

	out := make([]Instruction, 0, len(need))
	for k, spaces := range need {
		out = append(out, Instruction{Line: k.line, Column: k.col, Spaces: spaces})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Line != out[j].Line {
			return out[i].Line < out[j].Line
		}
		return out[i].Column < out[j].Column
	})
	return out
}

// ApplyPadding returns lines with every instruction applied as literal
// spaces. Within a line, insertions run right to left so earlier insertions
// never shift the columns of instructions still pending.
//
// For idempotent output the input must be canonicalized first: on an already
// aligned, canonical file every padding amount resolves to <= 0 and the
// result is byte-identical to the input.
func ApplyPadding(lines []string, groups []Group) []string {
	ins := Instructions(lines, groups)

	out := make([]string, len(lines))
	copy(out, lines)

	// Instructions are sorted ascending; walking backwards applies each
	// line's insertions right to left.
	for i := len(ins) - 1; i >= 0; i-- {
		in := ins[i]
		out[in.Line] = insertSpaces(out[in.Line], in.Column, in.Spaces)
	}
	return out
}

// insertSpaces inserts n spaces at the given rune offset.
func insertSpaces(line string, col, n int) string {
	idx := byteIndexOfRune(line, col)
	return line[:idx] + strings.Repeat(" ", n) + line[idx:]
}

// byteIndexOfRune converts a rune offset to a byte offset, clamping to the
// end of the line.
func byteIndexOfRune(line string, col int) int {
	if col <= 0 {
		return 0
	}
	count := 0
	for idx := range line {
		if count == col {
			return idx
		}
		count++
	}
	return len(line)
}
