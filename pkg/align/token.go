// Package align implements the column-alignment engine: grouping classified
// tokens into alignment groups, canonicalizing anchor whitespace, and turning
// groups into padding instructions or literally padded text.
package align

import "unicode/utf8"

// TokenKind classifies the role a token plays in alignment.
// Only kinds present in a language's AnchorTable participate; everything else
// is ignored by the grouper.
type TokenKind string

const (
	// KindColon is a key/value separator (YAML keys, object literals, struct fields).
	KindColon TokenKind = "colon"

	// KindAssign is an assignment operator (=, :=, and compound forms).
	KindAssign TokenKind = "assign"

	// KindLogical is a logical operator (&&, ||).
	KindLogical TokenKind = "logical"

	// KindComma is an element separator.
	KindComma TokenKind = "comma"

	// KindArrow is an arrow operator (=>, ->).
	KindArrow TokenKind = "arrow"
)

// Token is a classified lexical unit from one parse of one document snapshot.
// Tokens are immutable facts; the grouper only reads them.
//
// Column and EndColumn are rune offsets within the line, matching what the
// token producer emits. Indent and Depth describe the token's line: the
// grouper never aligns lines at different indentation or nesting depth.
type Token struct {
	// Line is the 0-based row index.
	Line int

	// Column is the 0-based rune offset of the token's first character.
	Column int

	// Text is the literal token text.
	Text string

	// Kind classifies the token's alignment role.
	Kind TokenKind

	// Indent is the leading whitespace width of the token's line, in runes.
	Indent int

	// Depth is the lexical bracket-nesting depth at the token's position.
	Depth int
}

// EndColumn returns the rune offset one past the token's last character.
func (t Token) EndColumn() int {
	return t.Column + utf8.RuneCountInString(t.Text)
}

// insertColumn is where padding for this token would be inserted: after the
// token when the anchor pads after, at the token start otherwise.
func (t Token) insertColumn(padAfter bool) int {
	if padAfter {
		return t.EndColumn()
	}
	return t.Column
}
