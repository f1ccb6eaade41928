package align

// AnchorRule describes one token kind eligible to drive alignment in a
// language: how it is spelled, its canonical surrounding whitespace, and on
// which side padding is inserted.
type AnchorRule struct {
	// Kind is the token kind this rule governs.
	Kind TokenKind

	// Separators are the literal spellings of this anchor in source text,
	// used by the canonicalizer and the token classifier. Matching is
	// longest-first, so ":=" must be listed on the assign rule for a
	// language where ":" is also a colon anchor.
	Separators []string

	// Spacing is the canonical whitespace written immediately after the
	// anchor during canonicalization. Whitespace before the anchor is
	// derived: none when PadAfter (keep the key tight), one space otherwise
	// (operators float between operands).
	Spacing string

	// PadAfter selects where alignment padding is inserted: true pads after
	// the anchor (values line up), false pads before it (operators line up).
	PadAfter bool
}

// AnchorTable is the ordered set of anchor rules for one language, plus the
// lexical facts the canonicalizer needs to protect literals. Tables are
// read-only after construction and safe to share across computations.
type AnchorTable struct {
	// Language is the normalized language identifier (e.g. "yaml").
	Language string

	// Rules is the ordered rule list. Declaration order is a tie-break for
	// group ordering, so it must be stable.
	Rules []AnchorRule

	// LineComments are markers that start a comment running to end of line.
	LineComments []string

	// BlockComment holds the open/close markers of an inline block comment,
	// or empty strings when the language has none.
	BlockComment [2]string

	index map[TokenKind]int
}

// NewAnchorTable builds a table from an ordered rule list.
func NewAnchorTable(language string, rules []AnchorRule, opts ...TableOption) *AnchorTable {
	t := &AnchorTable{
		Language: language,
		Rules:    rules,
		index:    make(map[TokenKind]int, len(rules)),
	}
	for i, r := range rules {
		if _, dup := t.index[r.Kind]; !dup {
			t.index[r.Kind] = i
		}
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// TableOption customizes table construction.
type TableOption func(*AnchorTable)

// WithLineComments sets the language's line comment markers.
func WithLineComments(markers ...string) TableOption {
	return func(t *AnchorTable) { t.LineComments = markers }
}

// WithBlockComment sets the language's inline block comment delimiters.
func WithBlockComment(open, close string) TableOption {
	return func(t *AnchorTable) { t.BlockComment = [2]string{open, close} }
}

// Rule returns the rule for kind, if the table defines one.
func (t *AnchorTable) Rule(kind TokenKind) (AnchorRule, bool) {
	if t == nil {
		return AnchorRule{}, false
	}
	i, ok := t.index[kind]
	if !ok {
		return AnchorRule{}, false
	}
	return t.Rules[i], true
}

// Order returns the declaration index of kind, or len(Rules) for unknown
// kinds so they sort last.
func (t *AnchorTable) Order(kind TokenKind) int {
	if t == nil {
		return 0
	}
	if i, ok := t.index[kind]; ok {
		return i
	}
	return len(t.Rules)
}

// SpacingBefore returns the canonical whitespace preceding an anchor of the
// given rule: none for pad-after anchors, one space otherwise.
func SpacingBefore(r AnchorRule) string {
	if r.PadAfter {
		return ""
	}
	return " "
}
