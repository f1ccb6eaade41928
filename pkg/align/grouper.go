package align

import "sort"

// Group is an ordered set of same-kind tokens on contiguous, structurally
// comparable lines that share one target column. Groups are derived data:
// recomputed from scratch on every parse, never retained across edits.
type Group struct {
	// Kind is the shared token kind.
	Kind TokenKind

	// Tokens are the member tokens, ordered by line.
	Tokens []Token

	// TargetColumn is the column every member pads out to. Invariant:
	// TargetColumn equals the maximum insert column over Tokens, so no
	// member ever computes negative padding.
	TargetColumn int

	// PadAfter is copied from the anchor rule for Kind.
	PadAfter bool
}

// Groups partitions tokens into alignment groups using the language's anchor
// table. It is deterministic and total: no eligible tokens yields an empty
// result, never an error. Tokens must be sorted by (line, column), as the
// token producer guarantees.
//
// A token extends a run only when its line immediately follows the previous
// member's line and shares that member's indentation width and nesting depth.
// A blank line, a line without this kind's anchor, or a structural change all
// break the run. When a line carries several tokens of one kind, only the
// first participates; later occurrences on the line are ignored.
func Groups(tokens []Token, table *AnchorTable) []Group {
	if table == nil || len(tokens) == 0 {
		return nil
	}

	// Partition by kind, keeping only kinds the table defines and only the
	// first occurrence per (line, kind).
	byKind := make(map[TokenKind][]Token)
	lastLine := make(map[TokenKind]int)
	for _, tok := range tokens {
		if _, ok := table.Rule(tok.Kind); !ok {
			continue
		}
		if line, dup := lastLine[tok.Kind]; dup && line == tok.Line {
			continue
		}
		byKind[tok.Kind] = append(byKind[tok.Kind], tok)
		lastLine[tok.Kind] = tok.Line
	}

	var groups []Group
	for kind, toks := range byKind {
		rule, _ := table.Rule(kind)

		sort.SliceStable(toks, func(i, j int) bool { return toks[i].Line < toks[j].Line })

		run := []Token{toks[0]}
		for _, tok := range toks[1:] {
			last := run[len(run)-1]
			contiguous := tok.Line == last.Line+1 &&
				tok.Indent == last.Indent &&
				tok.Depth == last.Depth
			if !contiguous {
				groups = append(groups, finishRun(run, rule))
				run = nil
			}
			run = append(run, tok)
		}
		groups = append(groups, finishRun(run, rule))
	}

	// Stable output order: first line, then the kind's declaration order in
	// the table, so instruction collapsing is deterministic.
	sort.SliceStable(groups, func(i, j int) bool {
		li, lj := groups[i].Tokens[0].Line, groups[j].Tokens[0].Line
		if li != lj {
			return li < lj
		}
		return table.Order(groups[i].Kind) < table.Order(groups[j].Kind)
	})

	return groups
}

// finishRun seals a run into a group, resolving its target column.
func finishRun(run []Token, rule AnchorRule) Group {
	target := 0
	for _, tok := range run {
		if col := tok.insertColumn(rule.PadAfter); col > target {
			target = col
		}
	}
	return Group{
		Kind:         rule.Kind,
		Tokens:       run,
		TargetColumn: target,
		PadAfter:     rule.PadAfter,
	}
}
