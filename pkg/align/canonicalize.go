package align

import "strings"

// Canonicalize rewrites the whitespace immediately touching the first anchor
// occurrence of each kind in line to its canonical form: SpacingBefore(rule)
// before the anchor, rule.Spacing after it. Whitespace inside string literals
// and comments is never touched, and leading indentation is preserved.
//
// Only the first occurrence per kind is rewritten, mirroring the grouper:
// later same-kind spellings sit inside values (the colons of a URL or a
// timestamp after a YAML key) and must pass through byte for byte.
//
// Canonicalization runs only on the permanent-formatting path, before tokens
// are re-derived: target columns come from token positions, so two
// structurally identical lines must not differ in internal spacing or the
// computed padding becomes unrepeatable. The rewrite is idempotent:
// Canonicalize(Canonicalize(x)) == Canonicalize(x).
func Canonicalize(line string, table *AnchorTable) string {
	if table == nil || len(table.Rules) == 0 {
		return line
	}

	out := make([]byte, 0, len(line)+8)
	i, n := 0, len(line)
	seen := make(map[TokenKind]bool, len(table.Rules))

	for i < n {
		c := line[i]

		// String literals pass through verbatim.
		if c == '\'' || c == '"' || c == '`' {
			j := skipStringLiteral(line, i)
			out = append(out, line[i:j]...)
			i = j
			continue
		}

		// A line comment consumes the rest of the line.
		if matchesAny(line[i:], table.LineComments) {
			out = append(out, line[i:]...)
			return string(out)
		}

		// Inline block comments pass through verbatim.
		if open := table.BlockComment[0]; open != "" && strings.HasPrefix(line[i:], open) {
			j := i + len(open)
			if end := strings.Index(line[j:], table.BlockComment[1]); end >= 0 {
				j += end + len(table.BlockComment[1])
			} else {
				j = n
			}
			out = append(out, line[i:j]...)
			i = j
			continue
		}

		// Operator atoms that merely contain an anchor spelling are copied
		// whole so "==" never canonicalizes as "=".
		if atom := longestPrefix(line[i:], nonAnchorAtoms); atom > 0 {
			out = append(out, line[i:i+atom]...)
			i += atom
			continue
		}

		if rule, width := matchAnchor(line[i:], table); width > 0 {
			if seen[rule.Kind] {
				out = append(out, line[i:i+width]...)
				i += width
				continue
			}
			seen[rule.Kind] = true

			out = rewriteBefore(out, rule)
			out = append(out, line[i:i+width]...)
			i += width

			// Collapse the whitespace run after the anchor to the canonical
			// spacing, unless nothing but whitespace (and an optional
			// trailing CR) follows.
			j := i
			for j < n && (line[j] == ' ' || line[j] == '\t') {
				j++
			}
			i = j
			if i < n && !(i == n-1 && line[i] == '\r') {
				out = append(out, rule.Spacing...)
			}
			continue
		}

		out = append(out, c)
		i++
	}

	return string(out)
}

// rewriteBefore trims the whitespace run preceding the anchor from out and
// appends the canonical before-spacing. Indentation-only prefixes are kept
// intact: an anchor that is the first non-blank content keeps its position.
func rewriteBefore(out []byte, rule AnchorRule) []byte {
	k := len(out)
	for k > 0 && (out[k-1] == ' ' || out[k-1] == '\t') {
		k--
	}
	if k == 0 {
		return out
	}
	out = out[:k]
	return append(out, SpacingBefore(rule)...)
}

// matchAnchor finds the longest anchor separator of any rule at the start of
// rest. Returns the matching rule and the separator width, or width 0.
func matchAnchor(rest string, table *AnchorTable) (AnchorRule, int) {
	var best AnchorRule
	width := 0
	for _, rule := range table.Rules {
		for _, sep := range rule.Separators {
			if len(sep) > width && strings.HasPrefix(rest, sep) {
				best = rule
				width = len(sep)
			}
		}
	}
	return best, width
}

// skipStringLiteral returns the index one past the string literal starting at
// i. Backslash escapes are honored except in backtick strings; an
// unterminated literal runs to end of line.
func skipStringLiteral(line string, i int) int {
	quote := line[i]
	j := i + 1
	for j < len(line) {
		switch {
		case line[j] == '\\' && quote != '`':
			j += 2
		case line[j] == quote:
			return j + 1
		default:
			j++
		}
	}
	return len(line)
}

// matchesAny reports whether rest starts with any of the markers.
func matchesAny(rest string, markers []string) bool {
	for _, m := range markers {
		if m != "" && strings.HasPrefix(rest, m) {
			return true
		}
	}
	return false
}

// longestPrefix returns the length of the longest candidate prefixing rest.
func longestPrefix(rest string, candidates []string) int {
	best := 0
	for _, c := range candidates {
		if len(c) > best && strings.HasPrefix(rest, c) {
			best = len(c)
		}
	}
	return best
}
