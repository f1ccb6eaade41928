// Package engine ties the alignment stages together: canonicalization,
// tokenization, grouping, and padding. It works on in-memory content;
// the file safety pipeline lives in pipeline.go.
package engine

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/zaydek/alignment-sanity/pkg/align"
	"github.com/zaydek/alignment-sanity/pkg/edit"
	"github.com/zaydek/alignment-sanity/pkg/parser/chromatok"
)

// Engine computes aligned output for supported languages. It is
// immutable after construction and safe for concurrent use.
type Engine struct {
	parser *chromatok.Parser
	tables map[string]*align.AnchorTable
}

// New creates an Engine over the given anchor tables.
func New(tables map[string]*align.AnchorTable) *Engine {
	return &Engine{
		parser: chromatok.New(),
		tables: tables,
	}
}

// TableFor returns the anchor table for a language, or nil when the
// language is unsupported.
func (e *Engine) TableFor(language string) *align.AnchorTable {
	return e.tables[language]
}

// Report summarizes what a format pass did to one document.
type Report struct {
	// CanonicalizedLines counts lines the canonicalizer rewrote.
	CanonicalizedLines int

	// Groups counts alignment groups found after canonicalization.
	Groups int

	// LinesPadded counts lines that received padding.
	LinesPadded int
}

// FormatContent produces the fully aligned form of content: a
// canonicalization pass over every line, then a padding pass driven by
// a fresh tokenization of the canonical text. Unsupported languages
// come back unchanged with a zero report.
func (e *Engine) FormatContent(ctx context.Context, language string, content []byte) ([]byte, Report, error) {
	table := e.TableFor(language)
	if table == nil {
		return content, Report{}, nil
	}

	var report Report

	canonEdits := canonicalEdits(content, table)
	report.CanonicalizedLines = len(canonEdits)

	prepared, err := edit.Prepare(canonEdits, len(content))
	if err != nil {
		return nil, Report{}, fmt.Errorf("canonicalize %s: %w", language, err)
	}
	canonical := edit.Apply(content, prepared)

	// Padding instructions are computed against the canonical text, so
	// tokenization has to run again on it.
	tokens, err := e.parser.Parse(ctx, language, canonical, 0, -1)
	if err != nil {
		return nil, Report{}, err
	}

	groups := align.Groups(tokens, table)
	report.Groups = len(groups)

	lines := strings.Split(string(canonical), "\n")
	instructions := align.Instructions(lines, groups)

	padEdits, padded := paddingEdits(lines, instructions)
	report.LinesPadded = padded

	prepared, err = edit.Prepare(padEdits, len(canonical))
	if err != nil {
		return nil, Report{}, fmt.Errorf("pad %s: %w", language, err)
	}
	return edit.Apply(canonical, prepared), report, nil
}

// PreviewContent computes padding instructions against content exactly
// as it is, without canonicalizing first. Editors overlay these as
// virtual spacing; the buffer itself stays untouched.
func (e *Engine) PreviewContent(ctx context.Context, language string, content []byte) ([]align.Instruction, error) {
	table := e.TableFor(language)
	if table == nil {
		return nil, nil
	}

	tokens, err := e.parser.Parse(ctx, language, content, 0, -1)
	if err != nil {
		return nil, err
	}

	lines := strings.Split(string(content), "\n")
	return align.Instructions(lines, align.Groups(tokens, table)), nil
}

// PreviewLines returns content's lines with preview padding applied in
// memory, alongside the instructions that produced them.
func (e *Engine) PreviewLines(ctx context.Context, language string, content []byte) ([]string, []align.Instruction, error) {
	table := e.TableFor(language)
	lines := strings.Split(string(content), "\n")
	if table == nil {
		return lines, nil, nil
	}

	tokens, err := e.parser.Parse(ctx, language, content, 0, -1)
	if err != nil {
		return nil, nil, err
	}

	groups := align.Groups(tokens, table)
	return align.ApplyPadding(lines, groups), align.Instructions(lines, groups), nil
}

// canonicalEdits builds one whole-line replacement per line whose
// canonical form differs from the input.
func canonicalEdits(content []byte, table *align.AnchorTable) []edit.Edit {
	var edits []edit.Edit

	text := string(content)
	start := 0
	for {
		lineEnd := len(text)
		next := strings.IndexByte(text[start:], '\n')
		if next >= 0 {
			lineEnd = start + next
		}

		line := text[start:lineEnd]
		if canon := align.Canonicalize(line, table); canon != line {
			edits = append(edits, edit.Replace(start, lineEnd, canon))
		}

		if next < 0 {
			break
		}
		start = lineEnd + 1
	}
	return edits
}

// paddingEdits converts rune-addressed padding instructions to byte
// offset insertions, and counts the distinct lines touched.
func paddingEdits(lines []string, instructions []align.Instruction) ([]edit.Edit, int) {
	if len(instructions) == 0 {
		return nil, 0
	}

	lineStarts := make([]int, len(lines))
	offset := 0
	for i, line := range lines {
		lineStarts[i] = offset
		offset += len(line) + 1
	}

	edits := make([]edit.Edit, 0, len(instructions))
	padded := 0
	lastLine := -1
	for _, in := range instructions {
		if in.Line != lastLine {
			padded++
			lastLine = in.Line
		}
		at := lineStarts[in.Line] + runeByteOffset(lines[in.Line], in.Column)
		edits = append(edits, edit.Insert(at, strings.Repeat(" ", in.Spaces)))
	}
	return edits, padded
}

// runeByteOffset returns the byte index of the given rune offset.
func runeByteOffset(line string, runeCol int) int {
	i := 0
	for n := 0; n < runeCol && i < len(line); n++ {
		_, size := utf8.DecodeRuneInString(line[i:])
		i += size
	}
	return i
}
