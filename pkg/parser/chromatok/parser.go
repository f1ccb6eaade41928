// Package chromatok produces classified alignment tokens from source text
// using Chroma lexers. It is the concrete token producer behind the
// alignment engine: deterministic, total, and language-agnostic.
package chromatok

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"

	"github.com/zaydek/alignment-sanity/pkg/align"
)

// Parser turns document text into an align.Token stream. It carries no
// per-call state and is safe for concurrent use; one process-wide instance
// is enough.
type Parser struct{}

// New creates a Parser.
func New() *Parser {
	return &Parser{}
}

// Parse lexes content as the given language and returns the classified
// tokens for lines in [startLine, endLine], sorted by (line, column).
// A negative endLine means "to end of document".
//
// Unknown languages and unlexable input yield an empty stream, never an
// error: nothing to align is a valid, silent outcome. Tokens inside string
// literals and comments are omitted entirely, so the grouper never sees
// them. The only error returned is context cancellation.
func (p *Parser) Parse(ctx context.Context, language string, content []byte, startLine, endLine int) ([]align.Token, error) {
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("parse: %w", ctx.Err())
	default:
	}

	if len(content) == 0 {
		return nil, nil
	}

	lexer := lexers.Get(language)
	if lexer == nil {
		return nil, nil
	}
	lexer = chroma.Coalesce(lexer)

	text := string(content)
	chromaTokens, err := chroma.Tokenise(lexer, nil, text)
	if err != nil {
		return nil, nil
	}

	indents := lineIndents(text)

	w := walker{
		indents:   indents,
		startLine: startLine,
		endLine:   endLine,
	}
	for _, tok := range chromaTokens {
		if tok.Type == chroma.EOFType {
			break
		}
		w.consume(tok)
	}
	return w.out, nil
}

// walker tracks position and nesting depth while scanning the chroma token
// stream, emitting align tokens for anchor separators in eligible text.
type walker struct {
	line      int
	col       int // rune offset within line
	depth     int
	indents   []int
	startLine int
	endLine   int
	out       []align.Token
}

// consume advances position over one chroma token, classifying separators
// when the token is neither a comment nor a literal. Brackets inside
// skipped tokens do not affect nesting depth.
func (w *walker) consume(tok chroma.Token) {
	eligible := !tok.Type.InCategory(chroma.Comment) && !tok.Type.InCategory(chroma.Literal)

	value := tok.Value
	for i := 0; i < len(value); {
		if value[i] == '\n' {
			w.line++
			w.col = 0
			i++
			continue
		}

		if eligible {
			if n := longestAtom(value[i:]); n > 0 {
				w.advance(value[i : i+n])
				i += n
				continue
			}
			if sep, kind := matchSeparator(value[i:]); sep != "" {
				w.emit(sep, kind)
				w.advance(sep)
				i += len(sep)
				continue
			}
			switch value[i] {
			case '(', '[', '{':
				w.depth++
			case ')', ']', '}':
				if w.depth > 0 {
					w.depth--
				}
			}
		}

		_, size := utf8.DecodeRuneInString(value[i:])
		w.col++
		i += size
	}
}

// emit records a separator occurrence as an align token if it falls inside
// the requested line range.
func (w *walker) emit(sep string, kind align.TokenKind) {
	if w.line < w.startLine {
		return
	}
	if w.endLine >= 0 && w.line > w.endLine {
		return
	}
	indent := 0
	if w.line < len(w.indents) {
		indent = w.indents[w.line]
	}
	w.out = append(w.out, align.Token{
		Line:   w.line,
		Column: w.col,
		Text:   sep,
		Kind:   kind,
		Indent: indent,
		Depth:  w.depth,
	})
}

// advance moves the column past an ASCII-only chunk.
func (w *walker) advance(chunk string) {
	w.col += len(chunk)
}

// lineIndents computes each line's leading whitespace width in runes.
func lineIndents(text string) []int {
	lines := strings.Split(text, "\n")
	indents := make([]int, len(lines))
	for i, line := range lines {
		n := 0
		for _, r := range line {
			if r != ' ' && r != '\t' {
				break
			}
			n++
		}
		indents[i] = n
	}
	return indents
}
