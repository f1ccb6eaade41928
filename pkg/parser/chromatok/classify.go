package chromatok

import (
	"strings"

	"github.com/zaydek/alignment-sanity/pkg/align"
)

// Classification is language-independent: the producer reports every anchor
// spelling it recognizes, and the grouper drops kinds the active language's
// anchor table does not define.

// atoms are operator spellings that contain an anchor spelling as a
// substring but are not anchors themselves. They are skipped whole, longest
// first, so "==" never yields an assignment token.
//
//nolint:gochecknoglobals // Read-only lookup table.
var atoms = []string{
	">>>=", "===", "!==", "<<=", ">>=",
	"||=", "&&=", "??=",
	"==", "!=", "<=", ">=", "::", "?:",
}

// separator maps an anchor spelling to its token kind. Ordered longest
// first; matching takes the first hit.
type separator struct {
	text string
	kind align.TokenKind
}

//nolint:gochecknoglobals // Read-only lookup table.
var separators = []separator{
	{":=", align.KindAssign},
	{"+=", align.KindAssign},
	{"-=", align.KindAssign},
	{"*=", align.KindAssign},
	{"/=", align.KindAssign},
	{"%=", align.KindAssign},
	{"&=", align.KindAssign},
	{"|=", align.KindAssign},
	{"^=", align.KindAssign},
	{"=>", align.KindArrow},
	{"->", align.KindArrow},
	{"&&", align.KindLogical},
	{"||", align.KindLogical},
	{"=", align.KindAssign},
	{":", align.KindColon},
	{",", align.KindComma},
}

// longestAtom returns the length of the longest atom prefixing rest, or 0.
func longestAtom(rest string) int {
	best := 0
	for _, a := range atoms {
		if len(a) > best && strings.HasPrefix(rest, a) {
			best = len(a)
		}
	}
	return best
}

// matchSeparator returns the anchor spelling prefixing rest and its kind,
// or ("", "") when rest starts with no known separator.
func matchSeparator(rest string) (string, align.TokenKind) {
	for _, s := range separators {
		if strings.HasPrefix(rest, s.text) {
			return s.text, s.kind
		}
	}
	return "", ""
}
