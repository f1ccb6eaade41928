package align

// Built-in anchor tables. Config may override or extend these per language;
// languages without a table are never touched by the engine.

// nonAnchorAtoms are operator spellings that contain an anchor separator as a
// substring but must never be treated as one. Both the canonicalizer and the
// token classifier skip these atomically, longest match first.
//
//nolint:gochecknoglobals // Read-only lookup table.
var nonAnchorAtoms = []string{
	"===", "!==", ">>>=", "<<=", ">>=",
	"==", "!=", "<=", ">=", "::", "||=", "&&=", "??=", "?:",
}

// BuiltinTables returns the default anchor tables keyed by language
// identifier. The returned map is freshly allocated; tables themselves are
// shared and must not be mutated.
func BuiltinTables() map[string]*AnchorTable {
	colon := AnchorRule{Kind: KindColon, Separators: []string{":"}, Spacing: " ", PadAfter: true}
	comma := AnchorRule{Kind: KindComma, Separators: []string{","}, Spacing: " ", PadAfter: true}
	logical := AnchorRule{Kind: KindLogical, Separators: []string{"&&", "||"}, Spacing: " ", PadAfter: false}
	arrow := AnchorRule{Kind: KindArrow, Separators: []string{"=>"}, Spacing: " ", PadAfter: false}

	assign := func(seps ...string) AnchorRule {
		return AnchorRule{Kind: KindAssign, Separators: seps, Spacing: " ", PadAfter: false}
	}

	cAssign := assign("=", "+=", "-=", "*=", "/=", "%=", "&=", "|=", "^=")

	return map[string]*AnchorTable{
		"yaml": NewAnchorTable("yaml",
			[]AnchorRule{colon},
			WithLineComments("#"),
		),
		"json": NewAnchorTable("json",
			[]AnchorRule{colon, comma},
		),
		"toml": NewAnchorTable("toml",
			[]AnchorRule{assign("=")},
			WithLineComments("#"),
		),
		"ini": NewAnchorTable("ini",
			[]AnchorRule{assign("=")},
			WithLineComments(";", "#"),
		),
		"javascript": NewAnchorTable("javascript",
			[]AnchorRule{colon, cAssign, logical, arrow},
			WithLineComments("//"),
			WithBlockComment("/*", "*/"),
		),
		"typescript": NewAnchorTable("typescript",
			[]AnchorRule{colon, cAssign, logical, arrow},
			WithLineComments("//"),
			WithBlockComment("/*", "*/"),
		),
		// Python keeps only assignment anchors: a colon rule would also
		// rewrite slice expressions like a[1:2].
		"python": NewAnchorTable("python",
			[]AnchorRule{cAssign},
			WithLineComments("#"),
		),
		"css": NewAnchorTable("css",
			[]AnchorRule{colon},
			WithBlockComment("/*", "*/"),
		),
	}
}
