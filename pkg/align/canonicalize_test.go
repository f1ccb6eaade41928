package align_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zaydek/alignment-sanity/pkg/align"
)

func TestCanonicalize(t *testing.T) {
	t.Parallel()

	tomlTable := align.BuiltinTables()["toml"]

	tests := []struct {
		name  string
		table *align.AnchorTable
		line  string
		want  string
	}{
		{
			name:  "collapses space before and after colon",
			table: yamlTable(),
			line:  "name   :   value",
			want:  "name: value",
		},
		{
			name:  "adds missing space after colon",
			table: yamlTable(),
			line:  "name:value",
			want:  "name: value",
		},
		{
			name:  "already canonical is unchanged",
			table: yamlTable(),
			line:  "name: value",
			want:  "name: value",
		},
		{
			name:  "indentation preserved",
			table: yamlTable(),
			line:  "  nested:    true",
			want:  "  nested: true",
		},
		{
			name:  "string literal interior untouched",
			table: yamlTable(),
			line:  `msg: "a  :  b"`,
			want:  `msg: "a  :  b"`,
		},
		{
			name:  "comment untouched",
			table: yamlTable(),
			line:  "# spaced  :  out",
			want:  "# spaced  :  out",
		},
		{
			name:  "code before comment still rewritten",
			table: yamlTable(),
			line:  "key :  v  # keep  : this",
			want:  "key: v  # keep  : this",
		},
		{
			name:  "url value colons untouched",
			table: yamlTable(),
			line:  "url:http://example.com",
			want:  "url: http://example.com",
		},
		{
			name:  "timestamp value untouched",
			table: yamlTable(),
			line:  "start: 12:30",
			want:  "start: 12:30",
		},
		{
			name:  "later same-kind commas untouched",
			table: align.BuiltinTables()["json"],
			line:  `"a": 1,"b": 2 ,"c": 3`,
			want:  `"a": 1, "b": 2 ,"c": 3`,
		},
		{
			name:  "trailing anchor gains no trailing space",
			table: yamlTable(),
			line:  "parent:",
			want:  "parent:",
		},
		{
			name:  "trailing anchor before cr gains no space",
			table: yamlTable(),
			line:  "parent:\r",
			want:  "parent:\r",
		},
		{
			name:  "trailing whitespace before cr dropped",
			table: yamlTable(),
			line:  "parent:  \r",
			want:  "parent:\r",
		},
		{
			name:  "trailing whitespace after anchor dropped",
			table: yamlTable(),
			line:  "parent:   ",
			want:  "parent:",
		},
		{
			name:  "operator gets one space each side",
			table: tomlTable,
			line:  "port=8080",
			want:  "port = 8080",
		},
		{
			name:  "operator excess space collapsed",
			table: tomlTable,
			line:  "port    =     8080",
			want:  "port = 8080",
		},
		{
			name:  "equality atom is not an assignment",
			table: jsTable(),
			line:  "if (a == b) {",
			want:  "if (a == b) {",
		},
		{
			name:  "strict equality atom untouched",
			table: jsTable(),
			line:  "ok = a === b",
			want:  "ok = a === b",
		},
		{
			name:  "arrow canonicalized not split as assign",
			table: jsTable(),
			line:  "const f = (x)=>x",
			want:  "const f = (x) => x",
		},
		{
			name:  "block comment interior untouched",
			table: jsTable(),
			line:  "a /* x  =  y */ =1",
			want:  "a /* x  =  y */ = 1",
		},
		{
			name:  "empty line",
			table: yamlTable(),
			line:  "",
			want:  "",
		},
		{
			name:  "nil table is identity",
			table: nil,
			line:  "a   :b",
			want:  "a   :b",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := align.Canonicalize(tt.line, tt.table)
			assert.Equal(t, tt.want, got)

			// Idempotence holds for every case.
			assert.Equal(t, got, align.Canonicalize(got, tt.table))
		})
	}
}

func TestCanonicalizeIdempotentOnIrregularInput(t *testing.T) {
	t.Parallel()

	table := jsTable()
	lines := []string{
		"x=1",
		"foo   :bar, baz ,qux",
		`s = "a, b ,c" , d`,
		"cond&&other ||  third",
		"weird\t=\t\tvalue",
	}

	for _, line := range lines {
		once := align.Canonicalize(line, table)
		twice := align.Canonicalize(once, table)
		assert.Equal(t, once, twice, "line %q", line)
	}
}

func FuzzCanonicalizeIdempotent(f *testing.F) {
	f.Add("name: value")
	f.Add("a=b, c : d")
	f.Add(`key: "str : ing" # c : c`)
	f.Add("if (a == b) { x=1 }")
	f.Add("\t\tmixed :\tws")
	f.Add("url: http://example.com")
	f.Add("start: 12:30\r")

	tables := align.BuiltinTables()
	yaml, js := tables["yaml"], tables["javascript"]

	f.Fuzz(func(t *testing.T, line string) {
		for _, table := range []*align.AnchorTable{yaml, js} {
			once := align.Canonicalize(line, table)
			twice := align.Canonicalize(once, table)
			if once != twice {
				t.Fatalf("not idempotent for %q: %q != %q", line, once, twice)
			}
		}
	})
}
