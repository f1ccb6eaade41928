package pretty_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zaydek/alignment-sanity/internal/ui/pretty"
	"github.com/zaydek/alignment-sanity/pkg/align"
)

func TestRenderPreviewShowsFillers(t *testing.T) {
	t.Parallel()

	lines := []string{`name: "app"`, `version: "1.0"`}
	instructions := []align.Instruction{{Line: 0, Column: 5, Spaces: 3}}

	out := pretty.RenderPreview(lines, instructions, pretty.NewStyles(false))

	assert.Equal(t, "1  name:··· \"app\"  +3\n2  version: \"1.0\"\n", out)
}

func TestRenderPreviewNoInstructions(t *testing.T) {
	t.Parallel()

	lines := []string{"a: 1", "b: 2"}

	out := pretty.RenderPreview(lines, nil, pretty.NewStyles(false))

	assert.Equal(t, "1  a: 1\n2  b: 2\n", out)
}

func TestRenderPreviewGutterWidth(t *testing.T) {
	t.Parallel()

	lines := make([]string, 12)
	for i := range lines {
		lines[i] = "x: 1"
	}

	out := pretty.RenderPreview(lines, nil, pretty.NewStyles(false))

	assert.Contains(t, out, " 1  x: 1\n")
	assert.Contains(t, out, "12  x: 1\n")
}

func TestRenderPreviewMultipleInstructionsOnLine(t *testing.T) {
	t.Parallel()

	lines := []string{"a: 1, b"}
	instructions := []align.Instruction{
		{Line: 0, Column: 2, Spaces: 2},
		{Line: 0, Column: 5, Spaces: 1},
	}

	out := pretty.RenderPreview(lines, instructions, pretty.NewStyles(false))

	assert.Contains(t, out, "a:·· 1,· b")
	assert.Contains(t, out, "+3")
}

func TestRenderPreviewMultibyteLine(t *testing.T) {
	t.Parallel()

	lines := []string{`café: "x"`, `naïveté: "y"`}
	instructions := []align.Instruction{{Line: 0, Column: 5, Spaces: 3}}

	out := pretty.RenderPreview(lines, instructions, pretty.NewStyles(false))

	assert.Contains(t, out, "café:··· \"x\"")
}
