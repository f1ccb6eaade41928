package pretty

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/zaydek/alignment-sanity/pkg/align"
)

// fillerGlyph marks virtual padding in previews. It renders one cell wide so
// preview columns line up exactly where literal spaces would land on write.
const fillerGlyph = "·"

// RenderPreview paints padding instructions over the original lines without
// modifying them. Inserted filler shows as middots, and every padded line
// carries a right-aligned annotation with the total inserted width.
func RenderPreview(lines []string, instructions []align.Instruction, styles *Styles) string {
	byLine := make(map[int][]align.Instruction, len(instructions))
	for _, instruction := range instructions {
		byLine[instruction.Line] = append(byLine[instruction.Line], instruction)
	}

	type renderedLine struct {
		text   string
		width  int
		padded int
	}

	rendered := make([]renderedLine, len(lines))
	maxWidth := 0
	for i, line := range lines {
		text, padded := overlayFillers(line, byLine[i], styles)
		width := runewidth.StringWidth(line) + padded
		rendered[i] = renderedLine{text: text, width: width, padded: padded}
		if padded > 0 && width > maxWidth {
			maxWidth = width
		}
	}

	gutterWidth := len(fmt.Sprintf("%d", len(lines)))

	var builder strings.Builder
	for i, line := range rendered {
		builder.WriteString(styles.LineNumber.Render(fmt.Sprintf("%*d", gutterWidth, i+1)))
		builder.WriteString("  ")
		builder.WriteString(line.text)
		if line.padded > 0 {
			builder.WriteString(strings.Repeat(" ", maxWidth-line.width+2))
			builder.WriteString(styles.Annotation.Render(fmt.Sprintf("+%d", line.padded)))
		}
		builder.WriteByte('\n')
	}
	return builder.String()
}

// overlayFillers splices styled filler glyphs into a line at each instruction
// column. Instructions arrive sorted by column, so the splice runs left to
// right over the original byte offsets.
func overlayFillers(line string, instructions []align.Instruction, styles *Styles) (string, int) {
	if len(instructions) == 0 {
		return line, 0
	}

	var builder strings.Builder
	prev := 0
	total := 0
	for _, instruction := range instructions {
		idx := runeIndex(line, instruction.Column)
		builder.WriteString(line[prev:idx])
		builder.WriteString(styles.Filler.Render(strings.Repeat(fillerGlyph, instruction.Spaces)))
		prev = idx
		total += instruction.Spaces
	}
	builder.WriteString(line[prev:])
	return builder.String(), total
}

// runeIndex converts a rune offset to a byte offset, clamping to line end.
func runeIndex(line string, col int) int {
	if col <= 0 {
		return 0
	}
	count := 0
	for idx := range line {
		if count == col {
			return idx
		}
		count++
	}
	return len(line)
}
