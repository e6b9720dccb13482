package terminal

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Banner draws a double-line box around centered lines.
// Widths are measured in terminal cells so emoji and accented letters line up.
func (c *Console) Banner(lines ...string) {
	inner := SeparatorWidth + 2
	c.Println("╔" + strings.Repeat("═", inner) + "╗")
	for _, line := range lines {
		c.Println("║" + center(line, inner) + "║")
	}
	c.Println("╚" + strings.Repeat("═", inner) + "╝")
}

func center(s string, width int) string {
	s = runewidth.Truncate(s, width, "…")
	pad := width - runewidth.StringWidth(s)
	left := pad / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}

// Width returns the number of terminal cells s occupies
func Width(s string) int {
	return runewidth.StringWidth(s)
}

// PadRight fills s with spaces up to width cells
func PadRight(s string, width int) string {
	return runewidth.FillRight(s, width)
}

// ProgressBar renders current/total as a bar of width cells followed by the percentage
func ProgressBar(current, total, width int) string {
	if total <= 0 {
		return "[" + strings.Repeat(".", width) + "]"
	}
	if current > total {
		current = total
	}
	progress := float64(current) / float64(total)
	filled := int(float64(width) * progress)
	return fmt.Sprintf("[%s%s] %.1f%%", strings.Repeat("█", filled), strings.Repeat("░", width-filled), progress*100)
}
