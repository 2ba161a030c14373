package formatter

import (
	"fmt"
	"strings"
)

const (
	filledBlock   = "█"
	emptyBlock    = "░"
	overflowBlock = "▓"
)

// RenderLoad renders an occupancy bar like [██████░░░░]  60%.
// The bar fills toward 100%; anything beyond is drawn as a trailing
// overflow block so an overbooked week is visible at a glance.
func RenderLoad(percent int, width int) string {
	if percent < 0 {
		percent = 0
	}
	if width < 2 {
		width = 2
	}

	filled := percent * width / 100
	if filled > width {
		filled = width
	}

	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)
	if percent > 100 {
		bar = strings.Repeat(filledBlock, width-1) + overflowBlock
	}

	style := LoadColor(percent)
	return fmt.Sprintf("[%s] %s", style.Render(bar), style.Render(fmt.Sprintf("%3d%%", percent)))
}
