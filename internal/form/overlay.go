package form

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// RenderPopup draws popup in a bordered card whose top-left corner sits at
// column x of line y of base, like a menu dropping from the control above
// it. The card is shifted left and up as needed to stay inside width by
// height. The result has exactly height lines, each cut to width; lines
// the card does not cover keep their escape sequences (styles, zone
// markers) unchanged.
func RenderPopup(base, popup string, x, y, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	card := strings.Split(popupStyle.Render(popup), "\n")
	cardW := lipgloss.Width(strings.Join(card, "\n"))
	x = clamp(x, 0, width-cardW)
	y = clamp(y, 0, height-len(card))

	lines := strings.Split(base, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	for i, seg := range card {
		if y+i >= height {
			break
		}
		lines[y+i] = splice(lines[y+i], seg, x)
	}
	for i, l := range lines {
		lines[i] = ansi.Truncate(l, width, "")
	}
	return strings.Join(lines, "\n")
}

// splice replaces the cells of line under seg, starting at column x.
func splice(line, seg string, x int) string {
	if w := ansi.StringWidth(line); w < x {
		line += strings.Repeat(" ", x-w)
	}
	left := ansi.Truncate(line, x, "")
	right := ansi.TruncateLeft(line, x+ansi.StringWidth(seg), "")
	return left + ansi.ResetStyle + seg + ansi.ResetStyle + right
}

func clamp(v, lo, hi int) int {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}
