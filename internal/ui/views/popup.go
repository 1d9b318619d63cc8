package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// PopupRenderer handles popup/modal rendering
type PopupRenderer struct {
	styles *Styles
}

// NewPopupRenderer creates a new popup renderer
func NewPopupRenderer(styles *Styles) *PopupRenderer {
	return &PopupRenderer{
		styles: styles,
	}
}

// RenderPopupOverlay renders a popup centered on top of a greyed-out main view
func (pr *PopupRenderer) RenderPopupOverlay(mainContent, popupContent string, height, width int, popupStyle lipgloss.Style) string {
	styledPopup := popupStyle.Render(popupContent)

	modalW := lipgloss.Width(styledPopup)
	modalH := lipgloss.Height(styledPopup)
	x := (width - modalW) / 2
	y := (height - modalH) / 2
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}

	base := desaturate(mainContent)
	// Grow the base so the popup has rows to land on
	if missing := height - lipgloss.Height(base); missing > 0 {
		base += strings.Repeat("\n", missing)
	}
	return overlayAt(base, styledPopup, x, y, width, height)
}

// desaturate strips ANSI color/style codes and recolors text dim gray
func desaturate(s string) string {
	lines := strings.Split(s, "\n")
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	for i, line := range lines {
		lines[i] = dim.Render(ansi.Strip(line))
	}
	return strings.Join(lines, "\n")
}

// overlayAt composites overlay onto base at cell position (x, y)
func overlayAt(base, overlay string, x, y, width, height int) string {
	baseLines := strings.Split(base, "\n")
	overlayLines := strings.Split(overlay, "\n")
	overlayWidth := 0
	for _, line := range overlayLines {
		overlayWidth = max(overlayWidth, ansi.StringWidth(line))
	}

	for i, line := range overlayLines {
		row := y + i
		if row >= len(baseLines) || row >= height {
			break
		}
		target := padRight(baseLines[row], width)
		left := ansi.Truncate(target, x, "")
		if w := ansi.StringWidth(left); w < x {
			left += strings.Repeat(" ", x-w)
		}

		pos := x + overlayWidth
		right := ""
		if width > pos {
			right = ansi.TruncateLeft(target, pos, "")
		}
		baseLines[row] = left + padRight(line, overlayWidth) + right
	}
	return strings.Join(baseLines, "\n")
}

func padRight(s string, width int) string {
	w := ansi.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
