package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"carhub/internal/domain"
)

// Card geometry in terminal cells, border included
const (
	CardWidth  = 30
	CardHeight = 6
	cardGap    = 1
)

// CardRenderer renders a single car as a bordered card
type CardRenderer struct {
	styles *Styles
}

// NewCardRenderer creates a new card renderer
func NewCardRenderer(styles *Styles) *CardRenderer {
	return &CardRenderer{styles: styles}
}

// RenderCard renders one car. currentYear feeds the rent estimate.
func (cr *CardRenderer) RenderCard(car domain.Car, selected bool, currentYear int) string {
	inner := CardWidth - 4

	title := cr.styles.CardTitle.Render(ansi.Truncate(car.Title(), inner, "…"))
	rent := cr.styles.Rent.Render(fmt.Sprintf("$%d", domain.RentPerDay(car, currentYear))) + cr.styles.Dim.Render("/day")

	specs := car.TransmissionName()
	if car.Drive != "" {
		specs += ", " + strings.ToUpper(car.Drive)
	}
	mpg := fmt.Sprintf("%d MPG city", car.CityMPG)

	body := strings.Join([]string{
		title,
		rent,
		ansi.Truncate(specs, inner, "…"),
		cr.styles.Dim.Render(mpg),
	}, "\n")

	if selected {
		return cr.styles.CardSelected.Render(body)
	}
	return cr.styles.Card.Render(body)
}

// GridColumns returns how many cards fit across the given width
func GridColumns(width int) int {
	usable := width - 4 // main container padding
	cols := (usable + cardGap) / (CardWidth + cardGap)
	if cols < 1 {
		return 1
	}
	return cols
}

// GridRows returns how many card rows fit in the given height once the
// page chrome is accounted for
func GridRows(height int) int {
	rows := (height - chromeLines) / CardHeight
	if rows < 1 {
		return 1
	}
	return rows
}

// RenderGrid lays out cards row by row starting at the given row offset
func (cr *CardRenderer) RenderGrid(cars []domain.Car, selected, columns, rowOffset, rows, currentYear int) string {
	if columns < 1 {
		columns = 1
	}
	var lines []string
	gap := strings.Repeat(" ", cardGap)

	start := rowOffset * columns
	end := start + rows*columns
	if end > len(cars) {
		end = len(cars)
	}

	for rowStart := start; rowStart < end; rowStart += columns {
		var cells []string
		for i := rowStart; i < rowStart+columns && i < end; i++ {
			if len(cells) > 0 {
				cells = append(cells, gap)
			}
			cells = append(cells, cr.RenderCard(cars[i], i == selected, currentYear))
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return strings.Join(lines, "\n")
}
