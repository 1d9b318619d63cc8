package views

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"carhub/internal/domain"
)

// Lines the page spends outside the card grid
const chromeLines = 14

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width  int
	Height int

	Filters     domain.Filters
	Defaults    domain.FetchRequest // effective request, shown for empty filters
	CurrentYear int

	Cars         []domain.Car
	ShowResults  bool
	ShowLoading  bool
	ShowEmpty    bool
	EmptyMessage string
	PageNumber   float64
	IsNext       bool
	PageSize     int

	Fetching bool   // any fetch in flight
	Spinner  string // current spinner frame

	SelectedIndex  int
	ViewportOffset int
	ViewportHeight int
	Columns        int

	InputMode       string
	InputPrompt     string
	TextInput       string
	DropdownOptions []domain.Option
	DropdownIndex   int

	StatusMessage string
	LastError     string

	ShowHelp  bool
	HelpModel help.Model
	HelpKeys  help.KeyMap
}

// Renderer handles all view rendering
type Renderer struct {
	styles      *Styles
	cardRender  *CardRenderer
	popupRender *PopupRenderer
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:      styles,
		cardRender:  NewCardRenderer(styles),
		popupRender: NewPopupRenderer(styles),
	}
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	content := &strings.Builder{}

	content.WriteString(r.renderHero(state))
	content.WriteString("\n")
	content.WriteString(r.renderFilterBar(state))
	content.WriteString("\n\n")

	if state.InputMode != "" {
		content.WriteString(r.renderInput(state))
		content.WriteString("\n\n")
	}

	switch {
	case state.ShowResults:
		content.WriteString(r.renderResults(state))
	case state.ShowEmpty:
		content.WriteString(r.renderEmpty(state))
	}

	helpText := ""
	if !state.ShowHelp {
		helpText = r.styles.Help.Render("Press ? for help")
	}

	// Push the status and help lines to the bottom
	currentLines := strings.Count(content.String(), "\n") + 1
	availableLines := state.Height - 2
	if availableLines <= 0 {
		availableLines = 22 // Default terminal height minus padding
	}
	if pad := availableLines - currentLines - 2; pad > 0 {
		content.WriteString(strings.Repeat("\n", pad))
	}
	content.WriteString("\n")
	content.WriteString(r.renderStatus(state))
	content.WriteString("\n")
	content.WriteString(helpText)

	mainStyle := r.styles.Main
	if state.Height > 0 {
		mainStyle = mainStyle.MaxHeight(state.Height)
	}
	finalContent := mainStyle.Render(content.String())

	if state.ShowHelp {
		return r.popupRender.RenderPopupOverlay(finalContent, r.renderHelpContent(state), state.Height, state.Width, r.styles.InfoBox)
	}
	return finalContent
}

// renderHero renders the title with a right-aligned fetch indicator
func (r *Renderer) renderHero(state ViewState) string {
	logo := r.styles.Title.Render("Car Catalogue")
	titleLine := logo

	if state.Fetching {
		indicator := r.styles.StatusLoad.Render(strings.TrimSpace(state.Spinner + " Fetching"))
		termWidth := state.Width
		if termWidth <= 0 {
			termWidth = 80 // Default terminal width
		}
		padding := termWidth - 4 - lipgloss.Width(logo) - lipgloss.Width(indicator)
		if padding < 2 {
			padding = 2
		}
		titleLine = logo + strings.Repeat(" ", padding) + indicator
	}

	return titleLine + "\n" + r.styles.Subtitle.Render("Explore the cars you might like")
}

// renderFilterBar shows the current filters, falling back to the values the
// request will actually use
func (r *Renderer) renderFilterBar(state ViewState) string {
	f := state.Filters
	mk := f.Manufacturer
	if mk == "" {
		mk = state.Defaults.Manufacturer
	}
	year := "any"
	switch {
	case f.Year != 0:
		year = strconv.Itoa(f.Year)
	case state.Defaults.Year != 0:
		year = strconv.Itoa(state.Defaults.Year)
	}

	parts := []string{
		r.filterItem("Make", mk),
		r.filterItem("Model", orAny(f.Model)),
		r.filterItem("Fuel", orAny(f.Fuel)),
		r.filterItem("Year", year),
	}
	return strings.Join(parts, "  ")
}

func (r *Renderer) filterItem(label, value string) string {
	return r.styles.FilterLabel.Render(label+": ") + r.styles.Filter.Render(value)
}

func orAny(s string) string {
	if s == "" {
		return "any"
	}
	return s
}

// renderInput renders the active text prompt or dropdown
func (r *Renderer) renderInput(state ViewState) string {
	if len(state.DropdownOptions) > 0 {
		var opts []string
		for i, opt := range state.DropdownOptions {
			style := r.styles.Option
			if i == state.DropdownIndex {
				style = r.styles.OptionActive
			}
			opts = append(opts, style.Render(" "+opt.Title+" "))
		}
		line := state.InputPrompt + strings.Join(opts, "")
		hint := r.styles.Dim.Render("↑/↓ or j/k to change • Enter to apply • Esc to cancel")
		return line + "\n" + hint
	}

	hint := r.styles.Dim.Render("Enter to search • Esc to cancel")
	return state.InputPrompt + state.TextInput + "\n" + hint
}

// renderResults renders the card grid, scroll hints and the page footer
func (r *Renderer) renderResults(state ViewState) string {
	var lines []string

	columns := max(state.Columns, 1)
	totalRows := (len(state.Cars) + columns - 1) / columns
	rows := max(state.ViewportHeight, 1)

	if state.ViewportOffset > 0 {
		lines = append(lines, r.styles.Scroll.Render(fmt.Sprintf("↑ %d more rows above ↑", state.ViewportOffset)))
	}

	lines = append(lines, r.cardRender.RenderGrid(state.Cars, state.SelectedIndex, columns, state.ViewportOffset, rows, state.CurrentYear))

	if below := totalRows - state.ViewportOffset - rows; below > 0 {
		lines = append(lines, r.styles.Scroll.Render(fmt.Sprintf("↓ %d more rows below ↓", below)))
	}

	lines = append(lines, "", r.renderFooter(state))
	return strings.Join(lines, "\n")
}

// renderFooter shows the page number, the loading spinner while a fetch runs
// and the show more control while the page is full
func (r *Renderer) renderFooter(state ViewState) string {
	parts := []string{r.styles.Dim.Render("Page " + strconv.FormatFloat(state.PageNumber, 'f', -1, 64))}

	if state.ShowLoading {
		parts = append(parts, r.styles.StatusLoad.Render(strings.TrimSpace(state.Spinner+" Loading cars...")))
	}
	if !state.IsNext {
		label := fmt.Sprintf("▸ Show more (n) • next %d", state.PageSize)
		parts = append(parts, r.styles.ShowMore.Render(label))
	}
	return strings.Join(parts, "  ")
}

// renderEmpty renders the no-results panel
func (r *Renderer) renderEmpty(state ViewState) string {
	body := r.styles.EmptyTitle.Render("Oops, no results")
	if state.EmptyMessage != "" {
		body += "\n" + state.EmptyMessage
	}
	return r.styles.EmptyBox.Render(body)
}

func (r *Renderer) renderStatus(state ViewState) string {
	if state.LastError != "" {
		return r.styles.StatusError.Render(state.LastError)
	}
	return r.styles.Status.Render(state.StatusMessage)
}

// renderHelpContent renders the key map in full
func (r *Renderer) renderHelpContent(state ViewState) string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		MarginBottom(1)

	if state.HelpKeys == nil {
		return titleStyle.Render("Car Catalogue Help")
	}

	hm := state.HelpModel
	hm.ShowAll = true
	return titleStyle.Render("Car Catalogue Help") + "\n" + hm.View(state.HelpKeys)
}
