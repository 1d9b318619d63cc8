package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title        lipgloss.Style
	Subtitle     lipgloss.Style
	Dim          lipgloss.Style
	Status       lipgloss.Style
	Filter       lipgloss.Style
	FilterLabel  lipgloss.Style
	InfoBox      lipgloss.Style
	Help         lipgloss.Style
	Main         lipgloss.Style
	Scroll       lipgloss.Style
	Highlight    lipgloss.Style
	StatusError  lipgloss.Style
	StatusLoad   lipgloss.Style
	Card         lipgloss.Style
	CardSelected lipgloss.Style
	CardTitle    lipgloss.Style
	Rent         lipgloss.Style
	EmptyBox     lipgloss.Style
	EmptyTitle   lipgloss.Style
	ShowMore     lipgloss.Style
	Option       lipgloss.Style
	OptionActive lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Subtitle:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")).MarginBottom(1),
		Dim:         lipgloss.NewStyle().Faint(true),
		Status:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Filter:      lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		FilterLabel: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		InfoBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(1, 2).
			BorderForeground(lipgloss.Color("99")),
		Help: lipgloss.NewStyle().Faint(true),
		Main: lipgloss.NewStyle().
			Padding(1, 2),
		Scroll:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		Highlight:   lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		StatusError: lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		StatusLoad:  lipgloss.NewStyle().Foreground(lipgloss.Color("51")),  // cyan
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("238")).
			Padding(0, 1).
			Width(CardWidth - 2),
		CardSelected: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("99")).
			Padding(0, 1).
			Width(CardWidth - 2),
		CardTitle: lipgloss.NewStyle().Bold(true),
		Rent:      lipgloss.NewStyle().Foreground(lipgloss.Color("78")).Bold(true), // green
		EmptyBox: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(1, 2),
		EmptyTitle:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		ShowMore:     lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Bold(true),
		Option:       lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		OptionActive: lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Background(lipgloss.Color("238")),
	}
}
