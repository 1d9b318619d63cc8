package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap describes the normal mode bindings for the help popup. Dispatch
// itself happens in the input modes.
type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	Top      key.Binding
	Bottom   key.Binding
	Page     key.Binding
	Make     key.Binding
	Model    key.Binding
	Fuel     key.Binding
	Year     key.Binding
	ShowMore key.Binding
	Refresh  key.Binding
	Clear    key.Binding
	Details  key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:     key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
		Right:    key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
		Top:      key.NewBinding(key.WithKeys("g", "home"), key.WithHelp("gg", "first car")),
		Bottom:   key.NewBinding(key.WithKeys("G", "end"), key.WithHelp("G", "last car")),
		Page:     key.NewBinding(key.WithKeys("pgup", "pgdown"), key.WithHelp("PgUp/PgDn", "page")),
		Make:     key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search manufacturer")),
		Model:    key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "search model")),
		Fuel:     key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "fuel filter")),
		Year:     key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "year filter")),
		ShowMore: key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "show more")),
		Refresh:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		Clear:    key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "clear filters")),
		Details:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "car details")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "toggle help")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Make, k.Fuel, k.Year, k.ShowMore, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right, k.Top, k.Bottom, k.Page},
		{k.Make, k.Model, k.Fuel, k.Year, k.Clear},
		{k.ShowMore, k.Refresh, k.Details, k.Help, k.Quit},
	}
}
