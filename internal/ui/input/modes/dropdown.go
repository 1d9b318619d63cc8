package modes

import (
	"strconv"

	tea "github.com/charmbracelet/bubbletea"

	"carhub/internal/domain"
	"carhub/internal/ui/input/types"
)

// DropdownMode picks one value from a static option list. One instance
// exists per filter dimension.
type DropdownMode struct {
	mode    types.Mode
	name    string
	options []domain.Option
	current func(domain.Filters) string
	index   int
}

// NewFuelMode creates the fuel dropdown
func NewFuelMode() *DropdownMode {
	return &DropdownMode{
		mode:    types.ModeFuel,
		name:    "fuel",
		options: domain.Fuels,
		current: func(f domain.Filters) string { return f.Fuel },
	}
}

// NewYearMode creates the year dropdown
func NewYearMode() *DropdownMode {
	return &DropdownMode{
		mode:    types.ModeYear,
		name:    "year",
		options: domain.YearsOfProduction,
		current: func(f domain.Filters) string {
			if f.Year == 0 {
				return ""
			}
			return strconv.Itoa(f.Year)
		},
	}
}

func (m *DropdownMode) Name() string {
	return m.name
}

// Options returns the static option list
func (m *DropdownMode) Options() []domain.Option {
	return m.options
}

// CurrentIndex returns the highlighted option
func (m *DropdownMode) CurrentIndex() int {
	return m.index
}

func (m *DropdownMode) Enter(ctx types.Context) []types.Action {
	m.index = domain.IndexOf(m.options, m.current(ctx.Filters()))
	return []types.Action{types.UpdateOptionIndexAction{Index: m.index}}
}

func (m *DropdownMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *DropdownMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true

	case "esc", "q":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeNormal}}, true

	case "enter":
		return []types.Action{
			types.SelectOptionAction{Mode: m.mode, Value: m.options[m.index].Value},
			types.ChangeModeAction{Mode: types.ModeNormal},
		}, true

	case "up", "k":
		m.index--
		if m.index < 0 {
			m.index = len(m.options) - 1
		}
		return []types.Action{types.UpdateOptionIndexAction{Index: m.index}}, true

	case "down", "j":
		m.index++
		if m.index >= len(m.options) {
			m.index = 0
		}
		return []types.Action{types.UpdateOptionIndexAction{Index: m.index}}, true
	}

	return nil, false
}
