package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"carhub/internal/ui/input/types"
)

type NormalMode struct {
	lastKeyWasG bool
}

func NewNormalMode() *NormalMode {
	return &NormalMode{}
}

func (m *NormalMode) Name() string {
	return "normal"
}

func (m *NormalMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	wasG := m.lastKeyWasG
	m.lastKeyWasG = false

	switch msg.Type {
	case tea.KeyCtrlC:
		return []types.Action{types.QuitAction{Force: true}}, true

	case tea.KeyUp:
		return []types.Action{types.NavigateAction{Direction: "up"}}, true

	case tea.KeyDown:
		return []types.Action{types.NavigateAction{Direction: "down"}}, true

	case tea.KeyLeft:
		return []types.Action{types.NavigateAction{Direction: "left"}}, true

	case tea.KeyRight:
		return []types.Action{types.NavigateAction{Direction: "right"}}, true

	case tea.KeyPgUp:
		return []types.Action{types.NavigateAction{Direction: "pageup"}}, true

	case tea.KeyPgDown:
		return []types.Action{types.NavigateAction{Direction: "pagedown"}}, true

	case tea.KeyHome:
		return []types.Action{types.NavigateAction{Direction: "home"}}, true

	case tea.KeyEnd:
		return []types.Action{types.NavigateAction{Direction: "end"}}, true

	case tea.KeyEnter:
		if ctx.TotalItems() == 0 {
			return nil, false
		}
		return []types.Action{types.OpenDetailsAction{Index: ctx.CurrentIndex()}}, true
	}

	switch msg.String() {
	case "q":
		return []types.Action{types.QuitAction{}}, true

	case "?":
		return []types.Action{types.ToggleHelpAction{}}, true

	case "j":
		return []types.Action{types.NavigateAction{Direction: "down"}}, true

	case "k":
		return []types.Action{types.NavigateAction{Direction: "up"}}, true

	case "h":
		return []types.Action{types.NavigateAction{Direction: "left"}}, true

	case "l":
		return []types.Action{types.NavigateAction{Direction: "right"}}, true

	case "g":
		if wasG {
			return []types.Action{types.NavigateAction{Direction: "home"}}, true
		}
		m.lastKeyWasG = true
		return nil, true

	case "G":
		return []types.Action{types.NavigateAction{Direction: "end"}}, true

	case "/":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeManufacturer}}, true

	case "m":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeModel}}, true

	case "f":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeFuel}}, true

	case "y":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeYear}}, true

	case "n":
		// The control is hidden while the last page came back short
		if !ctx.CanShowMore() {
			return nil, false
		}
		return []types.Action{types.ShowMoreAction{}}, true

	case "r":
		return []types.Action{types.RefreshAction{}}, true

	case "x":
		return []types.Action{types.ClearFiltersAction{}}, true
	}

	return nil, false
}
