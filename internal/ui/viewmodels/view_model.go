package viewmodels

import (
	"github.com/charmbracelet/bubbles/help"

	"carhub/internal/browse"
	"carhub/internal/domain"
	"carhub/internal/ui/state"
	"carhub/internal/ui/views"
)

// InputView is what the active input mode contributes to the page
type InputView struct {
	Mode     string
	Prompt   string
	Text     string
	Options  []domain.Option
	Selected int
}

// ViewModel transforms application state into view-ready data
type ViewModel struct {
	state       *state.AppState
	ctrl        *browse.Controller
	help        help.Model
	keys        help.KeyMap
	input       InputView
	spinner     string
	currentYear int
}

// NewViewModel creates a new view model
func NewViewModel(appState *state.AppState, ctrl *browse.Controller, currentYear int) *ViewModel {
	return &ViewModel{
		state:       appState,
		ctrl:        ctrl,
		currentYear: currentYear,
	}
}

// SetHelp sets the help model and the key map it renders
func (vm *ViewModel) SetHelp(helpModel help.Model, keys help.KeyMap) {
	vm.help = helpModel
	vm.keys = keys
}

// SetInput sets what the input line shows
func (vm *ViewModel) SetInput(in InputView) {
	vm.input = in
}

// SetSpinner sets the current spinner frame
func (vm *ViewModel) SetSpinner(frame string) {
	vm.spinner = frame
}

// BuildViewState creates a ViewState for rendering
func (vm *ViewModel) BuildViewState() views.ViewState {
	d := vm.ctrl.Decide()

	return views.ViewState{
		Width:           vm.state.Width,
		Height:          vm.state.Height,
		Filters:         vm.ctrl.Filters(),
		Defaults:        vm.ctrl.Request(),
		CurrentYear:     vm.currentYear,
		Cars:            d.Cars,
		ShowResults:     d.ShowResults,
		ShowLoading:     d.ShowLoading,
		ShowEmpty:       d.ShowEmpty,
		EmptyMessage:    d.EmptyMessage,
		PageNumber:      d.PageNumber,
		IsNext:          d.IsNext,
		PageSize:        vm.ctrl.PageSize(),
		Fetching:        vm.ctrl.Loading(),
		Spinner:         vm.spinner,
		SelectedIndex:   vm.state.SelectedIndex,
		ViewportOffset:  vm.state.ViewportOffset,
		ViewportHeight:  vm.state.ViewportHeight,
		Columns:         vm.state.Columns,
		InputMode:       vm.input.Mode,
		InputPrompt:     vm.input.Prompt,
		TextInput:       vm.input.Text,
		DropdownOptions: vm.input.Options,
		DropdownIndex:   vm.input.Selected,
		StatusMessage:   vm.state.StatusMessage,
		LastError:       vm.state.LastError,
		ShowHelp:        vm.state.ShowHelp,
		HelpModel:       vm.help,
		HelpKeys:        vm.keys,
	}
}
