package viewmodels

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"carhub/internal/browse"
	"carhub/internal/domain"
	"carhub/internal/logging"
	"carhub/internal/ui/state"
)

func TestBuildViewStateFromDecision(t *testing.T) {
	ctrl := browse.New(browse.WithLogger(logging.Discard()))
	ticket, _ := ctrl.Sync()
	ctrl.Resolve(ticket.Seq, domain.Listing{Cars: make([]domain.Car, 10)}, nil)

	st := state.NewAppState()
	st.Width, st.Height = 120, 40
	st.SelectedIndex = 3
	vm := NewViewModel(st, ctrl, 2024)
	vm.SetSpinner("*")

	vs := vm.BuildViewState()

	assert.True(t, vs.ShowResults)
	assert.False(t, vs.ShowEmpty)
	assert.False(t, vs.Fetching)
	assert.Len(t, vs.Cars, 10)
	assert.Equal(t, 1.0, vs.PageNumber)
	assert.False(t, vs.IsNext)
	assert.Equal(t, 10, vs.PageSize)
	assert.Equal(t, 3, vs.SelectedIndex)
	assert.Equal(t, "Toyota", vs.Defaults.Manufacturer)
	assert.Equal(t, 2024, vs.CurrentYear)
	assert.Equal(t, "*", vs.Spinner)
}

func TestBuildViewStateCarriesInput(t *testing.T) {
	ctrl := browse.New(browse.WithLogger(logging.Discard()))
	vm := NewViewModel(state.NewAppState(), ctrl, 2024)
	vm.SetInput(InputView{Mode: "year", Prompt: "Year:", Options: domain.YearsOfProduction, Selected: 2})

	vs := vm.BuildViewState()

	assert.Equal(t, "year", vs.InputMode)
	assert.Equal(t, "Year:", vs.InputPrompt)
	assert.Len(t, vs.DropdownOptions, len(domain.YearsOfProduction))
	assert.Equal(t, 2, vs.DropdownIndex)
	assert.True(t, vs.ShowEmpty)
}
