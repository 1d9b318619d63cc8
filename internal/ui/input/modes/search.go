package modes

import (
	"github.com/charmbracelet/bubbles/textinput"

	"carhub/internal/domain"
	"carhub/internal/ui/input/types"
)

// ManufacturerMode edits the manufacturer search term
type ManufacturerMode struct {
	TextInputMode
}

func NewManufacturerMode(ti *textinput.Model) *ManufacturerMode {
	return &ManufacturerMode{
		TextInputMode: NewTextInputMode(types.ModeManufacturer, "manufacturer", "Manufacturer: ", ti),
	}
}

// Enter prefills the current value and offers known manufacturers on tab
func (m *ManufacturerMode) Enter(ctx types.Context) []types.Action {
	actions := m.TextInputMode.Enter(ctx)
	m.textInput.SetValue(ctx.Filters().Manufacturer)
	m.textInput.SetSuggestions(domain.Manufacturers)
	m.textInput.ShowSuggestions = true
	return actions
}

// ModelMode edits the model search term
type ModelMode struct {
	TextInputMode
}

func NewModelMode(ti *textinput.Model) *ModelMode {
	return &ModelMode{
		TextInputMode: NewTextInputMode(types.ModeModel, "model", "Model: ", ti),
	}
}

func (m *ModelMode) Enter(ctx types.Context) []types.Action {
	actions := m.TextInputMode.Enter(ctx)
	m.textInput.SetValue(ctx.Filters().Model)
	return actions
}
