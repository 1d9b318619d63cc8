package types

// Navigation actions
type NavigateAction struct {
	Direction string // "up", "down", "left", "right", "home", "end", "pageup", "pagedown"
}

func (a NavigateAction) Type() string { return "navigate" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Text input actions
type UpdateTextAction struct {
	Text string
}

func (a UpdateTextAction) Type() string { return "update_text" }

type SubmitTextAction struct {
	Text string
	Mode Mode // Which mode submitted the text
}

func (a SubmitTextAction) Type() string { return "submit_text" }

type CancelTextAction struct{}

func (a CancelTextAction) Type() string { return "cancel_text" }

// Dropdown actions
type UpdateOptionIndexAction struct {
	Index int
}

func (a UpdateOptionIndexAction) Type() string { return "update_option_index" }

type SelectOptionAction struct {
	Mode  Mode
	Value string
}

func (a SelectOptionAction) Type() string { return "select_option" }

// Page actions
type ShowMoreAction struct{}

func (a ShowMoreAction) Type() string { return "show_more" }

type RefreshAction struct{}

func (a RefreshAction) Type() string { return "refresh" }

type ClearFiltersAction struct{}

func (a ClearFiltersAction) Type() string { return "clear_filters" }

type OpenDetailsAction struct {
	Index int
}

func (a OpenDetailsAction) Type() string { return "open_details" }

type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type QuitAction struct {
	Force bool
}

func (a QuitAction) Type() string { return "quit" }
