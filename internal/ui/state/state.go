package state

// AppState contains the page state that lives outside the browse controller.
// Filters and results belong to the controller; this is selection, layout
// and overlays only.
type AppState struct {
	// Selection state
	SelectedIndex  int // currently selected card
	ViewportOffset int // first visible grid row
	ViewportHeight int // grid rows that fit on screen
	Columns        int // cards per grid row

	// UI state
	Width         int
	Height        int
	ShowHelp      bool
	StatusMessage string // status bar message
	LastError     string // last fetch failure shown in the status bar
	Fetches       int    // fetches issued since start
	Responses     int    // responses received since start
}

// NewAppState creates a new application state
func NewAppState() *AppState {
	return &AppState{
		ViewportHeight: 2, // Default
		Columns:        1,
	}
}

// SetStatus replaces the status message and clears any error
func (s *AppState) SetStatus(msg string) {
	s.StatusMessage = msg
	s.LastError = ""
}

// SetError records a failure for the status bar
func (s *AppState) SetError(msg string) {
	s.LastError = msg
}

// ResetSelection moves the selection back to the first card
func (s *AppState) ResetSelection() {
	s.SelectedIndex = 0
	s.ViewportOffset = 0
}
