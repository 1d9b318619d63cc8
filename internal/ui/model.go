package ui

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"carhub/internal/browse"
	"carhub/internal/catalog"
	"carhub/internal/domain"
	"carhub/internal/eventbus"
	"carhub/internal/ui/commands"
	"carhub/internal/ui/handlers"
	"carhub/internal/ui/input"
	inputtypes "carhub/internal/ui/input/types"
	"carhub/internal/ui/logic"
	"carhub/internal/ui/state"
	"carhub/internal/ui/viewmodels"
	"carhub/internal/ui/views"
)

// Model represents the UI state
type Model struct {
	bus    eventbus.EventBus
	ctrl   *browse.Controller
	logger *slog.Logger
	state  *state.AppState // centralized state

	help        help.Model
	keys        keyMap
	spinner     spinner.Model
	currentYear int

	// Handlers
	navigator    *logic.Navigator       // navigation and viewport handler
	renderer     *views.Renderer        // view renderer
	eventHandler *handlers.EventHandler // fetch result handler
	viewModel    *viewmodels.ViewModel  // view model for rendering
	cmdExecutor  *commands.Executor     // command executor
	inputHandler *input.Handler         // input handling
	pager        *DetailsPager          // car details pager

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a new UI model. Fetches run against fetcher with ctx.
func NewModel(ctx context.Context, bus eventbus.EventBus, ctrl *browse.Controller, fetcher catalog.Fetcher, logger *slog.Logger) *Model {
	if logger == nil {
		logger = slog.Default()
	}
	appState := state.NewAppState()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("51"))

	m := &Model{
		bus:          bus,
		ctrl:         ctrl,
		logger:       logger,
		state:        appState,
		help:         help.New(),
		keys:         newKeyMap(),
		spinner:      sp,
		currentYear:  time.Now().Year(),
		navigator:    logic.NewNavigator(),
		renderer:     views.NewRenderer(),
		inputHandler: input.New(),
		pager:        NewDetailsPager(),
	}

	m.eventHandler = handlers.NewEventHandler(appState, ctrl, bus, logger)
	m.cmdExecutor = commands.NewExecutor(ctx, appState, bus, ctrl, fetcher)
	m.viewModel = viewmodels.NewViewModel(appState, ctrl, m.currentYear)
	m.viewModel.SetHelp(m.help, m.keys)

	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.pager.SetProgram(p)
}

// modelContext exposes model state to the input modes
type modelContext struct {
	m *Model
}

func (c modelContext) CurrentIndex() int { return c.m.state.SelectedIndex }

func (c modelContext) TotalItems() int { return c.m.ctrl.Results().Len() }

func (c modelContext) CanShowMore() bool {
	d := c.m.ctrl.Decide()
	return d.ShowResults && !d.IsNext
}

func (c modelContext) Filters() domain.Filters { return c.m.ctrl.Filters() }

// syncNavigatorState updates the navigator with current model state
func (m *Model) syncNavigatorState() {
	m.navigator.UpdateState(
		m.state.SelectedIndex,
		m.state.ViewportOffset,
		m.state.ViewportHeight,
		m.state.Columns,
		m.ctrl.Results().Len(),
	)
}

// clampSelection keeps the selection on an existing card after the results
// or the layout changed
func (m *Model) clampSelection() {
	m.syncNavigatorState()
	m.state.SelectedIndex = m.navigator.GetSelectedIndex()
	m.state.ViewportOffset = m.navigator.GetViewportOffset()
}

// Init issues the initial fetch
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.cmdExecutor.ExecuteSync(), m.spinner.Tick)
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.state.Width = msg.Width
		m.state.Height = msg.Height
		m.help.Width = msg.Width
		m.viewModel.SetHelp(m.help, m.keys)
		m.state.Columns = views.GridColumns(msg.Width)
		m.state.ViewportHeight = views.GridRows(msg.Height)
		m.clampSelection()
		return m, nil

	case tea.KeyMsg:
		if m.state.ShowHelp {
			switch msg.String() {
			case "ctrl+c":
				return m, tea.Quit
			case "esc", "q", "?":
				m.state.ShowHelp = false
			}
			return m, nil
		}

		actions, cmd := m.inputHandler.HandleKey(msg, modelContext{m})

		cmds := []tea.Cmd{cmd}
		for _, action := range actions {
			cmds = append(cmds, m.processAction(action))
		}
		// Several filter changes in one pass still produce a single fetch
		cmds = append(cmds, m.cmdExecutor.ExecuteSync())
		return m, tea.Batch(cmds...)

	case commands.CarsFetchedMsg:
		if m.eventHandler.HandleFetched(msg) {
			m.clampSelection()
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case detailsClosedMsg:
		if msg.err != nil {
			m.logger.Error("details pager failed", slog.Any("error", msg.err))
			m.state.SetError("Could not open car details")
		}
		return m, nil
	}

	return m, m.inputHandler.Update(msg)
}

// processAction executes one action produced by the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.NavigateAction:
		m.syncNavigatorState()
		m.state.SelectedIndex, m.state.ViewportOffset = m.navigator.Navigate(a.Direction)

	case inputtypes.SubmitTextAction:
		value := strings.TrimSpace(a.Text)
		switch a.Mode {
		case inputtypes.ModeManufacturer:
			return m.cmdExecutor.ExecuteSetManufacturer(value)
		case inputtypes.ModeModel:
			return m.cmdExecutor.ExecuteSetModel(value)
		}

	case inputtypes.SelectOptionAction:
		switch a.Mode {
		case inputtypes.ModeFuel:
			return m.cmdExecutor.ExecuteSetFuel(a.Value)
		case inputtypes.ModeYear:
			year := 0
			if a.Value != "" {
				y, err := strconv.Atoi(a.Value)
				if err != nil {
					m.logger.Warn("ignoring invalid year option", slog.String("value", a.Value))
					return nil
				}
				year = y
			}
			return m.cmdExecutor.ExecuteSetYear(year)
		}

	case inputtypes.ShowMoreAction:
		return m.cmdExecutor.ExecuteShowMore()

	case inputtypes.RefreshAction:
		return m.cmdExecutor.ExecuteRefresh()

	case inputtypes.ClearFiltersAction:
		return m.cmdExecutor.ExecuteClearFilters()

	case inputtypes.OpenDetailsAction:
		return m.openDetails(a.Index)

	case inputtypes.ToggleHelpAction:
		m.state.ShowHelp = !m.state.ShowHelp

	case inputtypes.QuitAction:
		return tea.Quit
	}
	return nil
}

// openDetails shows the car at index in the pager
func (m *Model) openDetails(index int) tea.Cmd {
	cars := m.ctrl.Results().Cars
	if index < 0 || index >= len(cars) {
		return nil
	}
	content := carDetails(cars[index], m.currentYear)
	pager := m.pager
	return func() tea.Msg {
		return detailsClosedMsg{err: pager.Show(content)}
	}
}

// inputView describes the active input mode for rendering
func (m *Model) inputView() viewmodels.InputView {
	mode := m.inputHandler.ModeName()
	if mode == "" {
		return viewmodels.InputView{}
	}

	if options, index, ok := m.inputHandler.Dropdown(); ok {
		return viewmodels.InputView{
			Mode:     mode,
			Prompt:   strings.ToUpper(mode[:1]) + mode[1:] + ": ",
			Options:  options,
			Selected: index,
		}
	}

	in := viewmodels.InputView{Mode: mode, Prompt: m.inputHandler.Prompt()}
	if ti := m.inputHandler.TextInput(); ti != nil {
		in.Text = ti.View()
	}
	return in
}

// View renders the UI
func (m *Model) View() string {
	if m.state.Width == 0 {
		return "Loading..."
	}

	m.viewModel.SetSpinner(m.spinner.View())
	m.viewModel.SetInput(m.inputView())
	return m.renderer.Render(m.viewModel.BuildViewState())
}
