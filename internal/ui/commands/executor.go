package commands

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"carhub/internal/browse"
	"carhub/internal/catalog"
	"carhub/internal/eventbus"
	"carhub/internal/ui/state"
)

// Executor handles command execution
type Executor struct {
	ctx *CommandContext
}

// NewExecutor creates a new command executor
func NewExecutor(ctx context.Context, state *state.AppState, bus eventbus.EventBus, ctrl *browse.Controller, fetcher catalog.Fetcher) *Executor {
	return &Executor{
		ctx: &CommandContext{
			Ctx:        ctx,
			State:      state,
			Bus:        bus,
			Controller: ctrl,
			Fetcher:    fetcher,
		},
	}
}

// ExecuteSync issues a fetch when the filters map to a new request
func (e *Executor) ExecuteSync() tea.Cmd {
	ticket, ok := e.ctx.Controller.Sync()
	if !ok {
		return nil
	}
	return NewFetchCommand(e.ctx, ticket).Execute()
}

// ExecuteRefresh issues a fetch for the current filters unconditionally
func (e *Executor) ExecuteRefresh() tea.Cmd {
	return NewFetchCommand(e.ctx, e.ctx.Controller.Refresh()).Execute()
}

// ExecuteSetManufacturer creates and executes a manufacturer change
func (e *Executor) ExecuteSetManufacturer(v string) tea.Cmd {
	return NewFilterCommand(e.ctx, func(c *browse.Controller) bool { return c.SetManufacturer(v) }, false).Execute()
}

// ExecuteSetModel creates and executes a model change
func (e *Executor) ExecuteSetModel(v string) tea.Cmd {
	return NewFilterCommand(e.ctx, func(c *browse.Controller) bool { return c.SetModel(v) }, false).Execute()
}

// ExecuteSetFuel creates and executes a fuel change
func (e *Executor) ExecuteSetFuel(v string) tea.Cmd {
	return NewFilterCommand(e.ctx, func(c *browse.Controller) bool { return c.SetFuel(v) }, false).Execute()
}

// ExecuteSetYear creates and executes a year change
func (e *Executor) ExecuteSetYear(v int) tea.Cmd {
	return NewFilterCommand(e.ctx, func(c *browse.Controller) bool { return c.SetYear(v) }, false).Execute()
}

// ExecuteShowMore grows the limit by a page and keeps the selection
func (e *Executor) ExecuteShowMore() tea.Cmd {
	return NewFilterCommand(e.ctx, (*browse.Controller).ShowMore, true).Execute()
}

// ExecuteClearFilters resets every filter
func (e *Executor) ExecuteClearFilters() tea.Cmd {
	return NewFilterCommand(e.ctx, (*browse.Controller).ClearFilters, false).Execute()
}
