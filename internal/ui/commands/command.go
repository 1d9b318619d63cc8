package commands

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"carhub/internal/browse"
	"carhub/internal/catalog"
	"carhub/internal/domain"
	"carhub/internal/eventbus"
	"carhub/internal/ui/state"
)

// Command represents an executable action
type Command interface {
	Execute() tea.Cmd
}

// CommandContext provides context for command execution
type CommandContext struct {
	Ctx        context.Context
	State      *state.AppState
	Bus        eventbus.EventBus
	Controller *browse.Controller
	Fetcher    catalog.Fetcher
}

// CarsFetchedMsg carries the outcome of one listing request back to the
// event loop
type CarsFetchedMsg struct {
	Ticket  browse.Ticket
	Listing domain.Listing
	Err     error
}

// FetchCommand hands an issued ticket to the fetcher
type FetchCommand struct {
	ctx    *CommandContext
	ticket browse.Ticket
}

// NewFetchCommand creates a new fetch command
func NewFetchCommand(ctx *CommandContext, ticket browse.Ticket) *FetchCommand {
	return &FetchCommand{
		ctx:    ctx,
		ticket: ticket,
	}
}

// Execute publishes the issued request and returns the command that runs it.
// The fetch itself runs off the event loop.
func (c *FetchCommand) Execute() tea.Cmd {
	c.ctx.State.Fetches++
	if c.ctx.Bus != nil {
		c.ctx.Bus.Publish(eventbus.FetchIssuedEvent{
			Seq:     c.ticket.Seq,
			Request: c.ticket.Request,
		})
	}

	fetcher := c.ctx.Fetcher
	ctx := c.ctx.Ctx
	ticket := c.ticket
	return func() tea.Msg {
		listing, err := fetcher.Fetch(ctx, ticket.Request)
		return CarsFetchedMsg{Ticket: ticket, Listing: listing, Err: err}
	}
}

// FilterCommand applies one filter change to the controller
type FilterCommand struct {
	ctx           *CommandContext
	apply         func(*browse.Controller) bool
	keepSelection bool
}

// NewFilterCommand creates a new filter command. apply reports whether the
// filters changed.
func NewFilterCommand(ctx *CommandContext, apply func(*browse.Controller) bool, keepSelection bool) *FilterCommand {
	return &FilterCommand{
		ctx:           ctx,
		apply:         apply,
		keepSelection: keepSelection,
	}
}

// Execute applies the change and announces the new filter snapshot. No fetch
// is issued here; the caller syncs once per update pass.
func (c *FilterCommand) Execute() tea.Cmd {
	if !c.apply(c.ctx.Controller) {
		return nil
	}
	if !c.keepSelection {
		c.ctx.State.ResetSelection()
	}
	if c.ctx.Bus != nil {
		c.ctx.Bus.Publish(eventbus.FiltersChangedEvent{
			Filters: c.ctx.Controller.Filters(),
		})
	}
	return nil
}
