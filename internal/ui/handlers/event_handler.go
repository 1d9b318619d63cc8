package handlers

import (
	"fmt"
	"log/slog"

	"carhub/internal/browse"
	"carhub/internal/eventbus"
	"carhub/internal/ui/commands"
	"carhub/internal/ui/state"
)

// EventHandler applies fetch outcomes to the page and reports them
type EventHandler struct {
	state  *state.AppState
	ctrl   *browse.Controller
	bus    eventbus.EventBus
	logger *slog.Logger
}

// NewEventHandler creates a new event handler
func NewEventHandler(appState *state.AppState, ctrl *browse.Controller, bus eventbus.EventBus, logger *slog.Logger) *EventHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &EventHandler{
		state:  appState,
		ctrl:   ctrl,
		bus:    bus,
		logger: logger,
	}
}

// HandleFetched resolves a listing response against the controller and
// reports whether it replaced the results
func (h *EventHandler) HandleFetched(msg commands.CarsFetchedMsg) bool {
	h.state.Responses++
	applied := h.ctrl.Resolve(msg.Ticket.Seq, msg.Listing, msg.Err)

	if msg.Err != nil {
		h.publish(eventbus.FetchFailedEvent{
			Seq:     msg.Ticket.Seq,
			Request: msg.Ticket.Request,
			Err:     msg.Err,
		})
		// A newer request still pending will report on its own
		if !h.ctrl.Loading() {
			h.state.SetError("Could not load cars. Press r to retry.")
		}
		return false
	}

	h.publish(eventbus.FetchCompletedEvent{
		Seq:     msg.Ticket.Seq,
		Request: msg.Ticket.Request,
		Count:   len(msg.Listing.Cars),
		Message: msg.Listing.Message,
		Applied: applied,
	})

	if !applied {
		h.logger.Debug("listing response not applied", slog.Uint64("seq", msg.Ticket.Seq))
		return false
	}

	switch n := len(msg.Listing.Cars); n {
	case 0:
		h.state.SetStatus("No cars match these filters")
	case 1:
		h.state.SetStatus("Showing 1 car")
	default:
		h.state.SetStatus(fmt.Sprintf("Showing %d cars", n))
	}
	return true
}

func (h *EventHandler) publish(event eventbus.DomainEvent) {
	if h.bus != nil {
		h.bus.Publish(event)
	}
}
