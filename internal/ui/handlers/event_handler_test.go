package handlers

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"carhub/internal/browse"
	"carhub/internal/domain"
	"carhub/internal/eventbus"
	"carhub/internal/logging"
	"carhub/internal/ui/commands"
	"carhub/internal/ui/state"
)

type recordingBus struct {
	mu     sync.Mutex
	events []eventbus.DomainEvent
}

func (b *recordingBus) Publish(e eventbus.DomainEvent) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = append(b.events, e)
}

func (b *recordingBus) Subscribe(eventbus.EventType, eventbus.EventHandler) func() { return func() {} }
func (b *recordingBus) Close()                                                     {}

func setup(policy browse.StalePolicy) (*EventHandler, *browse.Controller, *recordingBus, *state.AppState) {
	ctrl := browse.New(browse.WithLogger(logging.Discard()), browse.WithStalePolicy(policy))
	bus := &recordingBus{}
	st := state.NewAppState()
	return NewEventHandler(st, ctrl, bus, logging.Discard()), ctrl, bus, st
}

func TestHandleFetchedAppliesCars(t *testing.T) {
	h, ctrl, bus, st := setup(browse.LastResolvedWins)
	ticket, _ := ctrl.Sync()

	applied := h.HandleFetched(commands.CarsFetchedMsg{
		Ticket:  ticket,
		Listing: domain.Listing{Cars: make([]domain.Car, 3)},
	})

	assert.True(t, applied)
	assert.Equal(t, 3, ctrl.Results().Len())
	assert.Equal(t, "Showing 3 cars", st.StatusMessage)
	assert.Equal(t, 1, st.Responses)
	require.Len(t, bus.events, 1)
	done := bus.events[0].(eventbus.FetchCompletedEvent)
	assert.Equal(t, 3, done.Count)
	assert.True(t, done.Applied)
}

func TestHandleFetchedFailure(t *testing.T) {
	h, ctrl, bus, st := setup(browse.LastResolvedWins)
	ticket, _ := ctrl.Sync()
	h.HandleFetched(commands.CarsFetchedMsg{Ticket: ticket, Listing: domain.Listing{Cars: make([]domain.Car, 2)}})

	refresh := ctrl.Refresh()
	boom := errors.New("boom")
	applied := h.HandleFetched(commands.CarsFetchedMsg{Ticket: refresh, Err: boom})

	assert.False(t, applied)
	assert.False(t, ctrl.Loading())
	assert.Equal(t, 2, ctrl.Results().Len())
	assert.NotEmpty(t, st.LastError)
	failed, ok := bus.events[len(bus.events)-1].(eventbus.FetchFailedEvent)
	require.True(t, ok)
	assert.ErrorIs(t, failed.Err, boom)
}

func TestHandleFetchedStaleUnderLastIssued(t *testing.T) {
	h, ctrl, bus, _ := setup(browse.LastIssuedWins)
	first, _ := ctrl.Sync()
	ctrl.SetLimit(20)
	ctrl.Sync()

	applied := h.HandleFetched(commands.CarsFetchedMsg{Ticket: first, Listing: domain.Listing{Cars: make([]domain.Car, 10)}})

	assert.False(t, applied)
	assert.True(t, ctrl.Loading())
	assert.Zero(t, ctrl.Results().Len())
	require.Len(t, bus.events, 1)
	assert.False(t, bus.events[0].(eventbus.FetchCompletedEvent).Applied)
}

func TestHandleFetchedEmptyListing(t *testing.T) {
	h, ctrl, _, st := setup(browse.LastResolvedWins)
	ticket, _ := ctrl.Sync()

	h.HandleFetched(commands.CarsFetchedMsg{Ticket: ticket, Listing: domain.Listing{Message: "no cars"}})

	assert.Equal(t, "no cars", ctrl.Results().Message)
	assert.Equal(t, "No cars match these filters", st.StatusMessage)
}
