package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventFiltersChanged EventType = "FiltersChanged"
	EventFetchIssued    EventType = "FetchIssued"
	EventFetchCompleted EventType = "FetchCompleted"
	EventFetchFailed    EventType = "FetchFailed"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// FiltersChangedEvent carries the full filter snapshot after a user change
type FiltersChangedEvent struct {
	Filters Filters
}

func (e FiltersChangedEvent) Type() EventType { return EventFiltersChanged }

// FetchIssuedEvent is emitted when a request is handed to the listing service
type FetchIssuedEvent struct {
	Seq     uint64
	Request FetchRequest
}

func (e FetchIssuedEvent) Type() EventType { return EventFetchIssued }

// FetchCompletedEvent is emitted when a response was received
type FetchCompletedEvent struct {
	Seq     uint64
	Request FetchRequest
	Count   int
	Message string
	Applied bool
}

func (e FetchCompletedEvent) Type() EventType { return EventFetchCompleted }

// FetchFailedEvent is emitted when the listing service call failed
type FetchFailedEvent struct {
	Seq     uint64
	Request FetchRequest
	Err     error
}

func (e FetchFailedEvent) Type() EventType { return EventFetchFailed }
