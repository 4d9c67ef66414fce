package client

import (
	"time"

	"github.com/spetersoncode/schemagen"
)

// EventType identifies the kind of event occurring during client operations.
type EventType string

const (
	// EventRequestStart fires before an API request begins.
	EventRequestStart EventType = "request_start"

	// EventRequestComplete fires after an API request completes successfully.
	EventRequestComplete EventType = "request_complete"

	// EventRequestError fires when an API request fails.
	EventRequestError EventType = "request_error"
)

// Event represents an observable occurrence during client operations.
type Event struct {
	Type     EventType
	Provider schemagen.Provider
	Model    string

	// Duration is the elapsed time for finished requests.
	Duration time.Duration

	// Usage is set on EventRequestComplete.
	Usage *schemagen.Usage

	// Error is set on EventRequestError.
	Error error

	Timestamp time.Time
}

// emit sends an event with timestamp to the channel without blocking.
func emit(ch chan<- Event, event Event) {
	if ch == nil {
		return
	}
	event.Timestamp = time.Now()
	select {
	case ch <- event:
	default:
		// Channel full - don't block
	}
}
