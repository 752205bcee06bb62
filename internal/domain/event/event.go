// Package event carries the semantic notifications the core emits. How they
// are presented (toasts on the frontend, etc.) is up to the consumer.
package event

import "log"

const (
	QuoteCreated          = "quote.created"
	QuoteValidationFailed = "quote.validationFailed"
	PrintCompleted        = "print.completed"
	PrintFailed           = "print.failed"
)

type Publisher interface {
	Publish(name string, fields map[string]any)
}

// LogPublisher writes events to the process log.
type LogPublisher struct{}

func (LogPublisher) Publish(name string, fields map[string]any) {
	log.Printf("event: %s fields=%v", name, fields)
}

// Discard drops every event. Used in tests.
type Discard struct{}

func (Discard) Publish(string, map[string]any) {}
