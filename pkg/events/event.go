package events

import "time"

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g. "GUIDED_FLOW_COMPLETED").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

// Guided-flow event codes.
const (
	TypeFlowCompleted = "GUIDED_FLOW_COMPLETED"
	TypeFlowAbandoned = "GUIDED_FLOW_ABANDONED"
)

// NewFlowCompleted builds the event emitted when a session reaches the
// terminal node and its filters have been projected.
func NewFlowCompleted(sessionID, category, filters string, answerCount int) Event {
	return BaseEvent{
		Type: TypeFlowCompleted,
		Data: map[string]interface{}{
			"session_id":   sessionID,
			"category":     category,
			"filters":      filters,
			"answer_count": answerCount,
		},
		OccurredAt: time.Now(),
	}
}

// NewFlowAbandoned builds the event emitted when a session is discarded
// before completion.
func NewFlowAbandoned(sessionID, category string, answerCount int) Event {
	return BaseEvent{
		Type: TypeFlowAbandoned,
		Data: map[string]interface{}{
			"session_id":   sessionID,
			"category":     category,
			"answer_count": answerCount,
		},
		OccurredAt: time.Now(),
	}
}
