package entity

import (
	"time"

	"github.com/google/uuid"
)

type FlowEventType string

const (
	FlowEventCompleted FlowEventType = "COMPLETED"
	FlowEventAbandoned FlowEventType = "ABANDONED"
)

// FlowEvent records the outcome of one guided-flow session, for the
// admin stats view.
type FlowEvent struct {
	Id          uuid.UUID
	SessionId   string
	Category    string
	EventType   FlowEventType
	Filters     string // projected filters as an encoded query string
	AnswerCount int
	OccurredAt  time.Time
	CreatedAt   time.Time
}
