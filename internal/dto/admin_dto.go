package dto

import (
	"time"

	"github.com/abhi-r/verdant/internal/entity"
)

type AdminLoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AdminLoginResponse struct {
	Token string `json:"token"`
}

type FlowStatsResponse struct {
	Completed   int64 `json:"completed"`
	Abandoned   int64 `json:"abandoned"`
	Medical     int64 `json:"medical"`
	Recreation  int64 `json:"recreational"`
	Last24Hours int64 `json:"last_24_hours"`
}

type FlowEventResponse struct {
	Id          string    `json:"id"`
	SessionId   string    `json:"session_id"`
	Category    string    `json:"category"`
	EventType   string    `json:"event_type"`
	Filters     string    `json:"filters"`
	AnswerCount int       `json:"answer_count"`
	OccurredAt  time.Time `json:"occurred_at"`
}

func NewFlowEventResponses(events []*entity.FlowEvent) []FlowEventResponse {
	out := make([]FlowEventResponse, len(events))
	for i, e := range events {
		out[i] = FlowEventResponse{
			Id:          e.Id.String(),
			SessionId:   e.SessionId,
			Category:    e.Category,
			EventType:   string(e.EventType),
			Filters:     e.Filters,
			AnswerCount: e.AnswerCount,
			OccurredAt:  e.OccurredAt,
		}
	}
	return out
}
