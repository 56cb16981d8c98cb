package dto

import (
	"time"

	"github.com/abhi-r/verdant/pkg/flow"
)

type OptionResponse struct {
	Value       string `json:"value"`
	Label       string `json:"label"`
	Description string `json:"description,omitempty"`
}

type QuestionResponse struct {
	Id            string           `json:"id"`
	Text          string           `json:"text"`
	Subtitle      string           `json:"subtitle,omitempty"`
	Mode          string           `json:"mode"`
	MaxSelections int              `json:"max_selections,omitempty"`
	Options       []OptionResponse `json:"options"`
}

type ProgressResponse struct {
	Step  int `json:"step"`
	Total int `json:"total"`
}

// FlowStateResponse is the full view of a session returned by every
// flow endpoint that leaves the session in progress.
type FlowStateResponse struct {
	SessionId  string              `json:"session_id"`
	Category   string              `json:"category,omitempty"`
	Question   *QuestionResponse   `json:"question"`
	Selection  []string            `json:"selection"`
	Answers    map[string][]string `json:"answers"`
	Progress   ProgressResponse    `json:"progress"`
	CanRetreat bool                `json:"can_retreat"`
	IsLast     bool                `json:"is_last"`
	StartedAt  time.Time           `json:"started_at"`
}

type SelectOptionRequest struct {
	Value string `json:"value" validate:"required"`
}

// AdvanceResponse reports the result of committing the current answer.
// When Completed is true the session has been closed and the client
// should navigate to RedirectURL.
type AdvanceResponse struct {
	Completed   bool               `json:"completed"`
	State       *FlowStateResponse `json:"state,omitempty"`
	Category    string             `json:"category,omitempty"`
	RedirectURL string             `json:"redirect_url,omitempty"`
	Filters     map[string]string  `json:"filters,omitempty"`
}

// FlowEventMessage is the payload published on the flow events topic.
type FlowEventMessage struct {
	SessionId   string    `json:"session_id"`
	Category    string    `json:"category"`
	EventType   string    `json:"event_type"`
	Filters     string    `json:"filters"`
	AnswerCount int       `json:"answer_count"`
	OccurredAt  time.Time `json:"occurred_at"`
}

func NewFlowStateResponse(s *flow.Session, node *flow.Node, step, total int, isLast bool) *FlowStateResponse {
	answers := make(map[string][]string, len(s.Answers))
	for id, values := range s.Answers {
		answers[string(id)] = values
	}

	var question *QuestionResponse
	if node != nil {
		options := make([]OptionResponse, len(node.Options))
		for i, o := range node.Options {
			options[i] = OptionResponse{
				Value:       o.Value,
				Label:       o.Label,
				Description: o.Description,
			}
		}
		question = &QuestionResponse{
			Id:            string(node.ID),
			Text:          node.Text,
			Subtitle:      node.Subtitle,
			Mode:          string(node.Mode),
			MaxSelections: node.MaxSelections,
			Options:       options,
		}
	}

	selection := s.Selection
	if selection == nil {
		selection = []string{}
	}

	return &FlowStateResponse{
		SessionId:  s.ID,
		Category:   string(s.Category),
		Question:   question,
		Selection:  selection,
		Answers:    answers,
		Progress:   ProgressResponse{Step: step, Total: total},
		CanRetreat: len(s.History) > 0,
		IsLast:     isLast,
		StartedAt:  s.StartedAt,
	}
}
