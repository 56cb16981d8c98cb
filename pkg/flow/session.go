package flow

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Session is the persisted record of one user's progress through the
// guided flow. Answers for single-choice questions are stored as a
// one-element slice so the repository layer deals with a single shape.
//
// Selection is the in-progress (not yet committed) choice for the current
// question; it only becomes part of Answers on Advance.
type Session struct {
	ID        string              `json:"id"`
	Category  Category            `json:"category,omitempty"`
	Answers   map[NodeID][]string `json:"answers"`
	Current   NodeID              `json:"current_question_id"`
	History   []NodeID            `json:"question_history"`
	Selection []string            `json:"selection,omitempty"`
	StartedAt time.Time           `json:"started_at"`
	UpdatedAt time.Time           `json:"last_updated_at"`
}

// NewSession creates a fresh session positioned at the root question.
func NewSession() *Session {
	now := time.Now()
	return &Session{
		ID:        fmt.Sprintf("gf-%s", uuid.NewString()),
		Answers:   make(map[NodeID][]string),
		Current:   RootNode,
		History:   make([]NodeID, 0, 8),
		StartedAt: now,
		UpdatedAt: now,
	}
}

// StaleAfter reports whether the session has gone unused longer than ttl.
func (s *Session) StaleAfter(ttl time.Duration) bool {
	return time.Since(s.UpdatedAt) > ttl
}

// Touch bumps the last-updated timestamp. Repositories call this right
// before persisting.
func (s *Session) Touch() {
	s.UpdatedAt = time.Now()
}
