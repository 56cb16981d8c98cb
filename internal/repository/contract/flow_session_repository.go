package contract

import (
	"context"

	"github.com/abhi-r/verdant/pkg/flow"
)

// FlowSessionRepository stores in-progress guided-flow sessions.
// Get returns (nil, nil) when no session exists for the id.
type FlowSessionRepository interface {
	Save(ctx context.Context, session *flow.Session) error
	Get(ctx context.Context, id string) (*flow.Session, error)
	Delete(ctx context.Context, id string) error
}
