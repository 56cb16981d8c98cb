package memory

import (
	"context"
	"time"

	"github.com/abhi-r/verdant/internal/repository/contract"
	"github.com/abhi-r/verdant/pkg/flow"

	"github.com/patrickmn/go-cache"
)

type FlowSessionRepository struct {
	cache *cache.Cache
	ttl   time.Duration
}

// NewFlowSessionRepository keeps sessions in process memory. Used when
// redis is unavailable; sessions do not survive a restart.
func NewFlowSessionRepository(ttl time.Duration) contract.FlowSessionRepository {
	c := cache.New(ttl, 10*time.Minute)
	return &FlowSessionRepository{
		cache: c,
		ttl:   ttl,
	}
}

func (r *FlowSessionRepository) Save(ctx context.Context, session *flow.Session) error {
	r.cache.Set(session.ID, session, r.ttl)
	return nil
}

func (r *FlowSessionRepository) Get(ctx context.Context, id string) (*flow.Session, error) {
	if x, found := r.cache.Get(id); found {
		return x.(*flow.Session), nil
	}
	return nil, nil
}

func (r *FlowSessionRepository) Delete(ctx context.Context, id string) error {
	r.cache.Delete(id)
	return nil
}
