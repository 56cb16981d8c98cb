package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/abhi-r/verdant/internal/repository/contract"
	"github.com/abhi-r/verdant/pkg/flow"

	"github.com/redis/go-redis/v9"
)

const sessionKeyPrefix = "verdant:flow_session:"

type FlowSessionRepository struct {
	client *redis.Client
	ttl    time.Duration
}

func NewFlowSessionRepository(client *redis.Client, ttl time.Duration) contract.FlowSessionRepository {
	return &FlowSessionRepository{
		client: client,
		ttl:    ttl,
	}
}

func (r *FlowSessionRepository) Save(ctx context.Context, session *flow.Session) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, sessionKeyPrefix+session.ID, payload, r.ttl).Err()
}

func (r *FlowSessionRepository) Get(ctx context.Context, id string) (*flow.Session, error) {
	payload, err := r.client.Get(ctx, sessionKeyPrefix+id).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var session flow.Session
	if err := json.Unmarshal(payload, &session); err != nil {
		// A corrupt entry is unrecoverable, drop it and report absent.
		r.client.Del(ctx, sessionKeyPrefix+id)
		return nil, nil
	}
	return &session, nil
}

func (r *FlowSessionRepository) Delete(ctx context.Context, id string) error {
	return r.client.Del(ctx, sessionKeyPrefix+id).Err()
}
