package contract

import (
	"context"

	"github.com/abhi-r/verdant/internal/entity"
	"github.com/abhi-r/verdant/internal/repository/specification"
)

type FlowEventRepository interface {
	Create(ctx context.Context, event *entity.FlowEvent) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.FlowEvent, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
