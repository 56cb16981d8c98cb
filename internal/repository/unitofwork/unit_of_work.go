package unitofwork

import (
	"context"

	"github.com/abhi-r/verdant/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	ProductRepository() contract.ProductRepository
	FlowEventRepository() contract.FlowEventRepository
}
