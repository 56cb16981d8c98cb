package contract

import (
	"context"

	"github.com/abhi-r/verdant/internal/repository/specification"
	"github.com/abhi-r/verdant/pkg/catalog"
)

type ProductRepository interface {
	CreateBulk(ctx context.Context, products []*catalog.Product) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*catalog.Product, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*catalog.Product, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
