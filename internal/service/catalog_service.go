package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/abhi-r/verdant/internal/constant"
	"github.com/abhi-r/verdant/internal/dto"
	"github.com/abhi-r/verdant/internal/pkg/logger"
	"github.com/abhi-r/verdant/internal/pkg/serverutils"
	"github.com/abhi-r/verdant/internal/repository/specification"
	"github.com/abhi-r/verdant/internal/repository/unitofwork"
	"github.com/abhi-r/verdant/pkg/catalog"
	"github.com/abhi-r/verdant/pkg/flow"

	"github.com/gofiber/fiber/v2"
	"github.com/patrickmn/go-cache"
)

const (
	CategoryMedical      = "medical"
	CategoryRecreational = "recreational"

	productCacheTTL = 5 * time.Minute
)

type ICatalogService interface {
	List(ctx context.Context, category string, query *dto.CatalogQuery) (*dto.ProductListResponse, error)
	Show(ctx context.Context, category, id string) (*dto.ProductResponse, error)
	Suggest(ctx context.Context, category, query string) (*dto.SuggestionResponse, error)
	Meta(ctx context.Context, category string) (*dto.CatalogMetaResponse, error)
}

// catalogService serves products from the database, caching each
// category in memory. When no database is configured it falls back to
// the bundled JSON dataset, and with neither it degrades to an empty
// catalog rather than failing.
type catalogService struct {
	uowFactory unitofwork.RepositoryFactory
	fallback   catalog.Dataset
	cache      *cache.Cache
	logger     logger.ILogger
}

func NewCatalogService(
	uowFactory unitofwork.RepositoryFactory,
	fallback catalog.Dataset,
	log logger.ILogger,
) ICatalogService {
	return &catalogService{
		uowFactory: uowFactory,
		fallback:   fallback,
		cache:      cache.New(productCacheTTL, 10*time.Minute),
		logger:     log,
	}
}

func (s *catalogService) List(ctx context.Context, category string, query *dto.CatalogQuery) (*dto.ProductListResponse, error) {
	products, err := s.products(ctx, category)
	if err != nil {
		return nil, err
	}

	filter, err := buildFilter(query)
	if err != nil {
		return nil, err
	}

	matched := filter.Apply(products)
	return &dto.ProductListResponse{
		Products: dto.NewProductResponses(matched),
		Count:    len(matched),
		Total:    len(products),
		Guided:   query.Guided == flow.GuidedValue,
	}, nil
}

func (s *catalogService) Show(ctx context.Context, category, id string) (*dto.ProductResponse, error) {
	products, err := s.products(ctx, category)
	if err != nil {
		return nil, err
	}
	for _, p := range products {
		if p.ID == id {
			res := dto.NewProductResponse(p)
			return &res, nil
		}
	}

	// A freshly seeded product may not be in the cached list yet, so
	// check the database before reporting absent.
	if s.uowFactory != nil {
		uow := s.uowFactory.NewUnitOfWork(ctx)
		p, err := uow.ProductRepository().FindOne(ctx,
			specification.ByCategory{Category: category},
			specification.ByProductID{ID: id},
		)
		if err == nil && p != nil {
			res := dto.NewProductResponse(p)
			return &res, nil
		}
	}

	return nil, serverutils.NewHttpError(fiber.StatusNotFound, "product not found")
}

func (s *catalogService) Suggest(ctx context.Context, category, query string) (*dto.SuggestionResponse, error) {
	products, err := s.products(ctx, category)
	if err != nil {
		return nil, err
	}
	matched := catalog.Suggest(products, query, catalog.MaxSuggestions)
	return &dto.SuggestionResponse{
		Suggestions: dto.NewProductResponses(matched),
	}, nil
}

func (s *catalogService) Meta(ctx context.Context, category string) (*dto.CatalogMetaResponse, error) {
	products, err := s.products(ctx, category)
	if err != nil {
		return nil, err
	}

	types := newStringSet()
	formats := newStringSet()
	effects := newStringSet()
	conditions := newStringSet()
	var price dto.PriceRange
	for i, p := range products {
		types.add(p.Type)
		formats.add(p.Format)
		for _, e := range p.Effects {
			effects.add(e)
		}
		for _, m := range p.Mood {
			effects.add(m)
		}
		for _, c := range p.Conditions {
			conditions.add(c)
		}
		if i == 0 || p.Price < price.Min {
			price.Min = p.Price
		}
		if p.Price > price.Max {
			price.Max = p.Price
		}
	}

	ranges := []string{string(catalog.RangeLow), string(catalog.RangeMedium), string(catalog.RangeHigh)}
	return &dto.CatalogMetaResponse{
		Types:      types.values(),
		Formats:    formats.values(),
		Effects:    effects.values(),
		Conditions: conditions.values(),
		ThcRanges:  ranges,
		CbdRanges:  ranges,
		PriceRange: price,
	}, nil
}

// products resolves the full product list for a category, consulting the
// cache, then the database, then the JSON fallback.
func (s *catalogService) products(ctx context.Context, category string) ([]*catalog.Product, error) {
	if category != CategoryMedical && category != CategoryRecreational {
		return nil, serverutils.NewHttpError(fiber.StatusNotFound, fmt.Sprintf("unknown category %q", category))
	}

	cacheKey := "products:" + category
	if cached, found := s.cache.Get(cacheKey); found {
		return cached.([]*catalog.Product), nil
	}

	if s.uowFactory != nil {
		uow := s.uowFactory.NewUnitOfWork(ctx)
		products, err := uow.ProductRepository().FindAll(ctx,
			specification.ByCategory{Category: category},
			specification.OrderBy{Field: "id", Desc: false},
		)
		if err == nil {
			s.cache.Set(cacheKey, products, cache.DefaultExpiration)
			return products, nil
		}
		s.logger.Warn(constant.ModuleCatalog, "Database lookup failed, using fallback dataset", map[string]interface{}{
			"category": category,
			"error":    err.Error(),
		})
	}

	products := s.fallback[category]
	if products == nil {
		products = []*catalog.Product{}
	}
	s.cache.Set(cacheKey, products, cache.DefaultExpiration)
	return products, nil
}

func buildFilter(query *dto.CatalogQuery) (*catalog.Filter, error) {
	filter := &catalog.Filter{
		Type:       splitList(query.Type),
		Format:     splitList(query.Format),
		Effects:    splitList(query.Effects),
		Conditions: splitList(query.Conditions),
		Search:     strings.TrimSpace(query.Search),
	}

	if query.ThcRange != "" {
		if !catalog.ValidRange(query.ThcRange) {
			return nil, serverutils.NewHttpError(fiber.StatusUnprocessableEntity, fmt.Sprintf("invalid thcRange %q", query.ThcRange))
		}
		filter.THCRange = catalog.Range(query.ThcRange)
	}
	if query.CbdRange != "" {
		if !catalog.ValidRange(query.CbdRange) {
			return nil, serverutils.NewHttpError(fiber.StatusUnprocessableEntity, fmt.Sprintf("invalid cbdRange %q", query.CbdRange))
		}
		filter.CBDRange = catalog.Range(query.CbdRange)
	}

	return filter, nil
}

func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

type stringSet struct {
	seen  map[string]struct{}
	order []string
}

func newStringSet() *stringSet {
	return &stringSet{seen: make(map[string]struct{})}
}

func (s *stringSet) add(value string) {
	if value == "" {
		return
	}
	if _, ok := s.seen[value]; ok {
		return
	}
	s.seen[value] = struct{}{}
	s.order = append(s.order, value)
}

func (s *stringSet) values() []string {
	if s.order == nil {
		return []string{}
	}
	return s.order
}
