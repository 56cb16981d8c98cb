package mapper

import (
	"github.com/abhi-r/verdant/internal/model"
	"github.com/abhi-r/verdant/pkg/catalog"
)

type ProductMapper struct{}

func NewProductMapper() *ProductMapper {
	return &ProductMapper{}
}

func (m *ProductMapper) ToProduct(p *model.Product) *catalog.Product {
	if p == nil {
		return nil
	}

	return &catalog.Product{
		ID:          p.Id,
		Category:    p.Category,
		Name:        p.Name,
		Type:        p.Type,
		Format:      p.Format,
		THC:         p.Thc,
		CBD:         p.Cbd,
		Effects:     []string(p.Effects),
		Mood:        []string(p.Mood),
		Conditions:  []string(p.Conditions),
		Slang:       []string(p.Slang),
		Description: p.Description,
		Rating:      p.Rating,
		Reviews:     p.Reviews,
		Price:       p.Price,
	}
}

func (m *ProductMapper) ToModel(p *catalog.Product) *model.Product {
	if p == nil {
		return nil
	}

	return &model.Product{
		Id:          p.ID,
		Category:    p.Category,
		Name:        p.Name,
		Type:        p.Type,
		Format:      p.Format,
		Thc:         p.THC,
		Cbd:         p.CBD,
		Effects:     p.Effects,
		Mood:        p.Mood,
		Conditions:  p.Conditions,
		Slang:       p.Slang,
		Description: p.Description,
		Rating:      p.Rating,
		Reviews:     p.Reviews,
		Price:       p.Price,
	}
}

func (m *ProductMapper) ToProducts(products []*model.Product) []*catalog.Product {
	out := make([]*catalog.Product, len(products))
	for i, p := range products {
		out[i] = m.ToProduct(p)
	}
	return out
}

func (m *ProductMapper) ToModels(products []*catalog.Product) []*model.Product {
	out := make([]*model.Product, len(products))
	for i, p := range products {
		out[i] = m.ToModel(p)
	}
	return out
}
