package dto

import "github.com/abhi-r/verdant/pkg/catalog"

// CatalogQuery carries the filter query string for a category listing.
// List values arrive comma separated, matching the query strings the
// guided flow produces.
type CatalogQuery struct {
	Type       string `query:"type"`
	Format     string `query:"format"`
	Effects    string `query:"effects"`
	Conditions string `query:"conditions"`
	ThcRange   string `query:"thcRange"`
	CbdRange   string `query:"cbdRange"`
	Search     string `query:"q"`
	Guided     string `query:"guided"`
}

type ProductResponse struct {
	Id          string   `json:"id"`
	Category    string   `json:"category"`
	Name        string   `json:"name"`
	Type        string   `json:"type"`
	Format      string   `json:"format"`
	Thc         float64  `json:"thc"`
	Cbd         float64  `json:"cbd"`
	Effects     []string `json:"effects"`
	Mood        []string `json:"mood,omitempty"`
	Conditions  []string `json:"conditions,omitempty"`
	Description string   `json:"description"`
	Rating      float64  `json:"rating"`
	Reviews     int      `json:"reviews"`
	Price       float64  `json:"price"`
}

type ProductListResponse struct {
	Products []ProductResponse `json:"products"`
	Count    int               `json:"count"`
	Total    int               `json:"total"`
	Guided   bool              `json:"guided"`
}

type SuggestionResponse struct {
	Suggestions []ProductResponse `json:"suggestions"`
}

// CatalogMetaResponse lists the distinct filterable values present in
// a category, so clients can build filter controls without hardcoding.
type CatalogMetaResponse struct {
	Types      []string   `json:"types"`
	Formats    []string   `json:"formats"`
	Effects    []string   `json:"effects"`
	Conditions []string   `json:"conditions"`
	ThcRanges  []string   `json:"thc_ranges"`
	CbdRanges  []string   `json:"cbd_ranges"`
	PriceRange PriceRange `json:"price_range"`
}

type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

func NewProductResponse(p *catalog.Product) ProductResponse {
	return ProductResponse{
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
		Description: p.Description,
		Rating:      p.Rating,
		Reviews:     p.Reviews,
		Price:       p.Price,
	}
}

func NewProductResponses(products []*catalog.Product) []ProductResponse {
	out := make([]ProductResponse, len(products))
	for i, p := range products {
		out[i] = NewProductResponse(p)
	}
	return out
}
