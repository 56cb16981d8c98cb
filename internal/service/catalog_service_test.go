package service

import (
	"context"
	"testing"

	"github.com/abhi-r/verdant/internal/dto"
	"github.com/abhi-r/verdant/internal/pkg/serverutils"
	"github.com/abhi-r/verdant/pkg/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDataset() catalog.Dataset {
	return catalog.Dataset{
		"recreational": {
			{ID: "r1", Category: "recreational", Name: "Sunset Sherbet", Type: "Hybrid", Format: "Flower",
				THC: 18, Effects: []string{"euphoria", "relaxation"}, Mood: []string{"happy", "giggly"},
				Slang: []string{"Sherb"}, Description: "Dessert-sweet hybrid.", Price: 45},
			{ID: "r2", Category: "recreational", Name: "Green Crack", Type: "Sativa", Format: "Vape",
				THC: 10, Effects: []string{"energy", "focus"}, Mood: []string{"energized"},
				Slang: []string{"Cush", "Mango Crack"}, Description: "Daytime sativa.", Price: 32.5},
		},
		"medical": {
			{ID: "m1", Category: "medical", Name: "Charlotte's Web", Type: "CBD-Dominant", Format: "Tincture",
				CBD: 17, Effects: []string{"anti-anxiety"}, Conditions: []string{"anxiety", "epilepsy"},
				Description: "High-CBD tincture."},
		},
	}
}

func newTestCatalogService() ICatalogService {
	return NewCatalogService(nil, testDataset(), nopLogger{})
}

func TestCatalogListFiltersAndGuidedFlag(t *testing.T) {
	svc := newTestCatalogService()
	ctx := context.Background()

	res, err := svc.List(ctx, "recreational", &dto.CatalogQuery{
		Effects: "euphoria,energy",
		Guided:  "1",
	})
	require.NoError(t, err)
	assert.Equal(t, 2, res.Count)
	assert.Equal(t, 2, res.Total)
	assert.True(t, res.Guided)

	res, err = svc.List(ctx, "recreational", &dto.CatalogQuery{Format: "Vape", ThcRange: "medium"})
	require.NoError(t, err)
	require.Equal(t, 1, res.Count)
	assert.Equal(t, "r2", res.Products[0].Id)
	assert.False(t, res.Guided)
}

func TestCatalogListRejectsInvalidRange(t *testing.T) {
	svc := newTestCatalogService()

	_, err := svc.List(context.Background(), "recreational", &dto.CatalogQuery{ThcRange: "extreme"})
	var httpErr *serverutils.HttpError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, 422, httpErr.Code)
}

func TestCatalogUnknownCategory(t *testing.T) {
	svc := newTestCatalogService()

	_, err := svc.List(context.Background(), "wellness", &dto.CatalogQuery{})
	var httpErr *serverutils.HttpError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, 404, httpErr.Code)
}

func TestCatalogShow(t *testing.T) {
	svc := newTestCatalogService()
	ctx := context.Background()

	res, err := svc.Show(ctx, "medical", "m1")
	require.NoError(t, err)
	assert.Equal(t, "Charlotte's Web", res.Name)

	_, err = svc.Show(ctx, "medical", "m404")
	var httpErr *serverutils.HttpError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, 404, httpErr.Code)
}

func TestCatalogSuggestMatchesSlang(t *testing.T) {
	svc := newTestCatalogService()

	res, err := svc.Suggest(context.Background(), "recreational", "cush")
	require.NoError(t, err)
	require.Len(t, res.Suggestions, 1)
	assert.Equal(t, "r2", res.Suggestions[0].Id)
}

func TestCatalogMetaCollectsVocabulary(t *testing.T) {
	svc := newTestCatalogService()

	res, err := svc.Meta(context.Background(), "recreational")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Hybrid", "Sativa"}, res.Types)
	assert.ElementsMatch(t, []string{"Flower", "Vape"}, res.Formats)
	assert.Contains(t, res.Effects, "happy") // mood tags fold into effects
	assert.Equal(t, []string{"low", "medium", "high"}, res.ThcRanges)
	assert.Equal(t, 32.5, res.PriceRange.Min)
	assert.Equal(t, 45.0, res.PriceRange.Max)
}
