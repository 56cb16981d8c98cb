package catalog

import "testing"

func sampleProducts() []*Product {
	return []*Product{
		{
			ID: "r1", Name: "Sunset Sherbet", Type: "Hybrid", Format: "Flower",
			THC: 18, CBD: 0.5,
			Effects:     []string{"euphoria", "relaxation"},
			Mood:        []string{"happy", "giggly"},
			Description: "A sweet dessert strain for evening use",
			Slang:       []string{"Sherb"},
			Price:       42,
		},
		{
			ID: "r2", Name: "Green Crack", Type: "Sativa", Format: "Vape",
			THC: 10, CBD: 0.2,
			Effects: []string{"energy", "focus"},
			Mood:    []string{"energized", "uplifted"},
			Slang:   []string{"Cush", "Mango Crack"},
			Price:   55,
		},
		{
			ID: "m1", Name: "Charlotte's Web", Type: "CBD-Dominant", Format: "Tincture",
			THC: 0.3, CBD: 17,
			Effects:    []string{"anti-anxiety", "calm"},
			Conditions: []string{"anxiety", "epilepsy"},
			Price:      60,
		},
	}
}

func TestFilterMatchesDimensions(t *testing.T) {
	products := sampleProducts()
	tests := []struct {
		name   string
		filter Filter
		want   []string // expected IDs, in order
	}{
		{"empty filter passes everything", Filter{}, []string{"r1", "r2", "m1"}},
		{"type single", Filter{Type: []string{"Sativa"}}, []string{"r2"}},
		{"type OR within dimension", Filter{Type: []string{"Sativa", "Hybrid"}}, []string{"r1", "r2"}},
		{"format", Filter{Format: []string{"Tincture"}}, []string{"m1"}},
		{"effects match effect tags", Filter{Effects: []string{"energy"}}, []string{"r2"}},
		{"effects match mood tags", Filter{Effects: []string{"giggly"}}, []string{"r1"}},
		{"conditions intersect", Filter{Conditions: []string{"epilepsy", "migraines"}}, []string{"m1"}},
		{"thc low excludes boundary", Filter{THCRange: RangeLow}, []string{"m1"}},
		{"thc medium includes boundary", Filter{THCRange: RangeMedium}, []string{"r1", "r2"}},
		{"cbd high", Filter{CBDRange: RangeHigh}, []string{"m1"}},
		{"AND across dimensions", Filter{Type: []string{"Hybrid"}, THCRange: RangeMedium}, []string{"r1"}},
		{"AND can exclude", Filter{Type: []string{"Hybrid"}, Format: []string{"Vape"}}, nil},
		{"search name", Filter{Search: "sherbet"}, []string{"r1"}},
		{"search description", Filter{Search: "DESSERT"}, []string{"r1"}},
		{"search condition tag", Filter{Search: "epilep"}, []string{"m1"}},
		{"search slang case-insensitive", Filter{Search: "mango"}, []string{"r2"}},
		{"search no match", Filter{Search: "nonexistent"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.filter.Apply(products)
			if len(got) != len(tt.want) {
				t.Fatalf("matched %d products, want %d (%v)", len(got), len(tt.want), ids(got))
			}
			for i, p := range got {
				if p.ID != tt.want[i] {
					t.Errorf("match[%d] = %s, want %s", i, p.ID, tt.want[i])
				}
			}
		})
	}
}

// THC exactly 10.0 against thcRange=medium: pinned to match, because the
// bucket policy is inclusive-low/exclusive-high.
func TestBoundaryProductMatchesMedium(t *testing.T) {
	p := &Product{ID: "x", Name: "Boundary", THC: 10.0}
	f := Filter{THCRange: RangeMedium}
	if !f.Matches(p) {
		t.Fatal("THC 10.0 must classify as medium")
	}
	if (&Filter{THCRange: RangeLow}).Matches(p) {
		t.Fatal("THC 10.0 must not also classify as low")
	}
}

func TestFilterIsZero(t *testing.T) {
	if !(&Filter{}).IsZero() {
		t.Fatal("empty filter should be zero")
	}
	if (&Filter{Search: "x"}).IsZero() {
		t.Fatal("populated filter should not be zero")
	}
}

func ids(products []*Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.ID
	}
	return out
}
