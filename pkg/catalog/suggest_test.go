package catalog

import (
	"fmt"
	"testing"
)

func TestSuggestEmptyQueryYieldsNothing(t *testing.T) {
	if got := Suggest(sampleProducts(), "", 8); got != nil {
		t.Fatalf("empty query returned %d suggestions", len(got))
	}
}

func TestSuggestMatchesAcrossFields(t *testing.T) {
	products := sampleProducts()
	tests := []struct {
		query string
		want  []string
	}{
		{"sherb", []string{"r1"}},     // name + slang
		{"sativa", []string{"r2"}},    // type
		{"energy", []string{"r2"}},    // effect tag
		{"uplift", []string{"r2"}},    // mood tag
		{"anxiety", []string{"m1"}},   // condition tag
		{"MANGO", []string{"r2"}},     // slang, case-insensitive
		{"a", []string{"r1", "r2", "m1"}}, // broad match keeps list order
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			got := Suggest(products, tt.query, 8)
			if len(got) != len(tt.want) {
				t.Fatalf("Suggest(%q) = %v, want %v", tt.query, ids(got), tt.want)
			}
			for i, p := range got {
				if p.ID != tt.want[i] {
					t.Errorf("suggestion[%d] = %s, want %s", i, p.ID, tt.want[i])
				}
			}
		})
	}
}

func TestSuggestCapsAtLimit(t *testing.T) {
	var products []*Product
	for i := 0; i < 20; i++ {
		products = append(products, &Product{ID: fmt.Sprintf("p%d", i), Name: fmt.Sprintf("Kush %d", i)})
	}

	got := Suggest(products, "kush", MaxSuggestions)
	if len(got) != MaxSuggestions {
		t.Fatalf("got %d suggestions, want %d", len(got), MaxSuggestions)
	}
	// Original order, no ranking.
	for i, p := range got {
		if p.ID != fmt.Sprintf("p%d", i) {
			t.Fatalf("suggestion[%d] = %s, order not preserved", i, p.ID)
		}
	}
}
