package catalog

import "strings"

// Filter is the active filter set for one catalog view. Each dimension is
// explicitly optional: a zero-value dimension is vacuously satisfied.
// Matching is AND across populated dimensions and OR within a dimension's
// value set.
type Filter struct {
	Type       []string
	Format     []string
	Effects    []string
	Conditions []string
	THCRange   Range
	CBDRange   Range
	Search     string
}

// IsZero reports whether no dimension is populated, in which case every
// record passes.
func (f *Filter) IsZero() bool {
	return len(f.Type) == 0 && len(f.Format) == 0 && len(f.Effects) == 0 &&
		len(f.Conditions) == 0 && f.THCRange == "" && f.CBDRange == "" && f.Search == ""
}

// Matches reports whether the product satisfies every populated dimension.
func (f *Filter) Matches(p *Product) bool {
	if len(f.Type) > 0 && !contains(f.Type, p.Type) {
		return false
	}
	if len(f.Format) > 0 && !contains(f.Format, p.Format) {
		return false
	}
	// Effects match against the product's effect tags or mood tags.
	if len(f.Effects) > 0 && !intersects(f.Effects, p.Effects) && !intersects(f.Effects, p.Mood) {
		return false
	}
	if len(f.Conditions) > 0 && !intersects(f.Conditions, p.Conditions) {
		return false
	}
	if f.THCRange != "" && THCRange(p.THC) != f.THCRange {
		return false
	}
	if f.CBDRange != "" && CBDRange(p.CBD) != f.CBDRange {
		return false
	}
	if f.Search != "" && !f.matchesSearch(p) {
		return false
	}
	return true
}

// Apply returns the products that pass the filter, preserving order.
func (f *Filter) Apply(products []*Product) []*Product {
	matched := make([]*Product, 0, len(products))
	for _, p := range products {
		if f.Matches(p) {
			matched = append(matched, p)
		}
	}
	return matched
}

// matchesSearch is a case-insensitive substring scan over name,
// description, effect tags, condition tags and alternate-name tokens.
// Any one field matching suffices.
func (f *Filter) matchesSearch(p *Product) bool {
	needle := strings.ToLower(f.Search)
	if strings.Contains(strings.ToLower(p.Name), needle) {
		return true
	}
	if strings.Contains(strings.ToLower(p.Description), needle) {
		return true
	}
	return anyContains(p.Effects, needle) ||
		anyContains(p.Conditions, needle) ||
		anyContains(p.Slang, needle)
}

func contains(set []string, value string) bool {
	for _, v := range set {
		if v == value {
			return true
		}
	}
	return false
}

func intersects(candidates, tags []string) bool {
	for _, c := range candidates {
		if contains(tags, c) {
			return true
		}
	}
	return false
}

func anyContains(tags []string, needle string) bool {
	for _, tag := range tags {
		if strings.Contains(strings.ToLower(tag), needle) {
			return true
		}
	}
	return false
}
