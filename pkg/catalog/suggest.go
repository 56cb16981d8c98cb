package catalog

import "strings"

// MaxSuggestions caps the autosuggest dropdown.
const MaxSuggestions = 8

// Suggest returns up to limit products whose name, type, effect, mood or
// condition tags or alternate-name tokens contain the query as a
// case-insensitive substring, in original list order. No ranking is
// applied. An empty query yields nil: the dropdown is hidden, not
// computed.
func Suggest(products []*Product, query string, limit int) []*Product {
	if query == "" {
		return nil
	}
	if limit <= 0 {
		limit = MaxSuggestions
	}

	needle := strings.ToLower(query)
	var matches []*Product
	for _, p := range products {
		if suggestMatch(p, needle) {
			matches = append(matches, p)
			if len(matches) == limit {
				break
			}
		}
	}
	return matches
}

func suggestMatch(p *Product, needle string) bool {
	if strings.Contains(strings.ToLower(p.Name), needle) {
		return true
	}
	if strings.Contains(strings.ToLower(p.Type), needle) {
		return true
	}
	return anyContains(p.Effects, needle) ||
		anyContains(p.Mood, needle) ||
		anyContains(p.Conditions, needle) ||
		anyContains(p.Slang, needle)
}
