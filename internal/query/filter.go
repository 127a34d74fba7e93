package query

import "strings"

// AllValues is the facet value that disables a facet.
const AllValues = "all"

// Criteria is the search term and facet constraints applied to a snapshot.
type Criteria struct {
	SearchTerm   string
	SearchFields []FieldPath
	Facets       map[FieldPath]string
}

// FacetActive reports whether a facet value constrains the result.
func FacetActive(value string) bool {
	return value != "" && value != AllValues
}

// Filter keeps the records matching the search term on any search field and
// every active facet. Input order is preserved.
func Filter[T any](records []T, schema *Schema[T], c Criteria) []T {
	term := strings.ToLower(c.SearchTerm)
	out := make([]T, 0, len(records))

	for i := range records {
		rec := &records[i]
		if term != "" && !matchesTerm(rec, schema, c.SearchFields, term) {
			continue
		}
		if !matchesFacets(rec, schema, c.Facets) {
			continue
		}
		out = append(out, records[i])
	}

	return out
}

func matchesTerm[T any](rec *T, schema *Schema[T], fields []FieldPath, term string) bool {
	for _, path := range fields {
		value, ok := schema.Resolve(rec, path)
		if !ok {
			continue
		}
		if strings.Contains(strings.ToLower(value), term) {
			return true
		}
	}
	return false
}

func matchesFacets[T any](rec *T, schema *Schema[T], facets map[FieldPath]string) bool {
	for path, want := range facets {
		if !FacetActive(want) {
			continue
		}
		value, ok := schema.Resolve(rec, path)
		if !ok || value != want {
			return false
		}
	}
	return true
}
