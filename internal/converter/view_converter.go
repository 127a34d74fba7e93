package converter

import (
	"clinic-admin/internal/delivery/dto"
	"clinic-admin/internal/listing"
	"clinic-admin/internal/query"
)

func SessionToResponse(s *query.Session) dto.SessionResponse {
	facets := make(map[string]string, len(s.Facets))
	for path, value := range s.Facets {
		facets[string(path)] = value
	}

	return dto.SessionResponse{
		SearchTerm:    s.SearchTerm,
		Facets:        facets,
		Page:          s.Page,
		PageSize:      s.PageSize,
		Policy:        string(s.Policy),
		ActiveFilters: s.ActiveFilters(),
	}
}

// PageToResponse drops the items of p, which callers convert separately.
func PageToResponse[T any](p query.Page[T]) dto.PageResponse {
	return dto.PageResponse{
		Page:        p.Page,
		PageSize:    p.PageSize,
		PageCount:   p.PageCount,
		Total:       p.Total,
		HasNext:     p.HasNext,
		HasPrevious: p.HasPrevious,
	}
}

func FacetOptionsToResponse(options map[query.FieldPath][]listing.FacetOption) map[string][]listing.FacetOption {
	out := make(map[string][]listing.FacetOption, len(options))
	for path, values := range options {
		out[string(path)] = values
	}
	return out
}
