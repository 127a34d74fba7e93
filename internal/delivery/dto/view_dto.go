package dto

import "clinic-admin/internal/listing"

// Request DTOs

// UpdateSessionRequest patches a view session. Absent fields are left alone;
// a facet set to "" or "all" is removed. Action runs after the other changes.
type UpdateSessionRequest struct {
	SearchTerm *string           `json:"searchTerm"`
	Facets     map[string]string `json:"facets"`
	Page       *int              `json:"page"`
	PageSize   *int              `json:"pageSize" validate:"omitempty,min=1,max=100"`
	Action     string            `json:"action" validate:"omitempty,oneof=next previous first last"`
}

// Response DTOs

type SessionResponse struct {
	SearchTerm    string            `json:"searchTerm"`
	Facets        map[string]string `json:"facets"`
	Page          int               `json:"page"`
	PageSize      int               `json:"pageSize"`
	Policy        string            `json:"policy"`
	ActiveFilters int               `json:"activeFilters"`
}

type PageResponse struct {
	Page        int  `json:"page"`
	PageSize    int  `json:"pageSize"`
	PageCount   int  `json:"pageCount"`
	Total       int  `json:"total"`
	HasNext     bool `json:"hasNext"`
	HasPrevious bool `json:"hasPrevious"`
}

type ViewResponse struct {
	View         string                           `json:"view"`
	Session      SessionResponse                  `json:"session"`
	Items        interface{}                      `json:"items"`
	Pagination   PageResponse                     `json:"pagination"`
	FacetOptions map[string][]listing.FacetOption `json:"facetOptions"`
}
