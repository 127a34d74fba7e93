package query

// ResetPolicy decides what happens to the current page when the search term
// or a facet changes.
type ResetPolicy string

const (
	KeepPage              ResetPolicy = "keep_page"
	ResetOnCriteriaChange ResetPolicy = "reset_on_criteria_change"
)

// Session is the filter and page state of one list view for one viewer.
type Session struct {
	View       string               `json:"view"`
	SearchTerm string               `json:"search_term"`
	Facets     map[FieldPath]string `json:"facets"`
	Page       int                  `json:"page"`
	PageSize   int                  `json:"page_size"`
	Policy     ResetPolicy          `json:"policy"`
}

func NewSession(view string, pageSize int, policy ResetPolicy) *Session {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if policy == "" {
		policy = KeepPage
	}
	return &Session{
		View:     view,
		Facets:   map[FieldPath]string{},
		Page:     1,
		PageSize: pageSize,
		Policy:   policy,
	}
}

// Criteria builds the filter input for the session.
func (s *Session) Criteria(searchFields []FieldPath) Criteria {
	return Criteria{
		SearchTerm:   s.SearchTerm,
		SearchFields: searchFields,
		Facets:       s.Facets,
	}
}

func (s *Session) SetSearchTerm(term string) {
	if term == s.SearchTerm {
		return
	}
	s.SearchTerm = term
	s.criteriaChanged()
}

// SetFacet stores a facet value. An empty or "all" value removes the facet.
func (s *Session) SetFacet(path FieldPath, value string) {
	if s.Facets == nil {
		s.Facets = map[FieldPath]string{}
	}
	current, exists := s.Facets[path]
	if !FacetActive(value) {
		if !exists {
			return
		}
		delete(s.Facets, path)
		s.criteriaChanged()
		return
	}
	if exists && current == value {
		return
	}
	s.Facets[path] = value
	s.criteriaChanged()
}

// Clear resets the search term and every facet.
func (s *Session) Clear() {
	if s.SearchTerm == "" && len(s.Facets) == 0 {
		return
	}
	s.SearchTerm = ""
	s.Facets = map[FieldPath]string{}
	s.criteriaChanged()
}

// ActiveFilters counts the facets that restrict the view. The search term is
// not a filter.
func (s *Session) ActiveFilters() int {
	n := 0
	for _, value := range s.Facets {
		if FacetActive(value) {
			n++
		}
	}
	return n
}

func (s *Session) GoToPage(n, pageCount int) {
	s.Page = ClampPage(n, pageCount)
}

func (s *Session) Next(pageCount int) {
	s.GoToPage(s.Page+1, pageCount)
}

func (s *Session) Previous(pageCount int) {
	s.GoToPage(s.Page-1, pageCount)
}

func (s *Session) First(pageCount int) {
	s.GoToPage(1, pageCount)
}

func (s *Session) Last(pageCount int) {
	s.GoToPage(pageCount, pageCount)
}

func (s *Session) criteriaChanged() {
	if s.Policy == ResetOnCriteriaChange {
		s.Page = 1
	}
}
