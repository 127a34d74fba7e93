package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSessionKeepPagePolicy(t *testing.T) {
	s := NewSession("employees", 20, KeepPage)
	s.GoToPage(3, 5)

	s.SetSearchTerm("ba")
	s.SetFacet("civilite", "Madame")
	assert.Equal(t, 3, s.Page)
	assert.Equal(t, 1, s.ActiveFilters())
}

func TestActiveFiltersIgnoresSearchTerm(t *testing.T) {
	s := NewSession("consultations", 20, KeepPage)
	s.SetSearchTerm("ba")
	assert.Equal(t, 0, s.ActiveFilters())

	s.SetFacet("lieu", "Port")
	s.SetFacet("repos.accorde", "true")
	s.SetFacet("medecinId", AllValues)
	assert.Equal(t, 2, s.ActiveFilters())
}

func TestSessionResetPolicy(t *testing.T) {
	s := NewSession("consultations", 20, ResetOnCriteriaChange)
	s.GoToPage(3, 5)

	s.SetSearchTerm("ba")
	assert.Equal(t, 1, s.Page)

	s.GoToPage(2, 5)
	s.SetSearchTerm("ba")
	assert.Equal(t, 2, s.Page, "unchanged term keeps the page")

	s.SetFacet("lieu", "Port")
	assert.Equal(t, 1, s.Page)
}

func TestSessionFacetAllRemovesFacet(t *testing.T) {
	s := NewSession("doctors", 20, KeepPage)
	s.SetFacet("role", "medecin")
	s.SetFacet("role", AllValues)

	assert.Empty(t, s.Facets)
	assert.Equal(t, 0, s.ActiveFilters())
}

func TestSessionClear(t *testing.T) {
	s := NewSession("users", 20, ResetOnCriteriaChange)
	s.SetSearchTerm("admin")
	s.SetFacet("role", "admin")
	s.GoToPage(2, 3)

	s.Clear()
	assert.Equal(t, "", s.SearchTerm)
	assert.Empty(t, s.Facets)
	assert.Equal(t, 1, s.Page)
}

func TestSessionNavigationStaysInBounds(t *testing.T) {
	s := NewSession("employees", 20, KeepPage)

	s.Previous(3)
	assert.Equal(t, 1, s.Page)

	s.Last(3)
	assert.Equal(t, 3, s.Page)

	s.Next(3)
	assert.Equal(t, 3, s.Page)

	s.First(3)
	assert.Equal(t, 1, s.Page)

	s.Last(0)
	assert.Equal(t, 1, s.Page)

	s.GoToPage(-7, 0)
	assert.Equal(t, 1, s.Page)
}

func TestNewSessionDefaults(t *testing.T) {
	s := NewSession("employees", 0, "")
	assert.Equal(t, DefaultPageSize, s.PageSize)
	assert.Equal(t, KeepPage, s.Policy)
	assert.Equal(t, 1, s.Page)
}
