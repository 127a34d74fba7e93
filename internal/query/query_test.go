package query

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type leave struct {
	Accorde bool
	Duree   *int
}

type visit struct {
	ID      string
	Patient string
	Doctor  string
	Lieu    string
	Repos   *leave
}

var visitSchema = NewSchema("visits", map[FieldPath]Accessor[visit]{
	"id":      func(v *visit) (string, bool) { return Text(v.ID) },
	"patient": func(v *visit) (string, bool) { return Text(v.Patient) },
	"doctor":  func(v *visit) (string, bool) { return Text(v.Doctor) },
	"lieu": func(v *visit) (string, bool) {
		if v.Lieu == "" {
			return "", false
		}
		return Text(v.Lieu)
	},
	"repos.accorde": func(v *visit) (string, bool) {
		if v.Repos == nil {
			return "", false
		}
		return Bool(v.Repos.Accorde)
	},
	"repos.duree": func(v *visit) (string, bool) {
		if v.Repos == nil {
			return "", false
		}
		return OptionalInt(v.Repos.Duree)
	},
})

func intPtr(n int) *int { return &n }

func sampleVisits() []visit {
	return []visit{
		{ID: "1", Patient: "Amadou Ba", Doctor: "D1", Lieu: "Cabinet", Repos: &leave{Accorde: true, Duree: intPtr(2)}},
		{ID: "2", Patient: "Fatimetou Sall", Doctor: "D2", Lieu: "Port", Repos: &leave{Accorde: false}},
		{ID: "3", Patient: "Mohamed Lemine", Doctor: "D1", Lieu: "Port"},
		{ID: "4", Patient: "Aminata BA", Doctor: "D1", Lieu: "Port", Repos: &leave{Accorde: true, Duree: intPtr(3)}},
		{ID: "5", Patient: "Sidi", Doctor: "D3"},
	}
}

func ids(vs []visit) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = v.ID
	}
	return out
}

var searchFields = []FieldPath{"patient", "doctor"}

func TestFilter(t *testing.T) {
	tests := []struct {
		name     string
		criteria Criteria
		want     []string
	}{
		{
			name:     "empty criteria keeps everything",
			criteria: Criteria{SearchFields: searchFields},
			want:     []string{"1", "2", "3", "4", "5"},
		},
		{
			name:     "search is case insensitive substring",
			criteria: Criteria{SearchTerm: "ba", SearchFields: searchFields},
			want:     []string{"1", "4"},
		},
		{
			name:     "search matches any field",
			criteria: Criteria{SearchTerm: "d3", SearchFields: searchFields},
			want:     []string{"5"},
		},
		{
			name:     "facet is exact",
			criteria: Criteria{SearchFields: searchFields, Facets: map[FieldPath]string{"lieu": "Port"}},
			want:     []string{"2", "3", "4"},
		},
		{
			name:     "facet value is case sensitive",
			criteria: Criteria{SearchFields: searchFields, Facets: map[FieldPath]string{"lieu": "port"}},
			want:     []string{},
		},
		{
			name:     "all sentinel is ignored",
			criteria: Criteria{SearchFields: searchFields, Facets: map[FieldPath]string{"lieu": AllValues, "doctor": ""}},
			want:     []string{"1", "2", "3", "4", "5"},
		},
		{
			name:     "nested facet never matches absent sub-record",
			criteria: Criteria{SearchFields: searchFields, Facets: map[FieldPath]string{"repos.accorde": "false"}},
			want:     []string{"2"},
		},
		{
			name:     "facets and term are ANDed",
			criteria: Criteria{SearchTerm: "a", SearchFields: searchFields, Facets: map[FieldPath]string{"doctor": "D1", "repos.accorde": "true"}},
			want:     []string{"1", "4"},
		},
		{
			name:     "unknown facet path resolves absent",
			criteria: Criteria{SearchFields: searchFields, Facets: map[FieldPath]string{"nope": "x"}},
			want:     []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(sampleVisits(), visitSchema, tt.criteria)
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestFilterAbsentValueNeverMatchesSearchTerm(t *testing.T) {
	records := []visit{{ID: "1"}, {ID: "2", Lieu: "Port"}}
	got := Filter(records, visitSchema, Criteria{SearchTerm: "p", SearchFields: []FieldPath{"lieu"}})
	assert.Equal(t, []string{"2"}, ids(got))
}

func TestFilterIsIdempotent(t *testing.T) {
	c := Criteria{SearchTerm: "a", SearchFields: searchFields, Facets: map[FieldPath]string{"lieu": "Port"}}
	once := Filter(sampleVisits(), visitSchema, c)
	twice := Filter(once, visitSchema, c)
	assert.Equal(t, once, twice)
}

func TestFilterPreservesOrder(t *testing.T) {
	records := sampleVisits()
	got := Filter(records, visitSchema, Criteria{SearchTerm: "a", SearchFields: searchFields})

	pos := -1
	for _, v := range got {
		idx := -1
		for i, r := range records {
			if r.ID == v.ID {
				idx = i
			}
		}
		require.Greater(t, idx, pos, "record %s out of order", v.ID)
		pos = idx
	}
}

func TestFilterFacetsCompose(t *testing.T) {
	both := Filter(sampleVisits(), visitSchema, Criteria{Facets: map[FieldPath]string{"doctor": "D1", "lieu": "Port"}})
	first := Filter(sampleVisits(), visitSchema, Criteria{Facets: map[FieldPath]string{"doctor": "D1"}})
	composed := Filter(first, visitSchema, Criteria{Facets: map[FieldPath]string{"lieu": "Port"}})
	assert.Equal(t, both, composed)
}

func TestFilterDoesNotMutateInput(t *testing.T) {
	records := sampleVisits()
	before := ids(records)
	Filter(records, visitSchema, Criteria{SearchTerm: "ba", SearchFields: searchFields})
	assert.Equal(t, before, ids(records))
}

func TestSchemaCheck(t *testing.T) {
	assert.NoError(t, visitSchema.Check("patient", "repos.accorde"))
	assert.EqualError(t, visitSchema.Check("patient", "repos.motif"), `query: unknown field "repos.motif" for visits`)
}

func TestPaginate(t *testing.T) {
	records := make([]int, 45)
	for i := range records {
		records[i] = i
	}

	p := Paginate(records, 1, 20)
	assert.Equal(t, 3, p.PageCount)
	assert.Len(t, p.Items, 20)
	assert.True(t, p.HasNext)
	assert.False(t, p.HasPrevious)

	p = Paginate(records, 3, 20)
	assert.Equal(t, []int{40, 41, 42, 43, 44}, p.Items)
	assert.False(t, p.HasNext)
	assert.True(t, p.HasPrevious)

	p = Paginate(records, 4, 20)
	assert.Empty(t, p.Items)
	assert.NotNil(t, p.Items)

	p = Paginate(records, 0, 20)
	assert.Empty(t, p.Items)
	p = Paginate(records, -3, 20)
	assert.Empty(t, p.Items)
}

func TestPaginateHugePageIsEmpty(t *testing.T) {
	records := []int{1, 2, 3, 4, 5}

	for _, page := range []int{math.MaxInt, math.MaxInt/20 + 2} {
		var p Page[int]
		require.NotPanics(t, func() { p = Paginate(records, page, 20) }, "page=%d", page)
		assert.Empty(t, p.Items)
		assert.NotNil(t, p.Items)
		assert.False(t, p.HasNext)
	}

	p := Paginate(records, 2, math.MaxInt)
	assert.Equal(t, 1, p.PageCount)
	assert.Empty(t, p.Items)
}

func TestPaginateEmpty(t *testing.T) {
	p := Paginate([]int{}, 1, 20)
	assert.Equal(t, 0, p.PageCount)
	assert.Empty(t, p.Items)
	assert.False(t, p.HasNext)
	assert.False(t, p.HasPrevious)
}

func TestPaginateDefaultPageSize(t *testing.T) {
	p := Paginate(make([]int, 21), 1, 0)
	assert.Equal(t, DefaultPageSize, p.PageSize)
	assert.Equal(t, 2, p.PageCount)
}

func TestPaginationCoversEveryRecordOnce(t *testing.T) {
	for _, total := range []int{0, 1, 19, 20, 21, 57} {
		for _, size := range []int{1, 5, 20} {
			records := make([]int, total)
			for i := range records {
				records[i] = i
			}
			var joined []int
			count := PageCount(total, size)
			for page := 1; page <= count; page++ {
				joined = append(joined, Paginate(records, page, size).Items...)
			}
			if total == 0 {
				assert.Empty(t, joined)
				continue
			}
			assert.Equal(t, records, joined, fmt.Sprintf("total=%d size=%d", total, size))
		}
	}
}

func TestClampPage(t *testing.T) {
	for _, pageCount := range []int{0, 1, 4} {
		for _, n := range []int{-1000, -1, 0, 1, 2, 4, 5, 1 << 30} {
			got := ClampPage(n, pageCount)
			upper := pageCount
			if upper < 1 {
				upper = 1
			}
			assert.GreaterOrEqual(t, got, 1)
			assert.LessOrEqual(t, got, upper)
		}
	}
	assert.Equal(t, 3, ClampPage(3, 4))
}
