package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleResidences() []*Residence {
	return []*Residence{
		{Name: "Casa Sol", City: "Montevideo", Province: "Montevideo", Description: "Residencia con jardín", Transparency: 2, Rating: 3.5, RedIntegra: true},
		{Name: "Villa Luna", City: "Punta Carretas, Montevideo", Province: "Montevideo", Description: "Atención 24 horas", Transparency: 5, Rating: 4.8},
		{Name: "Hogar del Este", City: "Maldonado", Province: "Maldonado", Description: "Frente al mar", Transparency: 0, Rating: 2.0, RedIntegra: true},
		{Name: "Residencial Andina", City: "Salto", Province: "Salto", Description: "Céntrica y accesible", Transparency: 5, Rating: 4.1},
	}
}

func names(residences []*Residence) []string {
	out := make([]string, len(residences))
	for i, r := range residences {
		out[i] = r.Name
	}

	return out
}

func TestApplyFilter_EmptySpecKeepsEverything(t *testing.T) {
	t.Parallel()

	all := sampleResidences()
	got := ApplyFilter(all, FilterSpec{})

	// Default sort is name ascending; nothing dropped.
	assert.Equal(t, []string{"Casa Sol", "Hogar del Este", "Residencial Andina", "Villa Luna"}, names(got))
}

func TestApplyFilter_EmptyInput(t *testing.T) {
	t.Parallel()

	got := ApplyFilter(nil, FilterSpec{NameQuery: "sol"})
	assert.Empty(t, got)
}

func TestApplyFilter_NameQueryMatchesNameCityOrDescription(t *testing.T) {
	t.Parallel()

	all := sampleResidences()

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{name: "matches name", query: "SOL", want: []string{"Casa Sol"}},
		{name: "matches city", query: "maldonado", want: []string{"Hogar del Este"}},
		{name: "matches description", query: "24 horas", want: []string{"Villa Luna"}},
		{name: "no match yields empty", query: "inexistente", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := ApplyFilter(all, FilterSpec{NameQuery: tt.query})
			assert.Equal(t, tt.want, names(got))
		})
	}
}

func TestApplyFilter_ProvinceExactCaseInsensitive(t *testing.T) {
	t.Parallel()

	all := sampleResidences()

	got := ApplyFilter(all, FilterSpec{Province: "montevideo"})
	assert.Equal(t, []string{"Casa Sol", "Villa Luna"}, names(got))

	// Exact matching: a substring of the province must not match.
	got = ApplyFilter(all, FilterSpec{Province: "monte"})
	assert.Empty(t, got)
}

func TestApplyFilter_CitySubstring(t *testing.T) {
	t.Parallel()

	all := sampleResidences()

	// Barrio values are substrings of the stored city field.
	got := ApplyFilter(all, FilterSpec{City: "punta carretas"})
	assert.Equal(t, []string{"Villa Luna"}, names(got))
}

func TestApplyFilter_RedIntegraOnly(t *testing.T) {
	t.Parallel()

	got := ApplyFilter(sampleResidences(), FilterSpec{RedIntegraOnly: true})
	assert.Equal(t, []string{"Casa Sol", "Hogar del Este"}, names(got))
}

func TestApplyFilter_SortVariants(t *testing.T) {
	t.Parallel()

	all := sampleResidences()

	tests := []struct {
		name   string
		sortBy SortBy
		want   []string
	}{
		{name: "name desc", sortBy: SortNameDesc, want: []string{"Villa Luna", "Residencial Andina", "Hogar del Este", "Casa Sol"}},
		{name: "rating desc", sortBy: SortRatingDesc, want: []string{"Villa Luna", "Residencial Andina", "Casa Sol", "Hogar del Este"}},
		{name: "transparency asc", sortBy: SortTransparencyAsc, want: []string{"Hogar del Este", "Casa Sol", "Villa Luna", "Residencial Andina"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := ApplyFilter(all, FilterSpec{SortBy: tt.sortBy})
			assert.Equal(t, tt.want, names(got))
		})
	}
}

func TestApplyFilter_TransparencySortIsStable(t *testing.T) {
	t.Parallel()

	all := []*Residence{
		{Name: "A", Transparency: 2},
		{Name: "B", Transparency: 5},
		{Name: "C", Transparency: 0},
		{Name: "D", Transparency: 5},
	}

	got := ApplyFilter(all, FilterSpec{SortBy: SortTransparencyDesc})

	// Both score-5 entries precede the 2, which precedes the 0, and the two
	// fives keep their original relative order.
	assert.Equal(t, []string{"B", "D", "A", "C"}, names(got))
}

func TestApplyFilter_Idempotent(t *testing.T) {
	t.Parallel()

	all := sampleResidences()
	spec := FilterSpec{NameQuery: "montevideo"}

	once := ApplyFilter(all, spec)
	twice := ApplyFilter(once, spec)

	assert.Equal(t, names(once), names(twice))
}

func TestApplyFilter_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	all := sampleResidences()
	original := names(all)

	_ = ApplyFilter(all, FilterSpec{SortBy: SortNameDesc})

	require.Equal(t, original, names(all))
}

func TestSortByIsValid(t *testing.T) {
	t.Parallel()

	for _, s := range []SortBy{SortNameAsc, SortNameDesc, SortTransparencyDesc, SortTransparencyAsc, SortRatingDesc} {
		assert.True(t, s.IsValid(), string(s))
	}
	assert.False(t, SortBy("price-asc").IsValid())
}
