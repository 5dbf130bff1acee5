package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransparencyScore_EmptyResidenceScoresZero(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, TransparencyScore(&Residence{}))
}

func TestTransparencyScore_FullResidenceScoresFive(t *testing.T) {
	t.Parallel()

	r := &Residence{
		Services:       []string{"enfermería"},
		Images:         []string{"a", "b", "c", "d", "e"},
		Website:        "https://example.com",
		Certifications: []string{"habilitación MSP"},
		Directors:      []*Director{{Name: "Ana"}},
	}

	assert.Equal(t, 5, TransparencyScore(r))
}

func TestTransparencyScore_IndependentPredicates(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		r    Residence
		want int
	}{
		{
			name: "services and five images only",
			r: Residence{
				Services: []string{"A"},
				Images:   []string{"1", "2", "3", "4", "5"},
			},
			want: 2,
		},
		{
			name: "four images do not count",
			r:    Residence{Images: []string{"1", "2", "3", "4"}},
			want: 0,
		},
		{
			name: "whitespace website does not count",
			r:    Residence{Website: "   "},
			want: 0,
		},
		{
			name: "directors only",
			r:    Residence{Directors: []*Director{{Name: "Ana"}}},
			want: 1,
		},
		{
			name: "certifications only",
			r:    Residence{Certifications: []string{"ISO 9001"}},
			want: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, TransparencyScore(&tt.r))
		})
	}
}

func TestTransparencyScore_AlwaysWithinBounds(t *testing.T) {
	t.Parallel()

	residences := []*Residence{
		{},
		{Services: []string{"a"}},
		{Website: "w", Certifications: []string{"c"}, Directors: []*Director{{}}},
		{
			Services:       []string{"a", "a"},
			Images:         []string{"1", "2", "3", "4", "5", "6", "7"},
			Website:        "w",
			Certifications: []string{"c"},
			Directors:      []*Director{{}, {}},
		},
	}

	for _, r := range residences {
		score := TransparencyScore(r)
		assert.GreaterOrEqual(t, score, 0)
		assert.LessOrEqual(t, score, 5)
	}
}
