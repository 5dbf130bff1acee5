package entity

import (
	"sort"
	"strings"
)

// SortBy enumerates the supported orderings of a filtered residence list.
type SortBy string

const (
	SortNameAsc          SortBy = "name-asc"
	SortNameDesc         SortBy = "name-desc"
	SortTransparencyDesc SortBy = "transparency-desc"
	SortTransparencyAsc  SortBy = "transparency-asc"
	SortRatingDesc       SortBy = "rating-desc"
)

// IsValid checks if the SortBy is a supported value.
func (s SortBy) IsValid() bool {
	switch s {
	case SortNameAsc, SortNameDesc, SortTransparencyDesc, SortTransparencyAsc, SortRatingDesc:
		return true
	default:
		return false
	}
}

// FilterSpec describes one search over the residence list. Zero-valued fields
// are no-ops, so the zero FilterSpec selects everything in default order.
type FilterSpec struct {
	// NameQuery matches case-insensitively as a substring of name, city or description.
	NameQuery string `json:"name_query" query:"q"`

	// Province matches case-insensitively but exactly.
	Province string `json:"province" query:"province"`

	// City matches case-insensitively as a substring: stored city fields often
	// carry barrio/zone suffixes, so exact matching would miss them.
	City string `json:"city" query:"city"`

	// RedIntegraOnly keeps only residences in the curated partner network.
	RedIntegraOnly bool `json:"red_integra_only" query:"red_integra"`

	// SortBy is applied last, after all filtering. Empty means name-asc.
	SortBy SortBy `json:"sort_by" query:"sort"`
}

// ApplyFilter runs the filter pipeline over a residence list and returns the
// selected residences in the requested order. Filters apply in a fixed order:
// name query, province, city, red integra, then sort. The input slice is never
// mutated; sorting happens on a copy and is stable, so ties keep their
// original relative order.
func ApplyFilter(all []*Residence, spec FilterSpec) []*Residence {
	filtered := make([]*Residence, 0, len(all))

	query := strings.ToLower(strings.TrimSpace(spec.NameQuery))
	province := strings.ToLower(strings.TrimSpace(spec.Province))
	city := strings.ToLower(strings.TrimSpace(spec.City))

	for _, r := range all {
		if query != "" && !matchesQuery(r, query) {
			continue
		}
		if province != "" && strings.ToLower(r.Province) != province {
			continue
		}
		if city != "" && !strings.Contains(strings.ToLower(r.City), city) {
			continue
		}
		if spec.RedIntegraOnly && !r.RedIntegra {
			continue
		}

		filtered = append(filtered, r)
	}

	sortResidences(filtered, spec.SortBy)

	return filtered
}

func matchesQuery(r *Residence, query string) bool {
	return strings.Contains(strings.ToLower(r.Name), query) ||
		strings.Contains(strings.ToLower(r.City), query) ||
		strings.Contains(strings.ToLower(r.Description), query)
}

func sortResidences(residences []*Residence, sortBy SortBy) {
	switch sortBy {
	case SortNameDesc:
		sort.SliceStable(residences, func(i, j int) bool {
			return strings.ToLower(residences[i].Name) > strings.ToLower(residences[j].Name)
		})
	case SortTransparencyDesc:
		sort.SliceStable(residences, func(i, j int) bool {
			return residences[i].Transparency > residences[j].Transparency
		})
	case SortTransparencyAsc:
		sort.SliceStable(residences, func(i, j int) bool {
			return residences[i].Transparency < residences[j].Transparency
		})
	case SortRatingDesc:
		sort.SliceStable(residences, func(i, j int) bool {
			return residences[i].Rating > residences[j].Rating
		})
	case SortNameAsc:
		fallthrough
	default:
		sort.SliceStable(residences, func(i, j int) bool {
			return strings.ToLower(residences[i].Name) < strings.ToLower(residences[j].Name)
		})
	}
}
