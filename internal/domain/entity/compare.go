package entity

import (
	"sort"

	"github.com/google/uuid"
)

// MaxCompareSelection bounds how many residences can be compared side by side.
const MaxCompareSelection = 3

// MinCompareSelection is the smallest selection that makes a comparison.
const MinCompareSelection = 2

// CompareSelection is a bounded ordered set of residence IDs. Insertion order
// is selection order and fixes the column order of the comparison view.
type CompareSelection struct {
	ids []uuid.UUID
}

// NewCompareSelection builds a selection from an id list, dropping duplicates
// and truncating at the maximum. Order is preserved.
func NewCompareSelection(ids []uuid.UUID) CompareSelection {
	var sel CompareSelection
	for _, id := range ids {
		sel.Toggle(id)
		if len(sel.ids) == MaxCompareSelection {
			break
		}
	}

	return sel
}

// Toggle removes the id if present; otherwise adds it, unless the selection is
// already full, in which case it is a silent no-op.
func (s *CompareSelection) Toggle(id uuid.UUID) {
	for i, existing := range s.ids {
		if existing == id {
			s.ids = append(s.ids[:i:i], s.ids[i+1:]...)

			return
		}
	}

	if len(s.ids) >= MaxCompareSelection {
		return
	}

	s.ids = append(s.ids, id)
}

// Clear empties the selection.
func (s *CompareSelection) Clear() {
	s.ids = nil
}

// IDs returns the selected ids in selection order.
func (s *CompareSelection) IDs() []uuid.UUID {
	out := make([]uuid.UUID, len(s.ids))
	copy(out, s.ids)

	return out
}

// Len returns the selection size.
func (s *CompareSelection) Len() int {
	return len(s.ids)
}

// CanCompare reports whether enough residences are selected to compare.
func (s *CompareSelection) CanCompare() bool {
	return len(s.ids) >= MinCompareSelection
}

// Comparison is the resolved side-by-side view of selected residences.
// Residences keeps selection order; the attribute rows are sorted unions of
// the selected residences' services and facilities.
type Comparison struct {
	Residences []*Residence    `json:"residences"`
	Services   []ComparisonRow `json:"services"`
	Facilities []ComparisonRow `json:"facilities"`
}

// ComparisonRow is one attribute row of the comparison matrix: the attribute
// name plus a presence flag per residence, in column order.
type ComparisonRow struct {
	Attribute string `json:"attribute"`
	Present   []bool `json:"present"`
}

// BuildComparison assembles the comparison matrix for an already-resolved
// residence list. Callers are responsible for resolving ids and enforcing the
// minimum selection.
func BuildComparison(residences []*Residence) *Comparison {
	return &Comparison{
		Residences: residences,
		Services:   buildRows(residences, func(r *Residence) []string { return r.Services }),
		Facilities: buildRows(residences, func(r *Residence) []string { return r.Facilities }),
	}
}

func buildRows(residences []*Residence, attrs func(*Residence) []string) []ComparisonRow {
	seen := make(map[string]struct{})
	var union []string
	for _, r := range residences {
		for _, attr := range attrs(r) {
			if _, ok := seen[attr]; ok {
				continue
			}
			seen[attr] = struct{}{}
			union = append(union, attr)
		}
	}
	sort.Strings(union)

	rows := make([]ComparisonRow, 0, len(union))
	for _, attr := range union {
		row := ComparisonRow{Attribute: attr, Present: make([]bool, len(residences))}
		for i, r := range residences {
			row.Present[i] = contains(attrs(r), attr)
		}
		rows = append(rows, row)
	}

	return rows
}

func contains(list []string, value string) bool {
	for _, item := range list {
		if item == value {
			return true
		}
	}

	return false
}
