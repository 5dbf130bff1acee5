package phone

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func allOptions() Options {
	return Options{RemoveInvalid: true, Normalize: true, RemoveDuplicates: true}
}

func TestNormalize_FormattingVariantsCollapseToOneNumber(t *testing.T) {
	t.Parallel()

	result := Normalize([]string{"099123456", "099123456", "099 123 456"}, allOptions())

	assert.Equal(t, []string{"099123456"}, result.Valid)
	assert.Equal(t, []string{"099123456", "099 123 456"}, result.Duplicates)
}

func TestNormalize_FirstOccurrenceWinsAndOrderIsKept(t *testing.T) {
	t.Parallel()

	result := Normalize([]string{"098 111 111", "099222222", "098-111-111"}, allOptions())

	assert.Equal(t, []string{"098111111", "099222222"}, result.Valid)
	assert.Equal(t, []string{"098-111-111"}, result.Duplicates)
}

func TestNormalize_KeepsLeadingPlus(t *testing.T) {
	t.Parallel()

	result := Normalize([]string{"+598 99 123 456"}, allOptions())
	assert.Equal(t, []string{"+59899123456"}, result.Valid)
}

func TestNormalize_RemoveInvalidDropsShortEntries(t *testing.T) {
	t.Parallel()

	result := Normalize([]string{"123", "s/n", "24001234"}, allOptions())

	assert.Equal(t, []string{"24001234"}, result.Valid)
	assert.Empty(t, result.Duplicates)
}

func TestNormalize_WithoutNormalizeKeepsOriginalFormatting(t *testing.T) {
	t.Parallel()

	result := Normalize(
		[]string{"099 123 456", "099123456"},
		Options{RemoveDuplicates: true},
	)

	// Dedup still compares digit forms, but the surviving entry keeps its
	// original formatting.
	assert.Equal(t, []string{"099 123 456"}, result.Valid)
	assert.Equal(t, []string{"099123456"}, result.Duplicates)
}

func TestNormalize_EmptyAndBlankEntriesVanish(t *testing.T) {
	t.Parallel()

	result := Normalize([]string{"", "   ", "099123456"}, allOptions())
	assert.Equal(t, []string{"099123456"}, result.Valid)
}

func TestNormalize_NilInput(t *testing.T) {
	t.Parallel()

	result := Normalize(nil, allOptions())
	assert.Empty(t, result.Valid)
	assert.Empty(t, result.Duplicates)
}
