package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListInsert_AppendsWithoutMutating(t *testing.T) {
	t.Parallel()

	original := []string{"a", "b"}
	got := ListInsert(original, "c")

	assert.Equal(t, []string{"a", "b", "c"}, got)
	assert.Equal(t, []string{"a", "b"}, original)
}

func TestListUpdate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		list  []string
		index int
		value string
		want  []string
	}{
		{name: "in range", list: []string{"a", "b"}, index: 1, value: "x", want: []string{"a", "x"}},
		{name: "negative index", list: []string{"a"}, index: -1, value: "x", want: []string{"a"}},
		{name: "past end", list: []string{"a"}, index: 3, value: "x", want: []string{"a"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			original := append([]string(nil), tt.list...)
			got := ListUpdate(tt.list, tt.index, tt.value)

			assert.Equal(t, tt.want, got)
			assert.Equal(t, original, tt.list)
		})
	}
}

func TestListRemove(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		list  []string
		index int
		want  []string
	}{
		{name: "middle", list: []string{"a", "b", "c"}, index: 1, want: []string{"a", "c"}},
		{name: "first", list: []string{"a", "b"}, index: 0, want: []string{"b"}},
		{name: "out of range", list: []string{"a"}, index: 5, want: []string{"a"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			original := append([]string(nil), tt.list...)
			got := ListRemove(tt.list, tt.index)

			assert.Equal(t, tt.want, got)
			assert.Equal(t, original, tt.list)
		})
	}
}
