package entity

// Ordered-string-list editing primitives shared by every "add tag-like string"
// field (services, facilities, activities, contact lists). Each operation
// returns a fresh slice and never mutates its input, so callers can diff the
// result against a pristine snapshot.

// ListInsert appends a value at the end of the list.
func ListInsert(list []string, value string) []string {
	out := make([]string, 0, len(list)+1)
	out = append(out, list...)

	return append(out, value)
}

// ListUpdate replaces the value at index. Out-of-range indexes return an
// unchanged copy.
func ListUpdate(list []string, index int, value string) []string {
	out := make([]string, len(list))
	copy(out, list)
	if index < 0 || index >= len(out) {
		return out
	}
	out[index] = value

	return out
}

// ListRemove drops the value at index. Out-of-range indexes return an
// unchanged copy.
func ListRemove(list []string, index int) []string {
	if index < 0 || index >= len(list) {
		out := make([]string, len(list))
		copy(out, list)

		return out
	}

	out := make([]string, 0, len(list)-1)
	out = append(out, list[:index]...)

	return append(out, list[index+1:]...)
}
