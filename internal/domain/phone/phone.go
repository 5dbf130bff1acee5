// Package phone normalizes and de-duplicates phone-like contact fields
// (phone numbers and WhatsApp numbers) before they are persisted.
package phone

import "strings"

// Options controls which normalization steps run.
type Options struct {
	// RemoveInvalid drops entries without enough digits to be a phone number.
	RemoveInvalid bool
	// Normalize rewrites surviving entries to their canonical digit form,
	// keeping a leading "+" when present.
	Normalize bool
	// RemoveDuplicates drops entries whose digit form was already seen.
	// First occurrence wins.
	RemoveDuplicates bool
}

// Result carries the cleaned list plus everything removed as a duplicate, so
// callers can report a removal count instead of losing data silently.
type Result struct {
	Valid      []string
	Duplicates []string
}

// minDigits is the shortest digit run accepted as a phone number.
const minDigits = 6

// Normalize cleans an ordered phone list according to opts. Order is
// preserved; for duplicates the first occurrence wins and later ones are
// reported in Result.Duplicates.
func Normalize(list []string, opts Options) Result {
	result := Result{Valid: []string{}, Duplicates: []string{}}
	seen := make(map[string]struct{}, len(list))

	for _, raw := range list {
		trimmed := strings.TrimSpace(raw)
		if trimmed == "" {
			continue
		}

		canonical := canonicalize(trimmed)
		if opts.RemoveInvalid && len(strings.TrimPrefix(canonical, "+")) < minDigits {
			continue
		}

		if opts.RemoveDuplicates {
			if _, dup := seen[canonical]; dup {
				result.Duplicates = append(result.Duplicates, trimmed)

				continue
			}
			seen[canonical] = struct{}{}
		}

		if opts.Normalize {
			result.Valid = append(result.Valid, canonical)
		} else {
			result.Valid = append(result.Valid, trimmed)
		}
	}

	return result
}

// canonicalize strips every non-digit character, keeping a single leading "+".
func canonicalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	for i, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)

			continue
		}
		if r == '+' && i == 0 {
			b.WriteRune(r)
		}
	}

	return b.String()
}
