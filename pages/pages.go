// Package pages parses human-entered page-range specifications into sets of
// zero-based page indices.
//
// The grammar is deliberately forgiving: users type exclusion lists like
// "1, 3-5" into a free-text field, and a single typo must not abort a batch.
// Malformed tokens are logged and skipped.
package pages

import (
	"sort"
	"strconv"
	"strings"

	"github.com/flanksource/commons/logger"
)

// Set is a membership set of zero-based page indices.
type Set map[int]struct{}

// Contains reports whether the zero-based index i is in the set.
func (s Set) Contains(i int) bool {
	_, ok := s[i]
	return ok
}

// Len returns the number of indices in the set.
func (s Set) Len() int {
	return len(s)
}

// Add inserts a zero-based index into the set.
func (s Set) Add(i int) {
	s[i] = struct{}{}
}

// Sorted returns the indices in ascending order.
func (s Set) Sorted() []int {
	out := make([]int, 0, len(s))
	for i := range s {
		out = append(out, i)
	}
	sort.Ints(out)
	return out
}

// All returns a set containing every index in [0, n).
func All(n int) Set {
	s := make(Set, n)
	for i := 0; i < n; i++ {
		s.Add(i)
	}
	return s
}

// Parse converts a page-range string of 1-based page numbers into a Set of
// zero-based indices.
//
//	Parse("1")          -> {0}
//	Parse("1, 3")       -> {0, 2}
//	Parse("1, 3-5")     -> {0, 2, 3, 4}
//	Parse("2-4, 7")     -> {1, 2, 3, 6}
//
// Tokens are comma separated; a token is either a single page number or an
// inclusive range "a-b". Values below 1 contribute nothing, and a range whose
// start exceeds its end is an empty span rather than an error. Tokens that
// fail to parse are skipped with a warning so the rest of the string is still
// honoured.
func Parse(raw string) Set {
	set := Set{}
	if strings.TrimSpace(raw) == "" {
		return set
	}

	for _, token := range strings.Split(raw, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}

		if strings.Contains(token, "-") {
			parts := strings.Split(token, "-")
			if len(parts) != 2 {
				logger.Warnf("ignoring invalid page specification: %q", token)
				continue
			}
			start, startErr := strconv.Atoi(strings.TrimSpace(parts[0]))
			end, endErr := strconv.Atoi(strings.TrimSpace(parts[1]))
			if startErr != nil || endErr != nil {
				logger.Warnf("ignoring invalid page specification: %q", token)
				continue
			}
			for page := start; page <= end; page++ {
				if page >= 1 {
					set.Add(page - 1)
				}
			}
			continue
		}

		page, err := strconv.Atoi(token)
		if err != nil {
			logger.Warnf("ignoring invalid page specification: %q", token)
			continue
		}
		if page >= 1 {
			set.Add(page - 1)
		}
	}

	return set
}
