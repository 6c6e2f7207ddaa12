package playlist

import (
	"fmt"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Matcher decides whether a candidate field satisfies a search term.
// Both arguments are already lower-cased.
type Matcher func(candidate, term string) bool

// Substring matches a term appearing anywhere in the candidate.
func Substring(candidate, term string) bool {
	return strings.Contains(candidate, term)
}

// Prefix matches a term found at the very start of the candidate.
func Prefix(candidate, term string) bool {
	return strings.HasPrefix(candidate, term)
}

// Fuzzy matches the term's characters in order, allowing gaps.
func Fuzzy(candidate, term string) bool {
	return fuzzy.Match(term, candidate)
}

// MatcherNames lists the values accepted by ParseMatcher.
func MatcherNames() []string {
	return []string{"substring", "prefix", "fuzzy"}
}

// ParseMatcher resolves a configured matcher name.
func ParseMatcher(name string) (Matcher, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "substring":
		return Substring, nil
	case "prefix":
		return Prefix, nil
	case "fuzzy":
		return Fuzzy, nil
	default:
		return nil, fmt.Errorf("unknown matcher %q, expected one of %s", name, strings.Join(MatcherNames(), ", "))
	}
}

// Filter returns a new slice with the items whose field matches term, case-insensitively,
// in their original relative order. An empty term returns a copy of every item.
// The input slice is never modified.
func Filter[T any](items []T, term string, field func(T) string, match Matcher) []T {
	if match == nil {
		match = Substring
	}

	out := make([]T, 0, len(items))
	term = strings.ToLower(term)
	for _, item := range items {
		if term == "" || match(strings.ToLower(field(item)), term) {
			out = append(out, item)
		}
	}
	return out
}
