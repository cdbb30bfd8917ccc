package asset

import (
	"regexp"
	"strings"
)

// Haystack is the searchable projection of a single asset. The caller
// populates it from the stored record; Match never touches the store.
type Haystack struct {
	ID           string
	Name         string
	Kind         string
	Port         string
	Notes        string
	BookRefs     []string
	DependsOn    []string
	DependedOnBy []string
	Annotations  []string // annotation texts
	DocTitles    []string // attached document titles
	DocTexts     []string // attached document bodies
}

// bookRefQuery matches queries that look like a book reference prefix:
// a single section letter A-J optionally followed by digits ("a", "a1",
// "b12"). Checked against the already-lowercased query.
var bookRefQuery = regexp.MustCompile(`^[a-j]\d*$`)

// NormalizeQuery lower-cases and trims a raw query. An empty result
// means search is a no-op: search is opt-in, not browse-all.
func NormalizeQuery(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// Match reports whether a single asset matches the normalized query.
// Four independent strategies are tried in order, short-circuiting on
// the first hit. There is no ranking: an asset either matches or it
// does not, and callers must preserve stored order in result sets.
func Match(query string, h Haystack) bool {
	if query == "" {
		return false
	}
	if matchSubstring(query, h) {
		return true
	}
	if matchNumeric(query, h) {
		return true
	}
	if matchBookRef(query, h) {
		return true
	}
	return matchSubsequence(query, h)
}

// matchSubstring concatenates every searchable field into one haystack
// and looks for the query as a plain substring.
func matchSubstring(query string, h Haystack) bool {
	parts := []string{h.ID, h.Name, h.Kind, h.Port, h.Notes}
	parts = append(parts, h.BookRefs...)
	parts = append(parts, h.DependsOn...)
	parts = append(parts, h.DependedOnBy...)
	parts = append(parts, h.Annotations...)
	parts = append(parts, h.DocTitles...)
	parts = append(parts, h.DocTexts...)

	return strings.Contains(strings.ToLower(strings.Join(parts, " ")), query)
}

// matchNumeric applies only to all-digit queries: exact port equality,
// or the digits appearing anywhere in the id.
func matchNumeric(query string, h Haystack) bool {
	if !isAllDigits(query) {
		return false
	}
	if h.Port == query {
		return true
	}
	return strings.Contains(strings.ToLower(h.ID), query)
}

// matchBookRef applies only to queries shaped like a book reference:
// prefix match against each bookRef code, so "a1" finds both A1 and A12.
func matchBookRef(query string, h Haystack) bool {
	if !bookRefQuery.MatchString(query) {
		return false
	}
	for _, ref := range h.BookRefs {
		if strings.HasPrefix(strings.ToLower(ref), query) {
			return true
		}
	}
	return false
}

// matchSubsequence is the fuzzy strategy: every query character must
// appear in the asset name in the same relative order, not necessarily
// contiguous ("dkr" matches "Docker Engine"). Only applied to queries
// of 3+ characters to keep short queries from matching everything.
func matchSubsequence(query string, h Haystack) bool {
	if len(query) < 3 {
		return false
	}
	name := strings.ToLower(h.Name)
	i := 0
	for j := 0; j < len(name) && i < len(query); j++ {
		if name[j] == query[i] {
			i++
		}
	}
	return i == len(query)
}

func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
