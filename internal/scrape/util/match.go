package util

import "strings"

// MatchesKeywords implements the shared local keyword policy: the full
// keyword string OR any individual whitespace-split term must appear in the
// haystack, case-insensitively. Empty keywords match everything. Adapters use
// this when upstream search isn't keyword-capable.
func MatchesKeywords(keywords, haystack string) bool {
	kw := strings.ToLower(strings.TrimSpace(keywords))
	if kw == "" {
		return true
	}
	hay := strings.ToLower(haystack)
	if strings.Contains(hay, kw) {
		return true
	}
	for _, term := range strings.Fields(kw) {
		if strings.Contains(hay, term) {
			return true
		}
	}
	return false
}

// MatchesLocation is the local fallback for sources without a server-side
// location filter: case-insensitive substring against the normalized
// location field. No filter matches everything.
func MatchesLocation(filter, location string) bool {
	f := strings.ToLower(strings.TrimSpace(filter))
	if f == "" {
		return true
	}
	return strings.Contains(strings.ToLower(location), f)
}
