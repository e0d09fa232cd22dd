package repository

import "regexp"

// substringPattern escapes the user's search term so $regex matches it as
// a literal substring; terms like "c++" or "(" must search, not error.
func substringPattern(term string) string {
	return regexp.QuoteMeta(term)
}
