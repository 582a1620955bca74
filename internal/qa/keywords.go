package qa

import (
	"strings"
	"unicode/utf8"
)

// stopWords are common question words discarded during keyword extraction.
// The set is closed; adding to it changes which entities queries can match.
var stopWords = map[string]struct{}{
	"what": {}, "is": {}, "the": {}, "a": {}, "an": {}, "about": {},
	"tell": {}, "me": {}, "who": {}, "when": {}, "where": {}, "how": {},
}

// minKeywordLen is the shortest token kept as a keyword.
// Tokens of two characters or fewer carry no matching signal.
const minKeywordLen = 3

// ExtractKeywords lowercases the query, splits it on whitespace, and drops
// stop words and short tokens. Token order and duplicates are preserved:
// the matcher scans keywords in query order, so reordering or deduplicating
// here would change which entity wins.
func ExtractKeywords(query string) []string {
	var keywords []string
	for _, word := range strings.Fields(strings.ToLower(query)) {
		if _, stop := stopWords[word]; stop {
			continue
		}
		if utf8.RuneCountInString(word) < minKeywordLen {
			continue
		}
		keywords = append(keywords, word)
	}
	return keywords
}
