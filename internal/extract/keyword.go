package extract

import (
	"regexp"
	"sort"
	"strings"
)

var reKeywordToken = regexp.MustCompile(`[가-힣]{2,}|[A-Za-z]{2,}`)

// keywordStopwords are tokens too generic to serve as a main keyword.
var keywordStopwords = map[string]bool{
	"그리고": true, "하지만": true, "그래서": true, "때문에": true,
	"오늘은": true, "오늘도": true, "제가": true, "저는": true,
	"입니다": true, "합니다": true, "있습니다": true, "했습니다": true,
	"있는": true, "없는": true, "하는": true, "되는": true,
	"정말": true, "진짜": true, "그냥": true, "너무": true,
	"여러분": true, "블로그": true, "포스팅": true,
}

// DetectKeyword guesses the main keyword of a post: the most frequent
// non-stopword token, preferring tokens that also appear in the title.
// Best effort only; an empty result means no guess.
func DetectKeyword(title, text string) string {
	freq := make(map[string]int)
	for _, tok := range reKeywordToken.FindAllString(text, -1) {
		if !keywordStopwords[tok] {
			freq[tok]++
		}
	}
	if len(freq) == 0 {
		return ""
	}

	tokens := make([]string, 0, len(freq))
	for tok := range freq {
		tokens = append(tokens, tok)
	}
	// Frequency descending, title hits first, lexicographic to stay
	// deterministic.
	titleLower := strings.ToLower(title)
	sort.Slice(tokens, func(i, j int) bool {
		inTitleI := strings.Contains(titleLower, strings.ToLower(tokens[i]))
		inTitleJ := strings.Contains(titleLower, strings.ToLower(tokens[j]))
		if inTitleI != inTitleJ {
			return inTitleI
		}
		if freq[tokens[i]] != freq[tokens[j]] {
			return freq[tokens[i]] > freq[tokens[j]]
		}
		return tokens[i] < tokens[j]
	})

	best := tokens[0]
	if freq[best] < 2 && !strings.Contains(titleLower, strings.ToLower(best)) {
		return ""
	}
	return best
}
