package seo

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var reParagraphSplit = regexp.MustCompile(`\n{1,2}`)

// minParagraphRunes filters out fragments too short to be a real paragraph.
const minParagraphRunes = 11

// editDistance computes the Levenshtein distance between a and b in runes.
func editDistance(a, b string) int {
	ra := []rune(a)
	rb := []rune(b)
	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min3(prev[j-1]+cost, prev[j]+1, curr[j-1]+1)
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}

// similarity returns how alike two strings are on a 0..100 scale,
// case-insensitively and ignoring all whitespace. Symmetric in its
// arguments; identical (or both empty) strings score 100.
func similarity(a, b string) int {
	na := normalizeForCompare(a)
	nb := normalizeForCompare(b)
	if na == nb {
		return 100
	}

	la := utf8.RuneCountInString(na)
	lb := utf8.RuneCountInString(nb)
	maxLen := la
	if lb > maxLen {
		maxLen = lb
	}
	if maxLen == 0 {
		return 100
	}

	d := editDistance(na, nb)
	ratio := 1.0 - float64(d)/float64(maxLen)
	return int(ratio*100 + 0.5)
}

func normalizeForCompare(s string) string {
	s = strings.ToLower(s)
	return strings.Join(strings.Fields(s), "")
}

// firstParagraph returns the first body fragment long enough to count as a
// paragraph, or "" when the content has none.
func firstParagraph(content string) string {
	for _, frag := range reParagraphSplit.Split(content, -1) {
		frag = strings.TrimSpace(frag)
		if utf8.RuneCountInString(frag) >= minParagraphRunes {
			return frag
		}
	}
	return ""
}

// firstSentence returns the text before the first sentence terminator.
func firstSentence(s string) string {
	if i := strings.IndexAny(s, ".?!"); i >= 0 {
		return s[:i]
	}
	return s
}

// containsAny reports whether s contains any of the given substrings.
func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// countOccurrences sums the occurrences of every phrase in s.
func countOccurrences(s string, phrases []string) int {
	total := 0
	for _, p := range phrases {
		total += strings.Count(s, p)
	}
	return total
}

// containsFold is a case-insensitive substring check.
func containsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}

// indexFold returns the rune index of the first case-insensitive match of
// sub in s, or -1.
func indexFold(s, sub string) int {
	byteIdx := strings.Index(strings.ToLower(s), strings.ToLower(sub))
	if byteIdx < 0 {
		return -1
	}
	return utf8.RuneCountInString(strings.ToLower(s)[:byteIdx])
}

// truncateRunes returns the first n runes of s.
func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
