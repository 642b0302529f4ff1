package seo

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// copyPasteThreshold is the similarity above which the opening counts as a
// pasted copy of the title.
const copyPasteThreshold = 80

// analyzeFirstParagraph scores the opening paragraph (max 20). Low-information
// templated openings lose points: greeting starts, title copy-paste, and
// openings with no concrete information.
func analyzeFirstParagraph(title, content string) Factor {
	para := firstParagraph(content)
	if para == "" {
		return Factor{
			Item:   ItemFirstParagraph,
			Score:  0,
			Max:    20,
			Status: StatusBad,
			Hint:   "본문 내용이 없습니다",
		}
	}

	score := 20
	var issues []string

	if startsWithGreeting(para) {
		score -= 8
		issues = append(issues, "인사말로 시작")
	}

	if title != "" {
		sim := titleCopySimilarity(title, firstSentence(para))
		if sim >= copyPasteThreshold {
			score -= 10
			issues = append(issues, fmt.Sprintf("제목 복붙 의심(%d%%)", sim))
		}
	}

	if !reNumberUnit.MatchString(para) && !containsAny(para, conclusionWords) {
		score -= 5
		issues = append(issues, "구체적 정보 부족")
	}

	if score < 0 {
		score = 0
	}

	status := StatusBad
	hint := "첫 문단 개선이 필요합니다"
	switch {
	case score >= 18:
		status = StatusGood
		hint = "첫 문단이 검색 노출에 유리합니다"
	case score >= 12:
		status = StatusWarn
		hint = strings.Join(issues, ", ")
	default:
		if len(issues) > 0 {
			hint = strings.Join(issues, ", ")
		}
	}

	return Factor{
		Item:   ItemFirstParagraph,
		Score:  score,
		Max:    20,
		Status: status,
		Hint:   hint,
	}
}

func startsWithGreeting(para string) bool {
	trimmed := strings.TrimSpace(para)
	for _, g := range greetingOpeners {
		if strings.HasPrefix(trimmed, g) {
			return true
		}
	}
	return false
}

// titleCopySimilarity compares the title against the opening sentence. A
// pasted title is usually followed by a polite ending ("...입니다"), so the
// sentence is also compared truncated to the title's length and the higher
// similarity wins.
func titleCopySimilarity(title, sentence string) int {
	sim := similarity(title, sentence)

	titleLen := utf8.RuneCountInString(normalizeForCompare(title))
	normSentence := normalizeForCompare(sentence)
	if utf8.RuneCountInString(normSentence) > titleLen {
		if s := similarity(title, truncateRunes(normSentence, titleLen)); s > sim {
			sim = s
		}
	}
	return sim
}
