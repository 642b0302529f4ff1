package seo

import (
	"fmt"
	"sort"
	"strings"
)

const (
	// stuffingThreshold is the per-token repetition count that triggers
	// the keyword-stuffing penalty.
	stuffingThreshold = 15
	// hedgingPenaltyThreshold is the hedging-phrase count that triggers
	// the hedging penalty.
	hedgingPenaltyThreshold = 5
)

// analyzePenalty detects over-repetition and excessive hedging. Returns nil
// when no penalty applies, so the factor is omitted from the result.
func analyzePenalty(content string) *Factor {
	penalty := 0
	var reasons []string

	freq := make(map[string]int)
	for _, tok := range reKoreanToken.FindAllString(content, -1) {
		freq[tok]++
	}

	var stuffed []string
	for tok, n := range freq {
		if n >= stuffingThreshold {
			stuffed = append(stuffed, fmt.Sprintf("'%s' %d회", tok, n))
		}
	}
	if len(stuffed) > 0 {
		sort.Strings(stuffed)
		penalty += 5
		reasons = append(reasons, "단어 반복 과다: "+strings.Join(stuffed, ", "))
	}

	if countOccurrences(content, penaltyHedgingPhrases) >= hedgingPenaltyThreshold {
		penalty += 3
		reasons = append(reasons, "추측성 표현 과다")
	}

	if penalty == 0 {
		return nil
	}

	return &Factor{
		Item:   ItemPenalty,
		Score:  -penalty,
		Max:    0,
		Status: StatusBad,
		Hint:   strings.Join(reasons, ", "),
	}
}
