package seo

import "strings"

// analyzeCredibility scores trust signals (max 10): source links, concrete
// data claims and credentials add points, heavy hedging takes them away.
func analyzeCredibility(content string) Factor {
	sourceCount := len(reSourceMarker.FindAllString(content, -1))
	hasData := reCredData.MatchString(content)
	hasCredential := reCredential.MatchString(content)
	hedging := countOccurrences(content, hedgingPhrases)

	score := 0
	var positives []string
	switch {
	case sourceCount >= 2:
		score += 4
		positives = append(positives, "출처 표기")
	case sourceCount >= 1:
		score += 2
		positives = append(positives, "출처 표기")
	}
	if hasData {
		score += 3
		positives = append(positives, "구체적 데이터")
	}
	if hasCredential {
		score += 3
		positives = append(positives, "전문성 표현")
	}
	if hedging >= 3 {
		score -= 3
	}

	if score < 0 {
		score = 0
	}
	if score > 10 {
		score = 10
	}

	var status Status
	switch {
	case score >= 8:
		status = StatusGood
	case score >= 4:
		status = StatusWarn
	default:
		status = StatusBad
	}

	hint := "출처나 경력 등 신뢰 요소를 추가하세요"
	if len(positives) > 0 {
		if len(positives) > 2 {
			positives = positives[:2]
		}
		hint = strings.Join(positives, ", ") + " 확인"
		if hedging >= 3 {
			hint += ". 추측성 표현은 줄여보세요"
		}
	}

	return Factor{
		Item:   ItemCredibility,
		Score:  score,
		Max:    10,
		Status: status,
		Hint:   hint,
		Details: CredibilityDetails{
			SourceCount:   sourceCount,
			HasData:       hasData,
			HasCredential: hasCredential,
			HedgingCount:  hedging,
		},
	}
}
