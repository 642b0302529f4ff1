package seo

import (
	"fmt"
	"strings"
)

// FIRE element labels, in detection order.
var fireElements = []struct {
	label  string
	detect func(content string) bool
}{
	{"F(사실)", func(c string) bool { return reFireFact.MatchString(c) }},
	{"I(해석)", func(c string) bool { return containsAny(c, fireInterpretWords) }},
	{"R(실제경험)", func(c string) bool { return reFireReal.MatchString(c) }},
	{"E(감정)", func(c string) bool { return containsAny(c, fireEmotionWords) }},
}

// analyzeFIRE scores the Fact/Interpretation/Real-experience/Emotion signal
// (max 20, 5 per element). Generic praise with almost no substance behind
// it costs 3 points.
func analyzeFIRE(content string) Factor {
	score := 0
	var present []string
	var missing []string
	for _, el := range fireElements {
		if el.detect(content) {
			score += 5
			present = append(present, el.label)
		} else {
			missing = append(missing, el.label)
		}
	}

	if reGenericPraise.MatchString(content) && len(present) < 2 {
		score -= 3
		if score < 0 {
			score = 0
		}
	}

	var status Status
	var hint string
	switch {
	case len(present) == 4:
		status = StatusGood
		hint = "FIRE 공식이 완벽하게 적용되었습니다"
	case len(present) >= 3:
		status = StatusWarn
		hint = fmt.Sprintf("%s 요소가 빠졌습니다", strings.Join(missing, ", "))
	case len(present) >= 1:
		status = StatusWarn
		hint = fmt.Sprintf("FIRE 중 %s만 있습니다", strings.Join(present, ", "))
	default:
		status = StatusBad
		hint = "구체적인 경험담을 추가하세요"
	}

	return Factor{
		Item:     ItemFIRE,
		Score:    score,
		Max:      20,
		Status:   status,
		Hint:     hint,
		Elements: present,
	}
}
