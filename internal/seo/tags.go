package seo

import "fmt"

// analyzeTags scores tag usage (max 5) as a step function of the tag
// count. Whether any tag matches the main keyword is informational only.
func analyzeTags(tagCount int, tags []string, keyword string) Factor {
	var score int
	var status Status
	var hint string
	switch {
	case tagCount >= 5:
		score, status = 5, StatusGood
		hint = fmt.Sprintf("태그 %d개로 충분합니다", tagCount)
	case tagCount >= 3:
		score, status = 3, StatusWarn
		hint = fmt.Sprintf("태그 %d개. 5개 이상을 권장합니다", tagCount)
	case tagCount >= 1:
		score, status = 1, StatusWarn
		hint = fmt.Sprintf("태그 %d개뿐입니다. 5개 이상을 권장합니다", tagCount)
	default:
		score, status = 0, StatusBad
		hint = "태그가 없습니다. 5개 이상 설정하세요"
	}

	hasMain := false
	if keyword != "" {
		for _, tag := range tags {
			if containsFold(tag, keyword) || containsFold(keyword, tag) {
				hasMain = true
				break
			}
		}
	}

	return Factor{
		Item:    ItemTags,
		Score:   score,
		Max:     5,
		Status:  status,
		Hint:    hint,
		Details: TagDetails{HasMainKeyword: hasMain},
	}
}
