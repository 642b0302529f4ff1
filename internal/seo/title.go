package seo

import (
	"fmt"
	"unicode/utf8"
)

// analyzeTitle scores title optimization (max 15): does the title carry the
// main keyword, does the keyword sit in the front third, and is there a
// concrete number.
func analyzeTitle(title, keyword string) Factor {
	if title == "" {
		return Factor{
			Item:   ItemTitle,
			Score:  0,
			Max:    15,
			Status: StatusNone,
			Hint:   "제목을 입력하세요",
		}
	}

	hasKeyword := keyword != "" && containsFold(title, keyword)
	hasNumber := reTitleNumber.MatchString(title)

	position := "none"
	if hasKeyword {
		idx := indexFold(title, keyword)
		if idx >= 0 && idx <= utf8.RuneCountInString(title)/3 {
			position = "front"
		} else {
			position = "back"
		}
	}

	var score int
	var status Status
	var hint string
	switch {
	case hasKeyword && hasNumber && position == "front":
		score, status = 15, StatusGood
		hint = "키워드 앞배치와 구체적 숫자까지 완벽한 제목입니다"
	case hasKeyword && hasNumber:
		score, status = 12, StatusGood
		hint = "좋은 제목입니다. 키워드를 앞쪽에 두면 더 좋아요"
	case hasKeyword && position == "front":
		score, status = 10, StatusWarn
		hint = "제목에 구체적인 숫자를 넣어보세요"
	case hasKeyword:
		score, status = 7, StatusWarn
		hint = "키워드를 제목 앞쪽에 배치하고 숫자를 넣어보세요"
	case keyword != "":
		score, status = 0, StatusBad
		hint = fmt.Sprintf("제목에 키워드 '%s'가 없습니다", keyword)
	default:
		score, status = 5, StatusWarn
		hint = "메인 키워드를 설정하세요"
	}

	return Factor{
		Item:   ItemTitle,
		Score:  score,
		Max:    15,
		Status: status,
		Hint:   hint,
		Details: TitleDetails{
			HasKeyword:        hasKeyword,
			HasConcreteNumber: hasNumber,
			KeywordPosition:   position,
		},
	}
}
