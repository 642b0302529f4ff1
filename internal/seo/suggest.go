package seo

import (
	"fmt"
	"sort"
	"strings"
)

var priorityRank = map[Priority]int{
	PriorityHigh:   0,
	PriorityMedium: 1,
	PriorityLow:    2,
}

// Suggestions turns a Result's factor diagnostics into prioritized
// improvement tips, most urgent first. It never recomputes a score.
func Suggestions(res Result) []Suggestion {
	var out []Suggestion
	for _, f := range res.Details {
		out = append(out, suggestForFactor(f, res.Keyword)...)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return priorityRank[out[i].Priority] < priorityRank[out[j].Priority]
	})
	return out
}

func suggestForFactor(f Factor, keyword string) []Suggestion {
	switch f.Item {
	case ItemFirstParagraph:
		if f.Status == StatusBad {
			return one(PriorityHigh, f.Item, "첫 문단을 다시 쓰세요. 인사말 대신 숫자와 결론으로 시작하면 좋습니다")
		}
		if f.Status == StatusWarn {
			return one(PriorityMedium, f.Item, "첫 문단에 구체적인 정보를 한 가지 더 넣어보세요: "+f.Hint)
		}

	case ItemStructure:
		if f.Status == StatusBad {
			return one(PriorityHigh, f.Item, "소제목 3개 이상과 목차를 추가해 글을 나눠보세요")
		}
		if f.Status == StatusWarn {
			return one(PriorityMedium, f.Item, "소제목을 3개 이상으로 늘리고 목차를 앞에 붙여보세요")
		}

	case ItemFIRE:
		return suggestFIRE(f)

	case ItemTitle:
		switch f.Status {
		case StatusNone:
			return one(PriorityHigh, f.Item, "제목을 작성하세요")
		case StatusBad:
			return one(PriorityHigh, f.Item, fmt.Sprintf("제목에 메인 키워드 '%s'를 포함하세요", keyword))
		case StatusWarn:
			if d, ok := f.Details.(TitleDetails); ok {
				if !d.HasKeyword {
					return one(PriorityMedium, f.Item, "메인 키워드를 정하고 제목에 넣어보세요")
				}
				if !d.HasConcreteNumber {
					return one(PriorityMedium, f.Item, "제목에 구체적인 숫자를 넣어보세요 (예: 3개월, 5가지)")
				}
				if d.KeywordPosition != "front" {
					return one(PriorityMedium, f.Item, "키워드를 제목 앞쪽 1/3 안에 배치하세요")
				}
			}
			return one(PriorityMedium, f.Item, f.Hint)
		}

	case ItemImages:
		if f.Status == StatusBad {
			return one(PriorityMedium, f.Item, "이미지를 5장 이상 추가하세요")
		}
		if f.Status == StatusWarn {
			return one(PriorityLow, f.Item, "이미지를 5장 이상으로 늘려보세요")
		}

	case ItemCredibility:
		if f.Status == StatusBad {
			return one(PriorityMedium, f.Item, "출처 링크, 경력, 데이터 같은 신뢰 요소를 추가하세요")
		}
		if f.Status == StatusWarn {
			return one(PriorityLow, f.Item, "출처나 전문성 표현을 한 가지 더 보강해보세요")
		}

	case ItemTags:
		if f.Status == StatusBad || f.Status == StatusWarn {
			return one(PriorityLow, f.Item, "태그를 5개 이상 설정하고 메인 키워드를 포함하세요")
		}

	case ItemPenalty:
		return one(PriorityHigh, f.Item, "감점 요소를 제거하세요: "+f.Hint)
	}
	return nil
}

var fireTips = map[string]string{
	"F(사실)":   "구체적인 숫자, 가격, 스펙을 추가하세요",
	"I(해석)":   "왜 그런지, 무엇과 비교되는지 해석을 덧붙이세요",
	"R(실제경험)": "직접 해본 경험을 담으세요 (방문, 사용, 구매)",
	"E(감정)":   "느낀 점과 만족도를 솔직하게 적으세요",
}

func suggestFIRE(f Factor) []Suggestion {
	if f.Status == StatusGood {
		return nil
	}

	priority := PriorityMedium
	if f.Status == StatusBad {
		priority = PriorityHigh
	}

	present := make(map[string]bool, len(f.Elements))
	for _, el := range f.Elements {
		present[el] = true
	}

	var out []Suggestion
	for _, el := range fireElements {
		if !present[el.label] {
			out = append(out, Suggestion{
				Priority: priority,
				Category: f.Item,
				Text:     fmt.Sprintf("%s 부족: %s", strings.SplitN(el.label, "(", 2)[0], fireTips[el.label]),
			})
		}
	}
	return out
}

func one(p Priority, category, text string) []Suggestion {
	return []Suggestion{{Priority: p, Category: category, Text: text}}
}
