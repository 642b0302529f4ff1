package seo

import "fmt"

// tocScanWindow limits the numbered-line check to the head of the post,
// where a real table of contents lives.
const tocScanWindow = 1000

// analyzeStructure scores explicit navigability (max 20): table of
// contents, subheading hierarchy and Q&A sections. The subheading count is
// supplied by the extractor, not recomputed here.
func analyzeStructure(content string, subheadingCount int) Factor {
	head := truncateRunes(content, tocScanWindow)
	hasTOC := containsAny(content, tocKeywords) ||
		reCircledNumeral.MatchString(content) ||
		reNumberedLine.MatchString(head)
	hasQnA := reQnA.MatchString(content)

	var score int
	var status Status
	var hint string
	switch {
	case hasTOC && subheadingCount >= 3:
		score, status = 20, StatusGood
		hint = "목차와 소제목 구조가 잘 잡혀 있습니다"
	case subheadingCount >= 2:
		score, status = 14, StatusWarn
		hint = fmt.Sprintf("소제목 %d개. 목차와 소제목 3개 이상을 권장합니다", subheadingCount)
	case subheadingCount >= 1:
		score, status = 8, StatusWarn
		hint = fmt.Sprintf("소제목 %d개뿐입니다. 3개 이상으로 늘려보세요", subheadingCount)
	default:
		score, status = 0, StatusBad
		hint = "소제목이 없습니다. 목차와 소제목으로 글을 나눠보세요"
	}

	if hasQnA && score < 20 {
		score += 2
		if score > 20 {
			score = 20
		}
		hint += " (Q&A 구성 확인)"
	} else if !hasQnA && status != StatusGood {
		hint += ", Q&A 섹션도 추천합니다"
	}

	return Factor{
		Item:   ItemStructure,
		Score:  score,
		Max:    20,
		Status: status,
		Hint:   hint,
		Details: StructureDetails{
			SubheadingCount:    subheadingCount,
			HasTableOfContents: hasTOC,
			HasQnA:             hasQnA,
		},
	}
}
