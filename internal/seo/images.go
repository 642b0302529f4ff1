package seo

import "fmt"

// analyzeImages scores image usage (max 10) as a step function of the
// extractor-supplied image count.
func analyzeImages(imageCount int) Factor {
	var score int
	var status Status
	var hint string
	switch {
	case imageCount >= 5:
		score, status = 10, StatusGood
		hint = fmt.Sprintf("이미지 %d장으로 충분합니다", imageCount)
	case imageCount >= 3:
		score, status = 7, StatusWarn
		hint = fmt.Sprintf("이미지 %d장. 5장 이상을 권장합니다", imageCount)
	case imageCount >= 1:
		score, status = 4, StatusWarn
		hint = fmt.Sprintf("이미지 %d장뿐입니다. 5장 이상을 권장합니다", imageCount)
	default:
		score, status = 0, StatusBad
		hint = "이미지가 없습니다. 5장 이상을 권장합니다"
	}

	return Factor{
		Item:   ItemImages,
		Score:  score,
		Max:    10,
		Status: status,
		Hint:   hint,
	}
}
