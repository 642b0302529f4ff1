package seo

// gradeDescriptions are the fixed per-grade summary lines.
var gradeDescriptions = map[Grade]string{
	GradeS: "통합검색 상위 노출이 기대되는 최상급 글입니다",
	GradeA: "상위 노출 가능성이 높은 우수한 글입니다",
	GradeB: "기본기를 갖춘 글입니다. 몇 가지만 보완해보세요",
	GradeC: "보완이 필요한 글입니다",
	GradeD: "많은 보완이 필요한 글입니다",
	GradeF: "전면 재작성이 필요한 글입니다",
}

// DescribeGrade returns the summary line for a grade.
func DescribeGrade(g Grade) string {
	return gradeDescriptions[g]
}

// gradeFor maps a final clamped score to its letter grade.
func gradeFor(score int) Grade {
	switch {
	case score >= 95:
		return GradeS
	case score >= 85:
		return GradeA
	case score >= 70:
		return GradeB
	case score >= 55:
		return GradeC
	case score >= 40:
		return GradeD
	default:
		return GradeF
	}
}

// GradeRank orders grades from worst (F=0) to best (S=5).
func GradeRank(g Grade) int {
	switch g {
	case GradeS:
		return 5
	case GradeA:
		return 4
	case GradeB:
		return 3
	case GradeC:
		return 2
	case GradeD:
		return 1
	default:
		return 0
	}
}
