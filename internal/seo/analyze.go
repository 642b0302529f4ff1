// Package seo scores Naver blog posts against a search-exposure heuristic.
//
// The engine is pure and stateless: Analyze runs seven weighted
// sub-analyses plus a penalty pass over one Input and returns a 0-100
// score, a letter grade and per-factor diagnostics. It performs no I/O and
// is safe to call from any number of goroutines.
package seo

import "time"

// MaxScore is the sum of all factor ceilings.
const MaxScore = 100

// Analyze scores one post. Deterministic for a given input; only the
// AnalyzedAt stamp varies between calls.
func Analyze(in Input) Result {
	details := []Factor{
		analyzeFirstParagraph(in.Title, in.Content),
		analyzeStructure(in.Content, in.SubheadingCount),
		analyzeFIRE(in.Content),
		analyzeTitle(in.Title, in.Keyword),
		analyzeImages(in.ImageCount),
		analyzeCredibility(in.Content),
		analyzeTags(in.TagCount, in.Tags, in.Keyword),
	}
	if penalty := analyzePenalty(in.Content); penalty != nil {
		details = append(details, *penalty)
	}

	total := 0
	for _, f := range details {
		total += f.Score
	}
	if total < 0 {
		total = 0
	}
	if total > MaxScore {
		total = MaxScore
	}

	grade := gradeFor(total)
	return Result{
		Score:            total,
		MaxScore:         MaxScore,
		Grade:            grade,
		GradeDescription: gradeDescriptions[grade],
		Details:          details,
		Keyword:          in.Keyword,
		AnalyzedAt:       time.Now().UTC().Format(time.RFC3339),
	}
}
