package seo

// Input is one blog post to score. The zero value is a valid (empty) post;
// callers are expected to clamp negative counts to zero before scoring.
type Input struct {
	Title           string   `json:"title"`
	Content         string   `json:"content"`
	Keyword         string   `json:"keyword"`
	ImageCount      int      `json:"imageCount"`
	SubheadingCount int      `json:"subheadingCount"`
	TagCount        int      `json:"tagCount"`
	Tags            []string `json:"tags"`
}

// Status classifies how a single factor scored.
type Status string

const (
	StatusGood Status = "good"
	StatusWarn Status = "warn"
	StatusBad  Status = "bad"
	StatusNone Status = "none" // title absent only
)

// Factor item names as shown to the user.
const (
	ItemFirstParagraph = "첫 문단 품질"
	ItemStructure      = "글 구조"
	ItemFIRE           = "FIRE 공식"
	ItemTitle          = "제목 최적화"
	ItemImages         = "이미지 활용"
	ItemCredibility    = "신뢰도 신호"
	ItemTags           = "태그 활용"
	ItemPenalty        = "감점 요소"
)

// Factor is the result of one sub-analysis. Score stays within [0, Max]
// except for the penalty factor, which is the only negative one.
type Factor struct {
	Item     string   `json:"item"`
	Score    int      `json:"score"`
	Max      int      `json:"max"`
	Status   Status   `json:"status"`
	Hint     string   `json:"hint"`
	Elements []string `json:"elements,omitempty"` // FIRE only, in F/I/R/E order
	Details  any      `json:"details,omitempty"`
}

// StructureDetails carries the raw signals behind the structure factor.
type StructureDetails struct {
	SubheadingCount    int  `json:"subheadingCount"`
	HasTableOfContents bool `json:"hasTableOfContents"`
	HasQnA             bool `json:"hasQnA"`
}

// TitleDetails carries the raw signals behind the title factor.
type TitleDetails struct {
	HasKeyword        bool   `json:"hasKeyword"`
	HasConcreteNumber bool   `json:"hasConcreteNumber"`
	KeywordPosition   string `json:"keywordPosition"` // "front", "back" or "none"
}

// CredibilityDetails carries the raw signals behind the credibility factor.
type CredibilityDetails struct {
	SourceCount   int  `json:"sourceCount"`
	HasData       bool `json:"hasData"`
	HasCredential bool `json:"hasCredential"`
	HedgingCount  int  `json:"hedgingCount"`
}

// TagDetails carries the raw signals behind the tag factor.
type TagDetails struct {
	HasMainKeyword bool `json:"hasMainKeyword"`
}

// Grade is the letter grade derived from the total score.
type Grade string

const (
	GradeS Grade = "S"
	GradeA Grade = "A"
	GradeB Grade = "B"
	GradeC Grade = "C"
	GradeD Grade = "D"
	GradeF Grade = "F"
)

// Result is the full outcome of scoring one post.
type Result struct {
	Score            int      `json:"score"`
	MaxScore         int      `json:"maxScore"`
	Grade            Grade    `json:"grade"`
	GradeDescription string   `json:"gradeDescription"`
	Details          []Factor `json:"details"`
	Keyword          string   `json:"keyword"`
	AnalyzedAt       string   `json:"analyzedAt"`
}

// Priority orders suggestions from most to least urgent.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Suggestion is one actionable improvement tip derived from a Result.
type Suggestion struct {
	Priority Priority `json:"priority"`
	Category string   `json:"category"`
	Text     string   `json:"text"`
}
