package database

// Post is one collected blog post. URL may be empty for pasted drafts.
type Post struct {
	ID          int64
	URL         *string
	Title       string
	Source      *string
	Content     string
	Keyword     *string
	CollectedAt *string
}

// Analysis is one stored scoring run for a post. Details holds the
// per-factor results as JSON.
type Analysis struct {
	ID         int64
	PostID     int64
	Score      int
	Grade      string
	Keyword    *string
	Details    string
	AnalyzedAt *string
}

// AnalysisRow joins an analysis with its post for listings.
type AnalysisRow struct {
	Analysis
	Title string
	URL   *string
}

// Rewrite is one stored LLM rewrite of a post.
type Rewrite struct {
	ID         int64
	AnalysisID int64
	Draft      string
	Model      *string
	CreatedAt  *string
}

// Stats contains aggregate database statistics.
type Stats struct {
	TotalPosts    int
	TotalAnalyses int
	AverageScore  int
	BestScore     int
	Rewrites      int
}
