package seo

import "testing"

func TestCredibilityScoring(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		wantScore int
	}{
		{"nothing", "그냥 평범한 글입니다", 0},
		{"one source", "출처: 네이버 지도", 2},
		{"two sources", "출처: https://example.com 참고: https://example.org", 4},
		{"data only", "경력 10년 차라서 믿을 만합니다", 6}, // 경력 N년 matches both data and credential banks
		{"credential only", "트레이너 자격증을 보유하고 있습니다", 3},
		{"full house", "출처: https://a.com 참고: https://b.com 평점 4.9 트레이너 자격증 보유", 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := analyzeCredibility(tt.content)
			if f.Score != tt.wantScore {
				t.Errorf("score = %d, want %d (hint: %s)", f.Score, tt.wantScore, f.Hint)
			}
		})
	}
}

func TestCredibilityHedgingDeduction(t *testing.T) {
	// +4 sources, +3 data, -3 for three hedges.
	content := "출처: https://a.com 참고: https://b.com 평점 4.8인 곳인데 " +
		"좋은 것 같아요. 아마도 괜찮을 것 같은데 글쎄요."
	f := analyzeCredibility(content)
	if f.Score != 4 {
		t.Errorf("expected 4, got %d", f.Score)
	}

	d, ok := f.Details.(CredibilityDetails)
	if !ok {
		t.Fatalf("expected CredibilityDetails, got %T", f.Details)
	}
	if d.HedgingCount < 3 {
		t.Errorf("expected at least 3 hedges counted, got %d", d.HedgingCount)
	}
}

func TestCredibilityClamped(t *testing.T) {
	f := analyzeCredibility("아마도 글쎄요 모르겠 것 같아요")
	if f.Score != 0 {
		t.Errorf("expected floor at 0, got %d", f.Score)
	}
	if f.Status != StatusBad {
		t.Errorf("expected bad, got %s", f.Status)
	}
}

func TestCredibilityStatus(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    Status
	}{
		{"score 10", "출처: https://a.com 참고: https://b.com 평점 4.9 자격증 보유", StatusGood},
		{"score 5", "출처: 네이버 평점 4.5", StatusWarn},
		{"score 0", "그냥 평범한 글입니다", StatusBad},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := analyzeCredibility(tt.content)
			if f.Status != tt.want {
				t.Errorf("status = %s, want %s (score %d)", f.Status, tt.want, f.Score)
			}
		})
	}
}
