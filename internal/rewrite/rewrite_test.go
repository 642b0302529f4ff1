package rewrite

import (
	"context"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/yanghongseok1599/blogbooster/internal/database"
	"github.com/yanghongseok1599/blogbooster/internal/seo"
)

func TestParseJSONResponse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantKey string
		wantVal string
		wantErr bool
	}{
		{
			name:    "plain JSON",
			input:   `{"title": "새 제목"}`,
			wantKey: "title",
			wantVal: "새 제목",
		},
		{
			name:    "fenced JSON",
			input:   "```json\n{\"title\": \"새 제목\"}\n```",
			wantKey: "title",
			wantVal: "새 제목",
		},
		{
			name:    "fence without language",
			input:   "```\n{\"title\": \"새 제목\"}\n```",
			wantKey: "title",
			wantVal: "새 제목",
		},
		{
			name:    "JSON with surrounding prose",
			input:   "Here is the result:\n{\"title\": \"새 제목\"}\nDone.",
			wantKey: "title",
			wantVal: "새 제목",
		},
		{
			name:    "not JSON",
			input:   "그냥 텍스트입니다",
			wantErr: true,
		},
		{
			name:    "empty",
			input:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ParseJSONResponse(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error, got %v", result)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := result[tt.wantKey]; got != tt.wantVal {
				t.Errorf("result[%q] = %v, want %q", tt.wantKey, got, tt.wantVal)
			}
		})
	}
}

func TestBuildPrompt(t *testing.T) {
	factors := []seo.Factor{
		{Item: seo.ItemFirstParagraph, Score: 7, Max: 20, Status: seo.StatusBad, Hint: "인사말로 시작합니다"},
		{Item: seo.ItemStructure, Score: 20, Max: 20, Status: seo.StatusGood, Hint: "좋습니다"},
		{Item: seo.ItemTitle, Score: 10, Max: 15, Status: seo.StatusWarn, Hint: "제목에 숫자가 없습니다"},
	}

	prompt := BuildPrompt("가양동 헬스장 후기", "본문입니다", "가양동 헬스장", 67, factors)

	if !strings.Contains(prompt, "현재 점수: 67/100") {
		t.Error("prompt missing score")
	}
	if !strings.Contains(prompt, "핵심 키워드: 가양동 헬스장") {
		t.Error("prompt missing keyword")
	}
	if !strings.Contains(prompt, seo.ItemFirstParagraph) {
		t.Error("prompt missing weak factor")
	}
	if !strings.Contains(prompt, "인사말로 시작합니다") {
		t.Error("prompt missing factor hint")
	}
	if strings.Contains(prompt, seo.ItemStructure) {
		t.Error("prompt should omit factors at full score")
	}
	if !strings.Contains(prompt, "원문 제목: 가양동 헬스장 후기") {
		t.Error("prompt missing original title")
	}
}

func TestBuildPromptNoWeakFactors(t *testing.T) {
	factors := []seo.Factor{
		{Item: seo.ItemImages, Score: 10, Max: 10, Status: seo.StatusGood},
	}
	prompt := BuildPrompt("제목", "본문", "", 100, factors)
	if !strings.Contains(prompt, "가독성만 다듬으세요") {
		t.Error("prompt should fall back to readability instruction")
	}
	if strings.Contains(prompt, "핵심 키워드") {
		t.Error("prompt should omit keyword line when keyword is empty")
	}
}

func TestParseDraft(t *testing.T) {
	d := parseDraft(`{"title": "새 제목", "content": "새 본문"}`, "원래 제목")
	if d.Title != "새 제목" {
		t.Errorf("Title = %q, want 새 제목", d.Title)
	}
	if d.Content != "새 본문" {
		t.Errorf("Content = %q, want 새 본문", d.Content)
	}
}

func TestParseDraftMalformed(t *testing.T) {
	d := parseDraft("  그냥 다시 쓴 글입니다  ", "원래 제목")
	if d.Title != "원래 제목" {
		t.Errorf("Title = %q, want fallback title", d.Title)
	}
	if d.Content != "그냥 다시 쓴 글입니다" {
		t.Errorf("Content = %q, want trimmed raw text", d.Content)
	}
}

type fakeProvider struct {
	response string
	prompt   string
}

func (f *fakeProvider) Generate(_ context.Context, prompt string, _ int) (string, error) {
	f.prompt = prompt
	return f.response, nil
}

func (f *fakeProvider) IsConfigured() bool { return true }
func (f *fakeProvider) Name() string       { return "fake-model" }

func TestRewriterRun(t *testing.T) {
	db, err := database.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("opening database: %v", err)
	}
	defer db.Close()

	keyword := "가양동 헬스장"
	postID, err := db.InsertPost(nil, "가양동 헬스장 후기", "안녕하세요 여러분", nil, &keyword)
	if err != nil {
		t.Fatalf("inserting post: %v", err)
	}

	details, _ := json.Marshal([]seo.Factor{
		{Item: seo.ItemFirstParagraph, Score: 7, Max: 20, Status: seo.StatusBad, Hint: "인사말로 시작합니다"},
	})
	analysisID, err := db.InsertAnalysis(postID, 52, "D", &keyword, string(details))
	if err != nil {
		t.Fatalf("inserting analysis: %v", err)
	}

	provider := &fakeProvider{response: `{"title": "가양동 헬스장 3개월 후기", "content": "재작성된 본문"}`}
	r := New(db, provider, 1024)

	draft, err := r.Run(context.Background(), analysisID)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if draft.Title != "가양동 헬스장 3개월 후기" {
		t.Errorf("Title = %q", draft.Title)
	}
	if draft.Content != "재작성된 본문" {
		t.Errorf("Content = %q", draft.Content)
	}
	if draft.Model != "fake-model" {
		t.Errorf("Model = %q", draft.Model)
	}
	if !strings.Contains(provider.prompt, "인사말로 시작합니다") {
		t.Error("prompt did not include the weak factor hint")
	}

	stored, err := db.GetRewritesForAnalysis(analysisID)
	if err != nil {
		t.Fatalf("GetRewritesForAnalysis: %v", err)
	}
	if len(stored) != 1 {
		t.Fatalf("got %d stored rewrites, want 1", len(stored))
	}
	if stored[0].Draft != "재작성된 본문" {
		t.Errorf("stored draft = %q", stored[0].Draft)
	}
}

func TestRewriterRunMissingAnalysis(t *testing.T) {
	db, err := database.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("opening database: %v", err)
	}
	defer db.Close()

	r := New(db, &fakeProvider{}, 0)
	if _, err := r.Run(context.Background(), 99); err == nil {
		t.Error("expected error for missing analysis")
	}
}
