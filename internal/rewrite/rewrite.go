// Package rewrite generates improved drafts for weak posts using an LLM.
package rewrite

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/yanghongseok1599/blogbooster/internal/database"
	"github.com/yanghongseok1599/blogbooster/internal/seo"
)

// Draft is the result of one rewrite run.
type Draft struct {
	ID      int64
	Title   string
	Content string
	Model   string
}

// Rewriter turns a stored analysis into an improved draft.
type Rewriter struct {
	db        *database.DB
	provider  Provider
	maxTokens int
}

// New creates a Rewriter.
func New(db *database.DB, provider Provider, maxTokens int) *Rewriter {
	if maxTokens <= 0 {
		maxTokens = 2048
	}
	return &Rewriter{db: db, provider: provider, maxTokens: maxTokens}
}

// Run generates a rewritten draft for the given analysis and stores it.
func (r *Rewriter) Run(ctx context.Context, analysisID int64) (*Draft, error) {
	if r.provider == nil {
		return nil, fmt.Errorf("no LLM provider configured")
	}

	row, err := r.db.GetAnalysis(analysisID)
	if err != nil {
		return nil, fmt.Errorf("loading analysis: %w", err)
	}
	if row == nil {
		return nil, fmt.Errorf("analysis %d not found", analysisID)
	}

	post, err := r.db.GetPost(row.PostID)
	if err != nil {
		return nil, fmt.Errorf("loading post: %w", err)
	}
	if post == nil {
		return nil, fmt.Errorf("post %d not found", row.PostID)
	}

	var factors []seo.Factor
	if err := json.Unmarshal([]byte(row.Details), &factors); err != nil {
		return nil, fmt.Errorf("parsing analysis details: %w", err)
	}

	keyword := ""
	if row.Keyword != nil {
		keyword = *row.Keyword
	}

	prompt := BuildPrompt(post.Title, post.Content, keyword, row.Score, factors)

	log.Printf("Generating rewrite for analysis %d (score %d)...", analysisID, row.Score)
	response, err := r.provider.Generate(ctx, prompt, r.maxTokens)
	if err != nil {
		return nil, fmt.Errorf("generating rewrite: %w", err)
	}

	draft := parseDraft(response, post.Title)
	draft.Model = r.provider.Name()

	model := draft.Model
	id, err := r.db.InsertRewrite(analysisID, draft.Content, &model)
	if err != nil {
		return nil, fmt.Errorf("storing rewrite: %w", err)
	}
	draft.ID = id

	return draft, nil
}

// BuildPrompt assembles the rewrite instruction from the post and the
// factors that lost points.
func BuildPrompt(title, content, keyword string, score int, factors []seo.Factor) string {
	var b strings.Builder

	b.WriteString("당신은 네이버 블로그 SEO 전문가입니다. 아래 글을 검색 노출에 유리하도록 다시 작성하세요.\n\n")
	fmt.Fprintf(&b, "현재 점수: %d/100\n", score)
	if keyword != "" {
		fmt.Fprintf(&b, "핵심 키워드: %s\n", keyword)
	}

	b.WriteString("\n개선이 필요한 항목:\n")
	weak := 0
	for _, f := range factors {
		if f.Status == seo.StatusGood || f.Score >= f.Max {
			continue
		}
		weak++
		fmt.Fprintf(&b, "- %s (%d/%d점): %s\n", f.Item, f.Score, f.Max, f.Hint)
	}
	if weak == 0 {
		b.WriteString("- 없음. 전체적인 가독성만 다듬으세요.\n")
	}

	b.WriteString("\n규칙:\n")
	b.WriteString("- 첫 문단은 인사말 없이 핵심 정보로 시작\n")
	b.WriteString("- 소제목과 번호 목차로 글을 구조화\n")
	b.WriteString("- 사실, 해석, 실제 경험, 감정을 모두 담기\n")
	if keyword != "" {
		b.WriteString("- 제목 앞부분에 키워드와 구체적 숫자 포함\n")
	}
	b.WriteString("- 출처나 구체적 데이터로 신뢰도 보강\n")
	b.WriteString("- 같은 단어를 과도하게 반복하지 않기\n")

	b.WriteString("\n원문 제목: " + title + "\n")
	b.WriteString("원문:\n")
	b.WriteString(truncate(content, 4000))

	b.WriteString("\n\nJSON으로만 응답하세요: {\"title\": \"새 제목\", \"content\": \"새 본문\"}")

	return b.String()
}

// parseDraft extracts the title and content from the LLM response,
// falling back to the raw text when the JSON is malformed.
func parseDraft(response, fallbackTitle string) *Draft {
	d := &Draft{Title: fallbackTitle}

	parsed, err := ParseJSONResponse(response)
	if err != nil {
		log.Printf("Rewrite response was not valid JSON, using raw text")
		d.Content = strings.TrimSpace(response)
		return d
	}

	if t, ok := parsed["title"].(string); ok && t != "" {
		d.Title = t
	}
	if c, ok := parsed["content"].(string); ok && c != "" {
		d.Content = c
	} else {
		d.Content = strings.TrimSpace(response)
	}
	return d
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "\n...(이하 생략)"
}
