package report

import (
	"strings"
	"testing"

	"github.com/yanghongseok1599/blogbooster/internal/database"
	"github.com/yanghongseok1599/blogbooster/internal/seo"
)

func sampleResult() *seo.Result {
	return &seo.Result{
		Score:            67,
		MaxScore:         seo.MaxScore,
		Grade:            seo.GradeC,
		GradeDescription: "개선이 필요합니다",
		Keyword:          "가양동 헬스장",
		AnalyzedAt:       "2026-08-29T10:00:00Z",
		Details: []seo.Factor{
			{Item: seo.ItemFirstParagraph, Score: 7, Max: 20, Status: seo.StatusBad, Hint: "인사말로 시작합니다"},
			{Item: seo.ItemImages, Score: 10, Max: 10, Status: seo.StatusGood, Hint: "이미지가 충분합니다"},
		},
	}
}

func TestCompose(t *testing.T) {
	suggestions := []seo.Suggestion{
		{Priority: seo.PriorityHigh, Category: seo.ItemFirstParagraph, Text: "첫 문단을 핵심 정보로 시작하세요"},
	}

	md := Compose("가양동 헬스장 후기", sampleResult(), suggestions)

	for _, want := range []string{
		"가양동 헬스장 후기",
		"67/100",
		"| 첫 문단 품질 | 7/20 | ❌ |",
		"| 이미지 활용 | 10/10 | ✅ |",
		"**[높음]** 첫 문단 품질",
		"키워드: `가양동 헬스장`",
		"2026-08-29T10:00:00Z",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("report missing %q", want)
		}
	}
}

func TestComposeNoSuggestions(t *testing.T) {
	res := sampleResult()
	res.Keyword = ""
	md := Compose("제목", res, nil)
	if strings.Contains(md, "개선 제안") {
		t.Error("report should omit suggestions section when empty")
	}
	if strings.Contains(md, "키워드:") {
		t.Error("report should omit keyword line when empty")
	}
}

func TestComposeEscapesPipes(t *testing.T) {
	res := sampleResult()
	res.Details[0].Hint = "a | b"
	md := Compose("제목", res, nil)
	if !strings.Contains(md, `a \| b`) {
		t.Error("pipe in hint should be escaped in table")
	}
}

func TestFromStored(t *testing.T) {
	keyword := "가양동 헬스장"
	analyzedAt := "2026-08-29T10:00:00Z"
	a := &database.Analysis{
		Score:      67,
		Grade:      "C",
		Keyword:    &keyword,
		Details:    `[{"item":"첫 문단 품질","score":7,"max":20,"status":"bad","hint":"인사말로 시작합니다"}]`,
		AnalyzedAt: &analyzedAt,
	}

	res, err := FromStored(a)
	if err != nil {
		t.Fatalf("FromStored: %v", err)
	}
	if res.Score != 67 || res.Grade != seo.GradeC {
		t.Errorf("got score %d grade %s", res.Score, res.Grade)
	}
	if res.GradeDescription == "" {
		t.Error("expected grade description")
	}
	if res.Keyword != keyword {
		t.Errorf("Keyword = %q", res.Keyword)
	}
	if len(res.Details) != 1 || res.Details[0].Item != seo.ItemFirstParagraph {
		t.Errorf("Details = %+v", res.Details)
	}
}

func TestFromStoredBadJSON(t *testing.T) {
	if _, err := FromStored(&database.Analysis{Details: "not json"}); err == nil {
		t.Error("expected error for malformed details")
	}
}

func TestRenderHTML(t *testing.T) {
	html, err := RenderHTML("# 제목\n\n| a | b |\n|---|---|\n| 1 | 2 |")
	if err != nil {
		t.Fatalf("RenderHTML: %v", err)
	}
	if !strings.Contains(html, "<h1") {
		t.Error("expected rendered heading")
	}
	if !strings.Contains(html, "<table") {
		t.Error("expected rendered GFM table")
	}
}
