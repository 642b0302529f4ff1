// Package report renders analysis results as markdown and HTML.
package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/yanghongseok1599/blogbooster/internal/database"
	"github.com/yanghongseok1599/blogbooster/internal/seo"
)

var statusSymbols = map[seo.Status]string{
	seo.StatusGood: "✅",
	seo.StatusWarn: "⚠️",
	seo.StatusBad:  "❌",
	seo.StatusNone: "➖",
}

var priorityLabels = map[seo.Priority]string{
	seo.PriorityHigh:   "높음",
	seo.PriorityMedium: "중간",
	seo.PriorityLow:    "낮음",
}

// FromStored rebuilds an analysis result from its database row.
func FromStored(a *database.Analysis) (*seo.Result, error) {
	var factors []seo.Factor
	if err := json.Unmarshal([]byte(a.Details), &factors); err != nil {
		return nil, fmt.Errorf("parsing stored factors: %w", err)
	}

	res := &seo.Result{
		Score:            a.Score,
		MaxScore:         seo.MaxScore,
		Grade:            seo.Grade(a.Grade),
		GradeDescription: seo.DescribeGrade(seo.Grade(a.Grade)),
		Details:          factors,
	}
	if a.Keyword != nil {
		res.Keyword = *a.Keyword
	}
	if a.AnalyzedAt != nil {
		res.AnalyzedAt = *a.AnalyzedAt
	}
	return res, nil
}

// Compose builds a markdown report for one analysis.
func Compose(title string, res *seo.Result, suggestions []seo.Suggestion) string {
	var sections []string

	header := fmt.Sprintf("# SEO 분석 리포트\n\n**%s**\n\n점수: **%d/%d** · 등급: **%s**\n\n%s",
		title, res.Score, res.MaxScore, res.Grade, res.GradeDescription)
	if res.Keyword != "" {
		header += fmt.Sprintf("\n\n키워드: `%s`", res.Keyword)
	}
	sections = append(sections, header)

	sections = append(sections, factorTable(res.Details))

	if len(suggestions) > 0 {
		var lines []string
		lines = append(lines, "## 개선 제안")
		for _, s := range suggestions {
			lines = append(lines, fmt.Sprintf("- **[%s]** %s: %s",
				priorityLabels[s.Priority], s.Category, s.Text))
		}
		sections = append(sections, strings.Join(lines, "\n"))
	}

	if res.AnalyzedAt != "" {
		sections = append(sections, fmt.Sprintf("_분석 시각: %s_", res.AnalyzedAt))
	}

	return strings.Join(sections, "\n\n---\n\n")
}

func factorTable(factors []seo.Factor) string {
	var b strings.Builder
	b.WriteString("## 항목별 점수\n\n")
	b.WriteString("| 항목 | 점수 | 상태 | 진단 |\n")
	b.WriteString("|------|------|------|------|\n")
	for _, f := range factors {
		symbol, ok := statusSymbols[f.Status]
		if !ok {
			symbol = "➖"
		}
		fmt.Fprintf(&b, "| %s | %d/%d | %s | %s |\n",
			f.Item, f.Score, f.Max, symbol, strings.ReplaceAll(f.Hint, "|", "\\|"))
	}
	return strings.TrimRight(b.String(), "\n")
}

var markdown = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithRendererOptions(html.WithUnsafe()),
)

// RenderHTML converts markdown to HTML for the web UI.
func RenderHTML(source string) (string, error) {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(source), &buf); err != nil {
		return "", fmt.Errorf("rendering markdown: %w", err)
	}
	return buf.String(), nil
}
