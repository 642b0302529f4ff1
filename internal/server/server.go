// Package server provides the local web UI for analyzing and browsing posts.
package server

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"io/fs"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/yanghongseok1599/blogbooster/internal/database"
	"github.com/yanghongseok1599/blogbooster/internal/extract"
	"github.com/yanghongseok1599/blogbooster/internal/report"
	"github.com/yanghongseok1599/blogbooster/internal/seo"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static/*
var staticFS embed.FS

var md = goldmark.New(goldmark.WithExtensions(extension.GFM))

// Server is the HTTP server for the analysis UI.
type Server struct {
	db      *database.DB
	fetcher *extract.Fetcher
	pages   map[string]*template.Template
	mux     *http.ServeMux
}

// New creates a new Server.
func New(db *database.DB) (*Server, error) {
	funcMap := template.FuncMap{
		"markdown": renderMarkdown,
		"deref": func(s *string) string {
			if s == nil {
				return ""
			}
			return *s
		},
		"statusLabel": statusLabel,
	}

	// Parse base template first, then give each page its own clone so
	// every page gets independent {{define "content"}} blocks.
	base, err := template.New("base.html").Funcs(funcMap).ParseFS(templateFS, "templates/base.html")
	if err != nil {
		return nil, fmt.Errorf("parsing base template: %w", err)
	}

	pageNames := []string{"index.html", "analysis.html"}
	pages := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		clone, err := base.Clone()
		if err != nil {
			return nil, fmt.Errorf("cloning base for %s: %w", name, err)
		}
		_, err = clone.ParseFS(templateFS, "templates/"+name)
		if err != nil {
			return nil, fmt.Errorf("parsing template %s: %w", name, err)
		}
		pages[name] = clone
	}

	s := &Server{db: db, fetcher: extract.NewFetcher(0), pages: pages, mux: http.NewServeMux()}
	s.routes()
	return s, nil
}

// Handler returns the HTTP handler for the server.
func (s *Server) Handler() http.Handler {
	return s.mux
}

func (s *Server) routes() {
	staticSub, _ := fs.Sub(staticFS, "static")
	s.mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(http.FS(staticSub))))

	s.mux.HandleFunc("/", s.handleIndex)
	s.mux.HandleFunc("/analyze", s.handleAnalyze)
	s.mux.HandleFunc("/analysis/", s.handleAnalysis)
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	analyses, err := s.db.GetRecentAnalyses(20)
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	stats, err := s.db.GetStats()
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	s.render(w, "index.html", map[string]any{
		"Analyses": analyses,
		"Stats":    stats,
	})
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	keyword := strings.TrimSpace(r.FormValue("keyword"))
	pageURL := strings.TrimSpace(r.FormValue("url"))
	content := r.FormValue("content")

	var post *extract.Post
	var err error
	switch {
	case pageURL != "":
		post, err = s.fetcher.Fetch(pageURL)
		if err != nil {
			log.Printf("Fetch failed for %s: %v", pageURL, err)
			http.Error(w, "글을 가져오지 못했습니다: "+err.Error(), http.StatusBadGateway)
			return
		}
	case strings.TrimSpace(content) != "":
		post = extract.FromText(strings.TrimSpace(r.FormValue("title")), content)
	default:
		http.Error(w, "본문 또는 URL을 입력하세요", http.StatusBadRequest)
		return
	}

	input := post.Input(keyword)
	result := seo.Analyze(input)

	id, err := s.saveAnalysis(post, input, result)
	if err != nil {
		log.Printf("Saving analysis: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, fmt.Sprintf("/analysis/%d", id), http.StatusFound)
}

func (s *Server) saveAnalysis(post *extract.Post, input seo.Input, result seo.Result) (int64, error) {
	var url, keyword *string
	if post.URL != "" {
		url = &post.URL
	}
	if input.Keyword != "" {
		keyword = &input.Keyword
	}

	postID, err := s.db.InsertPost(url, post.Title, post.Text, nil, keyword)
	if err != nil {
		return 0, err
	}

	details, err := json.Marshal(result.Details)
	if err != nil {
		return 0, err
	}
	return s.db.InsertAnalysis(postID, result.Score, string(result.Grade), keyword, string(details))
}

func (s *Server) handleAnalysis(w http.ResponseWriter, r *http.Request) {
	idStr := strings.TrimPrefix(r.URL.Path, "/analysis/")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	row, err := s.db.GetAnalysis(id)
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	if row == nil {
		http.NotFound(w, r)
		return
	}

	result, err := report.FromStored(&row.Analysis)
	if err != nil {
		log.Printf("Rebuilding analysis %d: %v", id, err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	suggestions := seo.Suggestions(*result)

	rewrites, _ := s.db.GetRewritesForAnalysis(id)

	s.render(w, "analysis.html", map[string]any{
		"Row":         row,
		"Result":      result,
		"Suggestions": suggestions,
		"Rewrites":    rewrites,
	})
}

func (s *Server) render(w http.ResponseWriter, name string, data any) {
	tmpl, ok := s.pages[name]
	if !ok {
		log.Printf("Template %s not found", name)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tmpl.ExecuteTemplate(w, "base.html", data); err != nil {
		log.Printf("Error rendering template %s: %v", name, err)
	}
}

func renderMarkdown(text string) template.HTML {
	var buf bytes.Buffer
	if err := md.Convert([]byte(text), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(text))
	}
	return template.HTML(buf.String()) //nolint: gosec
}

func statusLabel(s seo.Status) string {
	switch s {
	case seo.StatusGood:
		return "양호"
	case seo.StatusWarn:
		return "주의"
	case seo.StatusBad:
		return "미흡"
	default:
		return "-"
	}
}

// Serve starts the HTTP server on the given port.
func Serve(db *database.DB, port int) error {
	srv, err := New(db)
	if err != nil {
		return err
	}

	addr := fmt.Sprintf("127.0.0.1:%d", port)
	log.Printf("Server listening on http://%s", addr)
	return http.ListenAndServe(addr, srv.Handler())
}
