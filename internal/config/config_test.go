package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseDefaultConfig(t *testing.T) {
	cfg, err := parse(DefaultConfigYAML)
	if err != nil {
		t.Fatalf("failed to parse default config: %v", err)
	}

	if cfg.Rewrite.Provider != "ollama" {
		t.Errorf("expected provider 'ollama', got %q", cfg.Rewrite.Provider)
	}
	if cfg.Rewrite.Model != "qwen2.5:7b" {
		t.Errorf("expected model 'qwen2.5:7b', got %q", cfg.Rewrite.Model)
	}
	if cfg.Server.Port != 8600 {
		t.Errorf("expected port 8600, got %d", cfg.Server.Port)
	}
}

func TestParseMinimalConfig(t *testing.T) {
	data := []byte(`
keyword: 강남PT
rewrite:
  provider: openai
server:
  port: 9000
`)
	cfg, err := parse(data)
	if err != nil {
		t.Fatalf("failed to parse minimal config: %v", err)
	}

	if cfg.Keyword != "강남PT" {
		t.Errorf("expected keyword '강남PT', got %q", cfg.Keyword)
	}
	if cfg.Rewrite.Provider != "openai" {
		t.Errorf("expected provider 'openai', got %q", cfg.Rewrite.Provider)
	}
	if cfg.Server.Port != 9000 {
		t.Errorf("expected port 9000, got %d", cfg.Server.Port)
	}
	// Unset fields keep their defaults.
	if cfg.Rewrite.OllamaURL != "http://localhost:11434" {
		t.Errorf("expected default ollama_url, got %q", cfg.Rewrite.OllamaURL)
	}
}

func TestParseBlogs(t *testing.T) {
	data := []byte(`
blogs:
  - rss: https://blog.rss.naver.com/someblog.xml
    name: Some Blog
`)
	cfg, err := parse(data)
	if err != nil {
		t.Fatalf("failed to parse: %v", err)
	}
	if len(cfg.Blogs) != 1 || cfg.Blogs[0].Name != "Some Blog" {
		t.Errorf("unexpected blogs: %+v", cfg.Blogs)
	}
}

func TestResolveConfigPathExplicit(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("keyword: test"), 0o644); err != nil {
		t.Fatal(err)
	}

	resolved, err := ResolveConfigPath(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resolved != path {
		t.Errorf("expected %s, got %s", path, resolved)
	}

	if _, err := ResolveConfigPath(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing explicit path")
	}
}

func TestGetDataDir(t *testing.T) {
	cfg := &Config{}
	if cfg.GetDataDir() == "" {
		t.Error("expected non-empty default data dir")
	}

	cfg.Output.DataDir = "/tmp/custom"
	if cfg.GetDataDir() != "/tmp/custom" {
		t.Errorf("expected configured dir, got %s", cfg.GetDataDir())
	}
}
