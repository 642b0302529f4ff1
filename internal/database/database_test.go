package database

import (
	"path/filepath"
	"testing"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func ptr(s string) *string { return &s }

func TestInsertPost(t *testing.T) {
	db := openTestDB(t)
	id, err := db.InsertPost(ptr("https://blog.naver.com/a/1"), "첫 글", "본문입니다", ptr("My Blog"), ptr("PT"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id == 0 {
		t.Error("expected non-zero post ID")
	}
}

func TestInsertPostDeduplicatesOnURL(t *testing.T) {
	db := openTestDB(t)
	id1, _ := db.InsertPost(ptr("https://blog.naver.com/a/1"), "첫 글", "본문", nil, nil)
	id2, err := db.InsertPost(ptr("https://blog.naver.com/a/1"), "수정된 글", "수정된 본문", nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id1 != id2 {
		t.Errorf("expected same ID for same URL, got %d and %d", id1, id2)
	}

	post, _ := db.GetPost(id1)
	if post == nil || post.Title != "수정된 글" {
		t.Error("expected re-insert to update content")
	}
}

func TestInsertPostWithoutURL(t *testing.T) {
	db := openTestDB(t)
	id1, err := db.InsertPost(nil, "붙여넣기 초안", "본문", nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	id2, _ := db.InsertPost(nil, "또 다른 초안", "본문", nil, nil)
	if id1 == id2 {
		t.Error("expected distinct IDs for URL-less drafts")
	}
}

func TestGetPostMissing(t *testing.T) {
	db := openTestDB(t)
	post, err := db.GetPost(999)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if post != nil {
		t.Error("expected nil for missing post")
	}
}

func TestAnalysisLifecycle(t *testing.T) {
	db := openTestDB(t)
	postID, _ := db.InsertPost(ptr("https://blog.naver.com/a/1"), "글", "본문", nil, nil)

	aid, err := db.InsertAnalysis(postID, 72, "B", ptr("PT"), `[{"item":"제목 최적화","score":10}]`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	row, err := db.GetAnalysis(aid)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if row == nil {
		t.Fatal("expected analysis row")
	}
	if row.Score != 72 || row.Grade != "B" {
		t.Errorf("unexpected analysis: %+v", row.Analysis)
	}
	if row.Title != "글" {
		t.Errorf("expected joined post title, got %q", row.Title)
	}
}

func TestGetRecentAnalyses(t *testing.T) {
	db := openTestDB(t)
	postID, _ := db.InsertPost(nil, "글", "본문", nil, nil)
	db.InsertAnalysis(postID, 50, "D", nil, "[]")
	db.InsertAnalysis(postID, 65, "C", nil, "[]")
	db.InsertAnalysis(postID, 80, "B", nil, "[]")

	rows, err := db.GetRecentAnalyses(2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0].Score != 80 {
		t.Errorf("expected newest first, got score %d", rows[0].Score)
	}
}

func TestGetAnalysesForPost(t *testing.T) {
	db := openTestDB(t)
	p1, _ := db.InsertPost(nil, "글 하나", "본문", nil, nil)
	p2, _ := db.InsertPost(nil, "글 둘", "본문", nil, nil)
	db.InsertAnalysis(p1, 40, "D", nil, "[]")
	db.InsertAnalysis(p1, 70, "B", nil, "[]")
	db.InsertAnalysis(p2, 90, "A", nil, "[]")

	rows, err := db.GetAnalysesForPost(p1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 2 {
		t.Errorf("expected 2 analyses for post 1, got %d", len(rows))
	}
}

func TestRewriteLifecycle(t *testing.T) {
	db := openTestDB(t)
	postID, _ := db.InsertPost(nil, "글", "본문", nil, nil)
	aid, _ := db.InsertAnalysis(postID, 55, "C", nil, "[]")

	if _, err := db.InsertRewrite(aid, "다시 쓴 본문입니다", ptr("qwen2.5:7b")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rewrites, err := db.GetRewritesForAnalysis(aid)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rewrites) != 1 || rewrites[0].Draft != "다시 쓴 본문입니다" {
		t.Errorf("unexpected rewrites: %+v", rewrites)
	}
}

func TestGetStats(t *testing.T) {
	db := openTestDB(t)
	stats, err := db.GetStats()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.TotalPosts != 0 || stats.TotalAnalyses != 0 {
		t.Errorf("expected empty stats, got %+v", stats)
	}

	postID, _ := db.InsertPost(nil, "글", "본문", nil, nil)
	db.InsertAnalysis(postID, 60, "C", nil, "[]")
	db.InsertAnalysis(postID, 80, "B", nil, "[]")

	stats, _ = db.GetStats()
	if stats.TotalPosts != 1 {
		t.Errorf("expected 1 post, got %d", stats.TotalPosts)
	}
	if stats.TotalAnalyses != 2 {
		t.Errorf("expected 2 analyses, got %d", stats.TotalAnalyses)
	}
	if stats.AverageScore != 70 {
		t.Errorf("expected average 70, got %d", stats.AverageScore)
	}
	if stats.BestScore != 80 {
		t.Errorf("expected best 80, got %d", stats.BestScore)
	}
}

func TestMigrationIdempotent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.db")

	db, err := Open(path)
	if err != nil {
		t.Fatalf("first open: %v", err)
	}
	db.Close()

	db, err = Open(path)
	if err != nil {
		t.Fatalf("second open: %v", err)
	}
	db.Close()
}
