package seo

import (
	"strings"
	"testing"
)

const fireFullContent = "직접 등록해서 3개월 동안 다녀왔습니다. 회당 5만원이었고, " +
	"다른 센터에 비해 효과가 확실했기 때문에 솔직히 만족했습니다."

func TestFIREAllElements(t *testing.T) {
	f := analyzeFIRE(fireFullContent)
	if f.Score != 20 {
		t.Errorf("expected 20, got %d (elements: %v)", f.Score, f.Elements)
	}
	if f.Status != StatusGood {
		t.Errorf("expected good, got %s", f.Status)
	}
	want := []string{"F(사실)", "I(해석)", "R(실제경험)", "E(감정)"}
	if len(f.Elements) != 4 {
		t.Fatalf("expected 4 elements, got %v", f.Elements)
	}
	for i, el := range want {
		if f.Elements[i] != el {
			t.Errorf("element[%d] = %q, want %q", i, f.Elements[i], el)
		}
	}
}

func TestFIREMissingElement(t *testing.T) {
	// No numbers anywhere: F missing, the rest present.
	content := "직접 다녀왔는데 다른 곳에 비해 효과가 좋아서 만족했습니다."
	f := analyzeFIRE(content)
	if f.Score != 15 {
		t.Errorf("expected 15, got %d (elements: %v)", f.Score, f.Elements)
	}
	if f.Status != StatusWarn {
		t.Errorf("expected warn, got %s", f.Status)
	}
	if !strings.Contains(f.Hint, "F(사실)") {
		t.Errorf("expected missing F named in hint, got %q", f.Hint)
	}
}

func TestFIREGenericPraisePenalty(t *testing.T) {
	// Generic praise with fewer than 2 elements: 5 - 3 = 2.
	content := "여기 진짜 좋아요 추천해요 다들 만족하실 거예요"
	f := analyzeFIRE(content)
	if f.Score != 2 {
		t.Errorf("expected 2, got %d (elements: %v)", f.Score, f.Elements)
	}
}

func TestFIREGenericPraiseFloor(t *testing.T) {
	// Zero elements minus the praise penalty stays at zero.
	content := "그냥 좋아요 좋아요 좋아요"
	f := analyzeFIRE(content)
	if f.Score != 0 {
		t.Errorf("expected 0, got %d", f.Score)
	}
	if f.Status != StatusBad {
		t.Errorf("expected bad, got %s", f.Status)
	}
}

func TestFIREEmpty(t *testing.T) {
	f := analyzeFIRE("")
	if f.Score != 0 || f.Status != StatusBad {
		t.Errorf("expected 0/bad for empty content, got %d/%s", f.Score, f.Status)
	}
	if len(f.Elements) != 0 {
		t.Errorf("expected no elements, got %v", f.Elements)
	}
}
