package utils

import (
	"strings"
	"testing"
)

func TestReadingTime(t *testing.T) {
	if got := ReadingTime("short text"); got != "1 min read" {
		t.Errorf("short text: got %q", got)
	}

	// 450 词 → ceil(450/200) = 3 分钟
	long := strings.Repeat("word ", 450)
	if got := ReadingTime(long); got != "3 min read" {
		t.Errorf("450 words: got %q", got)
	}

	// HTML 标签不计入词数
	html := "<p>" + strings.Repeat("word ", 10) + "</p>"
	if got := ReadingTime(html); got != "1 min read" {
		t.Errorf("html: got %q", got)
	}

	if got := ReadingTime(""); got != "1 min read" {
		t.Errorf("empty: got %q", got)
	}
}

func TestExcerptPrefersExplicit(t *testing.T) {
	if got := Excerpt("hand-written summary", "long body text", 50); got != "hand-written summary" {
		t.Errorf("explicit excerpt ignored: %q", got)
	}
}

func TestExcerptFallsBackToText(t *testing.T) {
	got := Excerpt("", "# Heading\nSome *markdown* body", 100)
	if strings.ContainsAny(got, "#*") {
		t.Errorf("markdown markers should be stripped: %q", got)
	}
	if !strings.Contains(got, "Some markdown body") {
		t.Errorf("body text missing: %q", got)
	}
}

func TestExcerptTruncates(t *testing.T) {
	got := Excerpt("", strings.Repeat("a", 200), 50)
	if len([]rune(got)) != 53 { // 50 + "..."
		t.Errorf("expected 53 runes, got %d: %q", len([]rune(got)), got)
	}
	if !strings.HasSuffix(got, "...") {
		t.Errorf("missing ellipsis: %q", got)
	}
}

func TestGenerateRandomCode(t *testing.T) {
	code := GenerateRandomCode(6)
	if len(code) != 6 {
		t.Fatalf("expected 6 chars, got %d", len(code))
	}
	for _, r := range code {
		if r < '0' || r > '9' {
			t.Errorf("non-digit %q in code", r)
		}
	}
}
