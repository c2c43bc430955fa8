package utils

import (
	"strings"
	"testing"
)

func TestSplitTextShortInput(t *testing.T) {
	chunks := SplitText("짧은 문서", 800, 120)
	if len(chunks) != 1 || chunks[0] != "짧은 문서" {
		t.Fatalf("short input should stay whole: %v", chunks)
	}
}

func TestSplitTextChunksOverlap(t *testing.T) {
	text := strings.Repeat("가", 2000)
	chunks := SplitText(text, 800, 120)

	if len(chunks) < 3 {
		t.Fatalf("expected at least 3 chunks, got %d", len(chunks))
	}
	if got := len([]rune(chunks[0])); got != 800 {
		t.Errorf("first chunk has %d runes, want 800", got)
	}

	// Consecutive chunks share the overlap region.
	first := []rune(chunks[0])
	second := []rune(chunks[1])
	if string(first[len(first)-120:]) != string(second[:120]) {
		t.Error("chunks should overlap by 120 runes")
	}
}

func TestSplitTextGuardsBadOverlap(t *testing.T) {
	text := strings.Repeat("a", 30)
	chunks := SplitText(text, 10, 10)
	if len(chunks) != 3 {
		t.Fatalf("overlap >= chunk size should fall back to disjoint chunks: %v", chunks)
	}
}
