package rag

import (
	"strings"
	"testing"
)

func TestBuildContextBlock(t *testing.T) {
	page := 3
	passages := []Passage{
		{Text: "사내 VPN은 SSO 계정으로 접속합니다.", Source: "it_guide.md", Page: &page},
		{Text: "보안 정책상 외부망 접속은 승인 후 가능합니다.", Source: "security.md"},
	}

	block := BuildContextBlock(passages)

	if !strings.HasPrefix(block, "[1] ") {
		t.Errorf("block should start with rank 1 marker, got %q", block[:10])
	}
	if !strings.Contains(block, "[2] 보안 정책상") {
		t.Error("second passage should carry rank 2 marker")
	}
	if idx1, idx2 := strings.Index(block, "[1]"), strings.Index(block, "[2]"); idx1 > idx2 {
		t.Error("passages must keep retrieval rank order")
	}
}

func TestBuildContextBlockTruncatesLongPassages(t *testing.T) {
	long := strings.Repeat("가", MaxPassageRunes+100)
	block := BuildContextBlock([]Passage{{Text: long, Source: "big.txt"}})

	got := []rune(strings.TrimPrefix(block, "[1] "))
	if len(got) != MaxPassageRunes {
		t.Errorf("passage should be cut to %d runes, got %d", MaxPassageRunes, len(got))
	}
}

func TestBuildContextBlockEmpty(t *testing.T) {
	if got := BuildContextBlock(nil); got != "" {
		t.Errorf("no passages should produce an empty block, got %q", got)
	}
}
