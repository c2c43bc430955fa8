package pipeline

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"helpdesk-assistant-be/internal/constant"
	"helpdesk-assistant-be/pkg/ai/state"
	"helpdesk-assistant-be/pkg/ai/tools"
	"helpdesk-assistant-be/pkg/kb"
)

const (
	faqFixture = "question,answer\n" +
		"VPN 접속이 안돼요,VPN 클라이언트를 재시작해 주세요\n" +
		"점심 시간은 언제인가요,12시부터 1시까지입니다\n"
	ownersFixture = "screen,owner,email,phone\n" +
		"급여 조회,김철수,kim@corp.example,010-1111-2222\n" +
		"급여 명세서,이영희,lee@corp.example,010-3333-4444\n"
)

func newFallback(t *testing.T, faqCSV, ownerCSV string) *FallbackPipeline {
	t.Helper()
	defaultDir := t.TempDir()
	dataDir := t.TempDir()
	if faqCSV != "" {
		if err := os.WriteFile(filepath.Join(defaultDir, "faq_data.csv"), []byte(faqCSV), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	if ownerCSV != "" {
		if err := os.WriteFile(filepath.Join(dataDir, "owners.csv"), []byte(ownerCSV), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	store := kb.NewStore(defaultDir, dataDir, log.New(os.Stderr, "", 0))
	return NewFallbackPipeline(store, tools.NewRegistry(store))
}

func TestFallbackGreetingIsExactMatch(t *testing.T) {
	p := newFallback(t, faqFixture, ownersFixture)

	got := p.Execute("  안녕하세요  ", "s1")
	if got.Intent != state.IntentGreeting || got.Reply != constant.GreetingReply {
		t.Fatalf("exact greeting: %+v", got)
	}

	// A greeting embedded in a longer sentence is not a greeting.
	got = p.Execute("안녕하세요 비밀번호 초기화 해주세요", "s1")
	if got.Intent == state.IntentGreeting {
		t.Fatalf("embedded greeting must not short-circuit: %+v", got)
	}
	if got.Intent != state.IntentDirectTool {
		t.Errorf("reset trigger should win, got %s", got.Intent)
	}
}

func TestFallbackRuleOrder(t *testing.T) {
	p := newFallback(t, faqFixture, ownersFixture)

	tests := []struct {
		name       string
		question   string
		wantIntent state.Intent
		wantIn     string
	}{
		{"reset password", "비밀번호 초기화 방법 알려줘", state.IntentDirectTool, "✅ 비밀번호 초기화 안내"},
		{"id issuance", "아이디 발급은 어떻게 하나요", state.IntentDirectTool, "🆔 ID 발급 신청 절차 안내"},
		{"account issuance variant", "계정 발급 절차", state.IntentDirectTool, "🆔 ID 발급 신청 절차 안내"},
		{"owner by screen", "급여 조회 담당자 알려줘", state.IntentDirectTool, "👤 '급여 조회' 담당자"},
		{"owner full listing", "전체 담당자 리스트", state.IntentDirectTool, "📋 전체 담당자 목록"},
		{"owner listing shorthand", "담당자 조회", state.IntentDirectTool, "📋 전체 담당자 목록"},
		{"owner miss", "주차 등록 담당자", state.IntentDirectTool, constant.OwnerNotFoundHint},
		{"faq match", "VPN 접속이 계속 안돼요", state.IntentFaq, "VPN 클라이언트를 재시작해 주세요"},
		{"unsupported", "오늘 날씨 어때", state.IntentUnsupported, constant.UnsupportedReply},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := p.Execute(tt.question, "s1")
			if got.Intent != tt.wantIntent {
				t.Errorf("intent = %s, want %s", got.Intent, tt.wantIntent)
			}
			if !strings.Contains(got.Reply, tt.wantIn) {
				t.Errorf("reply %q should contain %q", got.Reply, tt.wantIn)
			}
			if got.Sources == nil {
				t.Error("sources must never be nil")
			}
		})
	}
}

func TestFallbackIsDeterministic(t *testing.T) {
	p := newFallback(t, faqFixture, ownersFixture)

	first := p.Execute("점심 시간 알려줘", "s1")
	for i := 0; i < 5; i++ {
		again := p.Execute("점심 시간 알려줘", "s1")
		if again.Reply != first.Reply || again.Intent != first.Intent {
			t.Fatalf("run %d diverged: %+v vs %+v", i, again, first)
		}
	}
}

func TestFallbackFaqCarriesCitation(t *testing.T) {
	p := newFallback(t, faqFixture, "")

	got := p.Execute("점심 시간은 언제인가요", "s1")
	if got.Intent != state.IntentFaq {
		t.Fatalf("expected faq intent, got %s", got.Intent)
	}
	if !strings.HasPrefix(got.Reply, constant.FaqAnswerPrefix) {
		t.Error("faq reply must carry the notice prefix")
	}
	if len(got.Sources) != 1 || got.Sources[0].Source != "faq_data.csv" || got.Sources[0].Index != 1 {
		t.Errorf("unexpected citation: %+v", got.Sources)
	}
}

func TestFallbackDirectoryFirstMatchWins(t *testing.T) {
	p := newFallback(t, "", ownersFixture)

	got := p.Execute("급여 조회 담당자 누구야", "s1")
	if !strings.Contains(got.Reply, "김철수") {
		t.Errorf("first file-order entry should win: %q", got.Reply)
	}
	if len(got.Sources) != 1 || got.Sources[0].Source != "owners.csv" || got.Sources[0].Index != 1 {
		t.Errorf("owner card must cite the directory table: %+v", got.Sources)
	}
}

func TestFallbackDirectoryListingCarriesCitation(t *testing.T) {
	p := newFallback(t, "", ownersFixture)

	got := p.Execute("전체 담당자 알려줘", "s1")
	if !strings.Contains(got.Reply, "📋 전체 담당자 목록") {
		t.Fatalf("expected full listing: %q", got.Reply)
	}
	if len(got.Sources) != 1 || got.Sources[0].Source != "owners.csv" || got.Sources[0].Index != 1 {
		t.Errorf("listing must cite the directory table: %+v", got.Sources)
	}
}

func TestFallbackEmptyDirectoryListing(t *testing.T) {
	p := newFallback(t, "", "")

	got := p.Execute("전체 담당자 알려줘", "s1")
	if got.Reply != constant.EmptyOwnersReply {
		t.Errorf("empty directory listing reply = %q", got.Reply)
	}
}
