package kb

import (
	"log"
	"os"
	"path/filepath"
	"testing"
)

func newTestStore(t *testing.T, faqCSV, ownerCSV string) *Store {
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
	return NewStore(defaultDir, dataDir, log.New(os.Stderr, "", 0))
}

func TestFAQLoad(t *testing.T) {
	s := newTestStore(t, "question,answer\nVPN 접속이 안돼요,VPN 클라이언트를 재시작해 주세요\n점심 시간은 언제인가요,12시부터 1시까지입니다\n", "")

	faq := s.FAQ()
	if len(faq) != 2 {
		t.Fatalf("expected 2 FAQ entries, got %d", len(faq))
	}
	if faq[0].Question != "VPN 접속이 안돼요" {
		t.Errorf("unexpected question: %q", faq[0].Question)
	}
	if !faq[0].Tokens.Contains("vpn") {
		t.Error("tokens should be computed at load time")
	}
}

func TestFAQLoadWithBOM(t *testing.T) {
	s := newTestStore(t, "\uFEFFquestion,answer\n휴가 신청 방법,HR 포털에서 신청합니다\n", "")

	faq := s.FAQ()
	if len(faq) != 1 {
		t.Fatalf("expected 1 FAQ entry, got %d", len(faq))
	}
	if faq[0].Answer != "HR 포털에서 신청합니다" {
		t.Errorf("unexpected answer: %q", faq[0].Answer)
	}
}

func TestMissingFilesDegradeToEmpty(t *testing.T) {
	s := newTestStore(t, "", "")

	if got := s.FAQ(); len(got) != 0 {
		t.Errorf("missing FAQ file should yield empty table, got %d entries", len(got))
	}
	if got := s.Owners(); len(got) != 0 {
		t.Errorf("missing owner file should yield empty table, got %d entries", len(got))
	}
	if s.FindSimilarFAQ("아무 질문") != nil {
		t.Error("FindSimilarFAQ on empty table should return nil")
	}
}

func TestOwnersKeepFileOrder(t *testing.T) {
	s := newTestStore(t, "", "screen,owner,email,phone\n급여 조회,김철수,kim@corp.example,010-1111-2222\n급여 명세,이영희,lee@corp.example,010-3333-4444\n")

	owners := s.Owners()
	if len(owners) != 2 {
		t.Fatalf("expected 2 owner entries, got %d", len(owners))
	}
	if owners[0].Owner != "김철수" || owners[1].Owner != "이영희" {
		t.Errorf("owner entries out of file order: %+v", owners)
	}
	if owners[0].Email != "kim@corp.example" {
		t.Errorf("unexpected email: %q", owners[0].Email)
	}
}

func TestFindSimilarFAQ(t *testing.T) {
	s := newTestStore(t, "question,answer\nVPN 접속이 안돼요,VPN 클라이언트를 재시작해 주세요\n점심 시간은 언제인가요,12시부터 1시까지입니다\n", "")

	hit := s.FindSimilarFAQ("VPN 접속이 계속 안돼요")
	if hit == nil {
		t.Fatal("expected a FAQ match")
	}
	if hit.Answer != "VPN 클라이언트를 재시작해 주세요" {
		t.Errorf("matched wrong entry: %+v", hit)
	}

	if miss := s.FindSimilarFAQ("주차장 등록은 어떻게 하나요"); miss != nil {
		t.Errorf("unrelated question should not match, got %+v", miss)
	}
}
