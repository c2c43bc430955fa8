package tools

import (
	"log"
	"os"
	"path/filepath"
	"testing"

	"helpdesk-assistant-be/pkg/kb"
)

func newRegistry(t *testing.T, ownerCSV string) *Registry {
	t.Helper()
	dataDir := t.TempDir()
	if ownerCSV != "" {
		if err := os.WriteFile(filepath.Join(dataDir, "owners.csv"), []byte(ownerCSV), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	store := kb.NewStore(t.TempDir(), dataDir, log.New(os.Stderr, "", 0))
	return NewRegistry(store)
}

const ownersFixture = "screen,owner,email,phone\n" +
	"급여 조회,김철수,kim@corp.example,010-1111-2222\n" +
	"급여 명세서,이영희,lee@corp.example,010-3333-4444\n" +
	"휴가 신청,박민수,park@corp.example,010-5555-6666\n"

func TestDispatchScriptedSteps(t *testing.T) {
	r := newRegistry(t, "")

	reset := r.Dispatch(ToolResetPassword, nil, "비밀번호 초기화 해주세요")
	if !reset.OK || len(reset.Steps) != 3 {
		t.Fatalf("reset_password: %+v", reset)
	}
	if reset.Steps[0] != "SSO 포털 접속 > 비밀번호 재설정" {
		t.Errorf("unexpected first step: %q", reset.Steps[0])
	}

	id := r.Dispatch(ToolRequestID, nil, "아이디 발급 부탁해요")
	if !id.OK || len(id.Steps) != 2 {
		t.Fatalf("request_id: %+v", id)
	}
}

func TestDispatchUnknownTool(t *testing.T) {
	r := newRegistry(t, "")
	got := r.Dispatch(ToolName("order_coffee"), nil, "커피 주문")
	if got.OK {
		t.Error("unknown tool must report OK=false")
	}
	if got.Message == "" {
		t.Error("unknown tool must carry a user-facing message")
	}
}

func TestOwnerLookupFirstMatchWins(t *testing.T) {
	r := newRegistry(t, ownersFixture)

	got := r.Dispatch(ToolOwnerLookup, map[string]string{"screen": "급여 조회 화면"}, "급여 조회 담당자 알려줘")
	if !got.OK || got.Owner == nil {
		t.Fatalf("expected a match: %+v", got)
	}
	if got.Owner.Owner != "김철수" {
		t.Errorf("first matching entry should win, got %q", got.Owner.Owner)
	}
}

func TestOwnerLookupPartialScreenArgument(t *testing.T) {
	r := newRegistry(t, "screen,owner,email,phone\n"+
		"인사시스템-사용자관리,최지훈,choi@corp.example,010-7777-8888\n")

	// The extracted argument names less than the full screen name; the
	// entry containing it must still match.
	got := r.Dispatch(ToolOwnerLookup, map[string]string{"screen": "인사시스템"}, "담당자 알려줘")
	if !got.OK || got.Owner == nil {
		t.Fatalf("expected partial argument to match: %+v", got)
	}
	if got.Owner.Owner != "최지훈" {
		t.Errorf("unexpected owner: %q", got.Owner.Owner)
	}
	if got.Screen != "인사시스템-사용자관리" {
		t.Errorf("result should carry the matched screen, got %q", got.Screen)
	}
}

func TestOwnerLookupFallsBackToQuestion(t *testing.T) {
	r := newRegistry(t, ownersFixture)

	got := r.Dispatch(ToolOwnerLookup, map[string]string{}, "휴가 신청 화면 담당자가 누구인가요")
	if !got.OK || got.Owner == nil || got.Owner.Owner != "박민수" {
		t.Fatalf("expected 휴가 신청 match from question text: %+v", got)
	}
}

func TestOwnerLookupFullListing(t *testing.T) {
	r := newRegistry(t, ownersFixture)

	got := r.Dispatch(ToolOwnerLookup, nil, "전체 담당자 알려줘")
	if !got.OK || len(got.Owners) != 3 {
		t.Fatalf("expected full listing: %+v", got)
	}

	empty := newRegistry(t, "")
	got = empty.Dispatch(ToolOwnerLookup, nil, "전체 담당자 알려줘")
	if got.OK {
		t.Errorf("empty directory listing should be OK=false: %+v", got)
	}
}

func TestOwnerLookupMiss(t *testing.T) {
	r := newRegistry(t, ownersFixture)

	got := r.Dispatch(ToolOwnerLookup, map[string]string{"screen": "주차 등록"}, "주차 등록 담당자")
	if got.OK {
		t.Errorf("miss should be OK=false: %+v", got)
	}
	if got.Message == "" {
		t.Error("miss must carry a hint message")
	}
}
