package pipeline

import (
	"fmt"
	"strings"

	"helpdesk-assistant-be/pkg/ai/tools"
	"helpdesk-assistant-be/pkg/kb"
)

// Finalize renders a tool result into user-facing text. Pure formatting,
// no backend calls.
func Finalize(res tools.Result) string {
	if !res.OK {
		return res.Message
	}

	switch res.Tool {
	case tools.ToolResetPassword:
		return formatSteps("✅ 비밀번호 초기화 안내", res.Steps)
	case tools.ToolRequestID:
		return formatSteps("🆔 ID 발급 신청 절차 안내", res.Steps)
	case tools.ToolOwnerLookup:
		if len(res.Owners) > 0 {
			return formatOwnerList(res.Owners)
		}
		return formatOwner(res.Owner)
	default:
		return res.Message
	}
}

func formatSteps(title string, steps []string) string {
	var b strings.Builder
	b.WriteString(title)
	b.WriteString("\n")
	for i, step := range steps {
		b.WriteString(fmt.Sprintf("\n%d. %s", i+1, step))
	}
	return b.String()
}

func formatOwner(owner *kb.OwnerEntry) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("👤 '%s' 담당자\n", owner.Screen))
	b.WriteString(fmt.Sprintf("- 이름: %s\n", owner.Owner))
	b.WriteString(fmt.Sprintf("- 이메일: %s\n", owner.Email))
	b.WriteString(fmt.Sprintf("- 연락처: %s", owner.Phone))
	return b.String()
}

func formatOwnerList(owners []kb.OwnerEntry) string {
	var b strings.Builder
	b.WriteString("📋 전체 담당자 목록")
	for _, o := range owners {
		b.WriteString(fmt.Sprintf("\n- %s: %s (%s / %s)", o.Screen, o.Owner, o.Email, o.Phone))
	}
	return b.String()
}
