package tools

import (
	"strings"

	"helpdesk-assistant-be/internal/constant"
	"helpdesk-assistant-be/pkg/kb"
)

// ToolName identifies one scripted help-desk procedure.
type ToolName string

const (
	ToolResetPassword ToolName = "tool_reset_password"
	ToolRequestID     ToolName = "tool_request_id"
	ToolOwnerLookup   ToolName = "tool_owner_lookup"
)

// ResetPasswordSteps and RequestIDSteps are the fixed procedures the
// scripted tools hand back. Order matters; finalize numbers them as-is.
var (
	ResetPasswordSteps = []string{
		"SSO 포털 접속 > 비밀번호 재설정",
		"본인인증",
		"새 비밀번호 설정",
	}
	RequestIDSteps = []string{
		"HR 포털 접속 > '계정 신청' 양식 제출",
		"양식 승인 후 IT팀에서 계정 생성",
	}
)

// Result is the structured outcome of one tool invocation. Formatting
// into user-facing text happens downstream; tools only decide content.
type Result struct {
	Tool    ToolName
	OK      bool
	Message string
	Steps   []string
	Owner   *kb.OwnerEntry
	Owners  []kb.OwnerEntry
	Screen  string
}

// Registry dispatches tool invocations against the reference tables.
type Registry struct {
	store *kb.Store
}

func NewRegistry(store *kb.Store) *Registry {
	return &Registry{store: store}
}

// Dispatch runs the named tool. Unknown tools and lookup misses come
// back as OK=false with a user-facing message; Dispatch never errors.
func (r *Registry) Dispatch(name ToolName, args map[string]string, question string) Result {
	switch name {
	case ToolResetPassword:
		return Result{Tool: ToolResetPassword, OK: true, Steps: ResetPasswordSteps}
	case ToolRequestID:
		return Result{Tool: ToolRequestID, OK: true, Steps: RequestIDSteps}
	case ToolOwnerLookup:
		return r.lookupOwner(args, question)
	default:
		return Result{Tool: name, OK: false, Message: constant.UnsupportedReply}
	}
}

// lookupOwner resolves a screen name to its owner. Asking for everything
// ("전체", "모두", "리스트") returns the whole directory. An extracted
// screen argument matches any entry whose screen name contains it; with
// no argument (or no hit), the first entry whose screen name appears in
// the question text wins.
func (r *Registry) lookupOwner(args map[string]string, question string) Result {
	owners := r.store.Owners()

	if wantsFullListing(question) {
		if len(owners) == 0 {
			return Result{Tool: ToolOwnerLookup, OK: false, Message: constant.EmptyOwnersReply}
		}
		return Result{Tool: ToolOwnerLookup, OK: true, Owners: owners}
	}

	if needle := strings.TrimSpace(args["screen"]); needle != "" {
		for i := range owners {
			if owners[i].Screen != "" && strings.Contains(owners[i].Screen, needle) {
				return Result{Tool: ToolOwnerLookup, OK: true, Owner: &owners[i], Screen: owners[i].Screen}
			}
		}
	}

	for i := range owners {
		if owners[i].Screen != "" && strings.Contains(question, owners[i].Screen) {
			return Result{Tool: ToolOwnerLookup, OK: true, Owner: &owners[i], Screen: owners[i].Screen}
		}
	}

	return Result{Tool: ToolOwnerLookup, OK: false, Message: constant.OwnerNotFoundHint}
}

func wantsFullListing(question string) bool {
	for _, marker := range []string{"전체", "모두", "리스트"} {
		if strings.Contains(question, marker) {
			return true
		}
	}
	return false
}
