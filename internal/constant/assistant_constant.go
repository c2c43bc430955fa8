package constant

const (
	ChatMessageRoleUser      = "user"
	ChatMessageRoleAssistant = "assistant"
	ChatMessageRoleSystem    = "system"
)

// Greetings is the exact-match phrase set used by the fallback pipeline.
// Matching is performed after trimming and case-folding the question.
var Greetings = []string{"안녕", "안녕하세요", "하이", "반가워", "헬로우", "hi", "hello"}

const (
	GreetingReply = "네, 반갑습니다. 문의사항을 말씀해 주시면 제가 도와드릴게요."

	SystemErrorReply  = "죄송합니다. 시스템 오류가 발생했습니다. 잠시 후 다시 시도해 주세요."
	UnsupportedReply  = "죄송합니다. 문의하신 내용을 이해하지 못했습니다."
	NoAnswerReply     = "죄송합니다. 답변을 찾지 못했습니다."
	EmptyOwnersReply  = "등록된 담당자 정보가 없습니다."
	OwnerNotFoundHint = "담당자를 찾지 못했습니다. 화면/메뉴명을 정확히 입력해 주세요."

	FaqAnswerPrefix = "[안내] 문의하신 내용에 대한 답변입니다.\n\n---\n\n"
)

// Fallback trigger phrases. The rule order in the fallback pipeline is
// significant; these are only the literals it matches against.
const (
	TriggerResetPassword = "비밀번호 초기화"
	TriggerRequestIDA    = "아이디 발급"
	TriggerRequestIDB    = "계정 발급"
	TriggerOwner         = "담당자"
	TriggerOwnerAll      = "전체"
	TriggerOwnerListAll  = "담당자 조회"
)

// ClassifierPrompt enumerates the four classifiable intents with few-shot
// examples and asks for a JSON verdict. %s is the user question.
const ClassifierPrompt = `당신은 사용자 의도를 분류하는 AI입니다. 사용자의 질문을 가장 적합한 카테고리로 분류하세요.
- greeting: 사용자가 인사말("안녕", "안녕하세요" 등)을 건넬 때
- direct_tool: 사용자가 특정 시스템 작업(비밀번호 초기화, ID 발급, 담당자 조회)을 요청할 때
- faq: 자주 묻는 질문(FAQ)에 관련된 질문일 때
- general_qa: 위에 해당하지 않는 일반적인 질문일 때

질문에 대한 분류와 필요한 인자(JSON 형식)를 반환하세요.
JSON 형식: {"intent": "분류", "arguments": {"key": "value"}}
예시:
사용자 질문: "비밀번호 초기화 알려줘" -> {"intent": "direct_tool", "arguments": {"tool_name": "tool_reset_password"}}
사용자 질문: "인사시스템 담당자 누구야?" -> {"intent": "direct_tool", "arguments": {"tool_name": "tool_owner_lookup", "screen": "인사시스템-사용자관리"}}
사용자 질문: "점심시간이 언제야?" -> {"intent": "faq", "arguments": {}}
사용자 질문: "회사 복지제도 설명해줘" -> {"intent": "general_qa", "arguments": {}}
사용자 질문: "안녕" -> {"intent": "greeting", "arguments": {}}

사용자 질문: "%s" -> `

// System prompts for the retrieval-answer node.
const (
	RagSystemPromptNoContext = "너는 사내 헬프데스크 상담원이다. 내부 문서에 없는 질문이라도 일반 지식을 활용해 한국어로 답해라."

	RagSystemPromptWithContext = "너는 사내 헬프데스크 상담원이다. " +
		"가능하면 제공된 컨텍스트를 활용해 답변하되, " +
		"부족하면 일반 지식을 보완해서 답해라. " +
		"추가 확인이 필요하면 '정확한 정책은 사내 포털에서 확인 필요'라고 말해라."
)
