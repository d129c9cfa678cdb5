package llm

import (
	"encoding/json"

	"github.com/graduation-team-project-4nd/KiMate-AI/internal/entity"

	"github.com/openai/openai-go/v3"
)

const SystemPrompt = `[역할]
너는 시각 장애인과 외국인을 돕는 키오스크 보조 에이전트이다.
사용자는 화면을 보지 못하거나 화면의 언어를 이해하지 못할 수 있다.
현재 화면에서 OCR로 추출된 텍스트(available_texts) 중 사용자가 눌러야 할 것을 판단해서 안내하라.

[입력]
user 메시지로 JSON이 주어진다:
- "user_input": 최신 사용자 발화 (STT 결과, 없을 수 있음)
- "available_texts": 현재 화면의 OCR 텍스트 배열
- "dialogue_history": 지금까지의 대화 목록 ({"role","utterance"})
- "last_btn": 사용자가 직전에 누른 버튼 텍스트 (힌트로만 사용, 출력에 포함 금지)

[출력 형식]
반드시 아래 스키마의 JSON 객체 한 개만 출력하라. 설명, 마크다운, 코드블록 금지.
{
  "status": "success" | "ambiguous" | "fail",
  "confidence": number,            // 0.0 ~ 1.0
  "response_message": string,      // 한국어, 공손체, 짧고 명확하게
  "action": {
    "type": "click_text" | "speak_only" | "ask_clarification",
    "params": {
      // click_text:        "target_text": string
      // speak_only:        {}
      // ask_clarification: "candidates": string[]
    }
  }
}

[행동 규칙]
1. click_text: 눌러야 할 버튼을 하나로 확정했을 때. target_text에는 반드시
   available_texts 안에 실제로 존재하는 문자열만 넣어라. 화면에 없는 텍스트를
   지어내지 마라. status는 "success".
2. ask_clarification: 후보가 여러 개라 되물어야 할 때. candidates에는
   available_texts 중 일부만 넣고, 화면에 보이는 순서를 유지하라. status는 "ambiguous".
3. speak_only: 눌러야 할 적절한 버튼이 화면에 없을 때. params는 {}. status는
   보통 "fail"이지만, 버튼 없이 안내만 하면 되는 경우(결제 완료 안내, 단순 질문 답변)는
   "success"로 둘 수 있다. "없습니다"로 끝내지 말고 상위 메뉴나 다른 선택지로 유도하라.
4. response_message: 시각 장애인을 상정해서 어디를 어떻게 누를지 구체적으로 안내하라.
   버튼 안내 시에는 반드시 진동 피드백을 언급하라.
   예: "불고기버거 버튼으로 안내하겠습니다. 손가락을 움직이면 목표에 가까워질수록 진동이 빨라집니다."
   메뉴 이름은 화면의 텍스트 그대로 읽어라.
5. last_btn과 dialogue_history는 의도 추론 힌트로만 사용하라. "그걸로 줘" 같은
   지시 표현은 직전 대화와 last_btn으로 해석하라.
6. 사용자가 선택을 확정하지 않았다면 임의로 고르지 말고 ask_clarification으로 되물어라.`

// analyzePayload is the JSON the model receives as its final user message.
type analyzePayload struct {
	Task            string         `json:"task"`
	UserInput       string         `json:"user_input"`
	AvailableTexts  []string       `json:"available_texts"`
	DialogueHistory []dialogueTurn `json:"dialogue_history"`
	LastBtn         string         `json:"last_btn,omitempty"`
}

type dialogueTurn struct {
	Role      string `json:"role"`
	Utterance string `json:"utterance"`
}

// fewShotMessages returns worked examples covering each action variant, so
// smaller models keep the output shape stable.
func fewShotMessages() []openai.ChatCompletionMessageParamUnion {
	examples := []struct {
		user      analyzePayload
		assistant string
	}{
		{
			user: analyzePayload{
				Task:            "analyze_kiosk",
				UserInput:       "소고기 들어간 걸로 줘",
				AvailableTexts:  []string{"불고기 버거", "치즈 버거", "사이드", "음료"},
				DialogueHistory: []dialogueTurn{},
			},
			assistant: `{"status":"ambiguous","confidence":0.62,"response_message":"불고기 버거와 치즈 버거 중 어떤 것을 선택할까요?","action":{"type":"ask_clarification","params":{"candidates":["불고기 버거","치즈 버거"]}}}`,
		},
		{
			user: analyzePayload{
				Task:            "analyze_kiosk",
				UserInput:       "맥너겟 4조각으로 줘",
				AvailableTexts:  []string{"후렌치 후라이 -미디엄", "맥너겟 4조각", "골든 모짜렐라 치즈스틱"},
				DialogueHistory: []dialogueTurn{},
				LastBtn:         "세트 선택",
			},
			assistant: `{"status":"success","confidence":0.91,"response_message":"맥너겟 4조각 버튼으로 안내하겠습니다. 손가락을 움직이면 목표에 가까워질수록 진동이 빨라집니다.","action":{"type":"click_text","params":{"target_text":"맥너겟 4조각"}}}`,
		},
		{
			user: analyzePayload{
				Task:            "analyze_kiosk",
				UserInput:       "에스프레소 없어?",
				AvailableTexts:  []string{"코카콜라- 미디엄", "스프라이트- 미디엄", "환타 - 미디엄", "아이스 아메리카노 - 미디엄"},
				DialogueHistory: []dialogueTurn{},
				LastBtn:         "디핑 소스 선택",
			},
			assistant: `{"status":"fail","confidence":0.44,"response_message":"에스프레소는 현재 화면에 없습니다. 보이는 음료 중에서 선택하시겠어요?","action":{"type":"speak_only","params":{}}}`,
		},
	}

	messages := make([]openai.ChatCompletionMessageParamUnion, 0, len(examples)*2)
	for _, ex := range examples {
		userJSON, _ := json.Marshal(ex.user)
		messages = append(messages,
			openai.UserMessage(string(userJSON)),
			openai.AssistantMessage(ex.assistant),
		)
	}
	return messages
}

// ConstructMessages renders a decision context into the full message chain
// sent to the model. Pure function: input -> output, easy to test.
func ConstructMessages(dc entity.DecisionContext) []openai.ChatCompletionMessageParamUnion {
	messages := []openai.ChatCompletionMessageParamUnion{
		openai.SystemMessage(SystemPrompt),
	}
	messages = append(messages, fewShotMessages()...)

	payload := analyzePayload{
		Task:            "analyze_kiosk",
		UserInput:       dc.UserInput,
		AvailableTexts:  dc.Candidates,
		DialogueHistory: make([]dialogueTurn, 0, len(dc.History)),
		LastBtn:         dc.LastButton,
	}
	if payload.AvailableTexts == nil {
		payload.AvailableTexts = []string{}
	}
	for _, turn := range dc.History {
		payload.DialogueHistory = append(payload.DialogueHistory, dialogueTurn{
			Role:      turn.Role,
			Utterance: turn.Utterance,
		})
	}

	userJSON, _ := json.Marshal(payload)
	messages = append(messages, openai.UserMessage(string(userJSON)))

	return messages
}
