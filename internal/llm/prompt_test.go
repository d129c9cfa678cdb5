package llm

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/graduation-team-project-4nd/KiMate-AI/internal/entity"

	"github.com/openai/openai-go/v3"
)

// Helper: marshal the message to JSON and pull out the content. Works for
// any message type (System, User, Assistant) because the SDK guarantees
// correct JSON marshaling.
func extractContent(t *testing.T, msg openai.ChatCompletionMessageParamUnion) string {
	bytes, err := json.Marshal(msg)
	if err != nil {
		t.Fatalf("Failed to marshal message: %v", err)
	}

	var temp struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	}
	if err := json.Unmarshal(bytes, &temp); err != nil {
		t.Fatalf("Failed to unmarshal JSON content: %v", err)
	}

	return temp.Content
}

func TestConstructMessages_Basic(t *testing.T) {
	dc := entity.DecisionContext{
		UserInput:  "불고기 버거 하나",
		Candidates: []string{"추천메뉴", "불고기버거", "치즈버거"},
		LastButton: "햄버거",
	}

	msgs := ConstructMessages(dc)

	// system + 3 few-shot pairs + current payload
	if len(msgs) != 8 {
		t.Errorf("Expected 8 messages, got %d", len(msgs))
	}

	sysContent := extractContent(t, msgs[0])
	if !strings.Contains(sysContent, "키오스크 보조 에이전트") {
		t.Error("System prompt mismatch")
	}

	userContent := extractContent(t, msgs[len(msgs)-1])
	t.Logf("\n--- [TEST LOG] Final User Message ---\n%s\n-------------------------------------", userContent)

	if !strings.Contains(userContent, "불고기 버거 하나") {
		t.Error("User input missing in payload")
	}
	if !strings.Contains(userContent, "불고기버거") {
		t.Error("OCR candidates missing in payload")
	}
	if !strings.Contains(userContent, "햄버거") {
		t.Error("last_btn missing in payload")
	}
}

func TestConstructMessages_WithHistory(t *testing.T) {
	dc := entity.DecisionContext{
		UserInput:  "그걸로 줘",
		Candidates: []string{"불고기버거", "치즈버거"},
		History: []entity.DialogueTurn{
			{Role: entity.RoleUser, Utterance: "소고기 들어간 거 있어?"},
			{Role: entity.RoleAssistant, Utterance: "불고기버거가 있습니다."},
		},
	}

	msgs := ConstructMessages(dc)

	userContent := extractContent(t, msgs[len(msgs)-1])
	if !strings.Contains(userContent, "소고기 들어간 거 있어?") {
		t.Error("History turn missing in payload")
	}
	if !strings.Contains(userContent, "불고기버거가 있습니다.") {
		t.Error("Assistant turn missing in payload")
	}
}

func TestConstructMessages_EmptyScreen(t *testing.T) {
	msgs := ConstructMessages(entity.DecisionContext{UserInput: "주문할게요"})

	userContent := extractContent(t, msgs[len(msgs)-1])
	// The model must see an explicit empty array, not null.
	if !strings.Contains(userContent, `"available_texts":[]`) {
		t.Errorf("Expected empty available_texts array, got: %s", userContent)
	}
}
