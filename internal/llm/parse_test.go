package llm

import (
	"testing"

	"github.com/graduation-team-project-4nd/KiMate-AI/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var visible = []string{"추천메뉴", "불고기버거", "치즈버거", "다음"}

func TestParseResponse_ClickText(t *testing.T) {
	content := `{"status":"success","confidence":0.92,"response_message":"불고기버거 버튼으로 안내하겠습니다.","action":{"type":"click_text","params":{"target_text":"불고기버거"}}}`

	result, err := ParseResponse(content, visible)

	require.NoError(t, err)
	assert.Equal(t, entity.StatusSuccess, result.Status)
	assert.Equal(t, 0.92, result.Confidence)
	assert.Equal(t, entity.ActionClickText, result.Action.Type)
	assert.Equal(t, "불고기버거", result.Action.TargetText)
}

func TestParseResponse_AskClarification(t *testing.T) {
	content := `{"status":"ambiguous","confidence":0.6,"response_message":"어떤 버거를 드릴까요?","action":{"type":"ask_clarification","params":{"candidates":["불고기버거","치즈버거"]}}}`

	result, err := ParseResponse(content, visible)

	require.NoError(t, err)
	assert.Equal(t, entity.StatusAmbiguous, result.Status)
	assert.Equal(t, []string{"불고기버거", "치즈버거"}, result.Action.Candidates)
}

func TestParseResponse_SpeakOnly(t *testing.T) {
	content := `{"status":"fail","confidence":0.3,"response_message":"현재 화면에 해당 메뉴가 없습니다. 다음 버튼으로 넘어가 보세요.","action":{"type":"speak_only","params":{}}}`

	result, err := ParseResponse(content, visible)

	require.NoError(t, err)
	assert.Equal(t, entity.StatusFail, result.Status)
	assert.Equal(t, entity.ActionSpeakOnly, result.Action.Type)
}

func TestParseResponse_RejectsNonJSON(t *testing.T) {
	_, err := ParseResponse("불고기버거를 누르세요", visible)
	assert.Error(t, err)
}

func TestParseResponse_RejectsInventedTarget(t *testing.T) {
	content := `{"status":"success","confidence":0.9,"response_message":"안내합니다.","action":{"type":"click_text","params":{"target_text":"감자튀김"}}}`

	_, err := ParseResponse(content, visible)
	assert.Error(t, err)
}

func TestParseResponse_RejectsStatusVariantMismatch(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			"click_text with fail status",
			`{"status":"fail","confidence":0.5,"response_message":"x","action":{"type":"click_text","params":{"target_text":"불고기버거"}}}`,
		},
		{
			"ask_clarification with success status",
			`{"status":"success","confidence":0.5,"response_message":"x","action":{"type":"ask_clarification","params":{"candidates":["불고기버거"]}}}`,
		},
		{
			"speak_only with ambiguous status",
			`{"status":"ambiguous","confidence":0.5,"response_message":"x","action":{"type":"speak_only","params":{}}}`,
		},
		{
			"empty clarification candidates",
			`{"status":"ambiguous","confidence":0.5,"response_message":"x","action":{"type":"ask_clarification","params":{"candidates":[]}}}`,
		},
		{
			"candidate not on screen",
			`{"status":"ambiguous","confidence":0.5,"response_message":"x","action":{"type":"ask_clarification","params":{"candidates":["불고기버거","새우버거"]}}}`,
		},
		{
			"unknown status",
			`{"status":"maybe","confidence":0.5,"response_message":"x","action":{"type":"speak_only","params":{}}}`,
		},
		{
			"unknown action type",
			`{"status":"success","confidence":0.5,"response_message":"x","action":{"type":"swipe","params":{}}}`,
		},
		{
			"confidence out of range",
			`{"status":"fail","confidence":1.5,"response_message":"x","action":{"type":"speak_only","params":{}}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseResponse(tt.content, visible)
			assert.Error(t, err)
		})
	}
}
