package llm

import (
	"encoding/json"
	"fmt"

	"github.com/graduation-team-project-4nd/KiMate-AI/internal/entity"
)

// Wire shape of the model reply. params is parsed leniently; everything is
// checked strictly afterwards.
type wireResult struct {
	Status          string  `json:"status"`
	Confidence      float64 `json:"confidence"`
	ResponseMessage string  `json:"response_message"`
	Action          struct {
		Type   string `json:"type"`
		Params struct {
			TargetText string   `json:"target_text"`
			Candidates []string `json:"candidates"`
		} `json:"params"`
	} `json:"action"`
}

// ParseResponse coerces raw model output into a valid ActionResult.
// Anything that fails to decode, or decodes into a result violating the
// status/action rules (including targets not present among the visible
// labels), comes back as an error so the caller can fall back. Partially
// valid data never escapes.
func ParseResponse(content string, visible []string) (*entity.ActionResult, error) {
	var w wireResult
	if err := json.Unmarshal([]byte(content), &w); err != nil {
		return nil, fmt.Errorf("model returned non-JSON content: %w", err)
	}

	result := &entity.ActionResult{
		Status:     entity.Status(w.Status),
		Confidence: w.Confidence,
		Message:    w.ResponseMessage,
		Action: entity.Action{
			Type:       entity.ActionType(w.Action.Type),
			TargetText: w.Action.Params.TargetText,
			Candidates: w.Action.Params.Candidates,
		},
	}

	if err := result.Validate(visible); err != nil {
		return nil, fmt.Errorf("model output rejected: %w", err)
	}
	return result, nil
}
