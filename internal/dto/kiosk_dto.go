package dto

import (
	"github.com/graduation-team-project-4nd/KiMate-AI/internal/entity"
)

type DialogueTurn struct {
	Role      string `json:"role" validate:"required,oneof=user assistant"`
	Utterance string `json:"utterance" validate:"required"`
}

type AnalyzeRequest struct {
	SessionID       string         `json:"session_id" validate:"required"`
	UserInput       string         `json:"user_input"`
	OcrTexts        []string       `json:"ocr_texts"`
	DialogueHistory []DialogueTurn `json:"dialogue_history" validate:"omitempty,dive"`
	LastBtn         string         `json:"last_btn"`
}

type ActionParams struct {
	TargetText string   `json:"target_text,omitempty"`
	Candidates []string `json:"candidates,omitempty"`
}

type Action struct {
	Type   string       `json:"type"`
	Params ActionParams `json:"params"`
}

type AnalyzeResponse struct {
	Status          string  `json:"status"`
	Confidence      float64 `json:"confidence"`
	ResponseMessage string  `json:"response_message"`
	Action          Action  `json:"action"`
}

type ScreenDetectRequest struct {
	SessionID       string         `json:"session_id" validate:"required"`
	PreviousTexts   []string       `json:"previous_texts"`
	CurrentTexts    []string       `json:"current_texts"`
	UserInput       string         `json:"user_input"`
	DialogueHistory []DialogueTurn `json:"dialogue_history" validate:"omitempty,dive"`
	LastBtn         string         `json:"last_btn"`
}

type ScreenDetectResponse struct {
	IsChanged       bool             `json:"is_changed"`
	SimilarityScore float64          `json:"similarity_score"`
	AiAnalysis      *AnalyzeResponse `json:"ai_analysis"`
}

// ToDecisionContext maps the wire payload to the engine's input. SessionID
// is opaque to the engine and deliberately not carried over.
func (r AnalyzeRequest) ToDecisionContext() entity.DecisionContext {
	return toDecisionContext(r.UserInput, r.OcrTexts, r.DialogueHistory, r.LastBtn)
}

// ToDecisionContext carries only the context fields; the detector fills in
// the candidates from the current snapshot if a change triggers re-analysis.
func (r ScreenDetectRequest) ToDecisionContext() entity.DecisionContext {
	return toDecisionContext(r.UserInput, nil, r.DialogueHistory, r.LastBtn)
}

func toDecisionContext(userInput string, ocrTexts []string, history []DialogueTurn, lastBtn string) entity.DecisionContext {
	turns := make([]entity.DialogueTurn, 0, len(history))
	for _, turn := range history {
		turns = append(turns, entity.DialogueTurn{
			Role:      turn.Role,
			Utterance: turn.Utterance,
		})
	}
	return entity.DecisionContext{
		UserInput:  userInput,
		Candidates: ocrTexts,
		History:    turns,
		LastButton: lastBtn,
	}
}

func FromActionResult(result *entity.ActionResult) AnalyzeResponse {
	return AnalyzeResponse{
		Status:          string(result.Status),
		Confidence:      result.Confidence,
		ResponseMessage: result.Message,
		Action: Action{
			Type: string(result.Action.Type),
			Params: ActionParams{
				TargetText: result.Action.TargetText,
				Candidates: result.Action.Candidates,
			},
		},
	}
}

func FromScreenDetectResult(result entity.ScreenDetectResult) ScreenDetectResponse {
	response := ScreenDetectResponse{
		IsChanged:       result.IsChanged,
		SimilarityScore: result.Similarity,
	}
	if result.Analysis != nil {
		analysis := FromActionResult(result.Analysis)
		response.AiAnalysis = &analysis
	}
	return response
}
