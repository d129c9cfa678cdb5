package entity

import (
	"errors"
	"fmt"
)

// Status classifies how confident the engine is in its recommendation.
type Status string

const (
	StatusSuccess   Status = "success"
	StatusAmbiguous Status = "ambiguous"
	StatusFail      Status = "fail"
)

// ActionType names the concrete operation the kiosk app must perform.
type ActionType string

const (
	ActionClickText        ActionType = "click_text"
	ActionSpeakOnly        ActionType = "speak_only"
	ActionAskClarification ActionType = "ask_clarification"
)

// Action is a tagged variant: which payload field is meaningful depends on Type.
type Action struct {
	Type       ActionType
	TargetText string   // click_text: the on-screen label to tap
	Candidates []string // ask_clarification: labels the user must pick from
}

// ActionResult is the single output of a recommendation. It is an immutable
// value: built once, validated, returned.
type ActionResult struct {
	Status     Status
	Confidence float64
	Message    string
	Action     Action
}

// Validate enforces the status/variant consistency rules. click_text targets
// and ask_clarification candidates must name labels actually visible on
// screen; anything else means the producer (usually the model) invented a
// label and the result must not escape.
func (r *ActionResult) Validate(visible []string) error {
	switch r.Status {
	case StatusSuccess, StatusAmbiguous, StatusFail:
	default:
		return fmt.Errorf("unknown status %q", r.Status)
	}
	if r.Confidence < 0 || r.Confidence > 1 {
		return fmt.Errorf("confidence %v out of [0,1]", r.Confidence)
	}

	switch r.Action.Type {
	case ActionClickText:
		if r.Status != StatusSuccess {
			return fmt.Errorf("click_text requires status success, got %q", r.Status)
		}
		if r.Action.TargetText == "" {
			return errors.New("click_text without target_text")
		}
		if !contains(visible, r.Action.TargetText) {
			return fmt.Errorf("click_text target %q is not on screen", r.Action.TargetText)
		}

	case ActionAskClarification:
		if r.Status != StatusAmbiguous {
			return fmt.Errorf("ask_clarification requires status ambiguous, got %q", r.Status)
		}
		if len(r.Action.Candidates) == 0 {
			return errors.New("ask_clarification without candidates")
		}
		for _, c := range r.Action.Candidates {
			if !contains(visible, c) {
				return fmt.Errorf("clarification candidate %q is not on screen", c)
			}
		}

	case ActionSpeakOnly:
		// Allowed for fail, and for success when no tap is needed
		// (informational answers, completed-flow announcements).
		if r.Status == StatusAmbiguous {
			return errors.New("speak_only cannot be ambiguous")
		}

	default:
		return fmt.Errorf("unknown action type %q", r.Action.Type)
	}
	return nil
}

func contains(list []string, target string) bool {
	for _, v := range list {
		if v == target {
			return true
		}
	}
	return false
}
