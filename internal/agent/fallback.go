package agent

import (
	"fmt"
	"strings"

	"github.com/graduation-team-project-4nd/KiMate-AI/internal/entity"
)

// Fallback recommends an action without the model: pure lexical containment
// between user-input tokens and each visible label. Deterministic and
// network-free, so it is always available — in mock mode, when the model is
// unreachable, and when the model's output is unusable.
//
// Scoring: a label earns one point per input token it contains (or that
// contains it). A unique top scorer wins, tied top scorers become a
// clarification question, zero overlap is a miss.
func Fallback(dc entity.DecisionContext) *entity.ActionResult {
	tokens := strings.Fields(norm(dc.UserInput))

	best := 0
	var matched []string
	for _, candidate := range dc.Candidates {
		score := overlapScore(tokens, candidate)
		if score > best {
			best = score
			matched = matched[:0]
			matched = append(matched, candidate)
		} else if score == best && score > 0 {
			matched = append(matched, candidate)
		}
	}
	// OCR may list the same label twice; one label is still one choice.
	matched = dedupe(matched)

	switch {
	case best == 0 || len(matched) == 0:
		return missResult(dc.Candidates)

	case len(matched) == 1:
		return &entity.ActionResult{
			Status:     entity.StatusSuccess,
			Confidence: 0.5,
			Message:    fmt.Sprintf("%s 버튼으로 안내하겠습니다. 손가락을 움직이면 목표에 가까워질수록 진동이 빨라집니다.", matched[0]),
			Action: entity.Action{
				Type:       entity.ActionClickText,
				TargetText: matched[0],
			},
		}

	default:
		return &entity.ActionResult{
			Status:     entity.StatusAmbiguous,
			Confidence: 0.4,
			Message:    fmt.Sprintf("%s 중 어떤 것을 선택하시겠어요?", strings.Join(matched, "와 ")),
			Action: entity.Action{
				Type:       entity.ActionAskClarification,
				Candidates: matched,
			},
		}
	}
}

// missResult steers the user toward what the screen does offer instead of a
// bare "not found".
func missResult(candidates []string) *entity.ActionResult {
	visible := dedupe(candidates)
	if len(visible) == 0 {
		return &entity.ActionResult{
			Status:     entity.StatusFail,
			Confidence: 0.2,
			Message:    "화면에서 선택할 수 있는 텍스트가 없습니다. 화면을 다시 비춰주세요.",
			Action:     entity.Action{Type: entity.ActionSpeakOnly},
		}
	}

	sample := visible
	if len(sample) > 3 {
		sample = sample[:3]
	}
	return &entity.ActionResult{
		Status:     entity.StatusFail,
		Confidence: 0.3,
		Message:    fmt.Sprintf("요청하신 항목은 현재 화면에 없습니다. 화면에는 %s 등이 있습니다. 이 중에서 선택하시거나 다음 화면으로 이동해 보세요.", strings.Join(sample, ", ")),
		Action:     entity.Action{Type: entity.ActionSpeakOnly},
	}
}

// overlapScore counts input tokens lexically shared with the label.
// Containment runs both ways: "불고기" is found inside "불고기버거", and a
// one-word utterance "불고기버거하나" still reaches the "불고기버거" label.
func overlapScore(tokens []string, candidate string) int {
	label := norm(candidate)
	if label == "" {
		return 0
	}
	score := 0
	for _, token := range tokens {
		if strings.Contains(label, token) || strings.Contains(token, label) {
			score++
		}
	}
	return score
}

// norm is the shared normalization policy: trim, Unicode lower-case.
func norm(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func dedupe(list []string) []string {
	seen := make(map[string]struct{}, len(list))
	var out []string
	for _, v := range list {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
