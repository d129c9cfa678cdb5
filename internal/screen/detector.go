package screen

import (
	"context"
	"strings"

	"github.com/graduation-team-project-4nd/KiMate-AI/internal/agent"
	"github.com/graduation-team-project-4nd/KiMate-AI/internal/entity"
)

// Detector decides whether the visible screen changed between two OCR
// snapshots and, on change, re-runs the recommender against the new screen.
type Detector struct {
	recommender *agent.Recommender
	threshold   float64
}

func NewDetector(recommender *agent.Recommender, threshold float64) *Detector {
	return &Detector{
		recommender: recommender,
		threshold:   threshold,
	}
}

// Detect compares the snapshots and attaches a fresh analysis when the
// screen changed, using the current snapshot as the visible candidates.
// The recommender never errors, so detection itself cannot fail.
func (d *Detector) Detect(ctx context.Context, previous, current []string, dc entity.DecisionContext) entity.ScreenDetectResult {
	similarity := JaccardSimilarity(previous, current)
	result := entity.ScreenDetectResult{
		IsChanged:  similarity < d.threshold,
		Similarity: similarity,
	}

	if result.IsChanged {
		dc.Candidates = current
		result.Analysis = d.recommender.Recommend(ctx, dc)
	}
	return result
}

// JaccardSimilarity is |A ∩ B| / |A ∪ B| over normalized fragment sets.
// Two blank screens are the same screen (1.0); a screen where all content
// appeared or disappeared is a different one (0.0).
func JaccardSimilarity(previous, current []string) float64 {
	prevSet := fragmentSet(previous)
	currSet := fragmentSet(current)

	if len(prevSet) == 0 && len(currSet) == 0 {
		return 1.0
	}

	intersection := 0
	for fragment := range prevSet {
		if _, ok := currSet[fragment]; ok {
			intersection++
		}
	}
	union := len(prevSet) + len(currSet) - intersection
	if union == 0 {
		return 0.0
	}
	return float64(intersection) / float64(union)
}

// fragmentSet dedupes OCR fragments after normalization (trim, Unicode
// lower-case); blank fragments carry no information and are dropped.
func fragmentSet(texts []string) map[string]struct{} {
	set := make(map[string]struct{}, len(texts))
	for _, text := range texts {
		normalized := strings.ToLower(strings.TrimSpace(text))
		if normalized == "" {
			continue
		}
		set[normalized] = struct{}{}
	}
	return set
}
