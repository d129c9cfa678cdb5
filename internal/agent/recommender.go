package agent

import (
	"context"

	"github.com/graduation-team-project-4nd/KiMate-AI/internal/entity"
	"github.com/graduation-team-project-4nd/KiMate-AI/internal/pkg/logger"
)

// Oracle is the reasoning backend that performs the actual matching
// judgment. internal/llm implements it; tests stub it.
type Oracle interface {
	Analyze(ctx context.Context, dc entity.DecisionContext) (*entity.ActionResult, error)
}

// Recommender produces exactly one action for a decision context: oracle
// first, deterministic fallback on any oracle problem. It holds only
// read-only dependencies and is safe for concurrent use.
type Recommender struct {
	oracle Oracle
	log    logger.ILogger
	mock   bool
}

func NewRecommender(oracle Oracle, log logger.ILogger, mock bool) *Recommender {
	return &Recommender{
		oracle: oracle,
		log:    log,
		mock:   mock,
	}
}

// Recommend never fails: every oracle failure mode (unreachable, timed out,
// disabled, unusable output) resolves to the fallback heuristic, so the
// caller always gets usable guidance.
func (r *Recommender) Recommend(ctx context.Context, dc entity.DecisionContext) *entity.ActionResult {
	if r.mock || r.oracle == nil {
		return Fallback(dc)
	}

	result, err := r.oracle.Analyze(ctx, dc)
	if err != nil {
		r.log.Warn("agent", "oracle unavailable, using fallback", map[string]interface{}{
			"error": err.Error(),
		})
		return Fallback(dc)
	}

	// The llm client validates before returning, but the Oracle seam is
	// open to other implementations; re-check so an invalid result can
	// never escape the engine.
	if err := result.Validate(dc.Candidates); err != nil {
		r.log.Warn("agent", "oracle result rejected, using fallback", map[string]interface{}{
			"error": err.Error(),
		})
		return Fallback(dc)
	}
	return result
}
