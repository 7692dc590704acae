package repositories

import (
	"context"

	"github.com/nayottama/wicara/domain/entities"
)

// TimelineGenerator produces a slide timeline from a user prompt. Slides come
// back without narration or timing fields; the narration pipeline fills those.
type TimelineGenerator interface {
	GenerateTimeline(ctx context.Context, prompt string) (*entities.Timeline, error)
}
