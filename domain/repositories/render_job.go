package repositories

import (
	"context"

	"github.com/nayottama/wicara/domain/entities"
)

// RenderJobRepository defines data access methods for render jobs.
type RenderJobRepository interface {
	Create(ctx context.Context, job *entities.RenderJob) error
	Update(ctx context.Context, job *entities.RenderJob) error
	GetByID(ctx context.Context, id string) (*entities.RenderJob, error)
}
