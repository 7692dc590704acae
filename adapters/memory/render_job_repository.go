// Package memory holds in-process repository implementations used when no
// database is configured, and by tests.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/nayottama/wicara/domain/entities"
	"github.com/nayottama/wicara/domain/repositories"
)

// RenderJobRepository keeps render jobs in a map. Safe for concurrent use.
type RenderJobRepository struct {
	mu   sync.RWMutex
	jobs map[string]entities.RenderJob
}

var _ repositories.RenderJobRepository = (*RenderJobRepository)(nil)

// NewRenderJobRepository creates an empty in-memory repository.
func NewRenderJobRepository() *RenderJobRepository {
	return &RenderJobRepository{
		jobs: make(map[string]entities.RenderJob),
	}
}

// Create stores a copy of the job.
func (r *RenderJobRepository) Create(ctx context.Context, job *entities.RenderJob) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.jobs[job.ID]; exists {
		return fmt.Errorf("render job %s already exists", job.ID)
	}
	r.jobs[job.ID] = *job
	return nil
}

// Update replaces the stored job.
func (r *RenderJobRepository) Update(ctx context.Context, job *entities.RenderJob) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.jobs[job.ID]; !exists {
		return fmt.Errorf("render job %s not found", job.ID)
	}
	r.jobs[job.ID] = *job
	return nil
}

// GetByID returns a copy of the stored job.
func (r *RenderJobRepository) GetByID(ctx context.Context, id string) (*entities.RenderJob, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	job, exists := r.jobs[id]
	if !exists {
		return nil, fmt.Errorf("render job %s not found", id)
	}
	return &job, nil
}
