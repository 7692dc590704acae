package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/nayottama/wicara/domain/entities"
	"github.com/nayottama/wicara/domain/repositories"
)

const renderJobCollection = "render_jobs"

// RenderJobRepository persists render jobs in MongoDB.
type RenderJobRepository struct {
	collection *mongo.Collection
}

var _ repositories.RenderJobRepository = (*RenderJobRepository)(nil)

// NewRenderJobRepository creates the repository on the client's database.
func NewRenderJobRepository(client *Client) *RenderJobRepository {
	return &RenderJobRepository{
		collection: client.database.Collection(renderJobCollection),
	}
}

// Create inserts a new render job.
func (r *RenderJobRepository) Create(ctx context.Context, job *entities.RenderJob) error {
	if _, err := r.collection.InsertOne(ctx, job); err != nil {
		return fmt.Errorf("failed to insert render job: %w", err)
	}
	return nil
}

// Update replaces the stored job with the given state.
func (r *RenderJobRepository) Update(ctx context.Context, job *entities.RenderJob) error {
	result, err := r.collection.ReplaceOne(ctx, bson.M{"_id": job.ID}, job)
	if err != nil {
		return fmt.Errorf("failed to update render job: %w", err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("render job %s not found", job.ID)
	}
	return nil
}

// GetByID fetches one job.
func (r *RenderJobRepository) GetByID(ctx context.Context, id string) (*entities.RenderJob, error) {
	var job entities.RenderJob
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&job)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("render job %s not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch render job: %w", err)
	}
	return &job, nil
}
