package usecase

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/nayottama/wicara/domain/entities"
	"github.com/nayottama/wicara/domain/repositories"
)

// ProgressNotifier receives render-job progress events for interested
// observers (the websocket hub). The pipeline itself stays synchronous; the
// notifier only watches.
type ProgressNotifier interface {
	NotifyProgress(jobID string, done, total int)
	NotifyStatus(jobID string, status entities.RenderJobStatus)
}

// StoreFactory builds the audio store for one generation run. The folder
// layout depends on the prompt and voice, so a fresh store is created per
// request.
type StoreFactory func(prompt, voiceName string) (repositories.AudioStore, error)

// RenderJobService runs the full prompt-to-narrated-timeline flow and tracks
// it as a persisted render job.
type RenderJobService struct {
	generator repositories.TimelineGenerator
	narration *NarrationService
	jobs      repositories.RenderJobRepository
	stores    StoreFactory
	notifier  ProgressNotifier
	logger    *zap.Logger
}

// NewRenderJobService wires the generation flow. notifier may be nil.
func NewRenderJobService(
	generator repositories.TimelineGenerator,
	narration *NarrationService,
	jobs repositories.RenderJobRepository,
	stores StoreFactory,
	notifier ProgressNotifier,
	logger *zap.Logger,
) *RenderJobService {
	return &RenderJobService{
		generator: generator,
		narration: narration,
		jobs:      jobs,
		stores:    stores,
		notifier:  notifier,
		logger:    logger,
	}
}

// Generate produces and narrates a timeline for the prompt, recording
// progress on a render job. The job is returned alongside the timeline; on
// failure the job carries the error and a nil timeline comes back.
func (s *RenderJobService) Generate(ctx context.Context, prompt string, opts repositories.VoiceOptions, voiceName string) (*entities.Timeline, *entities.RenderJob, error) {
	job := entities.NewRenderJob(prompt, opts.VoiceID)
	if err := s.jobs.Create(ctx, job); err != nil {
		return nil, nil, fmt.Errorf("failed to create render job: %w", err)
	}

	tl, err := s.generator.GenerateTimeline(ctx, prompt)
	if err != nil {
		s.fail(ctx, job, fmt.Errorf("timeline generation: %w", err))
		return nil, job, err
	}

	job.TimelineID = tl.ID
	job.SlidesTotal = len(tl.Slides)
	s.setStatus(ctx, job, entities.RenderJobStatusNarrating)

	store, err := s.stores(prompt, voiceName)
	if err != nil {
		s.fail(ctx, job, err)
		return nil, job, err
	}

	err = s.narration.AnnotateTimeline(ctx, tl, store, opts, func(done, total int) {
		job.SlidesDone = done
		job.UpdatedAt = time.Now()
		if updateErr := s.jobs.Update(ctx, job); updateErr != nil {
			s.logger.Warn("Failed to persist job progress", zap.Error(updateErr))
		}
		if s.notifier != nil {
			s.notifier.NotifyProgress(job.ID, done, total)
		}
	})
	if err != nil {
		s.fail(ctx, job, err)
		return nil, job, err
	}

	s.setStatus(ctx, job, entities.RenderJobStatusDone)
	s.logger.Info("Render job completed",
		zap.String("jobID", job.ID),
		zap.Int("slides", job.SlidesTotal))

	return tl, job, nil
}

// GetJob returns a job by id.
func (s *RenderJobService) GetJob(ctx context.Context, id string) (*entities.RenderJob, error) {
	return s.jobs.GetByID(ctx, id)
}

func (s *RenderJobService) setStatus(ctx context.Context, job *entities.RenderJob, status entities.RenderJobStatus) {
	job.Status = status
	job.UpdatedAt = time.Now()
	if err := s.jobs.Update(ctx, job); err != nil {
		s.logger.Warn("Failed to persist job status", zap.Error(err))
	}
	if s.notifier != nil {
		s.notifier.NotifyStatus(job.ID, status)
	}
}

func (s *RenderJobService) fail(ctx context.Context, job *entities.RenderJob, err error) {
	s.logger.Error("Render job failed",
		zap.String("jobID", job.ID),
		zap.Error(err))
	job.MarkFailed(err)
	if updateErr := s.jobs.Update(ctx, job); updateErr != nil {
		s.logger.Warn("Failed to persist job failure", zap.Error(updateErr))
	}
	if s.notifier != nil {
		s.notifier.NotifyStatus(job.ID, entities.RenderJobStatusFailed)
	}
}
