package entities

import (
	"time"

	"github.com/google/uuid"
)

// RenderJobStatus represents the lifecycle state of a render job.
type RenderJobStatus string

const (
	RenderJobStatusQueued    RenderJobStatus = "queued"
	RenderJobStatusNarrating RenderJobStatus = "narrating"
	RenderJobStatusDone      RenderJobStatus = "done"
	RenderJobStatusFailed    RenderJobStatus = "failed"
)

// RenderJob tracks one prompt-to-video generation request.
type RenderJob struct {
	ID          string          `json:"id" bson:"_id"`
	Prompt      string          `json:"prompt" bson:"prompt"`
	VoiceID     string          `json:"voiceId" bson:"voice_id"`
	Status      RenderJobStatus `json:"status" bson:"status"`
	SlidesTotal int             `json:"slidesTotal" bson:"slides_total"`
	SlidesDone  int             `json:"slidesDone" bson:"slides_done"`
	TimelineID  string          `json:"timelineId,omitempty" bson:"timeline_id,omitempty"`
	Error       string          `json:"error,omitempty" bson:"error,omitempty"`
	CreatedAt   time.Time       `json:"createdAt" bson:"created_at"`
	UpdatedAt   time.Time       `json:"updatedAt" bson:"updated_at"`
}

// NewRenderJob creates a queued job for a prompt.
func NewRenderJob(prompt, voiceID string) *RenderJob {
	now := time.Now()
	return &RenderJob{
		ID:        uuid.NewString(),
		Prompt:    prompt,
		VoiceID:   voiceID,
		Status:    RenderJobStatusQueued,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// MarkFailed records a terminal failure on the job.
func (j *RenderJob) MarkFailed(err error) {
	j.Status = RenderJobStatusFailed
	if err != nil {
		j.Error = err.Error()
	}
	j.UpdatedAt = time.Now()
}
