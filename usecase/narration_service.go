package usecase

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/nayottama/wicara/adapters/tts"
	"github.com/nayottama/wicara/domain/entities"
	"github.com/nayottama/wicara/domain/repositories"
	"github.com/nayottama/wicara/internal/narration"
	"github.com/nayottama/wicara/internal/timing"
	"github.com/nayottama/wicara/internal/wav"
)

// ProgressFunc is notified after each slide finishes. done counts annotated
// and skipped slides alike.
type ProgressFunc func(done, total int)

// NarrationService drives the per-slide narration pipeline for a whole
// timeline: script the slide, synthesize, measure, derive timing, persist,
// and write the results back onto the slide.
type NarrationService struct {
	synth       repositories.SpeechSynthesizer
	transcriber repositories.Transcriber
	logger      *zap.Logger
}

// NewNarrationService creates the service. transcriber may be nil when
// word-level captions are not configured.
func NewNarrationService(synth repositories.SpeechSynthesizer, transcriber repositories.Transcriber, logger *zap.Logger) *NarrationService {
	return &NarrationService{
		synth:       synth,
		transcriber: transcriber,
		logger:      logger,
	}
}

// AnnotateTimeline narrates every slide in order, writing audio URLs and
// timing fields in place. Slides with nothing to narrate are left untouched.
//
// Slides run strictly sequentially: the remote backend is rate limited and
// the local model must not run concurrent inference. The first failure aborts
// the whole timeline — a partially narrated timeline renders as a visibly
// broken video, so the error propagates instead of being skipped. Slides
// written before the failure stay written; none are written after it.
func (s *NarrationService) AnnotateTimeline(ctx context.Context, tl *entities.Timeline, store repositories.AudioStore, opts repositories.VoiceOptions, progress ProgressFunc) error {
	total := len(tl.Slides)
	for i, slide := range tl.Slides {
		if err := s.annotateSlide(ctx, slide, i, store, opts); err != nil {
			s.logger.Error("Slide narration failed",
				zap.Int("slideIndex", i),
				zap.String("kind", string(slide.Kind)),
				zap.Error(err))
			return fmt.Errorf("slide %d: %w", i, err)
		}
		if progress != nil {
			progress(i+1, total)
		}
	}
	return nil
}

func (s *NarrationService) annotateSlide(ctx context.Context, slide *entities.Slide, index int, store repositories.AudioStore, opts repositories.VoiceOptions) error {
	parts := narration.PartsForSlide(slide)
	if len(parts) == 0 {
		// Nothing to narrate is a valid outcome, not an error.
		s.logger.Debug("Skipping slide with no narratable text",
			zap.Int("slideIndex", index),
			zap.String("kind", string(slide.Kind)))
		return nil
	}

	res, err := tts.SynthesizeParts(ctx, s.synth, parts, opts)
	if err != nil {
		return err
	}

	container := wav.Encode(res.Data, res.SampleRate, res.ChannelCount, res.BitsPerSample)
	url, err := store.Save(container, index)
	if err != nil {
		return fmt.Errorf("failed to store narration: %w", err)
	}

	audioSeconds := res.Narration.TotalDurationSeconds
	slide.NarrationURL = url
	if slide.IsQuiz() {
		slide.DurationInSeconds = timing.QuizSlideDuration(audioSeconds)
		slide.RevealTimeSeconds = timing.RevealTime(res.Narration)
		slide.QuestionEndSeconds = timing.QuestionEnd(res.Narration)
	} else {
		slide.DurationInSeconds = timing.SlideDuration(audioSeconds)
	}

	if slide.Kind == entities.SlideKindKidsContent && s.transcriber != nil {
		tokens, err := s.transcriber.TranscribeWords(ctx, container)
		if err != nil {
			// Captions enrich the slide but the narration itself is intact;
			// a transcription failure is not worth losing the whole timeline.
			s.logger.Warn("Caption transcription failed",
				zap.Int("slideIndex", index),
				zap.Error(err))
		} else {
			slide.CaptionTokens = tokens
		}
	}

	s.logger.Info("Slide narrated",
		zap.Int("slideIndex", index),
		zap.String("kind", string(slide.Kind)),
		zap.Float64("audioSeconds", audioSeconds),
		zap.Float64("durationInSeconds", slide.DurationInSeconds))

	return nil
}
