package tts

import (
	"context"
	"encoding/binary"
	"fmt"
	"math"
	"sync"

	"go.uber.org/zap"

	"github.com/nayottama/wicara/domain/entities"
	"github.com/nayottama/wicara/domain/repositories"
	"github.com/nayottama/wicara/internal/narration"
	"github.com/nayottama/wicara/internal/voices"
)

const localBackend = "local"

// Model abstracts the in-process neural TTS runtime so tests can inject a
// fake. Infer returns float32 samples in [-1, 1] and the model's sample rate.
//
// lengthScale stretches phoneme durations: 1.0 is the voice's native tempo,
// values below 1 speak faster.
type Model interface {
	Infer(text string, voiceID string, lengthScale float64) (samples []float32, sampleRate int, err error)
}

// ModelLoader loads the model weights. It runs at most once per Local
// instance; the loaded model is reused for the process lifetime with no
// explicit teardown.
type ModelLoader func() (Model, error)

// Local synthesizes speech with an in-process neural model. Calls are
// expected to be sequential; the loaded model is shared read-only, and the
// lazy initialization is guarded so a future concurrent caller cannot load
// the weights twice.
type Local struct {
	loader  ModelLoader
	once    sync.Once
	model   Model
	loadErr error
	logger  *zap.Logger
}

var _ repositories.SpeechSynthesizer = (*Local)(nil)

// NewLocal creates the local backend. The model is not loaded until the
// first synthesis call.
func NewLocal(loader ModelLoader, logger *zap.Logger) *Local {
	return &Local{
		loader: loader,
		logger: logger,
	}
}

// SynthesizeOne renders text with the local model and returns 16-bit PCM.
func (l *Local) SynthesizeOne(ctx context.Context, text string, opts repositories.VoiceOptions) (entities.AudioBuffer, error) {
	if err := ctx.Err(); err != nil {
		return entities.AudioBuffer{}, err
	}

	l.once.Do(func() {
		l.logger.Info("Loading local TTS model")
		l.model, l.loadErr = l.loader()
		if l.loadErr == nil {
			l.logger.Info("Local TTS model loaded")
		}
	})
	if l.loadErr != nil {
		return entities.AudioBuffer{}, &SynthesisError{Backend: localBackend, Err: fmt.Errorf("model load: %w", l.loadErr)}
	}

	text = narration.SanitizeForLocalModel(text)
	if text == "" {
		return entities.AudioBuffer{}, fmt.Errorf("text cannot be empty")
	}

	voice := voices.ResolveLocal(opts.VoiceID)

	lengthScale := 1.0
	if opts.Speed > 0 {
		lengthScale = 1.0 / opts.Speed
	}

	samples, sampleRate, err := l.model.Infer(text, voice.ID, lengthScale)
	if err != nil {
		return entities.AudioBuffer{}, &SynthesisError{Backend: localBackend, Err: err}
	}

	return entities.AudioBuffer{
		Data:          samplesToPCM16(samples),
		SampleRate:    sampleRate,
		ChannelCount:  1,
		BitsPerSample: 16,
	}, nil
}

// samplesToPCM16 converts float samples to interleaved little-endian 16-bit
// PCM, clamping to [-1, 1].
func samplesToPCM16(samples []float32) []byte {
	out := make([]byte, len(samples)*2)
	for i, s := range samples {
		if s > 1 {
			s = 1
		} else if s < -1 {
			s = -1
		}
		v := int16(math.Round(float64(s) * 32767))
		binary.LittleEndian.PutUint16(out[i*2:], uint16(v))
	}
	return out
}
