package repositories

import (
	"context"

	"github.com/nayottama/wicara/domain/entities"
)

// VoiceOptions selects the voice and tempo for a synthesis call.
//
// Speed is a multiplier in [0.5, 2.0]. Out-of-range values are passed through
// unclamped: the remote backend rejects them with its own validation and the
// local backend applies them best-effort.
type VoiceOptions struct {
	VoiceID string
	Speed   float64
}

// SpeechSynthesizer abstracts a text-to-speech backend. Implementations only
// provide single-utterance synthesis; multi-part narration is assembled on top
// of this interface by tts.SynthesizeParts.
type SpeechSynthesizer interface {
	// SynthesizeOne renders one piece of text as raw PCM audio. An unknown
	// voice id is not an error; backends fall back to their default voice.
	SynthesizeOne(ctx context.Context, text string, opts VoiceOptions) (entities.AudioBuffer, error)
}
