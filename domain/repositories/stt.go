package repositories

import (
	"context"

	"github.com/nayottama/wicara/domain/entities"
)

// Transcriber abstracts speech recognition with word-level timing, used to
// produce word-synced captions for long-form narration.
type Transcriber interface {
	// TranscribeWords takes a complete WAV container and returns the spoken
	// words in order with their start/end offsets in milliseconds.
	TranscribeWords(ctx context.Context, wavData []byte) ([]entities.CaptionToken, error)
}
