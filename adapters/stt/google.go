// Package stt adapts Google Cloud Speech-to-Text as the caption timing
// collaborator: it turns finished narration audio into word-level tokens with
// millisecond offsets for on-screen caption syncing.
package stt

import (
	"context"
	"fmt"

	speech "cloud.google.com/go/speech/apiv1"
	"cloud.google.com/go/speech/apiv1/speechpb"
	"go.uber.org/zap"

	"github.com/nayottama/wicara/domain/entities"
	"github.com/nayottama/wicara/domain/repositories"
	"github.com/nayottama/wicara/internal/wav"
)

// GoogleTranscriber implements word-level transcription via Google Cloud
// Speech. Credentials come from the usual GOOGLE_APPLICATION_CREDENTIALS
// environment.
type GoogleTranscriber struct {
	languageCode string
	logger       *zap.Logger
}

var _ repositories.Transcriber = (*GoogleTranscriber)(nil)

// NewGoogleTranscriber creates a transcriber for the given language
// (defaults to en-US).
func NewGoogleTranscriber(languageCode string, logger *zap.Logger) *GoogleTranscriber {
	if languageCode == "" {
		languageCode = "en-US"
	}
	return &GoogleTranscriber{
		languageCode: languageCode,
		logger:       logger,
	}
}

// TranscribeWords recognizes the WAV container's speech and returns the
// spoken words in order with start/end offsets. The tokens are stored on the
// slide verbatim; no further derivation happens here.
func (g *GoogleTranscriber) TranscribeWords(ctx context.Context, wavData []byte) ([]entities.CaptionToken, error) {
	header, pcm, err := wav.Decode(wavData)
	if err != nil {
		return nil, fmt.Errorf("failed to decode narration audio: %w", err)
	}

	client, err := speech.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create speech client: %w", err)
	}
	defer client.Close()

	resp, err := client.Recognize(ctx, &speechpb.RecognizeRequest{
		Config: &speechpb.RecognitionConfig{
			Encoding:              speechpb.RecognitionConfig_LINEAR16,
			SampleRateHertz:       int32(header.SampleRate),
			AudioChannelCount:     int32(header.ChannelCount),
			LanguageCode:          g.languageCode,
			EnableWordTimeOffsets: true,
		},
		Audio: &speechpb.RecognitionAudio{
			AudioSource: &speechpb.RecognitionAudio_Content{Content: pcm},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to recognize speech: %w", err)
	}

	var tokens []entities.CaptionToken
	for _, result := range resp.Results {
		if len(result.Alternatives) == 0 {
			continue
		}
		for _, word := range result.Alternatives[0].Words {
			tokens = append(tokens, entities.CaptionToken{
				Token:   word.Word,
				StartMs: word.StartTime.AsDuration().Milliseconds(),
				EndMs:   word.EndTime.AsDuration().Milliseconds(),
			})
		}
	}

	g.logger.Info("Transcribed narration for captions",
		zap.Int("tokens", len(tokens)),
		zap.Int("sampleRate", header.SampleRate))

	return tokens, nil
}
