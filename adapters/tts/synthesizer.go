// Package tts provides the speech synthesis backends (ElevenLabs over HTTP
// and a local neural engine) plus the shared multi-part narration assembly
// built on top of the single-utterance capability.
package tts

import (
	"context"
	"fmt"

	"github.com/nayottama/wicara/domain/entities"
	"github.com/nayottama/wicara/domain/repositories"
	"github.com/nayottama/wicara/internal/wav"
)

// PartsResult is the audio for a full multi-part narration script, combined
// in order with each part's trailing silence, plus the timing facts the
// schedule derivation needs.
type PartsResult struct {
	Data          []byte
	SampleRate    int
	ChannelCount  int
	BitsPerSample int
	Narration     entities.CombinedNarration
}

// SynthesizeParts renders each part in script order through synth and
// concatenates the audio with the scripted pauses. Parts are generated
// strictly sequentially: concatenation offsets depend on order, and the
// backends are not safe to fan out against.
func SynthesizeParts(ctx context.Context, synth repositories.SpeechSynthesizer, parts []entities.NarrationPart, opts repositories.VoiceOptions) (*PartsResult, error) {
	if len(parts) == 0 {
		return nil, fmt.Errorf("no narration parts to synthesize")
	}

	buffers := make([]entities.AudioBuffer, 0, len(parts))
	for i, part := range parts {
		buf, err := synth.SynthesizeOne(ctx, part.Text, opts)
		if err != nil {
			return nil, fmt.Errorf("part %d: %w", i, err)
		}
		buffers = append(buffers, buf)
	}

	// All buffers share one format: same backend, same voice, one invocation.
	format := buffers[0]

	offsets := make([]float64, len(parts))
	var cursor float64
	var firstPartEnd float64
	wavParts := make([]wav.Part, len(parts))
	for i, buf := range buffers {
		offsets[i] = cursor
		dur := buf.DurationSeconds()
		if i == 0 {
			firstPartEnd = dur
		}
		cursor += dur + parts[i].PauseAfterSeconds
		wavParts[i] = wav.Part{RawSamples: buf.Data, PauseAfterSeconds: parts[i].PauseAfterSeconds}
	}

	combined := wav.ConcatWithSilence(wavParts, format.SampleRate, format.ChannelCount, format.BitsPerSample)

	return &PartsResult{
		Data:          combined,
		SampleRate:    format.SampleRate,
		ChannelCount:  format.ChannelCount,
		BitsPerSample: format.BitsPerSample,
		Narration: entities.CombinedNarration{
			TotalDurationSeconds:      wav.ComputeDurationSeconds(len(combined), format.SampleRate, format.ChannelCount, format.BitsPerSample),
			PartStartOffsetsSeconds:   offsets,
			FirstPartEndOffsetSeconds: firstPartEnd,
		},
	}, nil
}
