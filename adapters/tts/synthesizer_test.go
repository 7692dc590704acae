package tts

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/nayottama/wicara/domain/entities"
	"github.com/nayottama/wicara/domain/repositories"
)

const testSampleRate = 22050

// fixedDurationSynth returns buffers whose lengths are taken, in order, from
// its duration list.
type fixedDurationSynth struct {
	durations []float64
	calls     int
	failAt    int // 1-based call index to fail on; 0 disables
}

func (f *fixedDurationSynth) SynthesizeOne(ctx context.Context, text string, opts repositories.VoiceOptions) (entities.AudioBuffer, error) {
	f.calls++
	if f.failAt != 0 && f.calls == f.failAt {
		return entities.AudioBuffer{}, &SynthesisError{Backend: "fake", Err: errors.New("boom")}
	}
	dur := f.durations[f.calls-1]
	return entities.AudioBuffer{
		Data:          make([]byte, int(dur*testSampleRate)*2),
		SampleRate:    testSampleRate,
		ChannelCount:  1,
		BitsPerSample: 16,
	}, nil
}

func TestSynthesizePartsRevealPlacement(t *testing.T) {
	synth := &fixedDurationSynth{durations: []float64{3.0, 1.5}}
	parts := []entities.NarrationPart{
		{Text: "question", PauseAfterSeconds: 4},
		{Text: "answer", PauseAfterSeconds: 0},
	}

	res, err := SynthesizeParts(context.Background(), synth, parts, repositories.VoiceOptions{})
	if err != nil {
		t.Fatalf("Failed to synthesize parts: %v", err)
	}

	if res.Narration.PartCount() != 2 {
		t.Fatalf("Expected 2 parts, got %d", res.Narration.PartCount())
	}
	if got := res.Narration.LastPartStartOffsetSeconds(); got != 3.0+4 {
		t.Errorf("Expected reveal offset 7, got %v", got)
	}
	if got := res.Narration.FirstPartEndOffsetSeconds; got != 3.0 {
		t.Errorf("Expected question end at 3, got %v", got)
	}
	if math.Abs(res.Narration.TotalDurationSeconds-(3.0+4+1.5)) > 1.0/testSampleRate {
		t.Errorf("Expected total 8.5, got %v", res.Narration.TotalDurationSeconds)
	}
	if res.SampleRate != testSampleRate || res.ChannelCount != 1 || res.BitsPerSample != 16 {
		t.Errorf("Unexpected output format: %+v", res)
	}
}

func TestSynthesizePartsSequentialOrder(t *testing.T) {
	synth := &fixedDurationSynth{durations: []float64{1, 1, 1}}
	parts := []entities.NarrationPart{
		{Text: "a", PauseAfterSeconds: 0.5},
		{Text: "b", PauseAfterSeconds: 0.5},
		{Text: "c", PauseAfterSeconds: 0},
	}

	res, err := SynthesizeParts(context.Background(), synth, parts, repositories.VoiceOptions{})
	if err != nil {
		t.Fatalf("Failed to synthesize parts: %v", err)
	}

	want := []float64{0, 1.5, 3.0}
	for i, offset := range res.Narration.PartStartOffsetsSeconds {
		if offset != want[i] {
			t.Errorf("Part %d: expected offset %v, got %v", i, want[i], offset)
		}
	}
}

func TestSynthesizePartsPropagatesFailure(t *testing.T) {
	synth := &fixedDurationSynth{durations: []float64{1, 1}, failAt: 2}
	parts := []entities.NarrationPart{
		{Text: "a", PauseAfterSeconds: 1},
		{Text: "b", PauseAfterSeconds: 0},
	}

	_, err := SynthesizeParts(context.Background(), synth, parts, repositories.VoiceOptions{})
	if err == nil {
		t.Fatal("Expected error from failing part")
	}
	var synthErr *SynthesisError
	if !errors.As(err, &synthErr) {
		t.Errorf("Expected SynthesisError, got %T", err)
	}
}

func TestSynthesizePartsEmpty(t *testing.T) {
	_, err := SynthesizeParts(context.Background(), &fixedDurationSynth{}, nil, repositories.VoiceOptions{})
	if err == nil {
		t.Error("Expected error for empty part list")
	}
}
