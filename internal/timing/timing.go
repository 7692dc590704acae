// Package timing derives presentation-level schedule values from measured
// narration audio: how long a slide stays on screen and when quiz answers
// reveal. All rounding policy lives here, never in the audio codec.
package timing

import (
	"math"

	"github.com/nayottama/wicara/domain/entities"
)

// DefaultBufferSeconds is the visual settle time added on top of the audio
// before a slide advances.
const DefaultBufferSeconds = 1.5

// SlideDuration returns the scheduled duration for a narrative slide:
// audio length plus the default buffer, rounded up to the nearest half
// second. Rounding up guarantees the schedule never truncates the audio.
func SlideDuration(audioSeconds float64) float64 {
	return SlideDurationBuffered(audioSeconds, DefaultBufferSeconds)
}

// SlideDurationBuffered is SlideDuration with an explicit buffer.
func SlideDurationBuffered(audioSeconds, bufferSeconds float64) float64 {
	return math.Ceil((audioSeconds+bufferSeconds)*2) / 2
}

// QuizSlideDuration returns the scheduled duration for a quiz slide. It
// rounds to the nearest half second where SlideDuration rounds up; the two
// policies are kept distinct on purpose, since unifying on round could shave
// up to a quarter second off the end of quiz audio.
// TODO: confirm with product whether quiz slides should round up too.
func QuizSlideDuration(audioSeconds float64) float64 {
	return math.Round((audioSeconds+DefaultBufferSeconds)*2) / 2
}

// RevealTime returns the offset at which the answer part begins, or nil when
// the narration has fewer than two parts. nil means "no reveal point"; it is
// never conflated with a real offset of zero.
func RevealTime(n entities.CombinedNarration) *float64 {
	if n.PartCount() < 2 {
		return nil
	}
	v := n.LastPartStartOffsetSeconds()
	return &v
}

// QuestionEnd returns the offset at which the question reading finishes and
// the thinking pause begins. Only meaningful with two or more parts.
func QuestionEnd(n entities.CombinedNarration) *float64 {
	if n.PartCount() < 2 {
		return nil
	}
	v := n.FirstPartEndOffsetSeconds
	return &v
}
