package entities

// NarrationPart is one speakable chunk of a slide's script plus the silence
// inserted after its audio.
type NarrationPart struct {
	Text              string
	PauseAfterSeconds float64
}

// AudioBuffer holds raw decoded audio as produced by a synthesis backend.
// Samples are interleaved little-endian PCM. Immutable once produced.
type AudioBuffer struct {
	Data          []byte
	SampleRate    int
	ChannelCount  int
	BitsPerSample int
}

// DurationSeconds returns the buffer's play time. Zero-valued format
// parameters yield 0 rather than an error: an empty or malformed buffer is
// treated as silence.
func (b AudioBuffer) DurationSeconds() float64 {
	bytesPerSecond := b.SampleRate * b.ChannelCount * b.BitsPerSample / 8
	if bytesPerSecond <= 0 {
		return 0
	}
	return float64(len(b.Data)) / float64(bytesPerSecond)
}

// CombinedNarration describes the timing structure of several narration parts
// concatenated with their trailing pauses into one audio stream.
type CombinedNarration struct {
	TotalDurationSeconds float64
	// PartStartOffsetsSeconds holds, per part, the cumulative time at which
	// that part's audio begins in the combined stream.
	PartStartOffsetsSeconds []float64
	// FirstPartEndOffsetSeconds is where the first part's audio ends and its
	// pause begins.
	FirstPartEndOffsetSeconds float64
}

// PartCount returns the number of parts in the combined stream.
func (c CombinedNarration) PartCount() int {
	return len(c.PartStartOffsetsSeconds)
}

// LastPartStartOffsetSeconds returns the offset at which the final part's
// audio begins. With two or more parts this is the reveal instant.
func (c CombinedNarration) LastPartStartOffsetSeconds() float64 {
	if len(c.PartStartOffsetsSeconds) == 0 {
		return 0
	}
	return c.PartStartOffsetsSeconds[len(c.PartStartOffsetsSeconds)-1]
}
