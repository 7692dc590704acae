package wav

import (
	"encoding/binary"
	"errors"
	"math"
	"testing"
)

func TestWriteHeaderLayout(t *testing.T) {
	h := WriteHeader(2000, 22050, 1, 16)

	if len(h) != HeaderSize {
		t.Fatalf("Expected %d header bytes, got %d", HeaderSize, len(h))
	}
	if string(h[0:4]) != "RIFF" || string(h[8:12]) != "WAVE" {
		t.Error("Missing RIFF/WAVE markers")
	}
	if got := binary.LittleEndian.Uint32(h[4:8]); got != 36+2000 {
		t.Errorf("Expected riff size %d, got %d", 36+2000, got)
	}
	if got := binary.LittleEndian.Uint16(h[20:22]); got != 1 {
		t.Errorf("Expected PCM format code 1, got %d", got)
	}
	if got := binary.LittleEndian.Uint32(h[28:32]); got != 22050*2 {
		t.Errorf("Expected byte rate %d, got %d", 22050*2, got)
	}
	if got := binary.LittleEndian.Uint16(h[32:34]); got != 2 {
		t.Errorf("Expected block align 2, got %d", got)
	}
	if got := binary.LittleEndian.Uint32(h[40:44]); got != 2000 {
		t.Errorf("Expected data size 2000, got %d", got)
	}
}

func TestParseHeaderRoundTrip(t *testing.T) {
	payload := make([]byte, 44100*2) // one second, mono 16-bit at 44.1kHz
	container := Encode(payload, 44100, 1, 16)

	h, err := ParseHeader(container)
	if err != nil {
		t.Fatalf("Failed to parse header: %v", err)
	}
	if h.SampleRate != 44100 || h.ChannelCount != 1 || h.BitsPerSample != 16 {
		t.Errorf("Unexpected format: %+v", h)
	}
	if h.DataByteLength != len(payload) {
		t.Errorf("Expected data length %d, got %d", len(payload), h.DataByteLength)
	}
}

func TestParseHeaderSkipsMetadataChunks(t *testing.T) {
	// Container with a LIST chunk between fmt and data, as written by some
	// external encoders.
	payload := []byte{1, 2, 3, 4}
	list := []byte("INFOxyz") // 7 bytes, odd size exercises word alignment

	base := Encode(payload, 16000, 1, 16)
	container := make([]byte, 0, len(base)+8+len(list)+1)
	container = append(container, base[:36]...)
	container = append(container, []byte("LIST")...)
	container = binary.LittleEndian.AppendUint32(container, uint32(len(list)))
	container = append(container, list...)
	container = append(container, 0) // pad byte
	container = append(container, base[36:]...)
	binary.LittleEndian.PutUint32(container[4:8], uint32(len(container)-8))

	h, err := ParseHeader(container)
	if err != nil {
		t.Fatalf("Failed to parse header with LIST chunk: %v", err)
	}
	if h.SampleRate != 16000 || h.DataByteLength != len(payload) {
		t.Errorf("Unexpected header: %+v", h)
	}

	_, data, err := Decode(container)
	if err != nil {
		t.Fatalf("Failed to decode: %v", err)
	}
	if len(data) != len(payload) || data[0] != 1 || data[3] != 4 {
		t.Errorf("Unexpected payload: %v", data)
	}
}

func TestParseHeaderErrors(t *testing.T) {
	cases := []struct {
		name string
		data []byte
	}{
		{"truncated", make([]byte, 10)},
		{"no riff marker", make([]byte, HeaderSize)},
		{"no data chunk", append([]byte("RIFF\x24\x00\x00\x00WAVE"), make([]byte, 32)...)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseHeader(tc.data)
			if err == nil {
				t.Fatal("Expected error")
			}
			var formatErr *FormatError
			if !errors.As(err, &formatErr) {
				t.Errorf("Expected FormatError, got %T", err)
			}
		})
	}
}

func TestComputeDurationSeconds(t *testing.T) {
	if got := ComputeDurationSeconds(44100*2, 44100, 1, 16); got != 1.0 {
		t.Errorf("Expected 1s, got %f", got)
	}
	if got := ComputeDurationSeconds(22050*2*2, 22050, 2, 16); got != 1.0 {
		t.Errorf("Expected 1s stereo, got %f", got)
	}

	// Malformed divisors are silent input, not an error.
	if got := ComputeDurationSeconds(1000, 0, 1, 16); got != 0 {
		t.Errorf("Expected 0 for zero sample rate, got %f", got)
	}
	if got := ComputeDurationSeconds(1000, 44100, 0, 16); got != 0 {
		t.Errorf("Expected 0 for zero channels, got %f", got)
	}
	if got := ComputeDurationSeconds(1000, 44100, 1, 0); got != 0 {
		t.Errorf("Expected 0 for zero bit depth, got %f", got)
	}
}

func TestDurationRoundTrip(t *testing.T) {
	sampleCounts := []int{1, 441, 22050, 44100, 99999}
	for _, n := range sampleCounts {
		payload := make([]byte, n*2)
		container := Encode(payload, 22050, 1, 16)

		h, err := ParseHeader(container)
		if err != nil {
			t.Fatalf("Failed to parse: %v", err)
		}
		got := ComputeDurationSeconds(h.DataByteLength, h.SampleRate, h.ChannelCount, h.BitsPerSample)
		want := float64(n) / 22050
		if math.Abs(got-want) > 1e-9 {
			t.Errorf("Samples %d: expected %v, got %v", n, want, got)
		}
	}
}

func TestConcatWithSilenceAdditivity(t *testing.T) {
	const rate = 22050
	partA := make([]byte, rate*2)   // 1.0s mono 16-bit
	partB := make([]byte, rate)     // 0.5s
	for i := range partA {
		partA[i] = 0x7f
	}
	for i := range partB {
		partB[i] = 0x11
	}

	combined := ConcatWithSilence([]Part{
		{RawSamples: partA, PauseAfterSeconds: 0.25},
		{RawSamples: partB, PauseAfterSeconds: 0},
	}, rate, 1, 16)

	got := ComputeDurationSeconds(len(combined), rate, 1, 16)
	want := 1.0 + 0.25 + 0.5
	// floor() on the pause frame count may shave up to one sample period
	if got > want || want-got > 1.0/rate {
		t.Errorf("Expected total %v (within one sample period), got %v", want, got)
	}

	// Inserted silence must be exact zeros.
	pauseStart := len(partA)
	pauseEnd := pauseStart + int(math.Floor(0.25*rate))*2
	for i := pauseStart; i < pauseEnd; i++ {
		if combined[i] != 0 {
			t.Fatalf("Expected zero silence at byte %d, got %d", i, combined[i])
		}
	}
	// Part B's bytes follow the silence intact.
	if combined[pauseEnd] != partB[0] {
		t.Error("Part B payload misplaced after silence")
	}
}

func TestConcatWithSilenceEmptyPause(t *testing.T) {
	combined := ConcatWithSilence([]Part{
		{RawSamples: []byte{1, 2}, PauseAfterSeconds: 0},
		{RawSamples: []byte{3, 4}, PauseAfterSeconds: -1},
	}, 22050, 1, 16)

	if len(combined) != 4 {
		t.Errorf("Expected 4 bytes, got %d", len(combined))
	}
}
