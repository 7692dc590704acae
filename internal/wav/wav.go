// Package wav reads and writes the minimal uncompressed RIFF/WAVE container
// used for narration audio: a 44-byte header followed by interleaved
// little-endian PCM samples.
package wav

import (
	"encoding/binary"
	"fmt"
)

// HeaderSize is the fixed size of the canonical header this package writes.
const HeaderSize = 44

const pcmFormatCode = 1

// Header holds the format parameters of a parsed container.
type Header struct {
	SampleRate     int
	ChannelCount   int
	BitsPerSample  int
	DataByteLength int
}

// FormatError reports a malformed or truncated container. It is fatal for the
// audio buffer it was parsed from; callers must not retry.
type FormatError struct {
	Reason string
}

func (e *FormatError) Error() string {
	return "wav: " + e.Reason
}

// ParseHeader decodes the container header from data. The fmt and data chunks
// are located by scanning chunk-by-chunk, so containers with extra metadata
// chunks (LIST, fact, ...) written by other tools parse correctly.
func ParseHeader(data []byte) (Header, error) {
	if len(data) < HeaderSize {
		return Header{}, &FormatError{Reason: fmt.Sprintf("container too short: %d bytes", len(data))}
	}
	if string(data[0:4]) != "RIFF" {
		return Header{}, &FormatError{Reason: "missing RIFF marker"}
	}
	if string(data[8:12]) != "WAVE" {
		return Header{}, &FormatError{Reason: "missing WAVE marker"}
	}

	var h Header
	sawFmt := false
	sawData := false

	offset := 12
	for offset+8 <= len(data) {
		chunkID := string(data[offset : offset+4])
		chunkSize := int(binary.LittleEndian.Uint32(data[offset+4 : offset+8]))
		body := offset + 8

		switch chunkID {
		case "fmt ":
			if body+16 > len(data) {
				return Header{}, &FormatError{Reason: "truncated fmt chunk"}
			}
			h.ChannelCount = int(binary.LittleEndian.Uint16(data[body+2 : body+4]))
			h.SampleRate = int(binary.LittleEndian.Uint32(data[body+4 : body+8]))
			h.BitsPerSample = int(binary.LittleEndian.Uint16(data[body+14 : body+16]))
			sawFmt = true
		case "data":
			h.DataByteLength = chunkSize
			if remaining := len(data) - body; chunkSize > remaining {
				h.DataByteLength = remaining
			}
			sawData = true
		}
		if sawFmt && sawData {
			return h, nil
		}

		// RIFF chunks are word-aligned; odd-sized chunks carry a pad byte.
		if chunkSize%2 == 1 {
			chunkSize++
		}
		offset = body + chunkSize
	}

	if !sawFmt {
		return Header{}, &FormatError{Reason: "missing fmt chunk"}
	}
	return Header{}, &FormatError{Reason: "missing data chunk"}
}

// Decode parses the header and returns it together with the raw sample bytes.
func Decode(data []byte) (Header, []byte, error) {
	h, err := ParseHeader(data)
	if err != nil {
		return Header{}, nil, err
	}
	offset := 12
	for offset+8 <= len(data) {
		chunkID := string(data[offset : offset+4])
		chunkSize := int(binary.LittleEndian.Uint32(data[offset+4 : offset+8]))
		body := offset + 8
		if chunkID == "data" {
			end := body + h.DataByteLength
			if end > len(data) {
				end = len(data)
			}
			return h, data[body:end], nil
		}
		if chunkSize%2 == 1 {
			chunkSize++
		}
		offset = body + chunkSize
	}
	return Header{}, nil, &FormatError{Reason: "missing data chunk"}
}

// ComputeDurationSeconds converts a raw sample byte count into play time.
// A zero sample rate, channel count or bit depth yields 0, not an error:
// malformed or empty input is valid silent input.
func ComputeDurationSeconds(dataByteLength, sampleRate, channelCount, bitsPerSample int) float64 {
	bytesPerSecond := sampleRate * channelCount * bitsPerSample / 8
	if bytesPerSecond <= 0 {
		return 0
	}
	return float64(dataByteLength) / float64(bytesPerSecond)
}

// Part is one run of raw sample bytes with the silence to insert after it.
type Part struct {
	RawSamples        []byte
	PauseAfterSeconds float64
}

// ConcatWithSilence joins the parts' raw sample bytes in order, appending
// floor(pause*sampleRate) frames of exact zero amplitude after each part.
// All parts must share the given format; callers guarantee this because every
// part comes from the same backend and voice within one invocation.
func ConcatWithSilence(parts []Part, sampleRate, channelCount, bitsPerSample int) []byte {
	bytesPerSample := bitsPerSample / 8

	total := 0
	for _, p := range parts {
		total += len(p.RawSamples)
		total += silenceByteCount(p.PauseAfterSeconds, sampleRate, channelCount, bytesPerSample)
	}

	out := make([]byte, 0, total)
	for _, p := range parts {
		out = append(out, p.RawSamples...)
		pad := silenceByteCount(p.PauseAfterSeconds, sampleRate, channelCount, bytesPerSample)
		out = append(out, make([]byte, pad)...)
	}
	return out
}

func silenceByteCount(pauseSeconds float64, sampleRate, channelCount, bytesPerSample int) int {
	if pauseSeconds <= 0 {
		return 0
	}
	frames := int(pauseSeconds * float64(sampleRate))
	return frames * channelCount * bytesPerSample
}

// WriteHeader produces the canonical 44-byte header for a PCM payload of the
// given length. Chunk sizes are derived from the payload length.
func WriteHeader(payloadByteLength, sampleRate, channelCount, bitsPerSample int) []byte {
	bytesPerSample := bitsPerSample / 8
	blockAlign := channelCount * bytesPerSample
	byteRate := sampleRate * blockAlign

	h := make([]byte, HeaderSize)
	copy(h[0:4], "RIFF")
	binary.LittleEndian.PutUint32(h[4:8], uint32(HeaderSize-8+payloadByteLength))
	copy(h[8:12], "WAVE")
	copy(h[12:16], "fmt ")
	binary.LittleEndian.PutUint32(h[16:20], 16)
	binary.LittleEndian.PutUint16(h[20:22], pcmFormatCode)
	binary.LittleEndian.PutUint16(h[22:24], uint16(channelCount))
	binary.LittleEndian.PutUint32(h[24:28], uint32(sampleRate))
	binary.LittleEndian.PutUint32(h[28:32], uint32(byteRate))
	binary.LittleEndian.PutUint16(h[32:34], uint16(blockAlign))
	binary.LittleEndian.PutUint16(h[34:36], uint16(bitsPerSample))
	copy(h[36:40], "data")
	binary.LittleEndian.PutUint32(h[40:44], uint32(payloadByteLength))
	return h
}

// Encode wraps raw sample bytes in a complete container.
func Encode(rawSamples []byte, sampleRate, channelCount, bitsPerSample int) []byte {
	header := WriteHeader(len(rawSamples), sampleRate, channelCount, bitsPerSample)
	out := make([]byte, 0, len(header)+len(rawSamples))
	out = append(out, header...)
	return append(out, rawSamples...)
}
