// Package voices holds the static voice registries for each synthesis
// backend. Registries are read-only at runtime.
package voices

import "github.com/nayottama/wicara/domain/entities"

// Backend default voice ids. Unknown ids resolve to these rather than
// erroring, because generated content may reference voices that have drifted
// out of the registry.
const (
	DefaultElevenLabsVoiceID = "21m00Tcm4TlvDq8ikWAM" // Rachel
	DefaultLocalVoiceID      = "amy-medium"
)

var elevenLabsVoices = map[string]entities.VoiceProfile{
	"21m00Tcm4TlvDq8ikWAM": {
		ID:          "21m00Tcm4TlvDq8ikWAM",
		DisplayName: "Rachel",
		Gender:      "female",
		Description: "calm American narrator",
		ModelID:     "eleven_multilingual_v2",
	},
	"TxGEqnHWrfWFTfGW9XjX": {
		ID:          "TxGEqnHWrfWFTfGW9XjX",
		DisplayName: "Josh",
		Gender:      "male",
		Description: "deep American voice",
		ModelID:     "eleven_multilingual_v2",
	},
	"ThT5KcBeYPX3keUQqHPh": {
		ID:          "ThT5KcBeYPX3keUQqHPh",
		DisplayName: "Dorothy",
		Gender:      "female",
		Description: "warm British storyteller",
		ModelID:     "eleven_multilingual_v2",
	},
}

var localVoices = map[string]entities.VoiceProfile{
	"amy-medium": {
		ID:          "amy-medium",
		DisplayName: "Amy",
		Gender:      "female",
		Description: "neutral English",
	},
	"ryan-high": {
		ID:          "ryan-high",
		DisplayName: "Ryan",
		Gender:      "male",
		Description: "neutral English",
	},
}

// ResolveElevenLabs returns the profile for id, falling back to the default
// voice when the id is unknown.
func ResolveElevenLabs(id string) entities.VoiceProfile {
	if v, ok := elevenLabsVoices[id]; ok {
		return v
	}
	return elevenLabsVoices[DefaultElevenLabsVoiceID]
}

// ResolveLocal is ResolveElevenLabs for the local backend registry.
func ResolveLocal(id string) entities.VoiceProfile {
	if v, ok := localVoices[id]; ok {
		return v
	}
	return localVoices[DefaultLocalVoiceID]
}

// ElevenLabs lists the cloud backend's registered voices.
func ElevenLabs() []entities.VoiceProfile {
	return collect(elevenLabsVoices)
}

// Local lists the local backend's registered voices.
func Local() []entities.VoiceProfile {
	return collect(localVoices)
}

func collect(m map[string]entities.VoiceProfile) []entities.VoiceProfile {
	out := make([]entities.VoiceProfile, 0, len(m))
	for _, v := range m {
		out = append(out, v)
	}
	return out
}
