package voices

import "testing"

func TestResolveElevenLabsFallback(t *testing.T) {
	v := ResolveElevenLabs("voice-that-does-not-exist")
	if v.ID != DefaultElevenLabsVoiceID {
		t.Errorf("Expected default voice %s, got %s", DefaultElevenLabsVoiceID, v.ID)
	}

	known := ResolveElevenLabs("ThT5KcBeYPX3keUQqHPh")
	if known.DisplayName != "Dorothy" {
		t.Errorf("Expected Dorothy, got %s", known.DisplayName)
	}
}

func TestResolveLocalFallback(t *testing.T) {
	v := ResolveLocal("")
	if v.ID != DefaultLocalVoiceID {
		t.Errorf("Expected default voice %s, got %s", DefaultLocalVoiceID, v.ID)
	}
}
