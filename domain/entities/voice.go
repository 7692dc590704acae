package entities

// VoiceProfile describes one selectable narration voice. Profiles live in a
// static registry and are read-only at runtime.
type VoiceProfile struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
	Gender      string `json:"gender"`
	Description string `json:"description"`
	ModelID     string `json:"modelId,omitempty"`
}
