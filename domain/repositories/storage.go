package repositories

// AudioStore persists one slide's narration audio and returns a stable URL
// for the renderer. Layout and naming are the store's concern.
type AudioStore interface {
	Save(audio []byte, slideIndex int) (string, error)
}
