// Package storage persists narration audio to local disk and hands back the
// URLs the renderer will stream from.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const maxSlugLength = 40

// LocalStore writes one generation run's audio files into a folder derived
// from the prompt, the voice and the date.
type LocalStore struct {
	dir     string
	baseURL string
	logger  *zap.Logger
}

// NewLocalStore creates the run folder under baseDir and returns a store
// rooted there. URLs are baseURL + folder + filename.
func NewLocalStore(baseDir, baseURL, prompt, voiceName string, logger *zap.Logger) (*LocalStore, error) {
	folder := fmt.Sprintf("%s_%s_%s", Slugify(prompt), Slugify(voiceName), time.Now().Format("2006-01-02"))
	dir := filepath.Join(baseDir, folder)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create audio folder: %w", err)
	}

	return &LocalStore{
		dir:     dir,
		baseURL: strings.TrimSuffix(baseURL, "/") + "/" + folder,
		logger:  logger,
	}, nil
}

// Save writes one slide's narration audio and returns its URL.
func (s *LocalStore) Save(audio []byte, slideIndex int) (string, error) {
	name := fmt.Sprintf("slide_%02d_%s.wav", slideIndex, uuid.NewString()[:8])
	path := filepath.Join(s.dir, name)

	if err := os.WriteFile(path, audio, 0o644); err != nil {
		return "", fmt.Errorf("failed to write narration audio: %w", err)
	}

	s.logger.Debug("Saved narration audio",
		zap.Int("slideIndex", slideIndex),
		zap.String("path", path),
		zap.Int("bytes", len(audio)))

	return s.baseURL + "/" + name, nil
}

// Slugify lowercases text and keeps letters and digits, joining runs with
// hyphens, truncated to a filesystem-friendly length.
func Slugify(text string) string {
	var b strings.Builder
	lastHyphen := true
	for _, r := range strings.ToLower(text) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastHyphen = false
		case !lastHyphen:
			b.WriteByte('-')
			lastHyphen = true
		}
		if b.Len() >= maxSlugLength {
			break
		}
	}
	slug := strings.Trim(b.String(), "-")
	if slug == "" {
		return "untitled"
	}
	return slug
}
