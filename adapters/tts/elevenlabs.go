package tts

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/nayottama/wicara/domain/entities"
	"github.com/nayottama/wicara/domain/repositories"
	"github.com/nayottama/wicara/internal/narration"
	"github.com/nayottama/wicara/internal/voices"
)

const (
	elevenLabsBackend = "elevenlabs"

	defaultAPIBaseURL   = "https://api.elevenlabs.io/v1"
	defaultModelID      = "eleven_multilingual_v2"
	defaultOutputFormat = "pcm_22050" // raw PCM so durations can be measured byte-exactly
	defaultStability    = 0.5
	defaultClarity      = 0.75
)

// ElevenLabsConfig holds configuration for the ElevenLabs backend.
// APIKey is required; everything else has a sensible default.
type ElevenLabsConfig struct {
	APIKey       string
	APIBaseURL   string
	ModelID      string
	OutputFormat string
	Stability    float64
	Clarity      float64
}

// NewElevenLabsConfigFromEnv builds a config from ELEVEN_LABS_* environment
// variables.
func NewElevenLabsConfigFromEnv() ElevenLabsConfig {
	config := ElevenLabsConfig{
		APIKey:       os.Getenv("ELEVEN_LABS_API_KEY"),
		APIBaseURL:   os.Getenv("ELEVEN_LABS_API_BASE_URL"),
		ModelID:      os.Getenv("ELEVEN_LABS_MODEL_ID"),
		OutputFormat: os.Getenv("ELEVEN_LABS_OUTPUT_FORMAT"),
	}

	if stabilityStr := os.Getenv("ELEVEN_LABS_STABILITY"); stabilityStr != "" {
		if stability, err := strconv.ParseFloat(stabilityStr, 64); err == nil && stability >= 0 && stability <= 1 {
			config.Stability = stability
		}
	}
	if clarityStr := os.Getenv("ELEVEN_LABS_CLARITY"); clarityStr != "" {
		if clarity, err := strconv.ParseFloat(clarityStr, 64); err == nil && clarity >= 0 && clarity <= 1 {
			config.Clarity = clarity
		}
	}

	return config
}

// ElevenLabs synthesizes speech through the ElevenLabs HTTP API. It is
// stateless; every call is one HTTP round trip.
type ElevenLabs struct {
	apiKey       string
	apiBaseURL   string
	modelID      string
	outputFormat string
	stability    float64
	clarity      float64
	client       *http.Client
	logger       *zap.Logger
}

var _ repositories.SpeechSynthesizer = (*ElevenLabs)(nil)

type elevenLabsVoiceSettings struct {
	Stability       float64 `json:"stability"`
	SimilarityBoost float64 `json:"similarity_boost"`
	Speed           float64 `json:"speed,omitempty"`
	UseSpeakerBoost bool    `json:"use_speaker_boost,omitempty"`
}

type elevenLabsRequest struct {
	Text          string                  `json:"text"`
	ModelID       string                  `json:"model_id"`
	VoiceSettings elevenLabsVoiceSettings `json:"voice_settings"`
}

// NewElevenLabs creates the backend. A missing API key fails fast with
// AuthError before any network call can be attempted.
func NewElevenLabs(config ElevenLabsConfig, logger *zap.Logger) (*ElevenLabs, error) {
	if config.APIKey == "" {
		return nil, &AuthError{Backend: elevenLabsBackend, Reason: "API key is required"}
	}

	apiBaseURL := config.APIBaseURL
	if apiBaseURL == "" {
		apiBaseURL = defaultAPIBaseURL
	}
	modelID := config.ModelID
	if modelID == "" {
		modelID = defaultModelID
	}
	outputFormat := config.OutputFormat
	if outputFormat == "" {
		outputFormat = defaultOutputFormat
	}
	stability := config.Stability
	if stability == 0 {
		stability = defaultStability
	}
	clarity := config.Clarity
	if clarity == 0 {
		clarity = defaultClarity
	}

	return &ElevenLabs{
		apiKey:       config.APIKey,
		apiBaseURL:   apiBaseURL,
		modelID:      modelID,
		outputFormat: outputFormat,
		stability:    stability,
		clarity:      clarity,
		client:       &http.Client{Timeout: 60 * time.Second},
		logger:       logger,
	}, nil
}

// SynthesizeOne renders text through the API and returns the decoded PCM.
func (e *ElevenLabs) SynthesizeOne(ctx context.Context, text string, opts repositories.VoiceOptions) (entities.AudioBuffer, error) {
	text = narration.SanitizeForSpeech(text)
	if text == "" {
		return entities.AudioBuffer{}, fmt.Errorf("text cannot be empty")
	}

	voice := voices.ResolveElevenLabs(opts.VoiceID)
	modelID := e.modelID
	if voice.ModelID != "" {
		modelID = voice.ModelID
	}

	e.logger.Info("Converting text to speech",
		zap.String("voiceID", voice.ID),
		zap.String("modelID", modelID),
		zap.Int("textLength", len(text)))

	request := elevenLabsRequest{
		Text:    text,
		ModelID: modelID,
		VoiceSettings: elevenLabsVoiceSettings{
			Stability:       e.stability,
			SimilarityBoost: e.clarity,
			Speed:           opts.Speed,
			UseSpeakerBoost: true,
		},
	}
	requestBody, err := json.Marshal(request)
	if err != nil {
		return entities.AudioBuffer{}, fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/text-to-speech/%s?output_format=%s", e.apiBaseURL, voice.ID, e.outputFormat)
	httpReq, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(requestBody))
	if err != nil {
		return entities.AudioBuffer{}, fmt.Errorf("failed to create HTTP request: %w", err)
	}
	httpReq.Header.Set("Accept", "audio/pcm")
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("xi-api-key", e.apiKey)

	resp, err := e.client.Do(httpReq)
	if err != nil {
		return entities.AudioBuffer{}, fmt.Errorf("failed to execute HTTP request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		errorBody, _ := io.ReadAll(resp.Body)
		return entities.AudioBuffer{}, &AuthError{Backend: elevenLabsBackend, Reason: string(errorBody)}
	}
	if resp.StatusCode != http.StatusOK {
		errorBody, _ := io.ReadAll(resp.Body)
		e.logger.Error("ElevenLabs API returned error",
			zap.Int("statusCode", resp.StatusCode),
			zap.String("response", string(errorBody)))
		return entities.AudioBuffer{}, &ProviderError{
			Backend:    elevenLabsBackend,
			StatusCode: resp.StatusCode,
			Body:       string(errorBody),
		}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return entities.AudioBuffer{}, fmt.Errorf("failed to read audio response: %w", err)
	}

	return entities.AudioBuffer{
		Data:          data,
		SampleRate:    sampleRateFromFormat(e.outputFormat),
		ChannelCount:  1,
		BitsPerSample: 16,
	}, nil
}

// sampleRateFromFormat extracts the rate from formats like "pcm_22050".
func sampleRateFromFormat(format string) int {
	idx := strings.LastIndex(format, "_")
	if idx < 0 {
		return 0
	}
	rate, err := strconv.Atoi(format[idx+1:])
	if err != nil {
		return 0
	}
	return rate
}
