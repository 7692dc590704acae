package api

import "github.com/nayottama/wicara/domain/entities"

// TokenRequest exchanges a shared client key for an API token.
type TokenRequest struct {
	ClientID  string `json:"clientId"`
	ClientKey string `json:"clientKey"`
}

// TokenResponse carries a freshly issued API token.
type TokenResponse struct {
	Token string `json:"token"`
}

// GenerateRequest asks for a narrated timeline from a prompt.
type GenerateRequest struct {
	Prompt  string  `json:"prompt"`
	VoiceID string  `json:"voiceId"`
	Speed   float64 `json:"speed"`
}

// GenerateResponse returns the annotated timeline and its job record.
type GenerateResponse struct {
	Timeline *entities.Timeline  `json:"timeline"`
	Job      *entities.RenderJob `json:"job"`
}

// ErrorResponse is the uniform error payload.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
