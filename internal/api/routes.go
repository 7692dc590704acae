package api

import (
	"errors"
	"net/http"
	"os"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/nayottama/wicara/adapters/tts"
	"github.com/nayottama/wicara/domain/repositories"
	"github.com/nayottama/wicara/internal/auth"
	"github.com/nayottama/wicara/internal/progress"
	"github.com/nayottama/wicara/internal/voices"
	"github.com/nayottama/wicara/usecase"
)

// InitRoutes wires all API routes onto the echo instance.
func InitRoutes(e *echo.Echo, jobs *usecase.RenderJobService, hub *progress.Hub, logger *zap.Logger) {
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "ok",
			"service": "wicara-server",
		})
	})

	v1 := e.Group("/api/v1")

	v1.POST("/auth/token", issueToken(logger))
	v1.GET("/voices", listVoices)

	v1.POST("/timelines", generateTimeline(jobs, logger), requireToken(logger))
	v1.GET("/jobs/:id", getJob(jobs), requireToken(logger))

	e.GET("/ws/jobs/:id", subscribeProgress(hub, logger))
}

// requireToken guards endpoints with a bearer token issued by /auth/token.
func requireToken(logger *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := bearerToken(c)
			if token == "" {
				return c.JSON(http.StatusUnauthorized, ErrorResponse{
					Error:   "missing_token",
					Message: "Bearer token is required",
				})
			}
			claims, err := auth.ValidateToken(token)
			if err != nil {
				logger.Warn("Rejected API token", zap.Error(err))
				return c.JSON(http.StatusUnauthorized, ErrorResponse{
					Error:   "invalid_token",
					Message: "Invalid or expired token",
				})
			}
			c.Set("clientID", claims.ClientID)
			return next(c)
		}
	}
}

func issueToken(logger *zap.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req TokenRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{
				Error:   "invalid_request",
				Message: "Invalid request format",
			})
		}

		clientKey := os.Getenv("WICARA_CLIENT_KEY")
		if clientKey == "" || req.ClientKey != clientKey {
			logger.Warn("Client authentication failed", zap.String("clientID", req.ClientID))
			return c.JSON(http.StatusUnauthorized, ErrorResponse{
				Error:   "authentication_failed",
				Message: "Invalid client credentials",
			})
		}

		token, err := auth.GenerateClientToken(req.ClientID)
		if err != nil {
			logger.Error("Failed to generate token", zap.Error(err))
			return c.JSON(http.StatusInternalServerError, ErrorResponse{
				Error:   "token_generation_failed",
				Message: "Failed to generate token",
			})
		}

		return c.JSON(http.StatusOK, TokenResponse{Token: token})
	}
}

func listVoices(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"elevenlabs": voices.ElevenLabs(),
		"local":      voices.Local(),
	})
}

func generateTimeline(jobs *usecase.RenderJobService, logger *zap.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req GenerateRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{
				Error:   "invalid_request",
				Message: "Invalid request format",
			})
		}
		if strings.TrimSpace(req.Prompt) == "" {
			return c.JSON(http.StatusBadRequest, ErrorResponse{
				Error:   "missing_prompt",
				Message: "Prompt is required",
			})
		}

		voice := voices.ResolveElevenLabs(req.VoiceID)
		opts := repositories.VoiceOptions{VoiceID: voice.ID, Speed: req.Speed}

		tl, job, err := jobs.Generate(c.Request().Context(), req.Prompt, opts, voice.DisplayName)
		if err != nil {
			var provErr *tts.ProviderError
			if errors.As(err, &provErr) && provErr.QuotaExhausted() {
				return c.JSON(http.StatusServiceUnavailable, ErrorResponse{
					Error:   "quota_exhausted",
					Message: "Speech quota exhausted, switch to the local backend",
				})
			}
			logger.Error("Timeline generation failed", zap.Error(err))
			return c.JSON(http.StatusInternalServerError, ErrorResponse{
				Error:   "generation_failed",
				Message: err.Error(),
			})
		}

		return c.JSON(http.StatusOK, GenerateResponse{Timeline: tl, Job: job})
	}
}

func getJob(jobs *usecase.RenderJobService) echo.HandlerFunc {
	return func(c echo.Context) error {
		job, err := jobs.GetJob(c.Request().Context(), c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusNotFound, ErrorResponse{
				Error:   "job_not_found",
				Message: err.Error(),
			})
		}
		return c.JSON(http.StatusOK, job)
	}
}

func subscribeProgress(hub *progress.Hub, logger *zap.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := bearerToken(c)
		if token == "" {
			token = c.QueryParam("token")
		}
		if token == "" {
			return c.JSON(http.StatusUnauthorized, ErrorResponse{
				Error:   "missing_token",
				Message: "Token is required",
			})
		}
		if _, err := auth.ValidateToken(token); err != nil {
			logger.Warn("Websocket connection rejected", zap.Error(err))
			return c.JSON(http.StatusUnauthorized, ErrorResponse{
				Error:   "invalid_token",
				Message: "Invalid or expired token",
			})
		}

		return hub.Subscribe(c, c.Param("id"))
	}
}

func bearerToken(c echo.Context) string {
	header := c.Request().Header.Get("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return ""
}
