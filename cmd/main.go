package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/nayottama/wicara/adapters/llm"
	"github.com/nayottama/wicara/adapters/memory"
	wicaramongo "github.com/nayottama/wicara/adapters/mongo"
	"github.com/nayottama/wicara/adapters/storage"
	"github.com/nayottama/wicara/adapters/stt"
	"github.com/nayottama/wicara/adapters/tts"
	"github.com/nayottama/wicara/domain/repositories"
	"github.com/nayottama/wicara/internal/api"
	"github.com/nayottama/wicara/internal/progress"
	"github.com/nayottama/wicara/usecase"
)

func main() {
	// Best-effort .env for local development
	_ = godotenv.Load()

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	e := echo.New()
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	// Speech synthesis backend
	synth, err := tts.NewElevenLabs(tts.NewElevenLabsConfigFromEnv(), logger)
	if err != nil {
		logger.Fatal("Failed to initialize speech backend", zap.Error(err))
	}

	// Word-level captions are optional; they need Google credentials
	var transcriber repositories.Transcriber
	if os.Getenv("GOOGLE_APPLICATION_CREDENTIALS") != "" {
		transcriber = stt.NewGoogleTranscriber(os.Getenv("WICARA_CAPTION_LANGUAGE"), logger)
	} else {
		logger.Info("Caption transcription disabled: no Google credentials")
	}

	generator, err := llm.NewGeminiGenerator(logger)
	if err != nil {
		logger.Fatal("Failed to initialize timeline generator", zap.Error(err))
	}

	// Render jobs persist in Mongo when configured, in memory otherwise
	var jobRepo repositories.RenderJobRepository
	if uri := os.Getenv("MONGODB_URI"); uri != "" {
		client, err := wicaramongo.NewClient(context.Background(), uri, os.Getenv("MONGODB_DATABASE"), logger)
		if err != nil {
			logger.Fatal("Failed to connect to MongoDB", zap.Error(err))
		}
		defer client.Disconnect(context.Background())
		jobRepo = wicaramongo.NewRenderJobRepository(client)
	} else {
		logger.Info("MONGODB_URI not set, keeping render jobs in memory")
		jobRepo = memory.NewRenderJobRepository()
	}

	mediaDir := os.Getenv("WICARA_MEDIA_DIR")
	if mediaDir == "" {
		mediaDir = "media"
	}
	storeFactory := func(prompt, voiceName string) (repositories.AudioStore, error) {
		return storage.NewLocalStore(mediaDir, "/media", prompt, voiceName, logger)
	}

	hub := progress.NewHub(logger)
	narrationService := usecase.NewNarrationService(synth, transcriber, logger)
	jobService := usecase.NewRenderJobService(generator, narrationService, jobRepo, storeFactory, hub, logger)

	api.InitRoutes(e, jobService, hub, logger)
	e.Static("/media", mediaDir)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	go func() {
		if err := e.Start(":" + port); err != nil && err != http.ErrServerClosed {
			logger.Fatal("shutting down the server", zap.Error(err))
		}
	}()

	logger.Info("Server started", zap.String("port", port))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("Server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited")
}
