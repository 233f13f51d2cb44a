package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/otoplaza/showroom-ai/internal/api/router"
	appconfig "github.com/otoplaza/showroom-ai/internal/config"
	"github.com/otoplaza/showroom-ai/internal/appointments"
	"github.com/otoplaza/showroom-ai/internal/conversation"
	"github.com/otoplaza/showroom-ai/internal/extract"
	"github.com/otoplaza/showroom-ai/internal/observability/metrics"
	"github.com/otoplaza/showroom-ai/internal/vehicles"
	"github.com/otoplaza/showroom-ai/internal/voice"
	"github.com/otoplaza/showroom-ai/pkg/logging"
)

const voiceWebhookPath = "/webhooks/twilio/voice"

func main() {
	// Load .env when present, real environments set variables directly.
	_ = godotenv.Load()

	cfg := appconfig.Load()

	logger := logging.New(cfg.LogLevel)
	logger.Info("starting showroom-ai API server",
		"env", cfg.Env,
		"port", cfg.Port,
	)

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})
	defer rdb.Close()

	repo, err := appointments.NewFileRepository(filepath.Join(cfg.DataDir, "appointments.json"))
	if err != nil {
		logger.Error("failed to open appointment store", "error", err)
		os.Exit(1)
	}

	catalog, err := vehicles.NewCatalog(filepath.Join(cfg.DataDir, "vehicles.json"))
	if err != nil {
		logger.Error("failed to open vehicle catalog", "error", err)
		os.Exit(1)
	}

	assistantMetrics := metrics.NewAssistantMetrics(nil)
	analyzer := extract.NewAnalyzer()

	llm := conversation.NewOpenRouterClient(cfg.OpenRouterAPIKey, cfg.OpenRouterBaseURL, cfg.OpenRouterReferer, nil)
	chatService := conversation.NewService(conversation.ServiceConfig{
		Redis:      rdb,
		LLM:        llm,
		Analyzer:   analyzer,
		Repo:       repo,
		Inventory:  catalog.PromptInventory(),
		Model:      cfg.OpenRouterModel,
		HistoryTTL: cfg.ChatHistoryTTL,
		Logger:     logger,
		Metrics:    assistantMetrics,
	})

	sessions := voice.NewSessionStore(rdb, cfg.VoiceSessionTTL, nil)
	driver := voice.NewDriver(sessions, analyzer, repo, logger, assistantMetrics)
	dialer := voice.NewTwilioClient(
		cfg.TwilioAccountSID,
		cfg.TwilioAuthToken,
		cfg.TwilioFromNumber,
		cfg.PublicBaseURL+voiceWebhookPath,
		nil,
	)

	r := router.New(&router.Config{
		Logger:              logger,
		AppointmentsHandler: appointments.NewHandler(repo, logger),
		VehiclesHandler:     vehicles.NewHandler(catalog, logger),
		ChatHandler:         conversation.NewHandler(chatService, logger),
		VoiceHandler:        voice.NewHandler(driver, dialer, repo, cfg.OwnerPhoneNumber, voiceWebhookPath, logger),
		MetricsHandler:      promhttp.Handler(),
		StaticDir:           "web",
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
}
