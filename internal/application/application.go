package application

import (
	"context"
	"fmt"

	"github.com/graduation-team-project-4nd/KiMate-AI/internal/agent"
	"github.com/graduation-team-project-4nd/KiMate-AI/internal/config"
	"github.com/graduation-team-project-4nd/KiMate-AI/internal/controller"
	"github.com/graduation-team-project-4nd/KiMate-AI/internal/llm"
	"github.com/graduation-team-project-4nd/KiMate-AI/internal/pkg/logger"
	"github.com/graduation-team-project-4nd/KiMate-AI/internal/screen"
	"github.com/graduation-team-project-4nd/KiMate-AI/internal/server"
)

func Run(ctx context.Context) error {
	// 1. Configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("initialization failed: %w", err)
	}

	// 2. Logger
	log := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")
	defer log.Sync()

	// Without a key there is nothing to call; degrade to fallback-only
	// instead of refusing to start — the kiosk must keep guiding users.
	mock := cfg.Ai.Mock
	if !mock && cfg.Ai.APIKey == "" {
		log.Warn("application", "OPENAI_API_KEY is not set, running in mock mode", nil)
		mock = true
	}
	log.Info("application", "ai service init", map[string]interface{}{
		"model":     cfg.Ai.Model,
		"mock":      mock,
		"threshold": cfg.Ai.ScreenChangeThreshold,
	})

	// 3. Oracle (LLM) and the decision engine around it
	var oracle agent.Oracle
	if !mock {
		oracle = llm.New(cfg.Ai.APIKey, cfg.Ai.Model, cfg.Ai.BaseURL, log)
	}
	recommender := agent.NewRecommender(oracle, log, mock)
	detector := screen.NewDetector(recommender, cfg.Ai.ScreenChangeThreshold)

	// 4. HTTP surface
	kiosk := controller.NewKioskController(recommender, detector, log)
	srv := server.New(cfg, kiosk, log)

	go func() {
		<-ctx.Done()
		if err := srv.Shutdown(); err != nil {
			log.Error("application", "shutdown failed", map[string]interface{}{"error": err.Error()})
		}
	}()

	return srv.Run()
}
