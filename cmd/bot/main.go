package main

import (
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rayaadinda/bot-discord/internal/access"
	"github.com/rayaadinda/bot-discord/internal/api"
	"github.com/rayaadinda/bot-discord/internal/config"
	"github.com/rayaadinda/bot-discord/internal/database"
	"github.com/rayaadinda/bot-discord/internal/discord"
	"github.com/rayaadinda/bot-discord/internal/handler"
	"github.com/rayaadinda/bot-discord/internal/leaderboard"
	"github.com/rayaadinda/bot-discord/internal/logger"
	"github.com/rayaadinda/bot-discord/internal/points"
	"github.com/rayaadinda/bot-discord/internal/rank"
	"github.com/rayaadinda/bot-discord/internal/store"
	"github.com/rayaadinda/bot-discord/internal/tier"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Error("Could not load config: %v", err)
		os.Exit(1)
	}
	if cfg.Environment != "production" {
		logger.EnableDebug()
	}

	// Connect to PostgreSQL
	db, err := database.ConnectPostgres(cfg)
	if err != nil {
		logger.Error("Database connection failed: %v", err)
		os.Exit(1)
	}
	defer db.Close()

	// Backend boundary: procedures first, table fallback behind them.
	backend := store.New(db)

	tiers := tier.NewCalculator(cfg.Tiers)
	ledger := points.NewLedger(backend)
	ranks := rank.NewResolver(backend, cfg.RankWindow)
	gate := access.NewGate(backend)

	// Connect to Discord
	session, err := discord.New(cfg.BotToken)
	if err != nil {
		logger.Error("Discord session failed: %v", err)
		os.Exit(1)
	}

	handler.New(cfg, backend, ledger, ranks, tiers, gate).Register(session.Raw())

	if err := session.Open(); err != nil {
		logger.Error("Discord gateway failed: %v", err)
		os.Exit(1)
	}
	defer session.Close()

	if err := session.RegisterCommands(""); err != nil {
		logger.Error("Command registration failed: %v", err)
		os.Exit(1)
	}
	logger.Success("Bot connected as %s", session.SelfID())

	// Background leaderboard sync
	sync := leaderboard.NewService(backend, session, tiers, cfg)
	sync.Start()
	defer sync.Stop()

	// Health endpoint for the hosting platform
	go func() {
		logger.Info("Health endpoint on port %s", cfg.HealthPort)
		if err := http.ListenAndServe(":"+cfg.HealthPort, api.SetupRouter()); err != nil {
			logger.Error("Health server failed: %v", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down")
}
