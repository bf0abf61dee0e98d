package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/budgetbadger/budgetbadger/internal/achievement"
	achievementStore "github.com/budgetbadger/budgetbadger/internal/achievement/store"
	"github.com/budgetbadger/budgetbadger/internal/badge"
	badgeStore "github.com/budgetbadger/budgetbadger/internal/badge/store"
	"github.com/budgetbadger/budgetbadger/internal/config"
	"github.com/budgetbadger/budgetbadger/internal/database"
	badgerHttp "github.com/budgetbadger/budgetbadger/internal/http"
	achievementHandler "github.com/budgetbadger/budgetbadger/internal/http/achievement"
	importHandler "github.com/budgetbadger/budgetbadger/internal/http/importcsv"
	leaderboardHandler "github.com/budgetbadger/budgetbadger/internal/http/leaderboard"
	profileHandler "github.com/budgetbadger/budgetbadger/internal/http/profile"
	socialHandler "github.com/budgetbadger/budgetbadger/internal/http/social"
	txHandler "github.com/budgetbadger/budgetbadger/internal/http/transaction"
	"github.com/budgetbadger/budgetbadger/internal/importer"
	"github.com/budgetbadger/budgetbadger/internal/leaderboard"
	leaderboardStore "github.com/budgetbadger/budgetbadger/internal/leaderboard/store"
	"github.com/budgetbadger/budgetbadger/internal/social"
	socialStore "github.com/budgetbadger/budgetbadger/internal/social/store"
	"github.com/budgetbadger/budgetbadger/internal/transaction"
	txStore "github.com/budgetbadger/budgetbadger/internal/transaction/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	transactions := txStore.New(db)

	var (
		transactionService = transaction.NewService(transactions)
		scoreService       = achievement.NewService(transactions, achievementStore.New(db), cfg.Scoring.BalanceStep)
		badgeService       = badge.NewService(achievementStore.New(db), badgeStore.New(db))
		socialService      = social.NewService(socialStore.New(db))
		leaderboardService = leaderboard.NewService(leaderboardStore.New(db), scoreService)
		importService      = importer.NewService()
	)

	var (
		transactionH = txHandler.NewHandler(transactionService, scoreService)
		importH      = importHandler.NewHandler(importService, transactionService, scoreService)
		leaderboardH = leaderboardHandler.NewHandler(leaderboardService, cfg.Scoring.LeaderboardLimit)
		profileH     = profileHandler.NewHandler(scoreService, badgeService, socialService)
		socialH      = socialHandler.NewHandler(socialService)
		achievementH = achievementHandler.NewHandler(scoreService)
	)

	router := badgerHttp.New(transactionH, importH, leaderboardH, profileH, socialH, achievementH)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "app", cfg.App.Name, "port", port)

	if err := http.ListenAndServe(port, router); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
