package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"
	"time"

	"github.com/artale-crew/boss-scheduler/backend/internal/config"
	"github.com/artale-crew/boss-scheduler/backend/internal/repository"
	"github.com/artale-crew/boss-scheduler/backend/internal/seed"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// 建立資料表；帶上 fixtures 參數時順便塞入一批隨機玩家與空閒時間。
func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("無法載入設定", "error", err)
		return
	}

	dbpool, err := sql.Open("pgx", cfg.Database.DSN)
	if err != nil {
		logger.Error("無法建立資料庫連線池", "error", err)
		return
	}
	defer dbpool.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Database.ConnectTimeout)*time.Second)
	defer cancel()

	if err := dbpool.PingContext(ctx); err != nil {
		logger.Error("無法連線到資料庫", "error", err)
		return
	}

	if err := seed.CreateTables(cfg, dbpool); err != nil {
		logger.Error("建立資料表失敗", "error", err)
		return
	}
	logger.Info("資料表已就緒")

	if len(os.Args) > 1 && os.Args[1] == "fixtures" {
		repo := repository.NewRepository(cfg, dbpool)
		seed.SeedRandomRoster(cfg, repo)
	}
}
