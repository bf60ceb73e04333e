package seed

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/artale-crew/boss-scheduler/backend/internal/config"
	"github.com/artale-crew/boss-scheduler/backend/internal/repository"
	"github.com/artale-crew/boss-scheduler/backend/internal/timeslot"
	"github.com/artale-crew/boss-scheduler/backend/internal/utils"
)

// CreateTables 建立 players 與 availability 兩張表，已存在就跳過。
func CreateTables(cfg *config.Config, dbpool *sql.DB) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	queries := []string{
		`CREATE TABLE IF NOT EXISTS players (
			id BIGSERIAL PRIMARY KEY,
			name VARCHAR(255) UNIQUE NOT NULL,
			job_class VARCHAR(50) NOT NULL,
			email VARCHAR(255),
			created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS availability (
			id BIGSERIAL PRIMARY KEY,
			player_id BIGINT REFERENCES players(id) ON DELETE CASCADE,
			start_time TIMESTAMPTZ NOT NULL,
			end_time TIMESTAMPTZ NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE INDEX IF NOT EXISTS availability_player_id_idx ON availability (player_id)`,
	}

	for _, query := range queries {
		if _, err := dbpool.ExecContext(ctx, query); err != nil {
			return err
		}
	}

	return nil
}

// SeedRandomRoster 產生一批隨機玩家，並在本週期內塞入隨機的空閒時間。
func SeedRandomRoster(cfg *config.Config, repo *repository.Repository) {
	bounds := timeslot.GetWeekBounds(0)

	for i := 0; i < cfg.Seed.PlayerCount; i++ {
		player := utils.GenerateRandomPlayer(cfg.Seed.EmailDomain)

		if err := repo.CreatePlayer(player); err != nil {
			// 暱稱撞名就跳過，下一位
			slog.Warn("建立隨機玩家失敗", "name", player.Name, "error", err)
			continue
		}

		ranges := timeslot.Compress(utils.GenerateRandomSlotSet(bounds))
		if err := repo.ReplacePlayerRanges(player.ID, bounds.Start, bounds.End, ranges); err != nil {
			slog.Warn("寫入隨機空閒時間失敗", "name", player.Name, "error", err)
			continue
		}

		slog.Info("已建立隨機玩家", "name", player.Name, "jobClass", player.JobClass, "ranges", len(ranges))
	}
}
