package repository

import (
	"context"
	"time"

	"github.com/artale-crew/boss-scheduler/backend/internal/domain"
)

// GetRangesInWindow 回傳完全落在 [start, end] 內的空閒區段。
// 跨越視窗邊界的區段整段排除，不做裁切。
func (r *Repository) GetRangesInWindow(start time.Time, end time.Time) ([]*domain.AvailabilityRange, error) {
	query := `
		SELECT id, player_id, start_time, end_time, created_at
		FROM availability
		WHERE start_time >= $1 AND end_time <= $2
		ORDER BY start_time
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ranges := make([]*domain.AvailabilityRange, 0)
	for rows.Next() {
		ar := &domain.AvailabilityRange{}
		dst := []any{&ar.ID, &ar.PlayerID, &ar.StartTime, &ar.EndTime, &ar.CreatedAt}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		ranges = append(ranges, ar)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return ranges, nil
}

// GetPlayerRangesInWindow 回傳單一玩家完全落在視窗內的空閒區段。
func (r *Repository) GetPlayerRangesInWindow(playerID int64, start time.Time, end time.Time) ([]*domain.AvailabilityRange, error) {
	query := `
		SELECT id, player_id, start_time, end_time, created_at
		FROM availability
		WHERE player_id = $1 AND start_time >= $2 AND end_time <= $3
		ORDER BY start_time
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, playerID, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ranges := make([]*domain.AvailabilityRange, 0)
	for rows.Next() {
		ar := &domain.AvailabilityRange{}
		dst := []any{&ar.ID, &ar.PlayerID, &ar.StartTime, &ar.EndTime, &ar.CreatedAt}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		ranges = append(ranges, ar)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return ranges, nil
}

// GetRangesWithPlayersInWindow 回傳視窗內的空閒區段並附上玩家名稱與職業，給總覽使用。
func (r *Repository) GetRangesWithPlayersInWindow(start time.Time, end time.Time) ([]*domain.PlayerAvailability, error) {
	query := `
		SELECT a.id, a.player_id, a.start_time, a.end_time, a.created_at, p.name, p.job_class
		FROM availability a
		JOIN players p ON a.player_id = p.id
		WHERE a.start_time >= $1 AND a.end_time <= $2
		ORDER BY a.start_time, p.name
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]*domain.PlayerAvailability, 0)
	for rows.Next() {
		pa := &domain.PlayerAvailability{}
		dst := []any{&pa.ID, &pa.PlayerID, &pa.StartTime, &pa.EndTime, &pa.CreatedAt, &pa.PlayerName, &pa.JobClass}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		result = append(result, pa)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}

// ReplacePlayerRanges 以一筆交易汰換玩家在視窗內的空閒區段：
// 先刪除完全落在視窗內的舊區段再逐筆插入新區段，任何一步失敗整筆回滾，
// 不會留下只更新一半的狀態。每個新區段都必須滿足開始時間早於結束時間。
func (r *Repository) ReplacePlayerRanges(playerID int64, windowStart time.Time, windowEnd time.Time, ranges []domain.AvailabilityRange) error {
	for _, ar := range ranges {
		if !ar.StartTime.Before(ar.EndTime) {
			return domain.ErrInvalidTimeRange
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.TransactionTimeout)*time.Second)
	defer cancel()

	tx, err := r.dbpool.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	query := `
		DELETE FROM availability
		WHERE player_id = $1 AND start_time >= $2 AND end_time <= $3
	`
	if _, err := tx.ExecContext(ctx, query, playerID, windowStart, windowEnd); err != nil {
		return err
	}

	query = `
		INSERT INTO availability (player_id, start_time, end_time)
		VALUES ($1, $2, $3)
	`
	for _, ar := range ranges {
		if _, err := tx.ExecContext(ctx, query, playerID, ar.StartTime, ar.EndTime); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	return nil
}

// DeleteRangesEndingBefore 清掉在指定時間點之前就結束的區段，回傳刪除的筆數。
func (r *Repository) DeleteRangesEndingBefore(cutoff time.Time) (int64, error) {
	query := `
		DELETE FROM availability WHERE end_time < $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	result, err := r.dbpool.ExecContext(ctx, query, cutoff)
	if err != nil {
		return 0, err
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, err
	}

	return deleted, nil
}
