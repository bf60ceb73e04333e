package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/artale-crew/boss-scheduler/backend/internal/domain"
	"github.com/artale-crew/boss-scheduler/backend/internal/matcher"
	"github.com/artale-crew/boss-scheduler/backend/internal/timeslot"
)

func matchCacheKey(bounds timeslot.WeekBounds) string {
	return fmt.Sprintf("match_result:%d", bounds.Start.Unix())
}

// GetMatches 查詢指定週期內可以成行的隊伍。
// 結果以週期起點為鍵快取在 redis 中，空閒時間一有變動就作廢。
func (h *Handler) GetMatches(w http.ResponseWriter, r *http.Request) {
	offsetWeeks, err := parseWeekOffset(r.URL.Query().Get("week"))
	if err != nil {
		h.errorResponse(w, r, err.Error())
		return
	}

	bounds := timeslot.GetWeekBounds(offsetWeeks)

	if result, ok := h.getCachedMatchResult(bounds); ok {
		h.successResponse(w, r, matchResultMessage(result), result)
		return
	}

	result, err := h.computeMatchResult(bounds)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.cacheMatchResult(bounds, result)

	h.successResponse(w, r, matchResultMessage(result), result)
}

func matchResultMessage(result *domain.MatchResult) string {
	if len(result.Matches) == 0 {
		return "這個週期沒有可以成行的隊伍"
	}
	return "查詢配對結果成功"
}

// computeMatchResult 把週期內的玩家名單與空閒區段餵給配對核心。
// 配對本身是純記憶體計算，資料撈齊之後不再碰資料庫。
func (h *Handler) computeMatchResult(bounds timeslot.WeekBounds) (*domain.MatchResult, error) {
	players, err := h.repository.GetAllPlayers()
	if err != nil {
		return nil, err
	}

	ranges, err := h.repository.GetRangesInWindow(bounds.Start, bounds.End)
	if err != nil {
		return nil, err
	}

	slots := matcher.BuildSlotPlayers(players, ranges)
	matches, err := matcher.Match(slots)
	if err != nil {
		return nil, err
	}

	return &domain.MatchResult{
		WeekLabel: bounds.Label,
		Matches:   matches,
	}, nil
}

func (h *Handler) getCachedMatchResult(bounds timeslot.WeekBounds) (*domain.MatchResult, bool) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(h.config.Redis.OperationTimeout)*time.Second)
	defer cancel()

	val, err := h.redisClient.Get(ctx, matchCacheKey(bounds)).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			// 快取掛了就直接重算，不讓查詢失敗
			slog.Warn("讀取配對結果快取失敗", "error", err)
		}
		return nil, false
	}

	result := &domain.MatchResult{}
	if err := json.Unmarshal([]byte(val), result); err != nil {
		slog.Warn("配對結果快取內容無法解析", "error", err)
		return nil, false
	}

	return result, true
}

func (h *Handler) cacheMatchResult(bounds timeslot.WeekBounds, result *domain.MatchResult) {
	data, err := json.Marshal(result)
	if err != nil {
		slog.Warn("配對結果無法序列化", "error", err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(h.config.Redis.OperationTimeout)*time.Second)
	defer cancel()

	ttl := time.Duration(h.config.Redis.MatchCacheTTL) * time.Second
	if err := h.redisClient.Set(ctx, matchCacheKey(bounds), data, ttl).Err(); err != nil {
		slog.Warn("寫入配對結果快取失敗", "error", err)
	}
}

func (h *Handler) invalidateMatchCache(bounds timeslot.WeekBounds) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(h.config.Redis.OperationTimeout)*time.Second)
	defer cancel()

	if err := h.redisClient.Del(ctx, matchCacheKey(bounds)).Err(); err != nil {
		slog.Warn("作廢配對結果快取失敗", "error", err)
	}
}
