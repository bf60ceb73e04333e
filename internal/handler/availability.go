package handler

import (
	"database/sql"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/artale-crew/boss-scheduler/backend/internal/domain"
	"github.com/artale-crew/boss-scheduler/backend/internal/timeslot"
)

// parseWeekOffset 解析週期選項，只接受 current（本週期）與 next（下一個週期）。
func parseWeekOffset(week string) (int, error) {
	switch week {
	case "", "current":
		return 0, nil
	case "next":
		return 1, nil
	default:
		return 0, errors.New("無效的週期選項，只接受 current 或 next")
	}
}

// GetAvailability 查詢週期內的空閒時間；帶 userId 時只查單一玩家，
// 否則回傳附上玩家資訊的全體總覽。
func (h *Handler) GetAvailability(w http.ResponseWriter, r *http.Request) {
	offsetWeeks, err := parseWeekOffset(r.URL.Query().Get("week"))
	if err != nil {
		h.errorResponse(w, r, err.Error())
		return
	}

	bounds := timeslot.GetWeekBounds(offsetWeeks)

	if userIDParam := r.URL.Query().Get("userId"); userIDParam != "" {
		userID, err := strconv.ParseInt(userIDParam, 10, 64)
		if err != nil {
			h.errorResponse(w, r, "玩家ID無效")
			return
		}

		ranges, err := h.repository.GetPlayerRangesInWindow(userID, bounds.Start, bounds.End)
		if err != nil {
			h.internalServerError(w, r, err)
			return
		}

		h.successResponse(w, r, "取得空閒時間成功", ranges)
		return
	}

	availability, err := h.repository.GetRangesWithPlayersInWindow(bounds.Start, bounds.End)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "取得空閒時間成功", availability)
}

// ReplaceAvailability 汰換玩家在指定週期內的空閒時間。
// 請求帶的是玩家勾選的小時時段，這裡先壓縮成最少數量的連續區段再寫入，
// 寫入流程整筆包在交易中。
func (h *Handler) ReplaceAvailability(w http.ResponseWriter, r *http.Request) {
	var req struct {
		PlayerID int64       `json:"playerID" validate:"required"`
		Week     string      `json:"week" validate:"required,oneof=current next"`
		Slots    []time.Time `json:"slots"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	// 一般玩家只能修改自己的空閒時間，管理員不受限
	sub := r.Context().Value(SubCtxKey).(string)
	isAdmin := r.Context().Value(AdminCtxKey).(bool)
	if !isAdmin && sub != strconv.FormatInt(req.PlayerID, 10) {
		h.errorResponse(w, r, "只能修改自己的空閒時間")
		return
	}

	if _, err := h.repository.GetPlayerByID(req.PlayerID); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "玩家不存在")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	offsetWeeks, err := parseWeekOffset(req.Week)
	if err != nil {
		h.errorResponse(w, r, err.Error())
		return
	}
	bounds := timeslot.GetWeekBounds(offsetWeeks)

	slots := make(timeslot.SlotSet, len(req.Slots))
	for _, t := range req.Slots {
		slots[t.UTC()] = struct{}{}
	}
	ranges := timeslot.Compress(slots)

	if err := h.repository.ReplacePlayerRanges(req.PlayerID, bounds.Start, bounds.End, ranges); err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidTimeRange):
			h.errorResponse(w, r, err.Error())
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	// 空閒時間變動後，這個週期快取的配對結果就失效了
	h.invalidateMatchCache(bounds)

	h.successResponse(w, r, "空閒時間已儲存", nil)
}
