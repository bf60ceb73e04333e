package handler

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/artale-crew/boss-scheduler/backend/internal/domain"
	"github.com/artale-crew/boss-scheduler/backend/internal/timeslot"
)

// CleanupAvailability 清掉在本週期開始之前就結束的空閒時間，
// 這些資料已經不可能再被任何查詢用到。
func (h *Handler) CleanupAvailability(w http.ResponseWriter, r *http.Request) {
	bounds := timeslot.GetWeekBounds(0)

	deleted, err := h.repository.DeleteRangesEndingBefore(bounds.Start)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, fmt.Sprintf("已清理 %d 筆過期的空閒時間", deleted), map[string]any{
		"deleted":    deleted,
		"cutoffTime": bounds.Start,
	})
}

// SendMatchDigest 計算本週期的配對結果，寄摘要信給所有留了信箱的玩家。
func (h *Handler) SendMatchDigest(w http.ResponseWriter, r *http.Request) {
	bounds := timeslot.GetWeekBounds(0)

	result, err := h.computeMatchResult(bounds)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	if len(result.Matches) == 0 {
		h.successResponse(w, r, "這個週期沒有可以成行的隊伍，未寄送摘要", nil)
		return
	}

	players, err := h.repository.GetPlayersWithEmail()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	if len(players) == 0 {
		h.successResponse(w, r, "沒有玩家留下信箱，未寄送摘要", nil)
		return
	}

	slots := buildDigestSlots(result)

	for _, player := range players {
		mailMessage := domain.MailMessage{
			Type: "match_digest",
			To:   player.Email,
			Data: domain.MatchDigestMailData{
				PlayerName: player.Name,
				WeekLabel:  result.WeekLabel,
				Slots:      slots,
			},
		}
		if err := h.publishMailMessage(mailMessage); err != nil {
			h.internalServerError(w, r, err)
			return
		}
	}

	h.successResponse(w, r, fmt.Sprintf("已寄送配對摘要給 %d 位玩家", len(players)), nil)
}

func buildDigestSlots(result *domain.MatchResult) []domain.DigestSlotData {
	slots := make([]domain.DigestSlotData, 0, len(result.Matches))

	for _, slot := range result.Matches {
		teams := make([]string, 0, len(slot.Teams))
		for _, team := range slot.Teams {
			names := make([]string, 0, len(team.Members))
			for _, member := range team.Members {
				names = append(names, fmt.Sprintf("%s(%s)", member.Name, member.JobClass))
			}
			teams = append(teams, fmt.Sprintf("%d人：%s", team.Size, strings.Join(names, "、")))
		}

		slots = append(slots, domain.DigestSlotData{
			TimeSlot: timeslot.DisplaySlotLabel(slot.TimeSlot),
			Teams:    teams,
		})
	}

	return slots
}
