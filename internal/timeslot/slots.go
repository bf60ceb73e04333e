package timeslot

import (
	"sort"
	"time"

	"github.com/artale-crew/boss-scheduler/backend/internal/domain"
)

// SlotSet 是一組以開始時間為鍵的小時時段，鍵 h 代表區間 [h, h+1h)。
type SlotSet map[time.Time]struct{}

// Expand 把空閒區段展開成小時時段的集合。
// 從每個區段的開始時間逐小時推進直到結束時間為止；若區段沒有對齊整點，
// 結尾的不完整小時仍然會被算成一個完整時段，這是對來源資料的容忍而不是錯誤。
func Expand(ranges []domain.AvailabilityRange) SlotSet {
	slots := make(SlotSet)

	for _, r := range ranges {
		for t := r.StartTime.UTC(); t.Before(r.EndTime); t = t.Add(time.Hour) {
			slots[t] = struct{}{}
		}
	}

	return slots
}

// Compress 把小時時段的集合合併成最少數量的連續區段，是 Expand 的反運算。
// 時段先依開始時間排序，相鄰恰好差一小時的時段併成同一個區段，
// 一旦出現空隙就另起新的區段。
func Compress(slots SlotSet) []domain.AvailabilityRange {
	keys := make([]time.Time, 0, len(slots))
	for t := range slots {
		keys = append(keys, t.UTC())
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].Before(keys[j]) })

	ranges := make([]domain.AvailabilityRange, 0)
	for _, t := range keys {
		if n := len(ranges); n > 0 && ranges[n-1].EndTime.Equal(t) {
			ranges[n-1].EndTime = t.Add(time.Hour)
			continue
		}
		ranges = append(ranges, domain.AvailabilityRange{
			StartTime: t,
			EndTime:   t.Add(time.Hour),
		})
	}

	return ranges
}
