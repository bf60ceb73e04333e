package timeslot

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetWeekBoundsAt(t *testing.T) {
	t.Run("週三查詢時，週期起點是上一個週四的 UTC 00:00", func(t *testing.T) {
		now := time.Date(2024, 1, 10, 15, 30, 0, 0, time.UTC) // 週三
		bounds := GetWeekBoundsAt(now, 0)

		assert.Equal(t, time.Date(2024, 1, 4, 0, 0, 0, 0, time.UTC), bounds.Start)
		assert.Equal(t, bounds.Start.AddDate(0, 0, 7).Add(-time.Millisecond), bounds.End)
	})

	t.Run("週四當天查詢時，週期起點就是當天的 UTC 00:00", func(t *testing.T) {
		now := time.Date(2024, 1, 4, 0, 30, 0, 0, time.UTC) // 週四
		bounds := GetWeekBoundsAt(now, 0)

		assert.Equal(t, time.Date(2024, 1, 4, 0, 0, 0, 0, time.UTC), bounds.Start)
	})

	t.Run("offsetWeeks 為 1 時往後平移整整七天", func(t *testing.T) {
		now := time.Date(2024, 1, 10, 15, 30, 0, 0, time.UTC)
		current := GetWeekBoundsAt(now, 0)
		next := GetWeekBoundsAt(now, 1)

		assert.Equal(t, current.Start.AddDate(0, 0, 7), next.Start)
		assert.Equal(t, current.End.AddDate(0, 0, 7), next.End)
	})

	t.Run("負的 offsetWeeks 也要算出一致的過去邊界", func(t *testing.T) {
		now := time.Date(2024, 1, 10, 15, 30, 0, 0, time.UTC)
		previous := GetWeekBoundsAt(now, -1)

		assert.Equal(t, time.Date(2023, 12, 28, 0, 0, 0, 0, time.UTC), previous.Start)
	})

	t.Run("週期寬度恆為七天", func(t *testing.T) {
		for offset := -2; offset <= 2; offset++ {
			bounds := GetWeekBoundsAt(time.Date(2024, 3, 2, 8, 0, 0, 0, time.UTC), offset)
			require.Equal(t, 7*24*time.Hour-time.Millisecond, bounds.End.Sub(bounds.Start))
		}
	})

	t.Run("標籤以 UTC+8 呈現兩端的日期", func(t *testing.T) {
		now := time.Date(2024, 1, 10, 15, 30, 0, 0, time.UTC)
		bounds := GetWeekBoundsAt(now, 0)

		// UTC 週四 00:00 是台北時間週四早上八點
		assert.Equal(t, "1/4(四) 08:00 ~ 1/11(四) 08:00", bounds.Label)
	})
}

func TestDisplaySlotLabel(t *testing.T) {
	slot := time.Date(2024, 1, 4, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, "1/4(四) 18:00", DisplaySlotLabel(slot))
}
