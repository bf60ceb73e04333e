package timeslot

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artale-crew/boss-scheduler/backend/internal/domain"
)

func hourRange(start time.Time, hours int) domain.AvailabilityRange {
	return domain.AvailabilityRange{
		StartTime: start,
		EndTime:   start.Add(time.Duration(hours) * time.Hour),
	}
}

func TestExpand(t *testing.T) {
	base := time.Date(2024, 1, 4, 10, 0, 0, 0, time.UTC)

	t.Run("三小時的區段展開成三個時段", func(t *testing.T) {
		slots := Expand([]domain.AvailabilityRange{hourRange(base, 3)})

		require.Len(t, slots, 3)
		assert.Contains(t, slots, base)
		assert.Contains(t, slots, base.Add(time.Hour))
		assert.Contains(t, slots, base.Add(2*time.Hour))
	})

	t.Run("重疊的區段取聯集", func(t *testing.T) {
		slots := Expand([]domain.AvailabilityRange{
			hourRange(base, 3),
			hourRange(base.Add(2*time.Hour), 2),
		})

		assert.Len(t, slots, 4)
	})

	t.Run("沒有對齊整點的結尾，不完整的小時也算一個完整時段", func(t *testing.T) {
		slots := Expand([]domain.AvailabilityRange{{
			StartTime: base,
			EndTime:   base.Add(90 * time.Minute),
		}})

		require.Len(t, slots, 2)
		assert.Contains(t, slots, base)
		assert.Contains(t, slots, base.Add(time.Hour))
	})

	t.Run("空輸入得到空集合", func(t *testing.T) {
		assert.Empty(t, Expand(nil))
	})
}

func TestCompress(t *testing.T) {
	base := time.Date(2024, 1, 4, 10, 0, 0, 0, time.UTC)

	t.Run("連續的時段併成單一區段", func(t *testing.T) {
		slots := SlotSet{
			base:                    {},
			base.Add(time.Hour):     {},
			base.Add(2 * time.Hour): {},
		}

		ranges := Compress(slots)

		require.Len(t, ranges, 1)
		assert.Equal(t, base, ranges[0].StartTime)
		assert.Equal(t, base.Add(3*time.Hour), ranges[0].EndTime)
	})

	t.Run("出現空隙就另起新的區段", func(t *testing.T) {
		slots := SlotSet{
			base:                    {},
			base.Add(time.Hour):     {},
			base.Add(5 * time.Hour): {},
		}

		ranges := Compress(slots)

		require.Len(t, ranges, 2)
		assert.Equal(t, base, ranges[0].StartTime)
		assert.Equal(t, base.Add(2*time.Hour), ranges[0].EndTime)
		assert.Equal(t, base.Add(5*time.Hour), ranges[1].StartTime)
		assert.Equal(t, base.Add(6*time.Hour), ranges[1].EndTime)
	})

	t.Run("空集合得到空清單", func(t *testing.T) {
		assert.Empty(t, Compress(SlotSet{}))
	})
}

// 對齊整點且互不重疊的區段，壓縮展開的結果應該是原本區段的最小合併形式。
func TestCompressExpandRoundTrip(t *testing.T) {
	base := time.Date(2024, 1, 4, 10, 0, 0, 0, time.UTC)

	input := []domain.AvailabilityRange{
		hourRange(base, 2),
		hourRange(base.Add(2*time.Hour), 2), // 與上一段相鄰，應該被併起來
		hourRange(base.Add(10*time.Hour), 1),
	}

	ranges := Compress(Expand(input))

	require.Len(t, ranges, 2)
	assert.Equal(t, base, ranges[0].StartTime)
	assert.Equal(t, base.Add(4*time.Hour), ranges[0].EndTime)
	assert.Equal(t, base.Add(10*time.Hour), ranges[1].StartTime)
	assert.Equal(t, base.Add(11*time.Hour), ranges[1].EndTime)

	// 再展開一次應該得到一模一樣的時段集合
	assert.Equal(t, Expand(input), Expand(ranges))
}
