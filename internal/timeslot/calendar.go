package timeslot

import (
	"fmt"
	"time"
)

// 一個週期從 UTC 時間週四 00:00 開始，也就是遊戲每週重置的時間點（台北時間週四早上八點）。
const cycleAnchorWeekday = time.Thursday

// 顯示用的固定時區，與查詢者本地時區無關。
var displayZone = time.FixedZone("UTC+8", 8*60*60)

var weekdaySymbol = [...]string{"日", "一", "二", "三", "四", "五", "六"}

// WeekBounds 是一個週期的邊界，Start 與 End 都是絕對時間。
// End 固定為 Start 加七天再減一毫秒，因此區間寬度恆為 7×24 小時。
type WeekBounds struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
	Label string    `json:"label"`
}

// GetWeekBounds 計算距今最近的週期邊界，offsetWeeks 為要往後平移的週數
// （0 為本週期，1 為下一個週期）。負數或更大的值一樣會算出對應的邊界。
func GetWeekBounds(offsetWeeks int) WeekBounds {
	return GetWeekBoundsAt(time.Now(), offsetWeeks)
}

// GetWeekBoundsAt 以指定的時間點作為「現在」來計算週期邊界。
func GetWeekBoundsAt(now time.Time, offsetWeeks int) WeekBounds {
	now = now.UTC()

	daysSinceAnchor := (int(now.Weekday()) - int(cycleAnchorWeekday) + 7) % 7

	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).
		AddDate(0, 0, -daysSinceAnchor+offsetWeeks*7)
	end := start.AddDate(0, 0, 7).Add(-time.Millisecond)

	return WeekBounds{
		Start: start,
		End:   end,
		Label: fmt.Sprintf("%s 08:00 ~ %s 08:00", displayDatePart(start), displayDatePart(end)),
	}
}

func displayDatePart(t time.Time) string {
	lt := t.In(displayZone)
	return fmt.Sprintf("%d/%d(%s)", int(lt.Month()), lt.Day(), weekdaySymbol[int(lt.Weekday())])
}

// DisplaySlotLabel 以固定的顯示時區呈現一個小時時段的開始時間。
func DisplaySlotLabel(t time.Time) string {
	lt := t.In(displayZone)
	return fmt.Sprintf("%s %02d:00", displayDatePart(t), lt.Hour())
}
