package domain

import "time"

// Team 是某個時段內可以成行的一組玩家。
// Size 會跟著成員一起回傳，讓前端能夠區分四人小隊和完整的六人隊。
type Team struct {
	Size    int       `json:"size"`
	Members []*Player `json:"members"`
}

// SlotMatches 是單一時段的配對結果。
type SlotMatches struct {
	TimeSlot time.Time `json:"timeSlot"`
	Teams    []Team    `json:"teams"`
}

// MatchResult 是一個週期內所有時段的配對結果，依時段開始時間遞增排序。
// 只在查詢時計算，不落地保存。
type MatchResult struct {
	WeekLabel string        `json:"weekLabel"`
	Matches   []SlotMatches `json:"matches"`
}
