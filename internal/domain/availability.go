package domain

import (
	"errors"
	"time"
)

var ErrInvalidTimeRange = errors.New("時間區段的開始時間必須早於結束時間")

// AvailabilityRange 是玩家的一段空閒時間，半開區間 [StartTime, EndTime)，
// 以絕對時間（UTC）表示，原則上對齊整點。
type AvailabilityRange struct {
	ID        int64     `json:"id"`
	PlayerID  int64     `json:"playerID"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
	CreatedAt time.Time `json:"createdAt"`
}

// PlayerAvailability 是附帶玩家資訊的空閒區段，給總覽頁面使用。
type PlayerAvailability struct {
	AvailabilityRange
	PlayerName string   `json:"playerName"`
	JobClass   JobClass `json:"jobClass"`
}
