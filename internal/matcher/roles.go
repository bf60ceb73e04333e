package matcher

import (
	"github.com/artale-crew/boss-scheduler/backend/internal/domain"
)

// RoleCounts 是一個隊伍的角色分類統計，每位玩家恰好落入一個欄位。
type RoleCounts struct {
	DragonKnight int
	Priest       int
	FirePoison   int
	IceLightning int
	BallClear    int
	OtherDPS     int
}

// CountRoles 統計隊伍中各角色分類的人數。
// 職業列舉是封閉的，理論上不會有無法歸類的玩家；真的遇到就回傳錯誤，
// 不能默默算錯。
func CountRoles(team []*domain.Player) (RoleCounts, error) {
	var counts RoleCounts

	for _, p := range team {
		bucket, err := p.JobClass.RoleBucket()
		if err != nil {
			return RoleCounts{}, err
		}

		switch bucket {
		case domain.BucketDragonKnight:
			counts.DragonKnight++
		case domain.BucketPriest:
			counts.Priest++
		case domain.BucketFirePoison:
			counts.FirePoison++
		case domain.BucketIceLightning:
			counts.IceLightning++
		case domain.BucketBallClear:
			counts.BallClear++
		case domain.BucketOtherDPS:
			counts.OtherDPS++
		}
	}

	return counts, nil
}
