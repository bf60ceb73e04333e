package matcher

import (
	"github.com/artale-crew/boss-scheduler/backend/internal/domain"
)

// ValidateFullTeam 判斷一個六人隊伍的職業組成是否可以接受。
// 六條規則彼此獨立，符合任何一條即接受；人數不是六人直接拒絕。
func ValidateFullTeam(team []*domain.Player) (bool, error) {
	if len(team) != 6 {
		return false, nil
	}

	counts, err := CountRoles(team)
	if err != nil {
		return false, err
	}

	numMages := counts.FirePoison + counts.IceLightning
	hasDualMage := counts.FirePoison >= 1 && counts.IceLightning >= 1

	// 規則一：龍騎(1) + 雙法(2) + 3 輸出
	if counts.DragonKnight == 1 && hasDualMage && numMages == 2 && counts.Priest == 0 {
		if counts.DragonKnight+numMages+counts.BallClear+counts.OtherDPS == 6 {
			return true, nil
		}
	}

	// 規則二：龍騎(1) + 單法(1) + 4 輸出（最好有能協助清球的職業）
	if counts.DragonKnight == 1 && numMages == 1 && counts.Priest == 0 {
		if counts.DragonKnight+numMages+counts.BallClear+counts.OtherDPS == 6 {
			return true, nil
		}
	}

	// 規則三：雙法(2) + 4 輸出
	if hasDualMage && numMages == 2 && counts.DragonKnight == 0 && counts.Priest == 0 {
		if numMages+counts.BallClear+counts.OtherDPS == 6 {
			return true, nil
		}
	}

	// 規則四：單法(1) + 5 輸出（最好有能協助清球的職業）
	if numMages == 1 && counts.DragonKnight == 0 && counts.Priest == 0 {
		if numMages+counts.BallClear+counts.OtherDPS == 6 {
			return true, nil
		}
	}

	// 規則五：祭司(1) + 單法(1) + 4 輸出（最好有能協助清球的職業）
	if counts.Priest == 1 && numMages == 1 && counts.DragonKnight == 0 {
		if counts.Priest+numMages+counts.BallClear+counts.OtherDPS == 6 {
			return true, nil
		}
	}

	// 規則六：其他可能的六人組合，至少要有一位法師或祭司
	if numMages >= 1 || counts.Priest >= 1 {
		if counts.DragonKnight+counts.Priest+numMages+counts.BallClear+counts.OtherDPS == 6 {
			return true, nil
		}
	}

	return false, nil
}

// ValidatePartialTeam 判斷三到五人的小隊；小隊不檢查職業組成。
func ValidatePartialTeam(team []*domain.Player) bool {
	return len(team) >= 3 && len(team) <= 5
}
