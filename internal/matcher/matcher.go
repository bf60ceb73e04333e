package matcher

import (
	"sort"
	"time"

	"github.com/artale-crew/boss-scheduler/backend/internal/domain"
	"github.com/artale-crew/boss-scheduler/backend/internal/timeslot"
)

// 每個時段由大到小逐層嘗試的隊伍規模，某一層找到隊伍就不再往更小的規模找。
var teamSizeCascade = []int{6, 5, 4, 3}

// SlotPlayers 是各時段的可用玩家名單。
type SlotPlayers map[time.Time][]*domain.Player

// BuildSlotPlayers 把每位玩家的空閒區段展開成各時段的可用玩家名單。
// 同一玩家多個區段取聯集，不會在同一時段重複出現；
// 每個時段的名單固定以玩家 ID 遞增排序，讓後續的組合列舉具有確定性。
func BuildSlotPlayers(players []*domain.Player, ranges []*domain.AvailabilityRange) SlotPlayers {
	rangesByPlayer := make(map[int64][]domain.AvailabilityRange)
	for _, r := range ranges {
		rangesByPlayer[r.PlayerID] = append(rangesByPlayer[r.PlayerID], *r)
	}

	slots := make(SlotPlayers)
	for _, p := range players {
		for t := range timeslot.Expand(rangesByPlayer[p.ID]) {
			slots[t] = append(slots[t], p)
		}
	}

	for _, list := range slots {
		sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	}

	return slots
}

// Match 對每個有人的時段獨立搜尋可以成行的隊伍，結果依時段開始時間遞增排序。
// 哪一個時段都湊不出隊伍時回傳空清單，而不是錯誤。
func Match(slots SlotPlayers) ([]domain.SlotMatches, error) {
	results := make([]domain.SlotMatches, 0, len(slots))

	for slot, players := range slots {
		teams, err := matchSlot(players)
		if err != nil {
			return nil, err
		}
		if len(teams) == 0 {
			// 湊不出任何隊伍的時段直接省略
			continue
		}
		results = append(results, domain.SlotMatches{TimeSlot: slot, Teams: teams})
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].TimeSlot.Before(results[j].TimeSlot)
	})

	return results, nil
}

func matchSlot(players []*domain.Player) ([]domain.Team, error) {
	for _, size := range teamSizeCascade {
		if len(players) < size {
			continue
		}

		teams := make([]domain.Team, 0)
		for _, combo := range Combinations(players, size) {
			var ok bool
			if size == 6 {
				var err error
				ok, err = ValidateFullTeam(combo)
				if err != nil {
					return nil, err
				}
			} else {
				ok = ValidatePartialTeam(combo)
			}

			if ok {
				teams = append(teams, domain.Team{Size: size, Members: combo})
			}
		}

		if len(teams) > 0 {
			return teams, nil
		}
	}

	return nil, nil
}
