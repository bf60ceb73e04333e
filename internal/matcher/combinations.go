package matcher

import (
	"github.com/artale-crew/boss-scheduler/backend/internal/domain"
)

// Combinations 列舉 players 中所有 k 人的子集。
// 用遞迴的取 / 不取兩路展開，輸出順序完全由輸入順序決定。
// 組合數是 C(n, k)，這是針對個位數到十幾人名單的演算法，名單一大就不適用。
func Combinations(players []*domain.Player, k int) [][]*domain.Player {
	result := make([][]*domain.Player, 0)

	var walk func(prefix []*domain.Player, rest []*domain.Player, k int)
	walk = func(prefix []*domain.Player, rest []*domain.Player, k int) {
		if k == 0 {
			team := make([]*domain.Player, len(prefix))
			copy(team, prefix)
			result = append(result, team)
			return
		}
		if len(rest) == 0 {
			return
		}
		walk(append(prefix, rest[0]), rest[1:], k-1)
		walk(prefix, rest[1:], k)
	}
	walk(nil, players, k)

	return result
}
