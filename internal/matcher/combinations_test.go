package matcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artale-crew/boss-scheduler/backend/internal/domain"
)

func makePlayers(jobs ...domain.JobClass) []*domain.Player {
	players := make([]*domain.Player, len(jobs))
	for i, job := range jobs {
		players[i] = &domain.Player{
			ID:       int64(i + 1),
			Name:     string(job),
			JobClass: job,
		}
	}
	return players
}

func TestCombinations(t *testing.T) {
	players := makePlayers(
		domain.JobDragonKnight, domain.JobFirePoison, domain.JobIceLightning,
		domain.JobBandit, domain.JobHunter, domain.JobGunslinger,
	)

	t.Run("六取六只有一種組合", func(t *testing.T) {
		combos := Combinations(players, 6)

		require.Len(t, combos, 1)
		assert.Equal(t, players, combos[0])
	})

	t.Run("六取三共有二十種組合", func(t *testing.T) {
		combos := Combinations(players, 3)

		assert.Len(t, combos, 20)
	})

	t.Run("輸出順序由輸入順序決定", func(t *testing.T) {
		first := Combinations(players, 3)
		second := Combinations(players, 3)

		assert.Equal(t, first, second)
		// 第一個組合永遠是輸入的前三位
		assert.Equal(t, players[:3], first[0])
	})

	t.Run("人數不足時沒有任何組合", func(t *testing.T) {
		assert.Empty(t, Combinations(players[:2], 3))
	})
}
