package matcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artale-crew/boss-scheduler/backend/internal/domain"
)

func TestCountRoles(t *testing.T) {
	t.Run("每位玩家恰好落入一個分類", func(t *testing.T) {
		team := makePlayers(
			domain.JobDragonKnight, domain.JobPriest, domain.JobFirePoison,
			domain.JobIceLightning, domain.JobBandit, domain.JobHunter,
		)

		counts, err := CountRoles(team)

		require.NoError(t, err)
		assert.Equal(t, RoleCounts{
			DragonKnight: 1,
			Priest:       1,
			FirePoison:   1,
			IceLightning: 1,
			BallClear:    1,
			OtherDPS:     1,
		}, counts)
	})

	t.Run("鏢賊與刀賊都算清球支援", func(t *testing.T) {
		counts, err := CountRoles(makePlayers(domain.JobHermit, domain.JobBandit))

		require.NoError(t, err)
		assert.Equal(t, 2, counts.BallClear)
	})

	t.Run("列舉之外的職業回報錯誤而不是默默計入", func(t *testing.T) {
		team := []*domain.Player{{ID: 1, Name: "??", JobClass: domain.JobClass("龍魔導士")}}

		_, err := CountRoles(team)

		assert.Error(t, err)
	})
}

func TestValidateFullTeam(t *testing.T) {
	t.Run("人數不是六人直接拒絕", func(t *testing.T) {
		team := makePlayers(
			domain.JobDragonKnight, domain.JobFirePoison, domain.JobIceLightning,
			domain.JobBandit, domain.JobHunter,
		)

		ok, err := ValidateFullTeam(team)

		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("規則一：龍騎加雙法加三輸出", func(t *testing.T) {
		team := makePlayers(
			domain.JobDragonKnight, domain.JobFirePoison, domain.JobIceLightning,
			domain.JobBandit, domain.JobHunter, domain.JobGunslinger,
		)

		ok, err := ValidateFullTeam(team)

		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("規則二：龍騎加單法加四輸出", func(t *testing.T) {
		team := makePlayers(
			domain.JobDragonKnight, domain.JobIceLightning, domain.JobBandit,
			domain.JobHunter, domain.JobCrossbowman, domain.JobBrawler,
		)

		ok, err := ValidateFullTeam(team)

		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("規則三：雙法加四輸出", func(t *testing.T) {
		team := makePlayers(
			domain.JobFirePoison, domain.JobIceLightning, domain.JobBandit,
			domain.JobHermit, domain.JobHunter, domain.JobGunslinger,
		)

		ok, err := ValidateFullTeam(team)

		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("規則五：祭司加單法加四輸出", func(t *testing.T) {
		team := makePlayers(
			domain.JobPriest, domain.JobFirePoison, domain.JobBandit,
			domain.JobHunter, domain.JobCrossbowman, domain.JobBrawler,
		)

		ok, err := ValidateFullTeam(team)

		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("規則六：只要有法師或祭司在場的六人組合都收", func(t *testing.T) {
		// 龍騎加祭司不符合規則一到五的任何一條，由規則六兜底
		team := makePlayers(
			domain.JobDragonKnight, domain.JobPriest, domain.JobBandit,
			domain.JobHunter, domain.JobCrossbowman, domain.JobBrawler,
		)

		ok, err := ValidateFullTeam(team)

		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("沒有法師也沒有祭司的隊伍拒絕", func(t *testing.T) {
		team := makePlayers(
			domain.JobDragonKnight, domain.JobCrusader, domain.JobKnight,
			domain.JobHunter, domain.JobCrossbowman, domain.JobBrawler,
		)

		ok, err := ValidateFullTeam(team)

		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("六個純輸出拒絕", func(t *testing.T) {
		team := makePlayers(
			domain.JobCrusader, domain.JobKnight, domain.JobHunter,
			domain.JobCrossbowman, domain.JobBrawler, domain.JobGunslinger,
		)

		ok, err := ValidateFullTeam(team)

		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestValidatePartialTeam(t *testing.T) {
	t.Run("三到五人一律接受，不看職業", func(t *testing.T) {
		for size := 3; size <= 5; size++ {
			team := makePlayers(domain.JobCrusader, domain.JobKnight, domain.JobHunter,
				domain.JobCrossbowman, domain.JobBrawler)[:size]
			assert.True(t, ValidatePartialTeam(team), "size %d", size)
		}
	})

	t.Run("兩人或六人不是小隊", func(t *testing.T) {
		players := makePlayers(
			domain.JobCrusader, domain.JobKnight, domain.JobHunter,
			domain.JobCrossbowman, domain.JobBrawler, domain.JobGunslinger,
		)

		assert.False(t, ValidatePartialTeam(players[:2]))
		assert.False(t, ValidatePartialTeam(players))
	})
}
