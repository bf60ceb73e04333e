package matcher

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artale-crew/boss-scheduler/backend/internal/domain"
)

var slot10 = time.Date(2024, 1, 4, 10, 0, 0, 0, time.UTC)

func TestMatch(t *testing.T) {
	t.Run("六位職業齊全的玩家湊出恰好一隊六人隊", func(t *testing.T) {
		players := makePlayers(
			domain.JobDragonKnight, domain.JobFirePoison, domain.JobIceLightning,
			domain.JobBandit, domain.JobHunter, domain.JobGunslinger,
		)

		results, err := Match(SlotPlayers{slot10: players})

		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, slot10, results[0].TimeSlot)
		require.Len(t, results[0].Teams, 1)
		assert.Equal(t, 6, results[0].Teams[0].Size)
		assert.Len(t, results[0].Teams[0].Members, 6)
	})

	t.Run("六人湊不出合規隊伍時退而求其次找五人小隊", func(t *testing.T) {
		// 六個純輸出不符合任何六人規則，五人小隊則不檢查職業
		players := makePlayers(
			domain.JobCrusader, domain.JobKnight, domain.JobHunter,
			domain.JobCrossbowman, domain.JobBrawler, domain.JobGunslinger,
		)

		results, err := Match(SlotPlayers{slot10: players})

		require.NoError(t, err)
		require.Len(t, results, 1)
		// C(6,5) = 6 種五人小隊全數保留
		require.Len(t, results[0].Teams, 6)
		for _, team := range results[0].Teams {
			assert.Equal(t, 5, team.Size)
		}
	})

	t.Run("只有四人時回傳唯一的四人小隊", func(t *testing.T) {
		players := makePlayers(
			domain.JobDragonKnight, domain.JobKnight, domain.JobBrawler, domain.JobHunter,
		)

		results, err := Match(SlotPlayers{slot10: players})

		require.NoError(t, err)
		require.Len(t, results, 1)
		require.Len(t, results[0].Teams, 1)
		assert.Equal(t, 4, results[0].Teams[0].Size)
		assert.Len(t, results[0].Teams[0].Members, 4)
	})

	t.Run("不足三人的時段整個省略", func(t *testing.T) {
		players := makePlayers(domain.JobDragonKnight, domain.JobPriest)

		results, err := Match(SlotPlayers{slot10: players})

		require.NoError(t, err)
		assert.Empty(t, results)
	})

	t.Run("結果依時段開始時間遞增排序", func(t *testing.T) {
		players := makePlayers(domain.JobPriest, domain.JobKnight, domain.JobHunter)

		slots := SlotPlayers{
			slot10.Add(5 * time.Hour): players,
			slot10:                    players,
			slot10.Add(2 * time.Hour): players,
		}

		results, err := Match(slots)

		require.NoError(t, err)
		require.Len(t, results, 3)
		assert.Equal(t, slot10, results[0].TimeSlot)
		assert.Equal(t, slot10.Add(2*time.Hour), results[1].TimeSlot)
		assert.Equal(t, slot10.Add(5*time.Hour), results[2].TimeSlot)
	})
}

func TestBuildSlotPlayers(t *testing.T) {
	players := makePlayers(domain.JobDragonKnight, domain.JobPriest)

	t.Run("玩家的空閒區段展開成各時段的名單", func(t *testing.T) {
		ranges := []*domain.AvailabilityRange{
			{PlayerID: 1, StartTime: slot10, EndTime: slot10.Add(2 * time.Hour)},
			{PlayerID: 2, StartTime: slot10.Add(time.Hour), EndTime: slot10.Add(2 * time.Hour)},
		}

		slots := BuildSlotPlayers(players, ranges)

		require.Len(t, slots, 2)
		assert.Len(t, slots[slot10], 1)
		assert.Len(t, slots[slot10.Add(time.Hour)], 2)
	})

	t.Run("同一玩家重疊的區段不會在時段內重複出現", func(t *testing.T) {
		ranges := []*domain.AvailabilityRange{
			{PlayerID: 1, StartTime: slot10, EndTime: slot10.Add(2 * time.Hour)},
			{PlayerID: 1, StartTime: slot10.Add(time.Hour), EndTime: slot10.Add(3 * time.Hour)},
		}

		slots := BuildSlotPlayers(players, ranges)

		for slot, list := range slots {
			assert.Len(t, list, 1, "slot %v", slot)
		}
	})

	t.Run("查無玩家的區段直接忽略", func(t *testing.T) {
		ranges := []*domain.AvailabilityRange{
			{PlayerID: 99, StartTime: slot10, EndTime: slot10.Add(time.Hour)},
		}

		slots := BuildSlotPlayers(players, ranges)

		assert.Empty(t, slots)
	})

	t.Run("各時段的名單固定以玩家 ID 遞增排序", func(t *testing.T) {
		ranges := []*domain.AvailabilityRange{
			{PlayerID: 2, StartTime: slot10, EndTime: slot10.Add(time.Hour)},
			{PlayerID: 1, StartTime: slot10, EndTime: slot10.Add(time.Hour)},
		}

		slots := BuildSlotPlayers(players, ranges)

		require.Len(t, slots[slot10], 2)
		assert.Equal(t, int64(1), slots[slot10][0].ID)
		assert.Equal(t, int64(2), slots[slot10][1].ID)
	})
}
