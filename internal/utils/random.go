package utils

import (
	"math/rand"
	"time"

	"github.com/mozillazg/go-pinyin"

	"github.com/artale-crew/boss-scheduler/backend/internal/domain"
	"github.com/artale-crew/boss-scheduler/backend/internal/timeslot"
)

var nicknamePrefixes = []string{
	"小", "阿", "老", "大", "狂", "暗", "影", "銀", "黑", "白",
}
var nicknameCharacters = []string{
	"楓", "雪", "風", "月", "星", "夜", "刀", "箭", "火", "冰",
	"雷", "霜", "嵐", "羽", "狼", "貓", "龍", "鷹", "葉", "霧",
}

// GenerateRandomPlayerName 產生遊戲風格的隨機暱稱。
func GenerateRandomPlayerName() string {
	name := nicknamePrefixes[rand.Intn(len(nicknamePrefixes))]
	nameLength := rand.Intn(2) + 1

	for i := 0; i < nameLength; i++ {
		name += nicknameCharacters[rand.Intn(len(nicknameCharacters))]
	}
	return name
}

var digits = "0123456789"

// GenerateEmailFromName 把中文暱稱轉成拼音再加上幾位數字，當作信箱帳號。
func GenerateEmailFromName(name string, emailDomainName string) string {
	pinyinArray := pinyin.LazyConvert(name, nil)
	local := ""

	for _, p := range pinyinArray {
		local += p
	}

	digitsLength := rand.Intn(3) + 1
	for i := 0; i < digitsLength; i++ {
		local += string(digits[rand.Intn(len(digits))])
	}

	return local + "@" + emailDomainName
}

func GenerateRandomJobClass() domain.JobClass {
	return domain.AllJobClasses[rand.Intn(len(domain.AllJobClasses))]
}

// GenerateRandomPlayer 產生一位隨機玩家，約一半的玩家會留下信箱。
func GenerateRandomPlayer(emailDomainName string) *domain.Player {
	name := GenerateRandomPlayerName()

	player := &domain.Player{
		Name:     name,
		JobClass: GenerateRandomJobClass(),
	}

	if rand.Intn(2) == 0 {
		player.Email = GenerateEmailFromName(name, emailDomainName)
	}

	return player
}

// GenerateRandomSlotSet 在週期內隨機挑幾段連續的小時時段，模擬玩家勾選的空閒時間。
func GenerateRandomSlotSet(bounds timeslot.WeekBounds) timeslot.SlotSet {
	slots := make(timeslot.SlotSet)

	segments := rand.Intn(3) + 1
	for i := 0; i < segments; i++ {
		startHour := rand.Intn(7 * 24)
		length := rand.Intn(4) + 1

		for j := 0; j < length; j++ {
			t := bounds.Start.Add(time.Duration(startHour+j) * time.Hour)
			if t.After(bounds.End) {
				break
			}
			slots[t] = struct{}{}
		}
	}

	return slots
}
