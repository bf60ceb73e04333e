package domain

import (
	"fmt"
	"time"
)

// JobClass 是玩家的職業，為一個封閉的列舉。
type JobClass string

const (
	JobDragonKnight JobClass = "龍騎"
	JobCrusader     JobClass = "十字"
	JobKnight       JobClass = "騎士"
	JobHermit       JobClass = "鏢賊"
	JobBandit       JobClass = "刀賊"
	JobHunter       JobClass = "弓手"
	JobCrossbowman  JobClass = "弩手"
	JobIceLightning JobClass = "冰雷"
	JobFirePoison   JobClass = "火毒"
	JobPriest       JobClass = "祭司"
	JobBrawler      JobClass = "打手"
	JobGunslinger   JobClass = "槍手"
)

var AllJobClasses = []JobClass{
	JobDragonKnight,
	JobCrusader,
	JobKnight,
	JobHermit,
	JobBandit,
	JobHunter,
	JobCrossbowman,
	JobIceLightning,
	JobFirePoison,
	JobPriest,
	JobBrawler,
	JobGunslinger,
}

// RoleBucket 是組隊規則所使用的角色分類，每個職業恰好屬於一個分類。
type RoleBucket int

const (
	BucketDragonKnight RoleBucket = iota
	BucketPriest
	BucketFirePoison
	BucketIceLightning
	BucketBallClear
	BucketOtherDPS
)

// RoleBucket 將職業歸入角色分類。
// 新增職業時這裡必須同步補上分支，未知職業會回傳錯誤而不是被默默算成一般輸出。
func (j JobClass) RoleBucket() (RoleBucket, error) {
	switch j {
	case JobDragonKnight:
		return BucketDragonKnight, nil
	case JobPriest:
		return BucketPriest, nil
	case JobFirePoison:
		return BucketFirePoison, nil
	case JobIceLightning:
		return BucketIceLightning, nil
	case JobBandit, JobHermit:
		// 能協助清球的職業
		return BucketBallClear, nil
	case JobCrusader, JobKnight, JobHunter, JobCrossbowman, JobBrawler, JobGunslinger:
		return BucketOtherDPS, nil
	default:
		return 0, fmt.Errorf("未知的職業: %s", string(j))
	}
}

type Player struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	JobClass  JobClass  `json:"jobClass"`
	Email     string    `json:"email,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
