package model

import "time"

type User struct {
	ID                 string `gorm:"primaryKey;size:36"`
	Username           string `gorm:"uniqueIndex;size:32;not null"`
	Password           string `gorm:"size:255;not null"`
	Email              string `gorm:"uniqueIndex;size:64;not null"`
	Role               int    `gorm:"default:0"` // 0=member, 1=admin
	DisplayName        string `gorm:"size:64"`
	Bio                string `gorm:"type:text"`
	AvatarURL          string `gorm:"size:255"`
	City               string `gorm:"size:64"` // 自由文本，比较时忽略大小写
	OnboardingComplete bool   `gorm:"default:false"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
