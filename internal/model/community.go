package model

import "time"

type Community struct {
	ID          string `gorm:"primaryKey;size:36"`
	Name        string `gorm:"uniqueIndex;size:64;not null"`
	Description string `gorm:"type:text"`
	AvatarURL   string `gorm:"size:255"`
	CreatorID   string `gorm:"size:36;not null;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type CommunityMember struct {
	ID          uint64 `gorm:"primaryKey;autoIncrement"`
	CommunityID string `gorm:"size:36;not null;uniqueIndex:uk_community_user,priority:1"`
	UserID      string `gorm:"size:36;not null;uniqueIndex:uk_community_user,priority:2;index"`
	Role        int    `gorm:"not null;default:0"` // 0=member, 1=admin
	CreatedAt   time.Time
}
