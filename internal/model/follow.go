package model

import "time"

const (
	FollowStatusPending  = "pending"
	FollowStatusAccepted = "accepted"
)

// Follow 关注边：pending 表示好友请求待确认
type Follow struct {
	ID          string `gorm:"primaryKey;size:36"`
	FollowerID  string `gorm:"size:36;not null;uniqueIndex:uk_follower_following,priority:1"`
	FollowingID string `gorm:"size:36;not null;uniqueIndex:uk_follower_following,priority:2;index"`
	Status      string `gorm:"size:16;not null;default:'pending'"`
	CreatedAt   time.Time

	Follower *User `gorm:"foreignKey:FollowerID"`
}

func (Follow) TableName() string { return "follows" }
