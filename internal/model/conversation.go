package model

import "time"

// Conversation 一对用户的会话。参与者按字典序归一化存储，
// 唯一索引保证同一对用户只有一条会话。
type Conversation struct {
	ID             string `gorm:"primaryKey;size:36"`
	Participant1ID string `gorm:"size:36;not null;uniqueIndex:uk_conv_pair,priority:1"`
	Participant2ID string `gorm:"size:36;not null;uniqueIndex:uk_conv_pair,priority:2;index"`
	LastMessageAt  time.Time
	CreatedAt      time.Time
}

type Message struct {
	ID             string `gorm:"primaryKey;size:36"`
	ConversationID string `gorm:"size:36;not null;index"`
	SenderID       string `gorm:"size:36;not null;index"`
	Content        string `gorm:"type:text;not null"`
	Read           bool   `gorm:"default:false"`
	CreatedAt      time.Time

	Sender *User `gorm:"foreignKey:SenderID"`
}
