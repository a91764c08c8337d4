package model

import "time"

// Broadcast 定向广播：落库留痕，投递以私信形式扇出
type Broadcast struct {
	ID        string `gorm:"primaryKey;size:36"`
	SenderID  string `gorm:"size:36;not null;index"`
	Content   string `gorm:"type:text;not null"`
	City      string `gorm:"size:64"`
	CreatedAt time.Time
}
