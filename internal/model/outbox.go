package model

import "time"

// 事件类型
const (
	EventFollow    = "follow"
	EventBroadcast = "broadcast"
	EventLaunch    = "launch"
)

// EventOutbox 事件发件箱：业务事务内落库，异步投递到 Kafka
type EventOutbox struct {
	ID        uint64 `gorm:"primaryKey;autoIncrement"`
	EventType string `gorm:"size:32;not null"`
	Payload   string `gorm:"type:json;not null"`
	Status    int8   `gorm:"not null;default:0;comment:'0=pending,1=sent,2=failed'"`
	Retry     int    `gorm:"not null;default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (EventOutbox) TableName() string { return "event_outbox" }
