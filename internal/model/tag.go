package model

import "time"

type Tag struct {
	ID          string `gorm:"primaryKey;size:36"`
	Name        string `gorm:"uniqueIndex;size:64;not null"`
	Description string `gorm:"size:255"`
	CreatedAt   time.Time
}

// 可绑定标签的实体类型
const (
	EntityUser      = "user"
	EntityPost      = "post"
	EntityCommunity = "community"
	EntityLaunch    = "launch"
	EntityBroadcast = "broadcast"
)

// TagBinding 多态关联表：一张表承载所有实体的标签集合
type TagBinding struct {
	ID         uint64 `gorm:"primaryKey;autoIncrement"`
	EntityType string `gorm:"size:16;not null;uniqueIndex:uk_entity_tag,priority:1"`
	EntityID   string `gorm:"size:36;not null;uniqueIndex:uk_entity_tag,priority:2;index:idx_binding_entity"`
	TagID      string `gorm:"size:36;not null;uniqueIndex:uk_entity_tag,priority:3;index:idx_binding_tag"`
	CreatedAt  time.Time
}

func (TagBinding) TableName() string { return "tag_bindings" }
