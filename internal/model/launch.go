package model

import "time"

// Launch 产品发布：创建 48 小时后由清理任务硬删除
type Launch struct {
	ID              string `gorm:"primaryKey;size:36"`
	CreatorID       string `gorm:"size:36;not null;index"`
	Name            string `gorm:"size:128;not null"`
	Tagline         string `gorm:"size:255;not null"`
	Description     string `gorm:"type:text"`
	LogoURL         string `gorm:"size:255"`
	ProductImageURL string `gorm:"size:255"`
	WebsiteURL      string `gorm:"size:255;not null"`
	UpvotesCount    int64  `gorm:"not null;default:0"`
	CreatedAt       time.Time `gorm:"index"`

	Creator *User `gorm:"foreignKey:CreatorID"`
}

type LaunchComment struct {
	ID        string `gorm:"primaryKey;size:36"`
	LaunchID  string `gorm:"size:36;not null;index"`
	UserID    string `gorm:"size:36;not null;index"`
	Content   string `gorm:"type:text;not null"`
	CreatedAt time.Time

	User *User `gorm:"foreignKey:UserID"`
}

type LaunchUpvote struct {
	ID        uint64 `gorm:"primaryKey;autoIncrement"`
	LaunchID  string `gorm:"size:36;not null;uniqueIndex:uk_launch_user,priority:1"`
	UserID    string `gorm:"size:36;not null;uniqueIndex:uk_launch_user,priority:2;index"`
	CreatedAt time.Time
}
