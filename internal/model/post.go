package model

import "time"

type Post struct {
	ID            string `gorm:"primaryKey;size:36"`
	AuthorID      string `gorm:"size:36;not null;index:idx_post_author"`
	CommunityID   string `gorm:"size:36;index"`
	Content       string `gorm:"type:text;not null"`
	ImageURL      string `gorm:"size:255"`
	LikesCount    int64  `gorm:"not null;default:0"`
	CommentsCount int64  `gorm:"not null;default:0"`
	RepostsCount  int64  `gorm:"not null;default:0"`
	CreatedAt     time.Time `gorm:"index"`
	UpdatedAt     time.Time

	Author *User `gorm:"foreignKey:AuthorID"`
}

type PostLike struct {
	ID        uint64 `gorm:"primaryKey;autoIncrement"`
	UserID    string `gorm:"size:36;not null;uniqueIndex:uk_like_user_post,priority:1"`
	PostID    string `gorm:"size:36;not null;uniqueIndex:uk_like_user_post,priority:2;index"`
	CreatedAt time.Time
}

func (PostLike) TableName() string { return "post_likes" }

type Comment struct {
	ID        string `gorm:"primaryKey;size:36"`
	UserID    string `gorm:"size:36;not null;index"`
	PostID    string `gorm:"size:36;not null;index"`
	Content   string `gorm:"type:text;not null"`
	CreatedAt time.Time

	User *User `gorm:"foreignKey:UserID"`
}
