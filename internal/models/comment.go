package models

import (
	"time"
)

type Comment struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	PostID     uint      `gorm:"not null;index" json:"post_id"`
	Post       Post      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"post"`
	UserID     *uint     `gorm:"index" json:"user_id"` // 提交评论的登录用户
	User       *User     `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"user"`
	AuthorName string    `gorm:"size:200;not null" json:"author_name"`
	Email      string    `json:"email"` // Optional
	Text       string    `gorm:"type:text;not null" json:"text"`
	Approved   bool      `gorm:"default:false;index" json:"approved"` // 审核通过前不公开
	CreatedAt  time.Time `json:"created_at"`
}
