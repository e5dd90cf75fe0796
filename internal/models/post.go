package models

import (
	"time"
)

// Post lifecycle states. A post starts as a draft and becomes visible to
// the public only once published; archiving hides it again without losing it.
const (
	StatusDraft     = "draft"
	StatusPublished = "published"
	StatusArchived  = "archived"
)

type Post struct {
	ID            uint       `gorm:"primaryKey" json:"id"`
	UserID        uint       `gorm:"not null;index" json:"user_id"`
	User          User       `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user"`
	Title         string     `gorm:"size:200;not null" json:"title"`
	Slug          string     `gorm:"size:200;uniqueIndex;not null" json:"slug"`
	Excerpt       string     `gorm:"size:300" json:"excerpt"`
	Text          string     `gorm:"type:text;not null" json:"text"`
	CategoryID    *uint      `gorm:"index" json:"category_id"` // nullable, category removal keeps the post
	Category      *Category  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"category"`
	Tags          []Tag      `gorm:"many2many:post_tags;" json:"tags"`
	FeaturedImage string     `json:"featured_image"`
	IsFeatured    bool       `gorm:"default:false" json:"is_featured"`
	Status        string     `gorm:"size:10;default:'draft';index" json:"status"`
	CreatedAt     time.Time  `json:"created_at"`
	PublishedAt   *time.Time `gorm:"index" json:"published_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
	ViewsCount    int        `gorm:"default:0" json:"views_count"` // 浏览量

	// 非数据库字段，查询时填充
	LikesCount   int `gorm:"-" json:"likes_count"`
	CommentCount int `gorm:"-" json:"comment_count"`
}

// Publish 发布文章并写入发布时间
func (p *Post) Publish(now time.Time) {
	p.Status = StatusPublished
	p.PublishedAt = &now
}

func (p *Post) IsPublished() bool {
	return p.Status == StatusPublished
}

// VisibleTo reports whether viewer may open the post detail page.
// Drafts and archived posts exist only for their author and admins.
func (p *Post) VisibleTo(viewer *User) bool {
	if p.IsPublished() {
		return true
	}
	if viewer == nil {
		return false
	}
	return viewer.ID == p.UserID || viewer.IsAdmin()
}
