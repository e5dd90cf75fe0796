package models

// AuthorProfile 作者资料 - 与用户一对一
type AuthorProfile struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	UserID   uint   `gorm:"not null;uniqueIndex" json:"user_id"`
	User     User   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user"`
	Bio      string `gorm:"type:text" json:"bio"`
	Avatar   string `json:"avatar"`
	Twitter  string `json:"twitter"`
	Facebook string `json:"facebook"`
	YouTube  string `json:"youtube"`
	TikTok   string `json:"tiktok"`
	Telegram string `json:"telegram"`
}
