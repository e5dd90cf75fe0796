package models

type Tag struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:50;not null;unique" json:"name"`
	Slug string `gorm:"size:50;uniqueIndex;not null" json:"slug"`
}
