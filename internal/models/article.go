package models

import (
	"time"

	"gorm.io/gorm"
)

// Article is a blog post. Slug is the public identifier and carries a unique
// index; the taxonomy slug guard gives a friendly conflict error first and
// the index settles any race.
type Article struct {
	gorm.Model
	Title       string `gorm:"size:255;not null"`
	Slug        string `gorm:"size:255;uniqueIndex;not null"`
	Description string
	Content     string `gorm:"type:text;not null"`
	CoverImage  string `gorm:"size:512"`
	Published   bool   `gorm:"not null;default:false;index"`
	PublishedAt *time.Time
	CategoryID  *uint `gorm:"index"`

	Category *ArticleCategory `gorm:"foreignKey:CategoryID"`
	Tags     []*Tag           `gorm:"many2many:article_tags;"`
}

// ArticleTag is the tag membership row. The composite primary key keeps a
// tag from being attached to the same article twice.
type ArticleTag struct {
	ArticleID uint `gorm:"primaryKey"`
	TagID     uint `gorm:"primaryKey"`
}
