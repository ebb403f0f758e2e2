package models

import "gorm.io/gorm"

// ArticleCategory is the blog-post taxonomy. It is distinct from share
// categories and carries no field schema.
type ArticleCategory struct {
	gorm.Model
	Name        string `gorm:"size:100;not null"`
	Slug        string `gorm:"size:120;uniqueIndex;not null"`
	Description string
	Color       string `gorm:"size:50"`
	SortOrder   int    `gorm:"not null;default:0"`

	Articles []Article `gorm:"foreignKey:CategoryID"`
}
